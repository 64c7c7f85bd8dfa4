package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel represents the database model for a user notification
type NotificationModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user_read"`

	Type    string `gorm:"type:varchar(50);not null"`
	Title   string `gorm:"type:varchar(255);not null"`
	Message string `gorm:"type:text;not null"`
	Icon    string `gorm:"type:varchar(50)"`
	Color   string `gorm:"type:varchar(20)"`

	Read   bool `gorm:"default:false;not null;index:idx_notifications_user_read"`
	ReadAt *time.Time

	RelatedPickupID   *uuid.UUID `gorm:"type:uuid"`
	RelatedFeedbackID *uuid.UUID `gorm:"type:uuid"`

	ActionURL   string `gorm:"type:text"`
	ActionLabel string `gorm:"type:varchar(100)"`
	Priority    string `gorm:"type:varchar(20);not null;default:'medium'"`

	ExpiresAt *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"not null;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
