package models

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel represents the database model for a feedback ticket
type FeedbackModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`

	Type        string `gorm:"type:varchar(30);not null;index"`
	Subject     string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	Priority    string `gorm:"type:varchar(20);not null;default:'medium';index"`
	Status      string `gorm:"type:varchar(20);not null;default:'pending';index"`

	RelatedPickupID *uuid.UUID `gorm:"type:uuid"`
	ContactMethod   string     `gorm:"type:varchar(20)"`

	Response    string     `gorm:"type:text"`
	RespondedBy *uuid.UUID `gorm:"type:uuid"`
	RespondedAt *time.Time

	ResolvedAt *time.Time
	ClosedAt   *time.Time

	Rating        *string `gorm:"type:varchar(20)"`
	RatingComment string  `gorm:"type:text"`

	InternalNotes string     `gorm:"type:text"`
	AssignedTo    *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (FeedbackModel) TableName() string {
	return "feedback"
}
