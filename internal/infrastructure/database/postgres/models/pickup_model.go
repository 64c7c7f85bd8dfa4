package models

import (
	"time"

	"github.com/google/uuid"
)

// PickupModel represents the database model for Pickup
type PickupModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_pickups_user_status"`

	WasteType           string    `gorm:"type:varchar(50);not null"`
	PickupDate          time.Time `gorm:"not null;index"`
	TimeSlot            string    `gorm:"type:varchar(20);not null"`
	Address             string    `gorm:"type:text;not null"`
	ContactPhone        string    `gorm:"type:varchar(20);not null"`
	EstimatedWeight     float64   `gorm:"default:0;not null"`
	SpecialInstructions string    `gorm:"type:text"`

	Status            string     `gorm:"type:varchar(20);not null;default:'scheduled';index:idx_pickups_user_status"`
	AssignedCollector *uuid.UUID `gorm:"type:uuid"`
	ActualWeight      *float64   `gorm:"type:double precision"`
	ActualPickupTime  *time.Time

	VerificationCode string `gorm:"type:varchar(10);uniqueIndex"`

	Rating   *int    `gorm:"type:smallint"`
	Feedback *string `gorm:"type:text"`

	PointsAwarded int `gorm:"default:0;not null"`

	CancellationReason *string `gorm:"type:text"`
	CancelledBy        *string `gorm:"type:varchar(20)"`
	CancelledAt        *time.Time

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (PickupModel) TableName() string {
	return "pickups"
}
