package models

import (
	"time"

	"github.com/google/uuid"
)

// TrackingModel represents the database model for a waste shipment record
type TrackingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TrackingID string    `gorm:"type:varchar(20);uniqueIndex;not null"`

	IndustryID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	IndustryName string     `gorm:"type:varchar(255)"`
	PickupID     *uuid.UUID `gorm:"type:uuid;index"`

	WasteType   string  `gorm:"type:varchar(50);not null"`
	Quantity    float64 `gorm:"not null"`
	Unit        string  `gorm:"type:varchar(10);not null;default:'kg'"`
	HazardLevel string  `gorm:"type:varchar(20);not null;default:'Low'"`
	Description string  `gorm:"type:text"`

	Status string `gorm:"type:varchar(30);not null;default:'Scheduled';index"`

	ScheduledDate  *time.Time
	CollectedDate  *time.Time
	CollectorName  string `gorm:"type:varchar(255)"`
	VehicleNumber  string `gorm:"type:varchar(50)"`
	CollectorNotes string `gorm:"type:text"`

	DisposalFacility string `gorm:"type:varchar(255)"`
	DisposalMethod   string `gorm:"type:varchar(50)"`
	DisposalDate     *time.Time
	CertificateURL   string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`

	History []TrackingHistoryModel `gorm:"foreignKey:TrackingRecordID;constraint:OnDelete:CASCADE"`
}

func (TrackingModel) TableName() string {
	return "tracking_records"
}

// TrackingHistoryModel is an append-only status entry for a shipment.
// The auto-increment key preserves insertion order.
type TrackingHistoryModel struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	TrackingRecordID uuid.UUID `gorm:"type:uuid;not null;index"`

	Status    string    `gorm:"type:varchar(30);not null"`
	Timestamp time.Time `gorm:"not null"`
	UpdatedBy string    `gorm:"type:varchar(255);not null"`
	Notes     string    `gorm:"type:text"`

	LocationLat     *float64 `gorm:"type:double precision"`
	LocationLng     *float64 `gorm:"type:double precision"`
	LocationAddress string   `gorm:"type:varchar(255)"`
}

func (TrackingHistoryModel) TableName() string {
	return "tracking_history"
}
