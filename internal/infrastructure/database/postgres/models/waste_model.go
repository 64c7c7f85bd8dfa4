package models

import (
	"time"

	"github.com/google/uuid"
)

// WasteRecordModel represents the database model for a classification record
type WasteRecordModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_waste_user_classified"`

	WasteType string `gorm:"type:varchar(100);not null"`
	Category  string `gorm:"type:varchar(50);not null;index"`

	ImageURL   string  `gorm:"type:text"`
	Confidence float64 `gorm:"default:0;not null"`

	ProperlySegregated   bool   `gorm:"default:true;not null"`
	DisposalInstructions string `gorm:"type:text;not null"`
	BinColor             string `gorm:"type:varchar(20);not null"`

	WeightAmount *float64 `gorm:"type:double precision"`
	WeightUnit   string   `gorm:"type:varchar(20)"`

	FeedbackIsCorrect  *bool
	FeedbackActualType string `gorm:"type:varchar(100)"`
	FeedbackComments   string `gorm:"type:text"`

	ClassifiedAt time.Time `gorm:"not null;index:idx_waste_user_classified"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (WasteRecordModel) TableName() string {
	return "waste_records"
}
