package models

import (
	"time"

	"github.com/google/uuid"
)

// DeclarationModel represents the database model for a monthly industry declaration
type DeclarationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	IndustryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_declarations_industry_period;index"`

	PeriodMonth int `gorm:"not null;uniqueIndex:idx_declarations_industry_period"`
	PeriodYear  int `gorm:"not null;uniqueIndex:idx_declarations_industry_period;index"`

	TotalAmount float64 `gorm:"not null"`
	TotalUnit   string  `gorm:"type:varchar(10);not null;default:'tons'"`

	TrackingID string `gorm:"type:varchar(20);uniqueIndex;not null"`
	Status     string `gorm:"type:varchar(30);not null;default:'Draft';index"`

	PollutionCertValid  bool       `gorm:"default:false;not null"`
	CertificateNumber   string     `gorm:"type:varchar(100)"`
	CertificateExpiry   *time.Time `gorm:"type:date"`
	ProperlySegregated  bool       `gorm:"default:false;not null"`

	LinkedPickupID *uuid.UUID `gorm:"type:uuid"`

	ReviewedBy  *uuid.UUID `gorm:"type:uuid"`
	ReviewNotes string     `gorm:"type:text"`
	ReviewedAt  *time.Time

	SubmittedAt *time.Time
	ApprovedAt  *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	Items     []DeclarationItemModel     `gorm:"foreignKey:DeclarationID;constraint:OnDelete:CASCADE"`
	Documents []DeclarationDocumentModel `gorm:"foreignKey:DeclarationID;constraint:OnDelete:CASCADE"`
}

func (DeclarationModel) TableName() string {
	return "declarations"
}

// DeclarationItemModel is a single waste line item within a declaration
type DeclarationItemModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	DeclarationID uuid.UUID `gorm:"type:uuid;not null;index"`

	Category       string  `gorm:"type:varchar(50);not null"`
	Amount         float64 `gorm:"not null"`
	Unit           string  `gorm:"type:varchar(10);not null;default:'kg'"`
	Description    string  `gorm:"type:text"`
	DisposalMethod string  `gorm:"type:varchar(50)"`
}

func (DeclarationItemModel) TableName() string {
	return "declaration_items"
}

// DeclarationDocumentModel is a supporting document attached to a declaration
type DeclarationDocumentModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	DeclarationID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name       string    `gorm:"type:varchar(255);not null"`
	URL        string    `gorm:"type:text;not null"`
	Type       string    `gorm:"type:varchar(50)"`
	UploadedAt time.Time `gorm:"not null"`
}

func (DeclarationDocumentModel) TableName() string {
	return "declaration_documents"
}
