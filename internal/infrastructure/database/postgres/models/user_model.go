package models

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the database model for User
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Role           string    `gorm:"type:varchar(50);not null;default:'citizen';index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHashed string    `gorm:"type:varchar(255);not null"`
	Phone          *string   `gorm:"type:varchar(20)"`

	AddressStreet  *string  `gorm:"type:varchar(255)"`
	AddressCity    *string  `gorm:"type:varchar(100)"`
	AddressState   *string  `gorm:"type:varchar(100)"`
	AddressPincode *string  `gorm:"type:varchar(20)"`
	AddressLat     *float64 `gorm:"type:double precision"`
	AddressLng     *float64 `gorm:"type:double precision"`

	CompanyName     *string  `gorm:"type:varchar(255)"`
	IndustryType    *string  `gorm:"type:varchar(100)"`
	MonthlyCapacity *float64 `gorm:"type:double precision"`
	IsVerified      bool     `gorm:"default:false;not null"`

	Points int `gorm:"default:0;not null;index"`
	Level  int `gorm:"default:1;not null"`

	Badges []UserBadgeModel `gorm:"foreignKey:UserID"`

	LastLogin *time.Time
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// UserBadgeModel represents an earned gamification badge
type UserBadgeModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(100);not null"`
	EarnedAt time.Time `gorm:"not null"`
}

func (UserBadgeModel) TableName() string {
	return "user_badges"
}

// PasswordResetTokenModel represents the database model for PasswordResetToken
type PasswordResetTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null;index"`
	Used      bool      `gorm:"default:false;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}

// RefreshTokenModel represents the database model for RefreshToken
type RefreshTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Token     string     `gorm:"type:varchar(500);not null;unique;index"`
	ExpiresAt time.Time  `gorm:"not null;index"`
	Revoked   bool       `gorm:"default:false;index"`
	RevokedAt *time.Time `gorm:"type:timestamp"`
	CreatedAt time.Time  `gorm:"not null"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
