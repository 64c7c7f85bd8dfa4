package user

import (
	"time"

	"github.com/google/uuid"
)

// Role determines which parts of the system a user may access.
type Role string

const (
	RoleCitizen     Role = "citizen"
	RoleIndustry    Role = "industry"
	RolePickupAgent Role = "pickup_agent"
	RoleAdmin       Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleIndustry, RolePickupAgent, RoleAdmin:
		return true
	}
	return false
}

// IndustryType categorizes industrial users.
type IndustryType string

const (
	IndustryManufacturing  IndustryType = "Manufacturing"
	IndustryChemical       IndustryType = "Chemical"
	IndustryTextile        IndustryType = "Textile"
	IndustryPharmaceutical IndustryType = "Pharmaceutical"
	IndustryFoodProcessing IndustryType = "Food Processing"
	IndustryElectronics    IndustryType = "Electronics"
	IndustryOther          IndustryType = "Other"
)

func (t IndustryType) Valid() bool {
	switch t {
	case IndustryManufacturing, IndustryChemical, IndustryTextile,
		IndustryPharmaceutical, IndustryFoodProcessing, IndustryElectronics, IndustryOther:
		return true
	}
	return false
}

// Address is the structured postal address attached to citizens and industries.
type Address struct {
	Street    string
	City      string
	State     string
	Pincode   string
	Latitude  *float64
	Longitude *float64
}

// User is the single identity type for citizens, industries, collection
// agents and administrators.
type User struct {
	ID             uuid.UUID
	Role           Role
	Name           string
	Email          string
	PasswordHashed string
	Phone          *string
	Address        *Address

	// Industry-only fields
	CompanyName      *string
	IndustryType     *IndustryType
	MonthlyCapacity  *float64 // tons per month
	IsVerified       bool

	// Gamification state. Points are mutated only through atomic
	// increments on the persistence layer.
	Points int
	Level  int
	Badges []Badge

	LastLogin *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Badge is an earned gamification badge.
type Badge struct {
	Name     string
	EarnedAt time.Time
}

// LevelForPoints derives a user's level from their point balance.
// Every pointsPerLevel points is one level, starting at level 1.
func LevelForPoints(points, pointsPerLevel int) int {
	if pointsPerLevel <= 0 {
		pointsPerLevel = 100
	}
	if points < 0 {
		points = 0
	}
	return points/pointsPerLevel + 1
}

// PasswordResetToken is a single-use token mailed to a user.
type PasswordResetToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// RefreshToken is a revocable long-lived session token.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	ExpiresAt time.Time
	Revoked   bool
	RevokedAt *time.Time
	CreatedAt time.Time
}
