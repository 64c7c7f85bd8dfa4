package user

import (
	"time"

	"github.com/google/uuid"

	domainUser "wastetrack/internal/domain/user"
)

type AddressPayload struct {
	Street    string   `json:"street" validate:"omitempty,max=255"`
	City      string   `json:"city" validate:"omitempty,max=100"`
	State     string   `json:"state" validate:"omitempty,max=100"`
	Pincode   string   `json:"pincode" validate:"omitempty,max=20"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

type RegisterRequest struct {
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	Email           string          `json:"email" validate:"required,email"`
	Password        string          `json:"password" validate:"required,min=8"`
	ConfirmPassword string          `json:"confirm_password" validate:"required,eqfield=Password"`
	Phone           *string         `json:"phone" validate:"omitempty,max=20"`
	Role            string          `json:"role" validate:"omitempty,oneof=citizen industry pickup_agent"`
	Address         *AddressPayload `json:"address"`

	// Industry-only fields. Required when role is industry.
	CompanyName     *string  `json:"company_name" validate:"omitempty,max=255"`
	IndustryType    *string  `json:"industry_type" validate:"omitempty,max=100"`
	MonthlyCapacity *float64 `json:"monthly_capacity" validate:"omitempty,gte=0"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

type UpdateProfileRequest struct {
	Name            *string         `json:"name" validate:"omitempty,min=2,max=255"`
	Phone           *string         `json:"phone" validate:"omitempty,max=20"`
	Address         *AddressPayload `json:"address"`
	CompanyName     *string         `json:"company_name" validate:"omitempty,max=255"`
	MonthlyCapacity *float64        `json:"monthly_capacity" validate:"omitempty,gte=0"`
}

type BadgeResponse struct {
	Name     string    `json:"name"`
	EarnedAt time.Time `json:"earned_at"`
}

type UserResponse struct {
	ID              uuid.UUID       `json:"id"`
	Role            string          `json:"role"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           *string         `json:"phone,omitempty"`
	Address         *AddressPayload `json:"address,omitempty"`
	CompanyName     *string         `json:"company_name,omitempty"`
	IndustryType    *string         `json:"industry_type,omitempty"`
	MonthlyCapacity *float64        `json:"monthly_capacity,omitempty"`
	IsVerified      bool            `json:"is_verified"`
	Points          int             `json:"points"`
	Level           int             `json:"level"`
	Badges          []BadgeResponse `json:"badges"`
	LastLogin       *time.Time      `json:"last_login,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type AuthResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresAt    time.Time     `json:"expires_at"`
}

func ToUserResponse(u *domainUser.User) *UserResponse {
	if u == nil {
		return nil
	}
	resp := &UserResponse{
		ID:              u.ID,
		Role:            string(u.Role),
		Name:            u.Name,
		Email:           u.Email,
		Phone:           u.Phone,
		CompanyName:     u.CompanyName,
		MonthlyCapacity: u.MonthlyCapacity,
		IsVerified:      u.IsVerified,
		Points:          u.Points,
		Level:           u.Level,
		Badges:          make([]BadgeResponse, 0, len(u.Badges)),
		LastLogin:       u.LastLogin,
		CreatedAt:       u.CreatedAt,
	}
	if u.IndustryType != nil {
		industryType := string(*u.IndustryType)
		resp.IndustryType = &industryType
	}
	if u.Address != nil {
		resp.Address = &AddressPayload{
			Street:    u.Address.Street,
			City:      u.Address.City,
			State:     u.Address.State,
			Pincode:   u.Address.Pincode,
			Latitude:  u.Address.Latitude,
			Longitude: u.Address.Longitude,
		}
	}
	for _, b := range u.Badges {
		resp.Badges = append(resp.Badges, BadgeResponse{Name: b.Name, EarnedAt: b.EarnedAt})
	}
	return resp
}
