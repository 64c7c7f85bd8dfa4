package pickup

import (
	"time"

	"github.com/google/uuid"

	domainPickup "wastetrack/internal/domain/pickup"
)

type ScheduleRequest struct {
	WasteType           string    `json:"waste_type" validate:"required,oneof=biodegradable recyclable e-waste hazardous"`
	PickupDate          time.Time `json:"pickup_date" validate:"required"`
	TimeSlot            string    `json:"time_slot" validate:"required,oneof=morning afternoon evening"`
	Address             string    `json:"address" validate:"required,max=500"`
	ContactPhone        string    `json:"contact_phone" validate:"required,max=20"`
	EstimatedWeight     float64   `json:"estimated_weight" validate:"omitempty,gte=0"`
	SpecialInstructions string    `json:"special_instructions" validate:"omitempty,max=1000"`
}

type CancelRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type CompleteRequest struct {
	ActualWeight     *float64 `json:"actual_weight" validate:"omitempty,gte=0"`
	VerificationCode string   `json:"verification_code" validate:"omitempty,len=6"`
}

type RateRequest struct {
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Feedback *string `json:"feedback" validate:"omitempty,max=1000"`
}

type ListQuery struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type PickupResponse struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	WasteType           string    `json:"waste_type"`
	PickupDate          time.Time `json:"pickup_date"`
	TimeSlot            string    `json:"time_slot"`
	Address             string    `json:"address"`
	ContactPhone        string    `json:"contact_phone"`
	EstimatedWeight     float64   `json:"estimated_weight"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`

	Status            string     `json:"status"`
	AssignedCollector *uuid.UUID `json:"assigned_collector,omitempty"`
	ActualWeight      *float64   `json:"actual_weight,omitempty"`
	ActualPickupTime  *time.Time `json:"actual_pickup_time,omitempty"`

	VerificationCode string `json:"verification_code"`

	Rating   *int    `json:"rating,omitempty"`
	Feedback *string `json:"feedback,omitempty"`

	PointsAwarded int `json:"points_awarded"`

	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CancelledBy        *string    `json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StatsResponse struct {
	TotalPickups         int64            `json:"total_pickups"`
	StatusBreakdown      map[string]int64 `json:"status_breakdown"`
	TotalWeightCollected float64          `json:"total_weight_collected"`
	TotalPointsEarned    int64            `json:"total_points_earned"`
	UpcomingPickups      int64            `json:"upcoming_pickups"`
}

func ToPickupResponse(p *domainPickup.Pickup) *PickupResponse {
	if p == nil {
		return nil
	}
	resp := &PickupResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		WasteType:           string(p.WasteType),
		PickupDate:          p.PickupDate,
		TimeSlot:            string(p.TimeSlot),
		Address:             p.Address,
		ContactPhone:        p.ContactPhone,
		EstimatedWeight:     p.EstimatedWeight,
		SpecialInstructions: p.SpecialInstructions,
		Status:              string(p.Status),
		AssignedCollector:   p.AssignedCollector,
		ActualWeight:        p.ActualWeight,
		ActualPickupTime:    p.ActualPickupTime,
		VerificationCode:    p.VerificationCode,
		Rating:              p.Rating,
		Feedback:            p.Feedback,
		PointsAwarded:       p.PointsAwarded,
		CancellationReason:  p.CancellationReason,
		CancelledAt:         p.CancelledAt,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
	if p.CancelledBy != nil {
		cancelledBy := string(*p.CancelledBy)
		resp.CancelledBy = &cancelledBy
	}
	return resp
}

func ToStatsResponse(s *domainPickup.Stats) *StatsResponse {
	return &StatsResponse{
		TotalPickups:         s.TotalPickups,
		StatusBreakdown:      s.StatusBreakdown,
		TotalWeightCollected: s.TotalWeightCollected,
		TotalPointsEarned:    s.TotalPointsEarned,
		UpcomingPickups:      s.UpcomingPickups,
	}
}
