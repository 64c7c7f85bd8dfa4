package feedback

import (
	"time"

	"github.com/google/uuid"

	domainFeedback "wastetrack/internal/domain/feedback"
)

type SubmitRequest struct {
	Type            string     `json:"type" validate:"required,oneof=complaint suggestion praise query"`
	Subject         string     `json:"subject" validate:"required,max=255"`
	Description     string     `json:"description" validate:"required,max=5000"`
	Priority        string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	RelatedPickupID *uuid.UUID `json:"related_pickup_id"`
	ContactMethod   string     `json:"contact_method" validate:"omitempty,oneof=email phone app"`
}

type RespondRequest struct {
	Response string `json:"response" validate:"required,max=5000"`
	Status   string `json:"status" validate:"omitempty,oneof=pending in_review resolved closed"`
}

type RateResponseRequest struct {
	Rating  string `json:"rating" validate:"required,oneof=helpful not_helpful"`
	Comment string `json:"comment" validate:"omitempty,max=1000"`
}

type ListQuery struct {
	Status   string `form:"status"`
	Type     string `form:"type"`
	Priority string `form:"priority"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type FeedbackResponse struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	Type        string `json:"type"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`

	RelatedPickupID *uuid.UUID `json:"related_pickup_id,omitempty"`
	ContactMethod   string     `json:"contact_method,omitempty"`

	Response    string     `json:"response,omitempty"`
	RespondedBy *uuid.UUID `json:"responded_by,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`

	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`

	Rating        *string `json:"rating,omitempty"`
	RatingComment string  `json:"rating_comment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StatsResponse struct {
	Total            int64            `json:"total"`
	ByStatus         map[string]int64 `json:"by_status"`
	ByType           map[string]int64 `json:"by_type"`
	AvgResponseHours int64            `json:"avg_response_hours"`
}

func ToFeedbackResponse(f *domainFeedback.Feedback) *FeedbackResponse {
	if f == nil {
		return nil
	}
	resp := &FeedbackResponse{
		ID:              f.ID,
		UserID:          f.UserID,
		Type:            string(f.Type),
		Subject:         f.Subject,
		Description:     f.Description,
		Priority:        string(f.Priority),
		Status:          string(f.Status),
		RelatedPickupID: f.RelatedPickupID,
		ContactMethod:   string(f.ContactMethod),
		Response:        f.Response,
		RespondedBy:     f.RespondedBy,
		RespondedAt:     f.RespondedAt,
		ResolvedAt:      f.ResolvedAt,
		ClosedAt:        f.ClosedAt,
		RatingComment:   f.RatingComment,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
	if f.Rating != nil {
		rating := string(*f.Rating)
		resp.Rating = &rating
	}
	return resp
}
