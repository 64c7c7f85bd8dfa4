package notification

import (
	"time"

	"github.com/google/uuid"

	domainNotification "wastetrack/internal/domain/notification"
)

type ListQuery struct {
	UnreadOnly bool `form:"unread_only"`
	Page       int  `form:"page"`
	PageSize   int  `form:"page_size"`
}

type NotificationResponse struct {
	ID      uuid.UUID `json:"id"`
	Type    string    `json:"type"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Icon    string    `json:"icon,omitempty"`
	Color   string    `json:"color,omitempty"`

	Read   bool       `json:"read"`
	ReadAt *time.Time `json:"read_at,omitempty"`

	RelatedPickupID   *uuid.UUID `json:"related_pickup_id,omitempty"`
	RelatedFeedbackID *uuid.UUID `json:"related_feedback_id,omitempty"`

	ActionURL   string `json:"action_url,omitempty"`
	ActionLabel string `json:"action_label,omitempty"`
	Priority    string `json:"priority"`

	CreatedAt time.Time `json:"created_at"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

func ToNotificationResponse(n *domainNotification.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}
	return &NotificationResponse{
		ID:                n.ID,
		Type:              string(n.Type),
		Title:             n.Title,
		Message:           n.Message,
		Icon:              n.Icon,
		Color:             n.Color,
		Read:              n.Read,
		ReadAt:            n.ReadAt,
		RelatedPickupID:   n.RelatedPickupID,
		RelatedFeedbackID: n.RelatedFeedbackID,
		ActionURL:         n.ActionURL,
		ActionLabel:       n.ActionLabel,
		Priority:          string(n.Priority),
		CreatedAt:         n.CreatedAt,
	}
}
