package notification

import (
	"time"

	"github.com/google/uuid"
)

// Type tags a notification for client rendering.
type Type string

const (
	TypePickupScheduled  Type = "pickup_scheduled"
	TypePickupConfirmed  Type = "pickup_confirmed"
	TypePickupInProgress Type = "pickup_in_progress"
	TypePickupCompleted  Type = "pickup_completed"
	TypePickupCancelled  Type = "pickup_cancelled"
	TypePickupReminder   Type = "pickup_reminder"
	TypeBadgeEarned      Type = "badge_earned"
	TypeLevelUp          Type = "level_up"
	TypeRewardAvailable  Type = "reward_available"
	TypePointsEarned     Type = "points_earned"
	TypeFeedbackResponse Type = "feedback_response"
	TypeSystemUpdate     Type = "system_update"
	TypeReminder         Type = "reminder"
	TypeAlert            Type = "alert"
)

// Priority orders notifications in the client.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Notification is a fire-and-forget per-user message.
type Notification struct {
	ID     uuid.UUID
	UserID uuid.UUID

	Type    Type
	Title   string
	Message string
	Icon    string
	Color   string

	Read   bool
	ReadAt *time.Time

	RelatedPickupID   *uuid.UUID
	RelatedFeedbackID *uuid.UUID

	ActionURL   string
	ActionLabel string
	Priority    Priority

	// ExpiresAt, when set, makes the row eligible for the periodic
	// purge job.
	ExpiresAt *time.Time

	CreatedAt time.Time
}

// MarkRead flags the notification read, stamping ReadAt once.
func (n *Notification) MarkRead(now time.Time) {
	if n.Read {
		return
	}
	n.Read = true
	n.ReadAt = &now
}
