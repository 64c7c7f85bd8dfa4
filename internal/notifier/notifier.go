package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wastetrack/internal/domain/notification"
	"wastetrack/internal/logger"
)

// Notifier writes user notifications on a best-effort basis. Failures
// are logged and never propagated: a lost notification must not fail
// the operation that triggered it.
type Notifier struct {
	repo notification.Repository
}

func New(repo notification.Repository) *Notifier {
	return &Notifier{repo: repo}
}

func (n *Notifier) send(ctx context.Context, notif *notification.Notification) {
	if err := n.repo.Create(ctx, notif); err != nil {
		logger.Error("Failed to create notification",
			zap.String("user_id", notif.UserID.String()),
			zap.String("type", string(notif.Type)),
			zap.Error(err),
		)
	}
}

func (n *Notifier) PickupScheduled(ctx context.Context, userID, pickupID uuid.UUID, wasteType string, pickupDate time.Time, points int) {
	n.send(ctx, &notification.Notification{
		UserID: userID,
		Type:   notification.TypePickupScheduled,
		Title:  "Pickup Scheduled",
		Message: fmt.Sprintf("Your %s waste pickup is scheduled for %s. You earned %d points!",
			wasteType, pickupDate.Format("Jan 2, 2006"), points),
		Icon:            "calendar",
		Color:           "green",
		RelatedPickupID: &pickupID,
		ActionURL:       "/pickups/" + pickupID.String(),
		ActionLabel:     "View Pickup",
	})
}

func (n *Notifier) PickupCompleted(ctx context.Context, userID, pickupID uuid.UUID, points int) {
	n.send(ctx, &notification.Notification{
		UserID:          userID,
		Type:            notification.TypePickupCompleted,
		Title:           "Pickup Completed",
		Message:         fmt.Sprintf("Your waste pickup was completed. You earned %d points!", points),
		Icon:            "check-circle",
		Color:           "green",
		RelatedPickupID: &pickupID,
		ActionURL:       "/pickups/" + pickupID.String(),
		ActionLabel:     "Rate Pickup",
	})
}

func (n *Notifier) PickupCancelled(ctx context.Context, userID, pickupID uuid.UUID, reason string) {
	msg := "Your waste pickup was cancelled."
	if reason != "" {
		msg = fmt.Sprintf("Your waste pickup was cancelled: %s", reason)
	}
	n.send(ctx, &notification.Notification{
		UserID:          userID,
		Type:            notification.TypePickupCancelled,
		Title:           "Pickup Cancelled",
		Message:         msg,
		Icon:            "x-circle",
		Color:           "red",
		RelatedPickupID: &pickupID,
	})
}

func (n *Notifier) PointsEarned(ctx context.Context, userID uuid.UUID, points, balance int) {
	n.send(ctx, &notification.Notification{
		UserID:  userID,
		Type:    notification.TypePointsEarned,
		Title:   "Points Earned",
		Message: fmt.Sprintf("You earned %d points! Your balance is now %d.", points, balance),
		Icon:    "star",
		Color:   "yellow",
	})
}

func (n *Notifier) LevelUp(ctx context.Context, userID uuid.UUID, level int) {
	n.send(ctx, &notification.Notification{
		UserID:   userID,
		Type:     notification.TypeLevelUp,
		Title:    "Level Up!",
		Message:  fmt.Sprintf("Congratulations, you reached level %d!", level),
		Icon:     "trending-up",
		Color:    "purple",
		Priority: notification.PriorityHigh,
	})
}

func (n *Notifier) BadgeEarned(ctx context.Context, userID uuid.UUID, badgeName string) {
	n.send(ctx, &notification.Notification{
		UserID:   userID,
		Type:     notification.TypeBadgeEarned,
		Title:    "Badge Earned",
		Message:  fmt.Sprintf("You earned the %q badge!", badgeName),
		Icon:     "award",
		Color:    "gold",
		Priority: notification.PriorityHigh,
	})
}

func (n *Notifier) FeedbackResponse(ctx context.Context, userID, feedbackID uuid.UUID, subject string) {
	n.send(ctx, &notification.Notification{
		UserID:            userID,
		Type:              notification.TypeFeedbackResponse,
		Title:             "Feedback Response",
		Message:           fmt.Sprintf("Your feedback %q has received a response.", subject),
		Icon:              "message-circle",
		Color:             "blue",
		RelatedFeedbackID: &feedbackID,
		ActionURL:         "/feedback/" + feedbackID.String(),
		ActionLabel:       "View Response",
	})
}
