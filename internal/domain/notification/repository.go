package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines persistence operations for notifications.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	Update(ctx context.Context, n *Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, pageSize int) ([]*Notification, int64, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteExpired purges rows whose expiry has passed; run by a
	// periodic job.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
