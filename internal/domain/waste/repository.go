package waste

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines persistence operations for classification records.
type Repository interface {
	Create(ctx context.Context, r *Record) error
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	Update(ctx context.Context, r *Record) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*Record, int64, error)
	GetStats(ctx context.Context, userID uuid.UUID, recentSince time.Time) (*Stats, error)
}
