package pickup

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Filter narrows pickup list queries.
type Filter struct {
	UserID    *uuid.UUID
	Status    *Status
	DateAfter *time.Time

	Page     int
	PageSize int
}

// Stats summarizes a user's pickups for the dashboard.
type Stats struct {
	TotalPickups         int64
	StatusBreakdown      map[string]int64
	TotalWeightCollected float64
	TotalPointsEarned    int64
	UpcomingPickups      int64
}

// Repository defines persistence operations for pickups.
type Repository interface {
	Create(ctx context.Context, p *Pickup) error
	GetByID(ctx context.Context, id uuid.UUID) (*Pickup, error)
	Update(ctx context.Context, p *Pickup) error
	List(ctx context.Context, filter *Filter) ([]*Pickup, int64, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*Stats, error)

	// CompletedByUser returns completed pickups ordered by creation,
	// used by badge and leaderboard computation.
	CompletedByUser(ctx context.Context, userID uuid.UUID) ([]*Pickup, error)
}
