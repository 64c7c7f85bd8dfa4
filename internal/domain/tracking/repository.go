package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Filter narrows tracking list queries.
type Filter struct {
	IndustryID    *uuid.UUID
	Status        *Status
	CreatedAfter  *time.Time
	CreatedBefore *time.Time

	Page     int
	PageSize int
}

// Stats is the per-industry tracking dashboard summary.
type Stats struct {
	Total              int64
	Scheduled          int64
	Collected          int64
	InTransit          int64
	AtFacility         int64
	Disposed           int64
	Cancelled          int64
	TotalWasteDisposed float64
}

// Repository defines persistence operations for tracking records.
type Repository interface {
	// Create persists the record and its initial history. A duplicate
	// tracking ID must surface as ErrDuplicateID so the caller can
	// regenerate and retry.
	Create(ctx context.Context, r *Record) error
	GetByTrackingID(ctx context.Context, trackingID string) (*Record, error)
	GetByPickupID(ctx context.Context, pickupID uuid.UUID) (*Record, error)

	// Update persists current status, sub-records and any history
	// entries appended since the record was loaded. Existing history
	// rows are never modified or removed.
	Update(ctx context.Context, r *Record) error
	Delete(ctx context.Context, trackingID string) error
	List(ctx context.Context, filter *Filter) ([]*Record, int64, error)
	GetStats(ctx context.Context, industryID uuid.UUID) (*Stats, error)

	// MaxSequenceForYear returns the highest sequence number among IDs
	// carrying the given year's prefix, or 0 when none exist.
	MaxSequenceForYear(ctx context.Context, year int) (int, error)
}
