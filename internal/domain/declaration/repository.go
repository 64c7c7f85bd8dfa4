package declaration

import (
	"context"

	"github.com/google/uuid"
)

// Filter narrows declaration list queries.
type Filter struct {
	IndustryID *uuid.UUID
	Status     *Status
	Year       *int

	Page     int
	PageSize int
}

// Stats is the per-industry declaration dashboard summary.
type Stats struct {
	TotalDeclarations  int64
	StatusBreakdown    map[string]int64
	TotalWasteThisYear float64
	CategoryBreakdown  map[string]float64
	PendingApprovals   int64
}

// Repository defines persistence operations for declarations.
type Repository interface {
	Create(ctx context.Context, d *Declaration) error
	GetByID(ctx context.Context, id uuid.UUID) (*Declaration, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*Declaration, error)
	GetByPeriod(ctx context.Context, industryID uuid.UUID, period Period) (*Declaration, error)
	Update(ctx context.Context, d *Declaration) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *Filter) ([]*Declaration, int64, error)
	GetStats(ctx context.Context, industryID uuid.UUID, currentYear int) (*Stats, error)
}
