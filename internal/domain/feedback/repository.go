package feedback

import (
	"context"

	"github.com/google/uuid"
)

// Filter narrows feedback list queries.
type Filter struct {
	UserID   *uuid.UUID
	Status   *Status
	Type     *Type
	Priority *Priority

	Page     int
	PageSize int
}

// Stats summarizes a user's tickets.
type Stats struct {
	Total            int64
	ByStatus         map[string]int64
	ByType           map[string]int64
	AvgResponseHours int64
}

// Repository defines persistence operations for feedback tickets.
type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	GetByID(ctx context.Context, id uuid.UUID) (*Feedback, error)
	Update(ctx context.Context, f *Feedback) error
	List(ctx context.Context, filter *Filter) ([]*Feedback, int64, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*Stats, error)
}
