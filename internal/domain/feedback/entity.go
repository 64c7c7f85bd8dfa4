package feedback

import (
	"time"

	"github.com/google/uuid"
)

// Type classifies a ticket.
type Type string

const (
	TypeComplaint  Type = "complaint"
	TypeSuggestion Type = "suggestion"
	TypePraise     Type = "praise"
	TypeQuery      Type = "query"
)

func (t Type) Valid() bool {
	switch t {
	case TypeComplaint, TypeSuggestion, TypePraise, TypeQuery:
		return true
	}
	return false
}

// Priority orders the admin queue.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Status is the ticket lifecycle state.
type Status string

const (
	StatusPending  Status = "pending"
	StatusInReview Status = "in_review"
	StatusResolved Status = "resolved"
	StatusClosed   Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInReview, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// ResponseRating is the user's verdict on an admin response.
type ResponseRating string

const (
	RatingHelpful    ResponseRating = "helpful"
	RatingNotHelpful ResponseRating = "not_helpful"
)

// ContactMethod is how the user prefers to be reached.
type ContactMethod string

const (
	ContactEmail ContactMethod = "email"
	ContactPhone ContactMethod = "phone"
	ContactApp   ContactMethod = "app"
)

// Feedback is one user-submitted support ticket.
type Feedback struct {
	ID     uuid.UUID
	UserID uuid.UUID

	Type        Type
	Subject     string
	Description string
	Priority    Priority
	Status      Status

	RelatedPickupID *uuid.UUID
	ContactMethod   ContactMethod

	Response    string
	RespondedBy *uuid.UUID
	RespondedAt *time.Time

	// Resolution timestamps are stamped exactly once; a later status
	// change back and forth never overwrites them.
	ResolvedAt *time.Time
	ClosedAt   *time.Time

	Rating        *ResponseRating
	RatingComment string

	InternalNotes string
	AssignedTo    *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetStatus moves the ticket to a new status, stamping resolution
// timestamps on first entry only.
func (f *Feedback) SetStatus(status Status, now time.Time) {
	f.Status = status
	if status == StatusResolved && f.ResolvedAt == nil {
		f.ResolvedAt = &now
	}
	if status == StatusClosed && f.ClosedAt == nil {
		f.ClosedAt = &now
	}
}
