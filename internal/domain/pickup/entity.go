package pickup

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// WasteType is one of the four citizen-facing waste categories.
type WasteType string

const (
	WasteBiodegradable WasteType = "biodegradable"
	WasteRecyclable    WasteType = "recyclable"
	WasteEWaste        WasteType = "e-waste"
	WasteHazardous     WasteType = "hazardous"
)

func (w WasteType) Valid() bool {
	_, ok := basePoints[w]
	return ok
}

// TimeSlot is the requested collection window.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

func (t TimeSlot) Valid() bool {
	switch t {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return true
	}
	return false
}

// Status is the pickup lifecycle state. Status only moves forward, or
// jumps to cancelled; completed and cancelled are terminal.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Terminal reports whether no further lifecycle change is permitted.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CancelledBy records which party cancelled a pickup.
type CancelledBy string

const (
	CancelledByUser      CancelledBy = "user"
	CancelledByCollector CancelledBy = "collector"
	CancelledByAdmin     CancelledBy = "admin"
)

// Pickup is one scheduled waste-collection request.
type Pickup struct {
	ID     uuid.UUID
	UserID uuid.UUID

	WasteType           WasteType
	PickupDate          time.Time
	TimeSlot            TimeSlot
	Address             string
	ContactPhone        string
	EstimatedWeight     float64
	SpecialInstructions string

	Status             Status
	AssignedCollector  *uuid.UUID
	ActualWeight       *float64
	ActualPickupTime   *time.Time

	// VerificationCode is assigned once at creation and never changes.
	VerificationCode string

	Rating   *int
	Feedback *string

	// PointsAwarded is the cumulative points granted for this pickup
	// (half at scheduling, topped up to the full value at completion).
	PointsAwarded int

	CancellationReason *string
	CancelledBy        *CancelledBy
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

var basePoints = map[WasteType]int{
	WasteBiodegradable: 10,
	WasteRecyclable:    15,
	WasteEWaste:        20,
	WasteHazardous:     25,
}

// BasePoints returns the flat reward for a waste type.
func BasePoints(w WasteType) int {
	return basePoints[w]
}

// CompletionPoints computes the full reward for a completed pickup:
// the waste type's base value plus the floor of the collected weight.
// Actual weight wins over the estimate when present.
func (p *Pickup) CompletionPoints() int {
	weight := p.EstimatedWeight
	if p.ActualWeight != nil {
		weight = *p.ActualWeight
	}
	if weight < 0 {
		weight = 0
	}
	return basePoints[p.WasteType] + int(math.Floor(weight))
}

// SchedulePoints computes the partial reward granted up front when a
// pickup is scheduled.
func (p *Pickup) SchedulePoints(fraction float64) int {
	if fraction <= 0 || fraction > 1 {
		fraction = 0.5
	}
	return int(math.Floor(float64(p.CompletionPoints()) * fraction))
}
