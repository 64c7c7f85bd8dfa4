package waste

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Category is one of the four main waste groups.
type Category string

const (
	CategoryBiodegradable Category = "Biodegradable"
	CategoryRecyclable    Category = "Recyclable"
	CategoryEWaste        Category = "E-waste"
	CategoryHazardous     Category = "Hazardous"
)

// BinColor is the municipal disposal bin for a category.
type BinColor string

const (
	BinGreen  BinColor = "Green"
	BinBlue   BinColor = "Blue"
	BinYellow BinColor = "Yellow"
	BinRed    BinColor = "Red"
)

// Record is one logged classification of an item against the static
// waste guide. Records are independent of pickups.
type Record struct {
	ID     uuid.UUID
	UserID uuid.UUID

	WasteType string
	Category  Category

	ImageURL   string
	Confidence float64

	ProperlySegregated   bool
	DisposalInstructions string
	BinColor             BinColor

	WeightAmount *float64
	WeightUnit   string

	// Optional correctness feedback from the user.
	FeedbackIsCorrect  *bool
	FeedbackActualType string
	FeedbackComments   string

	ClassifiedAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Stats summarizes a user's classification activity.
type Stats struct {
	TotalClassifications int64
	CategoryBreakdown    map[string]int64
	ProperlySegregated   int64
	RecentActivity       int64 // last 7 days
}

// SegregationRate renders the share of properly segregated records as a
// whole percentage string, "0%" for an empty history.
func (s *Stats) SegregationRate() string {
	if s.TotalClassifications == 0 {
		return "0%"
	}
	rate := int(float64(s.ProperlySegregated)/float64(s.TotalClassifications)*100 + 0.5)
	return strconv.Itoa(rate) + "%"
}
