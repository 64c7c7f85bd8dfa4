package tracking

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Status is the shipment lifecycle state of a tracked waste consignment.
type Status string

const (
	StatusScheduled  Status = "Scheduled"
	StatusCollected  Status = "Collected"
	StatusInTransit  Status = "In Transit"
	StatusAtFacility Status = "At Facility"
	StatusDisposed   Status = "Disposed"
	StatusCancelled  Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCollected, StatusInTransit,
		StatusAtFacility, StatusDisposed, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether a status admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusDisposed || s == StatusCancelled
}

// ManifestWasteType classifies the tracked consignment.
type ManifestWasteType string

const (
	ManifestHazardous    ManifestWasteType = "Hazardous"
	ManifestNonHazardous ManifestWasteType = "Non-Hazardous"
	ManifestEWaste       ManifestWasteType = "E-Waste"
	ManifestBiomedical   ManifestWasteType = "Biomedical"
	ManifestPlastic      ManifestWasteType = "Plastic"
	ManifestMetal        ManifestWasteType = "Metal"
	ManifestChemical     ManifestWasteType = "Chemical"
	ManifestOther        ManifestWasteType = "Other"
)

// HazardLevel grades the consignment's danger.
type HazardLevel string

const (
	HazardLow     HazardLevel = "Low"
	HazardMedium  HazardLevel = "Medium"
	HazardHigh    HazardLevel = "High"
	HazardExtreme HazardLevel = "Extreme"
)

// DisposalMethod is how the waste was finally handled.
type DisposalMethod string

const (
	DisposalRecycling    DisposalMethod = "Recycling"
	DisposalIncineration DisposalMethod = "Incineration"
	DisposalLandfill     DisposalMethod = "Landfill"
	DisposalTreatment    DisposalMethod = "Treatment"
	DisposalComposting   DisposalMethod = "Composting"
	DisposalOther        DisposalMethod = "Other"
)

// Manifest describes what is being shipped.
type Manifest struct {
	WasteType   ManifestWasteType
	Quantity    float64
	Unit        string
	Description string
	HazardLevel HazardLevel
}

// Collection holds pickup-side details of the shipment.
type Collection struct {
	ScheduledDate  *time.Time
	CollectedDate  *time.Time
	CollectorName  string
	VehicleNumber  string
	CollectorNotes string
}

// Disposal holds facility-side details of the shipment.
type Disposal struct {
	FacilityName   string
	DisposalDate   *time.Time
	DisposalMethod DisposalMethod
	CertificateURL string
}

// Location is an optional geotag on a history entry.
type Location struct {
	Lat     *float64
	Lng     *float64
	Address string
}

// HistoryEntry is one row of the append-only status ledger.
type HistoryEntry struct {
	Status    Status
	Timestamp time.Time
	UpdatedBy string
	Notes     string
	Location  *Location
}

// Record tracks one physical waste shipment from scheduling to disposal.
// The invariant held throughout: Status always equals the status of the
// most recently appended history entry, and history is never rewritten.
type Record struct {
	ID           uuid.UUID
	TrackingID   string
	IndustryID   uuid.UUID
	IndustryName string
	PickupID     uuid.UUID

	Manifest   Manifest
	Collection Collection
	Disposal   Disposal

	Status  Status
	History []HistoryEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AddStatusUpdate sets the current status and appends a ledger entry.
// It performs no transition validation: collectors and admins may set any
// status (operator override). Callers wanting strict transitions check
// CanTransition first.
func (r *Record) AddStatusUpdate(status Status, updatedBy, notes string, location *Location) {
	now := time.Now()
	r.Status = status
	r.History = append(r.History, HistoryEntry{
		Status:    status,
		Timestamp: now,
		UpdatedBy: updatedBy,
		Notes:     notes,
		Location:  location,
	})

	// Opportunistic side-field stamping.
	switch status {
	case StatusCollected:
		r.Collection.CollectedDate = &now
	case StatusDisposed:
		r.Disposal.DisposalDate = &now
	}
}

const (
	trackingPrefix = "WM"
	sequenceDigits = 6
)

var trackingIDPattern = regexp.MustCompile(`^WM-(\d{4})-(\d{6})$`)

// FormatTrackingID renders a tracking ID: WM-<year>-<6-digit sequence>.
func FormatTrackingID(year, sequence int) string {
	return fmt.Sprintf("%s-%04d-%0*d", trackingPrefix, year, sequenceDigits, sequence)
}

// YearPrefix returns the ID prefix shared by all records of a year.
func YearPrefix(year int) string {
	return fmt.Sprintf("%s-%04d-", trackingPrefix, year)
}

// ParseTrackingID extracts the year and sequence from a tracking ID.
func ParseTrackingID(id string) (year, sequence int, err error) {
	m := trackingIDPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, 0, ErrInvalidTrackingID
	}
	year, _ = strconv.Atoi(m[1])
	sequence, _ = strconv.Atoi(m[2])
	return year, sequence, nil
}
