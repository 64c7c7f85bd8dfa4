package declaration

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Status is the review lifecycle of a declaration.
type Status string

const (
	StatusDraft       Status = "Draft"
	StatusSubmitted   Status = "Submitted"
	StatusUnderReview Status = "Under Review"
	StatusApproved    Status = "Approved"
	StatusRejected    Status = "Rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Category is a waste-category line-item classification.
type Category string

const (
	CategoryBiodegradable Category = "Biodegradable"
	CategoryRecyclable    Category = "Recyclable"
	CategoryEWaste        Category = "E-waste"
	CategoryHazardous     Category = "Hazardous"
	CategoryChemical      Category = "Chemical"
	CategoryMetalScrap    Category = "Metal Scrap"
	CategoryPlasticWaste  Category = "Plastic Waste"
	CategoryOther         Category = "Other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryBiodegradable, CategoryRecyclable, CategoryEWaste, CategoryHazardous,
		CategoryChemical, CategoryMetalScrap, CategoryPlasticWaste, CategoryOther:
		return true
	}
	return false
}

// DisposalMethod is the declared handling of a line item.
type DisposalMethod string

const (
	DisposalRecycling    DisposalMethod = "Recycling"
	DisposalIncineration DisposalMethod = "Incineration"
	DisposalLandfill     DisposalMethod = "Landfill"
	DisposalTreatment    DisposalMethod = "Treatment"
	DisposalOther        DisposalMethod = "Other"
)

func (d DisposalMethod) Valid() bool {
	switch d {
	case DisposalRecycling, DisposalIncineration, DisposalLandfill, DisposalTreatment, DisposalOther:
		return true
	}
	return false
}

// Unit is a line-item quantity unit.
type Unit string

const (
	UnitKg   Unit = "kg"
	UnitTons Unit = "tons"
)

// Period identifies the month a declaration covers. A given industry
// may file at most one declaration per period.
type Period struct {
	Month int
	Year  int
}

func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year > 0
}

// LineItem is one waste-category entry inside a declaration.
type LineItem struct {
	Category       Category
	Amount         float64
	Unit           Unit
	Description    string
	DisposalMethod DisposalMethod
}

// Tons normalizes the line item's quantity to tons.
func (li LineItem) Tons() float64 {
	if li.Unit == UnitKg {
		return li.Amount / 1000
	}
	return li.Amount
}

// Compliance captures the industry's self-certification details.
type Compliance struct {
	IsPollutionCertValid bool
	CertificateNumber    string
	CertificateExpiry    *time.Time
	IsProperlySegregated bool
}

// Document is an uploaded supporting file reference.
type Document struct {
	Name       string
	URL        string
	Type       string
	UploadedAt time.Time
}

// Declaration is one industry's periodic waste filing.
type Declaration struct {
	ID         uuid.UUID
	IndustryID uuid.UUID
	Period     Period

	Categories []LineItem

	// TotalAmount/TotalUnit are derived from the line items unless
	// explicitly supplied before persisting.
	TotalAmount float64
	TotalUnit   Unit

	TrackingID string
	Status     Status
	Compliance Compliance
	Documents  []Document

	LinkedPickupID *uuid.UUID

	ReviewedBy  *uuid.UUID
	ReviewNotes string
	ReviewedAt  *time.Time

	SubmittedAt *time.Time
	ApprovedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Normalize fills derived fields before the record is persisted. It is
// idempotent: an already-set tracking ID or explicit total is left alone.
// randomSuffix supplies the 6-character uppercase suffix for the ID.
func (d *Declaration) Normalize(randomSuffix func() string) {
	if d.TrackingID == "" {
		d.TrackingID = FormatTrackingID(d.Period, randomSuffix())
	}

	if d.TotalAmount == 0 && len(d.Categories) > 0 {
		var total float64
		for _, li := range d.Categories {
			total += li.Tons()
		}
		d.TotalAmount = math.Round(total*100) / 100
		d.TotalUnit = UnitTons
	}
	if d.TotalUnit == "" {
		d.TotalUnit = UnitTons
	}
}

// FormatTrackingID renders a declaration tracking ID:
// IW<year><zero-padded month>-<6-char suffix>.
func FormatTrackingID(p Period, suffix string) string {
	return fmt.Sprintf("IW%d%02d-%s", p.Year, p.Month, suffix)
}
