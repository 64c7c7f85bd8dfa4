package declaration

import (
	"time"

	"github.com/google/uuid"

	domainDeclaration "wastetrack/internal/domain/declaration"
)

type LineItemPayload struct {
	Category       string  `json:"category" validate:"required,max=50"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Unit           string  `json:"unit" validate:"omitempty,oneof=kg tons"`
	Description    string  `json:"description" validate:"omitempty,max=500"`
	DisposalMethod string  `json:"disposal_method" validate:"omitempty,oneof=Recycling Incineration Landfill Treatment Other"`
}

type CompliancePayload struct {
	IsPollutionCertValid bool       `json:"is_pollution_cert_valid"`
	CertificateNumber    string     `json:"certificate_number" validate:"omitempty,max=100"`
	CertificateExpiry    *time.Time `json:"certificate_expiry"`
	IsProperlySegregated bool       `json:"is_properly_segregated"`
}

type DocumentPayload struct {
	Name string `json:"name" validate:"required,max=255"`
	URL  string `json:"url" validate:"required,url"`
	Type string `json:"type" validate:"omitempty,max=50"`
}

type SubmitRequest struct {
	Month int `json:"month" validate:"required,min=1,max=12"`
	Year  int `json:"year" validate:"required,min=2000,max=2100"`

	Categories []LineItemPayload `json:"categories" validate:"required,min=1,dive"`

	// TotalAmount, when supplied, overrides the derived line-item sum.
	TotalAmount float64 `json:"total_amount" validate:"omitempty,gte=0"`
	TotalUnit   string  `json:"total_unit" validate:"omitempty,oneof=kg tons"`

	Compliance     *CompliancePayload `json:"compliance"`
	Documents      []DocumentPayload  `json:"documents" validate:"omitempty,dive"`
	LinkedPickupID *uuid.UUID         `json:"linked_pickup_id"`
	Draft          bool               `json:"draft"`
}

type ReviewRequest struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes" validate:"omitempty,max=1000"`
}

type ListQuery struct {
	Status   string `form:"status"`
	Year     int    `form:"year"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type LineItemResponse struct {
	Category       string  `json:"category"`
	Amount         float64 `json:"amount"`
	Unit           string  `json:"unit"`
	Description    string  `json:"description,omitempty"`
	DisposalMethod string  `json:"disposal_method,omitempty"`
}

type DocumentResponse struct {
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Type       string    `json:"type,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type DeclarationResponse struct {
	ID         uuid.UUID `json:"id"`
	IndustryID uuid.UUID `json:"industry_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`

	Categories []LineItemResponse `json:"categories"`

	TotalAmount float64 `json:"total_amount"`
	TotalUnit   string  `json:"total_unit"`

	TrackingID string `json:"tracking_id"`
	Status     string `json:"status"`

	Compliance CompliancePayload  `json:"compliance"`
	Documents  []DocumentResponse `json:"documents"`

	LinkedPickupID *uuid.UUID `json:"linked_pickup_id,omitempty"`

	ReviewedBy  *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewNotes string     `json:"review_notes,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`

	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type StatsResponse struct {
	TotalDeclarations  int64              `json:"total_declarations"`
	StatusBreakdown    map[string]int64   `json:"status_breakdown"`
	TotalWasteThisYear float64            `json:"total_waste_this_year"`
	CategoryBreakdown  map[string]float64 `json:"category_breakdown"`
	PendingApprovals   int64              `json:"pending_approvals"`
}

// CertificateResponse is the disposal certificate payload for an
// approved declaration.
type CertificateResponse struct {
	CertificateID string    `json:"certificate_id"`
	TrackingID    string    `json:"tracking_id"`
	IndustryName  string    `json:"industry_name"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	TotalAmount   float64   `json:"total_amount"`
	TotalUnit     string    `json:"total_unit"`
	ApprovedAt    time.Time `json:"approved_at"`
	IssuedAt      time.Time `json:"issued_at"`
}

func ToDeclarationResponse(d *domainDeclaration.Declaration) *DeclarationResponse {
	if d == nil {
		return nil
	}
	resp := &DeclarationResponse{
		ID:             d.ID,
		IndustryID:     d.IndustryID,
		Month:          d.Period.Month,
		Year:           d.Period.Year,
		Categories:     make([]LineItemResponse, 0, len(d.Categories)),
		TotalAmount:    d.TotalAmount,
		TotalUnit:      string(d.TotalUnit),
		TrackingID:     d.TrackingID,
		Status:         string(d.Status),
		Documents:      make([]DocumentResponse, 0, len(d.Documents)),
		LinkedPickupID: d.LinkedPickupID,
		ReviewedBy:     d.ReviewedBy,
		ReviewNotes:    d.ReviewNotes,
		ReviewedAt:     d.ReviewedAt,
		SubmittedAt:    d.SubmittedAt,
		ApprovedAt:     d.ApprovedAt,
		CreatedAt:      d.CreatedAt,
		Compliance: CompliancePayload{
			IsPollutionCertValid: d.Compliance.IsPollutionCertValid,
			CertificateNumber:    d.Compliance.CertificateNumber,
			CertificateExpiry:    d.Compliance.CertificateExpiry,
			IsProperlySegregated: d.Compliance.IsProperlySegregated,
		},
	}
	for _, li := range d.Categories {
		resp.Categories = append(resp.Categories, LineItemResponse{
			Category:       string(li.Category),
			Amount:         li.Amount,
			Unit:           string(li.Unit),
			Description:    li.Description,
			DisposalMethod: string(li.DisposalMethod),
		})
	}
	for _, doc := range d.Documents {
		resp.Documents = append(resp.Documents, DocumentResponse{
			Name:       doc.Name,
			URL:        doc.URL,
			Type:       doc.Type,
			UploadedAt: doc.UploadedAt,
		})
	}
	return resp
}
