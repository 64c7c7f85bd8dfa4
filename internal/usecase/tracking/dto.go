package tracking

import (
	"time"

	"github.com/google/uuid"

	domainTracking "wastetrack/internal/domain/tracking"
)

type CreateRequest struct {
	WasteType   string  `json:"waste_type" validate:"required,max=50"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	Unit        string  `json:"unit" validate:"omitempty,oneof=kg tons"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	HazardLevel string  `json:"hazard_level" validate:"omitempty,oneof=Low Medium High Extreme"`

	ScheduledDate *time.Time `json:"scheduled_date"`
	PickupID      *uuid.UUID `json:"pickup_id"`
}

type LocationPayload struct {
	Lat     *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng     *float64 `json:"lng" validate:"omitempty,longitude"`
	Address string   `json:"address" validate:"omitempty,max=255"`
}

type UpdateStatusRequest struct {
	Status   string           `json:"status" validate:"required"`
	Notes    string           `json:"notes" validate:"omitempty,max=1000"`
	Location *LocationPayload `json:"location"`

	// Collection details, applied when moving to Collected.
	CollectorName string `json:"collector_name" validate:"omitempty,max=255"`
	VehicleNumber string `json:"vehicle_number" validate:"omitempty,max=50"`

	// Disposal details, applied when moving to At Facility or Disposed.
	FacilityName   string `json:"facility_name" validate:"omitempty,max=255"`
	DisposalMethod string `json:"disposal_method" validate:"omitempty,max=50"`
	CertificateURL string `json:"certificate_url" validate:"omitempty,url"`
}

type ListQuery struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type HistoryEntryResponse struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	UpdatedBy string           `json:"updated_by"`
	Notes     string           `json:"notes,omitempty"`
	Location  *LocationPayload `json:"location,omitempty"`
}

type RecordResponse struct {
	ID           uuid.UUID `json:"id"`
	TrackingID   string    `json:"tracking_id"`
	IndustryID   uuid.UUID `json:"industry_id"`
	IndustryName string    `json:"industry_name,omitempty"`
	PickupID     string    `json:"pickup_id,omitempty"`

	WasteType   string  `json:"waste_type"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	HazardLevel string  `json:"hazard_level"`
	Description string  `json:"description,omitempty"`

	Status             string   `json:"status"`
	AllowedTransitions []string `json:"allowed_transitions"`

	ScheduledDate  *time.Time `json:"scheduled_date,omitempty"`
	CollectedDate  *time.Time `json:"collected_date,omitempty"`
	CollectorName  string     `json:"collector_name,omitempty"`
	VehicleNumber  string     `json:"vehicle_number,omitempty"`
	CollectorNotes string     `json:"collector_notes,omitempty"`

	DisposalFacility string     `json:"disposal_facility,omitempty"`
	DisposalMethod   string     `json:"disposal_method,omitempty"`
	DisposalDate     *time.Time `json:"disposal_date,omitempty"`
	CertificateURL   string     `json:"certificate_url,omitempty"`

	History []HistoryEntryResponse `json:"history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StatsResponse struct {
	Total              int64   `json:"total"`
	Scheduled          int64   `json:"scheduled"`
	Collected          int64   `json:"collected"`
	InTransit          int64   `json:"in_transit"`
	AtFacility         int64   `json:"at_facility"`
	Disposed           int64   `json:"disposed"`
	Cancelled          int64   `json:"cancelled"`
	TotalWasteDisposed float64 `json:"total_waste_disposed"`
}

func ToRecordResponse(r *domainTracking.Record) *RecordResponse {
	if r == nil {
		return nil
	}
	resp := &RecordResponse{
		ID:               r.ID,
		TrackingID:       r.TrackingID,
		IndustryID:       r.IndustryID,
		IndustryName:     r.IndustryName,
		WasteType:        string(r.Manifest.WasteType),
		Quantity:         r.Manifest.Quantity,
		Unit:             r.Manifest.Unit,
		HazardLevel:      string(r.Manifest.HazardLevel),
		Description:      r.Manifest.Description,
		Status:           string(r.Status),
		ScheduledDate:    r.Collection.ScheduledDate,
		CollectedDate:    r.Collection.CollectedDate,
		CollectorName:    r.Collection.CollectorName,
		VehicleNumber:    r.Collection.VehicleNumber,
		CollectorNotes:   r.Collection.CollectorNotes,
		DisposalFacility: r.Disposal.FacilityName,
		DisposalMethod:   string(r.Disposal.DisposalMethod),
		DisposalDate:     r.Disposal.DisposalDate,
		CertificateURL:   r.Disposal.CertificateURL,
		History:          make([]HistoryEntryResponse, 0, len(r.History)),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.PickupID != uuid.Nil {
		resp.PickupID = r.PickupID.String()
	}
	for _, s := range domainTracking.AllowedTransitions(r.Status) {
		resp.AllowedTransitions = append(resp.AllowedTransitions, string(s))
	}
	if resp.AllowedTransitions == nil {
		resp.AllowedTransitions = []string{}
	}
	for _, e := range r.History {
		entry := HistoryEntryResponse{
			Status:    string(e.Status),
			Timestamp: e.Timestamp,
			UpdatedBy: e.UpdatedBy,
			Notes:     e.Notes,
		}
		if e.Location != nil {
			entry.Location = &LocationPayload{
				Lat:     e.Location.Lat,
				Lng:     e.Location.Lng,
				Address: e.Location.Address,
			}
		}
		resp.History = append(resp.History, entry)
	}
	return resp
}

func ToStatsResponse(s *domainTracking.Stats) *StatsResponse {
	return &StatsResponse{
		Total:              s.Total,
		Scheduled:          s.Scheduled,
		Collected:          s.Collected,
		InTransit:          s.InTransit,
		AtFacility:         s.AtFacility,
		Disposed:           s.Disposed,
		Cancelled:          s.Cancelled,
		TotalWasteDisposed: s.TotalWasteDisposed,
	}
}
