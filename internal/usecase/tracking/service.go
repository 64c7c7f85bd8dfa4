package tracking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainTracking "wastetrack/internal/domain/tracking"
	domainUser "wastetrack/internal/domain/user"
	"wastetrack/internal/logger"
	appErrors "wastetrack/pkg/errors"
	"wastetrack/pkg/utils"
)

// createRetries bounds the ID-generation retry loop when two records
// race for the same sequence number.
const createRetries = 3

// Service implements waste tracking use cases
type Service struct {
	trackingRepo domainTracking.Repository
	userRepo     domainUser.Repository
}

func NewService(trackingRepo domainTracking.Repository, userRepo domainUser.Repository) *Service {
	return &Service{
		trackingRepo: trackingRepo,
		userRepo:     userRepo,
	}
}

func (s *Service) Create(ctx context.Context, industryID uuid.UUID, req *CreateRequest) (*RecordResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	u, err := s.userRepo.GetByID(ctx, industryID)
	if err != nil {
		return nil, err
	}

	rec := &domainTracking.Record{
		IndustryID:   industryID,
		IndustryName: industryName(u),
		Manifest: domainTracking.Manifest{
			WasteType:   domainTracking.ManifestWasteType(req.WasteType),
			Quantity:    req.Quantity,
			Unit:        req.Unit,
			Description: req.Description,
			HazardLevel: domainTracking.HazardLevel(req.HazardLevel),
		},
		Collection: domainTracking.Collection{
			ScheduledDate: req.ScheduledDate,
		},
	}
	if rec.Manifest.Unit == "" {
		rec.Manifest.Unit = "kg"
	}
	if rec.Manifest.HazardLevel == "" {
		rec.Manifest.HazardLevel = domainTracking.HazardLow
	}
	if req.PickupID != nil {
		rec.PickupID = *req.PickupID
	}

	if err := s.createWithGeneratedID(ctx, rec); err != nil {
		return nil, err
	}

	logger.Info("Tracking record created",
		zap.String("tracking_id", rec.TrackingID),
		zap.String("industry_id", industryID.String()),
		zap.String("event", "tracking_created"),
	)

	return ToRecordResponse(rec), nil
}

// CreateForPickup opens a shipment record for a scheduled pickup. Used
// by the pickup flow on a best-effort basis.
func (s *Service) CreateForPickup(ctx context.Context, industryID, pickupID uuid.UUID, wasteType string, weight float64, pickupDate time.Time) (*domainTracking.Record, error) {
	u, err := s.userRepo.GetByID(ctx, industryID)
	if err != nil {
		return nil, err
	}

	scheduled := pickupDate
	rec := &domainTracking.Record{
		IndustryID:   industryID,
		IndustryName: industryName(u),
		PickupID:     pickupID,
		Manifest: domainTracking.Manifest{
			WasteType:   manifestTypeForPickup(wasteType),
			Quantity:    weight,
			Unit:        "kg",
			HazardLevel: domainTracking.HazardLow,
		},
		Collection: domainTracking.Collection{
			ScheduledDate: &scheduled,
		},
	}
	if rec.Manifest.WasteType == domainTracking.ManifestHazardous {
		rec.Manifest.HazardLevel = domainTracking.HazardHigh
	}

	if err := s.createWithGeneratedID(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// createWithGeneratedID assigns the next sequential tracking ID and
// writes the record with its opening history entry. A duplicate-key
// collision means another writer took the sequence number first; the
// generation is retried a bounded number of times.
func (s *Service) createWithGeneratedID(ctx context.Context, rec *domainTracking.Record) error {
	rec.Status = domainTracking.StatusScheduled
	rec.AddStatusUpdate(domainTracking.StatusScheduled, rec.IndustryName, "Shipment scheduled", nil)

	year := time.Now().Year()
	var lastErr error
	for attempt := 0; attempt < createRetries; attempt++ {
		seq, err := s.trackingRepo.MaxSequenceForYear(ctx, year)
		if err != nil {
			return err
		}
		rec.TrackingID = domainTracking.FormatTrackingID(year, seq+1)

		err = s.trackingRepo.Create(ctx, rec)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domainTracking.ErrDuplicateID) {
			return err
		}
		lastErr = err
		logger.Warn("Tracking ID collision, retrying",
			zap.String("tracking_id", rec.TrackingID),
			zap.Int("attempt", attempt+1),
		)
	}
	return fmt.Errorf("failed to allocate tracking id: %w", lastErr)
}

// Track resolves a tracking ID. Public: no ownership check.
func (s *Service) Track(ctx context.Context, trackingID string) (*RecordResponse, error) {
	if _, _, err := domainTracking.ParseTrackingID(trackingID); err != nil {
		return nil, err
	}

	rec, err := s.trackingRepo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	return ToRecordResponse(rec), nil
}

func (s *Service) MyTrackings(ctx context.Context, industryID uuid.UUID, query *ListQuery) ([]*RecordResponse, int64, error) {
	filter := &domainTracking.Filter{
		IndustryID: &industryID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	if query.Status != "" {
		status := domainTracking.Status(query.Status)
		if !status.Valid() {
			return nil, 0, domainTracking.ErrInvalidStatus
		}
		filter.Status = &status
	}

	records, total, err := s.trackingRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*RecordResponse, len(records))
	for i, rec := range records {
		responses[i] = ToRecordResponse(rec)
	}
	return responses, total, nil
}

func (s *Service) All(ctx context.Context, query *ListQuery) ([]*RecordResponse, int64, error) {
	filter := &domainTracking.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Status != "" {
		status := domainTracking.Status(query.Status)
		if !status.Valid() {
			return nil, 0, domainTracking.ErrInvalidStatus
		}
		filter.Status = &status
	}

	records, total, err := s.trackingRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*RecordResponse, len(records))
	for i, rec := range records {
		responses[i] = ToRecordResponse(rec)
	}
	return responses, total, nil
}

func (s *Service) Stats(ctx context.Context, industryID uuid.UUID) (*StatsResponse, error) {
	stats, err := s.trackingRepo.GetStats(ctx, industryID)
	if err != nil {
		return nil, err
	}
	return ToStatsResponse(stats), nil
}

// UpdateStatus appends a status change to the shipment ledger. Terminal
// records are frozen; beyond that any status may be set so operators
// can correct mistakes.
func (s *Service) UpdateStatus(ctx context.Context, trackingID, updatedBy string, req *UpdateStatusRequest) (*RecordResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	status := domainTracking.Status(req.Status)
	if !status.Valid() {
		return nil, domainTracking.ErrInvalidStatus
	}

	rec, err := s.trackingRepo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	if rec.Status.Terminal() {
		return nil, appErrors.NewAppError("TERMINAL_STATUS",
			fmt.Sprintf("Record is %s and can no longer change", rec.Status), nil)
	}

	var location *domainTracking.Location
	if req.Location != nil {
		location = &domainTracking.Location{
			Lat:     req.Location.Lat,
			Lng:     req.Location.Lng,
			Address: req.Location.Address,
		}
	}

	rec.AddStatusUpdate(status, updatedBy, req.Notes, location)

	switch status {
	case domainTracking.StatusCollected:
		if req.CollectorName != "" {
			rec.Collection.CollectorName = req.CollectorName
		}
		if req.VehicleNumber != "" {
			rec.Collection.VehicleNumber = req.VehicleNumber
		}
		if req.Notes != "" {
			rec.Collection.CollectorNotes = req.Notes
		}
	case domainTracking.StatusAtFacility, domainTracking.StatusDisposed:
		if req.FacilityName != "" {
			rec.Disposal.FacilityName = req.FacilityName
		}
		if req.DisposalMethod != "" {
			rec.Disposal.DisposalMethod = domainTracking.DisposalMethod(req.DisposalMethod)
		}
		if req.CertificateURL != "" {
			rec.Disposal.CertificateURL = req.CertificateURL
		}
	}

	if err := s.trackingRepo.Update(ctx, rec); err != nil {
		return nil, err
	}

	logger.Info("Tracking status updated",
		zap.String("tracking_id", trackingID),
		zap.String("status", string(status)),
		zap.String("updated_by", updatedBy),
		zap.String("event", "tracking_status_updated"),
	)

	return ToRecordResponse(rec), nil
}

// AppendStatus is the best-effort variant used by the pickup flow when
// a linked pickup changes state. Frozen records are skipped silently.
func (s *Service) AppendStatus(ctx context.Context, pickupID uuid.UUID, status domainTracking.Status, updatedBy, notes string) {
	rec, err := s.trackingRepo.GetByPickupID(ctx, pickupID)
	if err != nil {
		if !errors.Is(err, domainTracking.ErrNotFound) {
			logger.Error("Failed to load linked tracking record",
				zap.String("pickup_id", pickupID.String()),
				zap.Error(err),
			)
		}
		return
	}
	if rec.Status.Terminal() {
		return
	}

	rec.AddStatusUpdate(status, updatedBy, notes, nil)
	if err := s.trackingRepo.Update(ctx, rec); err != nil {
		logger.Error("Failed to append tracking status",
			zap.String("tracking_id", rec.TrackingID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
	}
}

func (s *Service) Delete(ctx context.Context, trackingID string) error {
	if err := s.trackingRepo.Delete(ctx, trackingID); err != nil {
		return err
	}
	logger.Info("Tracking record deleted",
		zap.String("tracking_id", trackingID),
		zap.String("event", "tracking_deleted"),
	)
	return nil
}

func industryName(u *domainUser.User) string {
	if u.CompanyName != nil && *u.CompanyName != "" {
		return *u.CompanyName
	}
	return u.Name
}

func manifestTypeForPickup(wasteType string) domainTracking.ManifestWasteType {
	switch wasteType {
	case "hazardous":
		return domainTracking.ManifestHazardous
	case "e-waste":
		return domainTracking.ManifestEWaste
	case "recyclable":
		return domainTracking.ManifestPlastic
	default:
		return domainTracking.ManifestNonHazardous
	}
}
