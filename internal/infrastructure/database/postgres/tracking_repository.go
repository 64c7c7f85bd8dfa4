package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"wastetrack/internal/domain/tracking"
	"wastetrack/internal/infrastructure/database/postgres/models"
)

type TrackingRepository struct {
	db *DB
}

func NewTrackingRepository(db *DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *TrackingRepository) Create(ctx context.Context, rec *tracking.Record) error {
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = time.Now()
	if rec.Status == "" {
		rec.Status = tracking.StatusScheduled
	}

	dbModel := toTrackingModel(rec)
	dbModel.History = toHistoryModels(rec.ID, rec.History)

	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if isUniqueViolation(err) {
			return tracking.ErrDuplicateID
		}
		return fmt.Errorf("failed to create tracking record: %w", err)
	}

	rec.ID = dbModel.ID
	rec.CreatedAt = dbModel.CreatedAt
	rec.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *TrackingRepository) GetByTrackingID(ctx context.Context, trackingID string) (*tracking.Record, error) {
	var dbModel models.TrackingModel
	err := r.db.DB.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("tracking_history.id ASC")
		}).
		Where("tracking_id = ?", trackingID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, tracking.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tracking record: %w", err)
	}

	return toTrackingEntity(&dbModel), nil
}

func (r *TrackingRepository) GetByPickupID(ctx context.Context, pickupID uuid.UUID) (*tracking.Record, error) {
	var dbModel models.TrackingModel
	err := r.db.DB.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("tracking_history.id ASC")
		}).
		Where("pickup_id = ?", pickupID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, tracking.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tracking record by pickup: %w", err)
	}

	return toTrackingEntity(&dbModel), nil
}

// Update persists the record's mutable fields and appends any new
// history rows. History rows already stored are left untouched.
func (r *TrackingRepository) Update(ctx context.Context, rec *tracking.Record) error {
	rec.UpdatedAt = time.Now()

	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.TrackingModel{}).
			Where("id = ?", rec.ID).
			Updates(map[string]interface{}{
				"status":            string(rec.Status),
				"waste_type":        string(rec.Manifest.WasteType),
				"quantity":          rec.Manifest.Quantity,
				"unit":              rec.Manifest.Unit,
				"hazard_level":      string(rec.Manifest.HazardLevel),
				"description":       rec.Manifest.Description,
				"scheduled_date":    rec.Collection.ScheduledDate,
				"collected_date":    rec.Collection.CollectedDate,
				"collector_name":    rec.Collection.CollectorName,
				"vehicle_number":    rec.Collection.VehicleNumber,
				"collector_notes":   rec.Collection.CollectorNotes,
				"disposal_facility": rec.Disposal.FacilityName,
				"disposal_method":   string(rec.Disposal.DisposalMethod),
				"disposal_date":     rec.Disposal.DisposalDate,
				"certificate_url":   rec.Disposal.CertificateURL,
				"updated_at":        rec.UpdatedAt,
			})

		if result.Error != nil {
			return fmt.Errorf("failed to update tracking record: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return tracking.ErrNotFound
		}

		var stored int64
		if err := tx.Model(&models.TrackingHistoryModel{}).
			Where("tracking_record_id = ?", rec.ID).
			Count(&stored).Error; err != nil {
			return fmt.Errorf("failed to count history rows: %w", err)
		}

		if int(stored) < len(rec.History) {
			newRows := toHistoryModels(rec.ID, rec.History[stored:])
			if err := tx.Create(&newRows).Error; err != nil {
				return fmt.Errorf("failed to append history: %w", err)
			}
		}

		return nil
	})
}

func (r *TrackingRepository) Delete(ctx context.Context, trackingID string) error {
	result := r.db.DB.WithContext(ctx).
		Where("tracking_id = ?", trackingID).
		Delete(&models.TrackingModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete tracking record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return tracking.ErrNotFound
	}

	return nil
}

func (r *TrackingRepository) List(ctx context.Context, filter *tracking.Filter) ([]*tracking.Record, int64, error) {
	var dbModels []models.TrackingModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.TrackingModel{}).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("tracking_history.id ASC")
		})

	if filter.IndustryID != nil {
		db = db.Where("industry_id = ?", *filter.IndustryID)
	}
	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at <= ?", *filter.CreatedBefore)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tracking records: %w", err)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	err := db.Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tracking records: %w", err)
	}

	records := make([]*tracking.Record, len(dbModels))
	for i := range dbModels {
		records[i] = toTrackingEntity(&dbModels[i])
	}

	return records, total, nil
}

func (r *TrackingRepository) GetStats(ctx context.Context, industryID uuid.UUID) (*tracking.Stats, error) {
	stats := &tracking.Stats{}

	var statusCounts []struct {
		Status string
		Count  int64
	}
	err := r.db.DB.WithContext(ctx).
		Model(&models.TrackingModel{}).
		Select("status, COUNT(*) as count").
		Where("industry_id = ?", industryID).
		Group("status").
		Scan(&statusCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}

	for _, sc := range statusCounts {
		stats.Total += sc.Count
		switch tracking.Status(sc.Status) {
		case tracking.StatusScheduled:
			stats.Scheduled = sc.Count
		case tracking.StatusCollected:
			stats.Collected = sc.Count
		case tracking.StatusInTransit:
			stats.InTransit = sc.Count
		case tracking.StatusAtFacility:
			stats.AtFacility = sc.Count
		case tracking.StatusDisposed:
			stats.Disposed = sc.Count
		case tracking.StatusCancelled:
			stats.Cancelled = sc.Count
		}
	}

	err = r.db.DB.WithContext(ctx).
		Model(&models.TrackingModel{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("industry_id = ? AND status = ?", industryID, string(tracking.StatusDisposed)).
		Scan(&stats.TotalWasteDisposed).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum disposed waste: %w", err)
	}

	return stats, nil
}

func (r *TrackingRepository) MaxSequenceForYear(ctx context.Context, year int) (int, error) {
	var maxID *string
	err := r.db.DB.WithContext(ctx).
		Model(&models.TrackingModel{}).
		Select("MAX(tracking_id)").
		Where("tracking_id LIKE ?", tracking.YearPrefix(year)+"%").
		Scan(&maxID).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get max tracking id: %w", err)
	}
	if maxID == nil || *maxID == "" {
		return 0, nil
	}

	_, sequence, err := tracking.ParseTrackingID(*maxID)
	if err != nil {
		return 0, err
	}
	return sequence, nil
}

// Helper functions to convert between domain entities and database models
func toTrackingModel(rec *tracking.Record) *models.TrackingModel {
	m := &models.TrackingModel{
		ID:               rec.ID,
		TrackingID:       rec.TrackingID,
		IndustryID:       rec.IndustryID,
		IndustryName:     rec.IndustryName,
		WasteType:        string(rec.Manifest.WasteType),
		Quantity:         rec.Manifest.Quantity,
		Unit:             rec.Manifest.Unit,
		HazardLevel:      string(rec.Manifest.HazardLevel),
		Description:      rec.Manifest.Description,
		Status:           string(rec.Status),
		ScheduledDate:    rec.Collection.ScheduledDate,
		CollectedDate:    rec.Collection.CollectedDate,
		CollectorName:    rec.Collection.CollectorName,
		VehicleNumber:    rec.Collection.VehicleNumber,
		CollectorNotes:   rec.Collection.CollectorNotes,
		DisposalFacility: rec.Disposal.FacilityName,
		DisposalMethod:   string(rec.Disposal.DisposalMethod),
		DisposalDate:     rec.Disposal.DisposalDate,
		CertificateURL:   rec.Disposal.CertificateURL,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
	if rec.PickupID != uuid.Nil {
		pickupID := rec.PickupID
		m.PickupID = &pickupID
	}
	return m
}

func toTrackingEntity(m *models.TrackingModel) *tracking.Record {
	rec := &tracking.Record{
		ID:           m.ID,
		TrackingID:   m.TrackingID,
		IndustryID:   m.IndustryID,
		IndustryName: m.IndustryName,
		Manifest: tracking.Manifest{
			WasteType:   tracking.ManifestWasteType(m.WasteType),
			Quantity:    m.Quantity,
			Unit:        m.Unit,
			Description: m.Description,
			HazardLevel: tracking.HazardLevel(m.HazardLevel),
		},
		Collection: tracking.Collection{
			ScheduledDate:  m.ScheduledDate,
			CollectedDate:  m.CollectedDate,
			CollectorName:  m.CollectorName,
			VehicleNumber:  m.VehicleNumber,
			CollectorNotes: m.CollectorNotes,
		},
		Disposal: tracking.Disposal{
			FacilityName:   m.DisposalFacility,
			DisposalDate:   m.DisposalDate,
			DisposalMethod: tracking.DisposalMethod(m.DisposalMethod),
			CertificateURL: m.CertificateURL,
		},
		Status:    tracking.Status(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.PickupID != nil {
		rec.PickupID = *m.PickupID
	}
	for i := range m.History {
		rec.History = append(rec.History, toHistoryEntry(&m.History[i]))
	}
	return rec
}

func toHistoryModels(recordID uuid.UUID, entries []tracking.HistoryEntry) []models.TrackingHistoryModel {
	rows := make([]models.TrackingHistoryModel, len(entries))
	for i, e := range entries {
		rows[i] = models.TrackingHistoryModel{
			TrackingRecordID: recordID,
			Status:           string(e.Status),
			Timestamp:        e.Timestamp,
			UpdatedBy:        e.UpdatedBy,
			Notes:            e.Notes,
		}
		if e.Location != nil {
			rows[i].LocationLat = e.Location.Lat
			rows[i].LocationLng = e.Location.Lng
			rows[i].LocationAddress = e.Location.Address
		}
	}
	return rows
}

func toHistoryEntry(m *models.TrackingHistoryModel) tracking.HistoryEntry {
	e := tracking.HistoryEntry{
		Status:    tracking.Status(m.Status),
		Timestamp: m.Timestamp,
		UpdatedBy: m.UpdatedBy,
		Notes:     m.Notes,
	}
	if m.LocationLat != nil || m.LocationLng != nil || m.LocationAddress != "" {
		e.Location = &tracking.Location{
			Lat:     m.LocationLat,
			Lng:     m.LocationLng,
			Address: m.LocationAddress,
		}
	}
	return e
}
