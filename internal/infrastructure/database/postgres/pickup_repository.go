package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wastetrack/internal/domain/pickup"
	"wastetrack/internal/infrastructure/database/postgres/models"
)

type PickupRepository struct {
	db *DB
}

func NewPickupRepository(db *DB) *PickupRepository {
	return &PickupRepository{db: db}
}

func (r *PickupRepository) Create(ctx context.Context, p *pickup.Pickup) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	if p.Status == "" {
		p.Status = pickup.StatusScheduled
	}

	dbModel := toPickupModel(p)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create pickup: %w", err)
	}

	p.ID = dbModel.ID
	p.CreatedAt = dbModel.CreatedAt
	p.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *PickupRepository) GetByID(ctx context.Context, id uuid.UUID) (*pickup.Pickup, error) {
	var dbModel models.PickupModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pickup.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pickup: %w", err)
	}

	return toPickupEntity(&dbModel), nil
}

func (r *PickupRepository) Update(ctx context.Context, p *pickup.Pickup) error {
	p.UpdatedAt = time.Now()

	updates := map[string]interface{}{
		"waste_type":           string(p.WasteType),
		"pickup_date":          p.PickupDate,
		"time_slot":            string(p.TimeSlot),
		"address":              p.Address,
		"contact_phone":        p.ContactPhone,
		"estimated_weight":     p.EstimatedWeight,
		"special_instructions": p.SpecialInstructions,
		"status":               string(p.Status),
		"assigned_collector":   p.AssignedCollector,
		"actual_weight":        p.ActualWeight,
		"actual_pickup_time":   p.ActualPickupTime,
		"rating":               p.Rating,
		"feedback":             p.Feedback,
		"points_awarded":       p.PointsAwarded,
		"cancellation_reason":  p.CancellationReason,
		"cancelled_at":         p.CancelledAt,
		"updated_at":           p.UpdatedAt,
	}
	if p.CancelledBy != nil {
		updates["cancelled_by"] = string(*p.CancelledBy)
	}

	result := r.db.DB.WithContext(ctx).
		Model(&models.PickupModel{}).
		Where("id = ?", p.ID).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update pickup: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pickup.ErrNotFound
	}

	return nil
}

func (r *PickupRepository) List(ctx context.Context, filter *pickup.Filter) ([]*pickup.Pickup, int64, error) {
	var dbModels []models.PickupModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.PickupModel{})

	if filter.UserID != nil {
		db = db.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}
	if filter.DateAfter != nil {
		db = db.Where("pickup_date >= ?", *filter.DateAfter)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pickups: %w", err)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	err := db.Order("pickup_date DESC, created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pickups: %w", err)
	}

	pickups := make([]*pickup.Pickup, len(dbModels))
	for i := range dbModels {
		pickups[i] = toPickupEntity(&dbModels[i])
	}

	return pickups, total, nil
}

func (r *PickupRepository) GetStats(ctx context.Context, userID uuid.UUID) (*pickup.Stats, error) {
	stats := &pickup.Stats{
		StatusBreakdown: make(map[string]int64),
	}

	var statusCounts []struct {
		Status string
		Count  int64
	}
	err := r.db.DB.WithContext(ctx).
		Model(&models.PickupModel{}).
		Select("status, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&statusCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}
	for _, sc := range statusCounts {
		stats.StatusBreakdown[sc.Status] = sc.Count
		stats.TotalPickups += sc.Count
	}

	var aggregates struct {
		TotalWeight float64
		TotalPoints int64
	}
	err = r.db.DB.WithContext(ctx).
		Model(&models.PickupModel{}).
		Select("COALESCE(SUM(COALESCE(actual_weight, estimated_weight)), 0) as total_weight, COALESCE(SUM(points_awarded), 0) as total_points").
		Where("user_id = ? AND status = ?", userID, string(pickup.StatusCompleted)).
		Scan(&aggregates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pickup aggregates: %w", err)
	}
	stats.TotalWeightCollected = aggregates.TotalWeight
	stats.TotalPointsEarned = aggregates.TotalPoints

	err = r.db.DB.WithContext(ctx).
		Model(&models.PickupModel{}).
		Where("user_id = ? AND status IN ? AND pickup_date >= ?",
			userID,
			[]string{string(pickup.StatusScheduled), string(pickup.StatusConfirmed)},
			time.Now().Truncate(24*time.Hour)).
		Count(&stats.UpcomingPickups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming pickups: %w", err)
	}

	return stats, nil
}

func (r *PickupRepository) CompletedByUser(ctx context.Context, userID uuid.UUID) ([]*pickup.Pickup, error) {
	var dbModels []models.PickupModel
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(pickup.StatusCompleted)).
		Order("created_at ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list completed pickups: %w", err)
	}

	pickups := make([]*pickup.Pickup, len(dbModels))
	for i := range dbModels {
		pickups[i] = toPickupEntity(&dbModels[i])
	}
	return pickups, nil
}

// Helper functions to convert between domain entities and database models
func toPickupModel(p *pickup.Pickup) *models.PickupModel {
	m := &models.PickupModel{
		ID:                  p.ID,
		UserID:              p.UserID,
		WasteType:           string(p.WasteType),
		PickupDate:          p.PickupDate,
		TimeSlot:            string(p.TimeSlot),
		Address:             p.Address,
		ContactPhone:        p.ContactPhone,
		EstimatedWeight:     p.EstimatedWeight,
		SpecialInstructions: p.SpecialInstructions,
		Status:              string(p.Status),
		AssignedCollector:   p.AssignedCollector,
		ActualWeight:        p.ActualWeight,
		ActualPickupTime:    p.ActualPickupTime,
		VerificationCode:    p.VerificationCode,
		Rating:              p.Rating,
		Feedback:            p.Feedback,
		PointsAwarded:       p.PointsAwarded,
		CancellationReason:  p.CancellationReason,
		CancelledAt:         p.CancelledAt,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
	if p.CancelledBy != nil {
		cancelledBy := string(*p.CancelledBy)
		m.CancelledBy = &cancelledBy
	}
	return m
}

func toPickupEntity(m *models.PickupModel) *pickup.Pickup {
	p := &pickup.Pickup{
		ID:                  m.ID,
		UserID:              m.UserID,
		WasteType:           pickup.WasteType(m.WasteType),
		PickupDate:          m.PickupDate,
		TimeSlot:            pickup.TimeSlot(m.TimeSlot),
		Address:             m.Address,
		ContactPhone:        m.ContactPhone,
		EstimatedWeight:     m.EstimatedWeight,
		SpecialInstructions: m.SpecialInstructions,
		Status:              pickup.Status(m.Status),
		AssignedCollector:   m.AssignedCollector,
		ActualWeight:        m.ActualWeight,
		ActualPickupTime:    m.ActualPickupTime,
		VerificationCode:    m.VerificationCode,
		Rating:              m.Rating,
		Feedback:            m.Feedback,
		PointsAwarded:       m.PointsAwarded,
		CancellationReason:  m.CancellationReason,
		CancelledAt:         m.CancelledAt,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if m.CancelledBy != nil {
		cancelledBy := pickup.CancelledBy(*m.CancelledBy)
		p.CancelledBy = &cancelledBy
	}
	return p
}
