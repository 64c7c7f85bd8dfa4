package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wastetrack/internal/domain/waste"
	"wastetrack/internal/infrastructure/database/postgres/models"
)

type WasteRepository struct {
	db *DB
}

func NewWasteRepository(db *DB) *WasteRepository {
	return &WasteRepository{db: db}
}

func (r *WasteRepository) Create(ctx context.Context, rec *waste.Record) error {
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = time.Now()
	if rec.ClassifiedAt.IsZero() {
		rec.ClassifiedAt = rec.CreatedAt
	}

	dbModel := toWasteModel(rec)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create waste record: %w", err)
	}

	rec.ID = dbModel.ID
	return nil
}

func (r *WasteRepository) GetByID(ctx context.Context, id uuid.UUID) (*waste.Record, error) {
	var dbModel models.WasteRecordModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, waste.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get waste record: %w", err)
	}

	return toWasteEntity(&dbModel), nil
}

func (r *WasteRepository) Update(ctx context.Context, rec *waste.Record) error {
	rec.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.WasteRecordModel{}).
		Where("id = ?", rec.ID).
		Updates(map[string]interface{}{
			"properly_segregated":  rec.ProperlySegregated,
			"feedback_is_correct":  rec.FeedbackIsCorrect,
			"feedback_actual_type": rec.FeedbackActualType,
			"feedback_comments":    rec.FeedbackComments,
			"updated_at":           rec.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update waste record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return waste.ErrNotFound
	}

	return nil
}

func (r *WasteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.WasteRecordModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete waste record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return waste.ErrNotFound
	}

	return nil
}

func (r *WasteRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*waste.Record, int64, error) {
	var dbModels []models.WasteRecordModel
	var total int64

	db := r.db.DB.WithContext(ctx).
		Model(&models.WasteRecordModel{}).
		Where("user_id = ?", userID)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count waste records: %w", err)
	}

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	err := db.Order("classified_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list waste records: %w", err)
	}

	records := make([]*waste.Record, len(dbModels))
	for i := range dbModels {
		records[i] = toWasteEntity(&dbModels[i])
	}

	return records, total, nil
}

func (r *WasteRepository) GetStats(ctx context.Context, userID uuid.UUID, recentSince time.Time) (*waste.Stats, error) {
	stats := &waste.Stats{
		CategoryBreakdown: make(map[string]int64),
	}

	var categoryCounts []struct {
		Category string
		Count    int64
	}
	err := r.db.DB.WithContext(ctx).
		Model(&models.WasteRecordModel{}).
		Select("category, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("category").
		Scan(&categoryCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get category counts: %w", err)
	}
	for _, cc := range categoryCounts {
		stats.CategoryBreakdown[cc.Category] = cc.Count
		stats.TotalClassifications += cc.Count
	}

	err = r.db.DB.WithContext(ctx).
		Model(&models.WasteRecordModel{}).
		Where("user_id = ? AND properly_segregated = true", userID).
		Count(&stats.ProperlySegregated).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count segregated records: %w", err)
	}

	err = r.db.DB.WithContext(ctx).
		Model(&models.WasteRecordModel{}).
		Where("user_id = ? AND classified_at >= ?", userID, recentSince).
		Count(&stats.RecentActivity).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count recent records: %w", err)
	}

	return stats, nil
}

// Helper functions to convert between domain entities and database models
func toWasteModel(rec *waste.Record) *models.WasteRecordModel {
	return &models.WasteRecordModel{
		ID:                   rec.ID,
		UserID:               rec.UserID,
		WasteType:            rec.WasteType,
		Category:             string(rec.Category),
		ImageURL:             rec.ImageURL,
		Confidence:           rec.Confidence,
		ProperlySegregated:   rec.ProperlySegregated,
		DisposalInstructions: rec.DisposalInstructions,
		BinColor:             string(rec.BinColor),
		WeightAmount:         rec.WeightAmount,
		WeightUnit:           rec.WeightUnit,
		FeedbackIsCorrect:    rec.FeedbackIsCorrect,
		FeedbackActualType:   rec.FeedbackActualType,
		FeedbackComments:     rec.FeedbackComments,
		ClassifiedAt:         rec.ClassifiedAt,
		CreatedAt:            rec.CreatedAt,
		UpdatedAt:            rec.UpdatedAt,
	}
}

func toWasteEntity(m *models.WasteRecordModel) *waste.Record {
	return &waste.Record{
		ID:                   m.ID,
		UserID:               m.UserID,
		WasteType:            m.WasteType,
		Category:             waste.Category(m.Category),
		ImageURL:             m.ImageURL,
		Confidence:           m.Confidence,
		ProperlySegregated:   m.ProperlySegregated,
		DisposalInstructions: m.DisposalInstructions,
		BinColor:             waste.BinColor(m.BinColor),
		WeightAmount:         m.WeightAmount,
		WeightUnit:           m.WeightUnit,
		FeedbackIsCorrect:    m.FeedbackIsCorrect,
		FeedbackActualType:   m.FeedbackActualType,
		FeedbackComments:     m.FeedbackComments,
		ClassifiedAt:         m.ClassifiedAt,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}
