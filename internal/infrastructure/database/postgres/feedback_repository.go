package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wastetrack/internal/domain/feedback"
	"wastetrack/internal/infrastructure/database/postgres/models"
)

type FeedbackRepository struct {
	db *DB
}

func NewFeedbackRepository(db *DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *feedback.Feedback) error {
	f.ID = uuid.New()
	f.CreatedAt = time.Now()
	f.UpdatedAt = time.Now()
	if f.Status == "" {
		f.Status = feedback.StatusPending
	}
	if f.Priority == "" {
		f.Priority = feedback.PriorityMedium
	}

	dbModel := toFeedbackModel(f)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	f.ID = dbModel.ID
	return nil
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id uuid.UUID) (*feedback.Feedback, error) {
	var dbModel models.FeedbackModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, feedback.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}

	return toFeedbackEntity(&dbModel), nil
}

func (r *FeedbackRepository) Update(ctx context.Context, f *feedback.Feedback) error {
	f.UpdatedAt = time.Now()

	updates := map[string]interface{}{
		"priority":       string(f.Priority),
		"status":         string(f.Status),
		"response":       f.Response,
		"responded_by":   f.RespondedBy,
		"responded_at":   f.RespondedAt,
		"resolved_at":    f.ResolvedAt,
		"closed_at":      f.ClosedAt,
		"rating_comment": f.RatingComment,
		"internal_notes": f.InternalNotes,
		"assigned_to":    f.AssignedTo,
		"updated_at":     f.UpdatedAt,
	}
	if f.Rating != nil {
		rating := string(*f.Rating)
		updates["rating"] = rating
	}

	result := r.db.DB.WithContext(ctx).
		Model(&models.FeedbackModel{}).
		Where("id = ?", f.ID).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update feedback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return feedback.ErrNotFound
	}

	return nil
}

func (r *FeedbackRepository) List(ctx context.Context, filter *feedback.Filter) ([]*feedback.Feedback, int64, error) {
	var dbModels []models.FeedbackModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.FeedbackModel{})

	if filter.UserID != nil {
		db = db.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}
	if filter.Type != nil {
		db = db.Where("type = ?", string(*filter.Type))
	}
	if filter.Priority != nil {
		db = db.Where("priority = ?", string(*filter.Priority))
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
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
		return nil, 0, fmt.Errorf("failed to list feedback: %w", err)
	}

	tickets := make([]*feedback.Feedback, len(dbModels))
	for i := range dbModels {
		tickets[i] = toFeedbackEntity(&dbModels[i])
	}

	return tickets, total, nil
}

func (r *FeedbackRepository) GetStats(ctx context.Context, userID uuid.UUID) (*feedback.Stats, error) {
	stats := &feedback.Stats{
		ByStatus: make(map[string]int64),
		ByType:   make(map[string]int64),
	}

	var statusCounts []struct {
		Status string
		Count  int64
	}
	err := r.db.DB.WithContext(ctx).
		Model(&models.FeedbackModel{}).
		Select("status, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&statusCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}
	for _, sc := range statusCounts {
		stats.ByStatus[sc.Status] = sc.Count
		stats.Total += sc.Count
	}

	var typeCounts []struct {
		Type  string
		Count int64
	}
	err = r.db.DB.WithContext(ctx).
		Model(&models.FeedbackModel{}).
		Select("type, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("type").
		Scan(&typeCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get type counts: %w", err)
	}
	for _, tc := range typeCounts {
		stats.ByType[tc.Type] = tc.Count
	}

	var avgHours *float64
	err = r.db.DB.WithContext(ctx).
		Model(&models.FeedbackModel{}).
		Select("AVG(EXTRACT(EPOCH FROM (responded_at - created_at)) / 3600.0)").
		Where("user_id = ? AND responded_at IS NOT NULL", userID).
		Scan(&avgHours).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get average response time: %w", err)
	}
	if avgHours != nil {
		stats.AvgResponseHours = int64(*avgHours)
	}

	return stats, nil
}

// Helper functions to convert between domain entities and database models
func toFeedbackModel(f *feedback.Feedback) *models.FeedbackModel {
	m := &models.FeedbackModel{
		ID:              f.ID,
		UserID:          f.UserID,
		Type:            string(f.Type),
		Subject:         f.Subject,
		Description:     f.Description,
		Priority:        string(f.Priority),
		Status:          string(f.Status),
		RelatedPickupID: f.RelatedPickupID,
		ContactMethod:   string(f.ContactMethod),
		Response:        f.Response,
		RespondedBy:     f.RespondedBy,
		RespondedAt:     f.RespondedAt,
		ResolvedAt:      f.ResolvedAt,
		ClosedAt:        f.ClosedAt,
		RatingComment:   f.RatingComment,
		InternalNotes:   f.InternalNotes,
		AssignedTo:      f.AssignedTo,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
	if f.Rating != nil {
		rating := string(*f.Rating)
		m.Rating = &rating
	}
	return m
}

func toFeedbackEntity(m *models.FeedbackModel) *feedback.Feedback {
	f := &feedback.Feedback{
		ID:              m.ID,
		UserID:          m.UserID,
		Type:            feedback.Type(m.Type),
		Subject:         m.Subject,
		Description:     m.Description,
		Priority:        feedback.Priority(m.Priority),
		Status:          feedback.Status(m.Status),
		RelatedPickupID: m.RelatedPickupID,
		ContactMethod:   feedback.ContactMethod(m.ContactMethod),
		Response:        m.Response,
		RespondedBy:     m.RespondedBy,
		RespondedAt:     m.RespondedAt,
		ResolvedAt:      m.ResolvedAt,
		ClosedAt:        m.ClosedAt,
		RatingComment:   m.RatingComment,
		InternalNotes:   m.InternalNotes,
		AssignedTo:      m.AssignedTo,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Rating != nil {
		rating := feedback.ResponseRating(*m.Rating)
		f.Rating = &rating
	}
	return f
}
