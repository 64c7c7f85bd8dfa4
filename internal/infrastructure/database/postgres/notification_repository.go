package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wastetrack/internal/domain/notification"
	"wastetrack/internal/infrastructure/database/postgres/models"
)

type NotificationRepository struct {
	db *DB
}

func NewNotificationRepository(db *DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	n.ID = uuid.New()
	n.CreatedAt = time.Now()
	if n.Priority == "" {
		n.Priority = notification.PriorityMedium
	}

	dbModel := toNotificationModel(n)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	n.ID = dbModel.ID
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	var dbModel models.NotificationModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notification.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return toNotificationEntity(&dbModel), nil
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("id = ?", n.ID).
		Updates(map[string]interface{}{
			"read":    n.Read,
			"read_at": n.ReadAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notification.ErrNotFound
	}

	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.NotificationModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notification.ErrNotFound
	}

	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, pageSize int) ([]*notification.Notification, int64, error) {
	var dbModels []models.NotificationModel
	var total int64

	db := r.db.DB.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("user_id = ?", userID)
	if unreadOnly {
		db = db.Where("read = false")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	err := db.Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*notification.Notification, len(dbModels))
	for i := range dbModels {
		notifications[i] = toNotificationEntity(&dbModels[i])
	}

	return notifications, total, nil
}

func (r *NotificationRepository) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND read = false", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	result := r.db.DB.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND read = false", userID).
		Updates(map[string]interface{}{
			"read":    true,
			"read_at": at,
		})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *NotificationRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.NotificationModel{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *NotificationRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.DB.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at < ?", before).
		Delete(&models.NotificationModel{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Helper functions to convert between domain entities and database models
func toNotificationModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:                n.ID,
		UserID:            n.UserID,
		Type:              string(n.Type),
		Title:             n.Title,
		Message:           n.Message,
		Icon:              n.Icon,
		Color:             n.Color,
		Read:              n.Read,
		ReadAt:            n.ReadAt,
		RelatedPickupID:   n.RelatedPickupID,
		RelatedFeedbackID: n.RelatedFeedbackID,
		ActionURL:         n.ActionURL,
		ActionLabel:       n.ActionLabel,
		Priority:          string(n.Priority),
		ExpiresAt:         n.ExpiresAt,
		CreatedAt:         n.CreatedAt,
	}
}

func toNotificationEntity(m *models.NotificationModel) *notification.Notification {
	return &notification.Notification{
		ID:                m.ID,
		UserID:            m.UserID,
		Type:              notification.Type(m.Type),
		Title:             m.Title,
		Message:           m.Message,
		Icon:              m.Icon,
		Color:             m.Color,
		Read:              m.Read,
		ReadAt:            m.ReadAt,
		RelatedPickupID:   m.RelatedPickupID,
		RelatedFeedbackID: m.RelatedFeedbackID,
		ActionURL:         m.ActionURL,
		ActionLabel:       m.ActionLabel,
		Priority:          notification.Priority(m.Priority),
		ExpiresAt:         m.ExpiresAt,
		CreatedAt:         m.CreatedAt,
	}
}
