package notification

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainNotification "wastetrack/internal/domain/notification"
)

// Service implements notification use cases
type Service struct {
	notificationRepo domainNotification.Repository
}

func NewService(notificationRepo domainNotification.Repository) *Service {
	return &Service{notificationRepo: notificationRepo}
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, query *ListQuery) ([]*NotificationResponse, int64, error) {
	notifications, total, err := s.notificationRepo.ListByUser(ctx, userID, query.UnreadOnly, query.Page, query.PageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = ToNotificationResponse(n)
	}
	return responses, total, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (*UnreadCountResponse, error) {
	count, err := s.notificationRepo.UnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UnreadCountResponse{UnreadCount: count}, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*NotificationResponse, error) {
	n, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, domainNotification.ErrNotOwner
	}

	n.MarkRead(time.Now())
	if err := s.notificationRepo.Update(ctx, n); err != nil {
		return nil, err
	}
	return ToNotificationResponse(n), nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, userID, time.Now())
}

func (s *Service) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	n, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return domainNotification.ErrNotOwner
	}
	return s.notificationRepo.Delete(ctx, notificationID)
}

func (s *Service) ClearAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notificationRepo.DeleteAllForUser(ctx, userID)
}
