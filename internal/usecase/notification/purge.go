package notification

import (
	"context"
	"time"

	"go.uber.org/zap"

	"wastetrack/internal/logger"
)

// StartPurgeJob runs a background job that removes expired
// notifications until the context is cancelled.
func (s *Service) StartPurgeJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Notification purge job started",
		zap.Duration("interval", interval),
	)

	s.purgeExpired(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification purge job stopped")
			return
		case <-ticker.C:
			s.purgeExpired(ctx)
		}
	}
}

func (s *Service) purgeExpired(ctx context.Context) {
	deleted, err := s.notificationRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		logger.Error("Failed to purge expired notifications", zap.Error(err))
		return
	}

	if deleted > 0 {
		logger.Debug("Expired notifications purged",
			zap.Int64("deleted", deleted),
		)
	}
}
