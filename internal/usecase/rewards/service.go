package rewards

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wastetrack/internal/config"
	domainPickup "wastetrack/internal/domain/pickup"
	domainUser "wastetrack/internal/domain/user"
	"wastetrack/internal/logger"
	"wastetrack/internal/notifier"
	appErrors "wastetrack/pkg/errors"
	"wastetrack/pkg/utils"
)

const defaultLeaderboardLimit = 10

// Service implements gamification use cases
type Service struct {
	userRepo   domainUser.Repository
	pickupRepo domainPickup.Repository
	notify     *notifier.Notifier
	config     *config.Config
}

func NewService(
	userRepo domainUser.Repository,
	pickupRepo domainPickup.Repository,
	notify *notifier.Notifier,
	cfg *config.Config,
) *Service {
	return &Service{
		userRepo:   userRepo,
		pickupRepo: pickupRepo,
		notify:     notify,
		config:     cfg,
	}
}

func (s *Service) Leaderboard(ctx context.Context, query *LeaderboardQuery) ([]*LeaderboardEntry, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	users, err := s.userRepo.ListByPoints(ctx, domainUser.RoleCitizen, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]*LeaderboardEntry, len(users))
	for i, u := range users {
		entry, err := s.buildEntry(ctx, u, i+1)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}
	return entries, nil
}

func (s *Service) MyRank(ctx context.Context, userID uuid.UUID) (*RankResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	rank, total, err := s.userRepo.RankByPoints(ctx, userID)
	if err != nil {
		return nil, err
	}

	percentile := 0.0
	if total > 0 {
		percentile = float64(total-int64(rank)) / float64(total) * 100
	}

	// A small window around the caller for context.
	window, err := s.userRepo.ListByPoints(ctx, u.Role, rank+2)
	if err != nil {
		return nil, err
	}
	start := rank - 3
	if start < 0 {
		start = 0
	}
	var nearby []*LeaderboardEntry
	for i := start; i < len(window); i++ {
		entry, err := s.buildEntry(ctx, window[i], i+1)
		if err != nil {
			return nil, err
		}
		nearby = append(nearby, entry)
	}

	return &RankResponse{
		Rank:       rank,
		Total:      total,
		Percentile: percentile,
		Points:     u.Points,
		Level:      u.Level,
		Nearby:     nearby,
	}, nil
}

func (s *Service) buildEntry(ctx context.Context, u *domainUser.User, rank int) (*LeaderboardEntry, error) {
	completed, err := s.pickupRepo.CompletedByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	var weight float64
	for _, p := range completed {
		if p.ActualWeight != nil {
			weight += *p.ActualWeight
		} else {
			weight += p.EstimatedWeight
		}
	}

	return &LeaderboardEntry{
		Rank:             rank,
		UserID:           u.ID,
		Name:             u.Name,
		Points:           u.Points,
		Level:            u.Level,
		BadgeCount:       len(u.Badges),
		CompletedPickups: len(completed),
		RecycledWeight:   weight,
	}, nil
}

// badgeCriterion is one earnable badge and its completion rule.
type badgeCriterion struct {
	name        string
	description string
	target      int
	progress    func(u *domainUser.User, completed []*domainPickup.Pickup) int
}

var badgeCriteria = []badgeCriterion{
	{
		name:        "First Pickup",
		description: "Complete your first waste pickup",
		target:      1,
		progress: func(_ *domainUser.User, completed []*domainPickup.Pickup) int {
			return len(completed)
		},
	},
	{
		name:        "Eco Warrior",
		description: "Complete 10 waste pickups",
		target:      10,
		progress: func(_ *domainUser.User, completed []*domainPickup.Pickup) int {
			return len(completed)
		},
	},
	{
		name:        "Recycling Champion",
		description: "Complete 5 recyclable waste pickups",
		target:      5,
		progress: func(_ *domainUser.User, completed []*domainPickup.Pickup) int {
			count := 0
			for _, p := range completed {
				if p.WasteType == domainPickup.WasteRecyclable {
					count++
				}
			}
			return count
		},
	},
	{
		name:        "Heavy Lifter",
		description: "Collect 100 kg of waste in total",
		target:      100,
		progress: func(_ *domainUser.User, completed []*domainPickup.Pickup) int {
			var weight float64
			for _, p := range completed {
				if p.ActualWeight != nil {
					weight += *p.ActualWeight
				} else {
					weight += p.EstimatedWeight
				}
			}
			return int(weight)
		},
	},
	{
		name:        "Point Collector",
		description: "Earn 500 points",
		target:      500,
		progress: func(u *domainUser.User, _ []*domainPickup.Pickup) int {
			return u.Points
		},
	},
}

// Badges returns the caller's badge board with progress toward each.
func (s *Service) Badges(ctx context.Context, userID uuid.UUID) ([]*BadgeStatus, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	completed, err := s.pickupRepo.CompletedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	earned := make(map[string]*domainUser.Badge, len(u.Badges))
	for i := range u.Badges {
		earned[u.Badges[i].Name] = &u.Badges[i]
	}

	statuses := make([]*BadgeStatus, 0, len(badgeCriteria))
	for _, c := range badgeCriteria {
		progress := c.progress(u, completed)
		if progress > c.target {
			progress = c.target
		}
		status := &BadgeStatus{
			Name:        c.name,
			Description: c.description,
			Progress:    progress,
			Target:      c.target,
		}
		if b, ok := earned[c.name]; ok {
			status.Earned = true
			earnedAt := b.EarnedAt
			status.EarnedAt = &earnedAt
			status.Progress = c.target
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// EvaluateBadges checks all criteria and awards any newly earned
// badges. Called after pickup completion; failures are logged only.
func (s *Service) EvaluateBadges(ctx context.Context, userID uuid.UUID) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error("Failed to load user for badge evaluation", zap.Error(err))
		return
	}
	completed, err := s.pickupRepo.CompletedByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to load pickups for badge evaluation", zap.Error(err))
		return
	}

	earned := make(map[string]bool, len(u.Badges))
	for _, b := range u.Badges {
		earned[b.Name] = true
	}

	for _, c := range badgeCriteria {
		if earned[c.name] || c.progress(u, completed) < c.target {
			continue
		}
		badge := domainUser.Badge{Name: c.name, EarnedAt: time.Now()}
		if err := s.userRepo.AddBadge(ctx, userID, badge); err != nil {
			logger.Error("Failed to award badge",
				zap.String("user_id", userID.String()),
				zap.String("badge", c.name),
				zap.Error(err),
			)
			continue
		}
		s.notify.BadgeEarned(ctx, userID, c.name)
		logger.Info("Badge awarded",
			zap.String("user_id", userID.String()),
			zap.String("badge", c.name),
			zap.String("event", "badge_awarded"),
		)
	}
}

// AwardPoints grants points to any user. Admin only; the route layer
// enforces the role.
func (s *Service) AwardPoints(ctx context.Context, req *AwardPointsRequest) (*BalanceResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	balance, err := s.userRepo.IncrementPoints(ctx, req.UserID, req.Points)
	if err != nil {
		return nil, err
	}

	s.notify.PointsEarned(ctx, req.UserID, req.Points, balance)

	logger.Info("Points awarded",
		zap.String("user_id", req.UserID.String()),
		zap.Int("points", req.Points),
		zap.String("reason", req.Reason),
		zap.String("event", "points_awarded"),
	)

	return &BalanceResponse{
		Points: balance,
		Level:  domainUser.LevelForPoints(balance, s.config.Rewards.PointsPerLevel),
	}, nil
}

// Redeem spends points from the caller's balance.
func (s *Service) Redeem(ctx context.Context, userID uuid.UUID, req *RedeemRequest) (*BalanceResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Points < req.Points {
		return nil, appErrors.ErrInsufficientPoints
	}

	balance, err := s.userRepo.IncrementPoints(ctx, userID, -req.Points)
	if err != nil {
		return nil, err
	}

	logger.Info("Points redeemed",
		zap.String("user_id", userID.String()),
		zap.Int("points", req.Points),
		zap.String("description", req.Description),
		zap.String("event", "points_redeemed"),
	)

	return &BalanceResponse{
		Points: balance,
		Level:  domainUser.LevelForPoints(balance, s.config.Rewards.PointsPerLevel),
	}, nil
}
