package pickup

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wastetrack/internal/config"
	domainPickup "wastetrack/internal/domain/pickup"
	domainTracking "wastetrack/internal/domain/tracking"
	domainUser "wastetrack/internal/domain/user"
	"wastetrack/internal/logger"
	"wastetrack/internal/notifier"
	trackingUC "wastetrack/internal/usecase/tracking"
	appErrors "wastetrack/pkg/errors"
	"wastetrack/pkg/utils"
)

// BadgeAwarder re-evaluates a user's badges after a completed pickup.
// Implemented by the rewards service; failures are its own concern.
type BadgeAwarder interface {
	EvaluateBadges(ctx context.Context, userID uuid.UUID)
}

// Service implements pickup use cases
type Service struct {
	pickupRepo  domainPickup.Repository
	userRepo    domainUser.Repository
	trackingSvc *trackingUC.Service
	notify      *notifier.Notifier
	badges      BadgeAwarder
	config      *config.Config
}

func NewService(
	pickupRepo domainPickup.Repository,
	userRepo domainUser.Repository,
	trackingSvc *trackingUC.Service,
	notify *notifier.Notifier,
	cfg *config.Config,
) *Service {
	return &Service{
		pickupRepo:  pickupRepo,
		userRepo:    userRepo,
		trackingSvc: trackingSvc,
		notify:      notify,
		config:      cfg,
	}
}

// SetBadgeAwarder wires the rewards service in after construction,
// breaking the dependency cycle between the two services.
func (s *Service) SetBadgeAwarder(b BadgeAwarder) {
	s.badges = b
}

// Schedule books a pickup, assigns its verification code and grants the
// partial scheduling reward up front.
func (s *Service) Schedule(ctx context.Context, userID uuid.UUID, req *ScheduleRequest) (*PickupResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if req.PickupDate.Before(today) {
		return nil, domainPickup.ErrPastDate
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &domainPickup.Pickup{
		UserID:              userID,
		WasteType:           domainPickup.WasteType(req.WasteType),
		PickupDate:          req.PickupDate,
		TimeSlot:            domainPickup.TimeSlot(req.TimeSlot),
		Address:             utils.SanitizeString(req.Address),
		ContactPhone:        utils.SanitizePhone(req.ContactPhone),
		EstimatedWeight:     req.EstimatedWeight,
		SpecialInstructions: utils.SanitizeText(req.SpecialInstructions),
		Status:              domainPickup.StatusScheduled,
		VerificationCode:    utils.GenerateCode(6),
	}

	points := p.SchedulePoints(s.config.Rewards.ScheduleFraction)
	p.PointsAwarded = points

	if err := s.pickupRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	if points > 0 {
		s.awardPoints(ctx, userID, points)
	}

	// Industry pickups open a shipment record so the consignment can be
	// traced end to end. Best effort: a failure is logged, never fatal.
	if u.Role == domainUser.RoleIndustry {
		weight := p.EstimatedWeight
		if _, err := s.trackingSvc.CreateForPickup(ctx, userID, p.ID, string(p.WasteType), weight, p.PickupDate); err != nil {
			logger.Error("Failed to create tracking record for pickup",
				zap.String("pickup_id", p.ID.String()),
				zap.Error(err),
			)
		}
	}

	s.notify.PickupScheduled(ctx, userID, p.ID, string(p.WasteType), p.PickupDate, points)

	logger.Info("Pickup scheduled",
		zap.String("pickup_id", p.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("waste_type", string(p.WasteType)),
		zap.Int("points_awarded", points),
		zap.String("event", "pickup_scheduled"),
	)

	return ToPickupResponse(p), nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, query *ListQuery) ([]*PickupResponse, int64, error) {
	filter := &domainPickup.Filter{
		UserID:   &userID,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Status != "" {
		status := domainPickup.Status(query.Status)
		filter.Status = &status
	}

	pickups, total, err := s.pickupRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*PickupResponse, len(pickups))
	for i, p := range pickups {
		responses[i] = ToPickupResponse(p)
	}
	return responses, total, nil
}

func (s *Service) GetByID(ctx context.Context, userID uuid.UUID, role string, pickupID uuid.UUID) (*PickupResponse, error) {
	p, err := s.loadOwned(ctx, userID, role, pickupID)
	if err != nil {
		return nil, err
	}
	return ToPickupResponse(p), nil
}

// Cancel aborts a pickup and reverses any points it granted.
func (s *Service) Cancel(ctx context.Context, userID uuid.UUID, role string, pickupID uuid.UUID, req *CancelRequest) (*PickupResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	p, err := s.loadOwned(ctx, userID, role, pickupID)
	if err != nil {
		return nil, err
	}
	if p.Status == domainPickup.StatusCompleted {
		return nil, domainPickup.ErrAlreadyCompleted
	}
	if p.Status == domainPickup.StatusCancelled {
		return nil, domainPickup.ErrAlreadyCancelled
	}

	now := time.Now()
	cancelledBy := cancellingParty(role)
	p.Status = domainPickup.StatusCancelled
	p.CancelledBy = &cancelledBy
	p.CancelledAt = &now
	if req.Reason != "" {
		reason := utils.SanitizeText(req.Reason)
		p.CancellationReason = &reason
	}

	reversal := p.PointsAwarded
	p.PointsAwarded = 0

	if err := s.pickupRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if reversal > 0 {
		if _, err := s.userRepo.IncrementPoints(ctx, p.UserID, -reversal); err != nil {
			logger.Error("Failed to reverse pickup points",
				zap.String("pickup_id", p.ID.String()),
				zap.Int("points", reversal),
				zap.Error(err),
			)
		}
	}

	s.trackingSvc.AppendStatus(ctx, p.ID, domainTracking.StatusCancelled, string(cancelledBy), "Pickup cancelled")

	reason := ""
	if p.CancellationReason != nil {
		reason = *p.CancellationReason
	}
	s.notify.PickupCancelled(ctx, p.UserID, p.ID, reason)

	logger.Info("Pickup cancelled",
		zap.String("pickup_id", p.ID.String()),
		zap.String("cancelled_by", string(cancelledBy)),
		zap.Int("points_reversed", reversal),
		zap.String("event", "pickup_cancelled"),
	)

	return ToPickupResponse(p), nil
}

// Complete closes out a pickup and grants the full completion reward
// on top of the scheduling one. Only collectors and admins may call this.
func (s *Service) Complete(ctx context.Context, collectorID uuid.UUID, pickupID uuid.UUID, req *CompleteRequest) (*PickupResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	p, err := s.pickupRepo.GetByID(ctx, pickupID)
	if err != nil {
		return nil, err
	}
	if p.Status == domainPickup.StatusCompleted {
		return nil, domainPickup.ErrAlreadyCompleted
	}
	if p.Status == domainPickup.StatusCancelled {
		return nil, domainPickup.ErrAlreadyCancelled
	}

	if req.VerificationCode != "" && req.VerificationCode != p.VerificationCode {
		return nil, appErrors.NewAppError("INVALID_CODE", "Verification code does not match", nil)
	}

	now := time.Now()
	p.Status = domainPickup.StatusCompleted
	p.ActualPickupTime = &now
	p.AssignedCollector = &collectorID
	if req.ActualWeight != nil {
		p.ActualWeight = req.ActualWeight
	}

	// The full completion reward is granted on top of the scheduling
	// reward; the partial is never clawed back.
	points := p.CompletionPoints()
	p.PointsAwarded += points

	if err := s.pickupRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if points > 0 {
		s.awardPoints(ctx, p.UserID, points)
	}
	if s.badges != nil {
		s.badges.EvaluateBadges(ctx, p.UserID)
	}

	s.trackingSvc.AppendStatus(ctx, p.ID, domainTracking.StatusDisposed, collectorID.String(), "Pickup completed")

	s.notify.PickupCompleted(ctx, p.UserID, p.ID, points)

	logger.Info("Pickup completed",
		zap.String("pickup_id", p.ID.String()),
		zap.String("collector_id", collectorID.String()),
		zap.Int("points_awarded", points),
		zap.String("event", "pickup_completed"),
	)

	return ToPickupResponse(p), nil
}

func (s *Service) Rate(ctx context.Context, userID uuid.UUID, pickupID uuid.UUID, req *RateRequest) (*PickupResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, domainPickup.ErrInvalidRating
	}

	p, err := s.pickupRepo.GetByID(ctx, pickupID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, domainPickup.ErrNotOwner
	}
	if p.Status != domainPickup.StatusCompleted {
		return nil, domainPickup.ErrNotCompleted
	}

	p.Rating = &req.Rating
	if req.Feedback != nil {
		feedback := utils.SanitizeText(*req.Feedback)
		p.Feedback = &feedback
	}

	if err := s.pickupRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return ToPickupResponse(p), nil
}

func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (*StatsResponse, error) {
	stats, err := s.pickupRepo.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToStatsResponse(stats), nil
}

// awardPoints applies a point delta and sends the gamification
// notifications, including a level-up when the balance crosses a
// threshold. Point writes are atomic on the repository.
func (s *Service) awardPoints(ctx context.Context, userID uuid.UUID, delta int) {
	before, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error("Failed to load user for point award", zap.Error(err))
		return
	}

	balance, err := s.userRepo.IncrementPoints(ctx, userID, delta)
	if err != nil {
		logger.Error("Failed to award points",
			zap.String("user_id", userID.String()),
			zap.Int("delta", delta),
			zap.Error(err),
		)
		return
	}

	if delta > 0 {
		s.notify.PointsEarned(ctx, userID, delta, balance)
	}

	perLevel := s.config.Rewards.PointsPerLevel
	newLevel := domainUser.LevelForPoints(balance, perLevel)
	if newLevel > domainUser.LevelForPoints(before.Points, perLevel) {
		s.notify.LevelUp(ctx, userID, newLevel)
	}
}

func (s *Service) loadOwned(ctx context.Context, userID uuid.UUID, role string, pickupID uuid.UUID) (*domainPickup.Pickup, error) {
	p, err := s.pickupRepo.GetByID(ctx, pickupID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID && role != string(domainUser.RoleAdmin) {
		return nil, domainPickup.ErrNotOwner
	}
	return p, nil
}

func cancellingParty(role string) domainPickup.CancelledBy {
	switch domainUser.Role(role) {
	case domainUser.RoleAdmin:
		return domainPickup.CancelledByAdmin
	case domainUser.RolePickupAgent:
		return domainPickup.CancelledByCollector
	default:
		return domainPickup.CancelledByUser
	}
}
