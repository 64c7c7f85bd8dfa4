package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainFeedback "wastetrack/internal/domain/feedback"
	domainUser "wastetrack/internal/domain/user"
	"wastetrack/internal/logger"
	"wastetrack/internal/notifier"
	appErrors "wastetrack/pkg/errors"
	"wastetrack/pkg/utils"
)

// Service implements feedback ticket use cases
type Service struct {
	feedbackRepo domainFeedback.Repository
	notify       *notifier.Notifier
}

func NewService(feedbackRepo domainFeedback.Repository, notify *notifier.Notifier) *Service {
	return &Service{
		feedbackRepo: feedbackRepo,
		notify:       notify,
	}
}

func (s *Service) Submit(ctx context.Context, userID uuid.UUID, req *SubmitRequest) (*FeedbackResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	f := &domainFeedback.Feedback{
		UserID:          userID,
		Type:            domainFeedback.Type(req.Type),
		Subject:         utils.SanitizeString(req.Subject),
		Description:     utils.SanitizeText(req.Description),
		Priority:        domainFeedback.Priority(req.Priority),
		Status:          domainFeedback.StatusPending,
		RelatedPickupID: req.RelatedPickupID,
		ContactMethod:   domainFeedback.ContactMethod(req.ContactMethod),
	}
	if f.Priority == "" {
		f.Priority = domainFeedback.PriorityMedium
	}
	if f.ContactMethod == "" {
		f.ContactMethod = domainFeedback.ContactApp
	}

	if err := s.feedbackRepo.Create(ctx, f); err != nil {
		return nil, err
	}

	logger.Info("Feedback submitted",
		zap.String("feedback_id", f.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("type", string(f.Type)),
		zap.String("event", "feedback_submitted"),
	)

	return ToFeedbackResponse(f), nil
}

func (s *Service) ListMy(ctx context.Context, userID uuid.UUID, query *ListQuery) ([]*FeedbackResponse, int64, error) {
	filter := s.buildFilter(query)
	filter.UserID = &userID
	return s.list(ctx, filter)
}

func (s *Service) All(ctx context.Context, query *ListQuery) ([]*FeedbackResponse, int64, error) {
	return s.list(ctx, s.buildFilter(query))
}

func (s *Service) buildFilter(query *ListQuery) *domainFeedback.Filter {
	filter := &domainFeedback.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Status != "" {
		status := domainFeedback.Status(query.Status)
		filter.Status = &status
	}
	if query.Type != "" {
		feedbackType := domainFeedback.Type(query.Type)
		filter.Type = &feedbackType
	}
	if query.Priority != "" {
		priority := domainFeedback.Priority(query.Priority)
		filter.Priority = &priority
	}
	return filter
}

func (s *Service) list(ctx context.Context, filter *domainFeedback.Filter) ([]*FeedbackResponse, int64, error) {
	tickets, total, err := s.feedbackRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]*FeedbackResponse, len(tickets))
	for i, f := range tickets {
		responses[i] = ToFeedbackResponse(f)
	}
	return responses, total, nil
}

func (s *Service) GetByID(ctx context.Context, userID uuid.UUID, role string, feedbackID uuid.UUID) (*FeedbackResponse, error) {
	f, err := s.feedbackRepo.GetByID(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	if f.UserID != userID && role != string(domainUser.RoleAdmin) {
		return nil, domainFeedback.ErrNotOwner
	}
	return ToFeedbackResponse(f), nil
}

// Respond records an admin reply and optionally advances the ticket
// status. Resolution timestamps stamp once on first entry.
func (s *Service) Respond(ctx context.Context, adminID, feedbackID uuid.UUID, req *RespondRequest) (*FeedbackResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	f, err := s.feedbackRepo.GetByID(ctx, feedbackID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	f.Response = utils.SanitizeText(req.Response)
	f.RespondedBy = &adminID
	f.RespondedAt = &now

	status := domainFeedback.StatusResolved
	if req.Status != "" {
		status = domainFeedback.Status(req.Status)
	}
	f.SetStatus(status, now)

	if err := s.feedbackRepo.Update(ctx, f); err != nil {
		return nil, err
	}

	s.notify.FeedbackResponse(ctx, f.UserID, f.ID, f.Subject)

	logger.Info("Feedback responded",
		zap.String("feedback_id", f.ID.String()),
		zap.String("responded_by", adminID.String()),
		zap.String("status", string(f.Status)),
		zap.String("event", "feedback_responded"),
	)

	return ToFeedbackResponse(f), nil
}

// RateResponse records the user's verdict on the admin reply.
func (s *Service) RateResponse(ctx context.Context, userID, feedbackID uuid.UUID, req *RateResponseRequest) (*FeedbackResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	f, err := s.feedbackRepo.GetByID(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	if f.UserID != userID {
		return nil, domainFeedback.ErrNotOwner
	}
	if f.Response == "" {
		return nil, domainFeedback.ErrNoResponse
	}

	rating := domainFeedback.ResponseRating(req.Rating)
	f.Rating = &rating
	f.RatingComment = utils.SanitizeText(req.Comment)

	if err := s.feedbackRepo.Update(ctx, f); err != nil {
		return nil, err
	}

	return ToFeedbackResponse(f), nil
}

func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (*StatsResponse, error) {
	stats, err := s.feedbackRepo.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &StatsResponse{
		Total:            stats.Total,
		ByStatus:         stats.ByStatus,
		ByType:           stats.ByType,
		AvgResponseHours: stats.AvgResponseHours,
	}, nil
}
