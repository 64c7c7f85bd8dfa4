package waste

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainWaste "wastetrack/internal/domain/waste"
	"wastetrack/internal/logger"
	"wastetrack/internal/wasteguide"
	appErrors "wastetrack/pkg/errors"
	"wastetrack/pkg/utils"
)

// recentWindow is the lookback for the stats "recent activity" count.
const recentWindow = 7 * 24 * time.Hour

// Service implements waste classification use cases
type Service struct {
	wasteRepo domainWaste.Repository
}

func NewService(wasteRepo domainWaste.Repository) *Service {
	return &Service{wasteRepo: wasteRepo}
}

// Classify matches the description against the static guide and logs a
// classification record for the user.
func (s *Service) Classify(ctx context.Context, userID uuid.UUID, req *ClassifyRequest) (*RecordResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	entry := wasteguide.Lookup(req.WasteType)

	rec := &domainWaste.Record{
		UserID:               userID,
		WasteType:            utils.SanitizeString(req.WasteType),
		Category:             entry.Category,
		ImageURL:             req.ImageURL,
		Confidence:           0.85,
		ProperlySegregated:   true,
		DisposalInstructions: entry.DisposalInstructions,
		BinColor:             entry.BinColor,
		WeightAmount:         req.WeightAmount,
		WeightUnit:           req.WeightUnit,
		ClassifiedAt:         time.Now(),
	}

	if err := s.wasteRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	logger.Info("Waste classified",
		zap.String("record_id", rec.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("category", string(rec.Category)),
		zap.String("event", "waste_classified"),
	)

	return ToRecordResponse(rec, &entry), nil
}

func (s *Service) History(ctx context.Context, userID uuid.UUID, query *ListQuery) ([]*RecordResponse, int64, error) {
	records, total, err := s.wasteRepo.ListByUser(ctx, userID, query.Page, query.PageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*RecordResponse, len(records))
	for i, rec := range records {
		responses[i] = ToRecordResponse(rec, nil)
	}
	return responses, total, nil
}

func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (*StatsResponse, error) {
	stats, err := s.wasteRepo.GetStats(ctx, userID, time.Now().Add(-recentWindow))
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		TotalClassifications: stats.TotalClassifications,
		CategoryBreakdown:    stats.CategoryBreakdown,
		ProperlySegregated:   stats.ProperlySegregated,
		SegregationRate:      stats.SegregationRate(),
		RecentActivity:       stats.RecentActivity,
	}, nil
}

// Feedback records the user's verdict on a classification. A correction
// also flags the record as improperly segregated.
func (s *Service) Feedback(ctx context.Context, userID, recordID uuid.UUID, req *FeedbackRequest) (*RecordResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	rec, err := s.wasteRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if rec.UserID != userID {
		return nil, domainWaste.ErrNotOwner
	}

	isCorrect := req.IsCorrect
	rec.FeedbackIsCorrect = &isCorrect
	rec.FeedbackActualType = utils.SanitizeString(req.ActualType)
	rec.FeedbackComments = utils.SanitizeText(req.Comments)
	if !isCorrect {
		rec.ProperlySegregated = false
	}

	if err := s.wasteRepo.Update(ctx, rec); err != nil {
		return nil, err
	}

	return ToRecordResponse(rec, nil), nil
}

func (s *Service) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	rec, err := s.wasteRepo.GetByID(ctx, recordID)
	if err != nil {
		return err
	}
	if rec.UserID != userID {
		return domainWaste.ErrNotOwner
	}
	return s.wasteRepo.Delete(ctx, recordID)
}

// Guide returns the full static classification guide.
func (s *Service) Guide() []GuideEntryResponse {
	entries := wasteguide.Entries()
	responses := make([]GuideEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToGuideEntryResponse(e)
	}
	return responses
}

// Search finds guide entries whose items match the query.
func (s *Service) Search(query string) []SearchResultResponse {
	results := wasteguide.Search(query)
	responses := make([]SearchResultResponse, len(results))
	for i, r := range results {
		responses[i] = SearchResultResponse{
			GuideEntryResponse: ToGuideEntryResponse(r.Entry),
			MatchingItems:      r.MatchingItems,
		}
	}
	return responses
}
