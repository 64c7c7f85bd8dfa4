package declaration

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainDeclaration "wastetrack/internal/domain/declaration"
	domainUser "wastetrack/internal/domain/user"
	"wastetrack/internal/logger"
	appErrors "wastetrack/pkg/errors"
	"wastetrack/pkg/utils"
)

// Service implements industry declaration use cases
type Service struct {
	declarationRepo domainDeclaration.Repository
	userRepo        domainUser.Repository
}

func NewService(declarationRepo domainDeclaration.Repository, userRepo domainUser.Repository) *Service {
	return &Service{
		declarationRepo: declarationRepo,
		userRepo:        userRepo,
	}
}

// Submit files a declaration for a period. A period may only be
// declared once per industry; a duplicate surfaces as ErrPeriodExists.
func (s *Service) Submit(ctx context.Context, industryID uuid.UUID, req *SubmitRequest) (*DeclarationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	period := domainDeclaration.Period{Month: req.Month, Year: req.Year}
	if !period.Valid() {
		return nil, domainDeclaration.ErrInvalidPeriod
	}
	if len(req.Categories) == 0 {
		return nil, domainDeclaration.ErrEmptyCategories
	}

	// The unique index is the authority; this early check just gives a
	// cleaner error on the common path.
	if _, err := s.declarationRepo.GetByPeriod(ctx, industryID, period); err == nil {
		return nil, domainDeclaration.ErrPeriodExists
	} else if !errors.Is(err, domainDeclaration.ErrNotFound) {
		return nil, err
	}

	d := &domainDeclaration.Declaration{
		IndustryID:     industryID,
		Period:         period,
		TotalAmount:    req.TotalAmount,
		TotalUnit:      domainDeclaration.Unit(req.TotalUnit),
		LinkedPickupID: req.LinkedPickupID,
	}
	for _, li := range req.Categories {
		unit := domainDeclaration.Unit(li.Unit)
		if unit == "" {
			unit = domainDeclaration.UnitKg
		}
		d.Categories = append(d.Categories, domainDeclaration.LineItem{
			Category:       domainDeclaration.Category(li.Category),
			Amount:         li.Amount,
			Unit:           unit,
			Description:    utils.SanitizeText(li.Description),
			DisposalMethod: domainDeclaration.DisposalMethod(li.DisposalMethod),
		})
	}
	if req.Compliance != nil {
		d.Compliance = domainDeclaration.Compliance{
			IsPollutionCertValid: req.Compliance.IsPollutionCertValid,
			CertificateNumber:    utils.SanitizeString(req.Compliance.CertificateNumber),
			CertificateExpiry:    req.Compliance.CertificateExpiry,
			IsProperlySegregated: req.Compliance.IsProperlySegregated,
		}
	}
	for _, doc := range req.Documents {
		d.Documents = append(d.Documents, domainDeclaration.Document{
			Name:       utils.SanitizeString(doc.Name),
			URL:        doc.URL,
			Type:       doc.Type,
			UploadedAt: time.Now(),
		})
	}

	if req.Draft {
		d.Status = domainDeclaration.StatusDraft
	} else {
		d.Status = domainDeclaration.StatusSubmitted
		now := time.Now()
		d.SubmittedAt = &now
	}

	d.Normalize(func() string { return utils.GenerateCode(6) })

	if err := s.declarationRepo.Create(ctx, d); err != nil {
		return nil, err
	}

	logger.Info("Declaration filed",
		zap.String("declaration_id", d.ID.String()),
		zap.String("tracking_id", d.TrackingID),
		zap.String("industry_id", industryID.String()),
		zap.Int("month", period.Month),
		zap.Int("year", period.Year),
		zap.String("status", string(d.Status)),
		zap.String("event", "declaration_filed"),
	)

	return ToDeclarationResponse(d), nil
}

func (s *Service) List(ctx context.Context, industryID uuid.UUID, query *ListQuery) ([]*DeclarationResponse, int64, error) {
	filter := &domainDeclaration.Filter{
		IndustryID: &industryID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	if query.Status != "" {
		status := domainDeclaration.Status(query.Status)
		filter.Status = &status
	}
	if query.Year != 0 {
		year := query.Year
		filter.Year = &year
	}

	return s.list(ctx, filter)
}

func (s *Service) All(ctx context.Context, query *ListQuery) ([]*DeclarationResponse, int64, error) {
	filter := &domainDeclaration.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Status != "" {
		status := domainDeclaration.Status(query.Status)
		filter.Status = &status
	}
	if query.Year != 0 {
		year := query.Year
		filter.Year = &year
	}

	return s.list(ctx, filter)
}

func (s *Service) list(ctx context.Context, filter *domainDeclaration.Filter) ([]*DeclarationResponse, int64, error) {
	declarations, total, err := s.declarationRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]*DeclarationResponse, len(declarations))
	for i, d := range declarations {
		responses[i] = ToDeclarationResponse(d)
	}
	return responses, total, nil
}

// Track resolves a declaration by its public tracking ID.
func (s *Service) Track(ctx context.Context, trackingID string) (*DeclarationResponse, error) {
	d, err := s.declarationRepo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	return ToDeclarationResponse(d), nil
}

func (s *Service) Stats(ctx context.Context, industryID uuid.UUID) (*StatsResponse, error) {
	stats, err := s.declarationRepo.GetStats(ctx, industryID, time.Now().Year())
	if err != nil {
		return nil, err
	}
	return &StatsResponse{
		TotalDeclarations:  stats.TotalDeclarations,
		StatusBreakdown:    stats.StatusBreakdown,
		TotalWasteThisYear: stats.TotalWasteThisYear,
		CategoryBreakdown:  stats.CategoryBreakdown,
		PendingApprovals:   stats.PendingApprovals,
	}, nil
}

// Delete removes a declaration. Only drafts owned by the caller may be
// deleted; anything filed is immutable from the industry side.
func (s *Service) Delete(ctx context.Context, industryID, declarationID uuid.UUID) error {
	d, err := s.declarationRepo.GetByID(ctx, declarationID)
	if err != nil {
		return err
	}
	if d.IndustryID != industryID {
		return domainDeclaration.ErrNotOwner
	}
	if d.Status != domainDeclaration.StatusDraft {
		return domainDeclaration.ErrNotDraft
	}
	return s.declarationRepo.Delete(ctx, declarationID)
}

// Certificate builds the disposal certificate for an approved
// declaration owned by the caller.
func (s *Service) Certificate(ctx context.Context, industryID, declarationID uuid.UUID) (*CertificateResponse, error) {
	d, err := s.declarationRepo.GetByID(ctx, declarationID)
	if err != nil {
		return nil, err
	}
	if d.IndustryID != industryID {
		return nil, domainDeclaration.ErrNotOwner
	}
	if d.Status != domainDeclaration.StatusApproved || d.ApprovedAt == nil {
		return nil, domainDeclaration.ErrNotApproved
	}

	u, err := s.userRepo.GetByID(ctx, industryID)
	if err != nil {
		return nil, err
	}
	name := u.Name
	if u.CompanyName != nil && *u.CompanyName != "" {
		name = *u.CompanyName
	}

	return &CertificateResponse{
		CertificateID: "CERT-" + d.TrackingID,
		TrackingID:    d.TrackingID,
		IndustryName:  name,
		Month:         d.Period.Month,
		Year:          d.Period.Year,
		TotalAmount:   d.TotalAmount,
		TotalUnit:     string(d.TotalUnit),
		ApprovedAt:    *d.ApprovedAt,
		IssuedAt:      time.Now(),
	}, nil
}

// Review moves a filed declaration to Approved or Rejected. Admin only;
// the route layer enforces the role.
func (s *Service) Review(ctx context.Context, adminID, declarationID uuid.UUID, req *ReviewRequest) (*DeclarationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	d, err := s.declarationRepo.GetByID(ctx, declarationID)
	if err != nil {
		return nil, err
	}
	if d.Status != domainDeclaration.StatusSubmitted && d.Status != domainDeclaration.StatusUnderReview {
		return nil, appErrors.NewAppError("INVALID_STATE",
			"Only submitted declarations can be reviewed", nil)
	}

	now := time.Now()
	d.ReviewedBy = &adminID
	d.ReviewedAt = &now
	d.ReviewNotes = utils.SanitizeText(req.Notes)
	if req.Approve {
		d.Status = domainDeclaration.StatusApproved
		d.ApprovedAt = &now
	} else {
		d.Status = domainDeclaration.StatusRejected
	}

	if err := s.declarationRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	logger.Info("Declaration reviewed",
		zap.String("declaration_id", d.ID.String()),
		zap.String("reviewed_by", adminID.String()),
		zap.String("status", string(d.Status)),
		zap.String("event", "declaration_reviewed"),
	)

	return ToDeclarationResponse(d), nil
}
