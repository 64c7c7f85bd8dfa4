package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wastetrack/internal/domain/declaration"
	"wastetrack/internal/infrastructure/database/postgres/models"
)

type DeclarationRepository struct {
	db *DB
}

func NewDeclarationRepository(db *DB) *DeclarationRepository {
	return &DeclarationRepository{db: db}
}

func (r *DeclarationRepository) Create(ctx context.Context, d *declaration.Declaration) error {
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	d.UpdatedAt = time.Now()
	if d.Status == "" {
		d.Status = declaration.StatusSubmitted
	}

	dbModel := toDeclarationModel(d)
	dbModel.Items = toDeclarationItemModels(d.ID, d.Categories)
	dbModel.Documents = toDeclarationDocumentModels(d.ID, d.Documents)

	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if isUniqueViolation(err) {
			return declaration.ErrPeriodExists
		}
		return fmt.Errorf("failed to create declaration: %w", err)
	}

	d.ID = dbModel.ID
	d.CreatedAt = dbModel.CreatedAt
	d.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *DeclarationRepository) GetByID(ctx context.Context, id uuid.UUID) (*declaration.Declaration, error) {
	var dbModel models.DeclarationModel
	err := r.db.DB.WithContext(ctx).
		Preload("Items").
		Preload("Documents").
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, declaration.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get declaration: %w", err)
	}

	return toDeclarationEntity(&dbModel), nil
}

func (r *DeclarationRepository) GetByTrackingID(ctx context.Context, trackingID string) (*declaration.Declaration, error) {
	var dbModel models.DeclarationModel
	err := r.db.DB.WithContext(ctx).
		Preload("Items").
		Preload("Documents").
		Where("tracking_id = ?", trackingID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, declaration.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get declaration by tracking id: %w", err)
	}

	return toDeclarationEntity(&dbModel), nil
}

func (r *DeclarationRepository) GetByPeriod(ctx context.Context, industryID uuid.UUID, period declaration.Period) (*declaration.Declaration, error) {
	var dbModel models.DeclarationModel
	err := r.db.DB.WithContext(ctx).
		Preload("Items").
		Preload("Documents").
		Where("industry_id = ? AND period_month = ? AND period_year = ?", industryID, period.Month, period.Year).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, declaration.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get declaration by period: %w", err)
	}

	return toDeclarationEntity(&dbModel), nil
}

// Update rewrites the declaration row and replaces its line items and
// documents with the entity's current sets.
func (r *DeclarationRepository) Update(ctx context.Context, d *declaration.Declaration) error {
	d.UpdatedAt = time.Now()

	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.DeclarationModel{}).
			Where("id = ?", d.ID).
			Updates(map[string]interface{}{
				"total_amount":         d.TotalAmount,
				"total_unit":           string(d.TotalUnit),
				"status":               string(d.Status),
				"pollution_cert_valid": d.Compliance.IsPollutionCertValid,
				"certificate_number":   d.Compliance.CertificateNumber,
				"certificate_expiry":   d.Compliance.CertificateExpiry,
				"properly_segregated":  d.Compliance.IsProperlySegregated,
				"linked_pickup_id":     d.LinkedPickupID,
				"reviewed_by":          d.ReviewedBy,
				"review_notes":         d.ReviewNotes,
				"reviewed_at":          d.ReviewedAt,
				"submitted_at":         d.SubmittedAt,
				"approved_at":          d.ApprovedAt,
				"updated_at":           d.UpdatedAt,
			})

		if result.Error != nil {
			return fmt.Errorf("failed to update declaration: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return declaration.ErrNotFound
		}

		if err := tx.Where("declaration_id = ?", d.ID).
			Delete(&models.DeclarationItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear line items: %w", err)
		}
		if len(d.Categories) > 0 {
			items := toDeclarationItemModels(d.ID, d.Categories)
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("failed to write line items: %w", err)
			}
		}

		if err := tx.Where("declaration_id = ?", d.ID).
			Delete(&models.DeclarationDocumentModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear documents: %w", err)
		}
		if len(d.Documents) > 0 {
			docs := toDeclarationDocumentModels(d.ID, d.Documents)
			if err := tx.Create(&docs).Error; err != nil {
				return fmt.Errorf("failed to write documents: %w", err)
			}
		}

		return nil
	})
}

func (r *DeclarationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.DeclarationModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete declaration: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return declaration.ErrNotFound
	}

	return nil
}

func (r *DeclarationRepository) List(ctx context.Context, filter *declaration.Filter) ([]*declaration.Declaration, int64, error) {
	var dbModels []models.DeclarationModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.DeclarationModel{}).
		Preload("Items").
		Preload("Documents")

	if filter.IndustryID != nil {
		db = db.Where("industry_id = ?", *filter.IndustryID)
	}
	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}
	if filter.Year != nil {
		db = db.Where("period_year = ?", *filter.Year)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count declarations: %w", err)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	err := db.Order("period_year DESC, period_month DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list declarations: %w", err)
	}

	declarations := make([]*declaration.Declaration, len(dbModels))
	for i := range dbModels {
		declarations[i] = toDeclarationEntity(&dbModels[i])
	}

	return declarations, total, nil
}

func (r *DeclarationRepository) GetStats(ctx context.Context, industryID uuid.UUID, currentYear int) (*declaration.Stats, error) {
	stats := &declaration.Stats{
		StatusBreakdown:   make(map[string]int64),
		CategoryBreakdown: make(map[string]float64),
	}

	var statusCounts []struct {
		Status string
		Count  int64
	}
	err := r.db.DB.WithContext(ctx).
		Model(&models.DeclarationModel{}).
		Select("status, COUNT(*) as count").
		Where("industry_id = ?", industryID).
		Group("status").
		Scan(&statusCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}
	for _, sc := range statusCounts {
		stats.StatusBreakdown[sc.Status] = sc.Count
		stats.TotalDeclarations += sc.Count
	}
	stats.PendingApprovals = stats.StatusBreakdown[string(declaration.StatusSubmitted)] +
		stats.StatusBreakdown[string(declaration.StatusUnderReview)]

	err = r.db.DB.WithContext(ctx).
		Model(&models.DeclarationModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("industry_id = ? AND period_year = ?", industryID, currentYear).
		Scan(&stats.TotalWasteThisYear).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum yearly waste: %w", err)
	}

	// Category totals are normalized to tons across line items.
	var categoryTotals []struct {
		Category string
		Total    float64
	}
	err = r.db.DB.WithContext(ctx).
		Model(&models.DeclarationItemModel{}).
		Select("declaration_items.category, SUM(CASE WHEN declaration_items.unit = 'kg' THEN declaration_items.amount / 1000 ELSE declaration_items.amount END) as total").
		Joins("JOIN declarations ON declarations.id = declaration_items.declaration_id").
		Where("declarations.industry_id = ? AND declarations.period_year = ?", industryID, currentYear).
		Group("declaration_items.category").
		Scan(&categoryTotals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}
	for _, ct := range categoryTotals {
		stats.CategoryBreakdown[ct.Category] = ct.Total
	}

	return stats, nil
}

// Helper functions to convert between domain entities and database models
func toDeclarationModel(d *declaration.Declaration) *models.DeclarationModel {
	return &models.DeclarationModel{
		ID:                 d.ID,
		IndustryID:         d.IndustryID,
		PeriodMonth:        d.Period.Month,
		PeriodYear:         d.Period.Year,
		TotalAmount:        d.TotalAmount,
		TotalUnit:          string(d.TotalUnit),
		TrackingID:         d.TrackingID,
		Status:             string(d.Status),
		PollutionCertValid: d.Compliance.IsPollutionCertValid,
		CertificateNumber:  d.Compliance.CertificateNumber,
		CertificateExpiry:  d.Compliance.CertificateExpiry,
		ProperlySegregated: d.Compliance.IsProperlySegregated,
		LinkedPickupID:     d.LinkedPickupID,
		ReviewedBy:         d.ReviewedBy,
		ReviewNotes:        d.ReviewNotes,
		ReviewedAt:         d.ReviewedAt,
		SubmittedAt:        d.SubmittedAt,
		ApprovedAt:         d.ApprovedAt,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func toDeclarationEntity(m *models.DeclarationModel) *declaration.Declaration {
	d := &declaration.Declaration{
		ID:         m.ID,
		IndustryID: m.IndustryID,
		Period: declaration.Period{
			Month: m.PeriodMonth,
			Year:  m.PeriodYear,
		},
		TotalAmount: m.TotalAmount,
		TotalUnit:   declaration.Unit(m.TotalUnit),
		TrackingID:  m.TrackingID,
		Status:      declaration.Status(m.Status),
		Compliance: declaration.Compliance{
			IsPollutionCertValid: m.PollutionCertValid,
			CertificateNumber:    m.CertificateNumber,
			CertificateExpiry:    m.CertificateExpiry,
			IsProperlySegregated: m.ProperlySegregated,
		},
		LinkedPickupID: m.LinkedPickupID,
		ReviewedBy:     m.ReviewedBy,
		ReviewNotes:    m.ReviewNotes,
		ReviewedAt:     m.ReviewedAt,
		SubmittedAt:    m.SubmittedAt,
		ApprovedAt:     m.ApprovedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	for _, item := range m.Items {
		d.Categories = append(d.Categories, declaration.LineItem{
			Category:       declaration.Category(item.Category),
			Amount:         item.Amount,
			Unit:           declaration.Unit(item.Unit),
			Description:    item.Description,
			DisposalMethod: declaration.DisposalMethod(item.DisposalMethod),
		})
	}
	for _, doc := range m.Documents {
		d.Documents = append(d.Documents, declaration.Document{
			Name:       doc.Name,
			URL:        doc.URL,
			Type:       doc.Type,
			UploadedAt: doc.UploadedAt,
		})
	}
	return d
}

func toDeclarationItemModels(declarationID uuid.UUID, items []declaration.LineItem) []models.DeclarationItemModel {
	rows := make([]models.DeclarationItemModel, len(items))
	for i, item := range items {
		rows[i] = models.DeclarationItemModel{
			DeclarationID:  declarationID,
			Category:       string(item.Category),
			Amount:         item.Amount,
			Unit:           string(item.Unit),
			Description:    item.Description,
			DisposalMethod: string(item.DisposalMethod),
		}
	}
	return rows
}

func toDeclarationDocumentModels(declarationID uuid.UUID, docs []declaration.Document) []models.DeclarationDocumentModel {
	rows := make([]models.DeclarationDocumentModel, len(docs))
	for i, doc := range docs {
		rows[i] = models.DeclarationDocumentModel{
			DeclarationID: declarationID,
			Name:          doc.Name,
			URL:           doc.URL,
			Type:          doc.Type,
			UploadedAt:    doc.UploadedAt,
		}
	}
	return rows
}
