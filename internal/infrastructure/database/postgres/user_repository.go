package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wastetrack/internal/domain/user"
	"wastetrack/internal/infrastructure/database/postgres/models"
)

type UserRepository struct {
	db             *DB
	pointsPerLevel int
}

func NewUserRepository(db *DB, pointsPerLevel int) *UserRepository {
	if pointsPerLevel <= 0 {
		pointsPerLevel = 100
	}
	return &UserRepository{db: db, pointsPerLevel: pointsPerLevel}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()
	if u.Role == "" {
		u.Role = user.RoleCitizen
	}
	if u.Level == 0 {
		u.Level = 1
	}

	dbModel := toUserModel(u)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return user.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.ID = dbModel.ID
	u.CreatedAt = dbModel.CreatedAt
	u.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).
		Preload("Badges").
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).
		Preload("Badges").
		Where("email = ?", email).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	u.UpdatedAt = time.Now()

	updates := map[string]interface{}{
		"name":             u.Name,
		"phone":            u.Phone,
		"password_hashed":  u.PasswordHashed,
		"company_name":     u.CompanyName,
		"monthly_capacity": u.MonthlyCapacity,
		"is_verified":      u.IsVerified,
		"updated_at":       u.UpdatedAt,
	}
	if u.IndustryType != nil {
		updates["industry_type"] = string(*u.IndustryType)
	}
	if u.Address != nil {
		updates["address_street"] = u.Address.Street
		updates["address_city"] = u.Address.City
		updates["address_state"] = u.Address.State
		updates["address_pincode"] = u.Address.Pincode
		updates["address_lat"] = u.Address.Latitude
		updates["address_lng"] = u.Address.Longitude
	}

	result := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", u.ID).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrNotFound
	}

	return nil
}

func (r *UserRepository) SetLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", id).
		Update("last_login", at)

	if result.Error != nil {
		return fmt.Errorf("failed to set last login: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrNotFound
	}

	return nil
}

// IncrementPoints applies the delta in a single statement so concurrent
// awards never lose an update. The balance is clamped at zero and the
// level recomputed from the clamped value.
func (r *UserRepository) IncrementPoints(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	var balance int

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.UserModel{}).
			Where("id = ?", id).
			Update("points", gorm.Expr("GREATEST(points + ?, 0)", delta))

		if result.Error != nil {
			return fmt.Errorf("failed to increment points: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return user.ErrNotFound
		}

		if err := tx.Model(&models.UserModel{}).
			Select("points").
			Where("id = ?", id).
			Scan(&balance).Error; err != nil {
			return fmt.Errorf("failed to read point balance: %w", err)
		}

		level := user.LevelForPoints(balance, r.pointsPerLevel)
		if err := tx.Model(&models.UserModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"level":      level,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to update level: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}

func (r *UserRepository) AddBadge(ctx context.Context, id uuid.UUID, badge user.Badge) error {
	dbModel := &models.UserBadgeModel{
		ID:       uuid.New(),
		UserID:   id,
		Name:     badge.Name,
		EarnedAt: badge.EarnedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to add badge: %w", err)
	}
	return nil
}

func (r *UserRepository) ListByPoints(ctx context.Context, role user.Role, limit int) ([]*user.User, error) {
	if limit <= 0 {
		limit = 10
	}

	var dbModels []models.UserModel
	err := r.db.DB.WithContext(ctx).
		Preload("Badges").
		Where("role = ?", string(role)).
		Order("points DESC, created_at ASC").
		Limit(limit).
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users by points: %w", err)
	}

	users := make([]*user.User, len(dbModels))
	for i := range dbModels {
		users[i] = toUserEntity(&dbModels[i])
	}
	return users, nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	var total int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("role = ?", string(role)).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return total, nil
}

func (r *UserRepository) RankByPoints(ctx context.Context, id uuid.UUID) (int, int64, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return 0, 0, err
	}

	var ahead int64
	err = r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("role = ? AND points > ?", string(u.Role), u.Points).
		Count(&ahead).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to compute rank: %w", err)
	}

	total, err := r.CountByRole(ctx, u.Role)
	if err != nil {
		return 0, 0, err
	}

	return int(ahead) + 1, total, nil
}

func (r *UserRepository) CreatePasswordResetToken(ctx context.Context, t *user.PasswordResetToken) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()

	dbModel := &models.PasswordResetTokenModel{
		ID:        t.ID,
		UserID:    t.UserID,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		Used:      t.Used,
		CreatedAt: t.CreatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}
	return nil
}

func (r *UserRepository) GetPasswordResetToken(ctx context.Context, token string) (*user.PasswordResetToken, error) {
	var dbModel models.PasswordResetTokenModel
	err := r.db.DB.WithContext(ctx).
		Where("token = ?", token).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrResetTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}

	return &user.PasswordResetToken{
		ID:        dbModel.ID,
		UserID:    dbModel.UserID,
		Token:     dbModel.Token,
		ExpiresAt: dbModel.ExpiresAt,
		Used:      dbModel.Used,
		CreatedAt: dbModel.CreatedAt,
	}, nil
}

func (r *UserRepository) MarkResetTokenUsed(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.PasswordResetTokenModel{}).
		Where("id = ?", id).
		Update("used", true)

	if result.Error != nil {
		return fmt.Errorf("failed to mark reset token used: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrResetTokenNotFound
	}

	return nil
}

// Helper functions to convert between domain entities and database models
func toUserModel(u *user.User) *models.UserModel {
	m := &models.UserModel{
		ID:              u.ID,
		Role:            string(u.Role),
		Name:            u.Name,
		Email:           u.Email,
		PasswordHashed:  u.PasswordHashed,
		Phone:           u.Phone,
		CompanyName:     u.CompanyName,
		MonthlyCapacity: u.MonthlyCapacity,
		IsVerified:      u.IsVerified,
		Points:          u.Points,
		Level:           u.Level,
		LastLogin:       u.LastLogin,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
	if u.IndustryType != nil {
		industryType := string(*u.IndustryType)
		m.IndustryType = &industryType
	}
	if u.Address != nil {
		m.AddressStreet = &u.Address.Street
		m.AddressCity = &u.Address.City
		m.AddressState = &u.Address.State
		m.AddressPincode = &u.Address.Pincode
		m.AddressLat = u.Address.Latitude
		m.AddressLng = u.Address.Longitude
	}
	return m
}

func toUserEntity(m *models.UserModel) *user.User {
	u := &user.User{
		ID:              m.ID,
		Role:            user.Role(m.Role),
		Name:            m.Name,
		Email:           m.Email,
		PasswordHashed:  m.PasswordHashed,
		Phone:           m.Phone,
		CompanyName:     m.CompanyName,
		MonthlyCapacity: m.MonthlyCapacity,
		IsVerified:      m.IsVerified,
		Points:          m.Points,
		Level:           m.Level,
		LastLogin:       m.LastLogin,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.IndustryType != nil {
		industryType := user.IndustryType(*m.IndustryType)
		u.IndustryType = &industryType
	}
	if m.AddressStreet != nil || m.AddressCity != nil {
		u.Address = &user.Address{
			Latitude:  m.AddressLat,
			Longitude: m.AddressLng,
		}
		if m.AddressStreet != nil {
			u.Address.Street = *m.AddressStreet
		}
		if m.AddressCity != nil {
			u.Address.City = *m.AddressCity
		}
		if m.AddressState != nil {
			u.Address.State = *m.AddressState
		}
		if m.AddressPincode != nil {
			u.Address.Pincode = *m.AddressPincode
		}
	}
	for _, b := range m.Badges {
		u.Badges = append(u.Badges, user.Badge{Name: b.Name, EarnedAt: b.EarnedAt})
	}
	return u
}
