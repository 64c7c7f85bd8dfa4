package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wastetrack/internal/config"
	domainUser "wastetrack/internal/domain/user"
	"wastetrack/internal/logger"
	"wastetrack/internal/mailer"
	appErrors "wastetrack/pkg/errors"
	"wastetrack/pkg/utils"
)

const resetTokenTTL = time.Hour

// Service implements user and authentication use cases
type Service struct {
	userRepo         domainUser.Repository
	refreshTokenRepo domainUser.RefreshTokenRepository
	mail             *mailer.Mailer
	config           *config.Config
}

func NewService(
	userRepo domainUser.Repository,
	refreshTokenRepo domainUser.RefreshTokenRepository,
	mail *mailer.Mailer,
	cfg *config.Config,
) *Service {
	return &Service{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		mail:             mail,
		config:           cfg,
	}
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	role := domainUser.Role(req.Role)
	if req.Role == "" {
		role = domainUser.RoleCitizen
	}
	if !role.Valid() || role == domainUser.RoleAdmin {
		return nil, appErrors.NewAppError("INVALID_ROLE", "Invalid role", domainUser.ErrInvalidRole)
	}
	if role == domainUser.RoleIndustry && (req.CompanyName == nil || req.IndustryType == nil) {
		return nil, appErrors.NewAppError("MISSING_INDUSTRY_DETAILS",
			"Industry accounts must provide company name and industry type", domainUser.ErrMissingIndustry)
	}

	email := utils.SanitizeEmail(req.Email)
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainUser.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		logger.Warn("Registration attempt with existing email",
			zap.String("email", email),
			zap.String("event", "registration_failed_duplicate_email"),
		)
		return nil, appErrors.ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &domainUser.User{
		Role:            role,
		Name:            utils.SanitizeString(req.Name),
		Email:           email,
		PasswordHashed:  hashedPassword,
		Phone:           req.Phone,
		CompanyName:     req.CompanyName,
		MonthlyCapacity: req.MonthlyCapacity,
		Points:          0,
		Level:           1,
	}
	if req.IndustryType != nil {
		industryType := domainUser.IndustryType(*req.IndustryType)
		if !industryType.Valid() {
			industryType = domainUser.IndustryOther
		}
		u.IndustryType = &industryType
	}
	if req.Address != nil {
		u.Address = &domainUser.Address{
			Street:    utils.SanitizeString(req.Address.Street),
			City:      utils.SanitizeString(req.Address.City),
			State:     utils.SanitizeString(req.Address.State),
			Pincode:   utils.SanitizeString(req.Address.Pincode),
			Latitude:  req.Address.Latitude,
			Longitude: req.Address.Longitude,
		}
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, domainUser.ErrAlreadyExists) {
			return nil, appErrors.ErrUserAlreadyExists
		}
		return nil, err
	}

	resp, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}

	logger.Info("User registered successfully",
		zap.String("user_id", u.ID.String()),
		zap.String("email", u.Email),
		zap.String("role", string(u.Role)),
		zap.String("event", "user_registered"),
	)

	return resp, nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	u, err := s.userRepo.GetByEmail(ctx, utils.SanitizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, domainUser.ErrNotFound) {
			logger.Warn("Login attempt with non-existent email",
				zap.String("email", req.Email),
				zap.String("event", "user_not_found"),
			)
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(u.PasswordHashed, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("user_id", u.ID.String()),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.userRepo.SetLastLogin(ctx, u.ID, now); err != nil {
		logger.Error("Failed to record last login", zap.Error(err))
	}
	u.LastLogin = &now

	resp, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in successfully",
		zap.String("user_id", u.ID.String()),
		zap.String("role", string(u.Role)),
		zap.String("event", "login_success"),
	)

	return resp, nil
}

func (s *Service) Refresh(ctx context.Context, req *RefreshRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	stored, err := s.refreshTokenRepo.Get(ctx, req.RefreshToken)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}
	if stored.Revoked || time.Now().After(stored.ExpiresAt) {
		return nil, appErrors.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	// Rotate: revoke the presented token and issue a fresh pair.
	if err := s.refreshTokenRepo.Revoke(ctx, req.RefreshToken); err != nil {
		logger.Error("Failed to revoke rotated refresh token", zap.Error(err))
	}

	return s.issueTokens(ctx, u)
}

func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.refreshTokenRepo.Revoke(ctx, refreshToken); err != nil {
		if errors.Is(err, appErrors.ErrInvalidToken) {
			return nil
		}
		return err
	}
	return nil
}

// ForgotPassword issues a reset token. The response is identical whether
// or not the account exists so the endpoint cannot be used to probe
// registered emails.
func (s *Service) ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	u, err := s.userRepo.GetByEmail(ctx, utils.SanitizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, domainUser.ErrNotFound) {
			logger.Info("Password reset requested for unknown email",
				zap.String("event", "password_reset_unknown_email"),
			)
			return nil
		}
		return err
	}

	token := utils.GenerateResetToken()
	resetToken := &domainUser.PasswordResetToken{
		UserID:    u.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.userRepo.CreatePasswordResetToken(ctx, resetToken); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	if err := s.mail.SendPasswordReset(u.Email, token); err != nil {
		logger.Error("Failed to send password reset mail",
			zap.String("user_id", u.ID.String()),
			zap.Error(err),
		)
	}

	logger.Info("Password reset token issued",
		zap.String("user_id", u.ID.String()),
		zap.String("event", "password_reset_requested"),
	)

	return nil
}

func (s *Service) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		return appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	stored, err := s.userRepo.GetPasswordResetToken(ctx, req.Token)
	if err != nil {
		return appErrors.ErrInvalidToken
	}
	if stored.Used {
		return appErrors.ErrResetTokenUsed
	}
	if time.Now().After(stored.ExpiresAt) {
		return appErrors.ErrTokenExpired
	}

	u, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return err
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHashed = hashedPassword

	if err := s.userRepo.Update(ctx, u); err != nil {
		return err
	}
	if err := s.userRepo.MarkResetTokenUsed(ctx, stored.ID); err != nil {
		return err
	}

	logger.Info("Password reset completed",
		zap.String("user_id", u.ID.String()),
		zap.String("event", "password_reset_completed"),
	)

	return nil
}

func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, req *ChangePasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		return appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(u.PasswordHashed, req.OldPassword) {
		return appErrors.ErrInvalidCredentials
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHashed = hashedPassword

	return s.userRepo.Update(ctx, u)
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = utils.SanitizeString(*req.Name)
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}
	if req.CompanyName != nil {
		u.CompanyName = req.CompanyName
	}
	if req.MonthlyCapacity != nil {
		u.MonthlyCapacity = req.MonthlyCapacity
	}
	if req.Address != nil {
		u.Address = &domainUser.Address{
			Street:    utils.SanitizeString(req.Address.Street),
			City:      utils.SanitizeString(req.Address.City),
			State:     utils.SanitizeString(req.Address.State),
			Pincode:   utils.SanitizeString(req.Address.Pincode),
			Latitude:  req.Address.Latitude,
			Longitude: req.Address.Longitude,
		}
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	return ToUserResponse(u), nil
}

func (s *Service) issueTokens(ctx context.Context, u *domainUser.User) (*AuthResponse, error) {
	tokenPair, err := utils.GenerateTokenPair(
		u.ID,
		u.Email,
		string(u.Role),
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
		s.config.JWT.RefreshExpiryHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	refreshToken := &domainUser.RefreshToken{
		UserID:    u.ID,
		Token:     tokenPair.RefreshToken,
		ExpiresAt: time.Now().Add(time.Duration(s.config.JWT.RefreshExpiryHours) * time.Hour),
	}
	if err := s.refreshTokenRepo.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &AuthResponse{
		User:         ToUserResponse(u),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
	}, nil
}
