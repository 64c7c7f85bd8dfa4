package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines persistence operations for users and their tokens.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	SetLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// IncrementPoints applies delta atomically on the stored row and
	// recomputes the level from the resulting balance. Returns the new
	// balance. Negative balances are clamped to zero.
	IncrementPoints(ctx context.Context, id uuid.UUID, delta int) (int, error)
	AddBadge(ctx context.Context, id uuid.UUID, badge Badge) error

	// Leaderboard queries.
	ListByPoints(ctx context.Context, role Role, limit int) ([]*User, error)
	CountByRole(ctx context.Context, role Role) (int64, error)
	RankByPoints(ctx context.Context, id uuid.UUID) (rank int, total int64, err error)

	CreatePasswordResetToken(ctx context.Context, t *PasswordResetToken) error
	GetPasswordResetToken(ctx context.Context, token string) (*PasswordResetToken, error)
	MarkResetTokenUsed(ctx context.Context, id uuid.UUID) error
}

// RefreshTokenRepository stores revocable session tokens.
type RefreshTokenRepository interface {
	Create(ctx context.Context, t *RefreshToken) error
	Get(ctx context.Context, token string) (*RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
