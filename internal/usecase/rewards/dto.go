package rewards

import (
	"time"

	"github.com/google/uuid"
)

type AwardPointsRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Points int       `json:"points" validate:"required,gt=0"`
	Reason string    `json:"reason" validate:"omitempty,max=500"`
}

type RedeemRequest struct {
	Points      int    `json:"points" validate:"required,gt=0"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type LeaderboardQuery struct {
	Limit int `form:"limit"`
}

type LeaderboardEntry struct {
	Rank             int       `json:"rank"`
	UserID           uuid.UUID `json:"user_id"`
	Name             string    `json:"name"`
	Points           int       `json:"points"`
	Level            int       `json:"level"`
	BadgeCount       int       `json:"badge_count"`
	CompletedPickups int       `json:"completed_pickups"`
	RecycledWeight   float64   `json:"recycled_weight"`
}

type RankResponse struct {
	Rank       int                 `json:"rank"`
	Total      int64               `json:"total"`
	Percentile float64             `json:"percentile"`
	Points     int                 `json:"points"`
	Level      int                 `json:"level"`
	Nearby     []*LeaderboardEntry `json:"nearby"`
}

type BadgeStatus struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Earned      bool       `json:"earned"`
	EarnedAt    *time.Time `json:"earned_at,omitempty"`
	Progress    int        `json:"progress"`
	Target      int        `json:"target"`
}

type BalanceResponse struct {
	Points int `json:"points"`
	Level  int `json:"level"`
}
