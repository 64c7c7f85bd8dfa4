package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"wastetrack/internal/domain/declaration"
	"wastetrack/internal/domain/feedback"
	"wastetrack/internal/domain/notification"
	"wastetrack/internal/domain/pickup"
	"wastetrack/internal/domain/tracking"
	"wastetrack/internal/domain/user"
	"wastetrack/internal/domain/waste"
	"wastetrack/internal/logger"
	"wastetrack/internal/middleware"
	appErrors "wastetrack/pkg/errors"
	"wastetrack/pkg/utils"
)

// respondWithError maps domain errors onto HTTP statuses. Anything
// unrecognized is logged and reported as a 500 without leaking detail.
func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, user.ErrNotFound),
		errors.Is(err, pickup.ErrNotFound),
		errors.Is(err, waste.ErrNotFound),
		errors.Is(err, declaration.ErrNotFound),
		errors.Is(err, tracking.ErrNotFound),
		errors.Is(err, feedback.ErrNotFound),
		errors.Is(err, notification.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())

	case errors.Is(err, pickup.ErrNotOwner),
		errors.Is(err, waste.ErrNotOwner),
		errors.Is(err, declaration.ErrNotOwner),
		errors.Is(err, feedback.ErrNotOwner),
		errors.Is(err, notification.ErrNotOwner),
		errors.Is(err, appErrors.ErrUnauthorized),
		errors.Is(err, appErrors.ErrInsufficientPermissions):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())

	case errors.Is(err, appErrors.ErrInvalidCredentials),
		errors.Is(err, appErrors.ErrInvalidToken),
		errors.Is(err, appErrors.ErrTokenExpired),
		errors.Is(err, appErrors.ErrResetTokenUsed):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, user.ErrAlreadyExists),
		errors.Is(err, declaration.ErrPeriodExists),
		errors.Is(err, tracking.ErrDuplicateID):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())

	case errors.Is(err, pickup.ErrAlreadyCompleted),
		errors.Is(err, pickup.ErrAlreadyCancelled),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrMissingIndustry),
		errors.Is(err, pickup.ErrInvalidWasteType),
		errors.Is(err, pickup.ErrInvalidTimeSlot),
		errors.Is(err, pickup.ErrPastDate),
		errors.Is(err, pickup.ErrNotCompleted),
		errors.Is(err, pickup.ErrInvalidRating),
		errors.Is(err, declaration.ErrInvalidPeriod),
		errors.Is(err, declaration.ErrEmptyCategories),
		errors.Is(err, declaration.ErrNotDraft),
		errors.Is(err, declaration.ErrNotApproved),
		errors.Is(err, tracking.ErrInvalidTrackingID),
		errors.Is(err, tracking.ErrInvalidStatus),
		errors.Is(err, feedback.ErrNoResponse),
		errors.Is(err, feedback.ErrInvalidType),
		errors.Is(err, feedback.ErrInvalidRating),
		errors.Is(err, appErrors.ErrWeakPassword),
		errors.Is(err, appErrors.ErrInsufficientPoints):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())

	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}

		requestID := middleware.GetRequestID(c)
		logger.Error("Internal server error",
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

// currentUserID reads the authenticated user ID placed by the auth
// middleware. Routes outside the authenticated groups never call it.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("userID")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid user ID format")
		return uuid.Nil, false
	}
	return id, true
}

func currentRole(c *gin.Context) string {
	if v, exists := c.Get("role"); exists {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

// pagedData wraps a list payload with its pagination envelope using
// the same defaults the repositories apply.
func pagedData(items interface{}, page, pageSize int, total int64) gin.H {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return gin.H{
		"items":      items,
		"pagination": utils.NewPagination(page, pageSize, total),
	}
}
