package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"wastetrack/internal/domain/declaration"
	"wastetrack/internal/domain/pickup"
	"wastetrack/internal/domain/tracking"
	"wastetrack/internal/domain/user"
	appErrors "wastetrack/pkg/errors"
)

func TestRespondWithErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", pickup.ErrNotFound, http.StatusNotFound},
		{"not owner", pickup.ErrNotOwner, http.StatusForbidden},
		{"invalid credentials", appErrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"duplicate email", user.ErrAlreadyExists, http.StatusConflict},
		{"duplicate period", declaration.ErrPeriodExists, http.StatusConflict},
		{"already completed", pickup.ErrAlreadyCompleted, http.StatusBadRequest},
		{"already cancelled", pickup.ErrAlreadyCancelled, http.StatusBadRequest},
		{"terminal tracking status", appErrors.NewAppError("TERMINAL_STATUS", "Shipment is in a terminal state", nil), http.StatusBadRequest},
		{"invalid state", appErrors.NewAppError("INVALID_STATE", "Cannot cancel this pickup", nil), http.StatusBadRequest},
		{"validation", appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", nil), http.StatusBadRequest},
		{"malformed tracking id", tracking.ErrInvalidTrackingID, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondWithError(c, tt.err)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
