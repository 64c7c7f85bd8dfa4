package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wastetrack/internal/usecase/pickup"
	"wastetrack/pkg/utils"
)

type PickupHandler struct {
	service *pickup.Service
}

func NewPickupHandler(service *pickup.Service) *PickupHandler {
	return &PickupHandler{service: service}
}

func (h *PickupHandler) RegisterCitizenRoutes(router *gin.RouterGroup) {
	pickups := router.Group("/pickups")
	{
		pickups.POST("", h.Schedule)
		pickups.GET("", h.List)
		pickups.GET("/stats", h.Stats)
		pickups.GET("/:id", h.GetByID)
		pickups.POST("/:id/cancel", h.Cancel)
		pickups.POST("/:id/rate", h.Rate)
	}
}

func (h *PickupHandler) RegisterCollectorRoutes(router *gin.RouterGroup) {
	pickups := router.Group("/pickups")
	{
		pickups.POST("/:id/complete", h.Complete)
	}
}

func (h *PickupHandler) Schedule(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req pickup.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Schedule(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Pickup scheduled successfully", result)
}

func (h *PickupHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query pickup.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	items, total, err := h.service.List(c.Request.Context(), userID, &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pickups retrieved successfully",
		pagedData(items, query.Page, query.PageSize, total))
}

func (h *PickupHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pickupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid pickup ID")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), userID, currentRole(c), pickupID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pickup retrieved successfully", result)
}

func (h *PickupHandler) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pickupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid pickup ID")
		return
	}

	var req pickup.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Cancel(c.Request.Context(), userID, currentRole(c), pickupID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pickup cancelled successfully", result)
}

func (h *PickupHandler) Complete(c *gin.Context) {
	collectorID, ok := currentUserID(c)
	if !ok {
		return
	}

	pickupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid pickup ID")
		return
	}

	var req pickup.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Complete(c.Request.Context(), collectorID, pickupID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pickup completed successfully", result)
}

func (h *PickupHandler) Rate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pickupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid pickup ID")
		return
	}

	var req pickup.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Rate(c.Request.Context(), userID, pickupID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pickup rated successfully", result)
}

func (h *PickupHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pickup statistics retrieved successfully", result)
}
