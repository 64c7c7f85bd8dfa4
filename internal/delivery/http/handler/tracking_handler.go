package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wastetrack/internal/usecase/tracking"
	"wastetrack/pkg/utils"
)

type TrackingHandler struct {
	service *tracking.Service
}

func NewTrackingHandler(service *tracking.Service) *TrackingHandler {
	return &TrackingHandler{service: service}
}

func (h *TrackingHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	trackings := router.Group("/tracking")
	{
		trackings.GET("/:trackingId", h.Track)
	}
}

func (h *TrackingHandler) RegisterIndustryRoutes(router *gin.RouterGroup) {
	trackings := router.Group("/tracking")
	{
		trackings.POST("", h.Create)
		trackings.GET("", h.MyTrackings)
		trackings.GET("/stats", h.Stats)
	}
}

func (h *TrackingHandler) RegisterCollectorRoutes(router *gin.RouterGroup) {
	trackings := router.Group("/tracking")
	{
		trackings.PUT("/:trackingId/status", h.UpdateStatus)
	}
}

func (h *TrackingHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	trackings := router.Group("/tracking")
	{
		trackings.GET("/all", h.All)
		trackings.DELETE("/:trackingId", h.Delete)
	}
}

func (h *TrackingHandler) Create(c *gin.Context) {
	industryID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req tracking.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Create(c.Request.Context(), industryID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Tracking record created successfully", result)
}

func (h *TrackingHandler) Track(c *gin.Context) {
	result, err := h.service.Track(c.Request.Context(), c.Param("trackingId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tracking record retrieved successfully", result)
}

func (h *TrackingHandler) MyTrackings(c *gin.Context) {
	industryID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query tracking.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	items, total, err := h.service.MyTrackings(c.Request.Context(), industryID, &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tracking records retrieved successfully",
		pagedData(items, query.Page, query.PageSize, total))
}

func (h *TrackingHandler) All(c *gin.Context) {
	var query tracking.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	items, total, err := h.service.All(c.Request.Context(), &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tracking records retrieved successfully",
		pagedData(items, query.Page, query.PageSize, total))
}

func (h *TrackingHandler) Stats(c *gin.Context) {
	industryID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.service.Stats(c.Request.Context(), industryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tracking statistics retrieved successfully", result)
}

func (h *TrackingHandler) UpdateStatus(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req tracking.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The actor recorded in the status history.
	updatedBy := c.GetString("email")

	result, err := h.service.UpdateStatus(c.Request.Context(), c.Param("trackingId"), updatedBy, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tracking status updated successfully", result)
}

func (h *TrackingHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("trackingId")); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tracking record deleted successfully", nil)
}
