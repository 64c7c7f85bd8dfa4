package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wastetrack/internal/usecase/waste"
	"wastetrack/pkg/utils"
)

type WasteHandler struct {
	service *waste.Service
}

func NewWasteHandler(service *waste.Service) *WasteHandler {
	return &WasteHandler{service: service}
}

func (h *WasteHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	wastes := router.Group("/waste")
	{
		wastes.GET("/guide", h.Guide)
		wastes.GET("/search", h.Search)
	}
}

func (h *WasteHandler) RegisterCitizenRoutes(router *gin.RouterGroup) {
	wastes := router.Group("/waste")
	{
		wastes.POST("/classify", h.Classify)
		wastes.GET("/history", h.History)
		wastes.GET("/stats", h.Stats)
		wastes.POST("/:id/feedback", h.Feedback)
		wastes.DELETE("/:id", h.Delete)
	}
}

func (h *WasteHandler) Classify(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req waste.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Classify(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Waste classified successfully", result)
}

func (h *WasteHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query waste.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	items, total, err := h.service.History(c.Request.Context(), userID, &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Classification history retrieved successfully",
		pagedData(items, query.Page, query.PageSize, total))
}

func (h *WasteHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Waste statistics retrieved successfully", result)
}

func (h *WasteHandler) Feedback(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid record ID")
		return
	}

	var req waste.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Feedback(c.Request.Context(), userID, recordID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feedback recorded successfully", result)
}

func (h *WasteHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid record ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, recordID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Record deleted successfully", nil)
}

func (h *WasteHandler) Guide(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Waste guide retrieved successfully", h.service.Guide())
}

func (h *WasteHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Search completed successfully", h.service.Search(query))
}
