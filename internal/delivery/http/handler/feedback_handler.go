package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wastetrack/internal/usecase/feedback"
	"wastetrack/pkg/utils"
)

type FeedbackHandler struct {
	service *feedback.Service
}

func NewFeedbackHandler(service *feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) RegisterAuthRoutes(router *gin.RouterGroup) {
	feedbacks := router.Group("/feedback")
	{
		feedbacks.POST("", h.Submit)
		feedbacks.GET("", h.ListMy)
		feedbacks.GET("/stats", h.Stats)
		feedbacks.GET("/:id", h.GetByID)
		feedbacks.POST("/:id/rate", h.RateResponse)
	}
}

func (h *FeedbackHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	feedbacks := router.Group("/feedback")
	{
		feedbacks.GET("/all", h.All)
		feedbacks.POST("/:id/respond", h.Respond)
	}
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req feedback.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Feedback submitted successfully", result)
}

func (h *FeedbackHandler) ListMy(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query feedback.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	items, total, err := h.service.ListMy(c.Request.Context(), userID, &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feedback retrieved successfully",
		pagedData(items, query.Page, query.PageSize, total))
}

func (h *FeedbackHandler) All(c *gin.Context) {
	var query feedback.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	items, total, err := h.service.All(c.Request.Context(), &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feedback retrieved successfully",
		pagedData(items, query.Page, query.PageSize, total))
}

func (h *FeedbackHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid feedback ID")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), userID, currentRole(c), feedbackID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feedback retrieved successfully", result)
}

func (h *FeedbackHandler) Respond(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}

	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid feedback ID")
		return
	}

	var req feedback.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Respond(c.Request.Context(), adminID, feedbackID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Response recorded successfully", result)
}

func (h *FeedbackHandler) RateResponse(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid feedback ID")
		return
	}

	var req feedback.RateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.RateResponse(c.Request.Context(), userID, feedbackID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Response rated successfully", result)
}

func (h *FeedbackHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feedback statistics retrieved successfully", result)
}
