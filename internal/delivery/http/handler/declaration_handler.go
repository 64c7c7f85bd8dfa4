package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wastetrack/internal/usecase/declaration"
	"wastetrack/pkg/utils"
)

type DeclarationHandler struct {
	service *declaration.Service
}

func NewDeclarationHandler(service *declaration.Service) *DeclarationHandler {
	return &DeclarationHandler{service: service}
}

func (h *DeclarationHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	declarations := router.Group("/declarations")
	{
		declarations.GET("/track/:trackingId", h.Track)
	}
}

func (h *DeclarationHandler) RegisterIndustryRoutes(router *gin.RouterGroup) {
	declarations := router.Group("/declarations")
	{
		declarations.POST("", h.Submit)
		declarations.GET("", h.List)
		declarations.GET("/stats", h.Stats)
		declarations.GET("/:id/certificate", h.Certificate)
		declarations.DELETE("/:id", h.Delete)
	}
}

func (h *DeclarationHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	declarations := router.Group("/declarations")
	{
		declarations.GET("/all", h.All)
		declarations.POST("/:id/review", h.Review)
	}
}

func (h *DeclarationHandler) Submit(c *gin.Context) {
	industryID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req declaration.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Submit(c.Request.Context(), industryID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Declaration submitted successfully", result)
}

func (h *DeclarationHandler) List(c *gin.Context) {
	industryID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query declaration.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	items, total, err := h.service.List(c.Request.Context(), industryID, &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Declarations retrieved successfully",
		pagedData(items, query.Page, query.PageSize, total))
}

func (h *DeclarationHandler) All(c *gin.Context) {
	var query declaration.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	items, total, err := h.service.All(c.Request.Context(), &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Declarations retrieved successfully",
		pagedData(items, query.Page, query.PageSize, total))
}

func (h *DeclarationHandler) Track(c *gin.Context) {
	result, err := h.service.Track(c.Request.Context(), c.Param("trackingId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Declaration retrieved successfully", result)
}

func (h *DeclarationHandler) Stats(c *gin.Context) {
	industryID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.service.Stats(c.Request.Context(), industryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Declaration statistics retrieved successfully", result)
}

func (h *DeclarationHandler) Delete(c *gin.Context) {
	industryID, ok := currentUserID(c)
	if !ok {
		return
	}

	declarationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid declaration ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), industryID, declarationID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Declaration deleted successfully", nil)
}

func (h *DeclarationHandler) Certificate(c *gin.Context) {
	industryID, ok := currentUserID(c)
	if !ok {
		return
	}

	declarationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid declaration ID")
		return
	}

	result, err := h.service.Certificate(c.Request.Context(), industryID, declarationID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Certificate generated successfully", result)
}

func (h *DeclarationHandler) Review(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}

	declarationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid declaration ID")
		return
	}

	var req declaration.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Review(c.Request.Context(), adminID, declarationID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Declaration reviewed successfully", result)
}
