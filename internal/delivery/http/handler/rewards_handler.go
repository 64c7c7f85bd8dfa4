package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wastetrack/internal/usecase/rewards"
	"wastetrack/pkg/utils"
)

type RewardsHandler struct {
	service *rewards.Service
}

func NewRewardsHandler(service *rewards.Service) *RewardsHandler {
	return &RewardsHandler{service: service}
}

func (h *RewardsHandler) RegisterAuthRoutes(router *gin.RouterGroup) {
	rewardsGroup := router.Group("/rewards")
	{
		rewardsGroup.GET("/leaderboard", h.Leaderboard)
		rewardsGroup.GET("/rank", h.MyRank)
		rewardsGroup.GET("/badges", h.Badges)
		rewardsGroup.POST("/redeem", h.Redeem)
	}
}

func (h *RewardsHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	rewardsGroup := router.Group("/rewards")
	{
		rewardsGroup.POST("/award", h.AwardPoints)
	}
}

func (h *RewardsHandler) Leaderboard(c *gin.Context) {
	var query rewards.LeaderboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.service.Leaderboard(c.Request.Context(), &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Leaderboard retrieved successfully", result)
}

func (h *RewardsHandler) MyRank(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.service.MyRank(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rank retrieved successfully", result)
}

func (h *RewardsHandler) Badges(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.service.Badges(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Badges retrieved successfully", result)
}

func (h *RewardsHandler) AwardPoints(c *gin.Context) {
	var req rewards.AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.AwardPoints(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Points awarded successfully", result)
}

func (h *RewardsHandler) Redeem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req rewards.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Redeem(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Points redeemed successfully", result)
}
