package http

import (
	"net/http"

	"geodrop/internal/usecase"
	"geodrop/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteUseCase  usecase.VoteUseCase
	badgeUseCase usecase.BadgeUseCase
	logger       *logger.Logger
}

func NewVoteHandler(voteUseCase usecase.VoteUseCase, badgeUseCase usecase.BadgeUseCase, logger *logger.Logger) *VoteHandler {
	return &VoteHandler{
		voteUseCase:  voteUseCase,
		badgeUseCase: badgeUseCase,
		logger:       logger,
	}
}

type CastVoteRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// CastVote godoc
// @Summary      Vote on a location
// @Description  Cast an up or down vote. Voting the opposite direction flips the existing vote; repeating the same direction is a no-op.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Location ID"
// @Param        request body CastVoteRequest true "Vote direction"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /locations/{id}/vote [post]
func (h *VoteHandler) CastVote(c *gin.Context) {
	locationID := c.Param("id")
	userID := c.GetString("user_id")

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.voteUseCase.CastVote(userID, locationID, req.Direction)
	if err != nil {
		abortWithError(c, err)
		return
	}

	// Vote totals may have pushed the voter over a badge threshold.
	granted, err := h.badgeUseCase.Evaluate(userID)
	if err != nil {
		h.logger.Warn("Badge evaluation after vote failed for user %s: %v", userID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"vote":           result,
		"badges_granted": granted,
	})
}

// GetOwnVote godoc
// @Summary      Get own vote
// @Description  Return the authenticated user's current vote direction for a location, empty if none
// @Tags         votes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Location ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /locations/{id}/vote [get]
func (h *VoteHandler) GetOwnVote(c *gin.Context) {
	locationID := c.Param("id")
	userID := c.GetString("user_id")

	direction, err := h.voteUseCase.GetVote(userID, locationID)
	if err != nil {
		h.logger.Error("Failed to get vote: %v", err)
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"direction": direction})
}
