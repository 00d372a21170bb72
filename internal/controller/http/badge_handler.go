package http

import (
	"net/http"

	"geodrop/internal/usecase"
	"geodrop/pkg/logger"

	"github.com/gin-gonic/gin"
)

type BadgeHandler struct {
	badgeUseCase usecase.BadgeUseCase
	logger       *logger.Logger
}

func NewBadgeHandler(badgeUseCase usecase.BadgeUseCase, logger *logger.Logger) *BadgeHandler {
	return &BadgeHandler{
		badgeUseCase: badgeUseCase,
		logger:       logger,
	}
}

// GetBadges godoc
// @Summary      Get own badges
// @Description  List all badges the authenticated user has earned
// @Tags         badges
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /badges [get]
func (h *BadgeHandler) GetBadges(c *gin.Context) {
	userID := c.GetString("user_id")

	badges, err := h.badgeUseCase.GetBadges(userID)
	if err != nil {
		h.logger.Error("Failed to get badges: %v", err)
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": badges, "count": len(badges)})
}

// Evaluate godoc
// @Summary      Re-evaluate badges
// @Description  Recompute the authenticated user's achievements and grant any newly earned badges. Safe to call repeatedly.
// @Tags         badges
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /badges/evaluate [post]
func (h *BadgeHandler) Evaluate(c *gin.Context) {
	userID := c.GetString("user_id")

	granted, err := h.badgeUseCase.Evaluate(userID)
	if err != nil {
		h.logger.Error("Failed to evaluate badges: %v", err)
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges_granted": granted, "count": len(granted)})
}
