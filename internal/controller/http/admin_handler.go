package http

import (
	"net/http"

	"geodrop/internal/usecase"
	"geodrop/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// SearchLocations godoc
// @Summary      Search locations
// @Description  Search locations by keyword and verification status. Admin only.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        keyword query string false "Keyword to match against location text"
// @Param        status query string false "Verification status filter" Enums(normal, pending, verified, flagged)
// @Param        limit query int false "Number of locations to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/locations/search [get]
func (h *AdminHandler) SearchLocations(c *gin.Context) {
	keyword := c.Query("keyword")
	status := c.Query("status")
	limit, offset := pagination(c)

	locations, err := h.adminUseCase.SearchLocations(keyword, status, limit, offset)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations, "count": len(locations), "offset": offset})
}

type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=normal pending verified flagged"`
}

// OverrideStatus godoc
// @Summary      Override location status
// @Description  Force a location into any verification status. This is the only way to move a flagged or verified location back to normal.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Location ID"
// @Param        request body OverrideStatusRequest true "Target status"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/locations/{id}/status [put]
func (h *AdminHandler) OverrideStatus(c *gin.Context) {
	locationID := c.Param("id")

	var req OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.adminUseCase.OverrideStatus(locationID, req.Status)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.logger.Info("Admin %s set location %s status to %s", c.GetString("user_id"), locationID, req.Status)
	c.JSON(http.StatusOK, gin.H{"location": location})
}

// ListUsers godoc
// @Summary      List users
// @Description  Get a page of registered users. Admin only.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of users to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, offset := pagination(c)

	users, err := h.adminUseCase.ListUsers(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list users: %v", err)
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users), "offset": offset})
}

type SetUserActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetUserActive godoc
// @Summary      Activate or deactivate a user
// @Description  Deactivated users cannot log in. Admin only.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body SetUserActiveRequest true "Active flag"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id}/active [put]
func (h *AdminHandler) SetUserActive(c *gin.Context) {
	targetID := c.Param("id")

	var req SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.adminUseCase.SetUserActive(targetID, *req.Active); err != nil {
		abortWithError(c, err)
		return
	}

	h.logger.Info("Admin %s set user %s active=%v", c.GetString("user_id"), targetID, *req.Active)
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}
