package http

import (
	"net/http"
	"strconv"

	"geodrop/internal/usecase"
	"geodrop/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locationUseCase usecase.LocationUseCase
	logger          *logger.Logger
}

func NewLocationHandler(locationUseCase usecase.LocationUseCase, logger *logger.Logger) *LocationHandler {
	return &LocationHandler{
		locationUseCase: locationUseCase,
		logger:          logger,
	}
}

// Coordinates bind through pointers so that 0 (equator, prime meridian)
// survives the required check.
type CreateLocationRequest struct {
	Longitude       *float64 `form:"longitude" binding:"required,min=-180,max=180"`
	Latitude        *float64 `form:"latitude" binding:"required,min=-90,max=90"`
	Text            string   `form:"text" binding:"max=2000"`
	Anonymous       bool     `form:"anonymous"`
	Credits         int      `form:"credits"`
	AutoDeleteHours int      `form:"auto_delete_hours" binding:"min=0,max=720"`
}

// CreateLocation godoc
// @Summary      Create a location
// @Description  Drop a new location pin with optional media attachments, attached credits and an auto-delete deadline
// @Tags         locations
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        longitude formData number true "Longitude"
// @Param        latitude formData number true "Latitude"
// @Param        text formData string false "Location text"
// @Param        anonymous formData boolean false "Hide the creator from other users"
// @Param        credits formData integer false "Credits to attach (deducted from the creator's balance)"
// @Param        auto_delete_hours formData integer false "Hours until the location is swept away (0 = never)"
// @Param        media formData file false "Media files (up to 10 photos or videos)"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateLocationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.CreateLocationInput{
		Longitude:       *req.Longitude,
		Latitude:        *req.Latitude,
		Text:            req.Text,
		Anonymous:       req.Anonymous,
		Credits:         req.Credits,
		AutoDeleteHours: req.AutoDeleteHours,
	}

	if form, err := c.MultipartForm(); err == nil {
		input.MediaFiles = form.File["media"]
	}

	location, err := h.locationUseCase.CreateLocation(userID, input)
	if err != nil {
		h.logger.Error("Failed to create location: %v", err)
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"location": location})
}

// GetLocation godoc
// @Summary      Get location by ID
// @Description  Get location details including vote counters and the requester's own vote
// @Tags         locations
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Location ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /locations/{id} [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	locationID := c.Param("id")
	userID := c.GetString("user_id")

	location, ownDirection, err := h.locationUseCase.GetLocation(locationID, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"location": location,
		"own_vote": ownDirection,
	})
}

// ListLocations godoc
// @Summary      List locations
// @Description  Get a page of locations, newest first
// @Tags         locations
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of locations to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /locations [get]
func (h *LocationHandler) ListLocations(c *gin.Context) {
	limit, offset := pagination(c)

	locations, err := h.locationUseCase.ListLocations(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list locations: %v", err)
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations, "count": len(locations), "offset": offset})
}

// GetCreatorLocations godoc
// @Summary      Get locations by creator
// @Description  Get all locations created by a specific user
// @Tags         locations
// @Produce      json
// @Security     BearerAuth
// @Param        creator_id path string true "Creator ID"
// @Param        limit query int false "Number of locations to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /locations/creator/{creator_id} [get]
func (h *LocationHandler) GetCreatorLocations(c *gin.Context) {
	creatorID := c.Param("creator_id")
	limit, offset := pagination(c)

	locations, err := h.locationUseCase.GetCreatorLocations(creatorID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to get creator locations: %v", err)
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations, "count": len(locations)})
}

type UpdateLocationRequest struct {
	Text      *string `json:"text"`
	Anonymous *bool   `json:"anonymous"`
}

// UpdateLocation godoc
// @Summary      Update location
// @Description  Update location text or anonymity. Only the creator can update their own locations.
// @Tags         locations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Location ID"
// @Param        request body UpdateLocationRequest true "Update data"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /locations/{id} [put]
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	locationID := c.Param("id")
	userID := c.GetString("user_id")

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.locationUseCase.UpdateLocation(locationID, userID, usecase.UpdateLocationInput{
		Text:      req.Text,
		Anonymous: req.Anonymous,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": location})
}

// DeleteLocation godoc
// @Summary      Delete location
// @Description  Delete a location. Only the creator can delete their own locations.
// @Tags         locations
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Location ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	locationID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.locationUseCase.DeleteLocation(locationID, userID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted successfully"})
}

func pagination(c *gin.Context) (int, int) {
	limit := 20
	offset := 0

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	return limit, offset
}
