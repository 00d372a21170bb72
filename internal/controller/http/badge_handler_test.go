package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"geodrop/internal/entity"
	"geodrop/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetBadges_Success(t *testing.T) {
	mockBadges := new(MockBadgeUseCase)
	handler := NewBadgeHandler(mockBadges, logger.New())

	router := setupTestRouter()
	router.GET("/badges", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.GetBadges(c)
	})

	mockBadges.On("GetBadges", "user-123").Return([]*entity.Badge{
		{ID: "badge-1", UserID: "user-123", BadgeID: "locations_10", GrantedAt: time.Now()},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/badges", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(1), response["count"])

	mockBadges.AssertExpectations(t)
}

func TestGetBadges_Empty(t *testing.T) {
	mockBadges := new(MockBadgeUseCase)
	handler := NewBadgeHandler(mockBadges, logger.New())

	router := setupTestRouter()
	router.GET("/badges", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.GetBadges(c)
	})

	mockBadges.On("GetBadges", "user-123").Return([]*entity.Badge{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/badges", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(0), response["count"])
}

func TestEvaluate_GrantsNewBadges(t *testing.T) {
	mockBadges := new(MockBadgeUseCase)
	handler := NewBadgeHandler(mockBadges, logger.New())

	router := setupTestRouter()
	router.POST("/badges/evaluate", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.Evaluate(c)
	})

	mockBadges.On("Evaluate", "user-123").Return([]string{"locations_10"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/badges/evaluate", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	granted := response["badges_granted"].([]interface{})
	assert.Equal(t, []interface{}{"locations_10"}, granted)

	mockBadges.AssertExpectations(t)
}

func TestEvaluate_Error(t *testing.T) {
	mockBadges := new(MockBadgeUseCase)
	handler := NewBadgeHandler(mockBadges, logger.New())

	router := setupTestRouter()
	router.POST("/badges/evaluate", handler.Evaluate)

	mockBadges.On("Evaluate", "").Return(nil, errors.New("database unavailable"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/badges/evaluate", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockBadges.AssertExpectations(t)
}
