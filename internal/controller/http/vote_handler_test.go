package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"geodrop/internal/entity"
	"geodrop/internal/usecase"
	"geodrop/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVoteUseCase is a mock implementation of VoteUseCase
type MockVoteUseCase struct {
	mock.Mock
}

func (m *MockVoteUseCase) CastVote(userID, locationID, direction string) (*entity.VoteResult, error) {
	args := m.Called(userID, locationID, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VoteResult), args.Error(1)
}

func (m *MockVoteUseCase) GetVote(userID, locationID string) (entity.Direction, error) {
	args := m.Called(userID, locationID)
	return args.Get(0).(entity.Direction), args.Error(1)
}

var _ usecase.VoteUseCase = (*MockVoteUseCase)(nil)

// MockBadgeUseCase is a mock implementation of BadgeUseCase
type MockBadgeUseCase struct {
	mock.Mock
}

func (m *MockBadgeUseCase) Evaluate(userID string) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBadgeUseCase) GetBadges(userID string) ([]*entity.Badge, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Badge), args.Error(1)
}

var _ usecase.BadgeUseCase = (*MockBadgeUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func castVoteRequest(t *testing.T, router *gin.Engine, locationID, direction string) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"direction": direction})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/locations/"+locationID+"/vote", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)
	return w
}

func TestCastVote_Success(t *testing.T) {
	mockVotes := new(MockVoteUseCase)
	mockBadges := new(MockBadgeUseCase)
	handler := NewVoteHandler(mockVotes, mockBadges, logger.New())

	router := setupTestRouter()
	router.POST("/locations/:id/vote", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.CastVote(c)
	})

	mockVotes.On("CastVote", "user-123", "loc-123", "up").Return(&entity.VoteResult{
		Previous:    entity.DirectionNone,
		Applied:     entity.DirectionUp,
		Upvotes:     1,
		Downvotes:   0,
		TotalPoints: 1,
		Status:      entity.StatusNormal,
	}, nil)
	mockBadges.On("Evaluate", "user-123").Return([]string{}, nil)

	w := castVoteRequest(t, router, "loc-123", "up")

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	vote := response["vote"].(map[string]interface{})
	assert.Equal(t, "up", vote["applied_direction"])
	assert.Equal(t, float64(1), vote["total_points"])

	mockVotes.AssertExpectations(t)
	mockBadges.AssertExpectations(t)
}

func TestCastVote_GrantsBadge(t *testing.T) {
	mockVotes := new(MockVoteUseCase)
	mockBadges := new(MockBadgeUseCase)
	handler := NewVoteHandler(mockVotes, mockBadges, logger.New())

	router := setupTestRouter()
	router.POST("/locations/:id/vote", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.CastVote(c)
	})

	mockVotes.On("CastVote", "user-123", "loc-123", "up").Return(&entity.VoteResult{
		Applied:     entity.DirectionUp,
		Upvotes:     1,
		TotalPoints: 1,
		Status:      entity.StatusNormal,
	}, nil)
	mockBadges.On("Evaluate", "user-123").Return([]string{"votes_100"}, nil)

	w := castVoteRequest(t, router, "loc-123", "up")

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	granted := response["badges_granted"].([]interface{})
	assert.Equal(t, []interface{}{"votes_100"}, granted)

	mockVotes.AssertExpectations(t)
}

func TestCastVote_InvalidDirection(t *testing.T) {
	mockVotes := new(MockVoteUseCase)
	mockBadges := new(MockBadgeUseCase)
	handler := NewVoteHandler(mockVotes, mockBadges, logger.New())

	router := setupTestRouter()
	router.POST("/locations/:id/vote", handler.CastVote)

	w := castVoteRequest(t, router, "loc-123", "sideways")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockVotes.AssertNotCalled(t, "CastVote", mock.Anything, mock.Anything, mock.Anything)
}

func TestCastVote_LocationNotFound(t *testing.T) {
	mockVotes := new(MockVoteUseCase)
	mockBadges := new(MockBadgeUseCase)
	handler := NewVoteHandler(mockVotes, mockBadges, logger.New())

	router := setupTestRouter()
	router.POST("/locations/:id/vote", handler.CastVote)

	mockVotes.On("CastVote", "", "loc-missing", "up").Return(nil, entity.ErrNotFound)

	w := castVoteRequest(t, router, "loc-missing", "up")

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockVotes.AssertExpectations(t)
}

func TestCastVote_Conflict(t *testing.T) {
	mockVotes := new(MockVoteUseCase)
	mockBadges := new(MockBadgeUseCase)
	handler := NewVoteHandler(mockVotes, mockBadges, logger.New())

	router := setupTestRouter()
	router.POST("/locations/:id/vote", handler.CastVote)

	mockVotes.On("CastVote", "", "loc-123", "down").Return(nil, entity.ErrConflict)

	w := castVoteRequest(t, router, "loc-123", "down")

	assert.Equal(t, http.StatusConflict, w.Code)
	mockVotes.AssertExpectations(t)
}

func TestCastVote_BadgeEvaluationFailureDoesNotFailVote(t *testing.T) {
	mockVotes := new(MockVoteUseCase)
	mockBadges := new(MockBadgeUseCase)
	handler := NewVoteHandler(mockVotes, mockBadges, logger.New())

	router := setupTestRouter()
	router.POST("/locations/:id/vote", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.CastVote(c)
	})

	mockVotes.On("CastVote", "user-123", "loc-123", "up").Return(&entity.VoteResult{
		Applied:     entity.DirectionUp,
		Upvotes:     1,
		TotalPoints: 1,
		Status:      entity.StatusNormal,
	}, nil)
	mockBadges.On("Evaluate", "user-123").Return(nil, entity.ErrNotFound)

	w := castVoteRequest(t, router, "loc-123", "up")

	assert.Equal(t, http.StatusOK, w.Code)
	mockVotes.AssertExpectations(t)
}

func TestGetOwnVote_None(t *testing.T) {
	mockVotes := new(MockVoteUseCase)
	mockBadges := new(MockBadgeUseCase)
	handler := NewVoteHandler(mockVotes, mockBadges, logger.New())

	router := setupTestRouter()
	router.GET("/locations/:id/vote", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.GetOwnVote(c)
	})

	mockVotes.On("GetVote", "user-123", "loc-123").Return(entity.DirectionNone, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/locations/loc-123/vote", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "", response["direction"])

	mockVotes.AssertExpectations(t)
}
