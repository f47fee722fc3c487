package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mentormatch/mentormatch-api/internal/middleware"
	"github.com/mentormatch/mentormatch-api/internal/models"
	apperrors "github.com/mentormatch/mentormatch-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	handlerOrgID   = "0b7e8f5c-8a1e-4c38-9d36-0f3f6f0b2a11"
	handlerMatchID = "5d0f0c4e-2f35-4f0a-9d8e-7b1a3c2d4e5f"
)

func newMatchRouter(matches *mockMatchService, lifecycle *mockLifecycleService, withSession bool) *gin.Engine {
	handler := NewMatchHandler(matches, lifecycle)
	router := gin.New()
	group := router.Group("/organizations/:orgId")
	if withSession {
		group.Use(func(c *gin.Context) {
			c.Set(middleware.AdminSessionContextKey, &models.AdminSession{
				AdminID:        "admin@acme.org",
				OrganizationID: handlerOrgID,
			})
			c.Next()
		})
	}
	group.GET("/matches/:id", handler.GetMatch)
	group.POST("/matches", handler.CreateMatch)
	group.POST("/matches/:id/approve", handler.ApproveMatch)
	return router
}

func TestMatchHandler_ApproveMatch(t *testing.T) {
	lifecycle := new(mockLifecycleService)
	lifecycle.On("ApproveMatch", mock.Anything, handlerOrgID, handlerMatchID, "admin@acme.org").
		Return(&models.Match{ID: handlerMatchID, Status: models.MatchApproved}, nil)
	router := newMatchRouter(new(mockMatchService), lifecycle, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/organizations/"+handlerOrgID+"/matches/"+handlerMatchID+"/approve", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)
	lifecycle.AssertExpectations(t)
}

func TestMatchHandler_ApproveMatch_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"already approved", apperrors.ConflictError("match is already approved"), http.StatusConflict},
		{"missing match", apperrors.NotFoundError("match"), http.StatusNotFound},
		{"invalid state", apperrors.InvalidInputError("status", "cannot approve"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lifecycle := new(mockLifecycleService)
			lifecycle.On("ApproveMatch", mock.Anything, handlerOrgID, handlerMatchID, "admin@acme.org").Return(nil, tt.err)
			router := newMatchRouter(new(mockMatchService), lifecycle, true)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/organizations/"+handlerOrgID+"/matches/"+handlerMatchID+"/approve", http.NoBody)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestMatchHandler_ApproveMatch_WithoutSession(t *testing.T) {
	lifecycle := new(mockLifecycleService)
	router := newMatchRouter(new(mockMatchService), lifecycle, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/organizations/"+handlerOrgID+"/matches/"+handlerMatchID+"/approve", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	lifecycle.AssertNotCalled(t, "ApproveMatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMatchHandler_CreateMatch_ValidationFailed(t *testing.T) {
	matches := new(mockMatchService)
	router := newMatchRouter(matches, new(mockLifecycleService), true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/organizations/"+handlerOrgID+"/matches",
		strings.NewReader(`{"mentorId":"not-a-uuid"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Validation failed")
	matches.AssertNotCalled(t, "CreateMatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestMatchHandler_CreateMatch_MalformedBody(t *testing.T) {
	router := newMatchRouter(new(mockMatchService), new(mockLifecycleService), true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/organizations/"+handlerOrgID+"/matches", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestMatchHandler_CreateMatch(t *testing.T) {
	mentorID := "1c6f4a52-3b1e-4d2f-8a6b-9e0d1c2b3a4f"
	menteeID := "7a2b3c4d-5e6f-4a1b-8c9d-0e1f2a3b4c5d"
	matches := new(mockMatchService)
	matches.On("CreateMatch", mock.Anything, handlerOrgID, &models.CreateMatchRequest{MentorID: mentorID, MenteeID: menteeID}).
		Return(&models.Match{ID: handlerMatchID, MatchScore: 80, Status: models.MatchPending}, nil)
	router := newMatchRouter(matches, new(mockLifecycleService), true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/organizations/"+handlerOrgID+"/matches",
		strings.NewReader(`{"mentorId":"`+mentorID+`","menteeId":"`+menteeID+`"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	matches.AssertExpectations(t)
}

func TestMatchHandler_GetMatch_InternalError(t *testing.T) {
	matches := new(mockMatchService)
	matches.On("GetMatch", mock.Anything, handlerOrgID, handlerMatchID).Return(nil, assert.AnError)
	router := newMatchRouter(matches, new(mockLifecycleService), true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/organizations/"+handlerOrgID+"/matches/"+handlerMatchID, http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
