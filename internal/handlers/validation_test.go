package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	apperrors "github.com/mentormatch/mentormatch-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationProbe struct {
	MentorID string `json:"mentorId" binding:"required,uuid"`
	Email    string `json:"email" binding:"required,email"`
}

func TestParseValidationErrors_UsesJSONNames(t *testing.T) {
	UseJSONFieldNames()

	router := gin.New()
	var details []ValidationError
	router.POST("/probe", func(c *gin.Context) {
		var req validationProbe
		err := c.ShouldBindJSON(&req)
		details = ParseValidationErrors(err)
		c.Status(http.StatusBadRequest)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/probe", strings.NewReader(`{"mentorId":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Len(t, details, 2)
	assert.Equal(t, ValidationError{Field: "mentorId", Message: "must be a valid id"}, details[0])
	assert.Equal(t, ValidationError{Field: "email", Message: "is required"}, details[1])
}

func TestRespondServiceError_FieldErrorDetails(t *testing.T) {
	router := gin.New()
	router.GET("/fail", func(c *gin.Context) {
		respondServiceError(c, apperrors.InvalidInputError("email", "is required"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", http.NoBody))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		`{"error":"email: is required: invalid input","details":[{"field":"email","message":"is required"}]}`,
		w.Body.String())
}

func TestRespondServiceError_StatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperrors.NotFoundError("mentor"), http.StatusNotFound},
		{apperrors.TransitionError("match", "rejected", "approved"), http.StatusConflict},
		{apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{apperrors.AccessDeniedError("other organization"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			router := gin.New()
			router.GET("/fail", func(c *gin.Context) { respondServiceError(c, tt.err) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", http.NoBody))

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
