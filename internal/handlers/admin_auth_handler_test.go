package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mentormatch/mentormatch-api/internal/middleware"
	"github.com/mentormatch/mentormatch-api/internal/models"
	apperrors "github.com/mentormatch/mentormatch-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const tokenRequestBody = `{"token":"secret","adminId":"admin@acme.org","organizationId":"` + handlerOrgID + `"}`

func TestAdminAuthHandler_IssueToken_SetsCookie(t *testing.T) {
	service := new(mockAdminAuthService)
	service.On("IssueToken", mock.Anything, mock.AnythingOfType("*models.AdminTokenRequest")).
		Return(&models.AdminTokenResponse{Token: "signed.jwt.token", ExpiresAt: time.Now().Add(time.Hour)}, nil)
	service.On("GetSessionTTL").Return(3600)
	service.On("GetCookieDomain").Return("")
	service.On("GetCookieSecure").Return(false)

	router := gin.New()
	router.POST("/auth/admin/token", NewAdminAuthHandler(service).IssueToken)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/admin/token", strings.NewReader(tokenRequestBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.AdminSessionCookieName, cookies[0].Name)
	assert.Equal(t, "signed.jwt.token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Contains(t, w.Body.String(), "signed.jwt.token")
}

func TestAdminAuthHandler_IssueToken_Unauthorized(t *testing.T) {
	service := new(mockAdminAuthService)
	service.On("IssueToken", mock.Anything, mock.Anything).Return(nil, apperrors.ErrUnauthorized)

	router := gin.New()
	router.POST("/auth/admin/token", NewAdminAuthHandler(service).IssueToken)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/admin/token", strings.NewReader(tokenRequestBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestAdminAuthHandler_Logout_ClearsCookie(t *testing.T) {
	service := new(mockAdminAuthService)
	service.On("GetCookieDomain").Return("")
	service.On("GetCookieSecure").Return(true)

	router := gin.New()
	router.POST("/auth/admin/logout", NewAdminAuthHandler(service).Logout)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/admin/logout", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}
