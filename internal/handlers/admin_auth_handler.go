package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentormatch/mentormatch-api/internal/middleware"
	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/services"
)

// AdminAuthHandler handles admin session endpoints.
type AdminAuthHandler struct {
	service services.AdminAuthServiceInterface
}

func NewAdminAuthHandler(service services.AdminAuthServiceInterface) *AdminAuthHandler {
	return &AdminAuthHandler{service: service}
}

// IssueToken exchanges the admin API token for a session. The token is returned
// in the body and also set as an HttpOnly cookie.
func (h *AdminAuthHandler) IssueToken(c *gin.Context) {
	var req models.AdminTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.service.IssueToken(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.SetAdminSessionCookie(
		c,
		resp.Token,
		h.service.GetSessionTTL(),
		h.service.GetCookieDomain(),
		h.service.GetCookieSecure(),
	)

	c.JSON(http.StatusOK, resp)
}

func (h *AdminAuthHandler) Logout(c *gin.Context) {
	middleware.ClearAdminSessionCookie(
		c,
		h.service.GetCookieDomain(),
		h.service.GetCookieSecure(),
	)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminAuthHandler) GetSession(c *gin.Context) {
	session, err := middleware.GetAdminSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not authenticated", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": session,
	})
}
