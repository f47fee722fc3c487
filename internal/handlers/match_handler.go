package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentormatch/mentormatch-api/internal/middleware"
	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/services"
)

type MatchHandler struct {
	matches   services.MatchServiceInterface
	lifecycle services.MatchLifecycleServiceInterface
}

func NewMatchHandler(matches services.MatchServiceInterface, lifecycle services.MatchLifecycleServiceInterface) *MatchHandler {
	return &MatchHandler{matches: matches, lifecycle: lifecycle}
}

func (h *MatchHandler) ListMatches(c *gin.Context) {
	var filter models.MatchListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.matches.ListMatches(c.Request.Context(), organizationID(c), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MatchHandler) GetMatch(c *gin.Context) {
	match, err := h.matches.GetMatch(c.Request.Context(), organizationID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (h *MatchHandler) GetMatchDetails(c *gin.Context) {
	details, err := h.matches.GetMatchDetails(c.Request.Context(), organizationID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	match, err := h.matches.CreateMatch(c.Request.Context(), organizationID(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, match)
}

func (h *MatchHandler) GenerateMatches(c *gin.Context) {
	resp, err := h.matches.GenerateMatches(c.Request.Context(), organizationID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MatchHandler) GetSuggestions(c *gin.Context) {
	suggestions, err := h.matches.GetSuggestions(c.Request.Context(), organizationID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func (h *MatchHandler) ApproveMatch(c *gin.Context) {
	session, err := middleware.GetAdminSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	match, err := h.lifecycle.ApproveMatch(c.Request.Context(), organizationID(c), c.Param("id"), session.AdminID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (h *MatchHandler) RejectMatch(c *gin.Context) {
	session, err := middleware.GetAdminSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	match, err := h.lifecycle.RejectMatch(c.Request.Context(), organizationID(c), c.Param("id"), session.AdminID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (h *MatchHandler) SendFollowUp(c *gin.Context) {
	match, err := h.lifecycle.SendFollowUp(c.Request.Context(), organizationID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}
