package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/services"
)

type OrganizationHandler struct {
	service    services.OrganizationServiceInterface
	analytics  services.AnalyticsServiceInterface
	invitation services.InvitationServiceInterface
}

func NewOrganizationHandler(
	service services.OrganizationServiceInterface,
	analytics services.AnalyticsServiceInterface,
	invitation services.InvitationServiceInterface,
) *OrganizationHandler {
	return &OrganizationHandler{
		service:    service,
		analytics:  analytics,
		invitation: invitation,
	}
}

func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	org, err := h.service.GetOrganization(c.Request.Context(), organizationID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	var req models.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	org, err := h.service.UpdateOrganization(c.Request.Context(), organizationID(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) UploadLogo(c *gin.Context) {
	var req models.UploadLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.service.UploadLogo(c.Request.Context(), organizationID(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrganizationHandler) UpdateMatchSettings(c *gin.Context) {
	var req models.UpdateMatchSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	org, err := h.service.UpdateMatchSettings(c.Request.Context(), organizationID(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) GetAnalytics(c *gin.Context) {
	analytics, err := h.analytics.GetAnalytics(c.Request.Context(), organizationID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// SendInvitations always answers 200 once the request is valid; per-address
// delivery failures are part of the body.
func (h *OrganizationHandler) SendInvitations(c *gin.Context) {
	var req models.InvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.invitation.SendInvitations(c.Request.Context(), organizationID(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
