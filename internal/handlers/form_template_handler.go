package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/services"
)

type FormTemplateHandler struct {
	service services.FormTemplateServiceInterface
}

func NewFormTemplateHandler(service services.FormTemplateServiceInterface) *FormTemplateHandler {
	return &FormTemplateHandler{service: service}
}

func (h *FormTemplateHandler) ListTemplates(c *gin.Context) {
	var filter models.FormTemplateFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}

	templates, err := h.service.ListTemplates(c.Request.Context(), organizationID(c), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates, "total": len(templates)})
}

func (h *FormTemplateHandler) GetTemplate(c *gin.Context) {
	template, err := h.service.GetTemplate(c.Request.Context(), organizationID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *FormTemplateHandler) CreateTemplate(c *gin.Context) {
	var req models.CreateFormTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	template, err := h.service.CreateTemplate(c.Request.Context(), organizationID(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, template)
}

func (h *FormTemplateHandler) UpdateTemplate(c *gin.Context) {
	var req models.UpdateFormTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	template, err := h.service.UpdateTemplate(c.Request.Context(), organizationID(c), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *FormTemplateHandler) DeleteTemplate(c *gin.Context) {
	if err := h.service.DeleteTemplate(c.Request.Context(), organizationID(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
