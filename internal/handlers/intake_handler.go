package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/services"
)

// IntakeHandler serves the public, unauthenticated intake forms
type IntakeHandler struct {
	service services.IntakeServiceInterface
}

func NewIntakeHandler(service services.IntakeServiceInterface) *IntakeHandler {
	return &IntakeHandler{service: service}
}

func (h *IntakeHandler) GetForm(c *gin.Context) {
	form, err := h.service.GetPublicForm(c.Request.Context(), organizationID(c), c.Param("formId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":     form.ID,
		"name":   form.Name,
		"type":   form.Type,
		"fields": form.Fields,
	})
}

func (h *IntakeHandler) Submit(c *gin.Context) {
	var req models.IntakeSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), organizationID(c), c.Param("formId"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
