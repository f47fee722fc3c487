package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/services"
)

// ParticipantHandler serves the admin mentor and mentee endpoints
type ParticipantHandler struct {
	mentors services.MentorServiceInterface
	mentees services.MenteeServiceInterface
}

func NewParticipantHandler(mentors services.MentorServiceInterface, mentees services.MenteeServiceInterface) *ParticipantHandler {
	return &ParticipantHandler{mentors: mentors, mentees: mentees}
}

func (h *ParticipantHandler) ListMentors(c *gin.Context) {
	mentors, err := h.mentors.ListMentors(c.Request.Context(), organizationID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mentors": mentors, "total": len(mentors)})
}

func (h *ParticipantHandler) GetMentor(c *gin.Context) {
	mentor, err := h.mentors.GetMentor(c.Request.Context(), organizationID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mentor)
}

func (h *ParticipantHandler) CreateMentor(c *gin.Context) {
	var req models.CreateMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	mentor, err := h.mentors.CreateMentor(c.Request.Context(), organizationID(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mentor)
}

func (h *ParticipantHandler) UpdateMentor(c *gin.Context) {
	var req models.UpdateMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	mentor, err := h.mentors.UpdateMentor(c.Request.Context(), organizationID(c), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mentor)
}

func (h *ParticipantHandler) ApproveMentor(c *gin.Context) {
	resp, err := h.mentors.ApproveMentor(c.Request.Context(), organizationID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ParticipantHandler) ListMentees(c *gin.Context) {
	mentees, err := h.mentees.ListMentees(c.Request.Context(), organizationID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mentees": mentees, "total": len(mentees)})
}

func (h *ParticipantHandler) GetMentee(c *gin.Context) {
	mentee, err := h.mentees.GetMentee(c.Request.Context(), organizationID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mentee)
}

func (h *ParticipantHandler) CreateMentee(c *gin.Context) {
	var req models.CreateMenteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	mentee, err := h.mentees.CreateMentee(c.Request.Context(), organizationID(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mentee)
}

func (h *ParticipantHandler) UpdateMentee(c *gin.Context) {
	var req models.UpdateMenteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	mentee, err := h.mentees.UpdateMentee(c.Request.Context(), organizationID(c), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mentee)
}

func (h *ParticipantHandler) ApproveMentee(c *gin.Context) {
	resp, err := h.mentees.ApproveMentee(c.Request.Context(), organizationID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
