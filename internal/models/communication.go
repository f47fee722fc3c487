package models

import "time"

// InvitationRequest sends invitation e-mails to prospective participants
type InvitationRequest struct {
	Emails         []string        `json:"emails" binding:"required,min=1,max=100,dive,email"`
	UserType       ParticipantType `json:"userType" binding:"required,oneof=mentor mentee"`
	CustomMessage  string          `json:"customMessage" binding:"max=2000"`
	FormTemplateID string          `json:"formTemplateId" binding:"omitempty,uuid"`
}

// InvitationResult is the per-address outcome of an invitation
type InvitationResult struct {
	Email        string `json:"email"`
	InvitationID string `json:"invitationId"`
	Sent         bool   `json:"sent"`
	Error        string `json:"error,omitempty"`
}

// InvitationResponse lists the per-address outcomes
type InvitationResponse struct {
	Results []InvitationResult `json:"results"`
	Sent    int                `json:"sent"`
	Failed  int                `json:"failed"`
}

// Analytics summarizes an organization's program
type Analytics struct {
	TotalMatches      int     `json:"totalMatches"`
	ActiveMentors     int     `json:"activeMentors"`
	SessionsCompleted int     `json:"sessionsCompleted"`
	AverageRating     float64 `json:"averageRating"`
	PendingMatches    int     `json:"pendingMatches"`
}

// AdminTokenRequest exchanges the admin API token for a session
type AdminTokenRequest struct {
	Token          string `json:"token" binding:"required"`
	AdminID        string `json:"adminId" binding:"required,max=320"`
	OrganizationID string `json:"organizationId" binding:"required,uuid"`
}

// AdminTokenResponse carries the signed session token
type AdminTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ApprovalResponse is returned after approving a mentor or mentee
type ApprovalResponse struct {
	Success          bool `json:"success"`
	WelcomeEmailSent bool `json:"welcomeEmailSent"`
}
