package services

import (
	"context"

	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/pkg/jwt"
)

// OrganizationServiceInterface defines organization profile and settings operations
type OrganizationServiceInterface interface {
	GetOrganization(ctx context.Context, organizationID string) (*models.Organization, error)
	UpdateOrganization(ctx context.Context, organizationID string, req *models.UpdateOrganizationRequest) (*models.Organization, error)
	UploadLogo(ctx context.Context, organizationID string, req *models.UploadLogoRequest) (*models.UploadLogoResponse, error)
	UpdateMatchSettings(ctx context.Context, organizationID string, req *models.UpdateMatchSettingsRequest) (*models.Organization, error)
}

// FormTemplateServiceInterface defines form template management
type FormTemplateServiceInterface interface {
	ListTemplates(ctx context.Context, organizationID string, filter models.FormTemplateFilter) ([]*models.FormTemplate, error)
	GetTemplate(ctx context.Context, organizationID, templateID string) (*models.FormTemplate, error)
	CreateTemplate(ctx context.Context, organizationID string, req *models.CreateFormTemplateRequest) (*models.FormTemplate, error)
	UpdateTemplate(ctx context.Context, organizationID, templateID string, req *models.UpdateFormTemplateRequest) (*models.FormTemplate, error)
	DeleteTemplate(ctx context.Context, organizationID, templateID string) error
}

// IntakeServiceInterface defines the public intake form flow
type IntakeServiceInterface interface {
	GetPublicForm(ctx context.Context, organizationID, formID string) (*models.FormTemplate, error)
	Submit(ctx context.Context, organizationID, formID string, submission *models.IntakeSubmission) (*models.IntakeSubmissionResponse, error)
}

// MentorServiceInterface defines mentor management
type MentorServiceInterface interface {
	ListMentors(ctx context.Context, organizationID string) ([]*models.Mentor, error)
	GetMentor(ctx context.Context, organizationID, mentorID string) (*models.Mentor, error)
	CreateMentor(ctx context.Context, organizationID string, req *models.CreateMentorRequest) (*models.Mentor, error)
	UpdateMentor(ctx context.Context, organizationID, mentorID string, req *models.UpdateMentorRequest) (*models.Mentor, error)
	ApproveMentor(ctx context.Context, organizationID, mentorID string) (*models.ApprovalResponse, error)
}

// MenteeServiceInterface defines mentee management
type MenteeServiceInterface interface {
	ListMentees(ctx context.Context, organizationID string) ([]*models.Mentee, error)
	GetMentee(ctx context.Context, organizationID, menteeID string) (*models.Mentee, error)
	CreateMentee(ctx context.Context, organizationID string, req *models.CreateMenteeRequest) (*models.Mentee, error)
	UpdateMentee(ctx context.Context, organizationID, menteeID string, req *models.UpdateMenteeRequest) (*models.Mentee, error)
	ApproveMentee(ctx context.Context, organizationID, menteeID string) (*models.ApprovalResponse, error)
}

// MatchServiceInterface defines match listing, creation and generation
type MatchServiceInterface interface {
	ListMatches(ctx context.Context, organizationID string, filter models.MatchListFilter) (*models.MatchesResponse, error)
	GetMatch(ctx context.Context, organizationID, matchID string) (*models.Match, error)
	GetMatchDetails(ctx context.Context, organizationID, matchID string) (*models.MatchDetails, error)
	CreateMatch(ctx context.Context, organizationID string, req *models.CreateMatchRequest) (*models.Match, error)
	GenerateMatches(ctx context.Context, organizationID string) (*models.GenerateMatchesResponse, error)
	GetSuggestions(ctx context.Context, organizationID, menteeID string) ([]*models.MatchSuggestion, error)
}

// MatchLifecycleServiceInterface defines match status transitions
type MatchLifecycleServiceInterface interface {
	ApproveMatch(ctx context.Context, organizationID, matchID, adminID string) (*models.Match, error)
	RejectMatch(ctx context.Context, organizationID, matchID, adminID string) (*models.Match, error)
	SendFollowUp(ctx context.Context, organizationID, matchID string) (*models.Match, error)
	CompleteMatch(ctx context.Context, matchID string, session *models.MentoringSession) (*models.Match, error)
	RequestFeedback(ctx context.Context, organizationID, sessionID string) (*models.MentoringSession, error)
}

// SessionServiceInterface defines mentoring session management
type SessionServiceInterface interface {
	ListSessions(ctx context.Context, organizationID, matchID string) ([]*models.MentoringSession, error)
	GetSession(ctx context.Context, organizationID, sessionID string) (*models.MentoringSession, error)
	CreateSession(ctx context.Context, organizationID, matchID string, req *models.CreateSessionRequest) (*models.MentoringSession, error)
	UpdateSession(ctx context.Context, organizationID, sessionID string, req *models.UpdateSessionRequest) (*models.MentoringSession, error)
}

type InvitationServiceInterface interface {
	SendInvitations(ctx context.Context, organizationID string, req *models.InvitationRequest) (*models.InvitationResponse, error)
}

type AnalyticsServiceInterface interface {
	GetAnalytics(ctx context.Context, organizationID string) (*models.Analytics, error)
}

// AdminAuthServiceInterface defines the admin token exchange
type AdminAuthServiceInterface interface {
	IssueToken(ctx context.Context, req *models.AdminTokenRequest) (*models.AdminTokenResponse, error)
	GetSessionTTL() int
	GetCookieDomain() string
	GetCookieSecure() bool
	GetTokenManager() *jwt.TokenManager
}

// Ensure services implement their interfaces
var _ OrganizationServiceInterface = (*OrganizationService)(nil)
var _ FormTemplateServiceInterface = (*FormTemplateService)(nil)
var _ IntakeServiceInterface = (*IntakeService)(nil)
var _ MentorServiceInterface = (*MentorService)(nil)
var _ MenteeServiceInterface = (*MenteeService)(nil)
var _ MatchServiceInterface = (*MatchService)(nil)
var _ MatchLifecycleServiceInterface = (*MatchLifecycleService)(nil)
var _ MatchCompleter = (*MatchLifecycleService)(nil)
var _ SessionServiceInterface = (*SessionService)(nil)
var _ InvitationServiceInterface = (*InvitationService)(nil)
var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)
var _ AdminAuthServiceInterface = (*AdminAuthService)(nil)
