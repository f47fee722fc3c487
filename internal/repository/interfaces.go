package repository

import (
	"context"

	"github.com/mentormatch/mentormatch-api/internal/database/postgres"
	"github.com/mentormatch/mentormatch-api/internal/models"
)

// OrganizationStore persists organizations
type OrganizationStore interface {
	GetOrganization(ctx context.Context, id string) (*models.Organization, error)
	UpdateOrganization(ctx context.Context, org *models.Organization) (*models.Organization, error)
	UpdateOrganizationLogo(ctx context.Context, id, logoURL string) error
	UpdateMatchSettings(ctx context.Context, id string, settings *models.MatchSettings) (*models.Organization, error)
}

// FormTemplateStore persists intake form templates
type FormTemplateStore interface {
	ListFormTemplates(ctx context.Context, organizationID string, templateType models.ParticipantType) ([]*models.FormTemplate, error)
	GetFormTemplate(ctx context.Context, id string) (*models.FormTemplate, error)
	CreateFormTemplate(ctx context.Context, t *models.FormTemplate) (*models.FormTemplate, error)
	UpdateFormTemplate(ctx context.Context, t *models.FormTemplate) (*models.FormTemplate, error)
	DeleteFormTemplate(ctx context.Context, id string) error
}

// MentorStore persists mentors
type MentorStore interface {
	ListMentors(ctx context.Context, organizationID string) ([]*models.Mentor, error)
	ListMatchableMentors(ctx context.Context, organizationID string) ([]*models.Mentor, error)
	GetMentor(ctx context.Context, id string) (*models.Mentor, error)
	CreateMentor(ctx context.Context, m *models.Mentor) (*models.Mentor, error)
	UpdateMentor(ctx context.Context, m *models.Mentor) (*models.Mentor, error)
	ApproveMentor(ctx context.Context, id string) (*models.Mentor, error)
	MarkMentorWelcomeEmailSent(ctx context.Context, id string) (bool, error)
}

// MenteeStore persists mentees
type MenteeStore interface {
	ListMentees(ctx context.Context, organizationID string) ([]*models.Mentee, error)
	ListMatchableMentees(ctx context.Context, organizationID string) ([]*models.Mentee, error)
	GetMentee(ctx context.Context, id string) (*models.Mentee, error)
	CreateMentee(ctx context.Context, m *models.Mentee) (*models.Mentee, error)
	UpdateMentee(ctx context.Context, m *models.Mentee) (*models.Mentee, error)
	ApproveMentee(ctx context.Context, id string) (*models.Mentee, error)
	MarkMenteeWelcomeEmailSent(ctx context.Context, id string) (bool, error)
}

// MatchStore persists matches. TransitionMatch and MarkFollowUpSent are
// conditional updates that report a conflict when the guard no longer holds.
type MatchStore interface {
	ListMatches(ctx context.Context, organizationID string, status models.MatchStatus) ([]*models.Match, error)
	GetMatch(ctx context.Context, id string) (*models.Match, error)
	CreateMatch(ctx context.Context, m *models.Match) (*models.Match, error)
	CreateMatches(ctx context.Context, matches []*models.Match) ([]*models.Match, error)
	ActiveMatchPairs(ctx context.Context, organizationID string) (map[models.MatchPair]bool, error)
	TransitionMatch(ctx context.Context, id string, t models.MatchTransition) (*models.Match, error)
	MarkFollowUpSent(ctx context.Context, id string) (*models.Match, error)
	SetSessionScheduled(ctx context.Context, id string) error
}

// SessionStore persists mentoring sessions
type SessionStore interface {
	ListSessions(ctx context.Context, matchID string) ([]*models.MentoringSession, error)
	GetSession(ctx context.Context, id string) (*models.MentoringSession, error)
	CreateSession(ctx context.Context, s *models.MentoringSession) (*models.MentoringSession, error)
	UpdateSession(ctx context.Context, s *models.MentoringSession) (*models.MentoringSession, error)
	MarkFeedbackRequested(ctx context.Context, id string) (*models.MentoringSession, error)
}

// AnalyticsStore computes program analytics
type AnalyticsStore interface {
	GetAnalytics(ctx context.Context, organizationID string) (*models.Analytics, error)
}

// Ensure the PostgreSQL client implements every store
var (
	_ OrganizationStore = (*postgres.Client)(nil)
	_ FormTemplateStore = (*postgres.Client)(nil)
	_ MentorStore       = (*postgres.Client)(nil)
	_ MenteeStore       = (*postgres.Client)(nil)
	_ MatchStore        = (*postgres.Client)(nil)
	_ SessionStore      = (*postgres.Client)(nil)
	_ AnalyticsStore    = (*postgres.Client)(nil)
)
