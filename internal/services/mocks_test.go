package services_test

import (
	"context"

	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/pkg/email"
	"github.com/stretchr/testify/mock"
)

// MockOrganizationRepository is a mock implementation of OrganizationRepositoryInterface
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) Get(ctx context.Context, id string) (*models.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) Update(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	args := m.Called(ctx, org)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) UpdateLogo(ctx context.Context, id, logoURL string) error {
	args := m.Called(ctx, id, logoURL)
	return args.Error(0)
}

func (m *MockOrganizationRepository) UpdateMatchSettings(ctx context.Context, id string, settings *models.MatchSettings) (*models.Organization, error) {
	args := m.Called(ctx, id, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

// MockFormTemplateStore is a mock implementation of FormTemplateStore
type MockFormTemplateStore struct {
	mock.Mock
}

func (m *MockFormTemplateStore) ListFormTemplates(ctx context.Context, organizationID string, templateType models.ParticipantType) ([]*models.FormTemplate, error) {
	args := m.Called(ctx, organizationID, templateType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FormTemplate), args.Error(1)
}

func (m *MockFormTemplateStore) GetFormTemplate(ctx context.Context, id string) (*models.FormTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FormTemplate), args.Error(1)
}

func (m *MockFormTemplateStore) CreateFormTemplate(ctx context.Context, t *models.FormTemplate) (*models.FormTemplate, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FormTemplate), args.Error(1)
}

func (m *MockFormTemplateStore) UpdateFormTemplate(ctx context.Context, t *models.FormTemplate) (*models.FormTemplate, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FormTemplate), args.Error(1)
}

func (m *MockFormTemplateStore) DeleteFormTemplate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMentorStore is a mock implementation of MentorStore
type MockMentorStore struct {
	mock.Mock
}

func (m *MockMentorStore) ListMentors(ctx context.Context, organizationID string) ([]*models.Mentor, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Mentor), args.Error(1)
}

func (m *MockMentorStore) ListMatchableMentors(ctx context.Context, organizationID string) ([]*models.Mentor, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Mentor), args.Error(1)
}

func (m *MockMentorStore) GetMentor(ctx context.Context, id string) (*models.Mentor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentor), args.Error(1)
}

func (m *MockMentorStore) CreateMentor(ctx context.Context, mentor *models.Mentor) (*models.Mentor, error) {
	args := m.Called(ctx, mentor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentor), args.Error(1)
}

func (m *MockMentorStore) UpdateMentor(ctx context.Context, mentor *models.Mentor) (*models.Mentor, error) {
	args := m.Called(ctx, mentor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentor), args.Error(1)
}

func (m *MockMentorStore) ApproveMentor(ctx context.Context, id string) (*models.Mentor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentor), args.Error(1)
}

func (m *MockMentorStore) MarkMentorWelcomeEmailSent(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockMenteeStore is a mock implementation of MenteeStore
type MockMenteeStore struct {
	mock.Mock
}

func (m *MockMenteeStore) ListMentees(ctx context.Context, organizationID string) ([]*models.Mentee, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Mentee), args.Error(1)
}

func (m *MockMenteeStore) ListMatchableMentees(ctx context.Context, organizationID string) ([]*models.Mentee, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Mentee), args.Error(1)
}

func (m *MockMenteeStore) GetMentee(ctx context.Context, id string) (*models.Mentee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentee), args.Error(1)
}

func (m *MockMenteeStore) CreateMentee(ctx context.Context, mentee *models.Mentee) (*models.Mentee, error) {
	args := m.Called(ctx, mentee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentee), args.Error(1)
}

func (m *MockMenteeStore) UpdateMentee(ctx context.Context, mentee *models.Mentee) (*models.Mentee, error) {
	args := m.Called(ctx, mentee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentee), args.Error(1)
}

func (m *MockMenteeStore) ApproveMentee(ctx context.Context, id string) (*models.Mentee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentee), args.Error(1)
}

func (m *MockMenteeStore) MarkMenteeWelcomeEmailSent(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockMatchStore is a mock implementation of MatchStore
type MockMatchStore struct {
	mock.Mock
}

func (m *MockMatchStore) ListMatches(ctx context.Context, organizationID string, status models.MatchStatus) ([]*models.Match, error) {
	args := m.Called(ctx, organizationID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Match), args.Error(1)
}

func (m *MockMatchStore) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchStore) CreateMatch(ctx context.Context, match *models.Match) (*models.Match, error) {
	args := m.Called(ctx, match)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchStore) CreateMatches(ctx context.Context, matches []*models.Match) ([]*models.Match, error) {
	args := m.Called(ctx, matches)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Match), args.Error(1)
}

func (m *MockMatchStore) ActiveMatchPairs(ctx context.Context, organizationID string) (map[models.MatchPair]bool, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[models.MatchPair]bool), args.Error(1)
}

func (m *MockMatchStore) TransitionMatch(ctx context.Context, id string, t models.MatchTransition) (*models.Match, error) {
	args := m.Called(ctx, id, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchStore) MarkFollowUpSent(ctx context.Context, id string) (*models.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchStore) SetSessionScheduled(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSessionStore is a mock implementation of SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) ListSessions(ctx context.Context, matchID string) ([]*models.MentoringSession, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentoringSession), args.Error(1)
}

func (m *MockSessionStore) GetSession(ctx context.Context, id string) (*models.MentoringSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentoringSession), args.Error(1)
}

func (m *MockSessionStore) CreateSession(ctx context.Context, s *models.MentoringSession) (*models.MentoringSession, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentoringSession), args.Error(1)
}

func (m *MockSessionStore) UpdateSession(ctx context.Context, s *models.MentoringSession) (*models.MentoringSession, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentoringSession), args.Error(1)
}

func (m *MockSessionStore) MarkFeedbackRequested(ctx context.Context, id string) (*models.MentoringSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentoringSession), args.Error(1)
}

// MockMatchCompleter is a mock implementation of MatchCompleter
type MockMatchCompleter struct {
	mock.Mock
}

func (m *MockMatchCompleter) CompleteMatch(ctx context.Context, matchID string, session *models.MentoringSession) (*models.Match, error) {
	args := m.Called(ctx, matchID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

// MockSender is a mock implementation of email.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendEmail(ctx context.Context, msg email.Message) (bool, error) {
	args := m.Called(ctx, msg)
	return args.Bool(0), args.Error(1)
}
