package handlers

import (
	"context"

	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/pkg/jwt"
	"github.com/stretchr/testify/mock"
)

type mockMatchService struct {
	mock.Mock
}

func (m *mockMatchService) ListMatches(ctx context.Context, organizationID string, filter models.MatchListFilter) (*models.MatchesResponse, error) {
	args := m.Called(ctx, organizationID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MatchesResponse), args.Error(1)
}

func (m *mockMatchService) GetMatch(ctx context.Context, organizationID, matchID string) (*models.Match, error) {
	args := m.Called(ctx, organizationID, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *mockMatchService) GetMatchDetails(ctx context.Context, organizationID, matchID string) (*models.MatchDetails, error) {
	args := m.Called(ctx, organizationID, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MatchDetails), args.Error(1)
}

func (m *mockMatchService) CreateMatch(ctx context.Context, organizationID string, req *models.CreateMatchRequest) (*models.Match, error) {
	args := m.Called(ctx, organizationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *mockMatchService) GenerateMatches(ctx context.Context, organizationID string) (*models.GenerateMatchesResponse, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GenerateMatchesResponse), args.Error(1)
}

func (m *mockMatchService) GetSuggestions(ctx context.Context, organizationID, menteeID string) ([]*models.MatchSuggestion, error) {
	args := m.Called(ctx, organizationID, menteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MatchSuggestion), args.Error(1)
}

type mockLifecycleService struct {
	mock.Mock
}

func (m *mockLifecycleService) ApproveMatch(ctx context.Context, organizationID, matchID, adminID string) (*models.Match, error) {
	args := m.Called(ctx, organizationID, matchID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *mockLifecycleService) RejectMatch(ctx context.Context, organizationID, matchID, adminID string) (*models.Match, error) {
	args := m.Called(ctx, organizationID, matchID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *mockLifecycleService) SendFollowUp(ctx context.Context, organizationID, matchID string) (*models.Match, error) {
	args := m.Called(ctx, organizationID, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *mockLifecycleService) CompleteMatch(ctx context.Context, matchID string, session *models.MentoringSession) (*models.Match, error) {
	args := m.Called(ctx, matchID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *mockLifecycleService) RequestFeedback(ctx context.Context, organizationID, sessionID string) (*models.MentoringSession, error) {
	args := m.Called(ctx, organizationID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentoringSession), args.Error(1)
}

type mockAdminAuthService struct {
	mock.Mock
}

func (m *mockAdminAuthService) IssueToken(ctx context.Context, req *models.AdminTokenRequest) (*models.AdminTokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminTokenResponse), args.Error(1)
}

func (m *mockAdminAuthService) GetSessionTTL() int {
	return m.Called().Int(0)
}

func (m *mockAdminAuthService) GetCookieDomain() string {
	return m.Called().String(0)
}

func (m *mockAdminAuthService) GetCookieSecure() bool {
	return m.Called().Bool(0)
}

func (m *mockAdminAuthService) GetTokenManager() *jwt.TokenManager {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*jwt.TokenManager)
}
