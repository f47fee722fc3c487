package services

import (
	"context"
	"time"

	"github.com/mentormatch/mentormatch-api/config"
	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/repository"
	apperrors "github.com/mentormatch/mentormatch-api/pkg/errors"
	"github.com/mentormatch/mentormatch-api/pkg/jwt"
	"github.com/mentormatch/mentormatch-api/pkg/logger"
	"go.uber.org/zap"
)

// AdminAuthService exchanges the shared admin API token for a short-lived,
// organization-scoped session token.
type AdminAuthService struct {
	orgs         repository.OrganizationRepositoryInterface
	config       *config.Config
	tokenManager *jwt.TokenManager
}

func NewAdminAuthService(orgs repository.OrganizationRepositoryInterface, cfg *config.Config) *AdminAuthService {
	return &AdminAuthService{
		orgs:   orgs,
		config: cfg,
		tokenManager: jwt.NewTokenManager(
			cfg.AdminSession.JWTSecret,
			cfg.AdminSession.JWTIssuer,
			cfg.AdminSession.SessionTTLHours,
		),
	}
}

// IssueToken verifies the admin API token and signs a session for the organization
func (s *AdminAuthService) IssueToken(ctx context.Context, req *models.AdminTokenRequest) (*models.AdminTokenResponse, error) {
	if s.config.Auth.AdminAPIToken == "" || !jwt.TimingSafeCompare(req.Token, s.config.Auth.AdminAPIToken) {
		logger.Warn("Admin token exchange with invalid API token", zap.String("admin_id", req.AdminID))
		return nil, apperrors.ErrUnauthorized
	}

	if _, err := s.orgs.Get(ctx, req.OrganizationID); err != nil {
		return nil, err
	}

	token, err := s.tokenManager.GenerateToken(req.AdminID, req.OrganizationID)
	if err != nil {
		return nil, err
	}

	logger.Info("Admin session issued",
		zap.String("admin_id", req.AdminID),
		zap.String("organization_id", req.OrganizationID))

	return &models.AdminTokenResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.tokenManager.GetExpirationTime()),
	}, nil
}

func (s *AdminAuthService) GetTokenManager() *jwt.TokenManager {
	return s.tokenManager
}

func (s *AdminAuthService) GetSessionTTL() int {
	return int(s.tokenManager.GetExpirationTime().Seconds())
}

func (s *AdminAuthService) GetCookieDomain() string {
	return s.config.AdminSession.CookieDomain
}

func (s *AdminAuthService) GetCookieSecure() bool {
	return s.config.AdminSession.CookieSecure
}
