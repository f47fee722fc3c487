package services

import (
	"context"

	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/repository"
)

// AnalyticsService reports program counters
type AnalyticsService struct {
	analytics repository.AnalyticsStore
	orgs      repository.OrganizationRepositoryInterface
}

func NewAnalyticsService(analytics repository.AnalyticsStore, orgs repository.OrganizationRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{analytics: analytics, orgs: orgs}
}

func (s *AnalyticsService) GetAnalytics(ctx context.Context, organizationID string) (*models.Analytics, error) {
	if _, err := s.orgs.Get(ctx, organizationID); err != nil {
		return nil, err
	}
	return s.analytics.GetAnalytics(ctx, organizationID)
}
