package repository

import (
	"context"

	"github.com/mentormatch/mentormatch-api/internal/cache"
	"github.com/mentormatch/mentormatch-api/internal/models"
)

// OrganizationRepositoryInterface defines cached organization access
type OrganizationRepositoryInterface interface {
	Get(ctx context.Context, id string) (*models.Organization, error)
	Update(ctx context.Context, org *models.Organization) (*models.Organization, error)
	UpdateLogo(ctx context.Context, id, logoURL string) error
	UpdateMatchSettings(ctx context.Context, id string, settings *models.MatchSettings) (*models.Organization, error)
}

// OrganizationRepository reads organizations through the cache and keeps it
// current on writes
type OrganizationRepository struct {
	store OrganizationStore
	cache *cache.OrganizationCache
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(store OrganizationStore, organizationCache *cache.OrganizationCache) *OrganizationRepository {
	return &OrganizationRepository{
		store: store,
		cache: organizationCache,
	}
}

func (r *OrganizationRepository) Get(ctx context.Context, id string) (*models.Organization, error) {
	return r.cache.Get(ctx, id)
}

func (r *OrganizationRepository) Update(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	updated, err := r.store.UpdateOrganization(ctx, org)
	if err != nil {
		return nil, err
	}
	r.cache.Set(updated)
	return updated, nil
}

func (r *OrganizationRepository) UpdateLogo(ctx context.Context, id, logoURL string) error {
	if err := r.store.UpdateOrganizationLogo(ctx, id, logoURL); err != nil {
		return err
	}
	r.cache.Invalidate(id)
	return nil
}

func (r *OrganizationRepository) UpdateMatchSettings(ctx context.Context, id string, settings *models.MatchSettings) (*models.Organization, error) {
	updated, err := r.store.UpdateMatchSettings(ctx, id, settings)
	if err != nil {
		return nil, err
	}
	r.cache.Set(updated)
	return updated, nil
}

var _ OrganizationRepositoryInterface = (*OrganizationRepository)(nil)
