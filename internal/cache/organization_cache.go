package cache

import (
	"context"
	"time"

	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/pkg/logger"
	"github.com/mentormatch/mentormatch-api/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	organizationKeyPrefix = "organization:"
	organizationCacheName = "organization"
	cacheCleanupInterval  = time.Minute
)

// OrganizationDataSource loads organizations on a cache miss
type OrganizationDataSource interface {
	GetOrganization(ctx context.Context, id string) (*models.Organization, error)
}

// OrganizationCache keeps organizations (branding and match settings) in memory.
// Entries expire after the configured TTL and are loaded lazily.
type OrganizationCache struct {
	cache      *gocache.Cache
	dataSource OrganizationDataSource
	ttl        time.Duration
}

// NewOrganizationCache creates a cache backed by dataSource
func NewOrganizationCache(dataSource OrganizationDataSource, ttlSeconds int) *OrganizationCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &OrganizationCache{
		cache:      gocache.New(ttl, cacheCleanupInterval),
		dataSource: dataSource,
		ttl:        ttl,
	}
}

// Get returns a copy of the cached organization, loading it on a miss
func (c *OrganizationCache) Get(ctx context.Context, id string) (*models.Organization, error) {
	if data, found := c.cache.Get(organizationKeyPrefix + id); found {
		if org, ok := data.(*models.Organization); ok {
			metrics.CacheHits.WithLabelValues(organizationCacheName).Inc()
			return copyOrganization(org), nil
		}
	}

	metrics.CacheMisses.WithLabelValues(organizationCacheName).Inc()

	org, err := c.dataSource.GetOrganization(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Set(org)
	return copyOrganization(org), nil
}

// Set stores org, replacing any previous entry
func (c *OrganizationCache) Set(org *models.Organization) {
	c.cache.Set(organizationKeyPrefix+org.ID, copyOrganization(org), c.ttl)
	metrics.CacheSize.WithLabelValues(organizationCacheName).Set(float64(c.cache.ItemCount()))
}

// Invalidate drops the entry for id
func (c *OrganizationCache) Invalidate(id string) {
	c.cache.Delete(organizationKeyPrefix + id)
	metrics.CacheSize.WithLabelValues(organizationCacheName).Set(float64(c.cache.ItemCount()))
	logger.Debug("Organization cache entry invalidated", zap.String("organization_id", id))
}

func copyOrganization(org *models.Organization) *models.Organization {
	clone := *org
	if org.MatchSettings != nil {
		settings := *org.MatchSettings
		clone.MatchSettings = &settings
	}
	return &clone
}
