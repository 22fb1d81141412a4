package trending

import (
	"context"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/cache"
)

type cachedService struct {
	inner TrendService
	store *cache.Store
}

// WithCache habilita a memoização das séries de tendência
func (s *Service) WithCache(ttl time.Duration) TrendService {
	return &cachedService{
		inner: s,
		store: cache.New(ttl),
	}
}

// Refresh descarta as séries memoizadas; a próxima consulta volta à base
// de dados
func (c *cachedService) Refresh() {
	c.store.Clear()
}

func (c *cachedService) RevenueTrend(ctx context.Context, filter domain.SalesFilter) ([]*domain.TrendPoint, error) {
	key := "trend|" + filter.CacheKey()
	if v, ok := c.store.Get(key); ok {
		return v.([]*domain.TrendPoint), nil
	}

	points, err := c.inner.RevenueTrend(ctx, filter)
	if err != nil {
		return nil, err
	}

	c.store.Set(key, points)
	return points, nil
}

func (c *cachedService) CategoryTrends(ctx context.Context) ([]*domain.CategoryTrendPoint, error) {
	key := "category-trends"
	if v, ok := c.store.Get(key); ok {
		return v.([]*domain.CategoryTrendPoint), nil
	}

	points, err := c.inner.CategoryTrends(ctx)
	if err != nil {
		return nil, err
	}

	c.store.Set(key, points)
	return points, nil
}
