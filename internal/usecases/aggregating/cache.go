package aggregating

import (
	"context"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/cache"
)

// cachedService decora o KPIService com memoização por filtro. O serviço
// decorado continua determinístico; o cache só evita recomputar a mesma
// agregação dentro do TTL.
type cachedService struct {
	inner KPIService
	store *cache.Store
}

// WithCache habilita a memoização dos resultados de agregação
func (s *Service) WithCache(ttl time.Duration) KPIService {
	return &cachedService{
		inner: s,
		store: cache.New(ttl),
	}
}

// Refresh descarta os resultados memoizados; a próxima consulta volta à
// base de dados (o "Refresh Data" do dashboard)
func (c *cachedService) Refresh() {
	c.store.Clear()
}

func (c *cachedService) CategoryKPIs(ctx context.Context, filter domain.SalesFilter) (*domain.KPIReport, error) {
	key := "kpis|" + filter.CacheKey()
	if v, ok := c.store.Get(key); ok {
		return v.(*domain.KPIReport), nil
	}

	report, err := c.inner.CategoryKPIs(ctx, filter)
	if err != nil {
		return nil, err
	}

	c.store.Set(key, report)
	return report, nil
}

func (c *cachedService) CitySegments(ctx context.Context, filter domain.SalesFilter) ([]*domain.CitySegment, error) {
	key := "cities|" + filter.CacheKey()
	if v, ok := c.store.Get(key); ok {
		return v.([]*domain.CitySegment), nil
	}

	segments, err := c.inner.CitySegments(ctx, filter)
	if err != nil {
		return nil, err
	}

	c.store.Set(key, segments)
	return segments, nil
}

func (c *cachedService) TopProducts(ctx context.Context) ([]*domain.ProductPerformance, error) {
	key := "top-products"
	if v, ok := c.store.Get(key); ok {
		return v.([]*domain.ProductPerformance), nil
	}

	products, err := c.inner.TopProducts(ctx)
	if err != nil {
		return nil, err
	}

	c.store.Set(key, products)
	return products, nil
}
