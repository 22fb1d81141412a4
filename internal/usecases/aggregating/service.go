// Package aggregating implementa o motor de agregação de KPIs: rollups de
// receita, clientes e pedidos por categoria, cidade e produto.
package aggregating

import (
	"context"

	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const TopProductsLimit = 20

// KPIService agrega os indicadores do dashboard. Todas as operações são
// puras em relação aos dados: mesma entrada, mesmo resultado, sem efeitos
// colaterais, com ou sem cache na frente.
type KPIService interface {
	// CategoryKPIs retorna os rollups por categoria mais o resumo consolidado
	CategoryKPIs(ctx context.Context, filter domain.SalesFilter) (*domain.KPIReport, error)

	// CitySegments retorna a segmentação geográfica ordenada por receita
	CitySegments(ctx context.Context, filter domain.SalesFilter) ([]*domain.CitySegment, error)

	// TopProducts retorna os 20 produtos com maior receita, sem filtro
	TopProducts(ctx context.Context) ([]*domain.ProductPerformance, error)
}

type Service struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewService(analyticsRepo repository.AnalyticsRepository) *Service {
	return &Service{
		analyticsRepo: analyticsRepo,
	}
}

func (s *Service) CategoryKPIs(ctx context.Context, filter domain.SalesFilter) (*domain.KPIReport, error) {
	kpis, err := s.analyticsRepo.CategoryKPIs(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &domain.KPIReport{
		Filter:     filter,
		Summary:    summarize(kpis),
		Categories: kpis,
	}, nil
}

// summarize consolida os totais das categorias. Filtro sem vendas produz um
// resumo zerado, nunca erro nem divisão por zero.
func summarize(kpis []*domain.CategoryKPI) domain.KPISummary {
	summary := domain.KPISummary{Categories: len(kpis)}

	for _, kpi := range kpis {
		summary.TotalRevenue += kpi.Revenue
		summary.TotalCustomers += kpi.Customers
		summary.TotalOrders += kpi.TotalOrders
		summary.TotalQuantity += kpi.TotalQuantity
		summary.Products += kpi.Products
	}

	if summary.TotalOrders > 0 {
		summary.AvgOrderValue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue / float64(summary.TotalOrders))
	}

	return summary
}

func (s *Service) CitySegments(ctx context.Context, filter domain.SalesFilter) ([]*domain.CitySegment, error) {
	segments, err := s.analyticsRepo.CitySegments(ctx, filter)
	if err != nil {
		return nil, err
	}

	for _, segment := range segments {
		if segment.Customers > 0 {
			segment.AvgRevenue = utils.RoundWithTwoDecimalPlace(segment.Revenue / float64(segment.Customers))
		}
	}

	return segments, nil
}

func (s *Service) TopProducts(ctx context.Context) ([]*domain.ProductPerformance, error) {
	return s.analyticsRepo.TopProducts(ctx, TopProductsLimit)
}
