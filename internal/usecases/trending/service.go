// Package trending calcula a série mensal de receita e a média móvel de
// 3 pontos usada no gráfico de tendência do dashboard.
package trending

import (
	"context"

	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// movingAvgWindow é a janela da média móvel (ponto atual + até 2 anteriores)
const movingAvgWindow = 3

type TrendService interface {
	// RevenueTrend retorna a série mensal de receita com média móvel de 3
	// pontos. Meses ausentes dos dados não aparecem na série.
	RevenueTrend(ctx context.Context, filter domain.SalesFilter) ([]*domain.TrendPoint, error)

	// CategoryTrends retorna uma série mensal por categoria, sem filtro e
	// sem média móvel, para comparação entre categorias
	CategoryTrends(ctx context.Context) ([]*domain.CategoryTrendPoint, error)
}

type Service struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewService(analyticsRepo repository.AnalyticsRepository) *Service {
	return &Service{
		analyticsRepo: analyticsRepo,
	}
}

func (s *Service) RevenueTrend(ctx context.Context, filter domain.SalesFilter) ([]*domain.TrendPoint, error) {
	points, err := s.analyticsRepo.MonthlyRevenue(ctx, filter)
	if err != nil {
		return nil, err
	}

	applyMovingAverage(points, movingAvgWindow)
	return points, nil
}

func (s *Service) CategoryTrends(ctx context.Context) ([]*domain.CategoryTrendPoint, error) {
	return s.analyticsRepo.CategoryTrend(ctx)
}

// applyMovingAverage preenche MovingAvg com a média aritmética dos últimos
// `window` pontos da série, aceitando janelas menores no início (o primeiro
// ponto é a própria receita, o segundo a média dos dois primeiros).
func applyMovingAverage(points []*domain.TrendPoint, window int) {
	for i, point := range points {
		start := i - window + 1
		if start < 0 {
			start = 0
		}

		var sum float64
		for _, p := range points[start : i+1] {
			sum += p.Revenue
		}

		point.MovingAvg = sum / float64(i+1-start)
	}
}
