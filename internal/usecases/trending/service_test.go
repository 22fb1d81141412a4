package trending

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestService_RevenueTrend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(mockRepo)

	tests := []struct {
		name     string
		points   []*domain.TrendPoint
		expected []float64
	}{
		{
			name: "Dois meses - primeiro ponto é a própria receita, segundo a média dos dois",
			points: []*domain.TrendPoint{
				{Month: month(2024, time.January), Revenue: 300.0},
				{Month: month(2024, time.February), Revenue: 150.0},
			},
			expected: []float64{300.0, 225.0},
		},
		{
			name: "Série longa - janela completa de 3 pontos a partir do terceiro mês",
			points: []*domain.TrendPoint{
				{Month: month(2024, time.January), Revenue: 100.0},
				{Month: month(2024, time.February), Revenue: 200.0},
				{Month: month(2024, time.March), Revenue: 300.0},
				{Month: month(2024, time.April), Revenue: 400.0},
				{Month: month(2024, time.May), Revenue: 500.0},
			},
			expected: []float64{100.0, 150.0, 200.0, 300.0, 400.0},
		},
		{
			name: "Mês único - média móvel igual à receita",
			points: []*domain.TrendPoint{
				{Month: month(2024, time.June), Revenue: 999.99},
			},
			expected: []float64{999.99},
		},
		{
			name:     "Série vazia - nenhum ponto, nenhum erro",
			points:   []*domain.TrendPoint{},
			expected: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().
				MonthlyRevenue(gomock.Any(), domain.SalesFilter{}).
				Return(tt.points, nil)

			result, err := service.RevenueTrend(context.Background(), domain.SalesFilter{})

			assert.NoError(t, err)
			assert.Len(t, result, len(tt.expected))
			for i, want := range tt.expected {
				assert.InDelta(t, want, result[i].MovingAvg, 1e-9, "média móvel do ponto %d", i)
			}
		})
	}
}

func TestService_RevenueTrend_GapMonthsStayAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(mockRepo)

	// Março não tem vendas: a série pula de fevereiro para abril e a média
	// móvel considera apenas os pontos presentes
	mockRepo.EXPECT().
		MonthlyRevenue(gomock.Any(), domain.SalesFilter{}).
		Return([]*domain.TrendPoint{
			{Month: month(2024, time.January), Revenue: 90.0},
			{Month: month(2024, time.February), Revenue: 120.0},
			{Month: month(2024, time.April), Revenue: 60.0},
		}, nil)

	result, err := service.RevenueTrend(context.Background(), domain.SalesFilter{})

	assert.NoError(t, err)
	assert.Len(t, result, 3)
	assert.Equal(t, month(2024, time.April), result[2].Month)
	assert.InDelta(t, 90.0, result[2].MovingAvg, 1e-9)
}

func TestService_RevenueTrend_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		MonthlyRevenue(gomock.Any(), domain.SalesFilter{Category: "Livros"}).
		Return(nil, assert.AnError)

	result, err := service.RevenueTrend(context.Background(), domain.SalesFilter{Category: "Livros"})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestService_CategoryTrends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(mockRepo)

	points := []*domain.CategoryTrendPoint{
		{Month: month(2024, time.January), Category: "Eletrônicos", Revenue: 500.0},
		{Month: month(2024, time.January), Category: "Livros", Revenue: 80.0},
	}

	mockRepo.EXPECT().
		CategoryTrend(gomock.Any()).
		Return(points, nil)

	result, err := service.CategoryTrends(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, points, result)
}
