package aggregating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCachedService_CategoryKPIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(mockRepo).WithCache(time.Minute)

	filter := domain.SalesFilter{City: "Salvador"}

	// O repositório deve ser consultado uma única vez para o mesmo filtro
	mockRepo.EXPECT().
		CategoryKPIs(gomock.Any(), filter).
		Return([]*domain.CategoryKPI{
			{Category: "Livros", Revenue: 120.0, Customers: 2, TotalQuantity: 3, TotalOrders: 3},
		}, nil).
		Times(1)

	first, err := service.CategoryKPIs(context.Background(), filter)
	assert.NoError(t, err)

	second, err := service.CategoryKPIs(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCachedService_CategoryKPIs_DistinctFiltersDoNotShareEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(mockRepo).WithCache(time.Minute)

	recife := domain.SalesFilter{City: "Recife"}
	fortaleza := domain.SalesFilter{City: "Fortaleza"}

	mockRepo.EXPECT().
		CategoryKPIs(gomock.Any(), recife).
		Return([]*domain.CategoryKPI{{Category: "Móveis", Revenue: 50.0}}, nil).
		Times(1)
	mockRepo.EXPECT().
		CategoryKPIs(gomock.Any(), fortaleza).
		Return([]*domain.CategoryKPI{{Category: "Móveis", Revenue: 80.0}}, nil).
		Times(1)

	reportRecife, err := service.CategoryKPIs(context.Background(), recife)
	assert.NoError(t, err)

	reportFortaleza, err := service.CategoryKPIs(context.Background(), fortaleza)
	assert.NoError(t, err)

	assert.Equal(t, 50.0, reportRecife.Summary.TotalRevenue)
	assert.Equal(t, 80.0, reportFortaleza.Summary.TotalRevenue)
}

func TestCachedService_RefreshForcesRecompute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(mockRepo).WithCache(time.Minute)

	filter := domain.SalesFilter{Category: "Eletrônicos"}

	// Depois do refresh a mesma consulta volta ao repositório
	mockRepo.EXPECT().
		CategoryKPIs(gomock.Any(), filter).
		Return([]*domain.CategoryKPI{{Category: "Eletrônicos", Revenue: 10.0}}, nil).
		Times(2)

	_, err := service.CategoryKPIs(context.Background(), filter)
	assert.NoError(t, err)

	refresher, ok := service.(interface{ Refresh() })
	assert.True(t, ok)
	refresher.Refresh()

	_, err = service.CategoryKPIs(context.Background(), filter)
	assert.NoError(t, err)
}

func TestCachedService_ErrorsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(mockRepo).WithCache(time.Minute)

	gomock.InOrder(
		mockRepo.EXPECT().
			TopProducts(gomock.Any(), TopProductsLimit).
			Return(nil, assert.AnError),
		mockRepo.EXPECT().
			TopProducts(gomock.Any(), TopProductsLimit).
			Return([]*domain.ProductPerformance{{ProductName: "Monitor 27\""}}, nil),
	)

	_, err := service.TopProducts(context.Background())
	assert.Error(t, err)

	// Depois do erro a próxima chamada volta ao repositório
	products, err := service.TopProducts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 1)
}
