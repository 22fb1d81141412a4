package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

// stubForecaster evita depender do artefato em disco nos testes do agendador
type stubForecaster struct {
	available   bool
	reloadErr   error
	reloadCalls int
}

func (s *stubForecaster) Predict(month, year int) (*domain.ForecastResult, error) {
	return nil, forecasting.ErrModelUnavailable
}

func (s *stubForecaster) PredictYear(year int) ([]*domain.ForecastResult, error) {
	return nil, forecasting.ErrModelUnavailable
}

func (s *stubForecaster) Available() bool { return s.available }

func (s *stubForecaster) Reload() error {
	s.reloadCalls++
	return s.reloadErr
}

func newTestConfig(t *testing.T, enabled bool) *config.Config {
	t.Helper()

	return &config.Config{
		Model: config.Model{Path: filepath.Join(t.TempDir(), "revenue_model.json")},
		ModelTrainingSync: config.ModelTrainingSync{
			CronSchedule: "0 2 * * *",
			Enabled:      enabled,
		},
	}
}

func TestModelTrainingSyncService_RunTraining(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	mockRepo.EXPECT().
		TrainingSamples(gomock.Any()).
		Return([]*domain.TrainingSample{
			{Month: 1, Revenue: 100.0},
			{Month: 2, Revenue: 200.0},
		}, nil)

	cfg := newTestConfig(t, true)
	forecaster := &stubForecaster{available: true}
	service := NewModelTrainingSyncService(forecasting.NewTrainer(mockRepo, cfg), forecaster, cfg)

	service.runTraining(context.Background())

	assert.Equal(t, 1, forecaster.reloadCalls)

	status := service.Status()
	assert.True(t, status.Enabled)
	assert.Equal(t, "0 2 * * *", status.CronSchedule)
	assert.False(t, status.Running)
	assert.True(t, status.ModelAvailable)
	assert.Empty(t, status.LastError)
	assert.NotEmpty(t, status.LastStartedAt)
	assert.NotEmpty(t, status.LastCompletedAt)
}

func TestModelTrainingSyncService_RunTraining_TrainerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	mockRepo.EXPECT().
		TrainingSamples(gomock.Any()).
		Return(nil, assert.AnError)

	cfg := newTestConfig(t, true)
	forecaster := &stubForecaster{}
	service := NewModelTrainingSyncService(forecasting.NewTrainer(mockRepo, cfg), forecaster, cfg)

	service.runTraining(context.Background())

	// O forecaster não é recarregado quando o treino falha
	assert.Equal(t, 0, forecaster.reloadCalls)

	status := service.Status()
	assert.False(t, status.Running)
	assert.NotEmpty(t, status.LastError)
}

func TestModelTrainingSyncService_RunTraining_ReloadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	mockRepo.EXPECT().
		TrainingSamples(gomock.Any()).
		Return([]*domain.TrainingSample{
			{Month: 1, Revenue: 100.0},
			{Month: 6, Revenue: 600.0},
		}, nil)

	cfg := newTestConfig(t, true)
	forecaster := &stubForecaster{reloadErr: assert.AnError}
	service := NewModelTrainingSyncService(forecasting.NewTrainer(mockRepo, cfg), forecaster, cfg)

	service.runTraining(context.Background())

	status := service.Status()
	assert.NotEmpty(t, status.LastError)
}

func TestModelTrainingSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)

	cfg := newTestConfig(t, false)
	service := NewModelTrainingSyncService(forecasting.NewTrainer(mockRepo, cfg), &stubForecaster{}, cfg)

	// Desabilitado por configuração: nada é agendado e nada falha
	err := service.Start(context.Background())
	assert.NoError(t, err)

	status := service.Status()
	assert.False(t, status.Enabled)
	assert.False(t, status.Running)
}
