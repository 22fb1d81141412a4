// Package scheduler agenda o retreino periódico do modelo de receita.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/forecasting"
)

// ModelTrainingSyncConfig representa a configuração do agendador de retreino
type ModelTrainingSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ModelTrainingSyncService gerencia o agendamento e a execução do retreino
// do modelo de previsão de receita
type ModelTrainingSyncService struct {
	scheduler           *gocron.Scheduler
	config              ModelTrainingSyncConfig
	trainer             *forecasting.Trainer
	forecaster          forecasting.Forecaster
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewModelTrainingSyncService(
	trainer *forecasting.Trainer,
	forecaster forecasting.Forecaster,
	appConfig *config.Config,
) *ModelTrainingSyncService {
	syncConfig := ModelTrainingSyncConfig{
		CronSchedule: appConfig.ModelTrainingSync.CronSchedule,
		SyncEnabled:  appConfig.ModelTrainingSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de retreino do modelo carregada")

	return &ModelTrainingSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     syncConfig,
		trainer:    trainer,
		forecaster: forecaster,
	}
}

// Start inicia o agendador
func (s *ModelTrainingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Retreino agendado do modelo desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retreino do modelo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runTraining(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retreino do modelo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retreino do modelo")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara um retreino fora do horário agendado
func (s *ModelTrainingSyncService) TriggerManualSync() {
	go s.runTraining(context.Background())
}

// runTraining executa um ciclo de treino, ignorando disparos concorrentes
func (s *ModelTrainingSyncService) runTraining(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Retreino do modelo já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando retreino do modelo de receita")

	model, err := s.trainer.Train(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao retreinar o modelo de receita")
		s.syncMutex.Lock()
		s.lastSyncError = err.Error()
		s.syncMutex.Unlock()
		return
	}

	// O serviço de previsão passa a responder com os novos coeficientes
	if err := s.forecaster.Reload(); err != nil {
		logrus.WithError(err).Error("Erro ao recarregar o modelo após o retreino")
		s.syncMutex.Lock()
		s.lastSyncError = err.Error()
		s.syncMutex.Unlock()
		return
	}

	s.syncMutex.Lock()
	s.lastSyncError = ""
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"samples":  model.Samples,
		"duration": time.Since(s.lastSyncStartedAt).String(),
	}).Info("Retreino do modelo de receita concluído")
}

// SyncStatus é o estado do agendador exposto pelos endpoints de cron
type SyncStatus struct {
	Enabled         bool   `json:"enabled"`
	CronSchedule    string `json:"cron_schedule"`
	Running         bool   `json:"running"`
	ModelAvailable  bool   `json:"model_available"`
	LastStartedAt   string `json:"last_started_at,omitempty"`
	LastCompletedAt string `json:"last_completed_at,omitempty"`
	LastError       string `json:"last_error,omitempty"`
}

func (s *ModelTrainingSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{
		Enabled:        s.config.SyncEnabled,
		CronSchedule:   s.config.CronSchedule,
		Running:        s.syncRunning,
		ModelAvailable: s.forecaster.Available(),
		LastError:      s.lastSyncError,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status.LastStartedAt = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status.LastCompletedAt = s.lastSyncCompletedAt.Format(time.RFC3339)
	}

	return status
}
