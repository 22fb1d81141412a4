package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/api"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/trending"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	analyticsRepo := repository.NewAnalyticsRepository(pgConn)
	catalogRepo := repository.NewCatalogRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	// Inicializa os serviços de agregação e tendência com suporte a cache
	var kpiService aggregating.KPIService = aggregating.NewService(analyticsRepo)
	var trendService trending.TrendService = trending.NewService(analyticsRepo)
	if cfg.Cache.Enabled {
		kpiService = aggregating.NewService(analyticsRepo).WithCache(cacheTTL)
		trendService = trending.NewService(analyticsRepo).WithCache(cacheTTL)
		logrus.WithField("ttl", cacheTTL).Info("Cache de agregações habilitado")
	}

	exporter := reporting.NewService(kpiService)

	trainer := forecasting.NewTrainer(analyticsRepo, cfg)
	forecaster := forecasting.NewService(cfg)

	// Inicializa o agendador de retreino do modelo
	modelTrainingSyncService := scheduler.NewModelTrainingSyncService(trainer, forecaster, cfg)

	if err := modelTrainingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retreino do modelo")
	} else {
		logrus.Info("Agendador de retreino do modelo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		kpiService,
		trendService,
		forecaster,
		catalogRepo,
		exporter,
		authenticator,
		modelTrainingSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
