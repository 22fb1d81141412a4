package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/forecasting"
)

// Treina o modelo de previsão de faturamento a partir do histórico de vendas
// e grava o artefato em disco. Pensado para execução manual ou em pipelines.
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	analyticsRepo := repository.NewAnalyticsRepository(conn)
	trainer := forecasting.NewTrainer(analyticsRepo, cfg)

	model, err := trainer.Train(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao treinar o modelo de previsão")
	}

	logrus.WithFields(logrus.Fields{
		"slope":     model.Slope,
		"intercept": model.Intercept,
		"samples":   model.Samples,
		"path":      cfg.Model.Path,
	}).Info("Modelo de previsão treinado e salvo com sucesso")
}
