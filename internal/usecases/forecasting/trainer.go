package forecasting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Trainer ajusta a regressão de receita sobre o histórico completo de
// vendas e persiste o artefato para o serviço de previsão
type Trainer struct {
	analyticsRepo repository.AnalyticsRepository
	modelPath     string
}

func NewTrainer(analyticsRepo repository.AnalyticsRepository, cfg *config.Config) *Trainer {
	return &Trainer{
		analyticsRepo: analyticsRepo,
		modelPath:     cfg.Model.Path,
	}
}

// Train busca as amostras (mês, receita por venda), ajusta a regressão e
// grava o artefato
func (t *Trainer) Train(ctx context.Context) (*domain.RevenueModel, error) {
	samples, err := t.analyticsRepo.TrainingSamples(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar amostras de treino: %w", err)
	}

	model, err := Fit(samples)
	if err != nil {
		return nil, err
	}

	if err := SaveModel(t.modelPath, model); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"slope":     model.Slope,
		"intercept": model.Intercept,
		"samples":   model.Samples,
		"path":      t.modelPath,
	}).Info("Modelo de receita treinado e salvo")

	return model, nil
}

// Fit ajusta por mínimos quadrados ordinários uma reta receita = a*mes + b,
// com o número do mês (1-12) como único preditor. A solução é a forma
// fechada das equações normais; nada além disso é necessário aqui.
func Fit(samples []*domain.TrainingSample) (*domain.RevenueModel, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("amostras insuficientes para o treino: %d", len(samples))
	}

	var sumX, sumY, sumXY, sumX2 float64
	for _, sample := range samples {
		x := float64(sample.Month)
		y := sample.Revenue
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	n := float64(len(samples))
	denominator := n*sumX2 - sumX*sumX
	if denominator == 0 {
		return nil, fmt.Errorf("todas as amostras estão no mesmo mês; a regressão é indeterminada")
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n

	return &domain.RevenueModel{
		Slope:     slope,
		Intercept: intercept,
		Samples:   len(samples),
		TrainedAt: time.Now().UTC(),
	}, nil
}
