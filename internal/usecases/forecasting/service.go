// Package forecasting ajusta e serve a regressão linear simples que projeta
// a receita mensal (número do mês -> receita).
package forecasting

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// bandPercent é a banda heurística fixa de +-15% em torno da previsão.
// Não é um intervalo de confiança estatístico.
const bandPercent = 0.15

// ErrModelUnavailable indica que não há modelo treinado: a seção de
// previsão fica desabilitada e o resto do sistema continua funcionando
var ErrModelUnavailable = errors.New("nenhum modelo de previsão treinado disponível")

type Forecaster interface {
	// Predict projeta a receita para um mês (1-12). O ano entra apenas no
	// rótulo do resultado: o modelo é cego ao ano, de propósito — a mesma
	// curva sazonal vale para 2024 e 2030. Introduzir o ano como preditor
	// mudaria todas as previsões históricas e é uma decisão de produto,
	// não um ajuste silencioso.
	Predict(month, year int) (*domain.ForecastResult, error)

	// PredictYear projeta os 12 meses de um ano, para o gráfico de previsão
	PredictYear(year int) ([]*domain.ForecastResult, error)

	// Available informa se há modelo carregado
	Available() bool

	// Reload recarrega o artefato do disco (chamado após o retreino)
	Reload() error
}

type Service struct {
	mu        sync.RWMutex
	modelPath string
	model     *domain.RevenueModel
}

// NewService carrega o modelo se existir. Ausência não é fatal: o serviço
// sobe com a previsão desabilitada, como o dashboard original.
func NewService(cfg *config.Config) *Service {
	s := &Service{modelPath: cfg.Model.Path}

	if err := s.Reload(); err != nil {
		if os.IsNotExist(err) {
			logrus.WithField("path", cfg.Model.Path).
				Warn("Modelo de previsão não encontrado. Seção de forecast desabilitada.")
		} else {
			logrus.WithError(err).Warn("Erro ao carregar modelo de previsão. Seção de forecast desabilitada.")
		}
	}

	return s
}

func (s *Service) Reload() error {
	model, err := LoadModel(s.modelPath)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.model = model
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"slope":      model.Slope,
		"intercept":  model.Intercept,
		"trained_at": model.TrainedAt,
	}).Info("Modelo de previsão carregado")

	return nil
}

func (s *Service) Available() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model != nil
}

func (s *Service) Predict(month, year int) (*domain.ForecastResult, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("mês inválido: %d (esperado 1-12)", month)
	}

	s.mu.RLock()
	model := s.model
	s.mu.RUnlock()

	if model == nil {
		return nil, ErrModelUnavailable
	}

	prediction := model.Predict(month)
	band := prediction * bandPercent

	return &domain.ForecastResult{
		Month:            month,
		Year:             year,
		PredictedRevenue: utils.RoundWithTwoDecimalPlace(prediction),
		LowerBound:       utils.RoundWithTwoDecimalPlace(prediction - band),
		UpperBound:       utils.RoundWithTwoDecimalPlace(prediction + band),
		Label:            fmt.Sprintf("%s %d", time.Month(month).String(), year),
	}, nil
}

func (s *Service) PredictYear(year int) ([]*domain.ForecastResult, error) {
	results := make([]*domain.ForecastResult, 0, 12)
	for month := 1; month <= 12; month++ {
		result, err := s.Predict(month, year)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}
