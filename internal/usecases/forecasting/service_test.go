package forecasting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func saveTestModel(t *testing.T, path string, slope, intercept float64) {
	t.Helper()

	err := SaveModel(path, &domain.RevenueModel{
		Slope:     slope,
		Intercept: intercept,
		Samples:   24,
		TrainedAt: time.Now().UTC(),
	})
	assert.NoError(t, err)
}

func TestService_Predict(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "revenue_model.json")
	saveTestModel(t, modelPath, 100.0, 50.0)

	service := NewService(&config.Config{Model: config.Model{Path: modelPath}})
	assert.True(t, service.Available())

	result, err := service.Predict(3, 2024)

	assert.NoError(t, err)
	assert.Equal(t, 3, result.Month)
	assert.Equal(t, 2024, result.Year)
	// 100*3 + 50 = 350, banda de +-15%
	assert.Equal(t, 350.0, result.PredictedRevenue)
	assert.Equal(t, 297.5, result.LowerBound)
	assert.Equal(t, 402.5, result.UpperBound)
	assert.Equal(t, "March 2024", result.Label)
}

func TestService_Predict_YearOnlyChangesLabel(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "revenue_model.json")
	saveTestModel(t, modelPath, 80.0, 10.0)

	service := NewService(&config.Config{Model: config.Model{Path: modelPath}})

	near, err := service.Predict(3, 2024)
	assert.NoError(t, err)

	far, err := service.Predict(3, 2030)
	assert.NoError(t, err)

	// O modelo é cego ao ano: só o rótulo muda
	assert.Equal(t, near.PredictedRevenue, far.PredictedRevenue)
	assert.Equal(t, near.LowerBound, far.LowerBound)
	assert.Equal(t, near.UpperBound, far.UpperBound)
	assert.Equal(t, "March 2024", near.Label)
	assert.Equal(t, "March 2030", far.Label)
}

func TestService_Predict_InvalidMonth(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "revenue_model.json")
	saveTestModel(t, modelPath, 1.0, 0.0)

	service := NewService(&config.Config{Model: config.Model{Path: modelPath}})

	for _, month := range []int{0, 13, -1} {
		result, err := service.Predict(month, 2024)
		assert.Error(t, err)
		assert.Nil(t, result)
	}
}

func TestService_Predict_NegativeExtrapolationIsNotClamped(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "revenue_model.json")
	saveTestModel(t, modelPath, -200.0, 100.0)

	service := NewService(&config.Config{Model: config.Model{Path: modelPath}})

	result, err := service.Predict(6, 2024)

	assert.NoError(t, err)
	assert.Equal(t, -1100.0, result.PredictedRevenue)
	// A banda acompanha o sinal da previsão (previsão -15% e +15%)
	assert.Equal(t, -935.0, result.LowerBound)
	assert.Equal(t, -1265.0, result.UpperBound)
}

func TestService_ModelAbsenceIsNotFatal(t *testing.T) {
	// Caminho sem artefato: o serviço sobe com a previsão desabilitada
	modelPath := filepath.Join(t.TempDir(), "missing", "revenue_model.json")
	service := NewService(&config.Config{Model: config.Model{Path: modelPath}})

	assert.False(t, service.Available())

	result, err := service.Predict(1, 2024)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrModelUnavailable))

	results, err := service.PredictYear(2024)
	assert.Nil(t, results)
	assert.True(t, errors.Is(err, ErrModelUnavailable))
}

func TestService_Reload_PicksUpRetrainedModel(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "revenue_model.json")
	saveTestModel(t, modelPath, 10.0, 0.0)

	service := NewService(&config.Config{Model: config.Model{Path: modelPath}})

	before, err := service.Predict(2, 2024)
	assert.NoError(t, err)
	assert.Equal(t, 20.0, before.PredictedRevenue)

	// Simula um retreino gravando novos coeficientes
	saveTestModel(t, modelPath, 20.0, 5.0)
	assert.NoError(t, service.Reload())

	after, err := service.Predict(2, 2024)
	assert.NoError(t, err)
	assert.Equal(t, 45.0, after.PredictedRevenue)
}

func TestService_PredictYear(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "revenue_model.json")
	saveTestModel(t, modelPath, 100.0, 0.0)

	service := NewService(&config.Config{Model: config.Model{Path: modelPath}})

	results, err := service.PredictYear(2025)

	assert.NoError(t, err)
	assert.Len(t, results, 12)
	assert.Equal(t, "January 2025", results[0].Label)
	assert.Equal(t, "December 2025", results[11].Label)
	assert.Equal(t, 100.0, results[0].PredictedRevenue)
	assert.Equal(t, 1200.0, results[11].PredictedRevenue)
}

func TestLoadModel_InvalidArtifact(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "revenue_model.json")
	assert.NoError(t, SaveModel(modelPath, &domain.RevenueModel{Slope: 1.0}))

	// Corrompe o artefato
	err := os.WriteFile(modelPath, []byte("{not json"), 0o644)
	assert.NoError(t, err)

	model, err := LoadModel(modelPath)
	assert.Error(t, err)
	assert.Nil(t, model)
}
