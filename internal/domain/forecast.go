package domain

import "time"

// RevenueModel são os coeficientes da regressão linear simples
// (número do mês -> receita) persistidos como artefato do modelo
type RevenueModel struct {
	Slope     float64   `json:"slope"`
	Intercept float64   `json:"intercept"`
	Samples   int       `json:"samples"`
	TrainedAt time.Time `json:"trained_at"`
}

// Predict calcula a receita prevista para o mês informado (1-12).
// O modelo não conhece o ano: a mesma curva sazonal vale para todos os anos.
func (m *RevenueModel) Predict(month int) float64 {
	return m.Slope*float64(month) + m.Intercept
}

// ForecastResult é uma previsão pontual com banda fixa de +-15%.
// Year é apenas rótulo do período solicitado e não influencia o valor
// previsto. A previsão pode ser negativa quando a reta extrapola
// abaixo de zero (sem clamping).
type ForecastResult struct {
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	PredictedRevenue float64 `json:"predicted_revenue"`
	LowerBound       float64 `json:"lower_bound"`
	UpperBound       float64 `json:"upper_bound"`
	Label            string  `json:"label"`
}

// TrainingSample é um par (mês da venda, receita da venda) usado no treino
type TrainingSample struct {
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
}
