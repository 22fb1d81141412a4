package domain

import "time"

// TrendPoint é um ponto da série mensal de receita. MovingAvg é a média
// móvel dos últimos 3 pontos presentes na série (janela mínima 1 no início).
type TrendPoint struct {
	Month     time.Time `json:"month"`
	Revenue   float64   `json:"revenue"`
	MovingAvg float64   `json:"moving_avg"`
}

// CategoryTrendPoint é um ponto da série mensal segmentada por categoria,
// usada na comparação entre categorias (sem média móvel)
type CategoryTrendPoint struct {
	Month    time.Time `json:"month"`
	Category string    `json:"category"`
	Revenue  float64   `json:"revenue"`
}
