package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSalesFilter(t *testing.T) {
	tests := []struct {
		name             string
		city             string
		category         string
		expectedCity     string
		expectedCategory string
		expectedEmpty    bool
	}{
		{
			name:          "Valores vazios não filtram nada",
			city:          "",
			category:      "",
			expectedEmpty: true,
		},
		{
			name:          "Sentinela all equivale a vazio, sem distinção de caixa",
			city:          "All",
			category:      "ALL",
			expectedEmpty: true,
		},
		{
			name:         "Espaços em volta do valor são descartados",
			city:         "  Recife  ",
			expectedCity: "Recife",
		},
		{
			name:             "Valores reais são preservados",
			city:             "São Paulo",
			category:         "Eletrônicos",
			expectedCity:     "São Paulo",
			expectedCategory: "Eletrônicos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := NewSalesFilter(tt.city, tt.category)

			assert.Equal(t, tt.expectedCity, filter.City)
			assert.Equal(t, tt.expectedCategory, filter.Category)
			assert.Equal(t, tt.expectedEmpty, filter.IsEmpty())
		})
	}
}

func TestSalesFilter_CacheKey(t *testing.T) {
	assert.Equal(t, "city=|category=", SalesFilter{}.CacheKey())
	assert.Equal(t, "city=Recife|category=Livros",
		SalesFilter{City: "Recife", Category: "Livros"}.CacheKey())

	// Filtros diferentes nunca compartilham chave
	assert.NotEqual(t,
		SalesFilter{City: "Recife"}.CacheKey(),
		SalesFilter{Category: "Recife"}.CacheKey())
}

func TestSalesFilter_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(SalesFilter{City: "Curitiba"})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"city":"Curitiba","category":"all"}`, string(data))
}
