package repository

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func baseBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select("p.category").
		From(salesTable).
		Join(productsJoin).
		Join(customersJoin).
		PlaceholderFormat(squirrel.Dollar)
}

func TestApplyFilter(t *testing.T) {
	tests := []struct {
		name         string
		filter       domain.SalesFilter
		expectedSQL  string
		expectedArgs []any
	}{
		{
			name:         "Filtro vazio não adiciona WHERE",
			filter:       domain.SalesFilter{},
			expectedSQL:  "SELECT p.category FROM sales s JOIN products p ON s.product_id = p.product_id JOIN customers c ON s.customer_id = c.customer_id",
			expectedArgs: nil,
		},
		{
			name:         "Cidade vira placeholder posicional",
			filter:       domain.SalesFilter{City: "Recife"},
			expectedSQL:  "SELECT p.category FROM sales s JOIN products p ON s.product_id = p.product_id JOIN customers c ON s.customer_id = c.customer_id WHERE c.city = $1",
			expectedArgs: []any{"Recife"},
		},
		{
			name:         "Cidade e categoria combinadas",
			filter:       domain.SalesFilter{City: "Curitiba", Category: "Livros"},
			expectedSQL:  "SELECT p.category FROM sales s JOIN products p ON s.product_id = p.product_id JOIN customers c ON s.customer_id = c.customer_id WHERE c.city = $1 AND p.category = $2",
			expectedArgs: []any{"Curitiba", "Livros"},
		},
		{
			name: "Valor malicioso nunca é interpolado na query",
			filter: domain.SalesFilter{
				City: "Recife'; DROP TABLE sales; --",
			},
			expectedSQL:  "SELECT p.category FROM sales s JOIN products p ON s.product_id = p.product_id JOIN customers c ON s.customer_id = c.customer_id WHERE c.city = $1",
			expectedArgs: []any{"Recife'; DROP TABLE sales; --"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := applyFilter(baseBuilder(), tt.filter).ToSql()

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedSQL, sql)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestTopProductsQuery(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		expectedLimit string
	}{
		{name: "Limite dentro do teto é respeitado", limit: 5, expectedLimit: "LIMIT 5"},
		{name: "Limite zero cai no teto de 20", limit: 0, expectedLimit: "LIMIT 20"},
		{name: "Limite negativo cai no teto de 20", limit: -3, expectedLimit: "LIMIT 20"},
		{name: "Limite acima do teto é normalizado para 20", limit: 999, expectedLimit: "LIMIT 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := topProductsQuery(tt.limit).ToSql()

			assert.NoError(t, err)
			assert.Empty(t, args)
			assert.Contains(t, sql, "ORDER BY revenue DESC")
			assert.Contains(t, sql, tt.expectedLimit)
		})
	}
}

func TestCitySegmentsQuery_OrderedByRevenueDesc(t *testing.T) {
	sql, args, err := citySegmentsQuery(domain.SalesFilter{City: "Recife"}).ToSql()

	assert.NoError(t, err)
	assert.Contains(t, sql, "GROUP BY c.city")
	assert.Contains(t, sql, "ORDER BY revenue DESC")
	assert.Equal(t, []any{"Recife"}, args)
}
