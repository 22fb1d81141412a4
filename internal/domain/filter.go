package domain

import (
	"fmt"
	"strings"
)

// FilterAll é o valor sentinela que significa "sem filtro" para um campo
const FilterAll = "all"

// SalesFilter restringe quais vendas participam das agregações.
// Campos vazios ou com o sentinela "all" não filtram nada. Os valores são
// sempre enviados como parâmetros de query, nunca interpolados em SQL.
type SalesFilter struct {
	City     string `json:"city"`
	Category string `json:"category"`
}

// NewSalesFilter normaliza os parâmetros recebidos da camada de apresentação
func NewSalesFilter(city, category string) SalesFilter {
	return SalesFilter{
		City:     normalizeFilterValue(city),
		Category: normalizeFilterValue(category),
	}
}

func normalizeFilterValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, FilterAll) {
		return ""
	}
	return v
}

// HasCity indica se o filtro restringe por cidade
func (f SalesFilter) HasCity() bool {
	return f.City != ""
}

// HasCategory indica se o filtro restringe por categoria
func (f SalesFilter) HasCategory() bool {
	return f.Category != ""
}

// IsEmpty indica se nenhuma restrição está ativa
func (f SalesFilter) IsEmpty() bool {
	return !f.HasCity() && !f.HasCategory()
}

// CacheKey identifica o filtro para memoização de resultados
func (f SalesFilter) CacheKey() string {
	return fmt.Sprintf("city=%s|category=%s", f.City, f.Category)
}

// MarshalJSON exibe o sentinela "all" para campos sem restrição
func (f SalesFilter) MarshalJSON() ([]byte, error) {
	city := f.City
	if city == "" {
		city = FilterAll
	}
	category := f.Category
	if category == "" {
		category = FilterAll
	}
	return []byte(fmt.Sprintf(`{"city":%q,"category":%q}`, city, category)), nil
}
