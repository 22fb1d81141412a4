package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
)

// CatalogRepository lista os valores distintos usados nos filtros do
// dashboard (dropdowns de cidade e categoria)
type CatalogRepository interface {
	DistinctCities(ctx context.Context) ([]string, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

type catalogRepository struct {
	conn postgres.Conn
}

func NewCatalogRepository(conn postgres.Conn) CatalogRepository {
	return &catalogRepository{
		conn: conn,
	}
}

func (r *catalogRepository) DistinctCities(ctx context.Context) ([]string, error) {
	return r.distinctValues(ctx, "city", "customers")
}

func (r *catalogRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	return r.distinctValues(ctx, "category", "products")
}

func (r *catalogRepository) distinctValues(ctx context.Context, column, table string) ([]string, error) {
	query, args, err := squirrel.
		Select(column).
		Distinct().
		From(table).
		OrderBy(column + " ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("erro ao escanear valor distinto de %s: %w", column, err)
		}
		values = append(values, value)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return values, nil
}
