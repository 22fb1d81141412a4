// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	salesTable     = "sales s"
	productsJoin   = "products p ON s.product_id = p.product_id"
	customersJoin  = "customers c ON s.customer_id = c.customer_id"
	topProductsCap = 20
)

// AnalyticsRepository expõe as consultas de agregação sobre vendas,
// produtos e clientes. Todos os filtros viram placeholders ($n), nunca
// interpolação de strings.
type AnalyticsRepository interface {
	CategoryKPIs(ctx context.Context, filter domain.SalesFilter) ([]*domain.CategoryKPI, error)
	CitySegments(ctx context.Context, filter domain.SalesFilter) ([]*domain.CitySegment, error)
	TopProducts(ctx context.Context, limit int) ([]*domain.ProductPerformance, error)
	MonthlyRevenue(ctx context.Context, filter domain.SalesFilter) ([]*domain.TrendPoint, error)
	CategoryTrend(ctx context.Context) ([]*domain.CategoryTrendPoint, error)
	TrainingSamples(ctx context.Context) ([]*domain.TrainingSample, error)
}

type analyticsRepository struct {
	conn postgres.Conn
}

func NewAnalyticsRepository(conn postgres.Conn) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

// applyFilter traduz o filtro estruturado em cláusulas WHERE parametrizadas
func applyFilter(builder squirrel.SelectBuilder, filter domain.SalesFilter) squirrel.SelectBuilder {
	if filter.HasCity() {
		builder = builder.Where(squirrel.Eq{"c.city": filter.City})
	}
	if filter.HasCategory() {
		builder = builder.Where(squirrel.Eq{"p.category": filter.Category})
	}
	return builder
}

func (r *analyticsRepository) CategoryKPIs(ctx context.Context, filter domain.SalesFilter) ([]*domain.CategoryKPI, error) {
	builder := squirrel.
		Select(
			"p.category",
			"SUM(s.quantity * p.price) AS revenue",
			"COUNT(DISTINCT s.customer_id) AS customers",
			"COUNT(DISTINCT s.product_id) AS products",
			"SUM(s.quantity) AS total_quantity",
			"COUNT(DISTINCT s.sale_id) AS total_orders",
		).
		From(salesTable).
		Join(productsJoin).
		Join(customersJoin).
		GroupBy("p.category").
		OrderBy("p.category ASC").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := applyFilter(builder, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	kpis := make([]*domain.CategoryKPI, 0)
	for rows.Next() {
		kpi := &domain.CategoryKPI{}
		if err := rows.Scan(
			&kpi.Category,
			&kpi.Revenue,
			&kpi.Customers,
			&kpi.Products,
			&kpi.TotalQuantity,
			&kpi.TotalOrders,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear KPI de categoria: %w", err)
		}
		kpis = append(kpis, kpi)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return kpis, nil
}

// citySegmentsQuery agrega clientes e receita por cidade, da maior receita
// para a menor
func citySegmentsQuery(filter domain.SalesFilter) squirrel.SelectBuilder {
	builder := squirrel.
		Select(
			"c.city",
			"COUNT(DISTINCT s.customer_id) AS customers",
			"SUM(s.quantity * p.price) AS revenue",
		).
		From(salesTable).
		Join(customersJoin).
		Join(productsJoin).
		GroupBy("c.city").
		OrderBy("revenue DESC").
		PlaceholderFormat(squirrel.Dollar)

	return applyFilter(builder, filter)
}

func (r *analyticsRepository) CitySegments(ctx context.Context, filter domain.SalesFilter) ([]*domain.CitySegment, error) {
	query, args, err := citySegmentsQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	segments := make([]*domain.CitySegment, 0)
	for rows.Next() {
		segment := &domain.CitySegment{}
		if err := rows.Scan(&segment.City, &segment.Customers, &segment.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear segmento de cidade: %w", err)
		}
		segments = append(segments, segment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return segments, nil
}

// topProductsQuery agrega o desempenho dos produtos ordenado por receita.
// Limites fora de 1..topProductsCap são normalizados para o teto de 20.
func topProductsQuery(limit int) squirrel.SelectBuilder {
	if limit <= 0 || limit > topProductsCap {
		limit = topProductsCap
	}

	return squirrel.
		Select(
			"p.product_name",
			"p.category",
			"SUM(s.quantity * p.price) AS revenue",
			"SUM(s.quantity) AS quantity_sold",
			"COUNT(DISTINCT s.customer_id) AS customers",
		).
		From(salesTable).
		Join(productsJoin).
		GroupBy("p.product_name", "p.category").
		OrderBy("revenue DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)
}

// TopProducts retorna o desempenho dos produtos ordenado por receita,
// sem filtro de cidade/categoria (visão global do catálogo)
func (r *analyticsRepository) TopProducts(ctx context.Context, limit int) ([]*domain.ProductPerformance, error) {
	query, args, err := topProductsQuery(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.ProductPerformance, 0)
	for rows.Next() {
		product := &domain.ProductPerformance{}
		if err := rows.Scan(
			&product.ProductName,
			&product.Category,
			&product.Revenue,
			&product.QuantitySold,
			&product.Customers,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear desempenho de produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

// MonthlyRevenue retorna a receita agregada por mês calendário, em ordem
// crescente. Meses sem vendas não aparecem na série (sem zero-fill).
func (r *analyticsRepository) MonthlyRevenue(ctx context.Context, filter domain.SalesFilter) ([]*domain.TrendPoint, error) {
	builder := squirrel.
		Select(
			"DATE_TRUNC('month', s.sale_date) AS month",
			"SUM(s.quantity * p.price) AS revenue",
		).
		From(salesTable).
		Join(productsJoin).
		Join(customersJoin).
		GroupBy("month").
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := applyFilter(builder, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	points := make([]*domain.TrendPoint, 0)
	for rows.Next() {
		point := &domain.TrendPoint{}
		if err := rows.Scan(&point.Month, &point.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear ponto da série mensal: %w", err)
		}
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

// CategoryTrend retorna a série mensal segmentada por categoria, sem filtro
func (r *analyticsRepository) CategoryTrend(ctx context.Context) ([]*domain.CategoryTrendPoint, error) {
	query, args, err := squirrel.
		Select(
			"DATE_TRUNC('month', s.sale_date) AS month",
			"p.category",
			"SUM(s.quantity * p.price) AS revenue",
		).
		From(salesTable).
		Join(productsJoin).
		GroupBy("month", "p.category").
		OrderBy("month ASC", "p.category ASC").
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

	points := make([]*domain.CategoryTrendPoint, 0)
	for rows.Next() {
		point := &domain.CategoryTrendPoint{}
		if err := rows.Scan(&point.Month, &point.Category, &point.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear ponto da série por categoria: %w", err)
		}
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

// TrainingSamples retorna um par (mês da venda, receita da venda) por venda,
// sobre todo o histórico, para o treino da regressão
func (r *analyticsRepository) TrainingSamples(ctx context.Context) ([]*domain.TrainingSample, error) {
	query, args, err := squirrel.
		Select(
			"EXTRACT(MONTH FROM s.sale_date)::int AS month",
			"s.quantity * p.price AS revenue",
		).
		From(salesTable).
		Join(productsJoin).
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

	samples := make([]*domain.TrainingSample, 0)
	for rows.Next() {
		sample := &domain.TrainingSample{}
		if err := rows.Scan(&sample.Month, &sample.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear amostra de treino: %w", err)
		}
		samples = append(samples, sample)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return samples, nil
}
