package domain

// CategoryKPI agrega receita e contadores de uma categoria de produto
type CategoryKPI struct {
	Category      string  `json:"category"`
	Revenue       float64 `json:"revenue"`
	Customers     int     `json:"customers"`
	Products      int     `json:"products"`
	TotalQuantity int     `json:"total_quantity"`
	TotalOrders   int     `json:"total_orders"`
}

// KPISummary consolida os totais de todas as categorias retornadas.
// Products soma os produtos distintos por categoria (cada produto pertence
// a uma única categoria). AvgOrderValue é 0 quando não há pedidos (nunca
// divide por zero).
type KPISummary struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalCustomers int     `json:"total_customers"`
	TotalOrders    int     `json:"total_orders"`
	TotalQuantity  int     `json:"total_quantity"`
	AvgOrderValue  float64 `json:"avg_order_value"`
	Products       int     `json:"products"`
	Categories     int     `json:"categories"`
}

// KPIReport é a resposta completa da agregação por categoria
type KPIReport struct {
	Filter     SalesFilter    `json:"filter"`
	Summary    KPISummary     `json:"summary"`
	Categories []*CategoryKPI `json:"categories"`
}

// CitySegment agrega clientes e receita por cidade, ordenado por receita
type CitySegment struct {
	City       string  `json:"city"`
	Customers  int     `json:"customers"`
	Revenue    float64 `json:"revenue"`
	AvgRevenue float64 `json:"avg_revenue_per_customer"`
}

// ProductPerformance agrega o desempenho de um produto (top N por receita)
type ProductPerformance struct {
	ProductName  string  `json:"product_name"`
	Category     string  `json:"category"`
	Revenue      float64 `json:"revenue"`
	QuantitySold int     `json:"quantity_sold"`
	Customers    int     `json:"customers"`
}
