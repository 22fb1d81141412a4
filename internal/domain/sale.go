package domain

import "time"

// Customer representa um cliente cadastrado na base externa (somente leitura)
type Customer struct {
	ID   int64  `json:"customer_id"`
	Name string `json:"name"`
	City string `json:"city"`
	Age  int    `json:"age"`
}

// Product representa um produto do catálogo (somente leitura)
type Product struct {
	ID       int64   `json:"product_id"`
	Name     string  `json:"product_name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// Sale representa um fato histórico de venda, imutável para este serviço
type Sale struct {
	ID         int64     `json:"sale_id"`
	CustomerID int64     `json:"customer_id"`
	ProductID  int64     `json:"product_id"`
	Quantity   int       `json:"quantity"`
	SaleDate   time.Time `json:"sale_date"`
}
