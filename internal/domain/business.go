package domain

import "time"

// BusinessRecord representa os resultados de negócio de um único dia.
// Imutável depois de carregado.
type BusinessRecord struct {
	Date         time.Time `json:"date"`
	TotalRevenue float64   `json:"total revenue"`
	GrossProfit  float64   `json:"gross profit"`
	Orders       int       `json:"# of orders"`
	NewCustomers int       `json:"new customers"`
}
