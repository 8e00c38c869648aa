package domain

import "time"

// CombinedRecord é o resultado do join interno entre o agregado diário
// de marketing e o registro de negócio da mesma data. Datas presentes
// em apenas um dos lados não geram registro.
type CombinedRecord struct {
	Date              time.Time `json:"date"`
	Impressions       int       `json:"impression"`
	Clicks            int       `json:"clicks"`
	Spend             float64   `json:"spend"`
	AttributedRevenue float64   `json:"attributed revenue"`
	CTR               float64   `json:"ctr"`
	CPC               float64   `json:"cpc"`
	ROAS              float64   `json:"roas"`

	TotalRevenue float64 `json:"total revenue"`
	GrossProfit  float64 `json:"gross profit"`
	Orders       int     `json:"# of orders"`
	NewCustomers int     `json:"new customers"`

	// Métricas cruzadas marketing × negócio, mesma política de divisão
	// por zero dos registros de marketing.
	AvgOrderValue           float64 `json:"avg_order_value"`
	NewCustomerRatio        float64 `json:"new_customer_ratio"`
	GrossMargin             float64 `json:"gross_margin"`
	MarketingEfficiency     float64 `json:"marketing_efficiency"`
	CustomerAcquisitionCost float64 `json:"customer_acquisition_cost"`
}
