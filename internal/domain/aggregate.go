package domain

import "time"

// DailyAggregate é o rollup diário dos registros de marketing: volumes
// somados e razões recalculadas a partir das somas (razão-de-somas).
type DailyAggregate struct {
	Date              time.Time `json:"date"`
	Impressions       int       `json:"impression"`
	Clicks            int       `json:"clicks"`
	Spend             float64   `json:"spend"`
	AttributedRevenue float64   `json:"attributed revenue"`
	CTR               float64   `json:"ctr"`
	CPC               float64   `json:"cpc"`
	ROAS              float64   `json:"roas"`
}

// PlatformSummary é o rollup por plataforma: volumes somados e a média
// aritmética das razões pré-calculadas por registro (média-de-razões).
// A assimetria em relação ao rollup diário é comportamento observável
// do relatório e precisa ser preservada.
type PlatformSummary struct {
	Platform          string  `json:"platform"`
	Impressions       int     `json:"impression"`
	Clicks            int     `json:"clicks"`
	Spend             float64 `json:"spend"`
	AttributedRevenue float64 `json:"attributed revenue"`
	CTR               float64 `json:"ctr"`
	CPC               float64 `json:"cpc"`
	ROAS              float64 `json:"roas"`
}

// TacticSummary é o rollup por tática, com a mesma regra de agregação
// do PlatformSummary.
type TacticSummary struct {
	Tactic            string  `json:"tactic"`
	Impressions       int     `json:"impression"`
	Clicks            int     `json:"clicks"`
	Spend             float64 `json:"spend"`
	AttributedRevenue float64 `json:"attributed revenue"`
	CTR               float64 `json:"ctr"`
	CPC               float64 `json:"cpc"`
	ROAS              float64 `json:"roas"`
}
