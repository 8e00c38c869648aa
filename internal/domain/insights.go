package domain

// InsightsSummary é o documento estruturado de insights consumido pelo
// dashboard. Produzido uma única vez por execução do pipeline e
// somente leitura a partir daí.
type InsightsSummary struct {
	Overview        Overview           `json:"overview"`
	Platforms       []*PlatformSummary `json:"platforms"`
	Tactics         []*TacticSummary   `json:"tactics"`
	PerformanceDays PerformanceDays    `json:"performance_days"`
	WeeklyTrends    []*WeeklyTrend     `json:"weekly_trends"`
}

// Overview traz os totais globais do período analisado.
type Overview struct {
	TotalSpend               float64   `json:"total_spend"`
	TotalAttributedRevenue   float64   `json:"total_attributed_revenue"`
	TotalBusinessRevenue     float64   `json:"total_business_revenue"`
	OverallROAS              float64   `json:"overall_roas"`
	MarketingAttributionRate float64   `json:"marketing_attribution_rate"`
	DateRange                DateRange `json:"date_range"`
}

// DateRange anota o intervalo de datas coberto pelos dados combinados.
// Derivado da entrada, nunca do relógio, para manter execuções
// repetidas bit-idênticas.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PerformanceDays aponta os dias de melhor e pior ROAS.
type PerformanceDays struct {
	BestROAS  DayPerformance `json:"best_roas"`
	WorstROAS DayPerformance `json:"worst_roas"`
}

// DayPerformance resume um único dia do conjunto combinado.
type DayPerformance struct {
	Date    string  `json:"date"`
	ROAS    float64 `json:"roas"`
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
}

// WeeklyTrend traz as médias semanais, agrupadas pelo número da semana
// ISO sem qualificação de ano. Conjuntos que cruzam a virada do ano
// fundem semanas homônimas; aceitável para dados de uma única estação.
type WeeklyTrend struct {
	Week              int     `json:"week"`
	Spend             float64 `json:"spend"`
	AttributedRevenue float64 `json:"attributed revenue"`
	ROAS              float64 `json:"roas"`
	TotalRevenue      float64 `json:"total revenue"`
}
