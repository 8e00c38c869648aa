package analyzing

import "github.com/vfg2006/marketing-intelligence-api/internal/domain"

// safeDivide aplica a política uniforme de divisão por zero do
// pipeline: denominador zero produz 0, nunca infinito ou NaN. A mesma
// regra vale para todas as métricas derivadas, sem exceção — é isso
// que mantém a aritmética da agregação total, sem tratamento de
// valores ausentes rio abaixo.
func safeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}

// calculateMetrics enriquece cada registro de marketing in place com
// as cinco métricas derivadas. É o único ponto do pipeline que altera
// uma estrutura recebida; depois daqui os registros são imutáveis.
func calculateMetrics(records []*domain.MarketingRecord) {
	for _, r := range records {
		r.CTR = safeDivide(float64(r.Clicks), float64(r.Impressions)) * 100
		r.CPC = safeDivide(r.Spend, float64(r.Clicks))
		r.CPM = safeDivide(r.Spend, float64(r.Impressions)) * 1000
		r.ROAS = safeDivide(r.AttributedRevenue, r.Spend)
		r.ConversionRate = safeDivide(r.AttributedRevenue, float64(r.Clicks)) * 100
	}
}
