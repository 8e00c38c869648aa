package domain

// AnalysisResult é o snapshot completo produzido por uma execução do
// pipeline: os cinco conjuntos tabulares mais o documento de insights.
// Cada estágio devolve um snapshot novo; nenhum estágio modifica
// estrutura que não criou, exceto o cálculo de métricas, que enriquece
// os MarketingRecords in place antes do repasse.
type AnalysisResult struct {
	Marketing []*MarketingRecord `json:"marketing"`
	Business  []*BusinessRecord  `json:"business"`
	Daily     []*DailyAggregate  `json:"daily"`
	Platforms []*PlatformSummary `json:"platforms"`
	Tactics   []*TacticSummary   `json:"tactics"`
	Combined  []*CombinedRecord  `json:"combined"`
	Insights  *InsightsSummary   `json:"insights"`
}
