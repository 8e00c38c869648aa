package domain

import "time"

// MarketingRecord representa uma linha de performance de marketing por
// (data, plataforma, campanha, tática, estado). Os campos derivados são
// preenchidos uma única vez pelo cálculo de métricas e a estrutura é
// tratada como imutável depois disso.
//
// Os nomes dos campos serializados (incluindo "attributed revenue", com
// espaço) são contrato com a camada de apresentação e não podem mudar.
type MarketingRecord struct {
	Date              time.Time `json:"date"`
	Platform          string    `json:"platform"`
	Campaign          string    `json:"campaign"`
	Tactic            string    `json:"tactic"`
	State             string    `json:"state"`
	Impressions       int       `json:"impression"`
	Clicks            int       `json:"clicks"`
	Spend             float64   `json:"spend"`
	AttributedRevenue float64   `json:"attributed revenue"`

	// Métricas derivadas. Invariante: sempre finitas — denominador zero
	// produz 0, nunca infinito ou NaN.
	CTR            float64 `json:"ctr"`
	CPC            float64 `json:"cpc"`
	CPM            float64 `json:"cpm"`
	ROAS           float64 `json:"roas"`
	ConversionRate float64 `json:"conversion_rate"`
}

// PlatformTable agrupa os registros brutos de uma única plataforma,
// antes da normalização marcar cada registro com sua origem.
type PlatformTable struct {
	Platform string
	Records  []*MarketingRecord
}

// Datasets é o conjunto de dados tipados retornado pelo Loader:
// uma tabela por plataforma e os registros de negócio.
type Datasets struct {
	Platforms []PlatformTable
	Business  []*BusinessRecord
}
