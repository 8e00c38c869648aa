package analyzing

import "github.com/vfg2006/marketing-intelligence-api/internal/domain"

// normalizeMarketing marca cada registro com a plataforma de origem e
// concatena as tabelas em um único conjunto de registros de marketing.
// A ordem de concatenação segue a ordem das fontes configuradas e a
// ordem das linhas dentro de cada fonte.
func normalizeMarketing(tables []domain.PlatformTable) []*domain.MarketingRecord {
	total := 0
	for _, table := range tables {
		total += len(table.Records)
	}

	combined := make([]*domain.MarketingRecord, 0, total)

	for _, table := range tables {
		for _, record := range table.Records {
			record.Platform = table.Platform
			combined = append(combined, record)
		}
	}

	return combined
}
