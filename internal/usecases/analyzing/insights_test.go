package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

func TestBuildInsights_Overview(t *testing.T) {
	t.Run("Totais globais e taxas derivadas", func(t *testing.T) {
		marketing := []*domain.MarketingRecord{
			{Date: day(1), Spend: 100, AttributedRevenue: 300},
			{Date: day(2), Spend: 200, AttributedRevenue: 300},
		}
		business := []*domain.BusinessRecord{
			{Date: day(1), TotalRevenue: 1000},
			{Date: day(2), TotalRevenue: 2000},
		}
		combined := []*domain.CombinedRecord{
			{Date: day(1)},
			{Date: day(2)},
		}

		insights := buildInsights(marketing, business, combined, nil, nil)

		assert.Equal(t, 300.0, insights.Overview.TotalSpend)
		assert.Equal(t, 600.0, insights.Overview.TotalAttributedRevenue)
		assert.Equal(t, 3000.0, insights.Overview.TotalBusinessRevenue)
		assert.Equal(t, 2.0, insights.Overview.OverallROAS)               // 600/300
		assert.Equal(t, 20.0, insights.Overview.MarketingAttributionRate) // 600/3000 * 100
		assert.Equal(t, "2025-06-01", insights.Overview.DateRange.Start)
		assert.Equal(t, "2025-06-02", insights.Overview.DateRange.End)
	})

	t.Run("Spend total zero zera o ROAS global", func(t *testing.T) {
		marketing := []*domain.MarketingRecord{
			{Date: day(1), Spend: 0, AttributedRevenue: 500},
		}

		insights := buildInsights(marketing, nil, nil, nil, nil)

		assert.Equal(t, 0.0, insights.Overview.OverallROAS)
		assert.Equal(t, 0.0, insights.Overview.MarketingAttributionRate)
	})
}

func TestFindPerformanceDays(t *testing.T) {
	t.Run("Melhor e pior dia por ROAS", func(t *testing.T) {
		combined := []*domain.CombinedRecord{
			{Date: day(1), ROAS: 1.5, Spend: 100, AttributedRevenue: 150},
			{Date: day(2), ROAS: 3.0, Spend: 50, AttributedRevenue: 150},
			{Date: day(3), ROAS: 0.5, Spend: 200, AttributedRevenue: 100},
		}

		days := findPerformanceDays(combined)

		assert.Equal(t, "2025-06-02", days.BestROAS.Date)
		assert.Equal(t, 3.0, days.BestROAS.ROAS)
		assert.Equal(t, 150.0, days.BestROAS.Revenue)

		assert.Equal(t, "2025-06-03", days.WorstROAS.Date)
		assert.Equal(t, 0.5, days.WorstROAS.ROAS)
	})

	t.Run("Empate de ROAS resolve para a data mais antiga", func(t *testing.T) {
		// Entrada propositalmente fora de ordem cronológica
		combined := []*domain.CombinedRecord{
			{Date: day(5), ROAS: 2.0},
			{Date: day(2), ROAS: 2.0},
			{Date: day(4), ROAS: 1.0},
			{Date: day(3), ROAS: 1.0},
		}

		days := findPerformanceDays(combined)

		assert.Equal(t, "2025-06-02", days.BestROAS.Date)
		assert.Equal(t, "2025-06-03", days.WorstROAS.Date)
	})

	t.Run("Conjunto vazio devolve estrutura zerada", func(t *testing.T) {
		days := findPerformanceDays(nil)

		assert.Equal(t, domain.PerformanceDays{}, days)
	})
}

func TestBuildWeeklyTrends(t *testing.T) {
	t.Run("Médias por número de semana ISO, em ordem crescente", func(t *testing.T) {
		// 2025-06-02 (segunda) e 2025-06-03 caem na semana ISO 23;
		// 2025-06-09 cai na semana 24.
		combined := []*domain.CombinedRecord{
			{Date: day(9), Spend: 300, AttributedRevenue: 600, ROAS: 2.0, TotalRevenue: 3000},
			{Date: day(2), Spend: 100, AttributedRevenue: 200, ROAS: 2.0, TotalRevenue: 1000},
			{Date: day(3), Spend: 200, AttributedRevenue: 200, ROAS: 1.0, TotalRevenue: 2000},
		}

		trends := buildWeeklyTrends(combined)

		assert.Len(t, trends, 2)

		assert.Equal(t, 23, trends[0].Week)
		assert.Equal(t, 150.0, trends[0].Spend)             // média de 100 e 200
		assert.Equal(t, 200.0, trends[0].AttributedRevenue) // média de 200 e 200
		assert.Equal(t, 1.5, trends[0].ROAS)                // média de 2.0 e 1.0
		assert.Equal(t, 1500.0, trends[0].TotalRevenue)

		assert.Equal(t, 24, trends[1].Week)
		assert.Equal(t, 300.0, trends[1].Spend)
	})

	t.Run("Conjunto vazio devolve lista vazia", func(t *testing.T) {
		trends := buildWeeklyTrends(nil)

		assert.Empty(t, trends)
	})
}
