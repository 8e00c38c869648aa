package analyzing

import (
	"sort"
	"time"

	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

// buildInsights reduz os dados agregados ao documento de insights:
// totais globais, resumos por plataforma e tática (repassados tal qual
// saíram do agregador), melhor/pior dia por ROAS e a tendência semanal.
func buildInsights(
	marketing []*domain.MarketingRecord,
	business []*domain.BusinessRecord,
	combined []*domain.CombinedRecord,
	platforms []*domain.PlatformSummary,
	tactics []*domain.TacticSummary,
) *domain.InsightsSummary {
	var totalSpend, totalAttributedRevenue float64
	for _, r := range marketing {
		totalSpend += r.Spend
		totalAttributedRevenue += r.AttributedRevenue
	}

	var totalBusinessRevenue float64
	for _, b := range business {
		totalBusinessRevenue += b.TotalRevenue
	}

	overview := domain.Overview{
		TotalSpend:               totalSpend,
		TotalAttributedRevenue:   totalAttributedRevenue,
		TotalBusinessRevenue:     totalBusinessRevenue,
		OverallROAS:              safeDivide(totalAttributedRevenue, totalSpend),
		MarketingAttributionRate: safeDivide(totalAttributedRevenue, totalBusinessRevenue) * 100,
		DateRange:                combinedDateRange(combined),
	}

	return &domain.InsightsSummary{
		Overview:        overview,
		Platforms:       platforms,
		Tactics:         tactics,
		PerformanceDays: findPerformanceDays(combined),
		WeeklyTrends:    buildWeeklyTrends(combined),
	}
}

// combinedDateRange anota o intervalo de datas coberto pelo conjunto
// combinado. Derivado da entrada, não do relógio.
func combinedDateRange(combined []*domain.CombinedRecord) domain.DateRange {
	if len(combined) == 0 {
		return domain.DateRange{}
	}

	min, max := combined[0].Date, combined[0].Date
	for _, c := range combined[1:] {
		if c.Date.Before(min) {
			min = c.Date
		}
		if c.Date.After(max) {
			max = c.Date
		}
	}

	return domain.DateRange{
		Start: min.Format(time.DateOnly),
		End:   max.Format(time.DateOnly),
	}
}

// findPerformanceDays seleciona os dias de maior e menor ROAS. Os
// registros são ordenados de forma estável por data crescente e o
// primeiro extremo estrito vence, então empates resolvem sempre para a
// data mais antiga, independentemente da ordem de iteração de mapas.
func findPerformanceDays(combined []*domain.CombinedRecord) domain.PerformanceDays {
	if len(combined) == 0 {
		return domain.PerformanceDays{}
	}

	ordered := make([]*domain.CombinedRecord, len(combined))
	copy(ordered, combined)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	best, worst := ordered[0], ordered[0]
	for _, c := range ordered[1:] {
		if c.ROAS > best.ROAS {
			best = c
		}
		if c.ROAS < worst.ROAS {
			worst = c
		}
	}

	return domain.PerformanceDays{
		BestROAS:  dayPerformance(best),
		WorstROAS: dayPerformance(worst),
	}
}

func dayPerformance(c *domain.CombinedRecord) domain.DayPerformance {
	return domain.DayPerformance{
		Date:    c.Date.Format(time.DateOnly),
		ROAS:    c.ROAS,
		Spend:   c.Spend,
		Revenue: c.AttributedRevenue,
	}
}

type weeklyAccumulator struct {
	spend             float64
	attributedRevenue float64
	roas              float64
	totalRevenue      float64
	count             int
}

// buildWeeklyTrends agrupa os registros combinados pelo número da
// semana ISO (sem o ano — semanas homônimas de anos diferentes se
// fundem) e tira a média de spend, receita atribuída, roas e receita
// total por semana. Saída ordenada por número de semana crescente.
func buildWeeklyTrends(combined []*domain.CombinedRecord) []*domain.WeeklyTrend {
	accumulators := make(map[int]*weeklyAccumulator)

	for _, c := range combined {
		_, week := c.Date.ISOWeek()

		acc, ok := accumulators[week]
		if !ok {
			acc = &weeklyAccumulator{}
			accumulators[week] = acc
		}

		acc.spend += c.Spend
		acc.attributedRevenue += c.AttributedRevenue
		acc.roas += c.ROAS
		acc.totalRevenue += c.TotalRevenue
		acc.count++
	}

	weeks := make([]int, 0, len(accumulators))
	for week := range accumulators {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	trends := make([]*domain.WeeklyTrend, 0, len(weeks))
	for _, week := range weeks {
		acc := accumulators[week]
		count := float64(acc.count)
		trends = append(trends, &domain.WeeklyTrend{
			Week:              week,
			Spend:             acc.spend / count,
			AttributedRevenue: acc.attributedRevenue / count,
			ROAS:              acc.roas / count,
			TotalRevenue:      acc.totalRevenue / count,
		})
	}

	return trends
}
