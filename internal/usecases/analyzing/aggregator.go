package analyzing

import (
	"time"

	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

// Os três rollups são independentes e usam regras de agregação
// diferentes de propósito: o diário recalcula ctr/cpc/roas a partir
// dos volumes somados (razão-de-somas); plataforma e tática somam os
// volumes mas tiram a média aritmética das razões por registro
// (média-de-razões). Os dois resultados divergem sempre que o spend
// varia entre registros, e essa divergência é comportamento observável
// do relatório — não "corrigir".

// aggregateDaily agrupa por data na ordem de primeira ocorrência.
func aggregateDaily(records []*domain.MarketingRecord) []*domain.DailyAggregate {
	byDate := make(map[time.Time]*domain.DailyAggregate)
	daily := make([]*domain.DailyAggregate, 0)

	for _, r := range records {
		agg, ok := byDate[r.Date]
		if !ok {
			agg = &domain.DailyAggregate{Date: r.Date}
			byDate[r.Date] = agg
			daily = append(daily, agg)
		}

		agg.Impressions += r.Impressions
		agg.Clicks += r.Clicks
		agg.Spend += r.Spend
		agg.AttributedRevenue += r.AttributedRevenue
	}

	for _, agg := range daily {
		agg.CTR = safeDivide(float64(agg.Clicks), float64(agg.Impressions)) * 100
		agg.CPC = safeDivide(agg.Spend, float64(agg.Clicks))
		agg.ROAS = safeDivide(agg.AttributedRevenue, agg.Spend)
	}

	return daily
}

// platformAccumulator acumula volumes e a soma das razões por registro
// para fechar a média no final.
type rateAccumulator struct {
	impressions       int
	clicks            int
	spend             float64
	attributedRevenue float64
	ctrSum            float64
	cpcSum            float64
	roasSum           float64
	count             int
}

func (a *rateAccumulator) add(r *domain.MarketingRecord) {
	a.impressions += r.Impressions
	a.clicks += r.Clicks
	a.spend += r.Spend
	a.attributedRevenue += r.AttributedRevenue
	a.ctrSum += r.CTR
	a.cpcSum += r.CPC
	a.roasSum += r.ROAS
	a.count++
}

// summarizeByPlatform agrupa por plataforma na ordem de primeira
// ocorrência da chave.
func summarizeByPlatform(records []*domain.MarketingRecord) []*domain.PlatformSummary {
	accumulators := make(map[string]*rateAccumulator)
	order := make([]string, 0)

	for _, r := range records {
		acc, ok := accumulators[r.Platform]
		if !ok {
			acc = &rateAccumulator{}
			accumulators[r.Platform] = acc
			order = append(order, r.Platform)
		}
		acc.add(r)
	}

	summaries := make([]*domain.PlatformSummary, 0, len(order))
	for _, platform := range order {
		acc := accumulators[platform]
		summaries = append(summaries, &domain.PlatformSummary{
			Platform:          platform,
			Impressions:       acc.impressions,
			Clicks:            acc.clicks,
			Spend:             acc.spend,
			AttributedRevenue: acc.attributedRevenue,
			CTR:               safeDivide(acc.ctrSum, float64(acc.count)),
			CPC:               safeDivide(acc.cpcSum, float64(acc.count)),
			ROAS:              safeDivide(acc.roasSum, float64(acc.count)),
		})
	}

	return summaries
}

// summarizeByTactic agrupa por tática com a mesma regra do rollup por
// plataforma.
func summarizeByTactic(records []*domain.MarketingRecord) []*domain.TacticSummary {
	accumulators := make(map[string]*rateAccumulator)
	order := make([]string, 0)

	for _, r := range records {
		acc, ok := accumulators[r.Tactic]
		if !ok {
			acc = &rateAccumulator{}
			accumulators[r.Tactic] = acc
			order = append(order, r.Tactic)
		}
		acc.add(r)
	}

	summaries := make([]*domain.TacticSummary, 0, len(order))
	for _, tactic := range order {
		acc := accumulators[tactic]
		summaries = append(summaries, &domain.TacticSummary{
			Tactic:            tactic,
			Impressions:       acc.impressions,
			Clicks:            acc.clicks,
			Spend:             acc.spend,
			AttributedRevenue: acc.attributedRevenue,
			CTR:               safeDivide(acc.ctrSum, float64(acc.count)),
			CPC:               safeDivide(acc.cpcSum, float64(acc.count)),
			ROAS:              safeDivide(acc.roasSum, float64(acc.count)),
		})
	}

	return summaries
}
