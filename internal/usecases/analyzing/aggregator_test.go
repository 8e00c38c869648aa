package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateDaily(t *testing.T) {
	t.Run("Razão-de-somas: ctr, cpc e roas recalculados sobre os volumes somados", func(t *testing.T) {
		records := []*domain.MarketingRecord{
			{Date: day(1), Platform: "Facebook", Impressions: 1000, Clicks: 10, Spend: 100, AttributedRevenue: 200},
			{Date: day(1), Platform: "Google", Impressions: 3000, Clicks: 30, Spend: 300, AttributedRevenue: 300},
		}
		calculateMetrics(records)

		daily := aggregateDaily(records)

		assert.Len(t, daily, 1)
		agg := daily[0]
		assert.Equal(t, 4000, agg.Impressions)
		assert.Equal(t, 40, agg.Clicks)
		assert.Equal(t, 400.0, agg.Spend)
		assert.Equal(t, 500.0, agg.AttributedRevenue)
		assert.Equal(t, 1.0, agg.CTR)   // 40/4000 * 100
		assert.Equal(t, 10.0, agg.CPC)  // 400/40
		assert.Equal(t, 1.25, agg.ROAS) // 500/400, razão-de-somas
	})

	t.Run("Ordem de primeira ocorrência das datas é preservada", func(t *testing.T) {
		records := []*domain.MarketingRecord{
			{Date: day(3)},
			{Date: day(1)},
			{Date: day(3)},
			{Date: day(2)},
		}

		daily := aggregateDaily(records)

		assert.Len(t, daily, 3)
		assert.Equal(t, day(3), daily[0].Date)
		assert.Equal(t, day(1), daily[1].Date)
		assert.Equal(t, day(2), daily[2].Date)
	})

	t.Run("Dia sem spend zera o roas diário", func(t *testing.T) {
		records := []*domain.MarketingRecord{
			{Date: day(1), Impressions: 100, Clicks: 5, Spend: 0, AttributedRevenue: 50},
		}
		calculateMetrics(records)

		daily := aggregateDaily(records)

		assert.Equal(t, 0.0, daily[0].ROAS)
	})
}

func TestSummarizeByPlatform(t *testing.T) {
	t.Run("Média-de-razões diverge da razão-de-somas quando o spend varia", func(t *testing.T) {
		records := []*domain.MarketingRecord{
			{Date: day(1), Platform: "Facebook", Impressions: 1000, Clicks: 10, Spend: 100, AttributedRevenue: 200},
			{Date: day(2), Platform: "Facebook", Impressions: 3000, Clicks: 30, Spend: 300, AttributedRevenue: 300},
		}
		calculateMetrics(records)

		summaries := summarizeByPlatform(records)

		assert.Len(t, summaries, 1)
		s := summaries[0]
		assert.Equal(t, "Facebook", s.Platform)
		assert.Equal(t, 4000, s.Impressions)
		assert.Equal(t, 400.0, s.Spend)
		assert.Equal(t, 500.0, s.AttributedRevenue)

		// roas por registro: 200/100=2.0 e 300/300=1.0; média = 1.5.
		// A razão-de-somas daria 500/400 = 1.25. A divergência é
		// intencional e observável no relatório.
		assert.Equal(t, 1.5, s.ROAS)
		assert.InDelta(t, 1.0, s.CTR, 1e-9)
		assert.Equal(t, 10.0, s.CPC)
	})

	t.Run("Plataformas saem na ordem de primeira ocorrência", func(t *testing.T) {
		records := []*domain.MarketingRecord{
			{Date: day(1), Platform: "TikTok"},
			{Date: day(1), Platform: "Facebook"},
			{Date: day(2), Platform: "TikTok"},
		}

		summaries := summarizeByPlatform(records)

		assert.Len(t, summaries, 2)
		assert.Equal(t, "TikTok", summaries[0].Platform)
		assert.Equal(t, "Facebook", summaries[1].Platform)
	})
}

func TestSummarizeByTactic(t *testing.T) {
	t.Run("Agrupa por tática com média das razões por registro", func(t *testing.T) {
		records := []*domain.MarketingRecord{
			{Date: day(1), Platform: "Facebook", Tactic: "retargeting", Impressions: 500, Clicks: 25, Spend: 50, AttributedRevenue: 100},
			{Date: day(1), Platform: "Google", Tactic: "retargeting", Impressions: 1500, Clicks: 15, Spend: 150, AttributedRevenue: 150},
			{Date: day(1), Platform: "Google", Tactic: "prospecting", Impressions: 2000, Clicks: 20, Spend: 80, AttributedRevenue: 40},
		}
		calculateMetrics(records)

		summaries := summarizeByTactic(records)

		assert.Len(t, summaries, 2)

		retargeting := summaries[0]
		assert.Equal(t, "retargeting", retargeting.Tactic)
		assert.Equal(t, 2000, retargeting.Impressions)
		assert.Equal(t, 200.0, retargeting.Spend)
		assert.Equal(t, 1.5, retargeting.ROAS) // média de 2.0 e 1.0

		prospecting := summaries[1]
		assert.Equal(t, "prospecting", prospecting.Tactic)
		assert.Equal(t, 0.5, prospecting.ROAS)
	})
}
