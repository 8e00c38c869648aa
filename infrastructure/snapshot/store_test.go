package snapshot

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

func fixtureResult() *domain.AnalysisResult {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	return &domain.AnalysisResult{
		Marketing: []*domain.MarketingRecord{
			{
				Date: date, Platform: "Facebook", Campaign: "c1", Tactic: "retargeting", State: "NY",
				Impressions: 1000, Clicks: 10, Spend: 100.5, AttributedRevenue: 200,
				CTR: 1, CPC: 10.05, CPM: 100.5, ROAS: 1.99, ConversionRate: 2000,
			},
		},
		Business: []*domain.BusinessRecord{
			{Date: date, TotalRevenue: 1000, GrossProfit: 400, Orders: 20, NewCustomers: 5},
		},
		Combined: []*domain.CombinedRecord{
			{Date: date, Impressions: 1000, Clicks: 10, Spend: 100.5, AttributedRevenue: 200},
		},
		Platforms: []*domain.PlatformSummary{
			{Platform: "Facebook", Impressions: 1000, Clicks: 10, Spend: 100.5, AttributedRevenue: 200},
		},
		Tactics: []*domain.TacticSummary{
			{Tactic: "retargeting", Impressions: 1000, Clicks: 10, Spend: 100.5, AttributedRevenue: 200},
		},
		Insights: &domain.InsightsSummary{
			Overview: domain.Overview{
				TotalSpend:  100.5,
				OverallROAS: 1.99,
				DateRange:   domain.DateRange{Start: "2025-06-01", End: "2025-06-01"},
			},
		},
	}
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestStore_WriteAll(t *testing.T) {
	t.Run("Grava os cinco CSVs e o insights.json", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "processed")
		store := NewStore(dir)

		require.NoError(t, store.WriteAll(fixtureResult()))

		for _, name := range []string{
			MarketingFile, BusinessFile, CombinedFile, PlatformFile, TacticFile, InsightsFile,
		} {
			_, err := os.Stat(filepath.Join(dir, name))
			assert.NoError(t, err, name)
		}
	})

	t.Run("Cabeçalhos com a grafia exata das colunas", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(dir)
		require.NoError(t, store.WriteAll(fixtureResult()))

		marketing := readCSVFile(t, filepath.Join(dir, MarketingFile))
		assert.Equal(t, []string{
			"date", "platform", "campaign", "tactic", "state",
			"impression", "clicks", "spend", "attributed revenue",
			"ctr", "cpc", "cpm", "roas", "conversion_rate",
		}, marketing[0])

		business := readCSVFile(t, filepath.Join(dir, BusinessFile))
		assert.Equal(t, []string{
			"date", "total revenue", "gross profit", "# of orders", "new customers",
		}, business[0])

		combined := readCSVFile(t, filepath.Join(dir, CombinedFile))
		assert.Equal(t, "avg_order_value", combined[0][12])
		assert.Equal(t, "customer_acquisition_cost", combined[0][16])
	})

	t.Run("Valores serializados sem arredondamento", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(dir)
		require.NoError(t, store.WriteAll(fixtureResult()))

		marketing := readCSVFile(t, filepath.Join(dir, MarketingFile))
		require.Len(t, marketing, 2)
		row := marketing[1]
		assert.Equal(t, "2025-06-01", row[0])
		assert.Equal(t, "Facebook", row[1])
		assert.Equal(t, "100.5", row[7])
		assert.Equal(t, "1.99", row[12])
	})

	t.Run("insights.json contém as seções do documento", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(dir)
		require.NoError(t, store.WriteAll(fixtureResult()))

		buf, err := os.ReadFile(filepath.Join(dir, InsightsFile))
		require.NoError(t, err)

		var doc map[string]jsoniter.RawMessage
		require.NoError(t, jsoniter.Unmarshal(buf, &doc))

		for _, section := range []string{
			"overview", "platforms", "tactics", "performance_days", "weekly_trends",
		} {
			assert.Contains(t, doc, section)
		}
	})
}
