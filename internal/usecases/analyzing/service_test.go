package analyzing_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func fixtureDatasets() *domain.Datasets {
	day1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	return &domain.Datasets{
		Platforms: []domain.PlatformTable{
			{
				Platform: "Facebook",
				Records: []*domain.MarketingRecord{
					{Date: day1, Campaign: "c1", Tactic: "retargeting", State: "NY", Impressions: 1000, Clicks: 10, Spend: 100, AttributedRevenue: 200},
					{Date: day2, Campaign: "c1", Tactic: "retargeting", State: "NY", Impressions: 2000, Clicks: 40, Spend: 300, AttributedRevenue: 300},
				},
			},
			{
				Platform: "Google",
				Records: []*domain.MarketingRecord{
					{Date: day1, Campaign: "c2", Tactic: "prospecting", State: "CA", Impressions: 500, Clicks: 5, Spend: 50, AttributedRevenue: 25},
				},
			},
		},
		Business: []*domain.BusinessRecord{
			{Date: day1, TotalRevenue: 1000, GrossProfit: 400, Orders: 20, NewCustomers: 5},
			{Date: day2, TotalRevenue: 2000, GrossProfit: 900, Orders: 40, NewCustomers: 8},
		},
	}
}

func TestService_Analyze(t *testing.T) {
	t.Run("Pipeline completo sobre um conjunto pequeno", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		loader := mocks.NewMockDatasetLoader(ctrl)
		loader.EXPECT().Load().Return(fixtureDatasets(), nil)

		service := analyzing.NewService(loader)

		result, err := service.Analyze()
		require.NoError(t, err)

		// Normalização: plataformas concatenadas na ordem das fontes
		require.Len(t, result.Marketing, 3)
		assert.Equal(t, "Facebook", result.Marketing[0].Platform)
		assert.Equal(t, "Google", result.Marketing[2].Platform)

		// Métricas derivadas presentes nos registros
		assert.Equal(t, 2.0, result.Marketing[0].ROAS)

		// Rollups
		require.Len(t, result.Daily, 2)
		require.Len(t, result.Platforms, 2)
		require.Len(t, result.Tactics, 2)

		// Join: as duas datas existem dos dois lados
		require.Len(t, result.Combined, 2)

		// Insights
		assert.Equal(t, 450.0, result.Insights.Overview.TotalSpend)
		assert.Equal(t, 525.0, result.Insights.Overview.TotalAttributedRevenue)
		assert.Equal(t, 3000.0, result.Insights.Overview.TotalBusinessRevenue)
	})

	t.Run("Mesma entrada produz resultado idêntico", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		loader := mocks.NewMockDatasetLoader(ctrl)
		loader.EXPECT().Load().Return(fixtureDatasets(), nil).Times(2)

		service := analyzing.NewService(loader)

		first, err := service.Analyze()
		require.NoError(t, err)

		second, err := service.Analyze()
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("Falha de carga é fatal e não produz resultado parcial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		loader := mocks.NewMockDatasetLoader(ctrl)
		loader.EXPECT().Load().Return(nil, errors.New("fonte corrompida"))

		service := analyzing.NewService(loader)

		result, err := service.Analyze()
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
