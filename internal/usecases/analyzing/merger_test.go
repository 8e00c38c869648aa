package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

func TestMergeDailyWithBusiness(t *testing.T) {
	t.Run("Join interno mantém apenas as datas presentes nos dois lados", func(t *testing.T) {
		daily := []*domain.DailyAggregate{
			{Date: day(1), Spend: 100, AttributedRevenue: 200},
			{Date: day(2), Spend: 150, AttributedRevenue: 300},
			{Date: day(3), Spend: 80, AttributedRevenue: 40},
		}
		business := []*domain.BusinessRecord{
			{Date: day(2), TotalRevenue: 1000, GrossProfit: 400, Orders: 20, NewCustomers: 5},
			{Date: day(3), TotalRevenue: 500, GrossProfit: 100, Orders: 10, NewCustomers: 2},
			{Date: day(4), TotalRevenue: 700, GrossProfit: 300, Orders: 14, NewCustomers: 3},
		}

		combined, mismatch := mergeDailyWithBusiness(daily, business)

		assert.Len(t, combined, 2)
		assert.Equal(t, day(2), combined[0].Date)
		assert.Equal(t, day(3), combined[1].Date)

		assert.NotNil(t, mismatch)
		assert.Equal(t, 1, mismatch.MarketingOnly) // dia 1
		assert.Equal(t, 1, mismatch.BusinessOnly)  // dia 4
	})

	t.Run("Cobertura completa não gera aviso de descarte", func(t *testing.T) {
		daily := []*domain.DailyAggregate{{Date: day(1)}}
		business := []*domain.BusinessRecord{{Date: day(1)}}

		combined, mismatch := mergeDailyWithBusiness(daily, business)

		assert.Len(t, combined, 1)
		assert.Nil(t, mismatch)
	})

	t.Run("Métricas cruzadas derivadas com política de divisão por zero", func(t *testing.T) {
		daily := []*domain.DailyAggregate{
			{Date: day(1), Spend: 100, AttributedRevenue: 250},
		}
		business := []*domain.BusinessRecord{
			{Date: day(1), TotalRevenue: 1000, GrossProfit: 400, Orders: 20, NewCustomers: 5},
		}

		combined, mismatch := mergeDailyWithBusiness(daily, business)

		assert.Nil(t, mismatch)
		c := combined[0]
		assert.Equal(t, 50.0, c.AvgOrderValue)            // 1000/20
		assert.Equal(t, 0.25, c.NewCustomerRatio)         // 5/20
		assert.Equal(t, 40.0, c.GrossMargin)              // 400/1000 * 100
		assert.Equal(t, 2.5, c.MarketingEfficiency)       // 250/100
		assert.Equal(t, 20.0, c.CustomerAcquisitionCost)  // 100/5
	})

	t.Run("Dia sem pedidos nem clientes novos zera as métricas dependentes", func(t *testing.T) {
		daily := []*domain.DailyAggregate{
			{Date: day(1), Spend: 100, AttributedRevenue: 250},
		}
		business := []*domain.BusinessRecord{
			{Date: day(1), TotalRevenue: 0, GrossProfit: 0, Orders: 0, NewCustomers: 0},
		}

		combined, _ := mergeDailyWithBusiness(daily, business)

		c := combined[0]
		assert.Equal(t, 0.0, c.AvgOrderValue)
		assert.Equal(t, 0.0, c.NewCustomerRatio)
		assert.Equal(t, 0.0, c.GrossMargin)
		assert.Equal(t, 0.0, c.CustomerAcquisitionCost)
	})

	t.Run("Data duplicada no negócio usa a primeira ocorrência", func(t *testing.T) {
		daily := []*domain.DailyAggregate{{Date: day(1), Spend: 10}}
		business := []*domain.BusinessRecord{
			{Date: day(1), TotalRevenue: 100, Orders: 4},
			{Date: day(1), TotalRevenue: 999, Orders: 9},
		}

		combined, mismatch := mergeDailyWithBusiness(daily, business)

		assert.Nil(t, mismatch)
		assert.Equal(t, 100.0, combined[0].TotalRevenue)
	})
}
