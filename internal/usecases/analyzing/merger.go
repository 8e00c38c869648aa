package analyzing

import (
	"fmt"
	"time"

	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

// JoinMismatchError descreve datas descartadas pelo join interno entre
// o agregado diário de marketing e os registros de negócio. Não é
// fatal: as linhas sem correspondência são descartadas em silêncio e o
// pipeline segue; o chamador decide registrar o aviso.
type JoinMismatchError struct {
	MarketingOnly int
	BusinessOnly  int
}

func (e *JoinMismatchError) Error() string {
	return fmt.Sprintf(
		"join marketing × negócio descartou %d data(s) só de marketing e %d só de negócio",
		e.MarketingOnly, e.BusinessOnly,
	)
}

// mergeDailyWithBusiness faz o join interno por igualdade exata de data
// e deriva as métricas cruzadas. O resultado contém exatamente as datas
// presentes nos dois lados, na ordem do agregado diário. O segundo
// retorno é nil quando os intervalos se cobrem por completo.
func mergeDailyWithBusiness(
	daily []*domain.DailyAggregate,
	business []*domain.BusinessRecord,
) ([]*domain.CombinedRecord, *JoinMismatchError) {
	businessByDate := make(map[time.Time]*domain.BusinessRecord, len(business))
	for _, b := range business {
		if _, exists := businessByDate[b.Date]; !exists {
			businessByDate[b.Date] = b
		}
	}

	combined := make([]*domain.CombinedRecord, 0, len(daily))
	matchedDates := make(map[time.Time]bool, len(daily))

	for _, d := range daily {
		b, ok := businessByDate[d.Date]
		if !ok {
			continue
		}
		matchedDates[d.Date] = true

		record := &domain.CombinedRecord{
			Date:              d.Date,
			Impressions:       d.Impressions,
			Clicks:            d.Clicks,
			Spend:             d.Spend,
			AttributedRevenue: d.AttributedRevenue,
			CTR:               d.CTR,
			CPC:               d.CPC,
			ROAS:              d.ROAS,
			TotalRevenue:      b.TotalRevenue,
			GrossProfit:       b.GrossProfit,
			Orders:            b.Orders,
			NewCustomers:      b.NewCustomers,
		}

		record.AvgOrderValue = safeDivide(b.TotalRevenue, float64(b.Orders))
		record.NewCustomerRatio = safeDivide(float64(b.NewCustomers), float64(b.Orders))
		record.GrossMargin = safeDivide(b.GrossProfit, b.TotalRevenue) * 100
		record.MarketingEfficiency = safeDivide(d.AttributedRevenue, d.Spend)
		record.CustomerAcquisitionCost = safeDivide(d.Spend, float64(b.NewCustomers))

		combined = append(combined, record)
	}

	marketingOnly := len(daily) - len(combined)
	businessOnly := 0
	for date := range businessByDate {
		if !matchedDates[date] {
			businessOnly++
		}
	}

	if marketingOnly > 0 || businessOnly > 0 {
		return combined, &JoinMismatchError{
			MarketingOnly: marketingOnly,
			BusinessOnly:  businessOnly,
		}
	}

	return combined, nil
}
