package dataset

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/pkg/utils"
)

// Colunas obrigatórias das fontes. A grafia (incluindo espaços e o "#")
// é contrato com os arquivos de entrada e com o dashboard.
var (
	marketingColumns = []string{
		"date", "campaign", "tactic", "state",
		"impression", "clicks", "spend", "attributed revenue",
	}
	businessColumns = []string{
		"date", "total revenue", "gross profit", "# of orders", "new customers",
	}
)

// Loader lê as fontes de marketing (uma por plataforma) e a fonte de
// negócio, validando o esquema e tipando as colunas. Qualquer falha é
// fatal para a execução: não existe modo de sucesso parcial.
type Loader struct {
	platforms []Source
	business  Source
}

// NewLoader cria um Loader para as fontes informadas. A ordem das
// fontes de plataforma é preservada na normalização, o que mantém o
// pipeline determinístico para entradas idênticas.
func NewLoader(platforms []Source, business Source) *Loader {
	return &Loader{platforms: platforms, business: business}
}

// Load lê e valida todas as fontes, devolvendo os registros tipados
// com as datas interpretadas como datas de calendário ISO.
func (l *Loader) Load() (*domain.Datasets, error) {
	datasets := &domain.Datasets{
		Platforms: make([]domain.PlatformTable, 0, len(l.platforms)),
	}

	for _, src := range l.platforms {
		table, err := readAndValidate(src, marketingColumns)
		if err != nil {
			return nil, err
		}

		records, err := parseMarketingTable(table)
		if err != nil {
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"source": src.Name(),
			"rows":   len(records),
		}).Info("Fonte de marketing carregada")

		datasets.Platforms = append(datasets.Platforms, domain.PlatformTable{
			Platform: src.Name(),
			Records:  records,
		})
	}

	table, err := readAndValidate(l.business, businessColumns)
	if err != nil {
		return nil, err
	}

	business, err := parseBusinessTable(table)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"source": l.business.Name(),
		"rows":   len(business),
	}).Info("Fonte de negócio carregada")

	datasets.Business = business

	return datasets, nil
}

// readAndValidate lê a fonte e garante a presença das colunas
// obrigatórias e de pelo menos uma linha.
func readAndValidate(src Source, required []string) (*Table, error) {
	table, err := src.Read()
	if err != nil {
		return nil, err
	}

	for _, column := range required {
		if !table.HasColumn(column) {
			return nil, &SchemaError{Source: table.Source, Column: column}
		}
	}

	if len(table.Rows) == 0 {
		return nil, &EmptyDatasetError{Source: table.Source}
	}

	return table, nil
}

func parseMarketingTable(table *Table) ([]*domain.MarketingRecord, error) {
	records := make([]*domain.MarketingRecord, 0, len(table.Rows))

	for i, row := range table.Rows {
		date, err := utils.ParseDate(row["date"])
		if err != nil {
			return nil, errors.Wrapf(err, "fonte %q: linha %d: data inválida %q", table.Source, i+1, row["date"])
		}

		impressions, err := parseInt(table.Source, i, "impression", row["impression"])
		if err != nil {
			return nil, err
		}

		clicks, err := parseInt(table.Source, i, "clicks", row["clicks"])
		if err != nil {
			return nil, err
		}

		spend, err := parseFloat(table.Source, i, "spend", row["spend"])
		if err != nil {
			return nil, err
		}

		revenue, err := parseFloat(table.Source, i, "attributed revenue", row["attributed revenue"])
		if err != nil {
			return nil, err
		}

		records = append(records, &domain.MarketingRecord{
			Date:              date,
			Campaign:          row["campaign"],
			Tactic:            row["tactic"],
			State:             row["state"],
			Impressions:       impressions,
			Clicks:            clicks,
			Spend:             spend,
			AttributedRevenue: revenue,
		})
	}

	return records, nil
}

func parseBusinessTable(table *Table) ([]*domain.BusinessRecord, error) {
	records := make([]*domain.BusinessRecord, 0, len(table.Rows))

	for i, row := range table.Rows {
		date, err := utils.ParseDate(row["date"])
		if err != nil {
			return nil, errors.Wrapf(err, "fonte %q: linha %d: data inválida %q", table.Source, i+1, row["date"])
		}

		totalRevenue, err := parseFloat(table.Source, i, "total revenue", row["total revenue"])
		if err != nil {
			return nil, err
		}

		grossProfit, err := parseFloat(table.Source, i, "gross profit", row["gross profit"])
		if err != nil {
			return nil, err
		}

		orders, err := parseInt(table.Source, i, "# of orders", row["# of orders"])
		if err != nil {
			return nil, err
		}

		newCustomers, err := parseInt(table.Source, i, "new customers", row["new customers"])
		if err != nil {
			return nil, err
		}

		records = append(records, &domain.BusinessRecord{
			Date:         date,
			TotalRevenue: totalRevenue,
			GrossProfit:  grossProfit,
			Orders:       orders,
			NewCustomers: newCustomers,
		})
	}

	return records, nil
}

func parseInt(source string, row int, column, value string) (int, error) {
	if value == "" {
		return 0, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "fonte %q: linha %d: valor inválido para %q", source, row+1, column)
	}

	return parsed, nil
}

func parseFloat(source string, row int, column, value string) (float64, error) {
	if value == "" {
		return 0, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "fonte %q: linha %d: valor inválido para %q", source, row+1, column)
	}

	return parsed, nil
}
