package snapshot

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Nomes dos arquivos de saída consumidos pelo dashboard.
const (
	MarketingFile = "processed_marketing_data.csv"
	BusinessFile  = "processed_business_data.csv"
	CombinedFile  = "combined_daily_data.csv"
	PlatformFile  = "platform_summary.csv"
	TacticFile    = "tactic_summary.csv"
	InsightsFile  = "insights.json"
)

// Store persiste os snapshots tabulares e o documento de insights em
// arquivos planos no diretório de saída. Os cabeçalhos das colunas são
// contrato com a camada de apresentação.
type Store struct {
	dir string
}

// NewStore cria o store para o diretório informado.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir retorna o diretório de saída configurado.
func (s *Store) Dir() string { return s.dir }

// WriteAll grava os cinco snapshots tabulares e o insights.json.
func (s *Store) WriteAll(result *domain.AnalysisResult) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar o diretório de snapshots %q", s.dir)
	}

	if err := s.writeMarketing(result.Marketing); err != nil {
		return err
	}
	if err := s.writeBusiness(result.Business); err != nil {
		return err
	}
	if err := s.writeCombined(result.Combined); err != nil {
		return err
	}
	if err := s.writePlatforms(result.Platforms); err != nil {
		return err
	}
	if err := s.writeTactics(result.Tactics); err != nil {
		return err
	}
	if err := s.writeInsights(result.Insights); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"dir":               s.dir,
		"marketing_records": len(result.Marketing),
		"combined_days":     len(result.Combined),
	}).Info("Snapshots gravados com sucesso")

	return nil
}

func (s *Store) writeMarketing(records []*domain.MarketingRecord) error {
	header := []string{
		"date", "platform", "campaign", "tactic", "state",
		"impression", "clicks", "spend", "attributed revenue",
		"ctr", "cpc", "cpm", "roas", "conversion_rate",
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Date.Format(time.DateOnly),
			r.Platform,
			r.Campaign,
			r.Tactic,
			r.State,
			strconv.Itoa(r.Impressions),
			strconv.Itoa(r.Clicks),
			formatFloat(r.Spend),
			formatFloat(r.AttributedRevenue),
			formatFloat(r.CTR),
			formatFloat(r.CPC),
			formatFloat(r.CPM),
			formatFloat(r.ROAS),
			formatFloat(r.ConversionRate),
		})
	}

	return s.writeCSV(MarketingFile, header, rows)
}

func (s *Store) writeBusiness(records []*domain.BusinessRecord) error {
	header := []string{"date", "total revenue", "gross profit", "# of orders", "new customers"}

	rows := make([][]string, 0, len(records))
	for _, b := range records {
		rows = append(rows, []string{
			b.Date.Format(time.DateOnly),
			formatFloat(b.TotalRevenue),
			formatFloat(b.GrossProfit),
			strconv.Itoa(b.Orders),
			strconv.Itoa(b.NewCustomers),
		})
	}

	return s.writeCSV(BusinessFile, header, rows)
}

func (s *Store) writeCombined(records []*domain.CombinedRecord) error {
	header := []string{
		"date", "impression", "clicks", "spend", "attributed revenue",
		"ctr", "cpc", "roas",
		"total revenue", "gross profit", "# of orders", "new customers",
		"avg_order_value", "new_customer_ratio", "gross_margin",
		"marketing_efficiency", "customer_acquisition_cost",
	}

	rows := make([][]string, 0, len(records))
	for _, c := range records {
		rows = append(rows, []string{
			c.Date.Format(time.DateOnly),
			strconv.Itoa(c.Impressions),
			strconv.Itoa(c.Clicks),
			formatFloat(c.Spend),
			formatFloat(c.AttributedRevenue),
			formatFloat(c.CTR),
			formatFloat(c.CPC),
			formatFloat(c.ROAS),
			formatFloat(c.TotalRevenue),
			formatFloat(c.GrossProfit),
			strconv.Itoa(c.Orders),
			strconv.Itoa(c.NewCustomers),
			formatFloat(c.AvgOrderValue),
			formatFloat(c.NewCustomerRatio),
			formatFloat(c.GrossMargin),
			formatFloat(c.MarketingEfficiency),
			formatFloat(c.CustomerAcquisitionCost),
		})
	}

	return s.writeCSV(CombinedFile, header, rows)
}

func (s *Store) writePlatforms(summaries []*domain.PlatformSummary) error {
	header := []string{
		"platform", "impression", "clicks", "spend", "attributed revenue",
		"ctr", "cpc", "roas",
	}

	rows := make([][]string, 0, len(summaries))
	for _, p := range summaries {
		rows = append(rows, []string{
			p.Platform,
			strconv.Itoa(p.Impressions),
			strconv.Itoa(p.Clicks),
			formatFloat(p.Spend),
			formatFloat(p.AttributedRevenue),
			formatFloat(p.CTR),
			formatFloat(p.CPC),
			formatFloat(p.ROAS),
		})
	}

	return s.writeCSV(PlatformFile, header, rows)
}

func (s *Store) writeTactics(summaries []*domain.TacticSummary) error {
	header := []string{
		"tactic", "impression", "clicks", "spend", "attributed revenue",
		"ctr", "cpc", "roas",
	}

	rows := make([][]string, 0, len(summaries))
	for _, t := range summaries {
		rows = append(rows, []string{
			t.Tactic,
			strconv.Itoa(t.Impressions),
			strconv.Itoa(t.Clicks),
			formatFloat(t.Spend),
			formatFloat(t.AttributedRevenue),
			formatFloat(t.CTR),
			formatFloat(t.CPC),
			formatFloat(t.ROAS),
		})
	}

	return s.writeCSV(TacticFile, header, rows)
}

func (s *Store) writeInsights(insights *domain.InsightsSummary) error {
	buf, err := json.MarshalIndent(insights, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar o documento de insights")
	}

	path := filepath.Join(s.dir, InsightsFile)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return errors.Wrapf(err, "erro ao gravar %q", path)
	}

	return nil
}

func (s *Store) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(s.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar %q", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "erro ao gravar o cabeçalho de %q", path)
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "erro ao gravar linha de %q", path)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrapf(err, "erro ao finalizar %q", path)
	}

	return nil
}

// formatFloat serializa sem arredondamento para manter a paridade
// bit a bit entre execuções com a mesma entrada.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
