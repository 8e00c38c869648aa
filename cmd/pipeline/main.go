package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/dataset"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/snapshot"
	"github.com/vfg2006/marketing-intelligence-api/internal/config"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-intelligence-api/pkg/utils"
)

// Execução única do pipeline: lê as fontes, deriva métricas e grava os
// snapshots processados. Pensado para rodar em lote, antes do dashboard.
func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	loader := dataset.NewLoader(
		[]dataset.Source{
			dataset.NewCSVSource("Facebook", cfg.Datasets.FacebookPath),
			dataset.NewCSVSource("Google", cfg.Datasets.GooglePath),
			dataset.NewCSVSource("TikTok", cfg.Datasets.TikTokPath),
		},
		dataset.NewCSVSource("business", cfg.Datasets.BusinessPath),
	)

	analyzer := analyzing.NewService(loader)

	result, err := analyzer.Analyze()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao executar o pipeline de análise")
	}

	store := snapshot.NewStore(cfg.Snapshot.OutputDir)
	if err := store.WriteAll(result); err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar os snapshots processados")
	}

	logrus.WithFields(logrus.Fields{
		"output_dir":        store.Dir(),
		"marketing_records": len(result.Marketing),
		"business_records":  len(result.Business),
		"combined_days":     len(result.Combined),
		"overall_roas":      result.Insights.Overview.OverallROAS,
	}).Info("Pipeline concluído e snapshots gravados")

	logrus.Debug(utils.PrettyJson(result.Insights.Overview))
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
