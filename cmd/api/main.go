package main

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/dataset"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/snapshot"
	"github.com/vfg2006/marketing-intelligence-api/internal/api"
	"github.com/vfg2006/marketing-intelligence-api/internal/config"
	"github.com/vfg2006/marketing-intelligence-api/internal/metrics"
	"github.com/vfg2006/marketing-intelligence-api/internal/scheduler"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Fontes de entrada: uma planilha por plataforma mais a do negócio
	loader := dataset.NewLoader(
		[]dataset.Source{
			dataset.NewCSVSource("Facebook", cfg.Datasets.FacebookPath),
			dataset.NewCSVSource("Google", cfg.Datasets.GooglePath),
			dataset.NewCSVSource("TikTok", cfg.Datasets.TikTokPath),
		},
		dataset.NewCSVSource("business", cfg.Datasets.BusinessPath),
	)

	analyzer := analyzing.NewService(loader)
	fingerprinter := dataset.NewFileFingerprinter(cfg.DatasetPaths()...)
	runner := analyzing.NewCachedRunner(analyzer, fingerprinter)

	store := snapshot.NewStore(cfg.Snapshot.OutputDir)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	pipelineMetrics := metrics.NewPipelineMetrics(registry)

	// Agendador que regrava os snapshots quando as entradas mudam
	refreshService := scheduler.NewSnapshotRefreshService(runner, store, pipelineMetrics, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de snapshots")
	} else {
		logrus.Info("Agendador de atualização de snapshots iniciado com sucesso")
	}

	server, err := api.New(cfg, runner, refreshService, registry)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
