package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/internal/config"
	"github.com/vfg2006/marketing-intelligence-api/internal/metrics"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing"
)

const refreshJobName = "snapshot_refresh"

// SnapshotRefreshConfig representa a configuração do agendador de
// atualização dos snapshots
type SnapshotRefreshConfig struct {
	CronSchedule   string
	RefreshEnabled bool
}

// SnapshotRefreshService gerencia o agendamento e execução da
// atualização dos snapshots processados. O runner memoizado decide se o
// pipeline precisa rodar de novo; os snapshots só são regravados quando
// as entradas mudaram desde a última gravação.
type SnapshotRefreshService struct {
	scheduler              *gocron.Scheduler
	config                 SnapshotRefreshConfig
	runner                 analyzing.Runner
	writer                 analyzing.SnapshotWriter
	metrics                *metrics.PipelineMetrics
	refreshRunning         bool
	refreshedOnce          bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

// NewSnapshotRefreshService cria uma nova instância do serviço de
// atualização dos snapshots
func NewSnapshotRefreshService(
	runner analyzing.Runner,
	writer analyzing.SnapshotWriter,
	pipelineMetrics *metrics.PipelineMetrics,
	appConfig *config.Config,
) *SnapshotRefreshService {
	// Criar a configuração com base na config global
	refreshConfig := SnapshotRefreshConfig{
		CronSchedule:   appConfig.SnapshotRefresh.CronSchedule,
		RefreshEnabled: appConfig.SnapshotRefresh.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de atualização de snapshots carregada")

	return &SnapshotRefreshService{
		scheduler:      scheduler,
		config:         refreshConfig,
		runner:         runner,
		writer:         writer,
		metrics:        pipelineMetrics,
		refreshRunning: false,
	}
}

// Start inicia o agendador
func (s *SnapshotRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Atualização agendada de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de snapshots")

	// Agendar a atualização dos snapshots
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de snapshots: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshSnapshots executa o pipeline e regrava os snapshots quando as
// entradas mudaram
func (s *SnapshotRefreshService) refreshSnapshots() {
	startTime := time.Now()

	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização de snapshots já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = startTime
	alreadyRefreshed := s.refreshedOnce
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização dos snapshots processados")

	result, cached, err := s.runner.Run()
	if err != nil {
		s.metrics.IncFailure(refreshJobName)
		logrus.WithError(err).Error("Erro ao executar o pipeline de análise")
		return
	}

	if cached {
		s.metrics.IncCacheHit(refreshJobName)
	}

	// Entradas inalteradas e snapshots já gravados: nada a fazer
	if cached && alreadyRefreshed {
		logrus.Info("Entradas inalteradas desde a última gravação, snapshots mantidos")
		s.metrics.IncSuccess(refreshJobName)
		s.markRefreshCompleted(false)
		return
	}

	if err := s.writer.WriteAll(result); err != nil {
		s.metrics.IncFailure(refreshJobName)
		logrus.WithError(err).Error("Erro ao gravar os snapshots processados")
		return
	}

	duration := time.Since(startTime)
	s.metrics.ObserveDuration(refreshJobName, duration)
	s.metrics.IncSuccess(refreshJobName)

	logrus.WithFields(logrus.Fields{
		"duration":      duration.String(),
		"cached":        cached,
		"combined_days": len(result.Combined),
	}).Info("Atualização dos snapshots concluída")

	s.markRefreshCompleted(true)
}

// markRefreshCompleted registra o fim de um ciclo sob o mutex, já que
// GetStatus lê esses campos de outras goroutines.
func (s *SnapshotRefreshService) markRefreshCompleted(wrote bool) {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	if wrote {
		s.refreshedOnce = true
	}
	s.lastRefreshCompletedAt = time.Now()
}

// TriggerManualRefresh inicia manualmente uma atualização dos snapshots
func (s *SnapshotRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando atualização manual dos snapshots")
	go s.refreshSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":           s.config.RefreshEnabled,
		"refresh_cron":              s.config.CronSchedule,
		"refresh_running":           s.refreshRunning,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
	}
}
