package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PipelineMetrics registra a telemetria das execuções do pipeline de
// análise. Todos os métodos toleram receiver nulo, então o chamador
// pode operar sem métricas em testes.
type PipelineMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	cacheHit *prometheus.CounterVec
}

// NewPipelineMetrics registra as métricas no registerer informado.
func NewPipelineMetrics(reg prometheus.Registerer) *PipelineMetrics {
	if reg == nil {
		return &PipelineMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pipeline_run_duration_seconds",
		Help:    "Duração das execuções do pipeline em segundos.",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pipeline_run_success",
		Help: "Execuções do pipeline concluídas com sucesso.",
	}, []string{"job"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pipeline_run_failure",
		Help: "Execuções do pipeline que falharam.",
	}, []string{"job"})
	cacheHit := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pipeline_cache_hit",
		Help: "Execuções atendidas pelo resultado memoizado.",
	}, []string{"job"})
	reg.MustRegister(duration, success, failure, cacheHit)
	return &PipelineMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		cacheHit: cacheHit,
	}
}

// ObserveDuration registra a duração de uma execução do job.
func (p *PipelineMetrics) ObserveDuration(job string, duration time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.WithLabelValues(normalizeLabel(job)).Observe(duration.Seconds())
}

// IncSuccess incrementa o contador de sucesso do job.
func (p *PipelineMetrics) IncSuccess(job string) {
	if p == nil || p.success == nil {
		return
	}
	p.success.WithLabelValues(normalizeLabel(job)).Inc()
}

// IncFailure incrementa o contador de falha do job.
func (p *PipelineMetrics) IncFailure(job string) {
	if p == nil || p.failure == nil {
		return
	}
	p.failure.WithLabelValues(normalizeLabel(job)).Inc()
}

// IncCacheHit incrementa o contador de acertos do cache do job.
func (p *PipelineMetrics) IncCacheHit(job string) {
	if p == nil || p.cacheHit == nil {
		return
	}
	p.cacheHit.WithLabelValues(normalizeLabel(job)).Inc()
}

func normalizeLabel(job string) string {
	if job == "" {
		return "unknown"
	}
	return job
}
