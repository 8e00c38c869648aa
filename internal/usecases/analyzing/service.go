package analyzing

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/pkg/utils"
)

// Service orquestra o pipeline de preparação de dados: carga,
// normalização, cálculo de métricas, agregação, join com negócio e
// sumarização de insights. A execução é síncrona e linear; cada
// estágio termina antes do próximo começar e nada realimenta estágio
// anterior. Para entradas idênticas a saída é bit-idêntica.
type Service struct {
	loader DatasetLoader
}

// NewService cria o serviço de análise sobre o loader informado.
func NewService(loader DatasetLoader) *Service {
	return &Service{loader: loader}
}

// Analyze executa o pipeline completo e devolve o snapshot de saída.
// Falhas de carga (esquema, fonte vazia, valor inválido) são fatais e
// não produzem saída parcial.
func (s *Service) Analyze() (*domain.AnalysisResult, error) {
	runID, err := utils.GenerateRunID()
	if err != nil {
		runID = "unknown"
	}
	logger := logrus.WithField("run_id", runID)

	datasets, err := s.loader.Load()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar os conjuntos de dados de entrada")
	}

	marketing := normalizeMarketing(datasets.Platforms)
	logger.WithFields(logrus.Fields{
		"platforms":         len(datasets.Platforms),
		"marketing_records": len(marketing),
		"business_records":  len(datasets.Business),
	}).Info("Dados de marketing normalizados")

	calculateMetrics(marketing)

	daily := aggregateDaily(marketing)
	platforms := summarizeByPlatform(marketing)
	tactics := summarizeByTactic(marketing)
	logger.WithFields(logrus.Fields{
		"days":      len(daily),
		"platforms": len(platforms),
		"tactics":   len(tactics),
	}).Info("Rollups diário, por plataforma e por tática calculados")

	combined, mismatch := mergeDailyWithBusiness(daily, datasets.Business)
	if mismatch != nil {
		logger.WithFields(logrus.Fields{
			"marketing_only_dates": mismatch.MarketingOnly,
			"business_only_dates":  mismatch.BusinessOnly,
		}).Warn("Datas sem correspondência entre marketing e negócio foram descartadas no join")
	}

	insights := buildInsights(marketing, datasets.Business, combined, platforms, tactics)

	logger.WithFields(logrus.Fields{
		"combined_days": len(combined),
		"overall_roas":  insights.Overview.OverallROAS,
	}).Info("Pipeline de análise concluído")

	return &domain.AnalysisResult{
		Marketing: marketing,
		Business:  datasets.Business,
		Daily:     daily,
		Platforms: platforms,
		Tactics:   tactics,
		Combined:  combined,
		Insights:  insights,
	}, nil
}
