package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-intelligence-api/infrastructure/dataset"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-intelligence-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetInsights devolve o documento de insights da última análise.
func GetInsights(runner analyzing.Runner) http.Handler {
	return reportHandler(runner, "insights", func(result *domain.AnalysisResult) any {
		return result.Insights
	})
}

// GetCombinedDaily devolve a série diária combinada de marketing e negócio.
func GetCombinedDaily(runner analyzing.Runner) http.Handler {
	return reportHandler(runner, "combined", func(result *domain.AnalysisResult) any {
		return result.Combined
	})
}

// GetPlatformSummaries devolve os resumos por plataforma.
func GetPlatformSummaries(runner analyzing.Runner) http.Handler {
	return reportHandler(runner, "platforms", func(result *domain.AnalysisResult) any {
		return result.Platforms
	})
}

// GetTacticSummaries devolve os resumos por tática.
func GetTacticSummaries(runner analyzing.Runner) http.Handler {
	return reportHandler(runner, "tactics", func(result *domain.AnalysisResult) any {
		return result.Tactics
	})
}

// GetMarketingRecords devolve os registros de marketing enriquecidos.
func GetMarketingRecords(runner analyzing.Runner) http.Handler {
	return reportHandler(runner, "marketing", func(result *domain.AnalysisResult) any {
		return result.Marketing
	})
}

// GetBusinessRecords devolve os registros diários do negócio.
func GetBusinessRecords(runner analyzing.Runner) http.Handler {
	return reportHandler(runner, "business", func(result *domain.AnalysisResult) any {
		return result.Business
	})
}

// reportHandler executa o pipeline (ou reaproveita o resultado
// memoizado) e serializa a seção selecionada do resultado.
func reportHandler(runner analyzing.Runner, section string, pick func(*domain.AnalysisResult) any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		result, cached, err := runner.Run()
		if err != nil {
			logger.WithFields(log.Fields{
				"section": section,
				"error":   err.Error(),
			}).Error("report: falha ao executar o pipeline de análise")

			writePipelineError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"section": section,
			"cached":  cached,
		}).Info("report: seção do relatório servida")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(pick(result)); err != nil {
			logger.WithError(err).Error("report: erro ao serializar a resposta")
		}
	})
}

// writePipelineError traduz os erros de carga em códigos de API; erros
// de esquema e de fonte vazia são culpa dos dados, o resto é do servidor.
func writePipelineError(w http.ResponseWriter, err error) {
	var schemaErr *dataset.SchemaError
	if errors.As(err, &schemaErr) {
		apiErrors.WriteError(w, apiErrors.ErrMissingColumn, schemaErr.Error(), map[string]string{
			"source": schemaErr.Source,
			"column": schemaErr.Column,
		})
		return
	}

	var emptyErr *dataset.EmptyDatasetError
	if errors.As(err, &emptyErr) {
		apiErrors.WriteError(w, apiErrors.ErrEmptyDataset, emptyErr.Error(), map[string]string{
			"source": emptyErr.Source,
		})
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrPipelineFailure, err.Error(), nil)
}
