package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/internal/scheduler"
	"github.com/vfg2006/marketing-intelligence-api/pkg/apiErrors"
)

// JobType define o tipo de job que será executado manualmente
const (
	JobTypeSnapshotRefresh = "snapshot-refresh"
)

// JobServices contém os serviços agendados que podem ser disparados
// manualmente
type JobServices struct {
	SnapshotRefreshService *scheduler.SnapshotRefreshService
}

// RunJob dispara manualmente um job agendado
func RunJob(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunJob")

		// Obter o tipo de job da URL
		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if jobType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de job não especificado", nil)
			return
		}

		switch jobType {
		case JobTypeSnapshotRefresh:
			if services.SnapshotRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização de snapshots não disponível", nil)
				return
			}
			services.SnapshotRefreshService.TriggerManualRefresh()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de job inválido. Valores aceitos: snapshot-refresh", nil)
			return
		}

		response := map[string]any{
			"message": "Job iniciado com sucesso",
			"type":    jobType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetJobStatus retorna o status dos jobs agendados
func GetJobStatus(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetJobStatus")

		status := map[string]any{
			"snapshot-refresh": services.SnapshotRefreshService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
