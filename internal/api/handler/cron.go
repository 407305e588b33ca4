package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/dashvendas/sales-dashboard-api/internal/scheduler"
	"github.com/dashvendas/sales-dashboard-api/pkg/apiErrors"
	"github.com/dashvendas/sales-dashboard-api/pkg/log"
)

// CronJobServices agrupa os serviços agendados expostos pela API
type CronJobServices struct {
	SaiposSalesSyncService *scheduler.SaiposSalesSyncService
}

// RunCronJob dispara manualmente um job agendado pelo tipo
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch jobType {
		case "saipos", "all":
			services.SaiposSalesSyncService.TriggerManualSync()
		default:
			logger.WithField("type", jobType).Warn("cron: unknown job type")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de job desconhecido: "+jobType, nil)
			return
		}

		logger.WithField("type", jobType).Info("cron: manual trigger accepted")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "triggered",
			"type":   jobType,
		})
	})
}

// GetCronStatus retorna o estado atual dos jobs agendados
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{
			"saipos_sales_sync": services.SaiposSalesSyncService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("cron: failed to encode status")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
