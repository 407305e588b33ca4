package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/dashvendas/sales-dashboard-api/internal/usecases/syncing"
	"github.com/dashvendas/sales-dashboard-api/pkg/apiErrors"
	"github.com/dashvendas/sales-dashboard-api/pkg/log"
)

type syncRequest struct {
	Days int `json:"days"`
}

// SyncConnection dispara a sincronização sob demanda de uma conexão
func SyncConnection(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		request := &syncRequest{}
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(request); err != nil {
				logger.WithError(err).Warn("sync: invalid request body")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
				return
			}
		}

		result, err := service.SyncConnection(r.Context(), id, request.Days)
		if err != nil {
			logger.WithError(err).WithField("connection_id", id).Error("sync: sync failed")
			writeSyncError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"connection_id":   id,
			"days_synced":     result.DaysSynced,
			"records_fetched": result.RecordsFetched,
		}).Info("sync: sync completed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("sync: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func writeSyncError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, syncing.ErrConnectionIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, syncing.ErrConnectionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrConnectionNotFound, err.Error(), nil)
	case errors.Is(err, syncing.ErrConnectionDisabled):
		apiErrors.WriteError(w, apiErrors.ErrConnectionDisabled, err.Error(), nil)
	default:
		switch syncing.KindOf(err) {
		case syncing.ErrorKindWindow:
			apiErrors.WriteError(w, apiErrors.ErrSyncWindow, err.Error(), nil)
		case syncing.ErrorKindUpstream:
			apiErrors.WriteError(w, apiErrors.ErrSyncUpstream, err.Error(), nil)
		case syncing.ErrorKindCommit:
			apiErrors.WriteError(w, apiErrors.ErrSyncCommit, err.Error(), nil)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	}
}
