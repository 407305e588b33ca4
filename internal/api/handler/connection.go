package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/dashvendas/sales-dashboard-api/internal/domain"
	"github.com/dashvendas/sales-dashboard-api/internal/usecases/connecting"
	"github.com/dashvendas/sales-dashboard-api/pkg/apiErrors"
	"github.com/dashvendas/sales-dashboard-api/pkg/log"
	"github.com/dashvendas/sales-dashboard-api/pkg/utils"
)

func ListConnections(service connecting.ConnectionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		connections, err := service.ListConnections()
		if err != nil {
			logger.WithError(err).Error("connections: failed to list connections")
			writeConnectionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(connections); err != nil {
			logger.WithError(err).Error("connections: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func CreateConnection(service connecting.ConnectionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		request := &domain.CreateConnectionRequest{}
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			logger.WithError(err).Warn("connections: invalid create request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		connection, err := service.CreateConnection(request)
		if err != nil {
			logger.WithError(err).Error("connections: failed to create connection")
			writeConnectionError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"connection_id": connection.ID,
			"store_id":      connection.StoreID,
		}).Info("connections: connection created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(connection)
	})
}

func UpdateConnectionStatus(service connecting.ConnectionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		request := &domain.UpdateConnectionStatusRequest{}
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			logger.WithError(err).Warn("connections: invalid status request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		request.ID = id

		if err := service.UpdateConnectionStatus(request); err != nil {
			logger.WithError(err).WithField("connection_id", id).Error("connections: failed to update status")
			writeConnectionError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"connection_id": id,
			"status":        request.Status,
		}).Info("connections: status updated")

		w.WriteHeader(http.StatusNoContent)
	})
}

func GetConnectionAggregates(service connecting.ConnectionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var aggregates []*domain.DailyAggregate
		var err error

		startRaw := r.URL.Query().Get("start")
		endRaw := r.URL.Query().Get("end")

		if startRaw != "" || endRaw != "" {
			// Período explícito: start e end em YYYY-MM-DD
			startDate, parseErr := utils.ParseDate(startRaw)
			if parseErr != nil {
				logger.WithField("start", startRaw).Warn("connections: invalid start parameter")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start inválido", nil)
				return
			}
			endDate, parseErr := utils.ParseDate(endRaw)
			if parseErr != nil {
				logger.WithField("end", endRaw).Warn("connections: invalid end parameter")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro end inválido", nil)
				return
			}

			aggregates, err = service.GetAggregatesByRange(id, *startDate, *endDate)
		} else {
			days := 0
			if raw := r.URL.Query().Get("days"); raw != "" {
				parsed, atoiErr := strconv.Atoi(raw)
				if atoiErr != nil {
					logger.WithField("days", raw).Warn("connections: invalid days parameter")
					apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro days inválido", nil)
					return
				}
				days = parsed
			}

			aggregates, err = service.GetAggregates(id, days)
		}

		if err != nil {
			logger.WithError(err).WithField("connection_id", id).Error("connections: failed to get aggregates")
			writeConnectionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(aggregates); err != nil {
			logger.WithError(err).Error("connections: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// writeConnectionError traduz o erro do usecase para a resposta padronizada
func writeConnectionError(w http.ResponseWriter, err error) {
	var connErr *connecting.ConnectionError
	if errors.As(err, &connErr) {
		apiErrors.WriteError(w, connErr.Code, connErr.Error(), nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
