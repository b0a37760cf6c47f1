package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"github.com/vfg2006/traffic-sync-engine/internal/scheduler"
	"github.com/vfg2006/traffic-sync-engine/internal/usecases/reporting"
	"github.com/vfg2006/traffic-sync-engine/pkg/apiErrors"
)

// RunSync dispara manualmente um ciclo de agregação de métricas. Se um
// ciclo já estiver em andamento a solicitação é ignorada
func RunSync(cfg *config.Config, service *scheduler.MetricsAggregationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !cfg.MetricsSync.Enabled {
			apiErrors.WriteError(w, apiErrors.ErrSyncDisabled, "Sincronização desabilitada por configuração", nil)
			return
		}

		status := service.GetStatus()
		if status.InProgress {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusAccepted)
			json.NewEncoder(w).Encode(map[string]string{
				"status":  "already_running",
				"message": "Sincronização já em andamento",
			})
			return
		}

		service.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "started",
			"message": "Sincronização iniciada",
		})
	}
}

// GetSyncStatus retorna o estado atual do agendador de agregação
func GetSyncStatus(service *scheduler.MetricsAggregationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := service.GetStatus()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("Erro ao enviar status da sincronização")
		}
	}
}

// GetSyncHistory retorna os ciclos de sincronização mais recentes
func GetSyncHistory(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		entries, err := service.ListRecentRuns(limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar histórico de sincronização")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico de sincronização", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logrus.WithError(err).Error("Erro ao enviar histórico de sincronização")
		}
	}
}

// ResetBreaker fecha manualmente o circuit breaker das chamadas à
// plataforma de anúncios
func ResetBreaker(service *scheduler.MetricsAggregationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service.ResetBreaker()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":        "ok",
			"breaker_state": service.GetStatus().BreakerState,
		})
	}
}
