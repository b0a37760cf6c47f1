package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-sync-engine/internal/usecases/reporting"
	"github.com/vfg2006/traffic-sync-engine/pkg/apiErrors"
)

// GetUserMetrics retorna as métricas agregadas de um usuário no período
// informado via query string (padrão 7d)
func GetUserMetrics(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := httprouter.ParamsFromContext(r.Context()).ByName("user_id")
		if userID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do usuário não informado", nil)
			return
		}

		period := r.URL.Query().Get("period")

		metrics, err := service.GetMetrics(userID, period)
		if err != nil {
			switch {
			case errors.Is(err, reporting.ErrInvalidPeriod):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido, use today, 7d ou 30d", nil)
			case errors.Is(err, reporting.ErrUserNotFound):
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Usuário não encontrado", nil)
			case errors.Is(err, reporting.ErrMetricsNotFound):
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Métricas não encontradas para o usuário e período informados", nil)
			default:
				logrus.WithFields(logrus.Fields{
					"user_id": userID,
					"period":  period,
					"error":   err.Error(),
				}).Error("Erro ao buscar métricas agregadas")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar métricas agregadas", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logrus.WithError(err).Error("Erro ao enviar métricas agregadas")
		}
	}
}
