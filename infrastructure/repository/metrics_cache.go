package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
)

const (
	aggregatedMetricsTable = "traffic_aggregated_metrics tam"
)

type MetricsCacheRepository interface {
	SaveOrUpdate(metrics *domain.AggregatedMetrics) error
	GetByUserIDAndPeriod(userID, period string) (*domain.AggregatedMetrics, error)
}

type metricsCacheRepository struct {
	conn *postgres.Connection
}

func NewMetricsCacheRepository(conn *postgres.Connection) MetricsCacheRepository {
	return &metricsCacheRepository{
		conn: conn,
	}
}

// SaveOrUpdate grava as métricas agregadas de um usuário em um período.
// Os índices derivados são recalculados a partir dos contadores antes da
// escrita e a chave (user_id, period) garante uma única linha por par
func (r *metricsCacheRepository) SaveOrUpdate(metrics *domain.AggregatedMetrics) error {
	metrics.ComputeDerivedMetrics()

	campaignsJSON, err := json.Marshal(metrics.Campaigns)
	if err != nil {
		return fmt.Errorf("erro ao serializar JSON de campanhas: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("traffic_aggregated_metrics").
		Columns(
			"user_id",
			"team_name",
			"period",
			"impressions",
			"clicks",
			"spend",
			"spend_kzt",
			"conversions",
			"revenue",
			"sales",
			"ctr",
			"cpc",
			"cpm",
			"roas",
			"cpa",
			"campaigns",
		).
		Values(
			metrics.UserID,
			metrics.TeamName,
			metrics.Period,
			metrics.Impressions,
			metrics.Clicks,
			metrics.Spend,
			metrics.SpendKZT,
			metrics.Conversions,
			metrics.Revenue,
			metrics.Sales,
			metrics.CTR,
			metrics.CPC,
			metrics.CPM,
			metrics.ROAS,
			metrics.CPA,
			campaignsJSON,
		).
		Suffix(`
			ON CONFLICT (user_id, period) DO UPDATE SET
				team_name = EXCLUDED.team_name,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				spend = EXCLUDED.spend,
				spend_kzt = EXCLUDED.spend_kzt,
				conversions = EXCLUDED.conversions,
				revenue = EXCLUDED.revenue,
				sales = EXCLUDED.sales,
				ctr = EXCLUDED.ctr,
				cpc = EXCLUDED.cpc,
				cpm = EXCLUDED.cpm,
				roas = EXCLUDED.roas,
				cpa = EXCLUDED.cpa,
				campaigns = EXCLUDED.campaigns,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

// GetByUserIDAndPeriod retorna as métricas agregadas de um usuário em um
// período. Os índices derivados são recalculados na leitura para manter a
// consistência com os contadores persistidos
func (r *metricsCacheRepository) GetByUserIDAndPeriod(userID, period string) (*domain.AggregatedMetrics, error) {
	query, args, err := squirrel.
		Select(
			"tam.user_id",
			"tam.team_name",
			"tam.period",
			"tam.impressions",
			"tam.clicks",
			"tam.spend",
			"tam.spend_kzt",
			"tam.conversions",
			"tam.revenue",
			"tam.sales",
			"tam.campaigns",
			"tam.updated_at",
		).
		From(aggregatedMetricsTable).
		Where(squirrel.Eq{"tam.user_id": userID, "tam.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	metrics := &domain.AggregatedMetrics{}
	var campaignsJSON []byte

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&metrics.UserID,
		&metrics.TeamName,
		&metrics.Period,
		&metrics.Impressions,
		&metrics.Clicks,
		&metrics.Spend,
		&metrics.SpendKZT,
		&metrics.Conversions,
		&metrics.Revenue,
		&metrics.Sales,
		&campaignsJSON,
		&metrics.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métricas agregadas: %w", err)
	}

	metrics.Campaigns = make([]*domain.CampaignMetrics, 0)
	if campaignsJSON != nil {
		if err := json.Unmarshal(campaignsJSON, &metrics.Campaigns); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de campanhas: %w", err)
		}
	}

	metrics.ComputeDerivedMetrics()

	return metrics, nil
}
