package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
)

const (
	salesTable = "traffic_sales ts"
)

type SaleRepository interface {
	GetSalesSummary(utmSource string, startDate, endDate time.Time) (*domain.SalesSummary, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// GetSalesSummary retorna a quantidade de vendas e a receita atribuídas a
// uma origem de tráfego dentro do intervalo informado
func (r *saleRepository) GetSalesSummary(utmSource string, startDate, endDate time.Time) (*domain.SalesSummary, error) {
	query, args, err := squirrel.
		Select("COUNT(ts.id)", "COALESCE(SUM(ts.amount), 0)").
		From(salesTable).
		Where(squirrel.Eq{"ts.utm_source": utmSource}).
		Where(squirrel.GtOrEq{"ts.created_at": startDate}).
		Where(squirrel.LtOrEq{"ts.created_at": endDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.SalesSummary{}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&summary.Count, &summary.Revenue); err != nil {
		return nil, fmt.Errorf("erro ao escanear resumo de vendas: %w", err)
	}

	return summary, nil
}
