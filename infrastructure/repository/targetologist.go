// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
)

const (
	targetologistsTable = "traffic_targetologists tt"
)

type TargetologistRepository interface {
	ListActive() ([]*domain.Targetologist, error)
	GetByID(id string) (*domain.Targetologist, error)
}

type targetologistRepository struct {
	conn *postgres.Connection
}

func NewTargetologistRepository(conn *postgres.Connection) TargetologistRepository {
	return &targetologistRepository{
		conn: conn,
	}
}

// ListActive retorna os targetologists ativos, que são o universo de
// usuários processados em cada ciclo de agregação
func (r *targetologistRepository) ListActive() ([]*domain.Targetologist, error) {
	query, args, err := squirrel.
		Select("tt.id, tt.team_name, tt.utm_source, tt.tracked_campaigns, tt.active, tt.created_at, tt.updated_at").
		From(targetologistsTable).
		Where(squirrel.Eq{"tt.active": true}).
		OrderBy("tt.team_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	targetologists := make([]*domain.Targetologist, 0)
	for rows.Next() {
		targetologist, err := r.scanTargetologist(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear targetologist: %w", err)
		}
		targetologists = append(targetologists, targetologist)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targetologists, nil
}

func (r *targetologistRepository) GetByID(id string) (*domain.Targetologist, error) {
	query, args, err := squirrel.
		Select("tt.id, tt.team_name, tt.utm_source, tt.tracked_campaigns, tt.active, tt.created_at, tt.updated_at").
		From(targetologistsTable).
		Where(squirrel.Eq{"tt.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	targetologist := &domain.Targetologist{}
	var campaignsJSON []byte

	err = row.Scan(
		&targetologist.ID,
		&targetologist.TeamName,
		&targetologist.UTMSource,
		&campaignsJSON,
		&targetologist.Active,
		&targetologist.CreatedAt,
		&targetologist.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear targetologist: %w", err)
	}

	if err := unmarshalCampaigns(campaignsJSON, targetologist); err != nil {
		return nil, err
	}

	return targetologist, nil
}

func (r *targetologistRepository) scanTargetologist(rows *sql.Rows) (*domain.Targetologist, error) {
	targetologist := &domain.Targetologist{}
	var campaignsJSON []byte

	err := rows.Scan(
		&targetologist.ID,
		&targetologist.TeamName,
		&targetologist.UTMSource,
		&campaignsJSON,
		&targetologist.Active,
		&targetologist.CreatedAt,
		&targetologist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalCampaigns(campaignsJSON, targetologist); err != nil {
		return nil, err
	}

	return targetologist, nil
}

func unmarshalCampaigns(campaignsJSON []byte, targetologist *domain.Targetologist) error {
	targetologist.TrackedCampaigns = make([]string, 0)

	if campaignsJSON != nil {
		if err := json.Unmarshal(campaignsJSON, &targetologist.TrackedCampaigns); err != nil {
			return fmt.Errorf("erro ao deserializar JSON de tracked_campaigns: %w", err)
		}
	}

	return nil
}
