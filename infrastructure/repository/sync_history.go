package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
)

const (
	syncHistoryTable = "traffic_sync_history tsh"
)

type SyncHistoryRepository interface {
	Insert(entry *domain.SyncHistoryEntry) error
	ListRecent(limit int) ([]*domain.SyncHistoryEntry, error)
}

type syncHistoryRepository struct {
	conn *postgres.Connection
}

func NewSyncHistoryRepository(conn *postgres.Connection) SyncHistoryRepository {
	return &syncHistoryRepository{
		conn: conn,
	}
}

// Insert registra o resultado de um ciclo de sincronização no histórico
func (r *syncHistoryRepository) Insert(entry *domain.SyncHistoryEntry) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("traffic_sync_history").
		Columns(
			"run_id",
			"started_at",
			"completed_at",
			"success",
			"users_processed",
			"metrics_updated",
			"duration_ms",
			"error_message",
		).
		Values(
			entry.RunID,
			entry.StartedAt,
			entry.CompletedAt,
			entry.Success,
			entry.UsersProcessed,
			entry.MetricsUpdated,
			entry.DurationMS,
			entry.ErrorMessage,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

// ListRecent retorna os ciclos mais recentes do histórico, do mais novo
// para o mais antigo
func (r *syncHistoryRepository) ListRecent(limit int) ([]*domain.SyncHistoryEntry, error) {
	query, args, err := squirrel.
		Select("tsh.id, tsh.run_id, tsh.started_at, tsh.completed_at, tsh.success, tsh.users_processed, tsh.metrics_updated, tsh.duration_ms, tsh.error_message").
		From(syncHistoryTable).
		OrderBy("tsh.started_at DESC").
		Limit(uint64(limit)).
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

	entries := make([]*domain.SyncHistoryEntry, 0)
	for rows.Next() {
		entry, err := r.scanHistoryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico de sincronização: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *syncHistoryRepository) scanHistoryEntry(rows *sql.Rows) (*domain.SyncHistoryEntry, error) {
	entry := &domain.SyncHistoryEntry{}

	err := rows.Scan(
		&entry.ID,
		&entry.RunID,
		&entry.StartedAt,
		&entry.CompletedAt,
		&entry.Success,
		&entry.UsersProcessed,
		&entry.MetricsUpdated,
		&entry.DurationMS,
		&entry.ErrorMessage,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}
