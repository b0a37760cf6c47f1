// Package reporting expõe a leitura do cache de métricas agregadas e do
// histórico de sincronizações
package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/traffic-sync-engine/infrastructure/repository"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
)

// ErrInvalidPeriod indica que o período solicitado não é suportado
var ErrInvalidPeriod = errors.New("período inválido")

// ErrMetricsNotFound indica que não há métricas agregadas para o usuário
// e período solicitados
var ErrMetricsNotFound = errors.New("métricas não encontradas")

// ErrUserNotFound indica que o usuário solicitado não está cadastrado
var ErrUserNotFound = errors.New("usuário não encontrado")

type Reporter interface {
	GetMetrics(userID, period string) (*domain.AggregatedMetrics, error)
	ListRecentRuns(limit int) ([]*domain.SyncHistoryEntry, error)
}

type Service struct {
	cfg               *config.Config
	targetologistRepo repository.TargetologistRepository
	metricsRepo       repository.MetricsCacheRepository
	syncHistoryRepo   repository.SyncHistoryRepository
}

func NewService(
	cfg *config.Config,
	targetologistRepo repository.TargetologistRepository,
	metricsRepo repository.MetricsCacheRepository,
	syncHistoryRepo repository.SyncHistoryRepository,
) *Service {
	return &Service{
		cfg:               cfg,
		targetologistRepo: targetologistRepo,
		metricsRepo:       metricsRepo,
		syncHistoryRepo:   syncHistoryRepo,
	}
}

// GetMetrics retorna as métricas agregadas de um usuário no período
// informado. O período vazio assume 7d. Usuário não cadastrado e usuário
// ainda sem métricas agregadas são erros distintos
func (s *Service) GetMetrics(userID, period string) (*domain.AggregatedMetrics, error) {
	if period == "" {
		period = domain.Period7d
	}

	if !domain.IsValidPeriod(period) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPeriod, period)
	}

	metrics, err := s.metricsRepo.GetByUserIDAndPeriod(userID, period)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas agregadas: %w", err)
	}

	if metrics == nil {
		targetologist, err := s.targetologistRepo.GetByID(userID)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar targetologist: %w", err)
		}
		if targetologist == nil {
			return nil, ErrUserNotFound
		}

		return nil, ErrMetricsNotFound
	}

	return metrics, nil
}

// ListRecentRuns retorna os ciclos de sincronização mais recentes,
// limitado pelo teto configurado
func (s *Service) ListRecentRuns(limit int) ([]*domain.SyncHistoryEntry, error) {
	if limit <= 0 || limit > s.cfg.MetricsSync.HistoryLimit {
		limit = s.cfg.MetricsSync.HistoryLimit
	}

	entries, err := s.syncHistoryRepo.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico de sincronização: %w", err)
	}

	return entries, nil
}
