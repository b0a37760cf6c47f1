package reporting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/repository/mocks"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockTargetologistRepository, *mocks.MockMetricsCacheRepository, *mocks.MockSyncHistoryRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockTargetologistRepo := mocks.NewMockTargetologistRepository(ctrl)
	mockMetricsRepo := mocks.NewMockMetricsCacheRepository(ctrl)
	mockHistoryRepo := mocks.NewMockSyncHistoryRepository(ctrl)

	cfg := &config.Config{}
	cfg.MetricsSync.HistoryLimit = 50

	service := NewService(cfg, mockTargetologistRepo, mockMetricsRepo, mockHistoryRepo)
	return service, mockTargetologistRepo, mockMetricsRepo, mockHistoryRepo
}

func TestService_GetMetrics(t *testing.T) {
	t.Run("Período vazio assume 7d", func(t *testing.T) {
		service, _, mockMetricsRepo, _ := newTestService(t)

		mockMetricsRepo.EXPECT().
			GetByUserIDAndPeriod("tg-001", domain.Period7d).
			Return(&domain.AggregatedMetrics{UserID: "tg-001", Period: domain.Period7d}, nil)

		metrics, err := service.GetMetrics("tg-001", "")

		assert.NoError(t, err)
		assert.Equal(t, domain.Period7d, metrics.Period)
	})

	t.Run("Período inválido retorna erro sem consultar o cache", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		metrics, err := service.GetMetrics("tg-001", "90d")

		assert.ErrorIs(t, err, ErrInvalidPeriod)
		assert.Nil(t, metrics)
	})

	t.Run("Usuário cadastrado sem métricas retorna ErrMetricsNotFound", func(t *testing.T) {
		service, mockTargetologistRepo, mockMetricsRepo, _ := newTestService(t)

		mockMetricsRepo.EXPECT().
			GetByUserIDAndPeriod("tg-002", domain.PeriodToday).
			Return(nil, nil)
		mockTargetologistRepo.EXPECT().
			GetByID("tg-002").
			Return(&domain.Targetologist{ID: "tg-002"}, nil)

		metrics, err := service.GetMetrics("tg-002", domain.PeriodToday)

		assert.ErrorIs(t, err, ErrMetricsNotFound)
		assert.Nil(t, metrics)
	})

	t.Run("Usuário não cadastrado retorna ErrUserNotFound", func(t *testing.T) {
		service, mockTargetologistRepo, mockMetricsRepo, _ := newTestService(t)

		mockMetricsRepo.EXPECT().
			GetByUserIDAndPeriod("tg-999", domain.Period7d).
			Return(nil, nil)
		mockTargetologistRepo.EXPECT().
			GetByID("tg-999").
			Return(nil, nil)

		metrics, err := service.GetMetrics("tg-999", domain.Period7d)

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, metrics)
	})

	t.Run("Erro do repositório é propagado", func(t *testing.T) {
		service, _, mockMetricsRepo, _ := newTestService(t)

		mockMetricsRepo.EXPECT().
			GetByUserIDAndPeriod("tg-003", domain.Period30d).
			Return(nil, errors.New("conexão recusada"))

		metrics, err := service.GetMetrics("tg-003", domain.Period30d)

		assert.Error(t, err)
		assert.Nil(t, metrics)
	})
}

func TestService_ListRecentRuns(t *testing.T) {
	t.Run("Limite acima do teto usa o teto configurado", func(t *testing.T) {
		service, _, _, mockHistoryRepo := newTestService(t)

		mockHistoryRepo.EXPECT().
			ListRecent(50).
			Return([]*domain.SyncHistoryEntry{}, nil)

		entries, err := service.ListRecentRuns(500)

		assert.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Limite válido é repassado ao repositório", func(t *testing.T) {
		service, _, _, mockHistoryRepo := newTestService(t)

		mockHistoryRepo.EXPECT().
			ListRecent(10).
			Return([]*domain.SyncHistoryEntry{{RunID: "abc123"}}, nil)

		entries, err := service.ListRecentRuns(10)

		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
