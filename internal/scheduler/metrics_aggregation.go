// Package scheduler agenda e executa os ciclos periódicos de agregação de
// métricas de tráfego
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/exchange"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/repository"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
	"github.com/vfg2006/traffic-sync-engine/internal/usecases/aggregating"
	"github.com/vfg2006/traffic-sync-engine/pkg/resilience"
	"github.com/vfg2006/traffic-sync-engine/pkg/utils"
)

// MetricsAggregationService gerencia o agendamento e a execução dos ciclos
// de agregação de métricas de todos os targetologists ativos
type MetricsAggregationService struct {
	scheduler         *gocron.Scheduler
	job               *gocron.Job
	cfg               *config.Config
	targetologistRepo repository.TargetologistRepository
	metricsRepo       repository.MetricsCacheRepository
	syncHistoryRepo   repository.SyncHistoryRepository
	aggregator        aggregating.Aggregator
	metaService       meta.Integrator
	rateProvider      exchange.RateProvider
	executor          *resilience.Executor

	syncMutex       sync.Mutex
	syncRunning     bool
	syncStartedAt   time.Time
	lastSync        *time.Time
	lastError       *string
	lastTokenStatus domain.TokenStatus
	lastStats       domain.SyncStats
}

// NewMetricsAggregationService cria uma nova instância do serviço de
// agregação de métricas
func NewMetricsAggregationService(
	cfg *config.Config,
	targetologistRepo repository.TargetologistRepository,
	metricsRepo repository.MetricsCacheRepository,
	syncHistoryRepo repository.SyncHistoryRepository,
	aggregator aggregating.Aggregator,
	metaService meta.Integrator,
	rateProvider exchange.RateProvider,
	executor *resilience.Executor,
) *MetricsAggregationService {
	logrus.WithFields(logrus.Fields{
		"interval_minutes":     cfg.MetricsSync.IntervalMinutes,
		"max_run_duration_min": cfg.MetricsSync.MaxRunDurationMinutes,
		"max_concurrent":       cfg.MetricsSync.MaxConcurrentRequests,
		"sync_enabled":         cfg.MetricsSync.Enabled,
	}).Info("Configuração do agendador de agregação de métricas carregada")

	return &MetricsAggregationService{
		scheduler:         gocron.NewScheduler(time.Local),
		cfg:               cfg,
		targetologistRepo: targetologistRepo,
		metricsRepo:       metricsRepo,
		syncHistoryRepo:   syncHistoryRepo,
		aggregator:        aggregator,
		metaService:       metaService,
		rateProvider:      rateProvider,
		executor:          executor,
		lastTokenStatus:   domain.TokenStatus{State: domain.TokenUnknown},
	}
}

// Start inicia o agendador. O primeiro ciclo roda pouco depois da subida
// do serviço e os seguintes no intervalo configurado
func (s *MetricsAggregationService) Start(ctx context.Context) error {
	if !s.cfg.MetricsSync.Enabled {
		logrus.Info("Agregação de métricas desabilitada por configuração")
		return nil
	}

	firstRun := time.Now().Add(time.Duration(s.cfg.MetricsSync.InitialDelaySeconds) * time.Second)

	logrus.WithFields(logrus.Fields{
		"interval_minutes": s.cfg.MetricsSync.IntervalMinutes,
		"first_run":        firstRun.Format(time.RFC3339),
	}).Info("Iniciando agendador de agregação de métricas")

	job, err := s.scheduler.
		Every(s.cfg.MetricsSync.IntervalMinutes).
		Minutes().
		StartAt(firstRun).
		Do(func() {
			s.runAggregation()
		})
	if err != nil {
		return fmt.Errorf("erro ao agendar agregação de métricas: %w", err)
	}
	s.job = job

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de agregação de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// runAggregation executa um ciclo completo de agregação. Ciclos
// simultâneos são descartados e um ciclo anterior travado além da duração
// máxima é reiniciado à força
func (s *MetricsAggregationService) runAggregation() {
	s.checkAndResetStuckSync()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Agregação de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = fmt.Sprintf("run-%d", time.Now().UnixNano())
	}

	startTime := time.Now()

	logrus.WithField("run_id", runID).Info("Iniciando ciclo de agregação de métricas")

	tokenStatus, err := s.metaService.CheckTokenHealth()
	if tokenStatus != nil {
		s.syncMutex.Lock()
		s.lastTokenStatus = *tokenStatus
		s.syncMutex.Unlock()
	}
	if err != nil {
		s.finishRun(runID, startTime, domain.SyncStats{}, err)
		return
	}

	rate := s.rateProvider.GetRate()

	targetologists, err := s.targetologistRepo.ListActive()
	if err != nil {
		s.finishRun(runID, startTime, domain.SyncStats{}, fmt.Errorf("erro ao buscar targetologists ativos: %w", err))
		return
	}

	if len(targetologists) == 0 {
		logrus.Info("Nenhum targetologist ativo encontrado para agregação")
		s.finishRun(runID, startTime, domain.SyncStats{}, nil)
		return
	}

	stats := domain.SyncStats{}

	for _, targetologist := range targetologists {
		userFailed := false

		for _, period := range domain.SupportedPeriods() {
			metrics, processed, err := s.aggregator.AggregateUserMetrics(targetologist, period, rate)
			stats.CampaignsProcessed += processed

			if err != nil {
				if errors.Is(err, meta.ErrTokenInvalid) {
					s.finishRun(runID, startTime, stats, err)
					return
				}

				logrus.WithFields(logrus.Fields{
					"user_id": targetologist.ID,
					"period":  period,
					"error":   err.Error(),
				}).Error("Erro ao agregar métricas do targetologist, seguindo para o próximo")
				userFailed = true
				continue
			}

			if err := s.metricsRepo.SaveOrUpdate(metrics); err != nil {
				logrus.WithFields(logrus.Fields{
					"user_id": targetologist.ID,
					"period":  period,
					"error":   err.Error(),
				}).Error("Erro ao gravar métricas agregadas no cache")
				userFailed = true
				continue
			}

			stats.MetricsUpdated++
		}

		if !userFailed {
			stats.UsersProcessed++
		}
	}

	s.finishRun(runID, startTime, stats, nil)
}

// finishRun registra o resultado do ciclo no histórico e atualiza o
// estado exposto aos operadores
func (s *MetricsAggregationService) finishRun(runID string, startTime time.Time, stats domain.SyncStats, runErr error) {
	completedAt := time.Now()
	stats.DurationMS = completedAt.Sub(startTime).Milliseconds()

	entry := &domain.SyncHistoryEntry{
		RunID:          runID,
		StartedAt:      startTime,
		CompletedAt:    completedAt,
		Success:        runErr == nil,
		UsersProcessed: stats.UsersProcessed,
		MetricsUpdated: stats.MetricsUpdated,
		DurationMS:     stats.DurationMS,
	}

	s.syncMutex.Lock()
	s.lastStats = stats
	s.lastError = nil
	if runErr != nil {
		message := runErr.Error()
		entry.ErrorMessage = &message
		s.lastError = &message
	} else {
		// Ciclos abortados não contam como última sincronização bem-sucedida
		s.lastSync = &completedAt
	}
	s.syncMutex.Unlock()

	if err := s.syncHistoryRepo.Insert(entry); err != nil {
		logrus.WithError(err).Error("Erro ao registrar histórico de sincronização")
	}

	logEntry := logrus.WithFields(logrus.Fields{
		"run_id":          runID,
		"users_processed": stats.UsersProcessed,
		"metrics_updated": stats.MetricsUpdated,
		"duration_ms":     stats.DurationMS,
	})

	if runErr != nil {
		logEntry.WithError(runErr).Error("Ciclo de agregação de métricas finalizado com erro")
		return
	}

	logEntry.Info("Ciclo de agregação de métricas finalizado com sucesso")
}

// checkAndResetStuckSync libera um ciclo marcado como em andamento há mais
// tempo que a duração máxima permitida. O ciclo travado é registrado no
// histórico como falha para manter a trilha de auditoria
func (s *MetricsAggregationService) checkAndResetStuckSync() {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if !s.syncRunning {
		return
	}

	maxDuration := time.Duration(s.cfg.MetricsSync.MaxRunDurationMinutes) * time.Minute
	elapsed := time.Since(s.syncStartedAt)
	if elapsed <= maxDuration {
		return
	}

	logrus.WithFields(logrus.Fields{
		"started_at":  s.syncStartedAt.Format(time.RFC3339),
		"elapsed_min": int(elapsed.Minutes()),
	}).Warn("Sincronização anterior travada, liberando para novo ciclo")

	s.syncRunning = false

	message := "Sincronização anterior travada e reiniciada"
	entry := &domain.SyncHistoryEntry{
		RunID:        "stuck-reset",
		StartedAt:    s.syncStartedAt,
		CompletedAt:  time.Now(),
		Success:      false,
		DurationMS:   elapsed.Milliseconds(),
		ErrorMessage: &message,
	}

	if err := s.syncHistoryRepo.Insert(entry); err != nil {
		logrus.WithError(err).Error("Erro ao registrar reinício de sincronização travada")
	}
}

// TriggerManualSync inicia manualmente um ciclo de agregação de métricas
func (s *MetricsAggregationService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Agregação de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando agregação manual de métricas")
	go s.runAggregation()
}

// GetStatus retorna o estado atual do agendador para os operadores
func (s *MetricsAggregationService) GetStatus() *domain.SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := &domain.SyncStatus{
		InProgress:     s.syncRunning,
		LastSync:       s.lastSync,
		LastError:      s.lastError,
		TokenStatus:    s.lastTokenStatus.State,
		TokenExpiresAt: s.lastTokenStatus.ExpiresAt,
		BreakerState:   string(s.executor.Breaker().State()),
		Stats:          s.lastStats,
	}

	if s.syncRunning {
		startedAt := s.syncStartedAt
		status.StartedAt = &startedAt
	}

	if s.job != nil {
		nextRun := s.job.NextRun()
		if !nextRun.IsZero() {
			status.NextSync = &nextRun
		}
	}

	return status
}

// ResetBreaker fecha manualmente o circuit breaker das chamadas à
// plataforma de anúncios
func (s *MetricsAggregationService) ResetBreaker() {
	s.executor.Breaker().Reset()
	logrus.Info("Circuit breaker fechado manualmente")
}
