package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/exchange"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/repository"
	"github.com/vfg2006/traffic-sync-engine/internal/api"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"github.com/vfg2006/traffic-sync-engine/internal/scheduler"
	"github.com/vfg2006/traffic-sync-engine/internal/usecases/aggregating"
	"github.com/vfg2006/traffic-sync-engine/internal/usecases/reporting"
	"github.com/vfg2006/traffic-sync-engine/pkg/resilience"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	targetologistRepo := repository.NewTargetologistRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	metricsCacheRepo := repository.NewMetricsCacheRepository(pgConn)
	syncHistoryRepo := repository.NewSyncHistoryRepository(pgConn)

	breaker := resilience.NewCircuitBreaker(resilience.BreakerConfig{
		FailureThreshold:  cfg.Resilience.BreakerFailureThreshold,
		Cooldown:          time.Duration(cfg.Resilience.BreakerCooldownSeconds) * time.Second,
		HalfOpenSuccesses: cfg.Resilience.BreakerHalfOpenSuccesses,
	})

	executor := resilience.NewExecutor(breaker, resilience.RetryConfig{
		MaxAttempts:       cfg.Resilience.RetryMaxAttempts,
		BaseDelay:         time.Duration(cfg.Resilience.RetryBaseDelayMS) * time.Millisecond,
		MaxDelay:          time.Duration(cfg.Resilience.RetryMaxDelayMS) * time.Millisecond,
		BackoffMultiplier: cfg.Resilience.RetryBackoffMultiplier,
	})

	metaClient := metaclient.NewClient(cfg, executor)
	metaIntegrator := meta.New(cfg, metaClient)

	rateProvider := exchange.New(cfg)

	aggregatorService := aggregating.NewService(cfg, metaIntegrator, saleRepo)
	reportService := reporting.NewService(cfg, targetologistRepo, metricsCacheRepo, syncHistoryRepo)

	metricsSyncService := scheduler.NewMetricsAggregationService(
		cfg,
		targetologistRepo,
		metricsCacheRepo,
		syncHistoryRepo,
		aggregatorService,
		metaIntegrator,
		rateProvider,
		executor,
	)

	if err := metricsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de agregação de métricas")
	} else {
		logrus.Info("Agendador de agregação de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		metricsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
