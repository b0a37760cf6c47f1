package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	Exchange    Exchange    `mapstructure:",squash"`
	Resilience  Resilience  `mapstructure:",squash"`
	MetricsSync MetricsSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL                  string `mapstructure:"meta_base_url"`
	URL                      string `mapstructure:"meta_url"`
	Version                  string `mapstructure:"meta_version"`
	AccessToken              string `mapstructure:"meta_access_token"`
	RequestTimeoutSeconds    int    `mapstructure:"meta_request_timeout_seconds"`
	TokenCheckTimeoutSeconds int    `mapstructure:"meta_token_check_timeout_seconds"`
}

type Exchange struct {
	URL            string  `mapstructure:"exchange_url"`
	BaseCurrency   string  `mapstructure:"exchange_base_currency"`
	QuoteCurrency  string  `mapstructure:"exchange_quote_currency"`
	FallbackRate   float64 `mapstructure:"exchange_fallback_rate"`
	TimeoutSeconds int     `mapstructure:"exchange_timeout_seconds"`
}

type Resilience struct {
	BreakerFailureThreshold  int     `mapstructure:"breaker_failure_threshold"`
	BreakerCooldownSeconds   int     `mapstructure:"breaker_cooldown_seconds"`
	BreakerHalfOpenSuccesses int     `mapstructure:"breaker_half_open_successes"`
	RetryMaxAttempts         int     `mapstructure:"retry_max_attempts"`
	RetryBaseDelayMS         int     `mapstructure:"retry_base_delay_ms"`
	RetryMaxDelayMS          int     `mapstructure:"retry_max_delay_ms"`
	RetryBackoffMultiplier   float64 `mapstructure:"retry_backoff_multiplier"`
}

type MetricsSync struct {
	IntervalMinutes        int  `mapstructure:"metrics_sync_interval_minutes"`
	InitialDelaySeconds    int  `mapstructure:"metrics_sync_initial_delay_seconds"`
	MaxRunDurationMinutes  int  `mapstructure:"metrics_sync_max_run_duration_minutes"`
	MaxConcurrentRequests  int  `mapstructure:"metrics_sync_max_concurrent_requests"`
	BatchDelayMS           int  `mapstructure:"metrics_sync_batch_delay_ms"`
	TokenExpiryWarningDays int  `mapstructure:"metrics_sync_token_expiry_warning_days"`
	HistoryLimit           int  `mapstructure:"metrics_sync_history_limit"`
	Enabled                bool `mapstructure:"metrics_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/traffic")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v18.0")
	viper.SetDefault("META_VERSION", "v18.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("META_TOKEN_CHECK_TIMEOUT_SECONDS", 10)

	viper.SetDefault("EXCHANGE_URL", "https://api.exchangerate.host/latest")
	viper.SetDefault("EXCHANGE_BASE_CURRENCY", "USD")
	viper.SetDefault("EXCHANGE_QUOTE_CURRENCY", "KZT")
	viper.SetDefault("EXCHANGE_FALLBACK_RATE", 507.0) // Última cotação conhecida USD -> KZT
	viper.SetDefault("EXCHANGE_TIMEOUT_SECONDS", 5)

	// Defaults do circuit breaker e retry para chamadas à Graph API
	viper.SetDefault("BREAKER_FAILURE_THRESHOLD", 5)
	viper.SetDefault("BREAKER_COOLDOWN_SECONDS", 60)
	viper.SetDefault("BREAKER_HALF_OPEN_SUCCESSES", 2)
	viper.SetDefault("RETRY_MAX_ATTEMPTS", 3)
	viper.SetDefault("RETRY_BASE_DELAY_MS", 1000)
	viper.SetDefault("RETRY_MAX_DELAY_MS", 30000)
	viper.SetDefault("RETRY_BACKOFF_MULTIPLIER", 2.0)

	// Defaults do agendador de agregação de métricas
	viper.SetDefault("METRICS_SYNC_INTERVAL_MINUTES", 10)
	viper.SetDefault("METRICS_SYNC_INITIAL_DELAY_SECONDS", 5)
	viper.SetDefault("METRICS_SYNC_MAX_RUN_DURATION_MINUTES", 8)
	viper.SetDefault("METRICS_SYNC_MAX_CONCURRENT_REQUESTS", 3)
	viper.SetDefault("METRICS_SYNC_BATCH_DELAY_MS", 500)
	viper.SetDefault("METRICS_SYNC_TOKEN_EXPIRY_WARNING_DAYS", 7)
	viper.SetDefault("METRICS_SYNC_HISTORY_LIMIT", 50)
	viper.SetDefault("METRICS_SYNC_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// RequestTimeout retorna o timeout por chamada da Graph API
func (m Meta) RequestTimeout() time.Duration {
	return time.Duration(m.RequestTimeoutSeconds) * time.Second
}

// TokenCheckTimeout retorna o timeout da chamada de introspecção do token
func (m Meta) TokenCheckTimeout() time.Duration {
	return time.Duration(m.TokenCheckTimeoutSeconds) * time.Second
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
