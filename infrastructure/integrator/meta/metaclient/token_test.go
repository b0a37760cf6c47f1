package metaclient

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
	"github.com/vfg2006/traffic-sync-engine/pkg/resilience"
)

func newTestClient(baseURL string) *MetaClient {
	cfg := &config.Config{}
	cfg.Meta.BaseURL = baseURL
	cfg.Meta.URL = baseURL + "/v18.0"
	cfg.Meta.Version = "v18.0"
	cfg.Meta.AccessToken = "token-de-teste"
	cfg.Meta.RequestTimeoutSeconds = 2
	cfg.Meta.TokenCheckTimeoutSeconds = 2

	executor := resilience.NewExecutor(
		resilience.NewCircuitBreaker(resilience.DefaultBreakerConfig()),
		resilience.RetryConfig{MaxAttempts: 1, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffMultiplier: 1},
	)

	return NewClient(cfg, executor).(*MetaClient)
}

func TestMetaClient_IntrospectToken(t *testing.T) {
	t.Run("Token válido com data de expiração", func(t *testing.T) {
		expiresAt := time.Now().Add(30 * 24 * time.Hour).Unix()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v18.0/debug_token", r.URL.Path)
			assert.Equal(t, "token-de-teste", r.URL.Query().Get("input_token"))
			w.Write([]byte(`{"data":{"app_id":"123","is_valid":true,"expires_at":` + strconv.FormatInt(expiresAt, 10) + `}}`))
		}))
		defer server.Close()

		status, err := newTestClient(server.URL).IntrospectToken()

		assert.NoError(t, err)
		assert.Equal(t, domain.TokenValid, status.State)
		assert.NotNil(t, status.ExpiresAt)
		assert.Equal(t, expiresAt, status.ExpiresAt.Unix())
	})

	t.Run("Token inválido pelo código 190", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"is_valid":false,"error":{"message":"Error validating access token","code":190}}}`))
		}))
		defer server.Close()

		status, err := newTestClient(server.URL).IntrospectToken()

		assert.NoError(t, err)
		assert.Equal(t, domain.TokenInvalid, status.State)
	})

	t.Run("Token marcado como inválido sem erro explícito", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"is_valid":false}}`))
		}))
		defer server.Close()

		status, err := newTestClient(server.URL).IntrospectToken()

		assert.NoError(t, err)
		assert.Equal(t, domain.TokenInvalid, status.State)
	})

	t.Run("Erro transitório do debug_token resulta em estado desconhecido", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"An unexpected error has occurred","code":2}}`))
		}))
		defer server.Close()

		status, err := newTestClient(server.URL).IntrospectToken()

		assert.NoError(t, err)
		assert.Equal(t, domain.TokenUnknown, status.State)
	})

	t.Run("Código 190 condena o token mesmo em resposta não-200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"data":{"is_valid":false,"error":{"message":"Error validating access token","code":190}}}`))
		}))
		defer server.Close()

		status, err := newTestClient(server.URL).IntrospectToken()

		assert.NoError(t, err)
		assert.Equal(t, domain.TokenInvalid, status.State)
	})

	t.Run("Token com validade vencida é tratado como inválido", func(t *testing.T) {
		expiresAt := time.Now().Add(-24 * time.Hour).Unix()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"app_id":"123","is_valid":true,"expires_at":` + strconv.FormatInt(expiresAt, 10) + `}}`))
		}))
		defer server.Close()

		status, err := newTestClient(server.URL).IntrospectToken()

		assert.NoError(t, err)
		assert.Equal(t, domain.TokenInvalid, status.State)
	})

	t.Run("Falha de transporte não bloqueia a sincronização", func(t *testing.T) {
		client := newTestClient("http://127.0.0.1:1")

		status, err := client.IntrospectToken()

		assert.NoError(t, err)
		assert.Equal(t, domain.TokenUnknown, status.State)
	})

	t.Run("Resposta malformada resulta em estado desconhecido", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`nada que pareça JSON`))
		}))
		defer server.Close()

		status, err := newTestClient(server.URL).IntrospectToken()

		assert.NoError(t, err)
		assert.Equal(t, domain.TokenUnknown, status.State)
	})
}
