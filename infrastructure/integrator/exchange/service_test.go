package exchange

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
)

func newTestConfig(url string) *config.Config {
	cfg := &config.Config{}
	cfg.Exchange.URL = url
	cfg.Exchange.BaseCurrency = "USD"
	cfg.Exchange.QuoteCurrency = "KZT"
	cfg.Exchange.FallbackRate = 507.0
	cfg.Exchange.TimeoutSeconds = 2
	return cfg
}

func TestService_GetRate(t *testing.T) {
	t.Run("Cotação obtida com sucesso da API", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "USD", r.URL.Query().Get("base"))
			assert.Equal(t, "KZT", r.URL.Query().Get("symbols"))
			w.Write([]byte(`{"success":true,"rates":{"KZT":512.34}}`))
		}))
		defer server.Close()

		service := New(newTestConfig(server.URL))

		assert.Equal(t, 512.34, service.GetRate())
	})

	t.Run("API indisponível sem cotação anterior usa taxa de contingência", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		service := New(newTestConfig(server.URL))

		assert.Equal(t, 507.0, service.GetRate())
	})

	t.Run("API indisponível reutiliza última cotação conhecida", func(t *testing.T) {
		failing := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if failing {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"success":true,"rates":{"KZT":498.70}}`))
		}))
		defer server.Close()

		service := New(newTestConfig(server.URL))

		assert.Equal(t, 498.70, service.GetRate())

		failing = true
		assert.Equal(t, 498.70, service.GetRate())
	})

	t.Run("Resposta sem a moeda esperada usa taxa de contingência", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"rates":{"BRL":5.43}}`))
		}))
		defer server.Close()

		service := New(newTestConfig(server.URL))

		assert.Equal(t, 507.0, service.GetRate())
	})
}
