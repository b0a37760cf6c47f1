package resilience

import (
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryConfig_DelayForRespeitaBackoffComJitter(t *testing.T) {
	config := RetryConfig{
		MaxAttempts:       3,
		BaseDelay:         1000 * time.Millisecond,
		MaxDelay:          30000 * time.Millisecond,
		BackoffMultiplier: 2,
	}

	expected := []time.Duration{
		1000 * time.Millisecond,
		2000 * time.Millisecond,
		4000 * time.Millisecond,
	}

	// O jitter é aleatório, então verificamos os limites em várias amostras
	for attempt := 1; attempt <= 3; attempt++ {
		base := expected[attempt-1]
		min := time.Duration(float64(base) * 0.9)
		max := time.Duration(float64(base) * 1.1)

		for i := 0; i < 50; i++ {
			delay := config.DelayFor(attempt)
			assert.GreaterOrEqual(t, delay, min, "tentativa %d abaixo do limite", attempt)
			assert.LessOrEqual(t, delay, max, "tentativa %d acima do limite", attempt)
		}
	}
}

func TestRetryConfig_DelayForLimitadoAoMaxDelay(t *testing.T) {
	config := RetryConfig{
		MaxAttempts:       10,
		BaseDelay:         1000 * time.Millisecond,
		MaxDelay:          5000 * time.Millisecond,
		BackoffMultiplier: 2,
	}

	for i := 0; i < 50; i++ {
		delay := config.DelayFor(10)
		assert.LessOrEqual(t, delay, 5000*time.Millisecond)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{
			name:      "erro nulo não é retryable",
			err:       nil,
			retryable: false,
		},
		{
			name:      "status 429 é retryable",
			err:       &HTTPError{StatusCode: 429, Body: "rate limit"},
			retryable: true,
		},
		{
			name:      "status 503 é retryable",
			err:       &HTTPError{StatusCode: 503, Body: "unavailable"},
			retryable: true,
		},
		{
			name:      "status 401 é terminal",
			err:       &HTTPError{StatusCode: 401, Body: "unauthorized"},
			retryable: false,
		},
		{
			name:      "status 400 é terminal",
			err:       &HTTPError{StatusCode: 400, Body: "bad request"},
			retryable: false,
		},
		{
			name:      "falha de DNS é retryable",
			err:       &net.DNSError{Err: "no such host", Name: "graph.facebook.com"},
			retryable: true,
		},
		{
			name:      "HTTPError com wrapping preserva a classificação",
			err:       fmt.Errorf("falha na chamada: %w", &HTTPError{StatusCode: 500}),
			retryable: true,
		},
		{
			name:      "erro genérico é terminal",
			err:       errors.New("payload inválido"),
			retryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryableError(tt.err))
		})
	}
}

func TestExecutor_NaoRepeteErroTerminal(t *testing.T) {
	breaker := NewCircuitBreaker(DefaultBreakerConfig())
	executor := NewExecutor(breaker, RetryConfig{
		MaxAttempts:       3,
		BaseDelay:         time.Millisecond,
		MaxDelay:          5 * time.Millisecond,
		BackoffMultiplier: 2,
	})

	authErr := &HTTPError{StatusCode: 401, Body: "token inválido"}
	calls := 0

	err := executor.Execute(func() error {
		calls++
		return authErr
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, authErr, err)
}

func TestExecutor_RepeteErroTransitorioAteOLimite(t *testing.T) {
	breaker := NewCircuitBreaker(DefaultBreakerConfig())
	executor := NewExecutor(breaker, RetryConfig{
		MaxAttempts:       3,
		BaseDelay:         time.Millisecond,
		MaxDelay:          5 * time.Millisecond,
		BackoffMultiplier: 2,
	})

	rateLimitErr := &HTTPError{StatusCode: 429, Body: "rate limit"}
	calls := 0

	err := executor.Execute(func() error {
		calls++
		return rateLimitErr
	})

	assert.Equal(t, 3, calls)
	// O último erro é propagado sem wrapping
	assert.Equal(t, rateLimitErr, err)
}

func TestExecutor_SucessoInterrompeOsRetries(t *testing.T) {
	breaker := NewCircuitBreaker(DefaultBreakerConfig())
	executor := NewExecutor(breaker, RetryConfig{
		MaxAttempts:       3,
		BaseDelay:         time.Millisecond,
		MaxDelay:          5 * time.Millisecond,
		BackoffMultiplier: 2,
	})

	calls := 0
	err := executor.Execute(func() error {
		calls++
		if calls < 2 {
			return &HTTPError{StatusCode: 500}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, BreakerClosed, breaker.State())
}

func TestExecutor_EsgotarRetriesContaComoUmaFalhaNoBreaker(t *testing.T) {
	breaker := NewCircuitBreaker(BreakerConfig{
		FailureThreshold:  2,
		Cooldown:          time.Minute,
		HalfOpenSuccesses: 2,
	})
	executor := NewExecutor(breaker, RetryConfig{
		MaxAttempts:       3,
		BaseDelay:         time.Millisecond,
		MaxDelay:          5 * time.Millisecond,
		BackoffMultiplier: 2,
	})

	op := func() error { return &HTTPError{StatusCode: 500} }

	// Cada ciclo completo de retries conta como uma única falha
	assert.Error(t, executor.Execute(op))
	assert.Equal(t, BreakerClosed, breaker.State())

	assert.Error(t, executor.Execute(op))
	assert.Equal(t, BreakerOpen, breaker.State())
}
