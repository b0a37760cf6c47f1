package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errRemote = errors.New("falha remota simulada")

func failingOp() error { return errRemote }

func TestCircuitBreaker_AbreAposLimiteDeFalhas(t *testing.T) {
	cb := NewCircuitBreaker(BreakerConfig{
		FailureThreshold:  5,
		Cooldown:          60 * time.Second,
		HalfOpenSuccesses: 2,
	})

	for i := 0; i < 5; i++ {
		assert.Equal(t, errRemote, cb.Execute(failingOp))
	}

	assert.Equal(t, BreakerOpen, cb.State())

	// Com o breaker aberto, a operação não deve ser invocada
	invoked := false
	err := cb.Execute(func() error {
		invoked = true
		return nil
	})

	assert.False(t, invoked)

	var openErr *BreakerOpenError
	assert.ErrorAs(t, err, &openErr)
	assert.Greater(t, openErr.RetryAfter, time.Duration(0))
}

func TestCircuitBreaker_SucessoZeraContadorDeFalhas(t *testing.T) {
	cb := NewCircuitBreaker(BreakerConfig{
		FailureThreshold:  3,
		Cooldown:          60 * time.Second,
		HalfOpenSuccesses: 2,
	})

	assert.Error(t, cb.Execute(failingOp))
	assert.Error(t, cb.Execute(failingOp))
	assert.NoError(t, cb.Execute(func() error { return nil }))

	// O contador foi zerado: duas novas falhas não devem abrir o breaker
	assert.Error(t, cb.Execute(failingOp))
	assert.Error(t, cb.Execute(failingOp))
	assert.Equal(t, BreakerClosed, cb.State())
}

func TestCircuitBreaker_TransicaoParaHalfOpenAposCooldown(t *testing.T) {
	cb := NewCircuitBreaker(BreakerConfig{
		FailureThreshold:  1,
		Cooldown:          60 * time.Second,
		HalfOpenSuccesses: 2,
	})

	assert.Error(t, cb.Execute(failingOp))
	assert.Equal(t, BreakerOpen, cb.State())

	// Simula a passagem do cooldown
	cb.mu.Lock()
	cb.lastFailure = time.Now().Add(-2 * time.Minute)
	cb.mu.Unlock()

	// A próxima chamada é admitida como teste (half-open)
	assert.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, BreakerHalfOpen, cb.State())

	// Segundo sucesso consecutivo fecha o breaker
	assert.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, BreakerClosed, cb.State())
}

func TestCircuitBreaker_FalhaEmHalfOpenReabreOBreaker(t *testing.T) {
	cb := NewCircuitBreaker(BreakerConfig{
		FailureThreshold:  1,
		Cooldown:          60 * time.Second,
		HalfOpenSuccesses: 2,
	})

	assert.Error(t, cb.Execute(failingOp))

	cb.mu.Lock()
	cb.lastFailure = time.Now().Add(-2 * time.Minute)
	cb.mu.Unlock()

	// A chamada de teste falha, o breaker reabre e o cooldown recomeça
	assert.Equal(t, errRemote, cb.Execute(failingOp))
	assert.Equal(t, BreakerOpen, cb.State())

	var openErr *BreakerOpenError
	err := cb.Execute(failingOp)
	assert.ErrorAs(t, err, &openErr)
}

func TestCircuitBreaker_ResetManualForcaFechado(t *testing.T) {
	cb := NewCircuitBreaker(BreakerConfig{
		FailureThreshold:  1,
		Cooldown:          60 * time.Second,
		HalfOpenSuccesses: 2,
	})

	assert.Error(t, cb.Execute(failingOp))
	assert.Equal(t, BreakerOpen, cb.State())

	cb.Reset()
	assert.Equal(t, BreakerClosed, cb.State())

	invoked := false
	assert.NoError(t, cb.Execute(func() error {
		invoked = true
		return nil
	}))
	assert.True(t, invoked)
}
