package resilience

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Executor combina circuit breaker e retry em volta de uma chamada remota.
// O breaker enxerga um único sucesso/falha por ciclo completo de retries
type Executor struct {
	breaker *CircuitBreaker
	retry   RetryConfig
	sleep   func(time.Duration)
}

// NewExecutor cria um novo executor resiliente
func NewExecutor(breaker *CircuitBreaker, retry RetryConfig) *Executor {
	if retry.MaxAttempts <= 0 {
		retry.MaxAttempts = 1
	}

	return &Executor{
		breaker: breaker,
		retry:   retry,
		sleep:   time.Sleep,
	}
}

// Execute executa a operação protegida pelo breaker e com retry automático
// para falhas transitórias. O último erro é propagado sem wrapping para
// preservar a classificação de retryability no chamador
func (e *Executor) Execute(op func() error) error {
	return e.breaker.Execute(func() error {
		return e.retryLoop(op)
	})
}

// Breaker retorna o circuit breaker usado pelo executor
func (e *Executor) Breaker() *CircuitBreaker {
	return e.breaker
}

func (e *Executor) retryLoop(op func() error) error {
	var lastErr error

	for attempt := 1; attempt <= e.retry.MaxAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}

		if attempt == e.retry.MaxAttempts {
			logrus.WithError(lastErr).Warnf("Todas as %d tentativas falharam", e.retry.MaxAttempts)
			return lastErr
		}

		if !IsRetryableError(lastErr) {
			return lastErr
		}

		delay := e.retry.DelayFor(attempt)
		logrus.WithError(lastErr).Warnf("Tentativa %d/%d falhou. Repetindo em %dms",
			attempt, e.retry.MaxAttempts, delay.Milliseconds())
		e.sleep(delay)
	}

	return lastErr
}
