package resilience

import (
	"fmt"
	"sync"
	"time"
)

// BreakerState representa o estado atual do circuit breaker
type BreakerState string

const (
	BreakerClosed   BreakerState = "closed"
	BreakerOpen     BreakerState = "open"
	BreakerHalfOpen BreakerState = "half-open"
)

// BreakerConfig representa a configuração do circuit breaker
type BreakerConfig struct {
	FailureThreshold  int           // Falhas consecutivas até abrir o breaker
	Cooldown          time.Duration // Tempo de espera antes de permitir uma chamada de teste
	HalfOpenSuccesses int           // Sucessos consecutivos em half-open para fechar
}

// DefaultBreakerConfig retorna a configuração padrão do circuit breaker
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold:  5,
		Cooldown:          60 * time.Second,
		HalfOpenSuccesses: 2,
	}
}

// BreakerOpenError é retornado quando o breaker está aberto e a chamada
// é rejeitada sem ser executada
type BreakerOpenError struct {
	RetryAfter time.Duration
}

func (e *BreakerOpenError) Error() string {
	return fmt.Sprintf("circuit breaker aberto, tente novamente em %dms", e.RetryAfter.Milliseconds())
}

// CircuitBreaker protege uma dependência remota contra falhas em cascata.
// A transição open -> half-open acontece de forma preguiçosa, na próxima
// chamada após o cooldown, sem timer em background
type CircuitBreaker struct {
	mu                sync.Mutex
	config            BreakerConfig
	state             BreakerState
	failures          int
	lastFailure       time.Time
	halfOpenSuccesses int
}

// NewCircuitBreaker cria uma nova instância do circuit breaker
func NewCircuitBreaker(config BreakerConfig) *CircuitBreaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 1
	}
	if config.HalfOpenSuccesses <= 0 {
		config.HalfOpenSuccesses = 1
	}

	return &CircuitBreaker{
		config: config,
		state:  BreakerClosed,
	}
}

// Execute executa a operação se o breaker permitir. Se o breaker estiver
// aberto e o cooldown ainda não tiver passado, retorna BreakerOpenError
// sem invocar a operação
func (cb *CircuitBreaker) Execute(op func() error) error {
	if err := cb.admit(); err != nil {
		return err
	}

	if err := op(); err != nil {
		cb.recordFailure()
		return err
	}

	cb.recordSuccess()
	return nil
}

// admit verifica se uma chamada pode passar pelo breaker
func (cb *CircuitBreaker) admit() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != BreakerOpen {
		return nil
	}

	elapsed := time.Since(cb.lastFailure)
	if elapsed < cb.config.Cooldown {
		return &BreakerOpenError{RetryAfter: cb.config.Cooldown - elapsed}
	}

	// Cooldown expirou: permite uma chamada de teste
	cb.state = BreakerHalfOpen
	cb.halfOpenSuccesses = 0

	return nil
}

func (cb *CircuitBreaker) recordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == BreakerHalfOpen {
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenSuccesses {
			cb.state = BreakerClosed
			cb.failures = 0
			cb.halfOpenSuccesses = 0
		}
		return
	}

	cb.failures = 0
}

func (cb *CircuitBreaker) recordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures++
	cb.lastFailure = time.Now()

	// Qualquer falha em half-open reabre o breaker e reinicia o cooldown
	if cb.state == BreakerHalfOpen {
		cb.state = BreakerOpen
		return
	}

	if cb.failures >= cb.config.FailureThreshold {
		cb.state = BreakerOpen
	}
}

// State retorna o estado atual do breaker
func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Reset força o breaker de volta para o estado fechado e zera os contadores
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.state = BreakerClosed
	cb.failures = 0
	cb.lastFailure = time.Time{}
	cb.halfOpenSuccesses = 0
}
