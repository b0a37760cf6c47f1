package resilience

import (
	"errors"
	"fmt"
	"math/rand"
	"net"
	"strings"
	"time"
)

// RetryConfig representa a configuração de retry com exponential backoff
type RetryConfig struct {
	MaxAttempts       int
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	BackoffMultiplier float64
}

// DefaultRetryConfig retorna a configuração padrão de retry
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:       3,
		BaseDelay:         1000 * time.Millisecond,
		MaxDelay:          30000 * time.Millisecond,
		BackoffMultiplier: 2,
	}
}

// Retryable permite que erros de integrações declarem se a falha é transitória
type Retryable interface {
	Retryable() bool
}

// HTTPError representa uma resposta HTTP de erro de um serviço remoto
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("erro na resposta da API. Status: %d, Corpo: %s", e.StatusCode, e.Body)
}

// Status HTTP que indicam falha transitória e podem ser repetidos
var retryableStatusCodes = map[int]bool{
	408: true,
	429: true,
	500: true,
	502: true,
	503: true,
	504: true,
}

// IsRetryableStatusCode verifica se o status HTTP indica falha transitória
func IsRetryableStatusCode(status int) bool {
	return retryableStatusCodes[status]
}

// IsRetryableError classifica um erro como transitório (pode ser repetido)
// ou terminal. Erros de autenticação e requisições malformadas são sempre
// terminais
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Erros que declaram a própria classificação (ex.: erros da Graph API)
	var retryable Retryable
	if errors.As(err, &retryable) {
		return retryable.Retryable()
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return IsRetryableStatusCode(httpErr.StatusCode)
	}

	// Erros de rede: timeout, conexão recusada/reiniciada, falha de DNS
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset")
}

// DelayFor calcula o delay de backoff para uma tentativa (1..MaxAttempts),
// com jitter uniforme de ±10% e limitado a MaxDelay
func (c RetryConfig) DelayFor(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	delay := float64(c.BaseDelay)
	for i := 1; i < attempt; i++ {
		delay *= c.BackoffMultiplier
	}

	if delay > float64(c.MaxDelay) {
		delay = float64(c.MaxDelay)
	}

	// Jitter uniforme de ±10% para evitar sincronização de retries
	jitter := (rand.Float64()*2 - 1) * 0.1 * delay
	delay += jitter

	if delay > float64(c.MaxDelay) {
		delay = float64(c.MaxDelay)
	}
	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}
