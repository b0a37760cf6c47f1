package resilience

import "sync"

// Limiter limita o número de operações em voo simultaneamente. Operações
// além do limite entram em fila e são admitidas em ordem de chegada (FIFO)
// conforme vagas são liberadas
type Limiter struct {
	mu      sync.Mutex
	limit   int
	running int
	queue   []chan struct{}
}

// NewLimiter cria um limiter com o limite de concorrência informado
func NewLimiter(limit int) *Limiter {
	if limit < 1 {
		limit = 1
	}

	return &Limiter{limit: limit}
}

// Do executa a operação assim que houver uma vaga disponível, bloqueando
// o chamador enquanto isso. Seguro para uso concorrente, inclusive com
// limite 1
func (l *Limiter) Do(fn func() error) error {
	l.acquire()
	defer l.release()

	return fn()
}

// Running retorna o número de operações em execução no momento
func (l *Limiter) Running() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *Limiter) acquire() {
	l.mu.Lock()

	if l.running < l.limit {
		l.running++
		l.mu.Unlock()
		return
	}

	// Sem vaga: entra na fila e espera ser acordado pelo release
	wait := make(chan struct{})
	l.queue = append(l.queue, wait)
	l.mu.Unlock()

	<-wait
}

func (l *Limiter) release() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) > 0 {
		// A vaga é transferida diretamente para o primeiro da fila
		next := l.queue[0]
		l.queue = l.queue[1:]
		close(next)
		return
	}

	l.running--
}
