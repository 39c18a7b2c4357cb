package views

import (
	"context"
	"sync"
)

// requestTracker следит за запросами экрана
// Каждый запрос получает номер поколения в своем слоте (key) и дочерний контекст.
// Новый запрос в том же слоте отменяет предыдущий, Close отменяет все.
// Ответ применяется только если его поколение актуально и экран не закрыт.
type requestTracker struct {
	mu       sync.Mutex
	closed   bool
	gen      uint64
	inflight map[string]inflightRequest
}

type inflightRequest struct {
	gen    uint64
	cancel context.CancelFunc
}

type ticket struct {
	key string
	gen uint64
}

func newRequestTracker() *requestTracker {
	return &requestTracker{inflight: make(map[string]inflightRequest)}
}

// begin регистрирует запрос и возвращает его контекст
func (t *requestTracker) begin(parent context.Context, key string) (context.Context, ticket, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, ticket{}, ErrClosed
	}

	if prev, ok := t.inflight[key]; ok {
		prev.cancel()
	}

	t.gen++
	ctx, cancel := context.WithCancel(parent)
	t.inflight[key] = inflightRequest{gen: t.gen, cancel: cancel}
	return ctx, ticket{key: key, gen: t.gen}, nil
}

// finish снимает запрос с учета и сообщает, можно ли применять ответ
// Вызывающий держит блокировку состояния экрана, чтобы Close не вклинился между проверкой и записью
func (t *requestTracker) finish(tk ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.inflight[tk.key]
	if !ok || current.gen != tk.gen {
		return false
	}
	current.cancel()
	delete(t.inflight, tk.key)
	return !t.closed
}

// Close отменяет все запросы в полете
func (t *requestTracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	for key, req := range t.inflight {
		req.cancel()
		delete(t.inflight, key)
	}
}
