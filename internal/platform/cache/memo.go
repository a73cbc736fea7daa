package cache

import (
	"context"
	"sync"
)

// Memo de-duplicates lookups within one request. Entries live as long as the
// Memo itself, which is attached to a request context and dropped with it.
type Memo struct {
	mu    sync.Mutex
	calls map[string]*memoCall
}

type memoCall struct {
	done chan struct{}
	val  any
	err  error
}

// NewMemo returns an empty memo.
func NewMemo() *Memo {
	return &Memo{calls: make(map[string]*memoCall)}
}

// Do returns the result of fn for key, calling fn at most once per key while it
// keeps succeeding. Concurrent callers share the in-flight call. A failed call is
// forgotten so the next caller retries.
func (m *Memo) Do(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	m.mu.Lock()
	if c, ok := m.calls[key]; ok {
		m.mu.Unlock()
		select {
		case <-c.done:
			return c.val, c.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	c := &memoCall{done: make(chan struct{})}
	m.calls[key] = c
	m.mu.Unlock()

	c.val, c.err = fn(ctx)
	if c.err != nil {
		m.mu.Lock()
		if m.calls[key] == c {
			delete(m.calls, key)
		}
		m.mu.Unlock()
	}
	close(c.done)
	return c.val, c.err
}

// Len reports how many keys are currently held.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

type memoCtxKey struct{}

// WithMemo attaches m to ctx.
func WithMemo(ctx context.Context, m *Memo) context.Context {
	return context.WithValue(ctx, memoCtxKey{}, m)
}

// MemoFromContext returns the memo attached to ctx, if any.
func MemoFromContext(ctx context.Context) (*Memo, bool) {
	m, ok := ctx.Value(memoCtxKey{}).(*Memo)
	return m, ok && m != nil
}

// Memoize runs fn through the memo carried by ctx. Without a memo fn is called
// directly, so code outside a request still works.
func Memoize[T any](ctx context.Context, key string, fn func(context.Context) (T, error)) (T, error) {
	m, ok := MemoFromContext(ctx)
	if !ok {
		return fn(ctx)
	}
	v, err := m.Do(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
