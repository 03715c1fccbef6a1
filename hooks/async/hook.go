// Package asynchook moves hook work off the store's critical section.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{DecodeFailedEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	s, _ := jsonstore.New[string, User](jsonstore.Options[string, User]{
//	    Provider: p,
//	    Hooks:    hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/jsonstore"
)

// Hooks forwards events to inner on a small worker pool. When the queue is
// full events are dropped and counted rather than blocking the caller.
type Hooks struct {
	inner   jsonstore.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	closed  atomic.Bool
	dropped atomic.Uint64
}

var _ jsonstore.Hooks = (*Hooks)(nil)

func New(inner jsonstore.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events sent after Close
// are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.closed.Store(true)
		close(h.q)
		h.wg.Wait()
	})
}

// Dropped reports how many events were discarded.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	if h.closed.Load() {
		h.dropped.Add(1)
		return
	}
	defer func() {
		// lost the race with Close
		if recover() != nil {
			h.dropped.Add(1)
		}
	}()
	select {
	case h.q <- f:
	default: // drop
		h.dropped.Add(1)
	}
}

// keys are copied; the store may reuse the slice after the hook returns.
func (h *Hooks) DecodeFailed(k []byte, size int) {
	k = append([]byte(nil), k...)
	h.try(func() { h.inner.DecodeFailed(k, size) })
}

func (h *Hooks) EncodeFailed(part string, err error) {
	h.try(func() { h.inner.EncodeFailed(part, err) })
}

func (h *Hooks) StoreFailed(op string, k []byte, err error) {
	k = append([]byte(nil), k...)
	h.try(func() { h.inner.StoreFailed(op, k, err) })
}
