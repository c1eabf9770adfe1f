// Package viewport publishes viewport-width changes to subscribers.
//
// A [Signal] holds the current width and notifies subscribers synchronously,
// on the publisher's goroutine, whenever the width changes. Every
// subscription gets its own [Subscription] handle so that several layout
// orchestrators can share one signal and detach independently on teardown.
//
//	sig := viewport.New(1280)
//	sub := sig.Subscribe(func(w float64) { log.Info("resized", "width", w) })
//	defer sub.Unsubscribe()
//	sig.Set(800)
package viewport

import (
	"sync"

	"github.com/google/uuid"
)

// Signal is a live viewport-width value. The zero value is not usable;
// call New.
type Signal struct {
	mu    sync.Mutex
	width float64
	subs  map[uuid.UUID]func(float64)
	order []uuid.UUID
}

// New returns a Signal with an initial width.
func New(width float64) *Signal {
	return &Signal{
		width: width,
		subs:  make(map[uuid.UUID]func(float64)),
	}
}

// Width returns the current width.
func (s *Signal) Width() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width
}

// Set updates the width and notifies subscribers in subscription order.
// Setting the current width again is a no-op.
func (s *Signal) Set(width float64) {
	s.mu.Lock()
	if width == s.width {
		s.mu.Unlock()
		return
	}
	s.width = width
	fns := s.snapshot()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(width)
	}
}

// Subscribe registers fn for width changes. fn is not called with the
// current width; callers read Width for the initial value.
func (s *Signal) Subscribe(fn func(width float64)) *Subscription {
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[id] = fn
	s.order = append(s.order, id)
	return &Subscription{ID: id, signal: s}
}

// Subscribers returns the number of active subscriptions.
func (s *Signal) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// snapshot returns subscriber callbacks in order. Callers hold s.mu.
func (s *Signal) snapshot() []func(float64) {
	fns := make([]func(float64), 0, len(s.order))
	for _, id := range s.order {
		fns = append(fns, s.subs[id])
	}
	return fns
}

func (s *Signal) remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[id]; !ok {
		return false
	}
	delete(s.subs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	ID     uuid.UUID
	signal *Signal
}

// Unsubscribe removes the subscription. It reports whether the
// subscription was still active; calling it again is harmless.
func (sub *Subscription) Unsubscribe() bool {
	if sub == nil || sub.signal == nil {
		return false
	}
	return sub.signal.remove(sub.ID)
}
