package store

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Listener is called after a dispatch that replaced the root state.
type Listener func(prev, next *State)

type subscription struct {
	id uint64
	fn Listener
}

// Store owns the current root state. It accepts actions one at a time,
// runs them through the root reducer and tells subscribers when the root
// state changed identity.
type Store struct {
	reduce RootReducer
	log    *slog.Logger

	state       atomic.Pointer[State]
	dispatching atomic.Bool

	mu     sync.Mutex
	subs   []subscription
	nextID uint64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a store around reduce and dispatches the init action to build
// the first root state.
func New(reduce RootReducer, opts ...Option) (*Store, error) {
	if reduce == nil {
		return nil, &ConfigError{Reason: "root reducer is nil"}
	}
	s := &Store{
		reduce: reduce,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Dispatch(InitAction); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}
	return s, nil
}

// GetState returns the current root state. Safe from any goroutine.
func (s *Store) GetState() *State {
	return s.state.Load()
}

// Subscribe registers l and returns a function that removes it. Listeners
// run in subscription order on the dispatching goroutine.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	if l == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: l})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Dispatch reduces action into the next root state. A dispatch issued while
// another is being reduced, including one from inside a reducer, is
// rejected with ErrDispatchInProgress. On error the current state is kept.
func (s *Store) Dispatch(action Action) error {
	if action == nil {
		return ErrInvalidAction
	}
	if !s.dispatching.CompareAndSwap(false, true) {
		return fmt.Errorf("dispatch %s: %w", action.Type(), ErrDispatchInProgress)
	}

	start := time.Now()
	prev, next, err := s.apply(action)
	if err != nil {
		s.log.Error("dispatch rejected", "action", action.Type(), "error", err)
		return fmt.Errorf("dispatch %s: %w", action.Type(), err)
	}

	changed := prev != next
	s.log.Debug("dispatch", "action", action.Type(), "changed", changed, "took", time.Since(start))
	if changed {
		s.notify(prev, next)
	}
	return nil
}

func (s *Store) apply(action Action) (prev, next *State, err error) {
	defer s.dispatching.Store(false)

	prev = s.state.Load()
	next, err = s.reduce(prev, action)
	if err != nil {
		return prev, prev, err
	}
	s.state.Store(next)
	return prev, next, nil
}

func (s *Store) notify(prev, next *State) {
	s.mu.Lock()
	subs := append([]subscription(nil), s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(prev, next)
	}
}
