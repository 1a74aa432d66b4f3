// Package store hosts the requests and errors slices behind a single
// dispatch entry point.
//
// A Store is the host runtime the reducers are written for: it delivers
// each action to both reducers in order and replaces each slice with the
// reducer's result. Reads return copies, so callers never share maps with
// the store.
//
//	cfg := config.DefaultConfig()
//	cfg.Types = []string{"FETCH_USER"}
//	s, err := store.New(&cfg)
//
//	s.Dispatch(ctx, action.Action{Type: "FETCH_USER"})
//	s.IsPending("FETCH_USER") // true
//
//	s.Dispatch(ctx, action.Action{Type: "FETCH_USER_ERROR", Error: "timeout"})
//	s.IsComplete("FETCH_USER") // true
//	s.Errors()["FETCH_USER"]   // "timeout"
//
//	s.Run(ctx, action.ClearErrors("FETCH_USER"))
package store

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tailored-agentic-units/reqstate/action"
	"github.com/tailored-agentic-units/reqstate/actiontype"
	"github.com/tailored-agentic-units/reqstate/config"
	"github.com/tailored-agentic-units/reqstate/errstate"
	"github.com/tailored-agentic-units/reqstate/observability"
	"github.com/tailored-agentic-units/reqstate/requests"
)

// Option configures a Store after config-driven initialization.
type Option func(*Store)

// WithObserver overrides the config-selected observer.
func WithObserver(o observability.Observer) Option {
	return func(s *Store) { s.observer = o }
}

// WithPersister overrides the config-selected persister.
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

// Store holds the requests and errors slices for one application.
// It is safe for concurrent use.
type Store struct {
	id             string
	types          actiontype.Set
	reduceRequests action.Reducer[requests.State]
	reduceErrors   action.Reducer[errstate.State]
	observer       observability.Observer
	persister      Persister

	mu       sync.RWMutex
	requests requests.State
	errors   errstate.State
}

// New creates a Store whose reducers whitelist cfg.Types and their error and
// success variants.
func New(cfg *config.Config, opts ...Option) (*Store, error) {
	types, err := actiontype.Parse(cfg.Types)
	if err != nil {
		return nil, fmt.Errorf("failed to build whitelist: %w", err)
	}

	observer, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	persister, err := NewPersister(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create persister: %w", err)
	}

	s := &Store{
		id:             uuid.Must(uuid.NewV7()).String(),
		types:          types,
		reduceRequests: requests.Reducer(types),
		reduceErrors:   errstate.Reducer(types),
		observer:       observer,
		persister:      persister,
		requests:       requests.State{},
		errors:         errstate.State{},
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.observer == nil {
		s.observer = observability.NoOpObserver{}
	}

	s.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventCreate,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "store.New",
		Data:      map[string]any{"id": s.id, "types": types.Len()},
	})

	return s, nil
}

// ID returns the identifier used for this store's snapshots.
func (s *Store) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Types returns the store's whitelist.
func (s *Store) Types() actiontype.Set {
	return maps.Clone(s.types)
}

// Dispatch folds a into both slices.
func (s *Store) Dispatch(ctx context.Context, a action.Action) {
	s.mu.Lock()
	s.requests = s.reduceRequests(s.requests, a)
	s.errors = s.reduceErrors(s.errors, a)
	pending, failed := len(s.requests), len(s.errors)
	s.mu.Unlock()

	event := observability.Event{
		Type:      EventDispatch,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "store.Dispatch",
		Data: map[string]any{
			"type":     a.Type,
			"requests": pending,
			"errors":   failed,
		},
	}

	switch {
	case a.IsClearErrors():
		event.Type = EventCleared
		event.Level = observability.LevelInfo
		event.Data["keys"] = a.Keys
	case !s.types.Has(a.Type):
		event.Type = EventIgnored
	case actiontype.IsError(a.Type):
		event.Level = observability.LevelWarning
		event.Data["error"] = a.Error
	}

	s.observer.OnEvent(ctx, event)
}

// Dispatcher returns a Dispatch bound to ctx, for passing to thunks and
// other code that only knows the action package.
func (s *Store) Dispatcher(ctx context.Context) action.Dispatch {
	return func(a action.Action) {
		s.Dispatch(ctx, a)
	}
}

// Run executes thunk with the store's dispatcher.
func (s *Store) Run(ctx context.Context, thunk action.Thunk) {
	thunk(s.Dispatcher(ctx))
}

// Requests returns a copy of the requests slice.
func (s *Store) Requests() requests.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requests.Clone()
}

// Errors returns a copy of the errors slice.
func (s *Store) Errors() errstate.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errors.Clone()
}

// IsUninitiated reports whether none of names has been started.
func (s *Store) IsUninitiated(names ...string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return requests.IsUninitiated(s.requests, names...)
}

// IsPending reports whether every one of names is in flight.
func (s *Store) IsPending(names ...string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return requests.IsPending(s.requests, names...)
}

// IsComplete reports whether every one of names has settled.
func (s *Store) IsComplete(names ...string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return requests.IsComplete(s.requests, names...)
}
