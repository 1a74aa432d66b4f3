package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tailored-agentic-units/reqstate/errstate"
	"github.com/tailored-agentic-units/reqstate/observability"
	"github.com/tailored-agentic-units/reqstate/requests"
)

// Snapshot is a point-in-time copy of a store's slices.
type Snapshot struct {
	ID        string         `json:"id" yaml:"id"`
	Requests  requests.State `json:"requests" yaml:"requests"`
	Errors    errstate.State `json:"errors" yaml:"errors"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
}

// Struct converts the snapshot to a protobuf Struct for embedding in RPC
// messages. Error payloads that implement error are stored as their message;
// other payloads are converted through their JSON encoding.
func (snap Snapshot) Struct() (*structpb.Struct, error) {
	reqs := make(map[string]any, len(snap.Requests))
	for k, v := range snap.Requests {
		reqs[k] = v
	}

	errs, err := snap.encodableErrors()
	if err != nil {
		return nil, err
	}

	return structpb.NewStruct(map[string]any{
		"id":        snap.ID,
		"requests":  reqs,
		"errors":    map[string]any(errs),
		"timestamp": snap.Timestamp.Format(time.RFC3339Nano),
	})
}

// encodableErrors returns the error payloads in a form every codec can
// round-trip: error values become their message and everything else goes
// through its JSON encoding.
func (snap Snapshot) encodableErrors() (errstate.State, error) {
	errs := make(errstate.State, len(snap.Errors))
	for k, v := range snap.Errors {
		normalized, err := jsonValue(v)
		if err != nil {
			return nil, fmt.Errorf("error payload %q: %w", k, err)
		}
		errs[k] = normalized
	}
	return errs, nil
}

func jsonValue(v any) (any, error) {
	if err, ok := v.(error); ok {
		return err.Error(), nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		ID:        s.id,
		Requests:  s.requests.Clone(),
		Errors:    s.errors.Clone(),
		Timestamp: time.Now(),
	}
}

// Restore replaces the store's state and ID with those of snap.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	if snap.ID != "" {
		s.id = snap.ID
	}
	s.requests = snap.Requests.Clone()
	s.errors = snap.Errors.Clone()
	s.mu.Unlock()

	s.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventRestore,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "store.Restore",
		Data: map[string]any{
			"id":       snap.ID,
			"requests": len(snap.Requests),
			"errors":   len(snap.Errors),
		},
	})
}

// Save persists the current snapshot.
func (s *Store) Save(ctx context.Context) error {
	if s.persister == nil {
		return ErrNoPersister
	}

	snap := s.Snapshot()
	if err := s.persister.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot %s: %w", snap.ID, err)
	}

	s.observer.OnEvent(ctx, observability.Event{
		Type:      EventSnapshotSave,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "store.Save",
		Data:      map[string]any{"id": snap.ID},
	})
	return nil
}

// Load restores the snapshot stored under id.
func (s *Store) Load(ctx context.Context, id string) error {
	if s.persister == nil {
		return ErrNoPersister
	}

	snap, err := s.persister.Load(ctx, id)
	if err != nil {
		return fmt.Errorf("load snapshot %s: %w", id, err)
	}

	s.observer.OnEvent(ctx, observability.Event{
		Type:      EventSnapshotLoad,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "store.Load",
		Data:      map[string]any{"id": id},
	})

	s.Restore(snap)
	return nil
}
