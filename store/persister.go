package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/tailored-agentic-units/reqstate/config"
)

// Persister stores snapshots by ID. Implementations must be safe for
// concurrent use.
type Persister interface {
	// Save stores snap under snap.ID, replacing any previous snapshot.
	Save(ctx context.Context, snap Snapshot) error

	// Load returns the snapshot stored under id. A missing snapshot is
	// reported with an error matching ErrSnapshotNotFound.
	Load(ctx context.Context, id string) (Snapshot, error)

	// Delete removes the snapshot stored under id. Missing IDs are ignored.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored snapshots.
	List(ctx context.Context) ([]string, error)
}

type memoryPersister struct {
	snapshots map[string]Snapshot
	mu        sync.RWMutex
}

// NewMemoryPersister returns a Persister that keeps snapshots in process
// memory. Snapshots are lost when the process exits.
func NewMemoryPersister() Persister {
	return &memoryPersister{
		snapshots: make(map[string]Snapshot),
	}
}

func (m *memoryPersister) Save(_ context.Context, snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap.Requests = snap.Requests.Clone()
	snap.Errors = snap.Errors.Clone()
	m.snapshots[snap.ID] = snap
	return nil
}

func (m *memoryPersister) Load(_ context.Context, id string) (Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap, exists := m.snapshots[id]
	if !exists {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	snap.Requests = snap.Requests.Clone()
	snap.Errors = snap.Errors.Clone()
	return snap, nil
}

func (m *memoryPersister) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.snapshots, id)
	return nil
}

func (m *memoryPersister) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.snapshots))
	for id := range m.snapshots {
		ids = append(ids, id)
	}
	return ids, nil
}

var (
	persisters = map[string]Persister{
		"memory": NewMemoryPersister(),
	}
	mutex sync.RWMutex
)

// GetPersister returns the persister registered under name.
func GetPersister(name string) (Persister, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	p, exists := persisters[name]
	if !exists {
		return nil, fmt.Errorf("unknown persister: %s", name)
	}
	return p, nil
}

// RegisterPersister adds or replaces a named persister.
func RegisterPersister(name string, p Persister) {
	mutex.Lock()
	defer mutex.Unlock()

	persisters[name] = p
}

// NewPersister creates the persister selected by cfg. The "json" and "yaml"
// backends write to cfg.SnapshotDir; any other name is resolved through the
// registry. An empty name disables persistence and returns nil.
func NewPersister(cfg *config.Config) (Persister, error) {
	switch cfg.Persister {
	case "":
		return nil, nil
	case "json":
		return NewJSONPersister(cfg.SnapshotDir)
	case "yaml":
		return NewYAMLPersister(cfg.SnapshotDir)
	default:
		return GetPersister(cfg.Persister)
	}
}
