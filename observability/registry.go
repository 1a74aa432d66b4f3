package observability

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
)

// registry resolves the observer names used in config.Config.Observer.
// "slog" initially writes through slog.Default; cmd/reqstate replaces it
// with an observer bound to its own stderr handler before building a store.
var (
	registry = map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(slog.Default()),
	}
	registryMu sync.RWMutex
)

// GetObserver returns the observer registered under name.
func GetObserver(name string) (Observer, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if obs, ok := registry[name]; ok {
		return obs, nil
	}
	return nil, fmt.Errorf("unknown observer %q (registered: %v)", name, slices.Sorted(maps.Keys(registry)))
}

// RegisterObserver adds or replaces a named observer. Stores created
// afterwards resolve name to observer; existing stores keep the observer
// they were built with. A nil observer removes the entry.
func RegisterObserver(name string, observer Observer) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if observer == nil {
		delete(registry, name)
		return
	}
	registry[name] = observer
}

// Observers returns the registered names in sorted order.
func Observers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return slices.Sorted(maps.Keys(registry))
}
