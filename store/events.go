package store

import "github.com/tailored-agentic-units/reqstate/observability"

// Store event types.
const (
	EventCreate   observability.EventType = "store.create"
	EventDispatch observability.EventType = "store.dispatch"
	EventIgnored  observability.EventType = "store.ignored"
	EventCleared  observability.EventType = "store.cleared"
	EventRestore  observability.EventType = "store.restore"

	EventSnapshotSave observability.EventType = "store.snapshot.save"
	EventSnapshotLoad observability.EventType = "store.snapshot.load"
)
