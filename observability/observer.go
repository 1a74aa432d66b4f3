// Package observability delivers store lifecycle events to pluggable
// observers. Level values follow OpenTelemetry SeverityNumbers so events can
// be forwarded to an OTel collector without translation.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level is the severity of an event.
type Level int

const (
	LevelVerbose Level = 5  // OTel DEBUG
	LevelInfo    Level = 9  // OTel INFO
	LevelWarning Level = 13 // OTel WARN
	LevelError   Level = 17 // OTel ERROR
)

// String returns the OTel severity text for the level.
func (l Level) String() string {
	switch {
	case l <= 4:
		return "TRACE"
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	case l <= 20:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// SlogLevel maps the level onto slog.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType names an event, e.g. "store.dispatch".
type EventType string

// Event is emitted by the store whenever its state changes hands.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events. Implementations must not block the caller for
// long; the store emits synchronously from Dispatch.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// NoOpObserver discards every event.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(context.Context, Event) {}

// MultiObserver forwards each event to several observers in order.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver returns a MultiObserver over the non-nil observers.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m.observers {
		obs.OnEvent(ctx, event)
	}
}
