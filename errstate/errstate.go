// Package errstate keeps the last error reported for each asynchronous
// request, keyed by base action type.
package errstate

import (
	"maps"

	"github.com/tailored-agentic-units/reqstate/action"
	"github.com/tailored-agentic-units/reqstate/actiontype"
)

// State maps base action types to the error payload of their most recent
// error action. Payloads are stored as dispatched.
type State map[string]any

// Clone returns an independent copy of s. A nil State clones to an empty one.
func (s State) Clone() State {
	if s == nil {
		return State{}
	}
	return maps.Clone(s)
}

// Has reports whether an error is recorded for name.
func (s State) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Reducer returns a reducer that records the payload of whitelisted error
// actions under their base type and handles clear-errors events. All other
// actions leave the state unchanged. A nil types whitelist matches nothing,
// so only clear-errors can change the state.
func Reducer(types actiontype.Set) action.Reducer[State] {
	return func(state State, a action.Action) State {
		if state == nil {
			state = State{}
		}

		if a.IsClearErrors() {
			return clearKeys(state, a.Keys)
		}

		if !types.Has(a.Type) || !actiontype.IsError(a.Type) {
			return state
		}

		next := maps.Clone(state)
		next[actiontype.Base(a.Type)] = a.Error
		return next
	}
}

func clearKeys(state State, keys []string) State {
	if len(keys) == 0 {
		return State{}
	}
	next := maps.Clone(state)
	for _, k := range keys {
		delete(next, k)
	}
	return next
}
