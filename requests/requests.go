// Package requests tracks the lifecycle of asynchronous requests.
//
// Each base action type maps to one of three statuses: absent (the request
// was never started), true (pending) or false (complete). Complete covers
// both success and failure; combine with the errstate slice to learn which
// outcome occurred.
package requests

import (
	"maps"

	"github.com/tailored-agentic-units/reqstate/action"
	"github.com/tailored-agentic-units/reqstate/actiontype"
)

// State maps base action types to their pending flag.
type State map[string]bool

// Clone returns an independent copy of s. A nil State clones to an empty one.
func (s State) Clone() State {
	if s == nil {
		return State{}
	}
	return maps.Clone(s)
}

// Reducer returns a reducer that marks whitelisted base types pending and
// their error or success variants complete. Actions outside types leave the
// state unchanged. A nil types whitelist matches nothing.
func Reducer(types actiontype.Set) action.Reducer[State] {
	return func(state State, a action.Action) State {
		if state == nil {
			state = State{}
		}

		if !types.Has(a.Type) {
			return state
		}

		next := maps.Clone(state)
		if actiontype.IsBase(a.Type) {
			next[a.Type] = true
		} else {
			next[actiontype.Base(a.Type)] = false
		}
		return next
	}
}
