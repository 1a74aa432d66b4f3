// Package action defines the events folded by the request and error
// reducers, and the clear-errors action creator.
package action

import "encoding/json"

// ClearErrorsType is the action type that resets the errors slice.
const ClearErrorsType = "CLEAR_ERRORS"

// Action is a dispatched event. Type follows the actiontype naming
// convention; Error carries the failure payload of an error variant and Keys
// scopes a clear-errors event to specific base types.
type Action struct {
	Type  string   `json:"type" yaml:"type"`
	Error any      `json:"error,omitempty" yaml:"error,omitempty"`
	Keys  []string `json:"keys,omitempty" yaml:"keys,omitempty"`
}

// Reducer folds an action into a state slice and returns the new slice.
// Implementations must not modify the state they are given.
type Reducer[S any] func(state S, a Action) S

// Dispatch delivers an action to the host state container.
type Dispatch func(a Action)

// Thunk is a deferred action that dispatches through the given Dispatch.
type Thunk func(dispatch Dispatch)

// IsClearErrors reports whether a is a clear-errors event.
func (a Action) IsClearErrors() bool {
	return a.Type == ClearErrorsType
}

// UnmarshalJSON decodes an action and rejects non-string keys.
func (a *Action) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type  string `json:"type"`
		Error any    `json:"error"`
		Keys  []any  `json:"keys"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	keys, err := stringKeys(raw.Keys)
	if err != nil {
		return err
	}

	*a = Action{Type: raw.Type, Error: raw.Error, Keys: keys}
	return nil
}
