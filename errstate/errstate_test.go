package errstate_test

import (
	"reflect"
	"testing"

	"github.com/tailored-agentic-units/reqstate/action"
	"github.com/tailored-agentic-units/reqstate/actiontype"
	"github.com/tailored-agentic-units/reqstate/errstate"
)

type errorPayload struct {
	Message string
}

func newReducer() action.Reducer[errstate.State] {
	return errstate.Reducer(actiontype.New("TYPE_ONE", "TYPE_TWO", "TYPE_THREE"))
}

func newState() errstate.State {
	return errstate.State{
		"TYPE_ONE": errorPayload{Message: "This is error one."},
		"TYPE_TWO": errorPayload{Message: "This is error two."},
	}
}

func TestReducer(t *testing.T) {
	errThree := errorPayload{Message: "This is error three."}

	tests := []struct {
		name   string
		action action.Action
		want   errstate.State
	}{
		{
			name:   "clears specified errors",
			action: action.Action{Type: action.ClearErrorsType, Keys: []string{"TYPE_ONE"}},
			want:   errstate.State{"TYPE_TWO": errorPayload{Message: "This is error two."}},
		},
		{
			name:   "clears all errors",
			action: action.Action{Type: action.ClearErrorsType},
			want:   errstate.State{},
		},
		{
			name:   "clears all errors with empty keys",
			action: action.Action{Type: action.ClearErrorsType, Keys: []string{}},
			want:   errstate.State{},
		},
		{
			name:   "ignores unknown clear keys",
			action: action.Action{Type: action.ClearErrorsType, Keys: []string{"MISSING"}},
			want:   newState(),
		},
		{
			name:   "ignores types that are not whitelisted",
			action: action.Action{Type: "FOO_ERROR", Error: "boom"},
			want:   newState(),
		},
		{
			name:   "ignores types that are not errors",
			action: action.Action{Type: "TYPE_ONE"},
			want:   newState(),
		},
		{
			name:   "ignores success types",
			action: action.Action{Type: "TYPE_ONE_SUCCESS"},
			want:   newState(),
		},
		{
			name:   "records a new error",
			action: action.Action{Type: "TYPE_THREE_ERROR", Error: errThree},
			want: errstate.State{
				"TYPE_ONE":   errorPayload{Message: "This is error one."},
				"TYPE_TWO":   errorPayload{Message: "This is error two."},
				"TYPE_THREE": errThree,
			},
		},
		{
			name:   "replaces an existing error",
			action: action.Action{Type: "TYPE_ONE_ERROR", Error: "again"},
			want: errstate.State{
				"TYPE_ONE": "again",
				"TYPE_TWO": errorPayload{Message: "This is error two."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reducer := newReducer()
			got := reducer(newState(), tt.action)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("reducer(%q) = %v, want %v", tt.action.Type, got, tt.want)
			}
		})
	}
}

func TestReducer_DoesNotMutateInput(t *testing.T) {
	reducer := newReducer()
	state := newState()

	reducer(state, action.Action{Type: "TYPE_THREE_ERROR", Error: "x"})
	reducer(state, action.Action{Type: action.ClearErrorsType, Keys: []string{"TYPE_ONE"}})
	reducer(state, action.Action{Type: action.ClearErrorsType})

	if !reflect.DeepEqual(state, newState()) {
		t.Errorf("reducer modified its input: %v", state)
	}
}

func TestReducer_Defaults(t *testing.T) {
	reducer := errstate.Reducer(nil)

	got := reducer(nil, action.Action{Type: "FOO"})
	if got == nil || len(got) != 0 {
		t.Errorf("reducer(nil, FOO) = %v, want empty", got)
	}

	got = reducer(nil, action.Action{Type: "FOO_ERROR", Error: "x"})
	if len(got) != 0 {
		t.Errorf("empty whitelist recorded an error: %v", got)
	}

	got = reducer(errstate.State{"A": "x"}, action.Action{Type: action.ClearErrorsType})
	if len(got) != 0 {
		t.Errorf("clear with empty whitelist = %v, want empty", got)
	}
}

func TestState_Has(t *testing.T) {
	state := newState()
	if !state.Has("TYPE_ONE") {
		t.Error("Has(TYPE_ONE) = false, want true")
	}
	if state.Has("TYPE_THREE") {
		t.Error("Has(TYPE_THREE) = true, want false")
	}

	withNil := errstate.State{"NIL": nil}
	if !withNil.Has("NIL") {
		t.Error("Has should report keys holding a nil payload")
	}
}

func TestState_Clone(t *testing.T) {
	var nilState errstate.State
	if c := nilState.Clone(); c == nil {
		t.Error("nil Clone() returned nil")
	}

	orig := newState()
	c := orig.Clone()
	delete(c, "TYPE_ONE")
	if !orig.Has("TYPE_ONE") {
		t.Error("modifying clone affected original")
	}
}
