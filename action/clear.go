package action

import "slices"

// ClearErrors returns a Thunk that dispatches a clear-errors event. With no
// keys the whole errors slice is cleared; otherwise only the given base
// types are removed.
func ClearErrors(keys ...string) Thunk {
	keys = slices.Clone(keys)
	return func(dispatch Dispatch) {
		dispatch(Action{Type: ClearErrorsType, Keys: keys})
	}
}

// ClearErrorsFrom is ClearErrors for an untyped key list. It fails before
// anything is dispatched if any key is not a string. Returned errors match
// ErrInvalidKey and carry connect.CodeInvalidArgument.
func ClearErrorsFrom(keys []any) (Thunk, error) {
	names, err := stringKeys(keys)
	if err != nil {
		return nil, err
	}
	return ClearErrors(names...), nil
}

func stringKeys(keys []any) ([]string, error) {
	if keys == nil {
		return nil, nil
	}
	names := make([]string, 0, len(keys))
	for i, k := range keys {
		name, ok := k.(string)
		if !ok {
			return nil, invalidKey(i, k)
		}
		names = append(names, name)
	}
	return names, nil
}
