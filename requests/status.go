package requests

// IsUninitiated reports whether none of names has been started.
func IsUninitiated(state State, names ...string) bool {
	return every(names, func(name string) bool {
		_, ok := state[name]
		return !ok
	})
}

// IsPending reports whether every one of names is in flight.
func IsPending(state State, names ...string) bool {
	return every(names, func(name string) bool {
		pending, ok := state[name]
		return ok && pending
	})
}

// IsComplete reports whether every one of names has settled, successfully
// or not. A mix of pending and complete names is neither pending nor
// complete.
func IsComplete(state State, names ...string) bool {
	return every(names, func(name string) bool {
		pending, ok := state[name]
		return ok && !pending
	})
}

func every(names []string, pred func(string) bool) bool {
	for _, name := range names {
		if !pred(name) {
			return false
		}
	}
	return true
}
