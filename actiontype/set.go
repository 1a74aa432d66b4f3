package actiontype

import (
	"maps"
	"slices"
)

// Set is a whitelist of action types. The zero value is an empty Set and
// is safe to query.
type Set map[string]struct{}

// New returns a Set holding the base, error and success type of every
// given base name.
func New(types ...string) Set {
	s := make(Set, len(types)*3)
	for _, t := range types {
		s[t] = struct{}{}
		s[Error(t)] = struct{}{}
		s[Success(t)] = struct{}{}
	}
	return s
}

// Parse builds a Set from a dynamically typed list of base names, such as a
// value decoded from JSON or YAML. v must be a []string or a []any holding
// only strings; a bare string is rejected.
//
// Returned errors match ErrNotSequence and carry connect.CodeInvalidArgument.
func Parse(v any) (Set, error) {
	switch types := v.(type) {
	case []string:
		return New(types...), nil
	case []any:
		names := make([]string, 0, len(types))
		for i, t := range types {
			name, ok := t.(string)
			if !ok {
				return nil, invalidArgument("element %d has type %T", i, t)
			}
			names = append(names, name)
		}
		return New(names...), nil
	default:
		return nil, invalidArgument("got %T", v)
	}
}

// Has reports whether name is whitelisted.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of whitelisted action types.
func (s Set) Len() int {
	return len(s)
}

// Names returns the whitelisted action types in sorted order.
func (s Set) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// Merge returns a new Set holding the members of s and other.
func (s Set) Merge(other Set) Set {
	merged := maps.Clone(s)
	if merged == nil {
		merged = make(Set, len(other))
	}
	maps.Copy(merged, other)
	return merged
}
