package store

import "iter"

// keySet is the fixed, ordered set of slice names produced by one Combine
// call. It is shared by every State that composer builds and never changes.
type keySet struct {
	names []string
	index map[string]int
}

func newKeySet(names []string) *keySet {
	ks := &keySet{names: names, index: make(map[string]int, len(names))}
	for i, name := range names {
		ks.index[name] = i
	}
	return ks
}

// matches reports whether other holds exactly the same names.
func (k *keySet) matches(other *keySet) bool {
	if k == other {
		return true
	}
	if other == nil || len(k.names) != len(other.names) {
		return false
	}
	for _, name := range other.names {
		if _, ok := k.index[name]; !ok {
			return false
		}
	}
	return true
}

// State is the root state tree: one value per registered slice, in
// registration order. A State is only ever built by a root reducer and is
// never modified after it is returned.
type State struct {
	keys   *keySet
	values []any
}

// Lookup returns the value held for name.
func (s *State) Lookup(name string) (any, bool) {
	if s == nil || s.keys == nil {
		return nil, false
	}
	i, ok := s.keys.index[name]
	if !ok {
		return nil, false
	}
	return s.values[i], true
}

// Get returns the value held for name, or nil when the slice is unknown.
func (s *State) Get(name string) any {
	v, _ := s.Lookup(name)
	return v
}

// Keys returns the slice names in registration order.
func (s *State) Keys() []string {
	if s == nil || s.keys == nil {
		return nil
	}
	return append([]string(nil), s.keys.names...)
}

func (s *State) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// All yields every slice name and value in registration order.
func (s *State) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if s == nil || s.keys == nil {
			return
		}
		for i, name := range s.keys.names {
			if !yield(name, s.values[i]) {
				return
			}
		}
	}
}

// Select returns the named slice as S. The second result is false when the
// slice is missing or holds a different type.
func Select[S any](s *State, name string) (S, bool) {
	v, ok := s.Lookup(name)
	if !ok {
		var zero S
		return zero, false
	}
	typed, ok := v.(S)
	return typed, ok
}
