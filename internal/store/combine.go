package store

import (
	"fmt"
	"strings"
)

// Reducer computes the next state of one slice. It must be total and pure,
// and must return the slice's initial value when state is nil.
type Reducer func(state any, action Action) any

// Registration binds a slice name to its reducer.
type Registration struct {
	Name    string
	Reducer Reducer
}

// RootReducer computes the next root state. A nil prior state means the
// store has not been initialised yet.
type RootReducer func(prior *State, action Action) (*State, error)

// Slice builds a Registration from a typed reducer. A nil prior state is
// replaced with initial() before reduce runs.
func Slice[S any](name string, initial func() S, reduce func(S, Action) S) Registration {
	if initial == nil || reduce == nil {
		return Registration{Name: name}
	}
	return Registration{
		Name: name,
		Reducer: func(state any, action Action) any {
			if state == nil {
				return reduce(initial(), action)
			}
			typed, ok := state.(S)
			if !ok {
				panic(&ContractViolationError{
					Slice:  name,
					Action: action.Type(),
					Reason: fmt.Sprintf("prior state has type %T", state),
				})
			}
			return reduce(typed, action)
		},
	}
}

type composer struct {
	keys     *keySet
	reducers []Reducer
}

// Combine validates the registrations and returns the root reducer that
// routes every action to every slice in registration order.
//
// Each reducer is probed with the init action and with an action type no
// reducer can recognise; a reducer that returns no state for either is
// rejected here rather than on the first dispatch.
func Combine(slices ...Registration) (RootReducer, error) {
	if len(slices) == 0 {
		return nil, &ConfigError{Reason: "no slices registered"}
	}

	names := make([]string, 0, len(slices))
	reducers := make([]Reducer, 0, len(slices))
	seen := make(map[string]struct{}, len(slices))
	for _, reg := range slices {
		name := strings.TrimSpace(reg.Name)
		if name == "" || name != reg.Name {
			return nil, &ConfigError{Slice: reg.Name, Reason: "slice name must be non-empty and untrimmed"}
		}
		if _, dup := seen[name]; dup {
			return nil, &ConfigError{Slice: name, Reason: "registered more than once"}
		}
		if reg.Reducer == nil {
			return nil, &ConfigError{Slice: name, Reason: "reducer is nil"}
		}
		seen[name] = struct{}{}
		names = append(names, name)
		reducers = append(reducers, reg.Reducer)
	}

	for i, reduce := range reducers {
		if err := probe(names[i], reduce); err != nil {
			return nil, err
		}
	}

	c := &composer{keys: newKeySet(names), reducers: reducers}
	return c.reduce, nil
}

func probe(name string, reduce Reducer) error {
	if isUndefined(reduce(nil, InitAction)) {
		return &ConfigError{Slice: name, Reason: "returned no state during initialization"}
	}
	unknown := newProbeAction()
	if isUndefined(reduce(nil, unknown)) {
		return &ConfigError{
			Slice:  name,
			Reason: fmt.Sprintf("returned no state when probed with %s; unknown actions must return the current state", unknown.Type()),
		}
	}
	return nil
}

func (c *composer) reduce(prior *State, action Action) (*State, error) {
	if action == nil {
		return nil, ErrInvalidAction
	}
	if prior != nil && !c.keys.matches(prior.keys) {
		return nil, fmt.Errorf("%w: have %v, want %v", ErrForeignState, prior.Keys(), c.keys.names)
	}

	next := make([]any, len(c.reducers))
	changed := prior == nil
	for i, reduce := range c.reducers {
		name := c.keys.names[i]
		before := prior.Get(name)
		after := reduce(before, action)
		if isUndefined(after) {
			return nil, &ContractViolationError{Slice: name, Action: action.Type(), Reason: "returned no state"}
		}
		if !changed && !Same(before, after) {
			changed = true
		}
		next[i] = after
	}

	if !changed {
		return prior, nil
	}
	return &State{keys: c.keys, values: next}, nil
}
