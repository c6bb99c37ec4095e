// Package store composes independently owned state slices into one root
// state tree and holds that tree for the running application.
//
// Allowed here:
// - slice registration, the root reducer and its composition-time checks
// - the root State value and typed read access to its slices
// - the dispatch container (Store) and subscription
//
// Not allowed here:
// - domain reducers (internal/reducers) or rendering (internal/tui)
package store
