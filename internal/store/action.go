package store

import "github.com/google/uuid"

// ActionType is the discriminant every action carries.
type ActionType string

// Action describes an intended state transition. The concrete Go type
// carries the payload; reducers switch on it and return their input unchanged
// for anything they do not recognise.
type Action interface {
	Type() ActionType
}

const (
	// ActionInit is dispatched once when a store is created.
	ActionInit ActionType = "@@INIT"

	probePrefix ActionType = "@@INIT/PROBE_UNKNOWN_ACTION."
)

type initAction struct{}

func (initAction) Type() ActionType { return ActionInit }

// InitAction is the synthetic action that bootstraps the root state.
var InitAction Action = initAction{}

// Tagged is an untyped action for callers that do not need a dedicated
// payload type.
type Tagged struct {
	Kind    ActionType
	Payload any
}

func (t Tagged) Type() ActionType { return t.Kind }

type probeAction struct {
	kind ActionType
}

func (p probeAction) Type() ActionType { return p.kind }

// newProbeAction returns an action no reducer can know about.
func newProbeAction() Action {
	return probeAction{kind: probePrefix + ActionType(uuid.NewString())}
}
