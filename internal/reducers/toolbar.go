package reducers

import "github.com/jask/ananas/internal/store"

const (
	ActionSetToolbarMode store.ActionType = "toolbar/set_mode"
	ActionSetBusy        store.ActionType = "toolbar/set_busy"
)

// Mode is the workbench mode selected in the toolbar.
type Mode string

const (
	ModeDesign  Mode = "design"
	ModeRun     Mode = "run"
	ModeExplore Mode = "explore"
)

// Modes lists the toolbar modes in display order.
func Modes() []Mode { return []Mode{ModeDesign, ModeRun, ModeExplore} }

type ToolbarState struct {
	Mode Mode
	// Busy mirrors whether the execution engine has an active run.
	Busy bool
}

type SetToolbarMode struct{ Mode Mode }

type SetBusy struct{ Busy bool }

func (SetToolbarMode) Type() store.ActionType { return ActionSetToolbarMode }
func (SetBusy) Type() store.ActionType        { return ActionSetBusy }

func initialToolbar() *ToolbarState {
	return &ToolbarState{Mode: ModeDesign}
}

func reduceToolbar(s *ToolbarState, a store.Action) *ToolbarState {
	switch a := a.(type) {
	case SetToolbarMode:
		if a.Mode == s.Mode || !validMode(a.Mode) {
			return s
		}
		next := *s
		next.Mode = a.Mode
		return &next
	case SetBusy:
		if a.Busy == s.Busy {
			return s
		}
		return &ToolbarState{Mode: s.Mode, Busy: a.Busy}
	default:
		return s
	}
}

func validMode(m Mode) bool {
	switch m {
	case ModeDesign, ModeRun, ModeExplore:
		return true
	}
	return false
}
