package reducers

import (
	"strings"

	"github.com/jask/ananas/internal/store"
)

const (
	ActionLoadProject store.ActionType = "model/load_project"
	ActionMarkDirty   store.ActionType = "model/mark_dirty"
	ActionMarkSaved   store.ActionType = "model/mark_saved"
)

// ModelState tracks the open project and whether the board has unsaved
// edits.
type ModelState struct {
	Project  string
	Revision int
	Dirty    bool
}

type LoadProject struct{ Name string }

// MarkDirty records one accepted edit of the project.
type MarkDirty struct{}

type MarkSaved struct{}

func (LoadProject) Type() store.ActionType { return ActionLoadProject }
func (MarkDirty) Type() store.ActionType   { return ActionMarkDirty }
func (MarkSaved) Type() store.ActionType   { return ActionMarkSaved }

func initialModel() *ModelState {
	return &ModelState{Project: "untitled"}
}

func reduceModel(s *ModelState, a store.Action) *ModelState {
	switch a := a.(type) {
	case LoadProject:
		name := strings.TrimSpace(a.Name)
		if name == "" {
			return s
		}
		return &ModelState{Project: name}
	case MarkSaved:
		if !s.Dirty {
			return s
		}
		return &ModelState{Project: s.Project, Revision: s.Revision}
	case MarkDirty:
		return &ModelState{Project: s.Project, Revision: s.Revision + 1, Dirty: true}
	default:
		return s
	}
}
