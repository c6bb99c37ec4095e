package reducers

import (
	"slices"

	"github.com/google/uuid"

	"github.com/jask/ananas/internal/store"
)

const (
	ActionAddStep      store.ActionType = "analysisBoard/add_step"
	ActionRemoveStep   store.ActionType = "analysisBoard/remove_step"
	ActionSelectStep   store.ActionType = "analysisBoard/select_step"
	ActionConnectSteps store.ActionType = "analysisBoard/connect_steps"
)

// StepKind classifies a pipeline step on the board.
type StepKind string

const (
	StepSource      StepKind = "source"
	StepTransform   StepKind = "transform"
	StepDestination StepKind = "destination"
	StepVisualize   StepKind = "visualization"
)

type Step struct {
	ID    string
	Kind  StepKind
	Label string
}

// Edge connects the output of From to the input of To.
type Edge struct {
	From string
	To   string
}

type AnalysisBoardState struct {
	Steps    []Step
	Edges    []Edge
	Selected string
}

// Step returns the step with the given id.
func (s *AnalysisBoardState) Step(id string) (Step, bool) {
	if s == nil {
		return Step{}, false
	}
	i := slices.IndexFunc(s.Steps, func(st Step) bool { return st.ID == id })
	if i < 0 {
		return Step{}, false
	}
	return s.Steps[i], true
}

type AddStep struct{ Step Step }

type RemoveStep struct{ ID string }

type SelectStep struct{ ID string }

type ConnectSteps struct{ From, To string }

func (AddStep) Type() store.ActionType      { return ActionAddStep }
func (RemoveStep) Type() store.ActionType   { return ActionRemoveStep }
func (SelectStep) Type() store.ActionType   { return ActionSelectStep }
func (ConnectSteps) Type() store.ActionType { return ActionConnectSteps }

// NewAddStep builds an AddStep with a fresh step id.
func NewAddStep(kind StepKind, label string) AddStep {
	return AddStep{Step: Step{ID: uuid.NewString(), Kind: kind, Label: label}}
}

func initialAnalysisBoard() *AnalysisBoardState {
	return &AnalysisBoardState{}
}

func reduceAnalysisBoard(s *AnalysisBoardState, a store.Action) *AnalysisBoardState {
	switch a := a.(type) {
	case AddStep:
		if a.Step.ID == "" {
			return s
		}
		if _, exists := s.Step(a.Step.ID); exists {
			return s
		}
		return &AnalysisBoardState{
			Steps:    append(slices.Clip(s.Steps), a.Step),
			Edges:    s.Edges,
			Selected: a.Step.ID,
		}
	case RemoveStep:
		if _, exists := s.Step(a.ID); !exists {
			return s
		}
		next := &AnalysisBoardState{
			Steps: slices.DeleteFunc(slices.Clone(s.Steps), func(st Step) bool { return st.ID == a.ID }),
			Edges: slices.DeleteFunc(slices.Clone(s.Edges), func(e Edge) bool { return e.From == a.ID || e.To == a.ID }),
		}
		if s.Selected != a.ID {
			next.Selected = s.Selected
		}
		return next
	case SelectStep:
		if a.ID == s.Selected {
			return s
		}
		if _, exists := s.Step(a.ID); !exists && a.ID != "" {
			return s
		}
		next := *s
		next.Selected = a.ID
		return &next
	case ConnectSteps:
		if !canConnect(s, a.From, a.To) {
			return s
		}
		next := *s
		next.Edges = append(slices.Clip(s.Edges), Edge{From: a.From, To: a.To})
		return &next
	default:
		return s
	}
}

func canConnect(s *AnalysisBoardState, from, to string) bool {
	if from == to {
		return false
	}
	if _, ok := s.Step(from); !ok {
		return false
	}
	if _, ok := s.Step(to); !ok {
		return false
	}
	return !slices.Contains(s.Edges, Edge{From: from, To: to})
}
