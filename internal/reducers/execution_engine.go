package reducers

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/jask/ananas/internal/store"
)

const (
	ActionSelectEngine store.ActionType = "executionEngine/select"
	ActionStartRun     store.ActionType = "executionEngine/start_run"
	ActionFinishRun    store.ActionType = "executionEngine/finish_run"
)

// Engines lists the execution engines a run can target.
func Engines() []string { return []string{"local", "spark", "flink"} }

type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunSucceeded RunStatus = "succeeded"
	RunFailed    RunStatus = "failed"
)

type Run struct {
	ID         string
	StepID     string
	Engine     string
	Status     RunStatus
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

type ExecutionEngineState struct {
	Engine string
	Runs   []Run
	// Active is the id of the in-flight run, if any.
	Active string
}

// Latest returns the most recently started run.
func (s *ExecutionEngineState) Latest() (Run, bool) {
	if s == nil || len(s.Runs) == 0 {
		return Run{}, false
	}
	return s.Runs[len(s.Runs)-1], true
}

// RunByID returns the run with the given id.
func (s *ExecutionEngineState) RunByID(id string) (Run, bool) {
	if s == nil {
		return Run{}, false
	}
	i := slices.IndexFunc(s.Runs, func(r Run) bool { return r.ID == id })
	if i < 0 {
		return Run{}, false
	}
	return s.Runs[i], true
}

type SelectEngine struct{ Engine string }

type StartRun struct {
	RunID  string
	StepID string
	At     time.Time
}

type FinishRun struct {
	RunID string
	Err   string
	At    time.Time
}

func (SelectEngine) Type() store.ActionType { return ActionSelectEngine }
func (StartRun) Type() store.ActionType     { return ActionStartRun }
func (FinishRun) Type() store.ActionType    { return ActionFinishRun }

// NewStartRun stamps a run request for stepID with a fresh run id.
func NewStartRun(stepID string) StartRun {
	return StartRun{RunID: uuid.NewString(), StepID: stepID, At: time.Now()}
}

// NewFinishRun stamps the completion of runID. A non-nil err marks the run
// failed.
func NewFinishRun(runID string, err error) FinishRun {
	f := FinishRun{RunID: runID, At: time.Now()}
	if err != nil {
		f.Err = err.Error()
	}
	return f
}

func initialExecutionEngine(engine string) func() *ExecutionEngineState {
	if !slices.Contains(Engines(), engine) {
		engine = Engines()[0]
	}
	return func() *ExecutionEngineState { return &ExecutionEngineState{Engine: engine} }
}

func reduceExecutionEngine(s *ExecutionEngineState, a store.Action) *ExecutionEngineState {
	switch a := a.(type) {
	case SelectEngine:
		if s.Active != "" || a.Engine == s.Engine || !slices.Contains(Engines(), a.Engine) {
			return s
		}
		next := *s
		next.Engine = a.Engine
		return &next
	case StartRun:
		if s.Active != "" || a.RunID == "" {
			return s
		}
		run := Run{ID: a.RunID, StepID: a.StepID, Engine: s.Engine, Status: RunRunning, StartedAt: a.At}
		return &ExecutionEngineState{
			Engine: s.Engine,
			Runs:   append(slices.Clip(s.Runs), run),
			Active: a.RunID,
		}
	case FinishRun:
		if s.Active == "" || a.RunID != s.Active {
			return s
		}
		runs := slices.Clone(s.Runs)
		i := slices.IndexFunc(runs, func(r Run) bool { return r.ID == a.RunID })
		if i >= 0 {
			runs[i].FinishedAt = a.At
			runs[i].Status = RunSucceeded
			if a.Err != "" {
				runs[i].Status = RunFailed
				runs[i].Error = a.Err
			}
		}
		return &ExecutionEngineState{Engine: s.Engine, Runs: runs}
	default:
		return s
	}
}
