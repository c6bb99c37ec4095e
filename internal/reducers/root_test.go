package reducers

import (
	"errors"
	"slices"
	"testing"

	"github.com/jask/ananas/internal/store"
)

var wantKeys = []string{
	SliceSidebar, SliceToolbar, SliceAnalysisBoard, SliceExecutionEngine,
	SliceMessage, SliceModel, SliceSettings,
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := NewStore(DefaultOptions())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func mustDispatch(t *testing.T, s *store.Store, actions ...store.Action) {
	t.Helper()
	for _, a := range actions {
		if err := s.Dispatch(a); err != nil {
			t.Fatalf("dispatch %s: %v", a.Type(), err)
		}
	}
}

func TestRootInitialState(t *testing.T) {
	root, err := Root(Options{Engine: "spark", MessageLimit: 5, Settings: SettingsState{Theme: "latte", PageSize: 50}})
	if err != nil {
		t.Fatalf("Root: %v", err)
	}

	state, err := root(nil, store.InitAction)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !slices.Equal(state.Keys(), wantKeys) {
		t.Fatalf("keys = %v, want %v", state.Keys(), wantKeys)
	}
	if Sidebar(state).Open {
		t.Fatal("sidebar should follow settings.ShowSidebar")
	}
	if Toolbar(state).Mode != ModeDesign {
		t.Fatalf("mode = %q", Toolbar(state).Mode)
	}
	if len(AnalysisBoard(state).Steps) != 0 {
		t.Fatal("expected an empty board")
	}
	if ExecutionEngine(state).Engine != "spark" {
		t.Fatalf("engine = %q", ExecutionEngine(state).Engine)
	}
	if Messages(state).Limit != 5 {
		t.Fatalf("limit = %d", Messages(state).Limit)
	}
	if Model(state).Project != "untitled" {
		t.Fatalf("project = %q", Model(state).Project)
	}
	if got := *Settings(state); got != (SettingsState{Theme: "latte", PageSize: 50}) {
		t.Fatalf("settings = %+v", got)
	}
}

func TestRootKeySetInvariantAcrossActions(t *testing.T) {
	s := newTestStore(t)

	actions := []store.Action{
		ToggleSidebar{},
		SetSidebarItems{Items: Catalog()},
		FilterSidebar{Query: "csv"},
		SelectSidebarItem{Index: -1},
		SetToolbarMode{Mode: ModeRun},
		NewAddStep(StepSource, "CSV file"),
		NewStartRun("step"),
		NewMessage(LevelInfo, "hello"),
		LoadProject{Name: "demo"},
		SetTheme{Theme: "latte"},
		store.Tagged{Kind: "unknown"},
	}
	for _, a := range actions {
		mustDispatch(t, s, a)
		if got := s.GetState().Keys(); !slices.Equal(got, wantKeys) {
			t.Fatalf("%s: keys = %v", a.Type(), got)
		}
	}
}

func TestRootUnknownActionKeepsIdentity(t *testing.T) {
	s := newTestStore(t)
	before := s.GetState()

	mustDispatch(t, s, store.Tagged{Kind: "nobody/listens"})
	if s.GetState() != before {
		t.Fatal("expected identical root state")
	}
}

func TestRootSelectEngineOnlyTouchesExecutionEngine(t *testing.T) {
	s := newTestStore(t)
	before := s.GetState()

	mustDispatch(t, s, SelectEngine{Engine: "flink"})
	after := s.GetState()

	if after == before {
		t.Fatal("expected a new root state")
	}
	if ExecutionEngine(after).Engine != "flink" {
		t.Fatalf("engine = %q", ExecutionEngine(after).Engine)
	}
	for _, name := range wantKeys {
		if name == SliceExecutionEngine {
			continue
		}
		if before.Get(name) != after.Get(name) {
			t.Fatalf("%s changed identity", name)
		}
	}
}

func TestRootRunLifecycleAcrossSlices(t *testing.T) {
	s := newTestStore(t)
	add := NewAddStep(StepTransform, "SQL")
	start := NewStartRun(add.Step.ID)
	mustDispatch(t, s, add, start)

	state := s.GetState()
	if !Toolbar(state).Busy || ExecutionEngine(state).Active != start.RunID {
		t.Fatal("expected an active run and a busy toolbar")
	}

	mustDispatch(t, s, NewFinishRun(start.RunID, errors.New("out of memory")))
	state = s.GetState()
	if Toolbar(state).Busy || ExecutionEngine(state).Active != "" {
		t.Fatal("expected the run finished and the toolbar idle")
	}
	if run, ok := ExecutionEngine(state).Latest(); !ok || run.Status != RunFailed {
		t.Fatalf("run = %+v", run)
	}
	msgs := Messages(state).Items
	if len(msgs) != 1 || msgs[0].Level != LevelError || msgs[0].Text != "run failed: out of memory" {
		t.Fatalf("messages = %+v", msgs)
	}
}

func TestRootUnknownFinishRunKeepsSlicesInStep(t *testing.T) {
	s := newTestStore(t)
	add := NewAddStep(StepSource, "CSV")
	start := NewStartRun(add.Step.ID)
	mustDispatch(t, s, add, start)
	before := s.GetState()

	mustDispatch(t, s, FinishRun{RunID: "bogus", Err: "x"})

	after := s.GetState()
	if after != before {
		t.Fatal("expected identical root state")
	}
	if !Toolbar(after).Busy || ExecutionEngine(after).Active != start.RunID {
		t.Fatal("the active run must stay active")
	}
	if len(Messages(after).Items) != 0 {
		t.Fatalf("messages = %+v", Messages(after).Items)
	}
}

func TestRootSecondStartRunKeepsFirstRun(t *testing.T) {
	s := newTestStore(t)
	first := NewStartRun("a")
	mustDispatch(t, s, first, NewStartRun("b"), NewFinishRun(first.RunID, nil))

	state := s.GetState()
	if Toolbar(state).Busy {
		t.Fatal("expected toolbar idle")
	}
	if n := len(ExecutionEngine(state).Runs); n != 1 {
		t.Fatalf("runs = %d, want 1", n)
	}
	msgs := Messages(state).Items
	if len(msgs) != 1 || msgs[0].Text != "run finished" || msgs[0].Level != LevelInfo {
		t.Fatalf("messages = %+v", msgs)
	}
}

func TestRootEditsDirtyModel(t *testing.T) {
	s := newTestStore(t)
	a := NewAddStep(StepSource, "CSV")
	b := NewAddStep(StepDestination, "JDBC")
	mustDispatch(t, s, a, b, ConnectSteps{From: a.Step.ID, To: b.Step.ID})

	if m := Model(s.GetState()); !m.Dirty || m.Revision != 3 {
		t.Fatalf("model = %+v", m)
	}

	mustDispatch(t, s, MarkSaved{})
	if m := Model(s.GetState()); m.Dirty || m.Revision != 3 {
		t.Fatalf("model = %+v", m)
	}
}

func TestRootRejectedEditsLeaveModelClean(t *testing.T) {
	s := newTestStore(t)
	add := NewAddStep(StepSource, "CSV")
	mustDispatch(t, s, add, MarkSaved{})
	before := s.GetState()

	rejected := []store.Action{
		ConnectSteps{From: "nope", To: "nada"},
		ConnectSteps{From: add.Step.ID, To: add.Step.ID},
		RemoveStep{ID: "missing"},
		add,
	}
	for _, a := range rejected {
		mustDispatch(t, s, a)
		if s.GetState() != before {
			t.Fatalf("%s: expected identical root state", a.Type())
		}
	}
	if m := Model(s.GetState()); m.Dirty || m.Revision != 1 {
		t.Fatalf("model = %+v", m)
	}
}

func TestRootSelectionIsNotAnEdit(t *testing.T) {
	s := newTestStore(t)
	a := NewAddStep(StepSource, "CSV")
	b := NewAddStep(StepDestination, "JDBC")
	mustDispatch(t, s, a, b, SelectStep{ID: a.Step.ID})

	if got := AnalysisBoard(s.GetState()).Selected; got != a.Step.ID {
		t.Fatalf("selected = %q", got)
	}
	if rev := Model(s.GetState()).Revision; rev != 2 {
		t.Fatalf("revision = %d, want 2", rev)
	}

	mustDispatch(t, s, RemoveStep{ID: a.Step.ID})
	if rev := Model(s.GetState()).Revision; rev != 3 {
		t.Fatalf("revision = %d, want 3", rev)
	}
}

func TestRootSidebarToggleUpdatesPreference(t *testing.T) {
	s := newTestStore(t)
	if !Settings(s.GetState()).ShowSidebar {
		t.Fatal("expected sidebar shown by default")
	}

	mustDispatch(t, s, ToggleSidebar{})
	state := s.GetState()
	if Sidebar(state).Open || Settings(state).ShowSidebar {
		t.Fatal("expected sidebar closed and the preference updated")
	}
}

func TestFollowUpsOnUnrelatedChange(t *testing.T) {
	s := newTestStore(t)
	prev := s.GetState()
	mustDispatch(t, s, SetTheme{Theme: "latte"})

	if got := followUps(prev, s.GetState()); len(got) != 0 {
		t.Fatalf("follow-ups = %v", got)
	}
	if got := followUps(nil, prev); len(got) != 0 {
		t.Fatalf("follow-ups = %v", got)
	}
}

func TestSelectorsOnForeignState(t *testing.T) {
	if Sidebar(nil) != nil || Settings(nil) != nil {
		t.Fatal("expected nil selectors on a nil state")
	}
}
