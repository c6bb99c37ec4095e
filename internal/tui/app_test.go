package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ananas/internal/config"
	"github.com/jask/ananas/internal/reducers"
	"github.com/jask/ananas/internal/store"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestApp(t *testing.T, persist func(config.Config) error) *App {
	t.Helper()
	st, err := reducers.NewStore(reducers.DefaultOptions())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	app := New(st, config.Config{}, persist)
	app.Init()
	return app
}

func press(t *testing.T, app *App, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = app.Update(msg)
		if next != app {
			t.Fatalf("Update returned a different model")
		}
	}
	return cmd
}

func TestInitLoadsCatalog(t *testing.T) {
	app := newTestApp(t, nil)
	sb := reducers.Sidebar(app.store.GetState())
	if len(sb.Visible) != len(reducers.Catalog()) {
		t.Fatalf("visible = %d, want %d", len(sb.Visible), len(reducers.Catalog()))
	}
}

func TestToggleSidebar(t *testing.T) {
	app := newTestApp(t, nil)
	press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	if reducers.Sidebar(app.store.GetState()).Open {
		t.Fatal("expected sidebar closed")
	}
}

func TestAddStepsConnectsToSelection(t *testing.T) {
	app := newTestApp(t, nil)

	press(t, app, runes("a"), runes("j"), runes("a"))

	board := reducers.AnalysisBoard(app.store.GetState())
	if len(board.Steps) != 2 {
		t.Fatalf("steps = %+v", board.Steps)
	}
	if board.Steps[0].Label != "CSV file" || board.Steps[1].Label != "JSON file" {
		t.Fatalf("labels = %q, %q", board.Steps[0].Label, board.Steps[1].Label)
	}
	if len(board.Edges) != 1 || board.Edges[0] != (reducers.Edge{From: board.Steps[0].ID, To: board.Steps[1].ID}) {
		t.Fatalf("edges = %+v", board.Edges)
	}
	if !reducers.Model(app.store.GetState()).Dirty {
		t.Fatal("expected model dirty after edits")
	}
}

func TestNextAndRemoveStep(t *testing.T) {
	app := newTestApp(t, nil)
	press(t, app, runes("a"), runes("j"), runes("a"))

	press(t, app, runes("n"))
	board := reducers.AnalysisBoard(app.store.GetState())
	if board.Selected != board.Steps[0].ID {
		t.Fatal("expected selection to wrap to the first step")
	}

	press(t, app, runes("x"))
	board = reducers.AnalysisBoard(app.store.GetState())
	if len(board.Steps) != 1 || len(board.Edges) != 0 || board.Selected != "" {
		t.Fatalf("board = %+v", board)
	}
}

func TestFilterMode(t *testing.T) {
	app := newTestApp(t, nil)

	press(t, app, runes("/"), runes("j"), runes("d"), runes("b"), runes("c"))
	if !app.filtering {
		t.Fatal("expected filter prompt open")
	}
	sb := reducers.Sidebar(app.store.GetState())
	if sb.Filter != "jdbc" || len(sb.Visible) != 2 {
		t.Fatalf("filter = %q visible = %d", sb.Filter, len(sb.Visible))
	}

	press(t, app, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := reducers.Sidebar(app.store.GetState()).Filter; got != "jdb" {
		t.Fatalf("filter = %q, want jdb", got)
	}

	press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.filtering {
		t.Fatal("expected filter prompt closed")
	}
	if got := reducers.Sidebar(app.store.GetState()).Filter; got != "" {
		t.Fatalf("filter = %q, want cleared", got)
	}
}

func TestRunLifecycle(t *testing.T) {
	app := newTestApp(t, nil)

	press(t, app, runes("r"))
	if app.status != "select a step to run" {
		t.Fatalf("status = %q", app.status)
	}

	press(t, app, runes("a"))
	if cmd := press(t, app, runes("r")); cmd == nil {
		t.Fatal("expected a completion command")
	}
	state := app.store.GetState()
	runID := reducers.ExecutionEngine(state).Active
	if runID == "" || !reducers.Toolbar(state).Busy {
		t.Fatal("expected an active run")
	}

	press(t, app, runes("r"))
	if app.status != "a run is already in progress" {
		t.Fatalf("status = %q", app.status)
	}

	press(t, app, runDoneMsg{runID: runID, err: errors.New("disk full")})
	state = app.store.GetState()
	if reducers.Toolbar(state).Busy || reducers.ExecutionEngine(state).Active != "" {
		t.Fatal("expected run finished")
	}
	msgs := reducers.Messages(state).Items
	if len(msgs) == 0 || msgs[len(msgs)-1].Text != "run failed: disk full" {
		t.Fatalf("messages = %+v", msgs)
	}
}

func TestThemeChangePersists(t *testing.T) {
	var saved []config.Config
	app := newTestApp(t, func(c config.Config) error {
		saved = append(saved, c)
		return nil
	})

	cmd := press(t, app, runes("t"))
	if cmd == nil {
		t.Fatal("expected a persist command")
	}
	msg := cmd()
	if msg != statusMsg("settings saved") {
		t.Fatalf("msg = %#v", msg)
	}
	if len(saved) != 1 || saved[0].UI.Theme != "latte" {
		t.Fatalf("saved = %+v", saved)
	}

	if cmd := press(t, app, runes("2")); cmd != nil {
		t.Fatal("non-settings changes should not persist")
	}
}

func TestPersistErrorShowsInStatus(t *testing.T) {
	app := newTestApp(t, func(config.Config) error { return errors.New("read-only") })

	msg := press(t, app, runes("t"))()
	press(t, app, msg)
	if app.status != "error: read-only" {
		t.Fatalf("status = %q", app.status)
	}
}

func TestDispatchErrorShowsInStatus(t *testing.T) {
	app := newTestApp(t, nil)
	app.dispatch(store.Action(nil))
	if !strings.HasPrefix(app.status, "error: ") {
		t.Fatalf("status = %q", app.status)
	}
}

func TestQuit(t *testing.T) {
	app := newTestApp(t, nil)
	cmd := press(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestViewRendersState(t *testing.T) {
	app := newTestApp(t, nil)
	press(t, app, runes("a"), runes("s"))

	out := app.View()
	for _, want := range []string{"ananas", "Steps", "Analysis board", "CSV file", "project saved", "[q] quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}

	press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	if strings.Contains(app.View(), "Steps") {
		t.Fatal("closed sidebar should not render")
	}
}

func TestCtrlCQuitsWhileFiltering(t *testing.T) {
	app := newTestApp(t, nil)
	press(t, app, runes("/"), runes("q"))
	if got := reducers.Sidebar(app.store.GetState()).Filter; got != "q" {
		t.Fatalf("filter = %q, want q typed into the prompt", got)
	}

	cmd := press(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestJumpToSidebarEnds(t *testing.T) {
	app := newTestApp(t, nil)

	press(t, app, runes("G"))
	if got := reducers.Sidebar(app.store.GetState()).Cursor; got != len(reducers.Catalog())-1 {
		t.Fatalf("cursor = %d, want last", got)
	}
	press(t, app, runes("g"))
	if got := reducers.Sidebar(app.store.GetState()).Cursor; got != 0 {
		t.Fatalf("cursor = %d, want 0", got)
	}
}

func TestToggleSidebarPersistsPreference(t *testing.T) {
	var saved []config.Config
	app := newTestApp(t, func(c config.Config) error {
		saved = append(saved, c)
		return nil
	})

	cmd := press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	if cmd == nil {
		t.Fatal("expected a persist command")
	}
	cmd()
	if len(saved) != 1 || saved[0].UI.ShowSidebar {
		t.Fatalf("saved = %+v", saved)
	}
}

func TestRunSuccessAndStaleCompletion(t *testing.T) {
	app := newTestApp(t, nil)
	press(t, app, runes("a"), runes("r"))
	runID := reducers.ExecutionEngine(app.store.GetState()).Active

	press(t, app, runDoneMsg{runID: "stale", err: errors.New("late")})
	state := app.store.GetState()
	if !reducers.Toolbar(state).Busy || reducers.ExecutionEngine(state).Active != runID {
		t.Fatal("a completion for another run must not end the active one")
	}
	if n := len(reducers.Messages(state).Items); n != 0 {
		t.Fatalf("messages = %d, want none", n)
	}

	press(t, app, runDoneMsg{runID: runID})
	state = app.store.GetState()
	if reducers.Toolbar(state).Busy {
		t.Fatal("expected toolbar idle")
	}
	msgs := reducers.Messages(state).Items
	if len(msgs) != 1 || msgs[0].Text != "run finished" || msgs[0].Level != reducers.LevelInfo {
		t.Fatalf("messages = %+v", msgs)
	}
}
