package tui

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ananas/internal/config"
	"github.com/jask/ananas/internal/reducers"
	"github.com/jask/ananas/internal/store"
)

// App is the bubbletea model. It owns no domain state of its own: key
// presses become actions on the store and View reads the store's root
// state. Only transient input (the filter prompt, the status line, the
// window size) lives here.
type App struct {
	store   *store.Store
	cfg     config.Config
	persist func(config.Config) error
	keys    keyMap

	filtering bool
	filter    string
	status    string
	width     int
	height    int

	// runDelay stands in for engine latency until runs are submitted to a
	// real engine.
	runDelay time.Duration
}

type statusMsg string

type errMsg struct{ error }

type runDoneMsg struct {
	runID string
	err   error
}

// New returns the TUI model. persist, if set, is called with the updated
// config whenever the settings slice changes.
func New(st *store.Store, cfg config.Config, persist func(config.Config) error) *App {
	return &App{
		store:    st,
		cfg:      cfg,
		persist:  persist,
		keys:     defaultKeys(),
		runDelay: 1500 * time.Millisecond,
	}
}

func (a *App) Init() tea.Cmd {
	return a.dispatch(reducers.SetSidebarItems{Items: reducers.Catalog()})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		if a.filtering {
			return a, a.handleFilterKey(m)
		}
		return a.handleKey(m)
	case runDoneMsg:
		return a, a.dispatch(reducers.NewFinishRun(m.runID, m.err))
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := a.store.GetState()
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Sidebar):
		return a, a.dispatch(reducers.ToggleSidebar{})
	case key.Matches(m, a.keys.Up):
		return a, a.dispatch(reducers.MoveSidebarCursor{Delta: -1})
	case key.Matches(m, a.keys.Down):
		return a, a.dispatch(reducers.MoveSidebarCursor{Delta: 1})
	case key.Matches(m, a.keys.Top):
		return a, a.dispatch(reducers.SelectSidebarItem{Index: 0})
	case key.Matches(m, a.keys.Bottom):
		return a, a.dispatch(reducers.SelectSidebarItem{Index: -1})
	case key.Matches(m, a.keys.Filter):
		a.filtering = true
		a.filter = reducers.Sidebar(state).Filter
	case key.Matches(m, a.keys.Add):
		return a, a.addStep(state)
	case key.Matches(m, a.keys.NextStep):
		return a, a.dispatch(reducers.SelectStep{ID: nextStepID(reducers.AnalysisBoard(state))})
	case key.Matches(m, a.keys.Remove):
		if sel := reducers.AnalysisBoard(state).Selected; sel != "" {
			return a, a.dispatch(reducers.RemoveStep{ID: sel})
		}
	case key.Matches(m, a.keys.Run):
		return a, a.startRun(state)
	case key.Matches(m, a.keys.Engine):
		return a, a.dispatch(reducers.SelectEngine{Engine: nextEngine(reducers.ExecutionEngine(state).Engine)})
	case key.Matches(m, a.keys.Design):
		return a, a.dispatch(reducers.SetToolbarMode{Mode: reducers.ModeDesign})
	case key.Matches(m, a.keys.RunMode):
		return a, a.dispatch(reducers.SetToolbarMode{Mode: reducers.ModeRun})
	case key.Matches(m, a.keys.Explore):
		return a, a.dispatch(reducers.SetToolbarMode{Mode: reducers.ModeExplore})
	case key.Matches(m, a.keys.Theme):
		return a, a.dispatch(reducers.SetTheme{Theme: reducers.NextTheme(reducers.Settings(state).Theme)})
	case key.Matches(m, a.keys.Clear):
		return a, a.dispatch(reducers.ClearMessages{})
	case key.Matches(m, a.keys.Save):
		return a, a.dispatch(reducers.MarkSaved{}, reducers.NewMessage(reducers.LevelInfo, "project saved"))
	}
	return a, nil
}

func (a *App) handleFilterKey(m tea.KeyMsg) tea.Cmd {
	switch m.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEsc:
		a.filtering = false
		a.filter = ""
	case tea.KeyEnter:
		a.filtering = false
		return nil
	case tea.KeyBackspace:
		runes := []rune(a.filter)
		if len(runes) == 0 {
			return nil
		}
		a.filter = string(runes[:len(runes)-1])
	case tea.KeyRunes:
		a.filter += string(m.Runes)
	case tea.KeySpace:
		a.filter += " "
	default:
		return nil
	}
	return a.dispatch(reducers.FilterSidebar{Query: a.filter})
}

// addStep places the sidebar item under the cursor on the board and wires it
// after the currently selected step.
func (a *App) addStep(state *store.State) tea.Cmd {
	item, ok := reducers.Sidebar(state).Current()
	if !ok {
		return nil
	}
	add := reducers.NewAddStep(item.Kind, item.Label)
	actions := []store.Action{add}
	if prev := reducers.AnalysisBoard(state).Selected; prev != "" {
		actions = append(actions, reducers.ConnectSteps{From: prev, To: add.Step.ID})
	}
	return a.dispatch(actions...)
}

func (a *App) startRun(state *store.State) tea.Cmd {
	sel := reducers.AnalysisBoard(state).Selected
	if sel == "" {
		a.status = "select a step to run"
		return nil
	}
	start := reducers.NewStartRun(sel)
	cmd := a.dispatch(start)
	if reducers.ExecutionEngine(a.store.GetState()).Active != start.RunID {
		a.status = "a run is already in progress"
		return cmd
	}
	runID := start.RunID
	return tea.Batch(cmd, tea.Tick(a.runDelay, func(time.Time) tea.Msg { return runDoneMsg{runID: runID} }))
}

// dispatch sends actions to the store in order, stopping at the first
// error. When the settings slice changes identity the new settings are
// persisted.
func (a *App) dispatch(actions ...store.Action) tea.Cmd {
	before := reducers.Settings(a.store.GetState())
	for _, act := range actions {
		if err := a.store.Dispatch(act); err != nil {
			a.status = "error: " + err.Error()
			return nil
		}
	}
	after := reducers.Settings(a.store.GetState())
	if after == before || a.persist == nil {
		return nil
	}
	a.cfg = a.cfg.WithSettings(after)
	return a.persistCmd(a.cfg)
}

func (a *App) persistCmd(cfg config.Config) tea.Cmd {
	persist := a.persist
	return func() tea.Msg {
		if err := persist(cfg); err != nil {
			return errMsg{err}
		}
		return statusMsg("settings saved")
	}
}

func nextStepID(board *reducers.AnalysisBoardState) string {
	if len(board.Steps) == 0 {
		return ""
	}
	i := slices.IndexFunc(board.Steps, func(s reducers.Step) bool { return s.ID == board.Selected })
	return board.Steps[(i+1)%len(board.Steps)].ID
}

func nextEngine(current string) string {
	engines := reducers.Engines()
	i := slices.Index(engines, current)
	return engines[(i+1)%len(engines)]
}
