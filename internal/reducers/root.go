package reducers

import (
	"fmt"

	"github.com/jask/ananas/internal/store"
)

// Slice names, which are also the root state keys.
const (
	SliceSidebar         = "sidebar"
	SliceToolbar         = "toolbar"
	SliceAnalysisBoard   = "analysisBoard"
	SliceExecutionEngine = "executionEngine"
	SliceMessage         = "message"
	SliceModel           = "model"
	SliceSettings        = "settings"
)

// Options seeds the initial value of the slices that take one.
type Options struct {
	Engine       string
	MessageLimit int
	Settings     SettingsState
}

// DefaultOptions matches the configuration defaults.
func DefaultOptions() Options {
	return Options{
		Engine:       "local",
		MessageLimit: 100,
		Settings:     SettingsState{Theme: "mocha", ShowSidebar: true, PageSize: 20},
	}
}

// Slices returns the workbench slices in registration order.
func Slices(opts Options) []store.Registration {
	return []store.Registration{
		store.Slice(SliceSidebar, initialSidebar(opts.Settings.ShowSidebar), reduceSidebar),
		store.Slice(SliceToolbar, initialToolbar, reduceToolbar),
		store.Slice(SliceAnalysisBoard, initialAnalysisBoard, reduceAnalysisBoard),
		store.Slice(SliceExecutionEngine, initialExecutionEngine(opts.Engine), reduceExecutionEngine),
		store.Slice(SliceMessage, initialMessages(opts.MessageLimit), reduceMessages),
		store.Slice(SliceModel, initialModel, reduceModel),
		store.Slice(SliceSettings, initialSettings(opts.Settings), reduceSettings),
	}
}

// Root composes the workbench slices into the root reducer.
func Root(opts Options) (store.RootReducer, error) {
	root, err := store.Combine(Slices(opts)...)
	if err != nil {
		return nil, fmt.Errorf("compose workbench state: %w", err)
	}
	return root, nil
}

// NewStore builds a store holding the workbench state, with the follow-up
// reactions between slices subscribed.
func NewStore(opts Options, storeOpts ...store.Option) (*store.Store, error) {
	root, err := Root(opts)
	if err != nil {
		return nil, err
	}
	st, err := store.New(root, storeOpts...)
	if err != nil {
		return nil, err
	}
	st.Subscribe(react(st))
	return st, nil
}

func Sidebar(s *store.State) *SidebarState {
	v, _ := store.Select[*SidebarState](s, SliceSidebar)
	return v
}

func Toolbar(s *store.State) *ToolbarState {
	v, _ := store.Select[*ToolbarState](s, SliceToolbar)
	return v
}

func AnalysisBoard(s *store.State) *AnalysisBoardState {
	v, _ := store.Select[*AnalysisBoardState](s, SliceAnalysisBoard)
	return v
}

func ExecutionEngine(s *store.State) *ExecutionEngineState {
	v, _ := store.Select[*ExecutionEngineState](s, SliceExecutionEngine)
	return v
}

func Messages(s *store.State) *MessageState {
	v, _ := store.Select[*MessageState](s, SliceMessage)
	return v
}

func Model(s *store.State) *ModelState {
	v, _ := store.Select[*ModelState](s, SliceModel)
	return v
}

func Settings(s *store.State) *SettingsState {
	v, _ := store.Select[*SettingsState](s, SliceSettings)
	return v
}
