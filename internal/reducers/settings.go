package reducers

import (
	"slices"

	"github.com/jask/ananas/internal/store"
)

const (
	ActionSetTheme       store.ActionType = "settings/set_theme"
	ActionSetPageSize    store.ActionType = "settings/set_page_size"
	ActionSetShowSidebar store.ActionType = "settings/set_show_sidebar"
)

// Themes lists the supported colour themes.
func Themes() []string { return []string{"mocha", "latte"} }

type SettingsState struct {
	Theme string
	// ShowSidebar is the persisted preference that seeds the sidebar's
	// open flag at startup.
	ShowSidebar bool
	PageSize    int
}

type SetTheme struct{ Theme string }

type SetPageSize struct{ Size int }

type SetShowSidebar struct{ Show bool }

func (SetTheme) Type() store.ActionType       { return ActionSetTheme }
func (SetPageSize) Type() store.ActionType    { return ActionSetPageSize }
func (SetShowSidebar) Type() store.ActionType { return ActionSetShowSidebar }

// NextTheme returns the theme after current in Themes, wrapping around.
func NextTheme(current string) string {
	themes := Themes()
	i := slices.Index(themes, current)
	return themes[(i+1)%len(themes)]
}

func initialSettings(defaults SettingsState) func() *SettingsState {
	if !slices.Contains(Themes(), defaults.Theme) {
		defaults.Theme = Themes()[0]
	}
	if defaults.PageSize <= 0 {
		defaults.PageSize = 20
	}
	return func() *SettingsState {
		s := defaults
		return &s
	}
}

func reduceSettings(s *SettingsState, a store.Action) *SettingsState {
	switch a := a.(type) {
	case SetTheme:
		if a.Theme == s.Theme || !slices.Contains(Themes(), a.Theme) {
			return s
		}
		next := *s
		next.Theme = a.Theme
		return &next
	case SetPageSize:
		if a.Size <= 0 || a.Size == s.PageSize {
			return s
		}
		next := *s
		next.PageSize = a.Size
		return &next
	case SetShowSidebar:
		if a.Show == s.ShowSidebar {
			return s
		}
		next := *s
		next.ShowSidebar = a.Show
		return &next
	default:
		return s
	}
}
