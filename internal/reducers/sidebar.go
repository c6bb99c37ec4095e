package reducers

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/ananas/internal/store"
)

const (
	ActionToggleSidebar     store.ActionType = "sidebar/toggle"
	ActionSetSidebarItems   store.ActionType = "sidebar/set_items"
	ActionSelectSidebarItem store.ActionType = "sidebar/select_item"
	ActionMoveSidebarCursor store.ActionType = "sidebar/move_cursor"
	ActionFilterSidebar     store.ActionType = "sidebar/filter"
)

// SidebarItem is one entry of the step catalog shown in the sidebar.
type SidebarItem struct {
	ID    string
	Label string
	Kind  StepKind
}

type SidebarState struct {
	Open    bool
	Items   []SidebarItem
	Filter  string
	Visible []SidebarItem
	Cursor  int
}

// Current returns the item under the cursor.
func (s *SidebarState) Current() (SidebarItem, bool) {
	if s == nil || s.Cursor < 0 || s.Cursor >= len(s.Visible) {
		return SidebarItem{}, false
	}
	return s.Visible[s.Cursor], true
}

type ToggleSidebar struct{}

type SetSidebarItems struct{ Items []SidebarItem }

// SelectSidebarItem puts the cursor on the visible item at Index. A negative
// Index counts from the end.
type SelectSidebarItem struct{ Index int }

type MoveSidebarCursor struct{ Delta int }

type FilterSidebar struct{ Query string }

func (ToggleSidebar) Type() store.ActionType     { return ActionToggleSidebar }
func (SetSidebarItems) Type() store.ActionType   { return ActionSetSidebarItems }
func (SelectSidebarItem) Type() store.ActionType { return ActionSelectSidebarItem }
func (MoveSidebarCursor) Type() store.ActionType { return ActionMoveSidebarCursor }
func (FilterSidebar) Type() store.ActionType     { return ActionFilterSidebar }

func initialSidebar(open bool) func() *SidebarState {
	return func() *SidebarState { return &SidebarState{Open: open} }
}

func reduceSidebar(s *SidebarState, a store.Action) *SidebarState {
	switch a := a.(type) {
	case ToggleSidebar:
		next := *s
		next.Open = !s.Open
		return &next
	case SetSidebarItems:
		next := *s
		next.Items = slices.Clone(a.Items)
		next.Visible = filterItems(next.Items, next.Filter)
		next.Cursor = clampCursor(s.Cursor, len(next.Visible))
		return &next
	case SelectSidebarItem:
		i := a.Index
		if i < 0 {
			i += len(s.Visible)
		}
		if i < 0 || i >= len(s.Visible) || i == s.Cursor {
			return s
		}
		next := *s
		next.Cursor = i
		return &next
	case MoveSidebarCursor:
		cursor := clampCursor(s.Cursor+a.Delta, len(s.Visible))
		if cursor == s.Cursor {
			return s
		}
		next := *s
		next.Cursor = cursor
		return &next
	case FilterSidebar:
		query := strings.TrimSpace(a.Query)
		if query == s.Filter {
			return s
		}
		next := *s
		next.Filter = query
		next.Visible = filterItems(s.Items, query)
		next.Cursor = 0
		return &next
	default:
		return s
	}
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// filterItems keeps items whose label contains query, then items whose
// label has a word within a small edit distance of query. Substring matches
// rank first; ties keep catalog order.
func filterItems(items []SidebarItem, query string) []SidebarItem {
	if query == "" {
		return slices.Clone(items)
	}
	q := strings.ToLower(query)
	maxDist := max(1, len(q)/3)

	type ranked struct {
		item  SidebarItem
		score int
		pos   int
	}
	var hits []ranked
	for i, item := range items {
		label := strings.ToLower(item.Label)
		if strings.Contains(label, q) {
			hits = append(hits, ranked{item: item, score: 0, pos: i})
			continue
		}
		best := -1
		for _, word := range strings.Fields(label) {
			d := levenshtein.ComputeDistance(q, word)
			if best < 0 || d < best {
				best = d
			}
		}
		if best >= 0 && best <= maxDist {
			hits = append(hits, ranked{item: item, score: best, pos: i})
		}
	}
	slices.SortFunc(hits, func(a, b ranked) int {
		if c := cmp.Compare(a.score, b.score); c != 0 {
			return c
		}
		return cmp.Compare(a.pos, b.pos)
	})

	out := make([]SidebarItem, len(hits))
	for i, h := range hits {
		out[i] = h.item
	}
	return out
}
