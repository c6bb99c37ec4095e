package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/ananas/internal/reducers"
	"github.com/jask/ananas/internal/store"
)

const visibleMessages = 3

func (a *App) View() string {
	state := a.store.GetState()
	st := stylesFor(reducers.Settings(state).Theme)

	var panes []string
	if sb := reducers.Sidebar(state); sb.Open {
		panes = append(panes, st.pane.Render(renderSidebar(st, sb, reducers.Settings(state).PageSize)))
	}
	panes = append(panes, st.pane.Render(renderBoard(st, state)))

	sections := []string{
		renderHeader(st, state),
		lipgloss.JoinHorizontal(lipgloss.Top, panes...),
		renderMessages(st, reducers.Messages(state)),
	}
	if a.filtering {
		sections = append(sections, st.selected.Render("/"+a.filter))
	}
	if a.status != "" {
		sections = append(sections, st.warn.Render(a.status))
	}
	sections = append(sections, a.renderHelp(st))
	return strings.Join(sections, "\n")
}

func renderHeader(st styles, state *store.State) string {
	model := reducers.Model(state)
	project := model.Project
	if model.Dirty {
		project += "*"
	}
	title := st.title.Render(fmt.Sprintf("ananas · %s (rev %d)", project, model.Revision))

	tb := reducers.Toolbar(state)
	var modes []string
	for _, m := range reducers.Modes() {
		if m == tb.Mode {
			modes = append(modes, st.selected.Render("["+string(m)+"]"))
		} else {
			modes = append(modes, st.muted.Render(string(m)))
		}
	}
	engine := "engine: " + reducers.ExecutionEngine(state).Engine
	if tb.Busy {
		engine += " " + st.warn.Render("running")
	}
	return title + "  " + strings.Join(modes, " ") + "  " + st.text.Render(engine)
}

func renderSidebar(st styles, sb *reducers.SidebarState, pageSize int) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Steps"))
	if sb.Filter != "" {
		b.WriteString(st.muted.Render(" /" + sb.Filter))
	}
	if len(sb.Visible) == 0 {
		b.WriteString("\n" + st.muted.Render("no matches"))
		return b.String()
	}
	start := 0
	if pageSize > 0 && sb.Cursor >= pageSize {
		start = sb.Cursor - pageSize + 1
	}
	end := len(sb.Visible)
	if pageSize > 0 && end-start > pageSize {
		end = start + pageSize
	}
	for i := start; i < end; i++ {
		item := sb.Visible[i]
		line := fmt.Sprintf("%-22s %s", item.Label, st.muted.Render(string(item.Kind)))
		if i == sb.Cursor {
			b.WriteString("\n" + st.selected.Render("> ") + line)
		} else {
			b.WriteString("\n  " + line)
		}
	}
	return b.String()
}

func renderBoard(st styles, state *store.State) string {
	board := reducers.AnalysisBoard(state)
	var b strings.Builder
	b.WriteString(st.title.Render("Analysis board"))
	if len(board.Steps) == 0 {
		b.WriteString("\n" + st.muted.Render("empty: pick a step from the sidebar"))
	}
	for _, step := range board.Steps {
		if step.ID == board.Selected {
			b.WriteString("\n" + st.selected.Render("> "+step.Label))
		} else {
			b.WriteString("\n  " + st.text.Render(step.Label))
		}
	}
	for _, e := range board.Edges {
		from, _ := board.Step(e.From)
		to, _ := board.Step(e.To)
		b.WriteString("\n" + st.muted.Render(fmt.Sprintf("  %s → %s", from.Label, to.Label)))
	}

	if run, ok := reducers.ExecutionEngine(state).Latest(); ok {
		step, _ := board.Step(run.StepID)
		label := step.Label
		if label == "" {
			label = "removed step"
		}
		status := string(run.Status)
		switch run.Status {
		case reducers.RunSucceeded:
			status = st.ok.Render(status)
		case reducers.RunFailed:
			status = st.err.Render(status)
		default:
			status = st.warn.Render(status)
		}
		b.WriteString(fmt.Sprintf("\n\nlast run: %s on %s %s", label, run.Engine, status))
	}
	return b.String()
}

func renderMessages(st styles, log *reducers.MessageState) string {
	items := log.Items
	if len(items) > visibleMessages {
		items = items[len(items)-visibleMessages:]
	}
	lines := make([]string, 0, len(items))
	for _, m := range items {
		style := st.info
		switch m.Level {
		case reducers.LevelWarn:
			style = st.warn
		case reducers.LevelError:
			style = st.err
		}
		lines = append(lines, style.Render(m.Text))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderHelp(st styles) string {
	var parts []string
	for _, b := range a.keys.footer() {
		h := b.Help()
		parts = append(parts, "["+h.Key+"] "+h.Desc)
	}
	return st.muted.Render(strings.Join(parts, "  "))
}
