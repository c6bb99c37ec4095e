package reducers

import "github.com/jask/ananas/internal/store"

// react returns the listener that keeps the derived slices in step with the
// slices that own the data. Slice reducers never read each other's state, so
// a change accepted by one slice is announced to the others with follow-up
// actions dispatched after the store has committed it. Rejected requests
// leave the owning slice untouched and produce no follow-ups.
func react(st *store.Store) store.Listener {
	return func(prev, next *store.State) {
		for _, a := range followUps(prev, next) {
			// The store logs rejected dispatches.
			if err := st.Dispatch(a); err != nil {
				return
			}
		}
	}
}

func followUps(prev, next *store.State) []store.Action {
	var out []store.Action

	if pb, nb := AnalysisBoard(prev), AnalysisBoard(next); pb != nil && nb != nil && boardEdited(pb, nb) {
		out = append(out, MarkDirty{})
	}

	if pe, ne := ExecutionEngine(prev), ExecutionEngine(next); pe != nil && ne != nil && pe.Active != ne.Active {
		if pe.Active != "" {
			if run, ok := ne.RunByID(pe.Active); ok {
				out = append(out, runFinished(run))
			}
		}
		out = append(out, SetBusy{Busy: ne.Active != ""})
	}

	if ps, ns := Sidebar(prev), Sidebar(next); ps != nil && ns != nil && ps.Open != ns.Open {
		out = append(out, SetShowSidebar{Show: ns.Open})
	}
	return out
}

// boardEdited reports whether the steps or edges changed. Selection alone is
// not an edit.
func boardEdited(prev, next *AnalysisBoardState) bool {
	return !store.Same(prev.Steps, next.Steps) || !store.Same(prev.Edges, next.Edges)
}

func runFinished(run Run) AddMessage {
	if run.Status == RunFailed {
		return AddMessage{Message: Message{ID: "run:" + run.ID, Level: LevelError, Text: "run failed: " + run.Error}}
	}
	return AddMessage{Message: Message{ID: "run:" + run.ID, Level: LevelInfo, Text: "run finished"}}
}
