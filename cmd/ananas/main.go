package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ananas/internal/config"
	"github.com/jask/ananas/internal/logging"
	"github.com/jask/ananas/internal/reducers"
	"github.com/jask/ananas/internal/store"
	"github.com/jask/ananas/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, logFile, err := logging.Open(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logFile.Close()

	st, err := reducers.NewStore(cfg.StateOptions(), store.WithLogger(logger))
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	logger.Info("store ready", "slices", st.GetState().Keys())

	st.Subscribe(func(prev, next *store.State) {
		if reducers.Model(prev) != reducers.Model(next) {
			m := reducers.Model(next)
			logger.Debug("model changed", "project", m.Project, "revision", m.Revision, "dirty", m.Dirty)
		}
	})

	p := tea.NewProgram(tui.New(st, cfg, config.Save), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		fmt.Printf("error: %v\n", err)
	}
}
