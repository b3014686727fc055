package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pegwatch/core"
	"github.com/jask/pegwatch/internal/config"
	"github.com/jask/pegwatch/internal/tui"
	"github.com/jask/pegwatch/internal/wheel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	w, err := wheel.New(cfg.Wheel.Segments, wheel.WithDuration(cfg.Wheel.SpinDuration))
	if err != nil {
		log.Fatalf("wheel: %v", err)
	}

	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	p := tea.NewProgram(tui.NewWheelModel(w, keys, cfg.UI.DarkMode), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
