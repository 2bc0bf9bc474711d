package main

import (
	"fmt"
	"os"
	"path/filepath"

	"stopwatch_tui/internal"
	"stopwatch_tui/internal/config"
	"stopwatch_tui/internal/i18n"
	"stopwatch_tui/internal/logger"
	"stopwatch_tui/internal/state"
	"stopwatch_tui/internal/stopwatch"
	"stopwatch_tui/internal/timer"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg := loadConfig()

	log, logFile, err := logger.NewFile(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logFile.Close()

	var store stopwatch.Store
	repo, err := state.NewRepository(cfg.Database.Path)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Database.Path).Msg("failed to open database, state will not persist")
		store = stopwatch.NewMemoryStore()
	} else {
		defer repo.Close()
		store = repo
	}

	ticks := make(chan func())
	ticker := timer.New(ticks)
	defer ticker.Cancel()

	ctrl := stopwatch.New(store, ticker,
		stopwatch.WithLogger(logger.Component(log, "stopwatch")),
		stopwatch.WithInterval(cfg.App.TickInterval),
	)
	labels := i18n.Detect(cfg.UI.Language)
	log.Info().Str("lang", labels.Lang()).Str("db", cfg.Database.Path).Msg("starting")

	m := internal.NewModel(ctrl, labels, logger.Component(log, "ui"))

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)

	go func() {
		for fire := range ticks {
			p.Send(internal.MsgTick{Fire: fire})
		}
	}()

	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited with error")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	manager, err := config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default config: %v\n", err)
		dir, derr := os.UserHomeDir()
		if derr != nil {
			dir = "."
		}
		return config.DefaultConfig(filepath.Join(dir, ".stopwatch-tui"))
	}
	return manager.GetConfig()
}
