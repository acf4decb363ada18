package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akyairhashvil/pomo/internal/alarm"
	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/history"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/render"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/tui"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("pomo needs an interactive terminal")

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(parent context.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCloser, err := util.SetupLogging(cfg.Log.Path, config.AppName, cfg.Log.Debug)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	util.Infof("starting pomo %s", tui.VersionLabel())

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	store, closeStore := openHistory(ctx, cfg)
	defer closeStore()

	glyphs, err := render.NewFigletGlyphs(cfg.Clock.Font, config.FallbackFont)
	if glyphs == nil {
		return err
	}
	util.LogError("load clock font", err)

	// The engine is created once here and outlives every screen the UI
	// builds on resize.
	engine := timer.New(cfg.Duration(models.PresetPomodoro))

	deps := tui.Deps{
		Glyphs:     glyphs,
		ReportsDir: util.ReportsDir(config.AppName),
	}
	var recorder alarm.Recorder
	if store != nil {
		recorder = store
		deps.History = store
	}
	deps.Ringer = alarm.New(ctx, alarm.NewBeepPlayer(), recorder, cfg.SoundFile())

	model := tui.NewModel(ctx, engine, cfg, deps)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	util.Infof("pomo exited")
	return nil
}

// openHistory opens the run log when enabled. A store that fails to open is
// logged and skipped; the clock works without it.
func openHistory(ctx context.Context, cfg config.Config) (*history.Store, func()) {
	if !cfg.History.Enabled {
		return nil, func() {}
	}
	store, err := history.Open(ctx, cfg.History.Path)
	if err != nil {
		util.LogError("open history", err)
		return nil, func() {}
	}
	return store, closer(store)
}

func closer(c io.Closer) func() {
	return func() {
		util.LogError("close", c.Close())
	}
}
