package tui

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/render"
	"github.com/akyairhashvil/pomo/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

var testStart = time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

// countingGlyphs renders text as a single row and counts renders.
type countingGlyphs struct {
	renders int
}

func (g *countingGlyphs) Render(text string) render.Block {
	g.renders++
	return render.NewBlock([]string{text})
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Timer.PomodoroMinutes = 25
	cfg.Timer.ShortBreakMinutes = 5
	cfg.Timer.LongBreakMinutes = 10
	cfg.Timer.StartOnLaunch = true
	cfg.Instructions.ShowAtStart = true
	return cfg
}

func setupTestModelWith(t *testing.T, cfg config.Config, deps Deps) (Model, *timer.Engine) {
	t.Helper()
	if deps.Now == nil {
		deps.Now = func() time.Time { return testStart }
	}
	if deps.Glyphs == nil {
		deps.Glyphs = &countingGlyphs{}
	}
	engine := timer.New(cfg.Duration(0))
	m := NewModel(context.Background(), engine, cfg, deps)
	return resize(t, m, 100, 30), engine
}

func setupTestModel(t *testing.T) (Model, *timer.Engine) {
	t.Helper()
	return setupTestModelWith(t, testConfig(), Deps{})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model from Update, got %T", next)
	}
	return out, cmd
}

func resize(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	next, _ := update(t, m, tea.WindowSizeMsg{Width: w, Height: h})
	return next
}

func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	return update(t, m, msg)
}

// frames feeds one frame per offset from testStart.
func frames(t *testing.T, m Model, offsets ...time.Duration) Model {
	t.Helper()
	for _, off := range offsets {
		m, _ = update(t, m, frameMsg(testStart.Add(off)))
	}
	return m
}
