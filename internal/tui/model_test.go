package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/golang/mock/gomock"
)

func TestNewModelLoadsPomodoro(t *testing.T) {
	m, engine := setupTestModel(t)
	if m.Preset() != models.PresetPomodoro {
		t.Fatalf("expected pomodoro preset, got %s", m.Preset())
	}
	if engine.Total() != 25*time.Minute || !engine.IsRunning() {
		t.Fatalf("expected running 25m engine, got %s running=%v", engine.Total(), engine.IsRunning())
	}
	if m.ClockText() != "25:00" {
		t.Fatalf("expected 25:00, got %q", m.ClockText())
	}
	if !m.InstructionsVisible() {
		t.Fatalf("expected instructions shown at start")
	}
}

func TestNewModelHonoursStartOnLaunch(t *testing.T) {
	cfg := testConfig()
	cfg.Timer.StartOnLaunch = false
	_, engine := setupTestModelWith(t, cfg, Deps{})
	if engine.IsRunning() {
		t.Fatalf("expected idle engine when start_on_launch is off")
	}
}

func TestFramesCountDown(t *testing.T) {
	m, engine := setupTestModel(t)
	m = frames(t, m, 0, time.Second, 2*time.Second, 3500*time.Millisecond)
	if engine.Accumulated() != 3500*time.Millisecond {
		t.Fatalf("expected 3.5s accumulated, got %s", engine.Accumulated())
	}
	if m.ClockText() != "24:56" {
		t.Fatalf("expected 24:56, got %q", m.ClockText())
	}
}

func TestFrameReturnsNextFrameCmd(t *testing.T) {
	m, _ := setupTestModel(t)
	_, cmd := update(t, m, frameMsg(testStart))
	if cmd == nil {
		t.Fatalf("expected the frame loop to be re-armed")
	}
}

func TestNoRedrawWhenClockTextUnchanged(t *testing.T) {
	glyphs := &countingGlyphs{}
	m, _ := setupTestModelWith(t, testConfig(), Deps{Glyphs: glyphs})
	if glyphs.renders != 1 {
		t.Fatalf("expected one render after the first resize, got %d", glyphs.renders)
	}

	m = frames(t, m, 0, 100*time.Millisecond)
	if glyphs.renders != 2 || m.ClockText() != "24:59" {
		t.Fatalf("expected redraw to 24:59, got %d renders showing %q", glyphs.renders, m.ClockText())
	}

	m = frames(t, m, 200*time.Millisecond, 500*time.Millisecond, 900*time.Millisecond)
	if glyphs.renders != 2 {
		t.Fatalf("expected no redraw within the same second, got %d renders", glyphs.renders)
	}

	frames(t, m, 1100*time.Millisecond)
	if glyphs.renders != 3 {
		t.Fatalf("expected a redraw once the second changed, got %d renders", glyphs.renders)
	}
}

func TestResizePreservesSessionState(t *testing.T) {
	m, engine := setupTestModel(t)
	m, _ = press(t, m, "s")
	m = frames(t, m, 0, 40*time.Second)
	m, _ = press(t, m, "h")
	before := engine.Accumulated()
	oldScreen := m.screen

	m = resize(t, m, 60, 20)

	if m.screen == oldScreen {
		t.Fatalf("expected the render layer to be rebuilt")
	}
	if engine.Accumulated() != before || before != 40*time.Second {
		t.Fatalf("expected accumulated %s to survive resize, got %s", before, engine.Accumulated())
	}
	if !engine.IsRunning() {
		t.Fatalf("expected engine to keep running across resize")
	}
	if m.Preset() != models.PresetShortBreak {
		t.Fatalf("expected short break preset to survive resize, got %s", m.Preset())
	}
	if m.InstructionsVisible() {
		t.Fatalf("expected hidden instructions to stay hidden")
	}
	if m.screen.surface.Width() != 60 || m.screen.surface.Height() != 18 {
		t.Fatalf("unexpected surface size %dx%d", m.screen.surface.Width(), m.screen.surface.Height())
	}

	m = frames(t, m, 41*time.Second)
	if engine.Accumulated() != 41*time.Second {
		t.Fatalf("expected countdown to resume after resize, got %s", engine.Accumulated())
	}
}

func TestExpiryRingsOnce(t *testing.T) {
	cfg := testConfig()
	cfg.Timer.PomodoroMinutes = 1
	ctrl := gomock.NewController(t)
	ringer := NewMockRinger(ctrl)
	done := make(chan timer.Expiry, 1)
	ringer.EXPECT().Ring(models.PresetPomodoro, gomock.Any()).Times(1).Do(func(_ models.Preset, e timer.Expiry) {
		done <- e
	})

	m, engine := setupTestModelWith(t, cfg, Deps{Ringer: ringer})
	m = frames(t, m, 0, 30*time.Second, 61*time.Second, 62*time.Second, 90*time.Second)

	select {
	case e := <-done:
		if e.Total != time.Minute {
			t.Fatalf("expected expiry for a 1m run, got %s", e.Total)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected the ringer to be called")
	}
	if !engine.IsFinished() || m.ClockText() != "00:00" {
		t.Fatalf("expected finished engine showing 00:00, got %q", m.ClockText())
	}
	if m.Today().Pomodoros() != 1 {
		t.Fatalf("expected one pomodoro today, got %d", m.Today().Pomodoros())
	}
	if !strings.Contains(ansi.Strip(m.View()), "TIME'S UP") {
		t.Fatalf("expected finished badge in footer")
	}
}

func TestUnknownMessageIsIgnored(t *testing.T) {
	m, engine := setupTestModel(t)
	next, cmd := update(t, m, struct{}{})
	if cmd != nil || next.Preset() != m.Preset() || engine.Accumulated() != 0 {
		t.Fatalf("expected unknown message to be a no-op")
	}
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := NewModel(context.Background(), timer.New(time.Minute), testConfig(), Deps{})
	if m.View() != "Starting..." {
		t.Fatalf("expected placeholder view, got %q", m.View())
	}
}

func TestViewShowsFooter(t *testing.T) {
	m, _ := setupTestModel(t)
	view := ansi.Strip(m.View())
	for _, want := range []string{"25:00", "Pomodoro", "RUNNING", "today: 0 pomodoros", "[space]start/stop"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q, got:\n%s", want, view)
		}
	}

	m = resize(t, m, 40, 20)
	view = ansi.Strip(m.View())
	if strings.Contains(view, "[space]") {
		t.Fatalf("expected key help hidden in compact mode")
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := setupTestModel(t)
	_, cmd := press(t, m, "ctrl+c")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
