package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/report"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type frameMsg time.Time

type todayMsg struct {
	summary models.DaySummary
	err     error
}

type exportedMsg struct {
	path string
	err  error
}

func frameCmd() tea.Cmd {
	return tea.Tick(config.FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func loadTodayCmd(ctx context.Context, h History, now time.Time) tea.Cmd {
	if h == nil {
		return nil
	}
	return func() tea.Msg {
		summary, err := h.Today(ctx, now)
		return todayMsg{summary: summary, err: err}
	}
}

func exportCmd(ctx context.Context, h History, dir string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		runs, err := h.RunsForDay(ctx, now)
		if err != nil {
			return exportedMsg{err: err}
		}
		path, err := report.WriteDaily(dir, now, runs)
		return exportedMsg{path: path, err: err}
	}
}
