package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.screen == nil {
		return "Starting..."
	}
	return m.screen.View() + "\n" + m.renderFooter()
}

// renderFooter is two lines: the session summary and status, then the
// progress bar with the key help.
func (m Model) renderFooter() string {
	presetStyle := m.theme.Header
	if m.preset.IsBreak() {
		presetStyle = m.theme.Break
	}
	parts := []string{
		presetStyle.Render(m.preset.Label()),
		m.stateBadge(),
		m.theme.Dim.Render(fmt.Sprintf("today: %s, %s focused",
			FormatPomodoroCount(m.today.Pomodoros()), FormatDuration(m.today.Focus))),
	}
	if m.status != "" {
		style := m.theme.Status
		if m.statusIsError {
			style = m.theme.Error
		}
		parts = append(parts, style.Render(m.status))
	}
	first := strings.Join(parts, "  |  ")

	bar := m.progress.ViewAs(m.engine.Progress())
	second := bar
	if m.width >= config.CompactModeThreshold {
		second = lipgloss.JoinHorizontal(lipgloss.Top, bar, "  ", m.theme.Dim.Render(m.keys.HelpLine()))
	}
	if m.width > 0 {
		first = ansi.Truncate(first, m.width, "…")
		second = ansi.Truncate(second, m.width, "…")
	}
	return first + "\n" + second
}

func (m Model) stateBadge() string {
	switch m.engine.State() {
	case timer.StateRunning:
		return m.theme.Running.Render("RUNNING")
	case timer.StateFinished:
		return m.theme.Finished.Render("TIME'S UP")
	default:
		return m.theme.Paused.Render("PAUSED")
	}
}
