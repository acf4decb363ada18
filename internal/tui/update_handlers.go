package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd, handled := m.keys.Handle(m, msg)
	if !handled {
		return m, nil
	}
	next.refresh()
	return next, cmd
}

func (m Model) handleFrame(msg frameMsg) (Model, tea.Cmd) {
	m.engine.Tick(time.Time(msg))
	if m.engine.IsFinished() && !m.wasFinished {
		m.recordFinished(time.Time(msg))
	}
	if m.statusFrames > 0 {
		m.statusFrames--
		if m.statusFrames == 0 {
			m.status, m.statusIsError = "", false
		}
	}
	m.refresh()
	return m, frameCmd()
}

// handleWindowSize throws the old screen away. Only render state is rebuilt;
// the engine, preset and overlay flag carry over untouched.
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.screen = newScreen(m.width, max(m.height-config.FooterHeight, 0), m.layout)

	target := config.TargetProgressWidth
	if m.width < config.CompactModeThreshold {
		target = m.width / 2
	}
	if target < config.MinProgressWidth {
		target = config.MinProgressWidth
	}
	m.progress.Width = target

	util.Debugf("resized to %dx%d", m.width, m.height)
	m.refresh()
	return m, nil
}

func (m Model) handleToday(msg todayMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		util.LogError("load today", msg.err)
		return m, nil
	}
	m.today = msg.summary
	return m, nil
}

func (m Model) handleExported(msg exportedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		util.LogError("export report", msg.err)
		m.setStatus("Export failed: "+msg.err.Error(), true)
		return m, nil
	}
	util.Infof("exported report to %s", msg.path)
	m.setStatus("Report saved to "+msg.path, false)
	return m, nil
}

// refresh brings the derived display state in line with the engine. The
// clock is only redrawn when its text changed.
func (m *Model) refresh() {
	m.clockText = m.engine.RemainingText()
	m.wasFinished = m.engine.IsFinished()
	if m.screen == nil {
		return
	}
	m.screen.drawClock(m.clockText)
	m.screen.setInstructions(m.instructionsVisible)
}

func (m *Model) recordFinished(at time.Time) {
	if day := at.Format("2006-01-02"); day != m.today.Date {
		m.today = models.NewDaySummary(at)
	}
	m.today.Add(models.Run{Preset: m.preset, Duration: m.engine.Total(), FinishedAt: at})
	m.setStatus(fmt.Sprintf("%s finished", m.preset.Label()), false)
}

func (m *Model) setStatus(text string, isError bool) {
	m.status = text
	m.statusIsError = isError
	m.statusFrames = config.StatusMessageFrames
}

// --- Actions ---

func (m Model) toggleRunning() (Model, tea.Cmd, bool) {
	if m.engine.IsRunning() {
		m.engine.Stop()
	} else {
		m.engine.Start()
	}
	return m, nil, true
}

func (m Model) resetTimer() (Model, tea.Cmd, bool) {
	m.engine.Reset()
	return m, nil, true
}

func presetHandler(p models.Preset) KeyHandler {
	return func(m Model) (Model, tea.Cmd, bool) {
		m.applyPreset(p)
		return m, nil, true
	}
}

// applyPreset loads p into the engine and starts it from zero.
func (m *Model) applyPreset(p models.Preset) {
	m.preset = p
	if m.ringer != nil {
		ringer := m.ringer
		m.engine.SetExpiryListener(func(e timer.Expiry) {
			ringer.Ring(p, e)
		})
	}
	m.engine.SetTotal(m.cfg.Duration(p))
	m.engine.Reset()
	m.engine.Start()
	util.Debugf("loaded preset %s (%s)", p, m.engine.Total())
}

func (m Model) toggleInstructions() (Model, tea.Cmd, bool) {
	m.instructionsVisible = !m.instructionsVisible
	return m, nil, true
}

func (m Model) exportReport() (Model, tea.Cmd, bool) {
	if m.history == nil {
		m.setStatus("History is disabled; nothing to export", true)
		return m, nil, true
	}
	m.setStatus("Exporting report...", false)
	return m, exportCmd(m.ctx, m.history, m.reportsDir, m.now()), true
}
