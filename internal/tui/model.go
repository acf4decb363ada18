// Package tui drives the clock: it owns the bubbletea loop that ticks the
// timer engine every frame, dispatches keys to engine operations and keeps a
// render layer that is rebuilt whenever the terminal is resized.
package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/render"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Deps are the collaborators of a Model. Any of them may be nil.
type Deps struct {
	Ringer     Ringer
	History    History
	Glyphs     render.Glyphs
	ReportsDir string
	Now        func() time.Time
}

// Model is the root bubbletea model. The engine is owned by the caller and
// outlives every screen the model builds.
type Model struct {
	ctx        context.Context
	cfg        config.Config
	engine     *timer.Engine
	keys       *HandlerRegistry
	ringer     Ringer
	history    History
	reportsDir string
	now        func() time.Time
	theme      Theme
	layout     screenLayout

	preset              models.Preset
	instructionsVisible bool
	wasFinished         bool
	clockText           string
	today               models.DaySummary

	status        string
	statusIsError bool
	statusFrames  int

	width    int
	height   int
	screen   *screen
	progress progress.Model
}

// NewModel loads the pomodoro preset into engine. The countdown starts
// straight away unless the config says otherwise.
func NewModel(ctx context.Context, engine *timer.Engine, cfg config.Config, deps Deps) Model {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	theme := ThemeByName(cfg.Clock.Theme)
	m := Model{
		ctx:                 ctx,
		cfg:                 cfg,
		engine:              engine,
		ringer:              deps.Ringer,
		history:             deps.History,
		reportsDir:          deps.ReportsDir,
		now:                 now,
		theme:               theme,
		instructionsVisible: cfg.Instructions.ShowAtStart,
		today:               models.NewDaySummary(now()),
		progress:            progress.New(progress.WithSolidFill(theme.Progress), progress.WithoutPercentage()),
	}
	m.keys = newKeyRegistry(cfg)
	m.layout = screenLayout{
		glyphs:       deps.Glyphs,
		clockX:       cfg.Clock.XPercent,
		clockY:       cfg.Clock.YPercent,
		fg:           render.Color(cfg.Clock.FontColor),
		bg:           render.Color(cfg.Clock.BackgroundColor),
		instructions: m.keys.Instructions("Keyboard Shortcuts"),
		bubbleX:      cfg.Instructions.XPercent,
		bubbleY:      cfg.Instructions.YPercent,
	}
	m.progress.Width = config.TargetProgressWidth

	m.applyPreset(models.PresetPomodoro)
	if !cfg.Timer.StartOnLaunch {
		m.engine.Stop()
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(), loadTodayCmd(m.ctx, m.history, m.now()))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case frameMsg:
		return m.handleFrame(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case todayMsg:
		return m.handleToday(msg)
	case exportedMsg:
		return m.handleExported(msg)
	}
	return m, nil
}

// Preset is the preset currently loaded into the engine.
func (m Model) Preset() models.Preset { return m.preset }

// InstructionsVisible reports whether the shortcut bubble is shown.
func (m Model) InstructionsVisible() bool { return m.instructionsVisible }

// ClockText is the text the clock currently shows.
func (m Model) ClockText() string { return m.clockText }

// Today is the running summary of runs finished today.
func (m Model) Today() models.DaySummary { return m.today }
