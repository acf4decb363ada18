package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model) (Model, tea.Cmd, bool)

// KeyBinding ties a key to an action. Description is the long text shown in
// the instructions bubble; the binding's help text is the short footer form.
type KeyBinding struct {
	Binding     key.Binding
	Handler     KeyHandler
	Description string
	Priority    int
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

// Handle runs the first matching binding. Unknown keys are reported as not
// handled and leave the model untouched.
func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if !key.Matches(msg, b.Binding) {
			continue
		}
		next, cmd, handled := b.Handler(m)
		if handled {
			return next, cmd, true
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) Bindings() []KeyBinding {
	return append([]KeyBinding(nil), r.bindings...)
}

// HelpLine is the compact footer help, e.g. "[space]start/stop|[r]reset".
func (r *HandlerRegistry) HelpLine() string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.displayOrder() {
		h := b.Binding.Help()
		if h.Desc == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		parts = append(parts, "["+h.Key+"]"+h.Desc)
	}
	return strings.Join(parts, "|")
}

// Instructions renders the shortcut list shown in the bubble, one
// "KEY  Description" row per binding under title.
func (r *HandlerRegistry) Instructions(title string) string {
	rows := []string{title}
	width := 0
	for _, b := range r.bindings {
		if w := len(displayKey(b.Binding.Help().Key)); w > width {
			width = w
		}
	}
	for _, b := range r.displayOrder() {
		if b.Description == "" {
			continue
		}
		rows = append(rows, fmt.Sprintf("%-*s  %s", width, displayKey(b.Binding.Help().Key), b.Description))
	}
	return strings.Join(rows, "\n")
}

// displayOrder puts the quit binding last so the bubble reads top-down the
// way the keys are used.
func (r *HandlerRegistry) displayOrder() []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	var last []KeyBinding
	for _, b := range r.bindings {
		if b.Priority >= priorityQuit {
			last = append(last, b)
			continue
		}
		out = append(out, b)
	}
	return append(out, last...)
}

// keyFromConfig turns a configured key name into what tea.KeyMsg.String
// reports for it.
func keyFromConfig(name string) string {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "space") {
		return " "
	}
	return name
}

func helpKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func displayKey(k string) string {
	return strings.ToUpper(k)
}

const (
	priorityQuit   = 100
	priorityAction = 10
)

// newKeyRegistry binds the configured keys to their actions.
func newKeyRegistry(cfg config.Config) *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Binding:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Handler:     func(m Model) (Model, tea.Cmd, bool) { return m, tea.Quit, true },
		Description: "Quit",
		Priority:    priorityQuit,
	})

	actions := []struct {
		key     string
		short   string
		long    string
		handler KeyHandler
	}{
		{cfg.Keys.StartStop, "start/stop", "Start or Stop the timer", Model.toggleRunning},
		{cfg.Keys.Reset, "reset", "Reset the timer", Model.resetTimer},
		{cfg.Keys.Pomodoro, "pomodoro", "Pomodoro", presetHandler(models.PresetPomodoro)},
		{cfg.Keys.ShortBreak, "short", "Short Break", presetHandler(models.PresetShortBreak)},
		{cfg.Keys.LongBreak, "long", "Long Break", presetHandler(models.PresetLongBreak)},
		{cfg.Keys.Instructions, "help", "Show or Hide these instructions", Model.toggleInstructions},
		{cfg.Keys.Export, "export", "Export today's report to PDF", Model.exportReport},
	}
	for i, a := range actions {
		k := keyFromConfig(a.key)
		if k == "" {
			continue
		}
		r.Register(KeyBinding{
			Binding:     key.NewBinding(key.WithKeys(k), key.WithHelp(helpKey(k), a.short)),
			Handler:     a.handler,
			Description: a.long,
			Priority:    priorityAction - i,
		})
	}
	return r
}
