package models

import (
	"fmt"
	"strings"
	"time"
)

// Preset names one of the three timer configurations.
type Preset int

const (
	PresetPomodoro Preset = iota
	PresetShortBreak
	PresetLongBreak
)

// Presets lists every preset in display order.
var Presets = []Preset{PresetPomodoro, PresetShortBreak, PresetLongBreak}

// String returns the stable identifier stored in history and config.
func (p Preset) String() string {
	switch p {
	case PresetPomodoro:
		return "pomodoro"
	case PresetShortBreak:
		return "short_break"
	case PresetLongBreak:
		return "long_break"
	}
	return fmt.Sprintf("preset(%d)", int(p))
}

// Label is the human-readable name.
func (p Preset) Label() string {
	switch p {
	case PresetPomodoro:
		return "Pomodoro"
	case PresetShortBreak:
		return "Short Break"
	case PresetLongBreak:
		return "Long Break"
	}
	return p.String()
}

// IsBreak reports whether the preset is one of the breaks.
func (p Preset) IsBreak() bool {
	return p == PresetShortBreak || p == PresetLongBreak
}

// ParsePreset maps an identifier back to its preset.
func ParsePreset(s string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pomodoro":
		return PresetPomodoro, nil
	case "short_break":
		return PresetShortBreak, nil
	case "long_break":
		return PresetLongBreak, nil
	}
	return 0, fmt.Errorf("unknown preset %q", s)
}

// Run is a countdown that reached zero.
type Run struct {
	ID         int64
	Preset     Preset
	Duration   time.Duration
	FinishedAt time.Time
}

// DaySummary aggregates the runs finished on one calendar day.
type DaySummary struct {
	Date   string
	Counts map[Preset]int
	Focus  time.Duration // time spent in pomodoro runs
}

// NewDaySummary returns an empty summary for the local date of day.
func NewDaySummary(day time.Time) DaySummary {
	return DaySummary{
		Date:   day.Format("2006-01-02"),
		Counts: make(map[Preset]int),
	}
}

// Add folds one run into the summary.
func (s *DaySummary) Add(run Run) {
	if s.Counts == nil {
		s.Counts = make(map[Preset]int)
	}
	s.Counts[run.Preset]++
	if run.Preset == PresetPomodoro {
		s.Focus += run.Duration
	}
}

// Pomodoros is the number of finished pomodoro runs.
func (s DaySummary) Pomodoros() int {
	return s.Counts[PresetPomodoro]
}
