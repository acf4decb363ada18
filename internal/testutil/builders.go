package testutil

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
)

// RunBuilder provides fluent API for creating test runs.
type RunBuilder struct {
	run models.Run
}

// NewRun starts from a 25 minute pomodoro that finished just now.
func NewRun() *RunBuilder {
	return &RunBuilder{
		run: models.Run{
			Preset:     models.PresetPomodoro,
			Duration:   25 * time.Minute,
			FinishedAt: time.Now(),
		},
	}
}

func (b *RunBuilder) WithPreset(p models.Preset) *RunBuilder {
	b.run.Preset = p
	return b
}

func (b *RunBuilder) WithDuration(d time.Duration) *RunBuilder {
	b.run.Duration = d
	return b
}

func (b *RunBuilder) At(t time.Time) *RunBuilder {
	b.run.FinishedAt = t
	return b
}

func (b *RunBuilder) Build() models.Run {
	return b.run
}
