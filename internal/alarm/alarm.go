package alarm

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/util"
)

// Recorder persists finished runs.
//
//go:generate mockgen -source=alarm.go -destination=mock_recorder_test.go -package=alarm
type Recorder interface {
	Record(ctx context.Context, run models.Run) error
}

// Alarm is the work done when a run expires. Failures are logged and never
// returned; the clock keeps running regardless.
type Alarm struct {
	ctx       context.Context
	player    Player
	recorder  Recorder
	soundFile string
}

// New builds an Alarm. player and recorder may be nil to skip that step.
func New(ctx context.Context, player Player, recorder Recorder, soundFile string) *Alarm {
	return &Alarm{ctx: ctx, player: player, recorder: recorder, soundFile: soundFile}
}

// Ring records the run and plays the sound. It blocks for the length of the
// sound and must only be called off the UI loop.
func (a *Alarm) Ring(preset models.Preset, expiry timer.Expiry) {
	defer func() {
		if r := recover(); r != nil {
			util.LogError("alarm", fmt.Errorf("panic: %v", r))
		}
	}()

	if a.recorder != nil {
		run := models.Run{
			Preset:     preset,
			Duration:   expiry.Total,
			FinishedAt: expiry.At,
		}
		util.LogError("record run", a.recorder.Record(a.ctx, run))
	}
	if a.player == nil {
		return
	}
	util.Debugf("playing alarm %s for %s", a.soundFile, preset)
	util.LogError("play alarm", a.player.Play(a.soundFile))
}
