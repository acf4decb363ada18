package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
)

// Ringer does the end-of-run work. Ring blocks and is only ever called from
// the engine's expiry goroutine.
//
//go:generate mockgen -source=interface.go -destination=mock_interface_test.go -package=tui
type Ringer interface {
	Ring(preset models.Preset, expiry timer.Expiry)
}

// History reads the finished-run log.
type History interface {
	Today(ctx context.Context, now time.Time) (models.DaySummary, error)
	RunsForDay(ctx context.Context, day time.Time) ([]models.Run, error)
}
