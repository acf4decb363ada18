// Package alarm plays the end-of-run sound and records the finished run.
// Both happen off the UI loop: the timer engine calls the expiry listener on
// its own goroutine and Alarm.Ring does its blocking work there.
package alarm

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var ErrNoSoundFile = errors.New("alarm sound file not configured")

// Player plays an audio file and returns once playback has finished.
//
//go:generate mockgen -source=player.go -destination=mock_player_test.go -package=alarm
type Player interface {
	Play(path string) error
}

// BeepPlayer plays WAV files through the default audio device. The speaker
// is initialised on first use at the first file's sample rate; later files
// are resampled to it.
type BeepPlayer struct {
	once    sync.Once
	initErr error
	rate    beep.SampleRate
}

func NewBeepPlayer() *BeepPlayer {
	return &BeepPlayer{}
}

// Play decodes and plays the WAV file at path, blocking until it ends.
func (p *BeepPlayer) Play(path string) error {
	if path == "" {
		return ErrNoSoundFile
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open alarm sound: %w", err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode alarm sound: %w", err)
	}
	defer streamer.Close()

	if err := p.init(format.SampleRate); err != nil {
		return err
	}

	var s beep.Streamer = streamer
	if format.SampleRate != p.rate {
		s = beep.Resample(4, format.SampleRate, p.rate, streamer)
	}
	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}

func (p *BeepPlayer) init(rate beep.SampleRate) error {
	p.once.Do(func() {
		p.rate = rate
		if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
			p.initErr = fmt.Errorf("init speaker: %w", err)
		}
	})
	return p.initErr
}
