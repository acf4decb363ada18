package config

import "time"

// Frame cadence of the render loop. Expiry is detected at this granularity.
const FrameInterval = 100 * time.Millisecond

// Default preset durations, in minutes.
const (
	DefaultPomodoroMinutes   = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 10
)

// Application settings.
const (
	AppName         = "pomo"
	ConfigFileName  = "config"
	LogFileName     = "pomo.log"
	HistoryFileName = "history.db"
	EnvPrefix       = "POMO"
	ConfigEnvVar    = "POMO_CONFIG"
)

// Terminal colour indices (ANSI 0-7), matching the palette most terminals
// expose without extended colour support.
const (
	ColorBlack = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)
