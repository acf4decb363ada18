// Package config loads the static settings read once at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Timer        TimerConfig        `mapstructure:"timer"`
	Clock        ClockConfig        `mapstructure:"clock"`
	Instructions InstructionsConfig `mapstructure:"instructions"`
	Keys         KeysConfig         `mapstructure:"keys"`
	Alarm        AlarmConfig        `mapstructure:"alarm"`
	History      HistoryConfig      `mapstructure:"history"`
	Log          LogConfig          `mapstructure:"log"`
}

// TimerConfig holds preset durations.
type TimerConfig struct {
	PomodoroMinutes   int  `mapstructure:"pomodoro_minutes"`
	ShortBreakMinutes int  `mapstructure:"short_break_minutes"`
	LongBreakMinutes  int  `mapstructure:"long_break_minutes"`
	StartOnLaunch     bool `mapstructure:"start_on_launch"`
}

// ClockConfig describes the big clock. Positions are percentages of the
// terminal size, measured to the top-left corner.
type ClockConfig struct {
	Font            string `mapstructure:"font"`
	FontColor       int    `mapstructure:"font_color"`
	BackgroundColor int    `mapstructure:"background_color"`
	XPercent        int    `mapstructure:"x_percent"`
	YPercent        int    `mapstructure:"y_percent"`
	Theme           string `mapstructure:"theme"`
}

// InstructionsConfig controls the keyboard shortcut bubble.
type InstructionsConfig struct {
	ShowAtStart bool `mapstructure:"show_at_start"`
	XPercent    int  `mapstructure:"x_percent"`
	YPercent    int  `mapstructure:"y_percent"`
}

// KeysConfig maps actions to keys. "space" names the space bar.
type KeysConfig struct {
	StartStop    string `mapstructure:"start_stop"`
	Reset        string `mapstructure:"reset"`
	Pomodoro     string `mapstructure:"pomodoro"`
	ShortBreak   string `mapstructure:"short_break"`
	LongBreak    string `mapstructure:"long_break"`
	Instructions string `mapstructure:"instructions"`
	Export       string `mapstructure:"export"`
}

// AlarmConfig holds the alarm sound location.
type AlarmConfig struct {
	SoundFile string `mapstructure:"sound_file"`
}

// HistoryConfig holds the finished-run log settings.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Path  string `mapstructure:"path"`
}

// ValidationError reports an unusable setting.
type ValidationError struct {
	Key    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Key, e.Reason)
}

func defaults() map[string]any {
	dataDir := util.DataDir(AppName)
	return map[string]any{
		"timer.pomodoro_minutes":     DefaultPomodoroMinutes,
		"timer.short_break_minutes":  DefaultShortBreakMinutes,
		"timer.long_break_minutes":   DefaultLongBreakMinutes,
		"timer.start_on_launch":      true,
		"clock.font":                 "larry3d",
		"clock.font_color":           ColorBlack,
		"clock.background_color":     ColorCyan,
		"clock.x_percent":            5,
		"clock.y_percent":            10,
		"clock.theme":                "default",
		"instructions.show_at_start": true,
		"instructions.x_percent":     5,
		"instructions.y_percent":     50,
		"keys.start_stop":            "space",
		"keys.reset":                 "r",
		"keys.pomodoro":              "p",
		"keys.short_break":           "s",
		"keys.long_break":            "l",
		"keys.instructions":          "h",
		"keys.export":                "e",
		"alarm.sound_file":           "analog-alarm-clock.wav",
		"history.enabled":            true,
		"history.path":               filepath.Join(dataDir, HistoryFileName),
		"log.debug":                  false,
		"log.path":                   filepath.Join(dataDir, LogFileName),
	}
}

// Default returns the built-in configuration, ignoring files and env.
func Default() Config {
	v := viper.New()
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(fmt.Sprintf("built-in config is invalid: %v", err))
	}
	return c
}

// Load reads configuration from file and env. The file is POMO_CONFIG when
// set, otherwise config.yaml in the user config dir. Env var overrides use
// prefix POMO_, e.g. POMO_TIMER_POMODORO_MINUTES.
func Load() (Config, error) {
	return load(viper.New(), strings.TrimSpace(os.Getenv(ConfigEnvVar)))
}

func load(v *viper.Viper, explicitPath string) (Config, error) {
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(util.ConfigDir(AppName))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges and key uniqueness.
func (c Config) Validate() error {
	minutes := map[string]int{
		"timer.pomodoro_minutes":    c.Timer.PomodoroMinutes,
		"timer.short_break_minutes": c.Timer.ShortBreakMinutes,
		"timer.long_break_minutes":  c.Timer.LongBreakMinutes,
	}
	for key, m := range minutes {
		if m < 1 {
			return &ValidationError{Key: key, Reason: "must be at least 1 minute"}
		}
	}

	colors := map[string]int{
		"clock.font_color":       c.Clock.FontColor,
		"clock.background_color": c.Clock.BackgroundColor,
	}
	for key, col := range colors {
		if col < 0 || col > 255 {
			return &ValidationError{Key: key, Reason: "must be a colour index between 0 and 255"}
		}
	}

	percents := map[string]int{
		"clock.x_percent":        c.Clock.XPercent,
		"clock.y_percent":        c.Clock.YPercent,
		"instructions.x_percent": c.Instructions.XPercent,
		"instructions.y_percent": c.Instructions.YPercent,
	}
	for key, p := range percents {
		if p < 0 || p > 100 {
			return &ValidationError{Key: key, Reason: "must be between 0 and 100"}
		}
	}

	seen := make(map[string]string)
	for action, k := range c.Keys.byAction() {
		k = strings.TrimSpace(k)
		if k == "" {
			return &ValidationError{Key: "keys." + action, Reason: "must not be empty"}
		}
		if other, ok := seen[k]; ok {
			return &ValidationError{Key: "keys." + action, Reason: fmt.Sprintf("%q is already bound to %s", k, other)}
		}
		seen[k] = action
	}
	return nil
}

func (k KeysConfig) byAction() map[string]string {
	return map[string]string{
		"start_stop":   k.StartStop,
		"reset":        k.Reset,
		"pomodoro":     k.Pomodoro,
		"short_break":  k.ShortBreak,
		"long_break":   k.LongBreak,
		"instructions": k.Instructions,
		"export":       k.Export,
	}
}

// Duration returns the configured length of a preset.
func (c Config) Duration(p models.Preset) time.Duration {
	switch p {
	case models.PresetShortBreak:
		return time.Duration(c.Timer.ShortBreakMinutes) * time.Minute
	case models.PresetLongBreak:
		return time.Duration(c.Timer.LongBreakMinutes) * time.Minute
	default:
		return time.Duration(c.Timer.PomodoroMinutes) * time.Minute
	}
}

// PresetKey returns the key bound to a preset.
func (c Config) PresetKey(p models.Preset) string {
	switch p {
	case models.PresetShortBreak:
		return c.Keys.ShortBreak
	case models.PresetLongBreak:
		return c.Keys.LongBreak
	default:
		return c.Keys.Pomodoro
	}
}

// SoundFile resolves the alarm sound: as given, then next to the data dir.
func (c Config) SoundFile() string {
	name := strings.TrimSpace(c.Alarm.SoundFile)
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return util.FirstExisting(name, filepath.Join(util.DataDir(AppName), name))
}
