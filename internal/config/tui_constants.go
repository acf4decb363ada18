package config

// Layout constants.
const (
	// FooterHeight is the number of rows reserved below the paint surface
	// for the status line and progress bar.
	FooterHeight = 2

	// MinProgressWidth is the narrowest progress bar drawn.
	MinProgressWidth = 10

	// TargetProgressWidth is the preferred progress bar width.
	TargetProgressWidth = 40

	// CompactModeThreshold triggers compact footer rendering below this width.
	CompactModeThreshold = 60
)

// Fallback glyph font when the configured one is unavailable.
const FallbackFont = "standard"

// StatusMessageFrames is how many frames a footer message stays visible.
const StatusMessageFrames = 40
