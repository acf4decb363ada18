package tui

import (
	"github.com/akyairhashvil/pomo/internal/render"
	"github.com/akyairhashvil/pomo/internal/util"
)

// screenLayout is everything needed to rebuild a screen at a new size.
type screenLayout struct {
	glyphs       render.Glyphs
	clockX       int // percent
	clockY       int // percent
	fg, bg       render.Color
	instructions string
	bubbleX      int // percent
	bubbleY      int // percent
}

// screen is the render layer: a surface sized to the terminal with the clock
// and, optionally, the instructions bubble painted on it. It holds no timer
// state and is replaced wholesale on resize.
type screen struct {
	layout      screenLayout
	surface     *render.Surface
	clockText   string
	clock       render.Block
	clockX      int
	clockY      int
	bubble      render.Block
	bubbleX     int
	bubbleY     int
	bubbleShown bool
	renders     int
}

func newScreen(width, height int, layout screenLayout) *screen {
	s := &screen{
		layout:  layout,
		surface: render.NewSurface(width, height),
		clockX:  util.PercentOf(width, layout.clockX),
		clockY:  util.PercentOf(height, layout.clockY),
		bubbleX: util.PercentOf(width, layout.bubbleX),
		bubbleY: util.PercentOf(height, layout.bubbleY),
	}
	if layout.instructions != "" {
		s.bubble = render.Bubble(layout.instructions)
	}
	return s
}

// drawClock repaints the clock when text differs from what is on screen.
// It reports whether a render happened.
func (s *screen) drawClock(text string) bool {
	if text == s.clockText && s.renders > 0 {
		return false
	}
	s.surface.ClearRect(s.clockX, s.clockY, s.clock.Width, s.clock.Height)
	s.clockText = text
	if s.layout.glyphs != nil {
		s.clock = s.layout.glyphs.Render(text)
	} else {
		s.clock = render.NewBlock([]string{text})
	}
	s.paintClock()
	s.renders++
	if s.bubbleShown {
		s.paintBubble()
	}
	return true
}

// setInstructions shows or hides the bubble.
func (s *screen) setInstructions(visible bool) {
	if visible == s.bubbleShown {
		return
	}
	s.bubbleShown = visible
	if visible {
		s.paintBubble()
		return
	}
	s.surface.ClearRect(s.bubbleX, s.bubbleY, s.bubble.Width, s.bubble.Height)
	s.paintClock()
}

func (s *screen) paintClock() {
	s.surface.Paint(s.clock.String(), s.clockX, s.clockY, s.layout.fg, s.layout.bg)
}

func (s *screen) paintBubble() {
	if s.bubble.Height == 0 {
		return
	}
	s.surface.Paint(s.bubble.String(), s.bubbleX, s.bubbleY, render.NoColor, render.NoColor)
}

func (s *screen) View() string {
	return s.surface.String()
}
