package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	figure "github.com/common-nighthawk/go-figure"
)

// Block is a rendered multi-line glyph string and its extent in cells.
type Block struct {
	Lines  []string
	Width  int
	Height int
}

// String joins the lines.
func (b Block) String() string {
	return strings.Join(b.Lines, "\n")
}

// Glyphs renders text as FIGlet art.
type Glyphs interface {
	Render(text string) Block
}

// FigletGlyphs renders with a single FIGlet font.
type FigletGlyphs struct {
	font string
}

// NewFigletGlyphs checks that font can be loaded and falls back to
// fallback otherwise. The returned error reports the fallback, if any.
func NewFigletGlyphs(font, fallback string) (*FigletGlyphs, error) {
	if err := probeFont(font); err != nil {
		if ferr := probeFont(fallback); ferr != nil {
			return nil, fmt.Errorf("load fallback font %q: %w", fallback, ferr)
		}
		return &FigletGlyphs{font: fallback}, fmt.Errorf("load font %q, using %q: %w", font, fallback, err)
	}
	return &FigletGlyphs{font: font}, nil
}

// Font returns the font in use.
func (g *FigletGlyphs) Font() string { return g.font }

// Render draws text in the configured font.
func (g *FigletGlyphs) Render(text string) Block {
	return NewBlock(figure.NewFigure(text, g.font, false).Slicify())
}

// NewBlock measures lines, dropping trailing blank rows, and pads every line
// to the widest so the block paints as a rectangle.
func NewBlock(lines []string) Block {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	b := Block{Height: len(lines)}
	for _, l := range lines {
		if w := ansi.StringWidth(l); w > b.Width {
			b.Width = w
		}
	}
	b.Lines = make([]string, len(lines))
	for i, l := range lines {
		b.Lines[i] = l + strings.Repeat(" ", b.Width-ansi.StringWidth(l))
	}
	return b
}

// go-figure panics on unknown font names.
func probeFont(font string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unknown font: %v", r)
		}
	}()
	figure.NewFigure("0", font, false)
	return nil
}
