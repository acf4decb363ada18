// Package render holds the terminal-side collaborators of the clock: a
// paintable character surface, large-glyph rendering and the instructions
// bubble. Nothing here owns timer state; a Surface is thrown away and rebuilt
// whenever the terminal changes size.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Color is a terminal colour index. NoColor leaves the terminal default.
type Color int

const NoColor Color = -1

type cell struct {
	r      rune
	fg, bg Color
}

var blank = cell{r: ' ', fg: NoColor, bg: NoColor}

// Surface is a fixed-size grid of coloured cells.
type Surface struct {
	width  int
	height int
	cells  [][]cell
	styles map[[2]Color]lipgloss.Style
}

// NewSurface allocates a blank surface. Negative sizes are treated as zero.
func NewSurface(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s := &Surface{
		width:  width,
		height: height,
		cells:  make([][]cell, height),
		styles: make(map[[2]Color]lipgloss.Style),
	}
	for y := range s.cells {
		s.cells[y] = make([]cell, width)
	}
	s.Clear()
	return s
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// Clear blanks every cell.
func (s *Surface) Clear() {
	s.ClearRect(0, 0, s.width, s.height)
}

// ClearRect blanks the w×h rectangle whose top-left corner is (x, y).
// Parts outside the surface are ignored.
func (s *Surface) ClearRect(x, y, w, h int) {
	for row := max(y, 0); row < min(y+h, s.height); row++ {
		for col := max(x, 0); col < min(x+w, s.width); col++ {
			s.cells[row][col] = blank
		}
	}
}

// Paint writes text with its top-left corner at (x, y). Each line of a
// multi-line text goes on the next row. Escape sequences are stripped and
// anything past the surface edge is clipped.
func (s *Surface) Paint(text string, x, y int, fg, bg Color) {
	for i, line := range strings.Split(ansi.Strip(text), "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= s.height {
			return
		}
		col := x
		for _, r := range line {
			if col >= s.width {
				break
			}
			if col >= 0 {
				s.cells[row][col] = cell{r: r, fg: fg, bg: bg}
			}
			col++
		}
	}
}

// Row returns the plain characters of row y.
func (s *Surface) Row(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	var b strings.Builder
	for _, c := range s.cells[y] {
		b.WriteRune(c.r)
	}
	return b.String()
}

// String renders the surface with colours, one line per row. Trailing
// uncoloured blanks are trimmed.
func (s *Surface) String() string {
	lines := make([]string, s.height)
	for y, row := range s.cells {
		end := len(row)
		for end > 0 && row[end-1] == blank {
			end--
		}
		var b strings.Builder
		start := 0
		for start < end {
			next := start
			for next < end && row[next].fg == row[start].fg && row[next].bg == row[start].bg {
				next++
			}
			b.WriteString(s.styled(row[start:next]))
			start = next
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (s *Surface) styled(run []cell) string {
	runes := make([]rune, len(run))
	for i, c := range run {
		runes[i] = c.r
	}
	text := string(runes)
	fg, bg := run[0].fg, run[0].bg
	if fg == NoColor && bg == NoColor {
		return text
	}
	return s.style(fg, bg).Render(text)
}

func (s *Surface) style(fg, bg Color) lipgloss.Style {
	key := [2]Color{fg, bg}
	if st, ok := s.styles[key]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if fg != NoColor {
		st = st.Foreground(lipgloss.Color(strconv.Itoa(int(fg))))
	}
	if bg != NoColor {
		st = st.Background(lipgloss.Color(strconv.Itoa(int(bg))))
	}
	s.styles[key] = st
	return st
}
