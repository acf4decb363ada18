package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bubble frames text in a rounded speech-bubble border with a small tail
// under its left edge.
func Bubble(text string) Block {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(strings.TrimRight(text, "\n"))
	lines := strings.Split(box, "\n")
	lines = append(lines, "  \\", "   \\")
	return NewBlock(lines)
}
