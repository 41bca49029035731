package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// styleCache maps cell colors to lipgloss styles on a fixed background.
type styleCache struct {
	bg     core.Color
	styles map[core.Color]lipgloss.Style
}

func newStyleCache(bg core.Color) *styleCache {
	return &styleCache{bg: bg, styles: make(map[core.Color]lipgloss.Style)}
}

// styleKey drops alpha, which the cell's shade glyph already carries.
// The zero color stays zero: it means the terminal's default foreground.
func styleKey(c core.Color) core.Color {
	if c == (core.Color{}) {
		return c
	}
	return core.RGB(c.R, c.G, c.B)
}

// style returns the style for cells drawn in c.
func (sc *styleCache) style(c core.Color) lipgloss.Style {
	c = styleKey(c)
	if s, ok := sc.styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().Background(lipgloss.Color(sc.bg.Hex()))
	if c != (core.Color{}) {
		s = s.Foreground(lipgloss.Color(c.Hex()))
	}
	sc.styles[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, bg core.Color) string {
	return renderScreen(s, newStyleCache(bg))
}

func renderScreen(s *core.Screen, sc *styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := styleKey(s.GetCell(x, y).Color)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if styleKey(cell.Color) != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(sc.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
