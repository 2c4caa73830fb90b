package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neonflap/internal/core"
)

// styleFor maps a core.Color to a lipgloss style on the given background.
func styleFor(r *lipgloss.Renderer, fg, bg core.Color) lipgloss.Style {
	style := r.NewStyle()
	if code := fg.ANSI(); code >= 0 {
		style = style.Foreground(lipgloss.Color(strconv.Itoa(code)))
	}
	if code := bg.ANSI(); code >= 0 {
		style = style.Background(lipgloss.Color(strconv.Itoa(code)))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display
// using the default lipgloss renderer.
func RenderScreen(s *core.Screen, bg core.Color) string {
	return RenderScreenWith(lipgloss.DefaultRenderer(), s, bg)
}

// RenderScreenWith renders through r, which SSH sessions set up per client.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreenWith(r *lipgloss.Renderer, s *core.Screen, bg core.Color) string {
	styles := make(map[core.Color]lipgloss.Style)

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
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styleFor(r, startColor, bg)
				styles[startColor] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
