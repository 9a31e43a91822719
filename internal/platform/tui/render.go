package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paintball-slug/internal/core"
)

// ansiCodes maps the palette to ANSI 256-color codes.
var ansiCodes = [core.NumColors]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// cellStyles holds one style per palette color. The player and live hazards
// are drawn bold so they read against the field.
var cellStyles = func() [core.NumColors]lipgloss.Style {
	var styles [core.NumColors]lipgloss.Style
	for i, code := range ansiCodes {
		st := lipgloss.NewStyle()
		if code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		switch core.Color(i) {
		case core.ColorPlayer, core.ColorDanger:
			st = st.Bold(true)
		}
		styles[i] = st
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= core.NumColors {
		return cellStyles[core.ColorDefault]
	}
	return cellStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

// renderRow styles one row, one escape sequence per run of equal color.
func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	run := make([]rune, 0, s.Width())
	cur := core.ColorDefault
	flush := func() {
		if len(run) == 0 {
			return
		}
		if cur == core.ColorDefault {
			sb.WriteString(string(run))
		} else {
			sb.WriteString(styleFor(cur).Render(string(run)))
		}
		run = run[:0]
	}
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != cur {
			flush()
			cur = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
	return sb.String()
}
