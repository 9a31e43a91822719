package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paintball-slug/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(20, 4)
	s.DrawText(0, 0, " L1 Score 0")
	s.SetColored(5, 1, '@', core.ColorPlayer)
	s.SetColored(6, 1, '•', core.ColorPaint)
	s.DrawRect(0, 3, 20, 1, '█', core.ColorPlatform)

	rows := strings.Split(RenderScreen(s), "\n")
	if len(rows) != 4 {
		t.Fatalf("rendered %d rows, expected 4", len(rows))
	}
	for y, row := range rows {
		if w := lipgloss.Width(row); w != 20 {
			t.Errorf("row %d width = %d, expected 20", y, w)
		}
	}
	if rows[0] != s.Row(0) {
		t.Errorf("uncolored row = %q, expected %q", rows[0], s.Row(0))
	}
	if !strings.Contains(rows[1], "@") || !strings.Contains(rows[1], "•") {
		t.Errorf("row 1 lost glyphs: %q", rows[1])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q, expected plain text", got)
	}
}
