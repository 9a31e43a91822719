package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 32)

	if s.Width() != 80 || s.Height() != 32 {
		t.Fatalf("size = %dx%d, expected 80x32", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColoredClips(t *testing.T) {
	s := NewScreen(10, 6)

	tests := []struct {
		name string
		x, y int
		in   bool
	}{
		{"inside", 4, 3, true},
		{"left edge", 0, 0, true},
		{"bottom right", 9, 5, true},
		{"left of field", -1, 2, false},
		{"right of field", 10, 2, false},
		{"above", 3, -1, false},
		{"below", 3, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Clear()
			s.SetColored(tt.x, tt.y, '@', ColorPlayer)
			got := s.GetCell(tt.x, tt.y)
			if tt.in && (got.Rune != '@' || got.Color != ColorPlayer) {
				t.Errorf("cell = %+v, expected player glyph", got)
			}
			if !tt.in && got.Rune != ' ' {
				t.Errorf("out-of-bounds cell = %q, expected space", got.Rune)
			}
			if !tt.in && strings.Contains(s.String(), "@") {
				t.Error("clipped write leaked onto the screen")
			}
		})
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawRect(0, 0, 6, 3, '█', ColorPlatform)

	s.Clear()

	for y := range 3 {
		if row := s.Row(y); row != "      " {
			t.Errorf("row %d = %q after Clear", y, row)
		}
		if c := s.GetCell(2, y).Color; c != ColorDefault {
			t.Errorf("color at row %d = %v after Clear", y, c)
		}
	}
}

func TestScreenHUDLineClipsAtRightEdge(t *testing.T) {
	s := NewScreen(12, 4)
	s.DrawTextColored(0, 0, " L1 ♥♥♡ Lives 3", ColorHUD)

	if got := s.Row(0); got != " L1 ♥♥♡ Live" {
		t.Errorf("HUD row = %q", got)
	}
	if c := s.GetCell(4, 0); c.Rune != '♥' || c.Color != ColorHUD {
		t.Errorf("heart cell = %+v", c)
	}
	if got := s.Row(1); strings.TrimSpace(got) != "" {
		t.Errorf("row below HUD = %q, expected blank", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		text  string
		width int
		start int
	}{
		{"PAUSED", 20, 7},
		{"YOU WIN!", 20, 6},
		{"♥♥", 10, 4},
		{"GAME OVER", 9, 0},
	}

	for _, tt := range tests {
		s := NewScreen(tt.width, 3)
		s.DrawTextCenteredColored(1, tt.text, ColorDanger)

		first := []rune(tt.text)[0]
		if c := s.GetCell(tt.start, 1); c.Rune != first || c.Color != ColorDanger {
			t.Errorf("%q: cell %d = %+v, expected %q", tt.text, tt.start, c, first)
		}
		if got := strings.TrimSpace(s.Row(1)); got != tt.text {
			t.Errorf("%q: row = %q", tt.text, got)
		}
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(2, 7, 6, 3, '█', ColorPlatform)

	for y := 7; y < 10; y++ {
		for x := 2; x < 8; x++ {
			if c := s.GetCell(x, y); c.Rune != '█' || c.Color != ColorPlatform {
				t.Errorf("cell (%d, %d) = %+v, expected platform", x, y, c)
			}
		}
	}
	if s.Get(1, 8) != ' ' || s.Get(8, 8) != ' ' || s.Get(4, 6) != ' ' {
		t.Error("DrawRect painted outside its area")
	}

	// A rect running past the edge is clipped, not wrapped.
	s.DrawRect(8, 0, 5, 1, '═', ColorDanger)
	if got := s.Row(0); got != "        ══" {
		t.Errorf("clipped rect row = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "L1 ♥")
	s.Set(2, 1, '@')
	s.DrawRect(0, 2, 5, 1, '█', ColorPlatform)

	expected := "L1 ♥ \n  @  \n█████"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "L2", ColorHUD)
	s.DrawText(0, 9, "bottom")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "L2") || s.GetCell(0, 0).Color != ColorHUD {
		t.Errorf("HUD lost on shrink: %q", s.Row(0))
	}

	s.Resize(15, 12)
	if !strings.HasPrefix(s.Row(0), "L2") {
		t.Errorf("HUD lost on grow: %q", s.Row(0))
	}
	if strings.Contains(s.String(), "bottom") {
		t.Error("rows cut by the shrink came back")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	for _, y := range []int{-1, 2} {
		if got := s.Row(y); got != "    " {
			t.Errorf("Row(%d) = %q, expected blank", y, got)
		}
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, "default"},
		{ColorPlatform, "gray"},
		{ColorPlayer, "bright-cyan"},
		{ColorChannelBlue, "blue"},
		{Color(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Color(%d).String() = %q, expected %q", tt.c, got, tt.want)
		}
	}
}
