package core

// Color is the foreground color of a screen cell. The terminal renderer
// maps every value to an ANSI 256-color code.
type Color uint8

// Base palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	// NumColors is the size of the base palette.
	NumColors = int(ColorGray) + 1
)

// Gate and plate channels.
const (
	ColorChannelRed   = ColorRed
	ColorChannelBlue  = ColorBlue
	ColorChannelGreen = ColorGreen
	ColorChannelCyan  = ColorCyan
)

// Roles drawn by the renderer and the particle effects.
const (
	ColorPlatform   = ColorGray
	ColorPlayer     = ColorBrightCyan
	ColorInvincible = ColorBrightWhite
	ColorFlash      = ColorBrightWhite
	ColorWarning    = ColorYellow
	ColorDanger     = ColorBrightRed
	ColorPaint      = ColorBrightMagenta
	ColorPotion     = ColorBrightRed
	ColorReached    = ColorBrightGreen
	ColorHUD        = ColorBrightWhite
	ColorMessage    = ColorBrightYellow
)

var colorNames = [NumColors]string{
	"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-red", "bright-green", "bright-yellow", "bright-blue",
	"bright-magenta", "bright-cyan", "bright-white", "orange", "gray",
}

func (c Color) String() string {
	if int(c) < NumColors {
		return colorNames[c]
	}
	return "unknown"
}
