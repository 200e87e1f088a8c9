package core

// Color is a cell foreground; the renderer maps it to an ANSI 256 code.
type Color uint8

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
	ColorGold
	ColorPurple
	ColorPink
)

// Fruit manifests name their colors in YAML.
var namedColors = map[string]Color{
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"orange":  ColorOrange,
	"gray":    ColorGray,
	"gold":    ColorGold,
	"purple":  ColorPurple,
	"pink":    ColorPink,
}

// ColorNamed resolves a manifest color name. Unknown names report false.
func ColorNamed(name string) (Color, bool) {
	c, ok := namedColors[name]
	return c, ok
}
