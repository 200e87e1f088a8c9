package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-slice/internal/core"
)

// ansi256 is the terminal code for each core.Color; "" keeps the default.
var ansi256 = [...]string{
	core.ColorDefault:       "",
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
	core.ColorGold:          "220",
	core.ColorPurple:        "93",
	core.ColorPink:          "213",
}

var palette = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansi256))
	for c, code := range ansi256 {
		s := lipgloss.NewStyle()
		if code != "" {
			s = s.Foreground(lipgloss.Color(code))
		}
		styles[c] = s
	}
	// Coins and combo text read better bold.
	styles[core.ColorGold] = styles[core.ColorGold].Bold(true)
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns the cell buffer into terminal text. Each row is cut
// into runs of one color so a run costs a single escape sequence.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()
	var out strings.Builder
	out.Grow(w*h*2 + h)

	var run strings.Builder
	for y := range h {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < w; {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < w; x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			out.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return out.String()
}

const gestureLabel = " HOLD TO QUIT "

// drawGestureBar fills the bottom row while the open-hand quit gesture charges.
func drawGestureBar(s *core.Screen, progress float64) {
	bar := s.Width() - len(gestureLabel)
	if progress <= 0 || s.Height() == 0 || bar <= 0 {
		return
	}
	y := s.Height() - 1
	s.DrawTextColored(0, y, gestureLabel, core.ColorBrightWhite)

	filled := int(progress * float64(bar))
	for i := range bar {
		if i < filled {
			s.SetColored(len(gestureLabel)+i, y, '█', core.ColorBrightRed)
		} else {
			s.SetColored(len(gestureLabel)+i, y, '░', core.ColorGray)
		}
	}
}
