// Package tui runs fruit slice rounds in the terminal with Bubble Tea.
// It maps keys and mouse drags to input frames, drives the fixed tick,
// and hosts the menu, shop and scoreboard screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 30

// TickMsg advances the simulation by one step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg; a non-positive rate means 30 Hz.
func tickCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = defaultTickRate
	}
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
