package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-slice/internal/core"
)

// Quit gesture: an open hand held for half a second at 30 ticks/s.
const (
	openHandFingers = 5
	quitHoldTicks   = 15
)

// PointerTracker turns mouse events into the blade pointer and finger
// count a hand tracker would report. A left-button drag is the fingertip;
// holding the right button stands in for an open hand.
type PointerTracker struct {
	dragging bool
	openHand bool
	x, y     int
}

// Handle records one mouse event.
func (t *PointerTracker) Handle(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonLeft:
		switch msg.Action {
		case tea.MouseActionPress, tea.MouseActionMotion:
			t.dragging = true
			t.x, t.y = msg.X, msg.Y
		case tea.MouseActionRelease:
			t.dragging = false
		}
	case tea.MouseButtonRight:
		t.openHand = msg.Action != tea.MouseActionRelease
	case tea.MouseButtonNone:
		// Some terminals report every release without a button.
		if msg.Action == tea.MouseActionRelease {
			t.dragging = false
			t.openHand = false
		}
	}
}

// Apply writes the current samples into frame.
func (t *PointerTracker) Apply(frame *core.InputFrame, vp core.Viewport) {
	if t.dragging {
		frame.SetPointer(vp.ToField(t.x, t.y))
	}
	if t.openHand {
		frame.SetFingers(openHandFingers)
	}
}

// Dragging reports whether the blade is down.
func (t *PointerTracker) Dragging() bool {
	return t.dragging
}

// Reset lifts the blade and hand.
func (t *PointerTracker) Reset() {
	*t = PointerTracker{}
}
