package core

// Action is a key-driven intent. Slicing itself arrives as Pointer samples.
type Action int

const (
	ActionNone Action = iota
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
)

var actionNames = [...]string{"None", "Confirm", "Back", "Restart", "Quit", "Pause"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is everything the platform gathered for one tick.
type InputFrame struct {
	Actions map[Action]bool

	// Pointer is the blade position in field units; nil when the tracker
	// lost the hand or the mouse button is up.
	Pointer *Vec2

	// Fingers is the extended finger count, nil when unknown.
	Fingers *int
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks a for this tick.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was triggered this tick. Safe on a zero frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

func (f *InputFrame) SetPointer(p Vec2) { f.Pointer = &p }

func (f *InputFrame) SetFingers(n int) { f.Fingers = &n }

// Clear empties the frame for reuse, keeping the map allocation.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Pointer = nil
	f.Fingers = nil
}

// HoldGesture detects a finger count held for a number of consecutive ticks,
// such as an open hand held to quit.
type HoldGesture struct {
	Fingers int // required extended fingers
	Ticks   int // consecutive ticks required

	held int
}

// Update feeds one tick of finger data and reports whether the gesture just
// completed. The counter resets on any tick without the required count.
func (g *HoldGesture) Update(fingers *int) bool {
	if fingers == nil || *fingers != g.Fingers {
		g.held = 0
		return false
	}
	g.held++
	return g.held == g.Ticks
}

// Progress returns how far the gesture has advanced, from 0 to 1.
func (g *HoldGesture) Progress() float64 {
	if g.Ticks <= 0 {
		return 0
	}
	return Clamp(float64(g.held)/float64(g.Ticks), 0, 1)
}
