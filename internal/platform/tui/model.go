package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-slice/internal/core"
	"github.com/vovakirdan/fruit-slice/internal/progress"
	"github.com/vovakirdan/fruit-slice/internal/registry"
	"github.com/vovakirdan/fruit-slice/internal/storage"
)

// CuePlayer plays the audio cues a tick raised.
type CuePlayer interface {
	PlayAll(cues []core.Cue) int
}

type muter interface {
	SetMuted(bool)
	Muted() bool
}

type viewporter interface {
	Viewport(w, h int) core.Viewport
}

// Session holds the collaborators a round reports to. Every field is optional.
type Session struct {
	Scores   *storage.Store
	Progress *progress.Store
	Audio    CuePlayer
	Profile  string
}

// Model is the Bubble Tea model for a single round.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	session     Session
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	pointer     *PointerTracker
	quitGesture *core.HoldGesture
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	backToMenu  bool
	scoreSaved  bool
}

// NewModel creates a new game model.
func NewModel(game registry.Game, session Session, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if pa, ok := game.(registry.ProgressionAware); ok && session.Progress != nil {
		pa.AttachProgression(session.Progress)
	}

	return Model{
		game:        game,
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		session:     session,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
		pointer:     &PointerTracker{},
		quitGesture: &core.HoldGesture{Fingers: openHandFingers, Ticks: quitHoldTicks},
		inputFrame:  core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.pointer.Handle(msg)
		return m, nil
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsMuteToggle(msg) {
		if mu, ok := m.session.Audio.(muter); ok {
			mu.SetMuted(!mu.Muted())
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.endRound()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.endRound()
		m.backToMenu = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize only resizes the buffer; the field is in logical units and
// the viewport rescales it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.pointer.Reset()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.pointer.Apply(&m.inputFrame, m.viewport())
	if m.quitGesture.Update(m.inputFrame.Fingers) {
		m.endRound()
		m.quitting = true
		return m, tea.Quit
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.session.Audio != nil && len(result.Cues) > 0 {
		m.session.Audio.PlayAll(result.Cues)
	}

	if m.gameState.GameOver {
		m.saveScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// endRound settles an unfinished round before leaving it.
func (m *Model) endRound() {
	if m.gameState.GameOver {
		return
	}
	if re, ok := m.game.(registry.RoundEnder); ok {
		re.EndRound()
	}
	m.saveScore()
}

func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	score := m.game.State().Score
	if m.session.Scores != nil && score > 0 {
		//nolint:errcheck // Best-effort save
		m.session.Scores.SaveScore(m.game.ID(), m.session.Profile, score)
	}
}

func (m Model) viewport() core.Viewport {
	w, h := m.screen.Width(), m.screen.Height()
	if v, ok := m.game.(viewporter); ok {
		return v.Viewport(w, h)
	}
	return core.Viewport{FieldW: float64(w), FieldH: float64(h), ScreenW: w, ScreenH: h}
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	drawGestureBar(m.screen, m.quitGesture.Progress())
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to leave entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts one round and blocks until the player leaves it.
// Returns true if the player went back to the menu.
func Run(game registry.Game, session Session, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, session, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
