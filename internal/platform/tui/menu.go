package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-slice/internal/core"
	"github.com/vovakirdan/fruit-slice/internal/progress"
	"github.com/vovakirdan/fruit-slice/internal/registry"
	"github.com/vovakirdan/fruit-slice/internal/storage"
)

const challengeSuffix = "_challenge"

// MenuItem is one playable mode card.
type MenuItem struct {
	GameID string
	Title  string
	Blurb  string
	Best   int
}

func (it MenuItem) challenge() bool {
	return strings.HasSuffix(it.GameID, challengeSuffix)
}

// MenuModel picks the mode for the next round. It leaves the program with
// one of: a selected mode, a request for scores or the shop, or quit.
type MenuModel struct {
	items  []MenuItem
	cursor int
	prog   *progress.Store
	config core.RuntimeConfig
	keys   *KeyMapper

	selected       *MenuItem
	openScoreboard bool
	openShop       bool
	quitting       bool
}

// NewMenuModel lists the registered modes with their best scores. Both
// stores may be nil.
func NewMenuModel(scores *storage.Store, prog *progress.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{prog: prog, config: cfg, keys: NewKeyMapper()}
	for _, info := range registry.List() {
		it := MenuItem{GameID: info.ID, Title: info.Title, Blurb: info.Blurb}
		if scores != nil {
			it.Best, _ = scores.HighScore(info.ID)
		}
		m.items = append(m.items, it)
	}

	// Reopen on the mode the player picked last time.
	if prog != nil && prog.ChallengeMode() {
		for i, it := range m.items {
			if it.challenge() {
				m.cursor = i
				break
			}
		}
	}
	return m
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		it := m.items[m.cursor]
		m.selected = &it
		if m.prog != nil {
			m.prog.SetChallengeMode(it.challenge())
		}
		return m, tea.Quit
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuActionShop:
		if m.prog == nil {
			return m, nil
		}
		m.openShop = true
		return m, tea.Quit
	}
	return m, nil
}

var (
	menuBanner = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	menuWallet = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	menuDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCard   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(44)
	menuCardActive = menuCard.BorderForeground(lipgloss.Color("214"))
)

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(menuBanner.Render(centerText("  F R U I T   S L I C E  ", width)))
	b.WriteString("\n\n")

	if m.prog != nil {
		wallet := fmt.Sprintf("Coins: %d   Trail: %s   Best streak: %d",
			m.prog.Coins(), progress.TrailStyle(m.prog.Selected()), m.prog.BestStreak())
		b.WriteString(menuWallet.Render(centerText(wallet, width)))
		b.WriteString("\n\n")
	}

	for i, it := range m.items {
		b.WriteString(centerBlock(m.card(it, i == m.cursor), width))
		b.WriteString("\n")
	}

	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	if m.prog != nil {
		controls = "Up/Down: Navigate  |  Enter: Play  |  S: Shop  |  Tab: Scores  |  Q: Quit"
	}
	b.WriteString("\n")
	b.WriteString(menuDim.Render(centerText(controls, width)))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) card(it MenuItem, active bool) string {
	style, title := menuCard, "  "+it.Title
	if active {
		style, title = menuCardActive, "> "+it.Title
	}
	lines := []string{lipgloss.NewStyle().Bold(active).Render(title)}
	if it.Blurb != "" {
		lines = append(lines, menuDim.Render("  "+it.Blurb))
	}
	if it.Best > 0 {
		lines = append(lines, menuWallet.Render(fmt.Sprintf("  Best: %d", it.Best)))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Selected returns the chosen mode, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player asked to leave.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the scoreboard was requested.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// WantsShop reports whether the trail shop was requested.
func (m MenuModel) WantsShop() bool {
	return m.openShop
}

// Config returns the runtime config, resized to the last window size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads a single line to sit in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// centerBlock centers a multi-line block.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// MenuResult is what the menu program ended with.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	WantsShop       bool
	Quit            bool
}

// RunMenu shows the menu until the player picks something.
func RunMenu(scores *storage.Store, prog *progress.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(scores, prog, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.WantsShop():
		res.WantsShop = true
	case m.Selected() != nil:
		res.GameID = m.Selected().GameID
	default:
		res.Quit = true
	}
	return res, nil
}
