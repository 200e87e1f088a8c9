package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-slice/internal/core"
	"github.com/vovakirdan/fruit-slice/internal/progress"
)

// ShopKeyMap defines the key bindings for the cosmetics shop.
type ShopKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ShopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ShopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Choose}, {k.Back, k.Quit}}
}

// DefaultShopKeyMap returns default key bindings.
func DefaultShopKeyMap() ShopKeyMap {
	return ShopKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "buy/equip"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// shopEntry is one catalog row; index 0 is the free default trail.
type shopEntry struct {
	ID    string
	Name  string
	Price int
	Blurb string
}

func shopEntries() []shopEntry {
	entries := []shopEntry{{ID: progress.DefaultCosmetic, Name: "Classic Blade", Blurb: "The trail every player starts with"}}
	for _, it := range progress.Catalog {
		entries = append(entries, shopEntry{ID: it.ID, Name: it.Name, Price: it.Price, Blurb: it.Preview})
	}
	return entries
}

// ShopModel lets the player buy and equip blade trails.
type ShopModel struct {
	prog      *progress.Store
	audio     CuePlayer
	entries   []shopEntry
	table     table.Model
	help      help.Model
	keys      ShopKeyMap
	width     int
	height    int
	status    string
	failed    bool
	quitting  bool
	goingBack bool
}

// NewShopModel creates a shop bound to prog. audio may be nil.
func NewShopModel(prog *progress.Store, audio CuePlayer, width, height int) ShopModel {
	m := ShopModel{
		prog:    prog,
		audio:   audio,
		entries: shopEntries(),
		help:    help.New(),
		keys:    DefaultShopKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Trail", Width: 16},
			{Title: "Price", Width: 7},
			{Title: "Status", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(len(m.entries)+1),
	)
	m.table.SetStyles(tableStyles())
	m.refresh()
	return m
}

func (m *ShopModel) refresh() {
	rec := m.prog.Record()
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		status := "locked"
		switch {
		case rec.Selected == e.ID:
			status = "equipped"
		case rec.Owns(e.ID):
			status = "owned"
		}
		price := "free"
		if e.Price > 0 {
			price = fmt.Sprintf("%d", e.Price)
		}
		rows[i] = table.Row{e.Name, price, status}
	}
	m.table.SetRows(rows)
}

// choose buys the highlighted trail if needed, then equips it.
func (m *ShopModel) choose() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return
	}
	e := m.entries[i]
	rec := m.prog.Record()

	if !rec.Owns(e.ID) {
		if err := m.prog.PurchaseItem(e.ID); err != nil {
			m.failed = true
			switch {
			case errors.Is(err, progress.ErrInsufficientCoins):
				m.status = fmt.Sprintf("Need %d more coins", e.Price-rec.Coins)
			default:
				m.status = err.Error()
			}
			return
		}
		if m.audio != nil {
			m.audio.PlayAll([]core.Cue{core.CuePurchase})
		}
	}
	if err := m.prog.SelectCosmetic(e.ID); err != nil {
		m.failed = true
		m.status = err.Error()
		return
	}
	m.failed = false
	m.status = fmt.Sprintf("%s equipped", e.Name)
	m.refresh()
}

// Init initializes the shop model.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Choose):
			m.choose()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	coinStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("TRAIL SHOP", m.width)))
	b.WriteString("\n\n")
	b.WriteString(coinStyle.Render(centerText(fmt.Sprintf("Coins: %d", m.prog.Coins()), m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(boxStyle.Render(m.table.View()), m.width))
	b.WriteString("\n")

	if i := m.table.Cursor(); i >= 0 && i < len(m.entries) {
		b.WriteString(dimStyle.Render(centerText(m.entries[i].Blurb, m.width)))
		b.WriteString("\n")
	}
	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		if m.failed {
			statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		}
		b.WriteString(statusStyle.Render(centerText(m.status, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ShopModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ShopModel) IsQuitting() bool {
	return m.quitting
}

// RunShop runs the shop screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunShop(prog *progress.Store, audio CuePlayer, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewShopModel(prog, audio, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ShopModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
