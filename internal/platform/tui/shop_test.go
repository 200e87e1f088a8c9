package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-slice/internal/core"
	"github.com/vovakirdan/fruit-slice/internal/progress"
)

func shopWithCoins(coins int) (ShopModel, *progress.Store, *recordingPlayer) {
	rec := progress.DefaultRecord()
	rec.Coins = coins
	prog := progress.Open(progress.NewMemoryPersister(rec))
	player := &recordingPlayer{}
	return NewShopModel(prog, player, 80, 24), prog, player
}

func shopKey(t *testing.T, m ShopModel, msg tea.KeyMsg) ShopModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(ShopModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestShopBuysAndEquips(t *testing.T) {
	m, prog, player := shopWithCoins(6)

	m = shopKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = shopKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if prog.Coins() != 1 {
		t.Errorf("coins = %d, expected 1 after buying the neon trail", prog.Coins())
	}
	if prog.Selected() != "trail_neon" {
		t.Errorf("selected = %q, expected trail_neon", prog.Selected())
	}
	if len(player.cues) != 1 || player.cues[0] != core.CuePurchase {
		t.Errorf("cues = %v, expected one purchase cue", player.cues)
	}

	// Choosing again only re-equips.
	m = shopKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if prog.Coins() != 1 || len(player.cues) != 1 {
		t.Error("choosing an owned trail must not charge again")
	}
}

func TestShopRejectsWhenPoor(t *testing.T) {
	m, prog, player := shopWithCoins(2)

	m = shopKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = shopKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if prog.Coins() != 2 || prog.Selected() != progress.DefaultCosmetic {
		t.Errorf("coins=%d selected=%q, expected unchanged", prog.Coins(), prog.Selected())
	}
	if !m.failed || m.status != "Need 3 more coins" {
		t.Errorf("status = %q (failed=%v)", m.status, m.failed)
	}
	if len(player.cues) != 0 {
		t.Error("a failed purchase should not play a cue")
	}
}

func TestShopBack(t *testing.T) {
	m, _, _ := shopWithCoins(0)
	m = shopKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back without quitting")
	}
}
