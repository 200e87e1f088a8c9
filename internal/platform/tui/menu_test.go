package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-slice/internal/core"
	"github.com/vovakirdan/fruit-slice/internal/progress"
)

func menuWithModes(prog *progress.Store) MenuModel {
	m := NewMenuModel(nil, prog, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m.items = []MenuItem{
		{GameID: "slice", Title: "Slice", Blurb: "plain"},
		{GameID: "slice_challenge", Title: "Slice: Challenge", Best: 120},
	}
	return m
}

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuSelectRemembersChallenge(t *testing.T) {
	prog := progress.Open(progress.NewMemoryPersister(progress.DefaultRecord()))
	m := menuWithModes(prog)

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, expected clamp at 1", m.cursor)
	}
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != "slice_challenge" {
		t.Fatalf("Selected() = %+v, expected the challenge mode", m.Selected())
	}
	if !prog.ChallengeMode() {
		t.Error("selecting the challenge mode should persist it")
	}
}

func TestMenuShopNeedsProgression(t *testing.T) {
	m := menuWithModes(nil)
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if m.WantsShop() {
		t.Error("shop should stay closed without a progression store")
	}

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

func TestMenuViewShowsCards(t *testing.T) {
	m := menuWithModes(nil)
	view := m.View()
	for _, want := range []string{"> Slice", "plain", "Best: 120"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
