package registry

import (
	"testing"

	"github.com/vovakirdan/fruit-slice/internal/core"
)

type namedGame struct{ id, title string }

func (g namedGame) ID() string { return g.id }
func (g namedGame) Title() string { return g.title }
func (g namedGame) Reset(core.RuntimeConfig) {}
func (g namedGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g namedGame) Render(*core.Screen) {}
func (g namedGame) State() core.GameState { return core.GameState{} }

type describedGame struct{ namedGame }

func (describedGame) Blurb() string { return "with a blurb" }

func TestRegisterLookupCreate(t *testing.T) {
	Register("zz_test_b", func() Game { return namedGame{"zz_test_b", "Bravo"} })
	Register("zz_test_a", func() Game { return namedGame{"zz_test_a", "Alpha"} })

	info, ok := Lookup("zz_test_a")
	if !ok || info.Title != "Alpha" {
		t.Errorf("Lookup() = %+v, %v, expected Alpha", info, ok)
	}
	if _, ok := Lookup("missing"); ok {
		t.Error("Lookup() should miss unknown IDs")
	}

	g, err := Create("zz_test_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Bravo" {
		t.Errorf("Create().Title() = %q, expected Bravo", g.Title())
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}

	Register("zz_test_c", func() Game { return describedGame{namedGame{"zz_test_c", "Charlie"}} })
	if info, _ := Lookup("zz_test_c"); info.Blurb != "with a blurb" {
		t.Errorf("Lookup().Blurb = %q, expected the Describer blurb", info.Blurb)
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_test_dup", func() Game { return namedGame{"zz_test_dup", "Dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz_test_dup", func() Game { return namedGame{"zz_test_dup", "Dup"} })
}
