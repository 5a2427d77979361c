package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/lightsout/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                           { return s.id }
func (s stubGame) Title() string                        { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig)             {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen)                  {}
func (s stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return stubGame{id: "stub-a"} })
	Register("stub-b", func() Game { return stubGame{id: "stub-b"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should be registered")
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("ID = %q, want stub-b", g.ID())
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub-a" && info.Title != "Stub stub-a" {
			t.Errorf("title = %q", info.Title)
		}
	}
	if len(ids) < 2 || ids[len(ids)-2] != "stub-a" || ids[len(ids)-1] != "stub-b" {
		t.Errorf("List order = %v, want registration order", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("err = %v, want ErrUnknownVariant", err)
	}
	if Exists("does-not-exist") {
		t.Error("unknown variant reported as existing")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })
}
