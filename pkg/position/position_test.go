package position

import (
	"testing"

	"github.com/flowcanvas/flowcanvas/pkg/layout"
	"github.com/flowcanvas/flowcanvas/pkg/store"
)

func newFixture(t *testing.T) (*store.Store, Composer) {
	t.Helper()
	base := layout.StaticSource{
		"A": {X: 100, Y: 50},
		"B": {X: 240, Y: 120},
	}
	base.SetLabel("A", layout.Point{X: 100, Y: 36})
	s := store.New()
	return s, NewComposer(base, s)
}

func TestNodePositionWithoutOverride(t *testing.T) {
	_, c := newFixture(t)

	got, ok := c.NodePosition("A")
	if !ok {
		t.Fatal("NodePosition reported no base for A")
	}
	if got != (layout.Point{X: 100, Y: 50}) {
		t.Errorf("position = %+v, want base (100,50)", got)
	}
	if c.HasCustomNodePosition("A") {
		t.Error("HasCustomNodePosition = true with no override set")
	}
}

func TestNodePositionWithOverride(t *testing.T) {
	s, c := newFixture(t)
	s.UpdateNodePosition("A", 5, 7)

	got, ok := c.NodePosition("A")
	if !ok {
		t.Fatal("NodePosition reported no base for A")
	}
	if got != (layout.Point{X: 105, Y: 57}) {
		t.Errorf("position = %+v, want base+offset (105,57)", got)
	}
	if !c.HasCustomNodePosition("A") {
		t.Error("HasCustomNodePosition = false with an override set")
	}

	// B has no override and must stay at its base.
	if got, _ := c.NodePosition("B"); got != (layout.Point{X: 240, Y: 120}) {
		t.Errorf("B moved to %+v", got)
	}
}

func TestClearRestoresBaseExactly(t *testing.T) {
	s, c := newFixture(t)

	// Apply and clear repeatedly; the final position must equal the base.
	s.UpdateNodePosition("A", 5, 7)
	s.ClearNodePosition("A")
	s.UpdateNodePosition("A", -30, 12)
	s.ClearNodePosition("A")

	got, _ := c.NodePosition("A")
	if got != (layout.Point{X: 100, Y: 50}) {
		t.Errorf("position = %+v, want exact base (100,50)", got)
	}
}

func TestLabelPositionIndependentOfNode(t *testing.T) {
	s, c := newFixture(t)
	s.UpdateNodePosition("A", 50, 50)

	// The node override must not move the label.
	got, ok := c.LabelPosition("A")
	if !ok {
		t.Fatal("LabelPosition reported no base for A")
	}
	if got != (layout.Point{X: 100, Y: 36}) {
		t.Errorf("label = %+v, want its own base (100,36)", got)
	}

	s.UpdateLabelPosition("A", 0, -10)
	if got, _ := c.LabelPosition("A"); got != (layout.Point{X: 100, Y: 26}) {
		t.Errorf("label = %+v, want (100,26)", got)
	}
	// And the label override must not move the node.
	if got, _ := c.NodePosition("A"); got != (layout.Point{X: 150, Y: 100}) {
		t.Errorf("node = %+v, want (150,100)", got)
	}

	s.ClearLabelPosition("A")
	if got, _ := c.LabelPosition("A"); got != (layout.Point{X: 100, Y: 36}) {
		t.Errorf("label = %+v after clear, want base", got)
	}
	if !c.HasCustomNodePosition("A") {
		t.Error("clearing the label override removed the node override")
	}
}

func TestUnknownEntity(t *testing.T) {
	_, c := newFixture(t)

	if _, ok := c.NodePosition("Z"); ok {
		t.Error("expected ok=false for a node absent from the base source")
	}
	if _, ok := c.LabelPosition("B"); ok {
		t.Error("expected ok=false for a label absent from the base source")
	}
}

func TestBaseRefreshKeepsOverrides(t *testing.T) {
	s := store.New()
	s.UpdateNodePosition("A", 5, 7)

	// A new layout pass produces a fresh base source; the same offset applies
	// on top of the new base.
	c := NewComposer(layout.StaticSource{"A": {X: 300, Y: 80}}, s)
	got, _ := c.NodePosition("A")
	if got != (layout.Point{X: 305, Y: 87}) {
		t.Errorf("position = %+v, want new base + offset (305,87)", got)
	}
}
