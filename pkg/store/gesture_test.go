package store

import (
	"testing"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
)

func TestGestureCommit(t *testing.T) {
	s := New()
	s.AddFlow(diagram.Flow{ID: "f1", Source: "A", Target: "B", Value: 1})

	s.BeginGesture()
	if !s.GestureActive() {
		t.Fatal("GestureActive = false after BeginGesture")
	}
	if !s.UIState().IsDragging {
		t.Error("IsDragging should be set during a gesture")
	}

	s.UpdateNodePosition("A", 12, -4)
	s.CommitGesture()

	if s.GestureActive() {
		t.Error("gesture still active after commit")
	}
	if dx, dy, ok := s.NodeOffset("A"); !ok || dx != 12 || dy != -4 {
		t.Errorf("offset = (%v,%v,%v), want committed (12,-4,true)", dx, dy, ok)
	}
}

func TestGestureAbortRollsBack(t *testing.T) {
	s := New()
	s.UpdateNodePosition("A", 1, 1)

	s.BeginGesture()
	// Live feedback during a drag: several intermediate positions.
	s.UpdateNodePosition("A", 5, 5)
	s.UpdateNodePosition("A", 9, 9)
	s.AbortGesture()

	dx, dy, ok := s.NodeOffset("A")
	if !ok || dx != 1 || dy != 1 {
		t.Errorf("offset = (%v,%v,%v), want pre-gesture (1,1,true)", dx, dy, ok)
	}
	if s.UIState().IsDragging {
		t.Error("IsDragging still set after abort")
	}
}

func TestGestureAbortWithoutBegin(t *testing.T) {
	s := New()
	s.AddFlow(diagram.Flow{ID: "f1", Source: "A", Target: "B", Value: 1})

	s.AbortGesture()
	if s.FlowCount() != 1 {
		t.Error("AbortGesture without BeginGesture should be a no-op")
	}
}

func TestGestureAbortInvalidatesRedo(t *testing.T) {
	s := New()
	s.SaveSnapshot()
	s.AddFlow(diagram.Flow{ID: "f1", Source: "A", Target: "B", Value: 1})
	s.Undo()
	if !s.CanRedo() {
		t.Fatal("expected redo state")
	}

	s.BeginGesture()
	s.AbortGesture()
	if s.CanRedo() {
		t.Error("aborted gesture counts as a mutation and must clear redo")
	}
}
