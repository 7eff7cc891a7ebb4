package tui

import (
	"testing"

	"tableflip.dev/backlog/pkg/backlog"
)

func testBacklog(descs ...string) *backlog.Backlog {
	b := &backlog.Backlog{}
	for _, d := range descs {
		b.Items = append(b.Items, backlog.New(d))
	}
	return b
}

func TestVisibleIndicesAll(t *testing.T) {
	b := testBacklog("one", "two", "three")
	got := visibleIndices(b.Items, false)
	if len(got) != 3 {
		t.Fatalf("expected 3 visible, got %d", len(got))
	}
	for i, idx := range got {
		if idx != i {
			t.Fatalf("expected identity mapping, got %v", got)
		}
	}
}

func TestVisibleIndicesHidesCompleted(t *testing.T) {
	b := testBacklog("one", "two", "three")
	b.Items[1].Done = true

	got := visibleIndices(b.Items, true)
	if len(got) != 2 {
		t.Fatalf("expected 2 visible, got %d", len(got))
	}
	if got[0] != 0 || got[1] != 2 {
		t.Fatalf("expected [0 2], got %v", got)
	}
}

func TestVisibleToActualRoundTrip(t *testing.T) {
	b := testBacklog("a", "b", "c", "d", "e")
	b.Items[0].Done = true
	b.Items[3].Done = true

	m := New(b, nil, nil)
	m.hideCompleted = true

	for pos := range m.visibleIndices() {
		actual, ok := m.visibleToActual(pos)
		if !ok {
			t.Fatalf("position %d should map to an index", pos)
		}
		back, ok := m.actualToVisible(actual)
		if !ok {
			t.Fatalf("index %d should map back to a position", actual)
		}
		if back != pos {
			t.Fatalf("round trip broke: %d -> %d -> %d", pos, actual, back)
		}
	}
}

func TestActualToVisibleMissesHidden(t *testing.T) {
	b := testBacklog("a", "b")
	b.Items[0].Done = true

	m := New(b, nil, nil)
	m.hideCompleted = true

	if _, ok := m.actualToVisible(0); ok {
		t.Fatalf("hidden item should have no visible position")
	}
	if pos, ok := m.actualToVisible(1); !ok || pos != 0 {
		t.Fatalf("expected index 1 at position 0, got %d %v", pos, ok)
	}
}

func TestVisibleToActualOutOfRange(t *testing.T) {
	m := New(testBacklog("a"), nil, nil)
	if _, ok := m.visibleToActual(-1); ok {
		t.Fatalf("negative position should not map")
	}
	if _, ok := m.visibleToActual(1); ok {
		t.Fatalf("past-end position should not map")
	}
}

func TestClampSelectedAfterShrink(t *testing.T) {
	b := testBacklog("a", "b", "c")
	m := New(b, nil, nil)
	m.selected = 2

	b.Items[2].Done = true
	b.Items[1].Done = true
	m.hideCompleted = true
	m.clampSelected()

	if m.selected != 0 {
		t.Fatalf("expected selection clamped to 0, got %d", m.selected)
	}
}

func TestClampSelectedEmpty(t *testing.T) {
	m := New(testBacklog(), nil, nil)
	m.selected = 5
	m.clampSelected()
	if m.selected != 0 {
		t.Fatalf("expected selection 0 on empty list, got %d", m.selected)
	}
}
