package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sized(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

func TestViewShowsItems(t *testing.T) {
	m := New(testBacklog("write tests"), nil, nil)
	out := m.View()

	if !strings.Contains(out, "1. [ ] write tests") {
		t.Fatalf("view should show the item, got %q", out)
	}
	if !strings.Contains(out, "Backlog") {
		t.Fatalf("view should carry the title")
	}
	if !strings.Contains(out, "q:quit") {
		t.Fatalf("view should show the help bar")
	}
}

func TestViewTitleReflectsFilter(t *testing.T) {
	m := New(testBacklog("a"), nil, nil)
	m = press(t, m, "h")
	if !strings.Contains(m.View(), "Backlog (hiding completed)") {
		t.Fatalf("title should note the filter")
	}
}

func TestViewHelpPerMode(t *testing.T) {
	m := New(testBacklog("a"), nil, nil)

	m = press(t, m, "a")
	if !strings.Contains(m.View(), "Enter:confirm  Esc:cancel") {
		t.Fatalf("add mode should show the input help")
	}
	m = press(t, m, "esc", "delete")
	if !strings.Contains(m.View(), "Delete item? y:yes  n/Esc:cancel") {
		t.Fatalf("confirm mode should show the delete prompt")
	}
}

func TestViewInputBoxOnlyWhileEditing(t *testing.T) {
	m := New(testBacklog("a"), nil, nil)
	if strings.Contains(m.View(), "┌Add") {
		t.Fatalf("input box should be hidden in normal mode")
	}

	m = press(t, m, "a")
	if !strings.Contains(m.View(), "┌Add") {
		t.Fatalf("add mode should show the Add box")
	}

	m = press(t, m, "esc", "e")
	if !strings.Contains(m.View(), "┌Edit") {
		t.Fatalf("edit mode should show the Edit box")
	}
}

func TestViewZeroSizeIsEmpty(t *testing.T) {
	m := New(testBacklog("a"), nil, nil)
	m = sized(t, m, 0, 0)
	if m.View() != "" {
		t.Fatalf("zero-size view should render nothing")
	}
}

func TestAdjustScrollFollowsSelection(t *testing.T) {
	// height 8 leaves listHeight 5 and innerH 3; four one-line rows cannot
	// all fit, so selecting the last row must scroll.
	m := New(testBacklog("a", "b", "c", "d"), nil, nil)
	m = sized(t, m, 40, 8)

	m = press(t, m, "j", "j", "j")
	if m.selected != 3 {
		t.Fatalf("expected selection 3, got %d", m.selected)
	}
	if m.scroll != 1 {
		t.Fatalf("expected scroll 1, got %d", m.scroll)
	}

	m = press(t, m, "k", "k", "k")
	if m.scroll != 0 {
		t.Fatalf("scrolling back up should reset to 0, got %d", m.scroll)
	}
}

func TestAdjustScrollCountsWrappedLines(t *testing.T) {
	// width 20 gives textWidth 10; a 25-rune description occupies three
	// lines, so with innerH 3 the second row already needs a scroll even
	// though only two rows are above the fold.
	long := strings.Repeat("x", 25)
	m := New(testBacklog(long, "short", "tail"), nil, nil)
	m = sized(t, m, 20, 8)

	m = press(t, m, "j")
	if m.scroll != 1 {
		t.Fatalf("wrapped first row should force scroll 1, got %d", m.scroll)
	}
}

func TestAdjustScrollEmptyList(t *testing.T) {
	m := New(testBacklog(), nil, nil)
	m.scroll = 7
	m.adjustScroll()
	if m.scroll != 0 {
		t.Fatalf("empty list should pin scroll to 0, got %d", m.scroll)
	}
}
