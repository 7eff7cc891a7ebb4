package tui

import "tableflip.dev/backlog/pkg/backlog"

// visibleIndices returns the backlog indices passing the hide-completed
// filter, in backlog order.
func visibleIndices(items []backlog.Item, hideCompleted bool) []int {
	indices := make([]int, 0, len(items))
	for i, item := range items {
		if hideCompleted && item.Done {
			continue
		}
		indices = append(indices, i)
	}
	return indices
}

func (m *Model) visibleIndices() []int {
	return visibleIndices(m.backlog.Items, m.hideCompleted)
}

// visibleToActual converts a position in the visible sequence to a backlog
// index.
func (m *Model) visibleToActual(pos int) (int, bool) {
	visible := m.visibleIndices()
	if pos < 0 || pos >= len(visible) {
		return 0, false
	}
	return visible[pos], true
}

// actualToVisible converts a backlog index to its position in the visible
// sequence. Hidden items have no position.
func (m *Model) actualToVisible(actual int) (int, bool) {
	for pos, idx := range m.visibleIndices() {
		if idx == actual {
			return pos, true
		}
	}
	return 0, false
}

// visibleRows pairs each visible item with its backlog index, for rendering.
func (m *Model) visibleRows() []Row {
	indices := m.visibleIndices()
	rows := make([]Row, 0, len(indices))
	for _, actual := range indices {
		rows = append(rows, Row{Actual: actual, Item: m.backlog.Items[actual]})
	}
	return rows
}

// clampSelected pulls the selection back into range after the visible set
// shrinks.
func (m *Model) clampSelected() {
	visible := m.visibleIndices()
	if len(visible) == 0 {
		m.selected = 0
	} else if m.selected >= len(visible) {
		m.selected = len(visible) - 1
	}
}
