package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/backlog/pkg/backlog"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch m.mode {
		case modeNormal:
			var quit bool
			cmd, quit = m.updateNormal(msg)
			if quit {
				return m, tea.Quit
			}
		case modeConfirmDelete:
			m.updateConfirmDelete(msg)
		case modeAdd, modeEdit:
			m.input, cmd = m.updateInput(msg)
		}
	}

	m.adjustScroll()
	return m, cmd
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return nil, true
	case "enter":
		if actual, ok := m.visibleToActual(m.selected); ok {
			m.choice = m.backlog.Items[actual].Description
		}
		return nil, true
	case "J", "shift+down":
		m.moveItemDown()
		m.pendingDelete = false
	case "K", "shift+up":
		m.moveItemUp()
		m.pendingDelete = false
	case "j", "down":
		m.moveDown()
		m.pendingDelete = false
	case "k", "up":
		m.moveUp()
		m.pendingDelete = false
	case "x":
		m.toggleDone()
		m.pendingDelete = false
	case "e":
		m.pendingDelete = false
		return m.enterEdit(), false
	case "a":
		m.pendingDelete = false
		return m.enterAdd(), false
	case "h":
		m.toggleHideCompleted()
		m.pendingDelete = false
	case "d":
		if m.pendingDelete {
			m.deleteSelected()
			m.pendingDelete = false
		} else {
			m.pendingDelete = true
		}
	case "backspace", "delete":
		m.mode = modeConfirmDelete
		m.pendingDelete = false
	default:
		// Any unrecognized key disarms a pending dd.
		m.pendingDelete = false
	}
	return nil, false
}

func (m *Model) updateConfirmDelete(msg tea.KeyMsg) {
	switch msg.String() {
	case "y":
		m.deleteSelected()
	case "n", "esc":
		m.mode = modeNormal
	}
}

func (m *Model) updateInput(msg tea.KeyMsg) (textinput.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.mode == modeAdd {
			m.confirmAdd()
		} else {
			m.confirmEdit()
		}
		m.closeInput()
		return m.input, nil
	case "esc":
		m.closeInput()
		return m.input, nil
	}
	return m.input.Update(msg)
}

func (m *Model) moveUp() {
	if m.selected > 0 {
		m.selected--
	}
}

func (m *Model) moveDown() {
	if count := len(m.visibleIndices()); count > 0 && m.selected < count-1 {
		m.selected++
	}
}

// moveItemUp swaps the selected item with its backlog-order predecessor so
// hidden items are not skipped over, then tracks it through the filter.
func (m *Model) moveItemUp() {
	actual, ok := m.visibleToActual(m.selected)
	if !ok || actual == 0 {
		return
	}
	m.backlog.Swap(actual, actual-1)
	if pos, ok := m.actualToVisible(actual - 1); ok {
		m.selected = pos
	}
	m.persist()
}

func (m *Model) moveItemDown() {
	actual, ok := m.visibleToActual(m.selected)
	if !ok || actual >= len(m.backlog.Items)-1 {
		return
	}
	m.backlog.Swap(actual, actual+1)
	if pos, ok := m.actualToVisible(actual + 1); ok {
		m.selected = pos
	}
	m.persist()
}

func (m *Model) toggleDone() {
	actual, ok := m.visibleToActual(m.selected)
	if !ok {
		return
	}
	m.backlog.Items[actual].Done = !m.backlog.Items[actual].Done
	m.persist()
	if m.hideCompleted && m.backlog.Items[actual].Done {
		m.clampSelected()
	}
}

func (m *Model) toggleHideCompleted() {
	m.hideCompleted = !m.hideCompleted
	m.clampSelected()
}

func (m *Model) deleteSelected() {
	if actual, ok := m.visibleToActual(m.selected); ok {
		m.backlog.Remove(actual)
		m.clampSelected()
		m.persist()
	}
	m.mode = modeNormal
}

func (m *Model) enterAdd() tea.Cmd {
	m.mode = modeAdd
	m.input.SetValue("")
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) enterEdit() tea.Cmd {
	actual, ok := m.visibleToActual(m.selected)
	if !ok {
		return nil
	}
	m.mode = modeEdit
	m.input.SetValue(m.backlog.Items[actual].Description)
	m.input.CursorEnd()
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

// confirmAdd appends a new pending item and selects it. An empty buffer is a
// silent no-op.
func (m *Model) confirmAdd() {
	desc := m.input.Value()
	if desc == "" {
		return
	}
	m.backlog.Items = append(m.backlog.Items, backlog.New(desc))
	m.selected = len(m.visibleIndices()) - 1
	m.persist()
}

func (m *Model) confirmEdit() {
	if actual, ok := m.visibleToActual(m.selected); ok {
		m.backlog.Items[actual].Description = m.input.Value()
		m.persist()
	}
}

func (m *Model) closeInput() {
	m.mode = modeNormal
	m.input.Blur()
	m.input.SetValue("")
}
