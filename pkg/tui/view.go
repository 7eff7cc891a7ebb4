package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	helpHeight  = 3
	inputHeight = 5
)

var (
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpDangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	boxStyle        = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	title := "Backlog"
	if m.hideCompleted {
		title = "Backlog (hiding completed)"
	}

	listHeight := m.listHeight()
	g := NewGrid(m.width, listHeight)
	lv := listView{
		rows:     m.visibleRows(),
		selected: m.selected,
		scroll:   m.scroll,
		title:    title,
		renumber: m.hideCompleted,
	}
	lv.render(g, m.width, listHeight)

	sections := []string{g.String()}
	if m.mode == modeAdd || m.mode == modeEdit {
		sections = append(sections, m.inputView())
	}
	sections = append(sections, m.helpView())
	return strings.Join(sections, "\n")
}

// listHeight is the rows granted to the list frame after the input box and
// help bar take theirs.
func (m *Model) listHeight() int {
	h := m.height - helpHeight
	if m.mode == modeAdd || m.mode == modeEdit {
		h -= inputHeight
	}
	if h < 3 {
		h = 3
	}
	return h
}

// adjustScroll keeps the selected row fully inside the list window, counting
// the wrapped-line height of every row between the scroll offset and the
// selection rather than assuming one line per row.
func (m *Model) adjustScroll() {
	if len(m.visibleIndices()) == 0 {
		m.scroll = 0
		return
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
	if m.selected < m.scroll {
		m.scroll = m.selected
	}

	innerW := m.width - 2
	innerH := m.listHeight() - 2
	if innerW < minInnerWidth || innerH < 1 {
		return
	}
	textWidth := innerW - prefixWidth

	rows := m.visibleRows()
	for m.scroll < m.selected {
		lines := 0
		for i := m.scroll; i <= m.selected && i < len(rows); i++ {
			lines += rowHeight(rows[i].Item.Description, textWidth)
		}
		if lines <= innerH {
			break
		}
		m.scroll++
	}
}

// inputView paints the edit buffer with a block cursor at the code-point
// position, wrapping across the box's inner lines.
func (m Model) inputView() string {
	title := "Add"
	if m.mode == modeEdit {
		title = "Edit"
	}

	g := NewGrid(m.width, inputHeight)
	drawFrame(g, m.width, inputHeight, title)

	innerW := m.width - 2
	innerH := inputHeight - 2
	if innerW < 1 {
		return g.String()
	}

	x, y := 0, 0
	put := func(r rune, style Style) {
		if y < innerH {
			g.SetCell(1+x, 1+y, r, style)
		}
		x++
		if x >= innerW {
			x = 0
			y++
		}
	}

	runes := []rune(m.input.Value())
	cursor := m.input.Position()
	for i, r := range runes {
		style := StyleNone
		if i == cursor {
			style = StyleReverse
		}
		put(r, style)
	}
	if cursor >= len(runes) {
		put(' ', StyleReverse)
	}

	return g.String()
}

func (m Model) helpView() string {
	var text string
	style := helpStyle
	switch m.mode {
	case modeAdd, modeEdit:
		text = "Enter:confirm  Esc:cancel"
	case modeConfirmDelete:
		text = "Delete item? y:yes  n/Esc:cancel"
		style = helpDangerStyle
	default:
		text = "a:add  j/k:nav  x:toggle  e:edit  dd:del  K/J:move  h:hide done  q:quit"
	}

	width := m.width - 2
	if width < 1 {
		width = 1
	}
	if runes := []rune(text); len(runes) > width {
		text = string(runes[:width])
	}
	return boxStyle.Width(width).Render(style.Render(text))
}
