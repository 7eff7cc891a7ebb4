package tui

import (
	"fmt"

	"tableflip.dev/backlog/pkg/backlog"
	"tableflip.dev/backlog/pkg/glyph"
)

// prefixWidth is the fixed column reserved for `"1. [x] "`. Wider numbers
// are clipped against it rather than shifting the text column.
const prefixWidth = 8

// minInnerWidth is the floor below which only the frame is drawn.
const minInnerWidth = 10

// Row pairs a visible item with its index in the full backlog.
type Row struct {
	Actual int
	Item   backlog.Item
}

// listView paints a bordered, scrolled item list onto a Canvas.
//
// Descriptions wrap by hard character count: runs of exactly textWidth
// runes, the last run shorter. The prefix appears on a row's first line
// only; continuation lines get a blank indent. Selection reverse-video and
// done-dimming compose, and the highlight spans the full inner width.
type listView struct {
	rows     []Row
	selected int
	scroll   int
	title    string
	// renumber switches to sequential 1..N numbering; otherwise rows keep
	// their backlog number so the list stays stable against the full set.
	renumber bool
}

func (lv listView) render(c Canvas, width, height int) {
	if width < 2 || height < 2 {
		return
	}
	drawFrame(c, width, height, lv.title)

	innerW := width - 2
	innerH := height - 2
	if innerW < minInnerWidth || innerH < 1 {
		return
	}
	textWidth := innerW - prefixWidth

	y := 0
	for visibleIdx := lv.scroll; visibleIdx < len(lv.rows); visibleIdx++ {
		if y >= innerH {
			break
		}
		row := lv.rows[visibleIdx]

		num := row.Actual + 1
		if lv.renumber {
			num = visibleIdx + 1
		}
		prefix := fmt.Sprintf("%d. %s ", num, glyph.Checkbox(row.Item.Done))
		style := rowStyle(visibleIdx == lv.selected, row.Item.Done)

		for lineIdx, line := range wrapChunks(row.Item.Description, textWidth) {
			if y >= innerH {
				break
			}
			py := 1 + y

			if lineIdx == 0 {
				prefixRunes := []rune(prefix)
				for j := 0; j < prefixWidth; j++ {
					r := ' '
					if j < len(prefixRunes) {
						r = prefixRunes[j]
					}
					c.SetCell(1+j, py, r, style)
				}
			} else {
				for j := 0; j < prefixWidth; j++ {
					c.SetCell(1+j, py, ' ', style)
				}
			}

			runes := []rune(line)
			for j, r := range runes {
				if prefixWidth+j < innerW {
					c.SetCell(1+prefixWidth+j, py, r, style)
				}
			}
			// Extend the style to the full row width so the highlight bar
			// does not stop at the text.
			for j := prefixWidth + len(runes); j < innerW; j++ {
				c.SetCell(1+j, py, ' ', style)
			}

			y++
		}
	}
}

func rowStyle(selected, done bool) Style {
	var s Style
	if done {
		s |= StyleDim
	}
	if selected {
		s |= StyleReverse
	}
	return s
}

// wrapChunks splits s into runs of exactly width runes; the last run may be
// shorter. Zero width or an empty string falls back to a single raw line.
func wrapChunks(s string, width int) []string {
	runes := []rune(s)
	if width <= 0 || len(runes) == 0 {
		return []string{s}
	}
	lines := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		lines = append(lines, string(runes[start:end]))
	}
	return lines
}

// rowHeight is the number of terminal lines one row occupies.
func rowHeight(description string, textWidth int) int {
	return len(wrapChunks(description, textWidth))
}

// drawFrame paints a single-line border with the title overlaid on the top
// edge.
func drawFrame(c Canvas, width, height int, title string) {
	right := width - 1
	bottom := height - 1

	for x := 1; x < right; x++ {
		c.SetCell(x, 0, '─', StyleNone)
		c.SetCell(x, bottom, '─', StyleNone)
	}
	for y := 1; y < bottom; y++ {
		c.SetCell(0, y, '│', StyleNone)
		c.SetCell(right, y, '│', StyleNone)
	}
	c.SetCell(0, 0, '┌', StyleNone)
	c.SetCell(right, 0, '┐', StyleNone)
	c.SetCell(0, bottom, '└', StyleNone)
	c.SetCell(right, bottom, '┘', StyleNone)

	for i, r := range []rune(title) {
		if 1+i >= right {
			break
		}
		c.SetCell(1+i, 0, r, StyleNone)
	}
}
