package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style is the paint applied to a cell. Dimming is the base; reversal layers
// on top of it for selected rows.
type Style uint8

const (
	StyleNone    Style = 0
	StyleDim     Style = 1 << 0
	StyleReverse Style = 1 << 1
)

// Canvas receives cell writes from the renderers, keeping layout logic
// independent of the terminal backend.
type Canvas interface {
	SetCell(x, y int, r rune, style Style)
}

var (
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	reverseStyle    = lipgloss.NewStyle().Reverse(true)
	dimReverseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Reverse(true)
)

func (s Style) render(text string) string {
	switch {
	case s&StyleDim != 0 && s&StyleReverse != 0:
		return dimReverseStyle.Render(text)
	case s&StyleReverse != 0:
		return reverseStyle.Render(text)
	case s&StyleDim != 0:
		return dimStyle.Render(text)
	}
	return text
}

// Grid is an in-memory Canvas rendered to styled terminal lines.
type Grid struct {
	width  int
	height int
	runes  [][]rune
	styles [][]Style
}

func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:  width,
		height: height,
		runes:  make([][]rune, height),
		styles: make([][]Style, height),
	}
	for y := 0; y < height; y++ {
		g.runes[y] = make([]rune, width)
		g.styles[y] = make([]Style, width)
		for x := 0; x < width; x++ {
			g.runes[y][x] = ' '
		}
	}
	return g
}

// SetCell writes one cell. Out-of-range writes are ignored.
func (g *Grid) SetCell(x, y int, r rune, style Style) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.runes[y][x] = r
	g.styles[y][x] = style
}

// Cell returns the rune and style at a position (space/none out of range).
func (g *Grid) Cell(x, y int) (rune, Style) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return ' ', StyleNone
	}
	return g.runes[y][x], g.styles[y][x]
}

// Line returns row y without styling.
func (g *Grid) Line(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	return string(g.runes[y])
}

// String renders the grid with ANSI styling, grouping runs of equal style.
func (g *Grid) String() string {
	lines := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		var b strings.Builder
		x := 0
		for x < g.width {
			style := g.styles[y][x]
			end := x
			for end < g.width && g.styles[y][end] == style {
				end++
			}
			b.WriteString(style.render(string(g.runes[y][x:end])))
			x = end
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
