// Package tui implements the interactive backlog session: a modal state
// machine over a filterable item list, rendered with a character-grid list
// painter.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tableflip.dev/backlog/pkg/backlog"
)

type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

// SaveFunc persists the backlog after a mutation. Failures are logged and
// swallowed; in-memory state stays authoritative for the rest of the session.
type SaveFunc func(*backlog.Backlog) error

// Model is the bubbletea model for one session. The backlog is exclusively
// owned by the session for its duration.
type Model struct {
	backlog *backlog.Backlog
	save    SaveFunc
	logger  *log.Logger

	mode          mode
	selected      int // position in the visible sequence
	scroll        int // first visible row scrolled into view
	pendingDelete bool
	hideCompleted bool

	input textinput.Model

	choice string
	width  int
	height int
}

// New creates a session model over b. save and logger may be nil.
func New(b *backlog.Backlog, save SaveFunc, logger *log.Logger) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	return Model{
		backlog: b,
		save:    save,
		logger:  logger,
		input:   ti,
		width:   80,
		height:  24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Choice returns the description selected with Enter, or "" if the session
// was quit without selecting.
func (m Model) Choice() string {
	return m.choice
}

func (m *Model) persist() {
	if m.save == nil {
		return
	}
	if err := m.save(m.backlog); err != nil && m.logger != nil {
		m.logger.Error("save backlog", "err", err)
	}
}
