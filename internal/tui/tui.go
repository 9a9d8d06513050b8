// Package tui is the full-screen terminal frontend: the board on top, a
// scrolling event log below and a key help footer.
package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
	"github.com/peterkuimelis/tcgsim/internal/game"
	"github.com/peterkuimelis/tcgsim/internal/log"
	"github.com/peterkuimelis/tcgsim/internal/table"
	"github.com/peterkuimelis/tcgsim/internal/view"
)

// Options tunes the model.
type Options struct {
	Theme     string
	EventRows int
	Logger    *charmlog.Logger
}

// Model is the Bubble Tea model for one table.
type Model struct {
	table  *table.Table
	logger *charmlog.Logger
	styles Styles

	// UI components
	events viewport.Model
	help   help.Model

	lines    []string
	lastErr  string
	quitting bool

	// Dimensions
	width     int
	height    int
	eventRows int
}

// New creates a model showing t. Events already on the table are loaded
// into the log.
func New(t *table.Table, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}
	rows := opts.EventRows
	if rows <= 0 {
		rows = 8
	}

	m := &Model{
		table:     t,
		logger:    logger.WithPrefix("tui"),
		styles:    ThemeStyles(opts.Theme),
		events:    viewport.New(10, rows),
		help:      help.New(),
		eventRows: rows,
	}
	m.appendEvents(t.Events(0))
	return m
}

// Run starts the program on the alternate screen and blocks until the
// player quits.
func Run(t *table.Table, opts Options) error {
	_, err := tea.NewProgram(New(t, opts), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.events.Width = max(msg.Width-2, 1)
		m.help.Width = msg.Width
		m.logger.Debug("Window resized", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, toggleKey):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, scrollUp):
			m.events.HalfPageUp()
		case key.Matches(msg, scrollDn):
			m.events.HalfPageDown()
		default:
			if in, ok := inputFor(msg); ok {
				m.press(in)
			}
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.events, cmd = m.events.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) press(in game.Input) {
	res, err := m.table.Press(in)
	m.appendEvents(res.Events)
	m.lastErr = ""
	if err != nil {
		m.lastErr = err.Error()
	}
}

func (m *Model) appendEvents(events []log.GameEvent) {
	if len(events) == 0 {
		return
	}
	for _, ev := range events {
		m.lines = append(m.lines, log.FormatEvent(ev))
	}
	m.events.SetContent(strings.Join(m.lines, "\n"))
	m.events.GotoBottom()
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var board strings.Builder
	view.Render(&board, m.table.View())

	title := m.styles.Title.Render("tcgsim") + " " + m.styles.Subtle.Render(m.table.ID())

	boardPane := m.styles.Board.
		Width(max(m.width-2, 1)).
		Render(strings.TrimRight(board.String(), "\n"))

	logPane := m.styles.Log.
		BorderForeground(m.styles.Focused).
		Width(max(m.width-2, 1)).
		Height(m.eventRows).
		Render(m.events.View())

	status := m.styles.Status.Render("Ready")
	if m.lastErr != "" {
		status = m.styles.Error.Render(m.lastErr)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		boardPane,
		logPane,
		status,
		m.help.View(keyMap{}),
	)
}
