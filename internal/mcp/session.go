package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	charmlog "github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/peterkuimelis/tcgsim/internal/config"
	"github.com/peterkuimelis/tcgsim/internal/log"
	"github.com/peterkuimelis/tcgsim/internal/table"
	"github.com/peterkuimelis/tcgsim/internal/view"
)

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Table   string          `json:"table"`
	Events  []log.GameEvent `json:"events"`
	State   *view.StateView `json:"state,omitempty"`
	Board   string          `json:"board,omitempty"`
	Applied int             `json:"applied,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Session holds the table an MCP client is playing at. The stdio server
// runs one session; a new game replaces the table.
type Session struct {
	settings config.GameSettings
	clock    quartz.Clock
	logger   *charmlog.Logger

	mu      sync.Mutex
	table   *table.Table
	lastSeq int // last event already reported to the client
}

// NewSession creates a session whose games default to the given settings.
func NewSession(settings config.GameSettings, clock quartz.Clock, logger *charmlog.Logger) *Session {
	return &Session{settings: settings, clock: clock, logger: logger}
}

// start opens a new table, replacing any current one.
func (s *Session) start(gs config.GameSettings, noSetup bool) (*ToolResponse, error) {
	t, err := table.Open(gs, table.Config{Clock: s.clock, Logger: s.logger, NoSetup: noSetup})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = t
	s.lastSeq = 0
	return s.respondLocked(0, nil), nil
}

// press applies inputs in order, stopping at the first rejected one.
func (s *Session) press(names []string) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table == nil {
		return nil, errNoGame
	}

	applied := 0
	var failure error
	for _, name := range names {
		if _, err := s.table.PressNamed(name); err != nil {
			failure = fmt.Errorf("input %d (%q): %w", applied+1, name, err)
			break
		}
		applied++
	}
	return s.respondLocked(applied, failure), nil
}

// snapshot reports the table and the events since the last report.
func (s *Session) snapshot() (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table == nil {
		return nil, errNoGame
	}
	return s.respondLocked(0, nil), nil
}

func (s *Session) respondLocked(applied int, failure error) *ToolResponse {
	events := s.table.Events(s.lastSeq)
	if n := len(events); n > 0 {
		s.lastSeq = events[n-1].Seq
	}
	sv := s.table.View()

	var board bytes.Buffer
	view.Render(&board, sv)

	resp := &ToolResponse{
		Table:   s.table.ID(),
		Events:  events,
		State:   sv,
		Board:   board.String(),
		Applied: applied,
	}
	if failure != nil {
		resp.Error = failure.Error()
	}
	return resp
}

func respondJSON(resp any) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
