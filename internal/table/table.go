// Package table owns one hot-seat game and serializes access to it for
// frontends that may call in from several goroutines.
package table

import (
	"fmt"
	"io"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/oklog/ulid/v2"
	"github.com/peterkuimelis/tcgsim/internal/catalog"
	"github.com/peterkuimelis/tcgsim/internal/config"
	"github.com/peterkuimelis/tcgsim/internal/game"
	"github.com/peterkuimelis/tcgsim/internal/log"
	"github.com/peterkuimelis/tcgsim/internal/view"
)

// Config configures a new table.
type Config struct {
	Catalog *catalog.Catalog
	Deck1   game.Pile
	Deck2   game.Pile
	Seed    int64 // 0 seeds from the clock

	// NoSetup leaves the decks unshuffled and prizes undealt.
	NoSetup bool

	Clock       quartz.Clock     // defaults to the real clock
	Logger      *charmlog.Logger // diagnostics; defaults to discarding
	EventWriter io.Writer        // optional sink for formatted game events
}

// Result is what a press returns: the table after the input and the events
// it produced.
type Result struct {
	State  *view.StateView `json:"state"`
	Events []log.GameEvent `json:"events"`
}

// Table is a game in progress plus the catalog that names its cards.
type Table struct {
	mu      sync.Mutex
	id      ulid.ULID
	created time.Time
	seed    int64

	state  *game.State
	cat    *catalog.Catalog
	events *stampLogger
	logger *charmlog.Logger
}

// New opens a table on two resolved decks and deals prizes unless NoSetup is
// set.
func New(cfg Config) (*Table, error) {
	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.New()
	}

	now := clock.Now()
	seed := cfg.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}

	events := &stampLogger{clock: clock, out: cfg.EventWriter}
	state, err := game.NewState(game.Config{
		Deck1:  cfg.Deck1,
		Deck2:  cfg.Deck2,
		Seed:   seed,
		Logger: events,
	})
	if err != nil {
		return nil, err
	}

	t := &Table{
		id:      ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()),
		created: now,
		seed:    seed,
		state:   state,
		cat:     cat,
		events:  events,
	}
	t.logger = logger.WithPrefix("table").With("table", t.id.String())
	if !cfg.NoSetup {
		state.Setup()
	}
	t.logger.Info("Table opened", "seed", seed, "cards", cat.Len())
	return t, nil
}

// Open resolves the decks named by the game settings and opens a table on
// them. Fields of cfg other than the decks and catalog are used as given; a
// zero cfg.Seed takes the configured seed.
func Open(gs config.GameSettings, cfg Config) (*Table, error) {
	cat, piles, err := catalog.Open(gs.DecksFile, gs.CatalogFile, gs.Deck1, gs.Deck2)
	if err != nil {
		return nil, fmt.Errorf("load decks: %w", err)
	}
	cfg.Catalog = cat
	cfg.Deck1, cfg.Deck2 = piles[0], piles[1]
	if cfg.Seed == 0 {
		cfg.Seed = gs.Seed
	}
	return New(cfg)
}

func (t *Table) ID() string { return t.id.String() }

func (t *Table) Seed() int64 { return t.seed }

func (t *Table) Created() time.Time { return t.created }

func (t *Table) Catalog() *catalog.Catalog { return t.cat }

// Press applies one input. On error the zones and mode are unchanged, the
// one-frame alert is still cleared, and the result carries the current state.
func (t *Table) Press(in game.Input) (Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	seq := t.events.lastSeq()
	err := t.state.Update(in)
	res := Result{
		State:  view.Build(t.state, t.cat),
		Events: t.events.Since(seq),
	}
	if err != nil {
		t.logger.Warn("Input rejected", "input", in, "mode", t.state.Mode(), "error", err)
		return res, err
	}
	t.logger.Debug("Input applied", "input", in, "mode", t.state.Mode(), "events", len(res.Events))
	return res, nil
}

// PressNamed parses an input name (see game.ParseInput) and applies it.
func (t *Table) PressNamed(name string) (Result, error) {
	in, err := game.ParseInput(name)
	if err != nil {
		return Result{State: t.View()}, err
	}
	return t.Press(in)
}

// View returns the current state projection.
func (t *Table) View() *view.StateView {
	t.mu.Lock()
	defer t.mu.Unlock()
	return view.Build(t.state, t.cat)
}

// Events returns the events logged after sequence number seq.
func (t *Table) Events(seq int) []log.GameEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.events.Since(seq)
}

// Read runs fn with the table locked. fn must not keep the state.
func (t *Table) Read(fn func(s *game.State)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.state)
}

// stampLogger records events with the table clock's time and optionally
// echoes them as text.
type stampLogger struct {
	log.MemoryLogger
	clock quartz.Clock
	out   io.Writer
}

func (l *stampLogger) Log(event log.GameEvent) {
	event.Time = l.clock.Now()
	l.MemoryLogger.Log(event)
	if l.out != nil {
		fmt.Fprintln(l.out, log.FormatEvent(l.LastEvent()))
	}
}

// Since copies the events after seq so callers never share the log's
// backing array.
func (l *stampLogger) Since(seq int) []log.GameEvent {
	return append([]log.GameEvent{}, l.MemoryLogger.Since(seq)...)
}

func (l *stampLogger) lastSeq() int {
	return l.LastEvent().Seq
}
