package game

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/peterkuimelis/tcgsim/internal/log"
	"github.com/peterkuimelis/tcgsim/internal/randutil"
)

var (
	// ErrDeckSize is returned by NewState when a deck is not exactly DeckSize cards.
	ErrDeckSize = errors.New("deck must contain exactly 60 cards")

	// ErrNotImplemented marks interactions that exist in the input vocabulary
	// but have no defined behavior: Observe from the deck menu and anything
	// done in Look mode.
	ErrNotImplemented = errors.New("interaction not implemented")
)

// Config holds everything needed to open a table.
type Config struct {
	Deck1  Pile // Player 1's deck, DeckSize cards
	Deck2  Pile // Player 2's deck, DeckSize cards
	Rand   *rand.Rand
	Seed   int64 // used when Rand is nil (0 for a clock seed)
	Logger log.EventLogger
}

// State is the complete hot-seat table: both layouts, whose side is being
// viewed, the interaction mode and the one-frame alert. Update is the only
// way zones change after Setup.
type State struct {
	layouts [2]Layout
	viewing PlayerID
	mode    Mode
	alert   UIAlert
	dealt   bool

	rng     *rand.Rand
	logger  log.EventLogger
	pending []log.GameEvent
}

// NewState builds a table from two decks. Both must hold exactly DeckSize
// cards; otherwise no state is created.
func NewState(cfg Config) (*State, error) {
	for i, deck := range []Pile{cfg.Deck1, cfg.Deck2} {
		if len(deck) != DeckSize {
			return nil, fmt.Errorf("%w: %s has %d", ErrDeckSize, PlayerID(i), len(deck))
		}
	}

	rng := cfg.Rand
	if rng == nil {
		if cfg.Seed != 0 {
			rng = randutil.New(cfg.Seed)
		} else {
			rng = randutil.NewFromClock()
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	s := &State{
		viewing: Player1,
		mode:    DefaultSelecting(),
		rng:     rng,
		logger:  logger,
	}
	s.layouts[Player1].Deck = slices.Clone(cfg.Deck1)
	s.layouts[Player2].Deck = slices.Clone(cfg.Deck2)
	return s, nil
}

// Setup shuffles each deck and deals PrizeCount cards face-down into prizes.
// Only the first call deals; later calls do nothing.
func (s *State) Setup() {
	if s.dealt {
		return
	}
	s.dealt = true
	for p := Player1; p <= Player2; p++ {
		l := &s.layouts[p]
		s.shuffle(l.Deck)
		for i := 0; i < PrizeCount && len(l.Deck) > 0; i++ {
			top := l.Deck[len(l.Deck)-1]
			l.Deck = l.Deck[:len(l.Deck)-1]
			l.Prizes = append(l.Prizes, PrizeCard{Card: top})
		}
		s.emit(log.NewSetupEvent(int(p), len(l.Prizes), len(l.Deck)))
	}
	s.flush()
}

// Update applies one input. It clears the alert, then dispatches on the
// current mode. Inputs with no meaning in the current mode leave everything
// unchanged and return nil. ErrNotImplemented is returned, with zones and
// mode untouched, for the interactions that have no defined behavior.
func (s *State) Update(in Input) error {
	s.alert = UIAlert{}
	prev := s.mode

	var (
		next Mode
		err  error
	)
	switch m := s.mode.(type) {
	case SelectingMode:
		next = s.updateSelecting(m, in)
	case DeckMode:
		next, err = s.updateDeck(m, in)
	case DeckSearchMode:
		next = s.updateDeckSearch(m, in)
	case LookMode:
		err = fmt.Errorf("%w: %s in look mode", ErrNotImplemented, in)
	case MoveMode:
		next, err = s.updateMove(m, in)
	case SwapMode:
		next = s.updateSwap(m, in)
	default:
		panic(fmt.Sprintf("game: unknown mode %T", s.mode))
	}
	if err != nil {
		s.pending = nil
		return err
	}

	s.mode = next
	if prev.String() != next.String() {
		s.emit(log.NewModeChangeEvent(int(s.viewing), prev.String(), next.String()))
	}
	s.flush()
	return nil
}

// --- Read accessors ---

// Layout returns a player's layout. Callers must treat it as read-only.
func (s *State) Layout(p PlayerID) *Layout {
	return &s.layouts[p]
}

// ViewedLayout returns the layout of the player currently being viewed.
func (s *State) ViewedLayout() *Layout {
	return &s.layouts[s.viewing]
}

// Viewing returns the player whose side is being viewed.
func (s *State) Viewing() PlayerID {
	return s.viewing
}

// Mode returns the active interaction mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Alert returns the notification raised by the most recent Update, if any.
func (s *State) Alert() UIAlert {
	return s.alert
}

// Logger returns the event logger the table reports to.
func (s *State) Logger() log.EventLogger {
	return s.logger
}

// CardAt returns the card a selection addresses in the viewed layout. It
// reports false for an empty-slot address, a face-down prize, or an index
// past the end of its zone.
func (s *State) CardAt(sel Selection) (Card, bool) {
	l := s.ViewedLayout()
	if !sel.HasIndex || sel.Index < 0 || sel.Index >= l.zoneLen(sel) {
		return 0, false
	}
	switch sel.Zone {
	case ZoneSlot:
		return l.Slots[sel.Slot].Cards[sel.Index], true
	case ZonePrize:
		prize := l.Prizes[sel.Index]
		if !prize.FaceUp {
			return 0, false
		}
		return prize.Card, true
	default:
		return (*l.pile(sel.Zone))[sel.Index], true
	}
}

// DeckCardAt returns the card at index in the viewed deck (0 is the bottom).
func (s *State) DeckCardAt(index int) (Card, bool) {
	deck := s.ViewedLayout().Deck
	if index < 0 || index >= len(deck) {
		return 0, false
	}
	return deck[index], true
}

// --- internals ---

func (s *State) shuffle(p Pile) {
	s.rng.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
}

// emit queues an event; flush hands queued events to the logger once the
// update has fully applied.
func (s *State) emit(ev log.GameEvent) {
	s.pending = append(s.pending, ev)
}

func (s *State) flush() {
	for _, ev := range s.pending {
		ev.Mode = s.mode.String()
		s.logger.Log(ev)
	}
	s.pending = nil
}
