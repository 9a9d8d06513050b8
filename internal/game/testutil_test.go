package game

import (
	"slices"
	"testing"

	"github.com/peterkuimelis/tcgsim/internal/log"
	"github.com/peterkuimelis/tcgsim/internal/randutil"
	"github.com/stretchr/testify/require"
)

// numberedDeck returns DeckSize cards numbered from base upward, so the top
// of the deck is base+59.
func numberedDeck(base int) Pile {
	deck := make(Pile, DeckSize)
	for i := range deck {
		deck[i] = Card(base + i)
	}
	return deck
}

// newTestState opens an unshuffled table: P1 holds cards 100-159, P2 200-259.
func newTestState(t *testing.T) (*State, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	s, err := NewState(Config{
		Deck1:  numberedDeck(100),
		Deck2:  numberedDeck(200),
		Rand:   randutil.New(7),
		Logger: logger,
	})
	require.NoError(t, err)
	return s, logger
}

// press feeds inputs in order and fails the test on any error.
func press(t *testing.T, s *State, inputs ...Input) {
	t.Helper()
	for _, in := range inputs {
		require.NoError(t, s.Update(in), "input %s in mode %s", in, s.Mode())
	}
}

// snapshot deep-copies a layout for before/after comparisons.
func snapshot(l *Layout) Layout {
	out := Layout{
		Hand:     slices.Clone(l.Hand),
		Discard:  slices.Clone(l.Discard),
		Deck:     slices.Clone(l.Deck),
		LostZone: slices.Clone(l.LostZone),
		Stadium:  slices.Clone(l.Stadium),
		Prizes:   slices.Clone(l.Prizes),
	}
	for i, slot := range l.Slots {
		out.Slots[i] = Slot{Cards: slices.Clone(slot.Cards), Damage: slot.Damage}
	}
	return out
}

// drawN draws n cards from the deck menu and returns to Selecting.
func drawN(t *testing.T, s *State, n int) {
	t.Helper()
	press(t, s, Press(InputDeck))
	for i := 0; i < n; i++ {
		press(t, s, Press(InputDeck))
	}
	press(t, s, Press(InputCancel))
}

// placeInSlot moves the hand card at index 0 into slot n (1-based).
func placeInSlot(t *testing.T, s *State, n int) {
	t.Helper()
	press(t, s, Press(InputHand), Press(InputMove), SlotInput(n), Press(InputAppend))
}

var (
	left   = Press(InputLeft)
	right  = Press(InputRight)
	sel    = Press(InputSelect)
	cancel = Press(InputCancel)
)
