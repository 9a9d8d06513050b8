package game

import (
	"testing"

	"github.com/peterkuimelis/tcgsim/internal/log"
	"github.com/peterkuimelis/tcgsim/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveCancelRestoresPreviousMode(t *testing.T) {
	s, _ := newTestState(t)
	drawN(t, s, 3)
	press(t, s, Press(InputHand), sel, right)
	before := s.Mode()
	layout := snapshot(s.ViewedLayout())

	press(t, s, Press(InputMove))
	assert.Equal(t, MoveMode{Awaited: AwaitedInput{Kind: AwaitAny}, Previous: before}, s.Mode())
	press(t, s, SlotInput(4), cancel)

	assert.Equal(t, before, s.Mode())
	assert.Equal(t, layout, snapshot(s.ViewedLayout()))
}

func TestMoveHandCardsToDiscard(t *testing.T) {
	s, logger := newTestState(t)
	drawN(t, s, 5)
	require.Equal(t, Pile{159, 158, 157, 156, 155}, s.ViewedLayout().Hand)

	press(t, s, Press(InputHand), sel, right, right, sel, right, right)
	press(t, s, Press(InputMove), Press(InputDiscard))

	l := s.ViewedLayout()
	assert.Equal(t, Pile{159, 157, 155}, l.Discard)
	assert.Equal(t, Pile{158, 156}, l.Hand)
	assert.Equal(t, DefaultSelecting(), s.Mode())

	moves := logger.EventsOfType(log.EventMove)
	require.Len(t, moves, 1)
	assert.Equal(t, []int{159, 157, 155}, moves[0].Cards)
}

func TestMoveHighlightOnlyWhenNothingSelected(t *testing.T) {
	s, _ := newTestState(t)
	drawN(t, s, 2)
	press(t, s, Press(InputHand), right, Press(InputMove), Press(InputStadium))

	l := s.ViewedLayout()
	assert.Equal(t, Pile{158}, l.Stadium)
	assert.Equal(t, Pile{159}, l.Hand)
}

func TestMoveEmptySlotHighlightMovesNothing(t *testing.T) {
	s, logger := newTestState(t)
	press(t, s, Press(InputMove), Press(InputDiscard))
	assert.Empty(t, s.ViewedLayout().Discard)
	assert.Equal(t, DefaultSelecting(), s.Mode())
	moves := logger.EventsOfType(log.EventMove)
	require.Len(t, moves, 1)
	assert.Empty(t, moves[0].Cards)
}

func TestMoveWithinOneSlot(t *testing.T) {
	s, _ := newTestState(t)
	drawN(t, s, 3)
	for i := 0; i < 3; i++ {
		placeInSlot(t, s, 1)
	}
	require.Equal(t, Pile{159, 158, 157}, s.ViewedLayout().Slots[0].Cards)

	press(t, s, SlotInput(1), sel, right, sel, right, Press(InputMove), Press(InputDiscard))
	l := s.ViewedLayout()
	assert.Equal(t, Pile{159, 158, 157}, l.Discard)
	assert.True(t, l.Slots[0].Empty())
}

func TestMoveAcrossZonesKeepsZoneOrder(t *testing.T) {
	s, _ := newTestState(t)
	drawN(t, s, 2)
	placeInSlot(t, s, 1) // 159 into slot 1, hand is [158]

	press(t, s, SlotInput(1), sel, Press(InputHand), Press(InputMove), Press(InputLostZone))
	l := s.ViewedLayout()
	assert.Equal(t, Pile{159, 158}, l.LostZone)
	assert.Empty(t, l.Hand)
	assert.True(t, l.Slots[0].Empty())
}

func TestMoveIntoSlotAppendAndPrepend(t *testing.T) {
	tests := []struct {
		name string
		key  InputKind
		want Pile
	}{
		{"append", InputAppend, Pile{159, 158, 157}},
		{"prepend", InputPrepend, Pile{158, 157, 159}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestState(t)
			drawN(t, s, 3)
			placeInSlot(t, s, 3)

			press(t, s, Press(InputHand), sel, right, Press(InputMove), SlotInput(3))
			assert.Equal(t, "Move → Slot 3", s.Mode().String())
			press(t, s, Press(tt.key))

			assert.Equal(t, tt.want, s.ViewedLayout().Slots[2].Cards)
			assert.Empty(t, s.ViewedLayout().Hand)
		})
	}
}

func TestMoveAwaitingSlot(t *testing.T) {
	s, _ := newTestState(t)
	drawN(t, s, 1)
	press(t, s, Press(InputHand), Press(InputMove), SlotInput(2), SlotInput(4))
	assert.Equal(t, AwaitedInput{Kind: AwaitSlot, Slot: 3}, s.Mode().(MoveMode).Awaited)

	// only append or prepend complete a slot move
	press(t, s, Press(InputHand), Press(InputTop), Press(InputDiscard), SlotInput(0), SlotInput(7))
	require.IsType(t, MoveMode{}, s.Mode())
	assert.Equal(t, 3, s.Mode().(MoveMode).Awaited.Slot)
	assert.Equal(t, Pile{159}, s.ViewedLayout().Hand)

	press(t, s, Press(InputAppend))
	assert.Equal(t, Pile{159}, s.ViewedLayout().Slots[3].Cards)
}

func TestMoveToDeckTopAndBottom(t *testing.T) {
	s, _ := newTestState(t)
	drawN(t, s, 4)
	// hand [159 158 157 156], deck 100..155

	press(t, s, Press(InputHand), sel, right, Press(InputMove), Press(InputBottom))
	deck := s.ViewedLayout().Deck
	require.Len(t, deck, 58)
	assert.Equal(t, Pile{159, 158, 100}, deck[:3])

	press(t, s, Press(InputHand), sel, right, Press(InputMove), Press(InputTop))
	deck = s.ViewedLayout().Deck
	require.Len(t, deck, DeckSize)
	assert.Equal(t, Pile{155, 157, 156}, deck[57:])
}

func TestMovePrizeToHand(t *testing.T) {
	s, _ := newTestState(t)
	s.Setup()
	prize := s.ViewedLayout().Prizes[2].Card

	press(t, s, Press(InputPrizes), right, right, Press(InputMove), Press(InputHand))
	l := s.ViewedLayout()
	assert.Len(t, l.Prizes, PrizeCount-1)
	assert.Equal(t, Pile{prize}, l.Hand)
}

func TestMoveFromDeckSearch(t *testing.T) {
	s, _ := newTestState(t)
	press(t, s, Press(InputDeck), sel, sel, right, right, Press(InputMove), Press(InputHand))

	l := s.ViewedLayout()
	assert.Equal(t, Pile{100, 102}, l.Hand)
	assert.Len(t, l.Deck, 58)
	assert.Equal(t, Pile{101, 103}, l.Deck[:2])
	assert.Equal(t, DefaultDeckSearch(), s.Mode())
}

func TestMoveFromDeckSearchSentinel(t *testing.T) {
	s, _ := newTestState(t)
	s.ViewedLayout().Deck = Pile{1, 2, 3}
	press(t, s, Press(InputDeck), sel, right, right, right, Press(InputMove), Press(InputDiscard))

	l := s.ViewedLayout()
	assert.Empty(t, l.Discard)
	assert.Equal(t, Pile{1, 2, 3}, l.Deck)
	assert.Equal(t, DefaultDeckSearch(), s.Mode())
}

func TestMoveSelectionOnOtherSideIsNotCarried(t *testing.T) {
	s, _ := newTestState(t)
	drawN(t, s, 1)
	press(t, s, Press(InputHand), sel, Press(InputSwitchSides), Press(InputMove), Press(InputDiscard))

	assert.Equal(t, Pile{159}, s.Layout(Player1).Hand)
	assert.Empty(t, s.Layout(Player2).Discard)
}

// TestRandomWalkConservesCards feeds a long seeded input stream and checks
// that no card is ever created or destroyed.
func TestRandomWalkConservesCards(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		s, _ := newTestState(t)
		s.Setup()
		rng := randutil.New(seed)

		for step := 0; step < 3000; step++ {
			in := randomInput(rng.IntN(int(InputRoll)+1), rng.IntN(8))
			err := s.Update(in)
			if err != nil {
				require.ErrorIs(t, err, ErrNotImplemented, "seed %d step %d", seed, step)
			}

			require.Equal(t, DeckSize, s.Layout(Player1).CardCount(), "seed %d step %d", seed, step)
			require.Equal(t, DeckSize, s.Layout(Player2).CardCount(), "seed %d step %d", seed, step)

			switch m := s.Mode().(type) {
			case SelectingMode:
				s.CardAt(m.Cursor.Highlight)
				for _, addr := range m.Cursor.SelectedSorted(CompareSelections) {
					s.CardAt(addr)
				}
			case DeckSearchMode:
				s.DeckCardAt(m.Cursor.Highlight)
			}
		}
	}
}

func TestPrizesStayWithoutMoves(t *testing.T) {
	s, _ := newTestState(t)
	s.Setup()
	rng := randutil.New(11)

	for step := 0; step < 2000; step++ {
		k := rng.IntN(int(InputRoll) + 1)
		if InputKind(k) == InputMove {
			continue
		}
		_ = s.Update(randomInput(k, rng.IntN(8)))
		require.Len(t, s.Layout(Player1).Prizes, PrizeCount)
		require.Len(t, s.Layout(Player2).Prizes, PrizeCount)
	}
}

func randomInput(kind, slot int) Input {
	if InputKind(kind) == InputSlot {
		return SlotInput(slot)
	}
	return Press(InputKind(kind))
}
