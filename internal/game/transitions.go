package game

import (
	"fmt"
	"math"

	"github.com/peterkuimelis/tcgsim/internal/log"
)

// zoneEntry resolves a zone-jump input (Slot, Hand, Discard, Prizes,
// LostZone, Stadium) to the highlight it lands on. ok is false for a slot
// number outside 1..SlotCount or an empty non-slot zone.
func (s *State) zoneEntry(in Input) (Selection, bool) {
	l := s.ViewedLayout()
	var sel Selection
	switch in.Kind {
	case InputSlot:
		if in.Slot < 1 || in.Slot > SlotCount {
			return Selection{}, false
		}
		slot := in.Slot - 1
		if l.Slots[slot].Empty() {
			return EmptySlot(slot), true
		}
		return SlotAt(slot, 0), true
	case InputHand:
		sel = HandAt(0)
	case InputDiscard:
		sel = DiscardAt(0)
	case InputPrizes:
		sel = PrizeAt(0)
	case InputLostZone:
		sel = LostZoneAt(0)
	case InputStadium:
		sel = StadiumAt(0)
	default:
		return Selection{}, false
	}
	if l.zoneLen(sel) == 0 {
		return Selection{}, false
	}
	return sel, true
}

func isZoneJump(k InputKind) bool {
	switch k {
	case InputSlot, InputHand, InputDiscard, InputPrizes, InputLostZone, InputStadium:
		return true
	}
	return false
}

func (s *State) updateSelecting(m SelectingMode, in Input) Mode {
	c := m.Cursor
	switch in.Kind {
	case InputLeft:
		return SelectingMode{Cursor: c.WithHighlight(c.Highlight.Shifted(-1))}

	case InputRight:
		i, ok := c.Highlight.Innermost()
		if ok && i+1 < s.ViewedLayout().zoneLen(c.Highlight) {
			return SelectingMode{Cursor: c.WithHighlight(c.Highlight.Shifted(1))}
		}
		return m

	case InputSlot, InputHand, InputDiscard, InputPrizes, InputLostZone, InputStadium:
		if h, ok := s.zoneEntry(in); ok {
			return SelectingMode{Cursor: c.WithHighlight(h)}
		}
		return m

	case InputFlip:
		s.flipSelectedPrizes(c)
		return m

	case InputIncrement, InputDecrement:
		s.adjustSelectedDamage(c, in.Kind == InputIncrement)
		return m

	case InputSelect:
		return SelectingMode{Cursor: c.WithSelected()}

	case InputCancel:
		return SelectingMode{Cursor: c.Cleared()}

	case InputMove:
		return MoveMode{Awaited: AwaitedInput{Kind: AwaitAny}, Previous: m}

	case InputSwap:
		return SwapMode{}

	case InputDeck:
		return DeckMode{}

	case InputSwitchSides:
		s.viewing = s.viewing.Other()
		s.emit(log.NewSwitchSidesEvent(int(s.viewing)))
		return DefaultSelecting()

	case InputRoll:
		roll := s.rng.IntN(6) + 1
		s.alert = UIAlert{Kind: AlertRoll, Roll: roll}
		s.emit(log.NewRollEvent(int(s.viewing), roll))
		return m
	}
	return m
}

func (s *State) flipSelectedPrizes(c Cursor[Selection]) {
	l := s.ViewedLayout()
	for _, sel := range c.SelectedSorted(CompareSelections) {
		if sel.Zone != ZonePrize || sel.Index >= len(l.Prizes) {
			continue
		}
		p := &l.Prizes[sel.Index]
		p.FaceUp = !p.FaceUp
		s.emit(log.NewFlipEvent(int(s.viewing), sel.Index, p.FaceUp))
	}
}

// adjustSelectedDamage changes damage once per selected slot address that
// carries an inner index. Two selected cards in one slot adjust it twice.
func (s *State) adjustSelectedDamage(c Cursor[Selection], up bool) {
	l := s.ViewedLayout()
	for _, sel := range c.SelectedSorted(CompareSelections) {
		if sel.Zone != ZoneSlot || !sel.HasIndex {
			continue
		}
		slot := &l.Slots[sel.Slot]
		switch {
		case up && slot.Damage < math.MaxUint8:
			slot.Damage++
		case !up && slot.Damage > 0:
			slot.Damage--
		default:
			continue
		}
		s.emit(log.NewDamageEvent(int(s.viewing), sel.Slot, int(slot.Damage)))
	}
}

func (s *State) updateDeck(m DeckMode, in Input) (Mode, error) {
	switch in.Kind {
	case InputCancel:
		return DefaultSelecting(), nil

	case InputDeck:
		l := s.ViewedLayout()
		if n := len(l.Deck); n > 0 {
			top := l.Deck[n-1]
			l.Deck = l.Deck[:n-1]
			l.Hand = append(l.Hand, top)
			s.emit(log.NewDrawEvent(int(s.viewing), int(top)))
		}
		return m, nil

	case InputSelect:
		return DefaultDeckSearch(), nil

	case InputShuffle:
		s.shuffle(s.ViewedLayout().Deck)
		s.alert = UIAlert{Kind: AlertShuffled}
		s.emit(log.NewShuffleEvent(int(s.viewing)))
		return m, nil

	case InputObserve:
		return nil, fmt.Errorf("%w: observe from the deck menu", ErrNotImplemented)
	}

	if isZoneJump(in.Kind) {
		if h, ok := s.zoneEntry(in); ok {
			return SelectingMode{Cursor: NewCursor(h)}, nil
		}
	}
	return m, nil
}

// updateDeckSearch moves over the deck by index. Right stops at len(deck),
// one past the last card, which addresses no card.
func (s *State) updateDeckSearch(m DeckSearchMode, in Input) Mode {
	c := m.Cursor
	switch in.Kind {
	case InputCancel:
		return DeckMode{}
	case InputLeft:
		return DeckSearchMode{Cursor: c.WithHighlight(max(c.Highlight-1, 0))}
	case InputRight:
		if c.Highlight >= len(s.ViewedLayout().Deck) {
			return m
		}
		return DeckSearchMode{Cursor: c.WithHighlight(c.Highlight + 1)}
	case InputSelect:
		return DeckSearchMode{Cursor: c.WithSelected()}
	case InputMove:
		return MoveMode{Awaited: AwaitedInput{Kind: AwaitAny}, Previous: m}
	}
	return m
}

func (s *State) updateSwap(m SwapMode, in Input) Mode {
	switch in.Kind {
	case InputCancel:
		return DefaultSelecting()
	case InputSlot:
		if in.Slot < 1 || in.Slot > SlotCount {
			return m
		}
		if !m.HasFirst {
			return SwapMode{First: in.Slot, HasFirst: true}
		}
		a, b := m.First-1, in.Slot-1
		slots := &s.ViewedLayout().Slots
		slots[a], slots[b] = slots[b], slots[a]
		s.emit(log.NewSwapEvent(int(s.viewing), a, b))
		return DefaultSelecting()
	}
	return m
}
