package game

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/peterkuimelis/tcgsim/internal/log"
)

type DestKind int

const (
	DestDeckTop DestKind = iota
	DestDeckBottom
	DestHand
	DestDiscard
	DestLostZone
	DestStadium
	DestSlot
)

// Destination is a resolved move target. Prepend places the moved cards at
// the front of the pile instead of the end.
type Destination struct {
	Kind    DestKind
	Slot    int // 0-based, DestSlot only
	Prepend bool
}

func (d Destination) String() string {
	switch d.Kind {
	case DestDeckTop:
		return "top of deck"
	case DestDeckBottom:
		return "bottom of deck"
	case DestHand:
		return "hand"
	case DestDiscard:
		return "discard"
	case DestLostZone:
		return "lost zone"
	case DestStadium:
		return "stadium"
	case DestSlot:
		if d.Prepend {
			return fmt.Sprintf("front of slot %d", d.Slot+1)
		}
		return fmt.Sprintf("slot %d", d.Slot+1)
	default:
		return "unknown"
	}
}

// resolveDestination maps an input to a destination given what the move is
// waiting for. ok is false for inputs the awaited state does not accept.
func resolveDestination(aw AwaitedInput, in Input) (Destination, bool) {
	if aw.Kind == AwaitSlot {
		switch in.Kind {
		case InputAppend:
			return Destination{Kind: DestSlot, Slot: aw.Slot}, true
		case InputPrepend:
			return Destination{Kind: DestSlot, Slot: aw.Slot, Prepend: true}, true
		}
		return Destination{}, false
	}
	switch in.Kind {
	case InputTop:
		return Destination{Kind: DestDeckTop}, true
	case InputBottom:
		return Destination{Kind: DestDeckBottom, Prepend: true}, true
	case InputHand:
		return Destination{Kind: DestHand}, true
	case InputDiscard:
		return Destination{Kind: DestDiscard}, true
	case InputLostZone:
		return Destination{Kind: DestLostZone}, true
	case InputStadium:
		return Destination{Kind: DestStadium}, true
	}
	return Destination{}, false
}

// updateMove runs the two-phase move: narrow the destination, then transfer
// the whole move-set in one step. Cancel restores the captured mode as-is.
func (s *State) updateMove(m MoveMode, in Input) (Mode, error) {
	if in.Kind == InputCancel {
		return m.Previous, nil
	}
	if in.Kind == InputSlot {
		if in.Slot < 1 || in.Slot > SlotCount {
			return m, nil
		}
		return MoveMode{Awaited: AwaitedInput{Kind: AwaitSlot, Slot: in.Slot - 1}, Previous: m.Previous}, nil
	}

	dest, ok := resolveDestination(m.Awaited, in)
	if !ok {
		return m, nil
	}

	var (
		staged []Card
		next   Mode
	)
	switch prev := m.Previous.(type) {
	case SelectingMode:
		staged = s.takeSelections(prev.Cursor.MoveSet(CompareSelections))
		next = DefaultSelecting()
	case DeckSearchMode:
		staged = s.takeDeckIndices(prev.Cursor.MoveSet(cmp.Compare[int]))
		next = DefaultDeckSearch()
	case LookMode:
		return nil, fmt.Errorf("%w: move out of look mode", ErrNotImplemented)
	default:
		panic(fmt.Sprintf("game: move captured unexpected mode %T", m.Previous))
	}

	s.deliver(dest, staged)
	ids := make([]int, len(staged))
	for i, c := range staged {
		ids[i] = int(c)
	}
	s.emit(log.NewMoveEvent(int(s.viewing), ids, dest.String()))
	return next, nil
}

// takeSelections removes the addressed cards from the viewed layout. sels
// must be sorted descending so each removal leaves the indices still to be
// removed intact. The result is in ascending original order. Addresses with
// no inner index, or past the end of their zone, contribute nothing.
func (s *State) takeSelections(sels []Selection) []Card {
	l := s.ViewedLayout()
	removed := make([]Card, 0, len(sels))
	for _, sel := range sels {
		if !sel.HasIndex || sel.Index >= l.zoneLen(sel) {
			continue
		}
		i := sel.Index
		switch sel.Zone {
		case ZoneSlot:
			cards := &l.Slots[sel.Slot].Cards
			removed = append(removed, (*cards)[i])
			*cards = slices.Delete(*cards, i, i+1)
		case ZonePrize:
			removed = append(removed, l.Prizes[i].Card)
			l.Prizes = slices.Delete(l.Prizes, i, i+1)
		default:
			p := l.pile(sel.Zone)
			removed = append(removed, (*p)[i])
			*p = slices.Delete(*p, i, i+1)
		}
	}
	slices.Reverse(removed)
	return removed
}

// takeDeckIndices is takeSelections for deck search indices.
func (s *State) takeDeckIndices(indices []int) []Card {
	l := s.ViewedLayout()
	removed := make([]Card, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(l.Deck) {
			continue
		}
		removed = append(removed, l.Deck[i])
		l.Deck = slices.Delete(l.Deck, i, i+1)
	}
	slices.Reverse(removed)
	return removed
}

// deliver puts staged cards into the destination pile, keeping their order:
// appended after the current end, or inserted as a block at the front.
func (s *State) deliver(d Destination, staged []Card) {
	l := s.ViewedLayout()
	var dst *Pile
	switch d.Kind {
	case DestDeckTop, DestDeckBottom:
		dst = &l.Deck
	case DestHand:
		dst = &l.Hand
	case DestDiscard:
		dst = &l.Discard
	case DestLostZone:
		dst = &l.LostZone
	case DestStadium:
		dst = &l.Stadium
	case DestSlot:
		dst = &l.Slots[d.Slot].Cards
	}
	if d.Prepend {
		*dst = slices.Insert(*dst, 0, staged...)
		return
	}
	*dst = append(*dst, staged...)
}
