package game

import "fmt"

const (
	DeckSize   = 60
	SlotCount  = 6
	PrizeCount = 6
)

// --- Cards and piles ---

// Card is an index into an external card catalog. The engine never looks
// inside it.
type Card int

// Pile is an ordered run of cards. For the deck and discard the last element
// is the top.
type Pile []Card

// Slot is one board position: the creature plus everything attached beneath
// it. Slot 0 is the active position, 1-5 are the bench.
type Slot struct {
	Cards  Pile
	Damage uint8
}

// Empty reports whether nothing occupies the slot.
func (s *Slot) Empty() bool {
	return len(s.Cards) == 0
}

// PrizeCard is a card set aside at setup, individually flippable.
type PrizeCard struct {
	Card   Card
	FaceUp bool
}

// Layout holds every zone belonging to one player. Each player has their own
// stadium pile; the zone is not shared across the table.
type Layout struct {
	Slots    [SlotCount]Slot
	Hand     Pile
	Discard  Pile
	Deck     Pile // top of deck is last element (pop from end)
	LostZone Pile
	Stadium  Pile
	Prizes   []PrizeCard
}

// CardCount returns the number of cards across every zone of the layout.
func (l *Layout) CardCount() int {
	n := len(l.Hand) + len(l.Discard) + len(l.Deck) + len(l.LostZone) + len(l.Stadium) + len(l.Prizes)
	for i := range l.Slots {
		n += len(l.Slots[i].Cards)
	}
	return n
}

// zoneLen returns the length of the zone a selection points into.
func (l *Layout) zoneLen(sel Selection) int {
	switch sel.Zone {
	case ZoneSlot:
		if sel.Slot < 0 || sel.Slot >= SlotCount {
			return 0
		}
		return len(l.Slots[sel.Slot].Cards)
	case ZoneHand:
		return len(l.Hand)
	case ZoneDiscard:
		return len(l.Discard)
	case ZoneLostZone:
		return len(l.LostZone)
	case ZonePrize:
		return len(l.Prizes)
	case ZoneStadium:
		return len(l.Stadium)
	default:
		return 0
	}
}

// pile returns the plain pile behind a non-slot, non-prize zone.
func (l *Layout) pile(z Zone) *Pile {
	switch z {
	case ZoneHand:
		return &l.Hand
	case ZoneDiscard:
		return &l.Discard
	case ZoneLostZone:
		return &l.LostZone
	case ZoneStadium:
		return &l.Stadium
	default:
		return nil
	}
}

// --- Players ---

type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
)

// Other returns the player across the table.
func (p PlayerID) Other() PlayerID {
	return 1 - p
}

func (p PlayerID) String() string {
	return fmt.Sprintf("P%d", int(p)+1)
}

// --- UI alerts ---

type AlertKind int

const (
	AlertNone AlertKind = iota
	AlertShuffled
	AlertRoll
)

// UIAlert is the one-frame notification of the latest random event. It is
// cleared at the start of every update.
type UIAlert struct {
	Kind AlertKind
	Roll int // 1-6, set only for AlertRoll
}

func (a UIAlert) String() string {
	switch a.Kind {
	case AlertShuffled:
		return "Shuffled!"
	case AlertRoll:
		return fmt.Sprintf("Rolled %d", a.Roll)
	default:
		return ""
	}
}
