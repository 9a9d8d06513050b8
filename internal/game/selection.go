package game

import (
	"cmp"
	"fmt"
)

// Zone tags the part of a layout a Selection addresses. The declaration
// order is also the primary sort key for selections.
type Zone int

const (
	ZoneSlot Zone = iota
	ZoneHand
	ZoneDiscard
	ZoneLostZone
	ZonePrize
	ZoneStadium
)

func (z Zone) String() string {
	switch z {
	case ZoneSlot:
		return "Slot"
	case ZoneHand:
		return "Hand"
	case ZoneDiscard:
		return "Discard"
	case ZoneLostZone:
		return "Lost Zone"
	case ZonePrize:
		return "Prizes"
	case ZoneStadium:
		return "Stadium"
	default:
		return "Unknown"
	}
}

// Selection addresses one card position in the viewed player's layout. For
// slots, Slot is the board position and Index the card within its stack;
// HasIndex is false only when the slot was empty when addressed. Every other
// zone uses Index alone.
type Selection struct {
	Zone     Zone
	Slot     int
	Index    int
	HasIndex bool
}

func SlotAt(slot, index int) Selection {
	return Selection{Zone: ZoneSlot, Slot: slot, Index: index, HasIndex: true}
}

func EmptySlot(slot int) Selection {
	return Selection{Zone: ZoneSlot, Slot: slot}
}

func HandAt(index int) Selection     { return at(ZoneHand, index) }
func DiscardAt(index int) Selection  { return at(ZoneDiscard, index) }
func LostZoneAt(index int) Selection { return at(ZoneLostZone, index) }
func PrizeAt(index int) Selection    { return at(ZonePrize, index) }
func StadiumAt(index int) Selection  { return at(ZoneStadium, index) }

func at(z Zone, index int) Selection {
	return Selection{Zone: z, Index: index, HasIndex: true}
}

// Innermost returns the index the cursor moves along: the card within a slot
// stack, or the plain index elsewhere. ok is false for an empty slot.
func (s Selection) Innermost() (index int, ok bool) {
	return s.Index, s.HasIndex
}

// Shifted returns the selection with its innermost index moved by delta,
// clamped at zero. The upper bound is the caller's to check. A selection
// without an index is returned unchanged.
func (s Selection) Shifted(delta int) Selection {
	if !s.HasIndex {
		return s
	}
	s.Index = max(s.Index+delta, 0)
	return s
}

func (s Selection) String() string {
	if s.Zone == ZoneSlot {
		if !s.HasIndex {
			return fmt.Sprintf("Slot %d (empty)", s.Slot+1)
		}
		return fmt.Sprintf("Slot %d #%d", s.Slot+1, s.Index)
	}
	return fmt.Sprintf("%s #%d", s.Zone, s.Index)
}

// CompareSelections orders selections by zone, then slot, then index, with an
// index-less slot address sorting before any indexed one in the same slot.
// Within one zone, a larger index always compares greater, so a descending
// sort removes the highest index of each zone first.
func CompareSelections(a, b Selection) int {
	if c := cmp.Compare(a.Zone, b.Zone); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Slot, b.Slot); c != 0 {
		return c
	}
	if a.HasIndex != b.HasIndex {
		if a.HasIndex {
			return 1
		}
		return -1
	}
	return cmp.Compare(a.Index, b.Index)
}
