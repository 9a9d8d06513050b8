package game

import "fmt"

// Mode is the current interaction mode. Exactly one is active at a time; the
// concrete types below are the only implementations.
type Mode interface {
	isMode()
	String() string
}

// SelectingMode is the default browsing mode over the viewed layout.
type SelectingMode struct {
	Cursor Cursor[Selection]
}

// DeckMode is the deck menu: draw, shuffle, search.
type DeckMode struct{}

// DeckSearchMode browses the full deck pile by index.
type DeckSearchMode struct {
	Cursor Cursor[int]
}

// LookMode is reserved for a non-destructive peek. Nothing enters it yet and
// any input while in it fails with ErrNotImplemented.
type LookMode struct {
	Cursor Cursor[int]
}

// MoveMode resolves a destination for the move-set captured in Previous,
// which is a SelectingMode, DeckSearchMode or LookMode.
type MoveMode struct {
	Awaited  AwaitedInput
	Previous Mode
}

// SwapMode waits for two slot numbers. First is the 1-based slot pressed
// first, valid when HasFirst is set.
type SwapMode struct {
	First    int
	HasFirst bool
}

func (SelectingMode) isMode()  {}
func (DeckMode) isMode()       {}
func (DeckSearchMode) isMode() {}
func (LookMode) isMode()       {}
func (MoveMode) isMode()       {}
func (SwapMode) isMode()       {}

func (SelectingMode) String() string  { return "Selecting" }
func (DeckMode) String() string       { return "Deck" }
func (DeckSearchMode) String() string { return "Deck Search" }
func (LookMode) String() string       { return "Look" }
func (SwapMode) String() string       { return "Swap" }

func (m MoveMode) String() string {
	if m.Awaited.Kind == AwaitSlot {
		return fmt.Sprintf("Move → Slot %d", m.Awaited.Slot+1)
	}
	return "Move"
}

type AwaitKind int

const (
	AwaitAny AwaitKind = iota
	AwaitSlot
)

// AwaitedInput is what a MoveMode accepts next. With AwaitSlot, Slot is the
// 0-based destination and only Append or Prepend complete the move.
type AwaitedInput struct {
	Kind AwaitKind
	Slot int
}

// DefaultSelecting returns the initial mode: highlight on the active slot with
// no inner card, nothing selected.
func DefaultSelecting() SelectingMode {
	return SelectingMode{Cursor: NewCursor(EmptySlot(0))}
}

// DefaultDeckSearch returns a deck search at index 0 with nothing selected.
func DefaultDeckSearch() DeckSearchMode {
	return DeckSearchMode{Cursor: NewCursor(0)}
}
