package game

import (
	"maps"
	"slices"
)

// Cursor pairs the current highlight with the set of addresses selected so
// far. Cursors are values: every method returns a fresh copy, so a cursor
// captured in a mode snapshot never changes underneath it.
type Cursor[T comparable] struct {
	Highlight T
	Selected  map[T]struct{}
}

// NewCursor returns a cursor on highlight with nothing selected.
func NewCursor[T comparable](highlight T) Cursor[T] {
	return Cursor[T]{Highlight: highlight}
}

// WithHighlight moves the highlight, keeping the selection.
func (c Cursor[T]) WithHighlight(h T) Cursor[T] {
	c.Selected = maps.Clone(c.Selected)
	c.Highlight = h
	return c
}

// Cleared drops the selection, keeping the highlight.
func (c Cursor[T]) Cleared() Cursor[T] {
	c.Selected = nil
	return c
}

// WithSelected adds the highlight to the selection. Re-adding is a no-op.
func (c Cursor[T]) WithSelected() Cursor[T] {
	sel := make(map[T]struct{}, len(c.Selected)+1)
	maps.Copy(sel, c.Selected)
	sel[c.Highlight] = struct{}{}
	c.Selected = sel
	return c
}

// IsSelected reports whether addr is in the selection.
func (c Cursor[T]) IsSelected(addr T) bool {
	_, ok := c.Selected[addr]
	return ok
}

// Len returns the number of selected addresses.
func (c Cursor[T]) Len() int {
	return len(c.Selected)
}

// MoveSet returns the selection plus the highlight, sorted descending by
// compare and free of duplicates.
func (c Cursor[T]) MoveSet(compare func(a, b T) int) []T {
	set := make(map[T]struct{}, len(c.Selected)+1)
	maps.Copy(set, c.Selected)
	set[c.Highlight] = struct{}{}
	out := slices.Collect(maps.Keys(set))
	slices.SortFunc(out, func(a, b T) int { return compare(b, a) })
	return out
}

// SelectedSorted returns the selected addresses in ascending order.
func (c Cursor[T]) SelectedSorted(compare func(a, b T) int) []T {
	out := slices.Collect(maps.Keys(c.Selected))
	slices.SortFunc(out, compare)
	return out
}
