// Package view projects a table into plain data for rendering and JSON.
package view

import (
	"cmp"

	"github.com/peterkuimelis/tcgsim/internal/game"
)

// Namer resolves card indices to display names.
type Namer interface {
	Name(card game.Card) string
}

// StateView is the table as the viewing player sees it.
type StateView struct {
	Viewing  string     `json:"viewing"`
	Mode     string     `json:"mode"`
	Alert    string     `json:"alert,omitempty"`
	You      PlayerView `json:"you"`
	Opponent PlayerView `json:"opponent"`

	// Selecting mode
	Highlight *SelectionView  `json:"highlight,omitempty"`
	Selected  []SelectionView `json:"selected,omitempty"`

	// Deck search mode
	DeckCursor   *int  `json:"deck_cursor,omitempty"`
	DeckSelected []int `json:"deck_selected,omitempty"`

	// Focus is the card under the cursor, when it is visible.
	Focus *CardView `json:"focus,omitempty"`
	// Search lists the pile being browsed: the deck in deck search, or the
	// discard while the highlight is on it.
	Search     []CardView `json:"search,omitempty"`
	SearchZone string     `json:"search_zone,omitempty"`
}

// PlayerView shows one side of the table. Hand holds names only for the
// viewing player; the opponent's hand is a count.
type PlayerView struct {
	Player    string                   `json:"player"`
	Slots     [game.SlotCount]SlotView `json:"slots"`
	HandCount int                      `json:"hand_count"`
	Hand      []CardView               `json:"hand,omitempty"`
	Prizes    []PrizeView              `json:"prizes"`
	DeckCount int                      `json:"deck_count"`
	Discard   []CardView               `json:"discard"`
	LostZone  []CardView               `json:"lost_zone"`
	Stadium   []CardView               `json:"stadium"`
}

type SlotView struct {
	Cards  []CardView `json:"cards"`
	Damage int        `json:"damage"`
}

type CardView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PrizeView carries the card only when the prize is face-up.
type PrizeView struct {
	FaceUp bool      `json:"face_up"`
	Card   *CardView `json:"card,omitempty"`
}

type SelectionView struct {
	Zone  string `json:"zone"`
	Slot  int    `json:"slot,omitempty"`
	Index int    `json:"index"`
	Empty bool   `json:"empty,omitempty"`
	Label string `json:"label"`
}

// Build projects the state as seen by the viewing player.
func Build(s *game.State, names Namer) *StateView {
	viewing := s.Viewing()
	sv := &StateView{
		Viewing:  viewing.String(),
		Mode:     s.Mode().String(),
		You:      buildPlayer(s.Layout(viewing), viewing, names, true),
		Opponent: buildPlayer(s.Layout(viewing.Other()), viewing.Other(), names, false),
	}
	if a := s.Alert(); a.Kind != game.AlertNone {
		sv.Alert = a.String()
	}

	layout := s.ViewedLayout()
	switch m := s.Mode().(type) {
	case game.SelectingMode:
		h := selectionView(m.Cursor.Highlight)
		sv.Highlight = &h
		for _, sel := range m.Cursor.SelectedSorted(game.CompareSelections) {
			sv.Selected = append(sv.Selected, selectionView(sel))
		}
		if c, ok := s.CardAt(m.Cursor.Highlight); ok {
			cv := cardView(c, names)
			sv.Focus = &cv
		}
		if m.Cursor.Highlight.Zone == game.ZoneDiscard {
			sv.Search = cardViews(layout.Discard, names)
			sv.SearchZone = game.ZoneDiscard.String()
		}
	case game.DeckSearchMode:
		i := m.Cursor.Highlight
		sv.DeckCursor = &i
		sv.DeckSelected = m.Cursor.SelectedSorted(cmp.Compare[int])
		if c, ok := s.DeckCardAt(i); ok {
			cv := cardView(c, names)
			sv.Focus = &cv
		}
		sv.Search = cardViews(layout.Deck, names)
		sv.SearchZone = "Deck"
	}
	return sv
}

func buildPlayer(l *game.Layout, p game.PlayerID, names Namer, owner bool) PlayerView {
	pv := PlayerView{
		Player:    p.String(),
		HandCount: len(l.Hand),
		DeckCount: len(l.Deck),
		Discard:   cardViews(l.Discard, names),
		LostZone:  cardViews(l.LostZone, names),
		Stadium:   cardViews(l.Stadium, names),
		Prizes:    make([]PrizeView, len(l.Prizes)),
	}
	if owner {
		pv.Hand = cardViews(l.Hand, names)
	}
	for i, slot := range l.Slots {
		pv.Slots[i] = SlotView{Cards: cardViews(slot.Cards, names), Damage: int(slot.Damage)}
	}
	for i, prize := range l.Prizes {
		pv.Prizes[i].FaceUp = prize.FaceUp
		if prize.FaceUp {
			cv := cardView(prize.Card, names)
			pv.Prizes[i].Card = &cv
		}
	}
	return pv
}

func cardView(c game.Card, names Namer) CardView {
	return CardView{ID: int(c), Name: names.Name(c)}
}

func cardViews(p game.Pile, names Namer) []CardView {
	out := make([]CardView, len(p))
	for i, c := range p {
		out[i] = cardView(c, names)
	}
	return out
}

func selectionView(sel game.Selection) SelectionView {
	sv := SelectionView{
		Zone:  sel.Zone.String(),
		Index: sel.Index,
		Empty: !sel.HasIndex,
		Label: sel.String(),
	}
	if sel.Zone == game.ZoneSlot {
		sv.Slot = sel.Slot + 1
	}
	return sv
}
