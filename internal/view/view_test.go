package view

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/peterkuimelis/tcgsim/internal/game"
	"github.com/peterkuimelis/tcgsim/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type numberNamer struct{}

func (numberNamer) Name(c game.Card) string { return fmt.Sprintf("c%d", int(c)) }

func newState(t *testing.T) *game.State {
	t.Helper()
	deck := func(base int) game.Pile {
		p := make(game.Pile, game.DeckSize)
		for i := range p {
			p[i] = game.Card(base + i)
		}
		return p
	}
	s, err := game.NewState(game.Config{Deck1: deck(100), Deck2: deck(200), Rand: randutil.New(5)})
	require.NoError(t, err)
	return s
}

func press(t *testing.T, s *game.State, inputs ...game.Input) {
	t.Helper()
	for _, in := range inputs {
		require.NoError(t, s.Update(in))
	}
}

func TestBuildInitial(t *testing.T) {
	s := newState(t)
	s.Setup()
	sv := Build(s, numberNamer{})

	assert.Equal(t, "P1", sv.Viewing)
	assert.Equal(t, "Selecting", sv.Mode)
	assert.Empty(t, sv.Alert)
	assert.Equal(t, "P1", sv.You.Player)
	assert.Equal(t, "P2", sv.Opponent.Player)
	assert.Equal(t, 54, sv.You.DeckCount)
	require.Len(t, sv.You.Prizes, 6)
	for _, p := range sv.You.Prizes {
		assert.False(t, p.FaceUp)
		assert.Nil(t, p.Card)
	}

	require.NotNil(t, sv.Highlight)
	assert.Equal(t, SelectionView{Zone: "Slot", Slot: 1, Empty: true, Label: "Slot 1 (empty)"}, *sv.Highlight)
	assert.Nil(t, sv.Focus)
	assert.Nil(t, sv.DeckCursor)
}

func TestBuildHidesOpponentHand(t *testing.T) {
	s := newState(t)
	press(t, s, game.Press(game.InputDeck), game.Press(game.InputDeck), game.Press(game.InputCancel))
	press(t, s, game.Press(game.InputSwitchSides))

	sv := Build(s, numberNamer{})
	assert.Equal(t, "P2", sv.Viewing)
	assert.Equal(t, 1, sv.Opponent.HandCount)
	assert.Nil(t, sv.Opponent.Hand)
	assert.Empty(t, sv.You.Hand)
}

func TestBuildSelectionAndFocus(t *testing.T) {
	s := newState(t)
	press(t, s, game.Press(game.InputDeck), game.Press(game.InputDeck), game.Press(game.InputDeck), game.Press(game.InputCancel))
	press(t, s, game.Press(game.InputHand), game.Press(game.InputSelect), game.Press(game.InputRight))

	sv := Build(s, numberNamer{})
	assert.Equal(t, []CardView{{ID: 159, Name: "c159"}, {ID: 158, Name: "c158"}}, sv.You.Hand)
	require.NotNil(t, sv.Focus)
	assert.Equal(t, "c158", sv.Focus.Name)
	require.Len(t, sv.Selected, 1)
	assert.Equal(t, "Hand", sv.Selected[0].Zone)
	assert.Equal(t, 0, sv.Selected[0].Index)
}

func TestBuildDeckSearch(t *testing.T) {
	s := newState(t)
	press(t, s, game.Press(game.InputDeck), game.Press(game.InputSelect), game.Press(game.InputSelect), game.Press(game.InputRight))

	sv := Build(s, numberNamer{})
	assert.Equal(t, "Deck Search", sv.Mode)
	require.NotNil(t, sv.DeckCursor)
	assert.Equal(t, 1, *sv.DeckCursor)
	assert.Equal(t, []int{0}, sv.DeckSelected)
	assert.Equal(t, "Deck", sv.SearchZone)
	assert.Len(t, sv.Search, game.DeckSize)
	assert.Equal(t, "c101", sv.Focus.Name)
	assert.Nil(t, sv.Highlight)
}

func TestBuildDiscardSearch(t *testing.T) {
	s := newState(t)
	press(t, s, game.Press(game.InputDeck), game.Press(game.InputDeck), game.Press(game.InputCancel))
	press(t, s, game.Press(game.InputHand), game.Press(game.InputMove), game.Press(game.InputDiscard))
	press(t, s, game.Press(game.InputDiscard))

	sv := Build(s, numberNamer{})
	assert.Equal(t, "Discard", sv.SearchZone)
	assert.Equal(t, []CardView{{ID: 159, Name: "c159"}}, sv.Search)
}

func TestBuildAlert(t *testing.T) {
	s := newState(t)
	press(t, s, game.Press(game.InputRoll))
	sv := Build(s, numberNamer{})
	assert.Contains(t, sv.Alert, "Rolled ")
}

func TestJSONHidesFaceDownPrizes(t *testing.T) {
	s := newState(t)
	s.Setup()
	press(t, s, game.Press(game.InputPrizes), game.Press(game.InputSelect), game.Press(game.InputFlip))

	data, err := json.Marshal(Build(s, numberNamer{}))
	require.NoError(t, err)

	var decoded StateView
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.You.Prizes[0].FaceUp)
	assert.NotNil(t, decoded.You.Prizes[0].Card)
	assert.Nil(t, decoded.You.Prizes[1].Card)
	assert.Nil(t, decoded.Opponent.Prizes[0].Card)
}

func TestRender(t *testing.T) {
	s := newState(t)
	s.Setup()
	press(t, s, game.Press(game.InputDeck), game.Press(game.InputDeck), game.Press(game.InputDeck), game.Press(game.InputCancel))
	press(t, s, game.Press(game.InputHand), game.Press(game.InputSelect), game.Press(game.InputRight))

	var buf bytes.Buffer
	Render(&buf, Build(s, numberNamer{}))
	out := buf.String()

	hand := s.ViewedLayout().Hand
	assert.Contains(t, out, "Selecting | Viewing P1")
	assert.Contains(t, out, fmt.Sprintf("*[1] c%d", hand[0]))
	assert.Contains(t, out, fmt.Sprintf(">[2] c%d", hand[1]))
	assert.Contains(t, out, "[?] [?] [?] [?] [?] [?]")
	assert.Contains(t, out, "1 Active [ ]")
	assert.Contains(t, out, "Cursor: Hand #1 (1 selected)")
}

func TestRenderDeckSearchEnd(t *testing.T) {
	s := newState(t)
	s.ViewedLayout().Deck = game.Pile{1, 2}
	press(t, s, game.Press(game.InputDeck), game.Press(game.InputSelect))
	press(t, s, game.Press(game.InputRight), game.Press(game.InputRight))

	var buf bytes.Buffer
	Render(&buf, Build(s, numberNamer{}))
	assert.Contains(t, buf.String(), "Deck: [1] c1  [2] c2  >[end]")
}

func TestRenderNil(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, nil)
	assert.Empty(t, buf.String())
}
