package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/peterkuimelis/tcgsim/internal/catalog"
	"github.com/peterkuimelis/tcgsim/internal/game"
	"github.com/peterkuimelis/tcgsim/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) (*Model, *table.Table) {
	t.Helper()
	d1 := catalog.DeckEntry{Name: "one", Cards: []catalog.CardEntry{
		{Name: "Pikachu", Count: 20}, {Name: "Lightning Energy", Count: 40},
	}}
	d2 := catalog.DeckEntry{Name: "two", Cards: []catalog.CardEntry{
		{Name: "Squirtle", Count: 20}, {Name: "Water Energy", Count: 40},
	}}
	cat := catalog.FromDecks(d1, d2)
	p1, err := cat.Build(d1)
	require.NoError(t, err)
	p2, err := cat.Build(d2)
	require.NoError(t, err)
	tbl, err := table.New(table.Config{Catalog: cat, Deck1: p1, Deck2: p2, Seed: 5})
	require.NoError(t, err)

	logger := charmlog.NewWithOptions(io.Discard, charmlog.Options{Level: charmlog.ErrorLevel})
	m := New(tbl, Options{Theme: "dark", EventRows: 4, Logger: logger})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, tbl
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeysDriveTheTable(t *testing.T) {
	m, tbl := newModel(t)

	m.Update(runes("d"))
	assert.Equal(t, "Deck", tbl.View().Mode)

	m.Update(runes("d"))
	m.Update(runes("d"))
	assert.Len(t, tbl.View().You.Hand, 2)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "Selecting", tbl.View().Mode)

	m.Update(runes("h"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, tbl.View().Selected, 1)
}

func TestSpaceSwitchesSides(t *testing.T) {
	m, tbl := newModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, "P2", tbl.View().Viewing)
}

func TestLogCollectsEvents(t *testing.T) {
	m, _ := newModel(t)
	require.Len(t, m.lines, 2, "setup events are loaded on start")

	m.Update(runes("r"))
	require.Len(t, m.lines, 3)
	assert.Contains(t, m.lines[2], "P1 rolls a ")
}

func TestErrorsShowInStatus(t *testing.T) {
	m, tbl := newModel(t)
	m.Update(runes("d"))
	m.Update(runes("o"))
	assert.Contains(t, m.lastErr, game.ErrNotImplemented.Error())
	assert.Contains(t, m.View(), game.ErrNotImplemented.Error())
	assert.Equal(t, "Deck", tbl.View().Mode)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.lastErr)
}

func TestInputForCoversEveryKey(t *testing.T) {
	cases := map[string]game.Input{
		";": game.Press(game.InputLeft),
		"'": game.Press(game.InputRight),
		"4": game.SlotInput(4),
		"x": game.Press(game.InputDiscard),
		"=": game.Press(game.InputIncrement),
		"-": game.Press(game.InputDecrement),
		"e": game.Press(game.InputPrepend),
		"q": game.Press(game.InputShuffle),
	}
	for k, want := range cases {
		got, ok := inputFor(runes(k))
		require.True(t, ok, k)
		assert.Equal(t, want, got, k)
	}

	_, ok := inputFor(runes("z"))
	assert.False(t, ok)
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestViewBeforeSize(t *testing.T) {
	m, _ := newModel(t)
	m.width = 0
	assert.Equal(t, "Loading...", m.View())
}

func TestThemeFallsBackToDefault(t *testing.T) {
	assert.Equal(t, ThemeStyles("default").Focused, ThemeStyles("neon").Focused)
	assert.NotEqual(t, ThemeStyles("light").Focused, ThemeStyles("dark").Focused)
}

func TestHelpListsEveryBinding(t *testing.T) {
	n := 0
	for _, col := range (keyMap{}).FullHelp() {
		n += len(col)
	}
	assert.Equal(t, len(gameKeys)+4, n)
}
