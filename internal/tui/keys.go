package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/peterkuimelis/tcgsim/internal/game"
)

// binding ties a key binding to the game input it sends.
type binding struct {
	key   key.Binding
	input game.Input
}

func bind(k string, help string, in game.Input) binding {
	return binding{key: key.NewBinding(key.WithKeys(k), key.WithHelp(k, help)), input: in}
}

// gameKeys is the keyboard layout for the abstract inputs.
var gameKeys = []binding{
	bind(";", "left", game.Press(game.InputLeft)),
	bind("'", "right", game.Press(game.InputRight)),
	bind("1", "slot 1", game.SlotInput(1)),
	bind("2", "slot 2", game.SlotInput(2)),
	bind("3", "slot 3", game.SlotInput(3)),
	bind("4", "slot 4", game.SlotInput(4)),
	bind("5", "slot 5", game.SlotInput(5)),
	bind("6", "slot 6", game.SlotInput(6)),
	bind("h", "hand", game.Press(game.InputHand)),
	bind("x", "discard", game.Press(game.InputDiscard)),
	bind("s", "stadium", game.Press(game.InputStadium)),
	bind("l", "lost zone", game.Press(game.InputLostZone)),
	bind("p", "prizes", game.Press(game.InputPrizes)),
	bind("d", "deck", game.Press(game.InputDeck)),
	bind("t", "top", game.Press(game.InputTop)),
	bind("b", "bottom", game.Press(game.InputBottom)),
	bind("enter", "select", game.Press(game.InputSelect)),
	bind("esc", "cancel", game.Press(game.InputCancel)),
	bind("f", "flip", game.Press(game.InputFlip)),
	bind("=", "damage +", game.Press(game.InputIncrement)),
	bind("-", "damage -", game.Press(game.InputDecrement)),
	bind(" ", "switch sides", game.Press(game.InputSwitchSides)),
	bind("m", "move", game.Press(game.InputMove)),
	bind("w", "swap", game.Press(game.InputSwap)),
	bind("a", "append", game.Press(game.InputAppend)),
	bind("e", "prepend", game.Press(game.InputPrepend)),
	bind("o", "observe", game.Press(game.InputObserve)),
	bind("q", "shuffle", game.Press(game.InputShuffle)),
	bind("r", "roll", game.Press(game.InputRoll)),
}

var (
	quitKey   = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	scrollUp  = key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "log up"))
	scrollDn  = key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "log down"))
	toggleKey = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "keys"))
)

// inputFor maps a key press to a game input.
func inputFor(msg tea.KeyMsg) (game.Input, bool) {
	for _, b := range gameKeys {
		if key.Matches(msg, b.key) {
			return b.input, true
		}
	}
	return game.Input{}, false
}

// keyMap feeds the help view.
type keyMap struct{}

func (keyMap) ShortHelp() []key.Binding {
	return []key.Binding{toggleKey, scrollUp, scrollDn, quitKey}
}

func (keyMap) FullHelp() [][]key.Binding {
	const rows = 8
	var cols [][]key.Binding
	for i := 0; i < len(gameKeys); i += rows {
		var col []key.Binding
		for _, b := range gameKeys[i:min(i+rows, len(gameKeys))] {
			col = append(col, b.key)
		}
		cols = append(cols, col)
	}
	return append(cols, keyMap{}.ShortHelp())
}
