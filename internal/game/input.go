package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownInput is returned by ParseInput for names outside the vocabulary.
var ErrUnknownInput = errors.New("unknown input")

// InputKind is one abstract input from the fixed vocabulary.
type InputKind int

const (
	InputLeft InputKind = iota
	InputRight
	InputSlot
	InputHand
	InputDiscard
	InputStadium
	InputLostZone
	InputPrizes
	InputDeck
	InputTop
	InputBottom
	InputSelect
	InputCancel
	InputFlip
	InputIncrement
	InputDecrement
	InputSwitchSides
	InputMove
	InputSwap
	InputAppend
	InputPrepend
	InputObserve
	InputShuffle
	InputRoll
)

var inputNames = [...]string{
	InputLeft:        "left",
	InputRight:       "right",
	InputSlot:        "slot",
	InputHand:        "hand",
	InputDiscard:     "discard",
	InputStadium:     "stadium",
	InputLostZone:    "lost-zone",
	InputPrizes:      "prizes",
	InputDeck:        "deck",
	InputTop:         "top",
	InputBottom:      "bottom",
	InputSelect:      "select",
	InputCancel:      "cancel",
	InputFlip:        "flip",
	InputIncrement:   "increment",
	InputDecrement:   "decrement",
	InputSwitchSides: "switch-sides",
	InputMove:        "move",
	InputSwap:        "swap",
	InputAppend:      "append",
	InputPrepend:     "prepend",
	InputObserve:     "observe",
	InputShuffle:     "shuffle",
	InputRoll:        "roll",
}

func (k InputKind) String() string {
	if k < 0 || int(k) >= len(inputNames) {
		return "unknown"
	}
	return inputNames[k]
}

// Input is one abstract input fed to State.Update. Slot carries the 1-based
// slot number for InputSlot and is zero otherwise.
type Input struct {
	Kind InputKind
	Slot int
}

// Press returns the input for a non-slot kind.
func Press(k InputKind) Input {
	return Input{Kind: k}
}

// SlotInput returns the input selecting slot n (1-6).
func SlotInput(n int) Input {
	return Input{Kind: InputSlot, Slot: n}
}

func (in Input) String() string {
	if in.Kind == InputSlot {
		return fmt.Sprintf("slot%d", in.Slot)
	}
	return in.Kind.String()
}

var inputAliases = map[string]InputKind{
	"lostzone":    InputLostZone,
	"lost":        InputLostZone,
	"prize":       InputPrizes,
	"switch":      InputSwitchSides,
	"switchsides": InputSwitchSides,
	"inc":         InputIncrement,
	"dec":         InputDecrement,
	"+":           InputIncrement,
	"-":           InputDecrement,
	"esc":         InputCancel,
}

// ParseInput parses a textual input name such as "hand", "lost-zone", "slot3"
// or a bare slot number "3". Matching is case-insensitive.
func ParseInput(s string) (Input, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(name); err == nil {
		return SlotInput(n), nil
	}
	if rest, ok := strings.CutPrefix(name, "slot"); ok && rest != "" {
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return Input{}, fmt.Errorf("%w: %q", ErrUnknownInput, s)
		}
		return SlotInput(n), nil
	}
	for k, n := range inputNames {
		if n == name && InputKind(k) != InputSlot {
			return Press(InputKind(k)), nil
		}
	}
	if k, ok := inputAliases[name]; ok {
		return Press(k), nil
	}
	return Input{}, fmt.Errorf("%w: %q", ErrUnknownInput, s)
}
