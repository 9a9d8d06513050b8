package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		in   string
		want Input
	}{
		{"left", Press(InputLeft)},
		{"RIGHT", Press(InputRight)},
		{"slot3", SlotInput(3)},
		{"slot 6", SlotInput(6)},
		{"4", SlotInput(4)},
		{"lost-zone", Press(InputLostZone)},
		{"lostzone", Press(InputLostZone)},
		{"switch-sides", Press(InputSwitchSides)},
		{"+", Press(InputIncrement)},
		{"observe", Press(InputObserve)},
		{"  prepend ", Press(InputPrepend)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInput(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInputUnknown(t *testing.T) {
	for _, s := range []string{"", "jump", "slotx", "slot"} {
		_, err := ParseInput(s)
		assert.ErrorIs(t, err, ErrUnknownInput, s)
	}
}

func TestInputStringRoundTrip(t *testing.T) {
	for k := InputLeft; k <= InputRoll; k++ {
		in := Press(k)
		if k == InputSlot {
			in = SlotInput(2)
		}
		got, err := ParseInput(in.String())
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}
