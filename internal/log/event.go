package log

import (
	"fmt"
	"time"
)

// EventType enumerates all observable table events.
type EventType int

const (
	EventSetup EventType = iota
	EventDraw
	EventShuffle
	EventRoll
	EventFlip
	EventDamage
	EventMove
	EventSwap
	EventSwitchSides
	EventModeChange
)

func (e EventType) String() string {
	switch e {
	case EventSetup:
		return "Setup"
	case EventDraw:
		return "Draw"
	case EventShuffle:
		return "Shuffle"
	case EventRoll:
		return "Roll"
	case EventFlip:
		return "Flip"
	case EventDamage:
		return "Damage"
	case EventMove:
		return "Move"
	case EventSwap:
		return "Swap"
	case EventSwitchSides:
		return "SwitchSides"
	case EventModeChange:
		return "ModeChange"
	default:
		return "Unknown"
	}
}

// MarshalText renders the type by name in JSON.
func (e EventType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EventType) UnmarshalText(text []byte) error {
	for t := EventSetup; t <= EventModeChange; t++ {
		if t.String() == string(text) {
			*e = t
			return nil
		}
	}
	return fmt.Errorf("unknown event type %q", text)
}

// GameEvent represents a single observable event at the table.
type GameEvent struct {
	Seq     int       `json:"seq"`             // monotonic sequence number
	Time    time.Time `json:"time,omitzero"`   // zero unless the logger stamps it
	Player  int       `json:"player"`          // player whose layout changed (0 or 1)
	Mode    string    `json:"mode"`            // interaction mode after the event
	Type    EventType `json:"type"`            // event type
	Cards   []int     `json:"cards,omitempty"` // catalog indices involved, if any
	Details string    `json:"details"`         // human-readable detail string
}
