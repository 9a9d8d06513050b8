package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging table events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// Since returns the events with a sequence number greater than seq.
func (l *MemoryLogger) Since(seq int) []GameEvent {
	for i, e := range l.events {
		if e.Seq > seq {
			return l.events[i:]
		}
	}
	return nil
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// playerName returns "P1" or "P2" for display.
func playerName(p int) string {
	return fmt.Sprintf("P%d", p+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	mode := e.Mode
	// Pad mode to 12 chars for alignment
	for len(mode) < 12 {
		mode += " "
	}
	stamp := ""
	if !e.Time.IsZero() {
		stamp = e.Time.Format("15:04:05") + " "
	}
	return fmt.Sprintf("%s%s %s| %s", stamp, playerName(e.Player), mode, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewSetupEvent(player int, prizes, deck int) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventSetup,
		Details: fmt.Sprintf("%s shuffles and sets %d prizes (%d left in deck)", playerName(player), prizes, deck),
	}
}

func NewDrawEvent(player int, card int) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventDraw,
		Cards:   []int{card},
		Details: fmt.Sprintf("%s draws a card", playerName(player)),
	}
}

func NewShuffleEvent(player int) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventShuffle,
		Details: fmt.Sprintf("%s shuffles their deck", playerName(player)),
	}
}

func NewRollEvent(player int, value int) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventRoll,
		Details: fmt.Sprintf("%s rolls a %d", playerName(player), value),
	}
}

func NewFlipEvent(player int, prize int, faceUp bool) GameEvent {
	face := "face-down"
	if faceUp {
		face = "face-up"
	}
	return GameEvent{
		Player:  player,
		Type:    EventFlip,
		Details: fmt.Sprintf("%s turns prize %d %s", playerName(player), prize+1, face),
	}
}

func NewDamageEvent(player int, slot int, damage int) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventDamage,
		Details: fmt.Sprintf("%s slot %d damage → %d", playerName(player), slot+1, damage),
	}
}

func NewMoveEvent(player int, cards []int, destination string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventMove,
		Cards:   cards,
		Details: fmt.Sprintf("%s moves %d card(s) to %s", playerName(player), len(cards), destination),
	}
}

func NewSwapEvent(player int, a, b int) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventSwap,
		Details: fmt.Sprintf("%s swaps slots %d and %d", playerName(player), a+1, b+1),
	}
}

func NewSwitchSidesEvent(player int) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventSwitchSides,
		Details: fmt.Sprintf("Now viewing %s", playerName(player)),
	}
}

func NewModeChangeEvent(player int, from, to string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventModeChange,
		Details: fmt.Sprintf("Mode %s → %s", from, to),
	}
}
