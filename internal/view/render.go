package view

import (
	"fmt"
	"io"
	"strings"
)

// Render writes a text picture of the table: the opponent's side on top,
// the viewing player's side below, then the mode line, the hand and any
// pile being searched. The highlight is marked with '>' and selected
// cards with '*'.
func Render(w io.Writer, sv *StateView) {
	if sv == nil {
		return
	}
	opp, you := sv.Opponent, sv.You

	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════╗")
	fmt.Fprintf(w, "║  %s  Hand: %d  Deck: %d  Discard: %s  Lost Zone: %s\n",
		opp.Player, opp.HandCount, opp.DeckCount, pileSummary(opp.Discard), pileSummary(opp.LostZone))
	fmt.Fprintf(w, "║  Prizes:  %s\n", prizeRow(sv, opp, false))
	fmt.Fprintf(w, "║  Stadium: %s\n", topName(opp.Stadium))
	fmt.Fprint(w, "║  Slots:  ")
	for i, slot := range opp.Slots {
		fmt.Fprintf(w, " %d%s", i+1, slotSummary(slot))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "║──────────────────────────────────────────────────────")

	for i, slot := range you.Slots {
		fmt.Fprintf(w, "║  %s\n", slotLine(sv, i, slot))
	}
	fmt.Fprintf(w, "║  Stadium: %s\n", zoneRow(sv, "Stadium", you.Stadium))
	fmt.Fprintf(w, "║  Prizes:  %s\n", prizeRow(sv, you, true))
	fmt.Fprintf(w, "║  %s  Deck: %d  Discard: %s  Lost Zone: %s\n",
		you.Player, you.DeckCount, pileSummary(you.Discard), zoneRow(sv, "Lost Zone", you.LostZone))
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════╝")

	status := fmt.Sprintf("%s | Viewing %s", sv.Mode, sv.Viewing)
	if sv.Alert != "" {
		status += " | " + sv.Alert
	}
	fmt.Fprintln(w, status)

	if len(you.Hand) > 0 {
		fmt.Fprintf(w, "Hand: %s\n", zoneRow(sv, "Hand", you.Hand))
	}
	if sv.Highlight != nil {
		fmt.Fprintf(w, "Cursor: %s", sv.Highlight.Label)
		if n := len(sv.Selected); n > 0 {
			fmt.Fprintf(w, " (%d selected)", n)
		}
		fmt.Fprintln(w)
	}
	if sv.Focus != nil {
		fmt.Fprintf(w, "Card: %s\n", sv.Focus.Name)
	}
	if sv.SearchZone != "" {
		fmt.Fprintf(w, "%s: %s\n", sv.SearchZone, searchRow(sv))
	}
}

func marker(highlight, selected bool) string {
	switch {
	case highlight && selected:
		return ">*"
	case highlight:
		return ">"
	case selected:
		return "*"
	}
	return ""
}

// mark returns the cursor marker for a card address on the viewing side.
func mark(sv *StateView, zone string, slot, index int) string {
	match := func(s SelectionView) bool {
		return s.Zone == zone && s.Slot == slot && s.Index == index && !s.Empty
	}
	h := sv.Highlight != nil && match(*sv.Highlight)
	sel := false
	for _, s := range sv.Selected {
		if match(s) {
			sel = true
			break
		}
	}
	return marker(h, sel)
}

// markEmptySlot returns the marker for an address on an empty slot.
func markEmptySlot(sv *StateView, slot int) string {
	match := func(s SelectionView) bool {
		return s.Zone == "Slot" && s.Slot == slot && s.Empty
	}
	h := sv.Highlight != nil && match(*sv.Highlight)
	sel := false
	for _, s := range sv.Selected {
		if match(s) {
			sel = true
			break
		}
	}
	return marker(h, sel)
}

func slotLine(sv *StateView, i int, slot SlotView) string {
	label := "Bench"
	if i == 0 {
		label = "Active"
	}
	if len(slot.Cards) == 0 {
		return fmt.Sprintf("%d %-6s %s[ ]", i+1, label, markEmptySlot(sv, i+1))
	}
	parts := make([]string, len(slot.Cards))
	for j, c := range slot.Cards {
		parts[j] = mark(sv, "Slot", i+1, j) + c.Name
	}
	line := fmt.Sprintf("%d %-6s [%s]", i+1, label, strings.Join(parts, ", "))
	if slot.Damage > 0 {
		line += fmt.Sprintf(" dmg %d", slot.Damage)
	}
	return line
}

func slotSummary(slot SlotView) string {
	if len(slot.Cards) == 0 {
		return "[ ]"
	}
	s := "[" + slot.Cards[0].Name
	if n := len(slot.Cards) - 1; n > 0 {
		s += fmt.Sprintf(" +%d", n)
	}
	if slot.Damage > 0 {
		s += fmt.Sprintf(" dmg %d", slot.Damage)
	}
	return s + "]"
}

func zoneRow(sv *StateView, zone string, cards []CardView) string {
	if len(cards) == 0 {
		return "-"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = fmt.Sprintf("%s[%d] %s", mark(sv, zone, 0, i), i+1, c.Name)
	}
	return strings.Join(parts, "  ")
}

func prizeRow(sv *StateView, pv PlayerView, owner bool) string {
	if len(pv.Prizes) == 0 {
		return "-"
	}
	parts := make([]string, len(pv.Prizes))
	for i, p := range pv.Prizes {
		name := "?"
		if p.Card != nil {
			name = p.Card.Name
		}
		m := ""
		if owner {
			m = mark(sv, "Prizes", 0, i)
		}
		parts[i] = fmt.Sprintf("%s[%s]", m, name)
	}
	return strings.Join(parts, " ")
}

func pileSummary(cards []CardView) string {
	if len(cards) == 0 {
		return "0"
	}
	return fmt.Sprintf("%d (%s)", len(cards), cards[len(cards)-1].Name)
}

func topName(cards []CardView) string {
	if len(cards) == 0 {
		return "-"
	}
	return cards[len(cards)-1].Name
}

func searchRow(sv *StateView) string {
	selected := make(map[int]bool, len(sv.DeckSelected))
	for _, i := range sv.DeckSelected {
		selected[i] = true
	}
	var parts []string
	for i, c := range sv.Search {
		var m string
		if sv.DeckCursor != nil {
			m = marker(*sv.DeckCursor == i, selected[i])
		} else {
			m = mark(sv, "Discard", 0, i)
		}
		parts = append(parts, fmt.Sprintf("%s[%d] %s", m, i+1, c.Name))
	}
	if sv.DeckCursor != nil && *sv.DeckCursor >= len(sv.Search) {
		parts = append(parts, marker(true, selected[*sv.DeckCursor])+"[end]")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "  ")
}
