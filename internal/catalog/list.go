package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// A deck list is a plain text file of repeating three-line entries:
//
//	4
//	Scarlet & Violet
//	Pikachu
//
// giving the copy count, the set, and the card name. Blank lines and
// leading or trailing spaces are ignored.

type deckList struct {
	Entries []*listEntry `EOL? @@*`
}

type listEntry struct {
	Count listCount `@Line EOL`
	Set   string    `@Line EOL`
	Name  string    `@Line EOL?`
}

type listCount int

func (c *listCount) Capture(values []string) error {
	n, err := strconv.Atoi(strings.TrimSpace(values[0]))
	if err != nil || n < 0 {
		return fmt.Errorf("expected a card count, got %q", values[0])
	}
	*c = listCount(n)
	return nil
}

var listParser = participle.MustBuild[deckList](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{"EOL", `[ \t]*(\r?\n[ \t]*)+`},
		{"whitespace", `[ \t]+`},
		{"Line", `[^\s][^\r\n]*`},
	})),
)

// ParseDeckList parses deck list text. name labels the deck and any parse
// errors.
func ParseDeckList(name, text string) (DeckEntry, error) {
	list, err := listParser.ParseString(name, text)
	if err != nil {
		return DeckEntry{}, fmt.Errorf("parse deck list: %w", err)
	}
	deck := DeckEntry{Name: name}
	for _, e := range list.Entries {
		deck.Cards = append(deck.Cards, CardEntry{
			Name:  strings.TrimSpace(e.Name),
			Set:   strings.TrimSpace(e.Set),
			Count: int(e.Count),
		})
	}
	return deck, nil
}

// ReadDeckList reads a deck list file. The deck is named after the file.
func ReadDeckList(path string) (DeckEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DeckEntry{}, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseDeckList(name, string(data))
}
