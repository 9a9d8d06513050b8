package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterkuimelis/tcgsim/internal/game"
	"gopkg.in/yaml.v3"
)

// DeckFile represents the top-level YAML structure.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a card and its count in a deck.
type CardEntry struct {
	Name  string `yaml:"name"`
	Set   string `yaml:"set,omitempty"`
	Count int    `yaml:"count"`
}

// Size returns the number of cards the deck expands to.
func (d DeckEntry) Size() int {
	n := 0
	for _, e := range d.Cards {
		n += e.Count
	}
	return n
}

// ParseDeckYAML parses the contents of a YAML deck file.
func ParseDeckYAML(data []byte) (*DeckFile, error) {
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}
	return &df, nil
}

// ParseDeckFile reads and parses a YAML deck file.
func ParseDeckFile(path string) (*DeckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDeckYAML(data)
}

// ByNumber returns the Nth deck (1-indexed).
func (df *DeckFile) ByNumber(n int) (DeckEntry, error) {
	if n < 1 || n > len(df.Decks) {
		return DeckEntry{}, fmt.Errorf("%w: deck %d (have %d decks)", ErrDeckNotFound, n, len(df.Decks))
	}
	return df.Decks[n-1], nil
}

// ByName returns the deck with the given name, ignoring case.
func (df *DeckFile) ByName(name string) (DeckEntry, error) {
	for _, d := range df.Decks {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return DeckEntry{}, fmt.Errorf("%w: %q", ErrDeckNotFound, name)
}

// DeckByNumber returns the Nth deck (1-indexed) from the deck file.
func DeckByNumber(path string, n int) (DeckEntry, error) {
	df, err := ParseDeckFile(path)
	if err != nil {
		return DeckEntry{}, err
	}
	return df.ByNumber(n)
}

// Resolve finds the deck a reference names. A reference ending in .txt is
// read as a deck list file; a number picks a deck from df by position;
// anything else is a deck name in df.
func Resolve(df *DeckFile, ref string) (DeckEntry, error) {
	if strings.EqualFold(filepath.Ext(ref), ".txt") {
		return ReadDeckList(ref)
	}
	if df == nil {
		return DeckEntry{}, fmt.Errorf("%w: %q (no deck file loaded)", ErrDeckNotFound, ref)
	}
	if n, err := strconv.Atoi(ref); err == nil {
		return df.ByNumber(n)
	}
	return df.ByName(ref)
}

// Open resolves two deck references and builds a catalog and card piles for
// them. With catalogPath empty the catalog is made from the decks' own
// cards; otherwise every card must appear in the catalog file.
func Open(decksPath, catalogPath, ref1, ref2 string) (*Catalog, [2]game.Pile, error) {
	var (
		piles [2]game.Pile
		df    *DeckFile
		err   error
	)
	if decksPath != "" {
		if df, err = ParseDeckFile(decksPath); err != nil {
			return nil, piles, err
		}
	}

	var decks [2]DeckEntry
	for i, ref := range []string{ref1, ref2} {
		if decks[i], err = Resolve(df, ref); err != nil {
			return nil, piles, err
		}
	}

	var cat *Catalog
	if catalogPath != "" {
		if cat, err = Load(catalogPath); err != nil {
			return nil, piles, err
		}
	} else {
		cat = FromDecks(decks[:]...)
	}

	for i, d := range decks {
		if piles[i], err = cat.Build(d); err != nil {
			return nil, piles, err
		}
	}
	return cat, piles, nil
}
