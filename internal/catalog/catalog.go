// Package catalog maps card names to the opaque card indices the engine
// works with, and loads decks from YAML deck files or plain deck lists.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/peterkuimelis/tcgsim/internal/game"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownCard is returned when a deck names a card the catalog does not hold.
	ErrUnknownCard = errors.New("unknown card")

	// ErrDeckNotFound is returned when a deck reference matches no deck.
	ErrDeckNotFound = errors.New("deck not found")
)

// CardInfo describes one catalog entry.
type CardInfo struct {
	Name string `yaml:"name" json:"name"`
	Set  string `yaml:"set,omitempty" json:"set,omitempty"`
}

// Catalog assigns each distinct card name a stable index, in the order the
// names were first added.
type Catalog struct {
	cards []CardInfo
	index map[string]game.Card
}

func New() *Catalog {
	return &Catalog{index: make(map[string]game.Card)}
}

// FromDecks builds a catalog holding every card named by the given decks.
func FromDecks(decks ...DeckEntry) *Catalog {
	c := New()
	for _, d := range decks {
		for _, e := range d.Cards {
			c.Add(CardInfo{Name: e.Name, Set: e.Set})
		}
	}
	return c
}

type catalogFile struct {
	Cards []CardInfo `yaml:"cards"`
}

// Load reads a YAML catalog file of the form `cards: [{name, set}]`.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}
	c := New()
	for _, info := range cf.Cards {
		c.Add(info)
	}
	return c, nil
}

// Add registers a card and returns its index. Adding a known name returns
// the existing index and leaves the entry as first recorded.
func (c *Catalog) Add(info CardInfo) game.Card {
	if id, ok := c.index[info.Name]; ok {
		return id
	}
	id := game.Card(len(c.cards))
	c.cards = append(c.cards, info)
	c.index[info.Name] = id
	return id
}

// Index returns the card index for name.
func (c *Catalog) Index(name string) (game.Card, bool) {
	id, ok := c.index[name]
	return id, ok
}

// Name returns the name of card, or "#<index>" for an index the catalog does
// not hold.
func (c *Catalog) Name(card game.Card) string {
	if info, ok := c.Info(card); ok {
		return info.Name
	}
	return fmt.Sprintf("#%d", int(card))
}

func (c *Catalog) Info(card game.Card) (CardInfo, bool) {
	if card < 0 || int(card) >= len(c.cards) {
		return CardInfo{}, false
	}
	return c.cards[card], true
}

func (c *Catalog) Len() int {
	return len(c.cards)
}

// Cards returns the entries in index order.
func (c *Catalog) Cards() []CardInfo {
	return append([]CardInfo(nil), c.cards...)
}

// Build expands a deck into a pile of card indices, in listing order. Every
// card must already be in the catalog.
func (c *Catalog) Build(d DeckEntry) (game.Pile, error) {
	var pile game.Pile
	for _, e := range d.Cards {
		id, ok := c.index[e.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q in deck %q", ErrUnknownCard, e.Name, d.Name)
		}
		if e.Count < 0 {
			return nil, fmt.Errorf("deck %q: negative count %d for %q", d.Name, e.Count, e.Name)
		}
		for i := 0; i < e.Count; i++ {
			pile = append(pile, id)
		}
	}
	return pile, nil
}
