// Package catalog holds the immutable set of card templates the engine
// builds decks from. Templates are loaded once at startup, either from the
// builtin set or from a Postgres cards table, and never mutated afterwards.
package catalog

import (
	"fmt"
)

// CardType classifies a card template.
type CardType string

const (
	TypeAttack   CardType = "attack"
	TypeDefense  CardType = "defense"
	TypeMagic    CardType = "magic"
	TypeCreature CardType = "creature"
)

// Valid reports whether the type is one of the four known card types.
func (t CardType) Valid() bool {
	switch t {
	case TypeAttack, TypeDefense, TypeMagic, TypeCreature:
		return true
	}
	return false
}

// Effect is an optional scripted effect attached to a template.
type Effect struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

// Card is a card template. Instances handed to the engine are copies;
// combat damage never writes back into the catalog.
type Card struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Type        CardType `json:"type"`
	Cost        int      `json:"cost"`
	Attack      int      `json:"attack"`
	Defense     int      `json:"defense"`
	Description string   `json:"description"`
	Effects     []Effect `json:"effects,omitempty"`
}

// Catalog is a read-only collection of card templates indexed by id.
type Catalog struct {
	cards []Card
	byID  map[int]Card
}

// New builds a catalog from the given templates. Duplicate or invalid
// templates are rejected so a bad data source fails loudly at startup.
func New(cards []Card) (*Catalog, error) {
	byID := make(map[int]Card, len(cards))
	ordered := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.ID <= 0 {
			return nil, fmt.Errorf("card %q: invalid id %d", c.Name, c.ID)
		}
		if !c.Type.Valid() {
			return nil, fmt.Errorf("card %q: unknown type %q", c.Name, c.Type)
		}
		if c.Cost < 0 {
			return nil, fmt.Errorf("card %q: negative cost %d", c.Name, c.Cost)
		}
		if _, exists := byID[c.ID]; exists {
			return nil, fmt.Errorf("card %q: duplicate id %d", c.Name, c.ID)
		}
		byID[c.ID] = c
		ordered = append(ordered, c)
	}
	return &Catalog{cards: ordered, byID: byID}, nil
}

// LoadBuiltin returns a catalog backed by the compiled-in card set.
func LoadBuiltin() *Catalog {
	cat, err := New(builtinCards)
	if err != nil {
		// The builtin set is validated by tests; reaching this is a bug.
		panic(fmt.Sprintf("builtin card set invalid: %v", err))
	}
	return cat
}

// Get returns the template with the given id.
func (c *Catalog) Get(id int) (Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

// Cards returns a copy of all templates in catalog order.
func (c *Catalog) Cards() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Size returns the number of templates.
func (c *Catalog) Size() int {
	return len(c.cards)
}
