// Package entity provides the characters that walk the restaurant floor.
package entity

import "github.com/samdwyer/pixelrestaurant/internal/world"

// Kind distinguishes the waiter from the guests.
type Kind int

const (
	KindWaiter Kind = iota
	KindClient
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWaiter:
		return "waiter"
	case KindClient:
		return "client"
	default:
		return "unknown"
	}
}

// Symbol returns the default display symbol for a kind.
func (k Kind) Symbol() rune {
	switch k {
	case KindWaiter:
		return 'W'
	case KindClient:
		return 'c'
	default:
		return '?'
	}
}

// Character is a single figure on the grid.
type Character struct {
	Kind   Kind
	Pos    world.Pos
	Symbol rune
}

// NewCharacter creates a character of the given kind at p.
func NewCharacter(kind Kind, p world.Pos) *Character {
	return &Character{
		Kind:   kind,
		Pos:    p,
		Symbol: kind.Symbol(),
	}
}

// MoveTo places the character at p.
func (c *Character) MoveTo(p world.Pos) {
	c.Pos = p
}
