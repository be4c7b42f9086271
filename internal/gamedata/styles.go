package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pixelrestaurant/internal/entity"
	"github.com/samdwyer/pixelrestaurant/internal/world"
)

// StyleDef is how a tile or character is drawn, as written in layout files.
type StyleDef struct {
	Glyph string `yaml:"glyph"`
	FG    string `yaml:"fg"`
	BG    string `yaml:"bg"`
}

// StylesDef groups the styles of a layout.
type StylesDef struct {
	Tiles      map[string]StyleDef `yaml:"tiles"`      // keyed by tile kind name
	Path       StyleDef            `yaml:"path"`       // overlay for route tiles
	Characters map[string]StyleDef `yaml:"characters"` // keyed by entity kind name
}

// Style is a resolved glyph and terminal style.
type Style struct {
	Glyph rune
	Style tcell.Style
}

func (d StyleDef) resolve(fallback rune) (Style, error) {
	fg, err := ParseHexColor(d.FG)
	if err != nil {
		return Style{}, err
	}
	bg, err := ParseHexColor(d.BG)
	if err != nil {
		return Style{}, err
	}
	glyph := fallback
	if runes := []rune(d.Glyph); len(runes) > 0 {
		glyph = runes[0]
	}
	return Style{
		Glyph: glyph,
		Style: tcell.StyleDefault.Foreground(fg).Background(bg),
	}, nil
}

// StyleRegistry holds resolved styles for tiles, the path overlay and characters.
type StyleRegistry struct {
	tiles      map[world.TileKind]Style
	path       Style
	characters map[entity.Kind]Style
}

// NewStyleRegistry resolves every colour in def. Kinds without an entry are
// drawn with their default glyph in the terminal's default colours.
func NewStyleRegistry(def StylesDef) (*StyleRegistry, error) {
	r := &StyleRegistry{
		tiles:      make(map[world.TileKind]Style),
		characters: make(map[entity.Kind]Style),
	}

	for name, sd := range def.Tiles {
		kind, err := ParseTileKind(name)
		if err != nil {
			return nil, err
		}
		style, err := sd.resolve(kind.Glyph())
		if err != nil {
			return nil, fmt.Errorf("gamedata: tile style %s: %w", name, err)
		}
		r.tiles[kind] = style
	}

	path, err := def.Path.resolve('.')
	if err != nil {
		return nil, fmt.Errorf("gamedata: path style: %w", err)
	}
	r.path = path

	for _, kind := range []entity.Kind{entity.KindWaiter, entity.KindClient} {
		sd, ok := def.Characters[kind.String()]
		if !ok {
			continue
		}
		style, err := sd.resolve(kind.Symbol())
		if err != nil {
			return nil, fmt.Errorf("gamedata: character style %s: %w", kind, err)
		}
		r.characters[kind] = style
	}

	return r, nil
}

// Tile returns the style for a tile kind.
func (r *StyleRegistry) Tile(kind world.TileKind) Style {
	if s, ok := r.tiles[kind]; ok {
		return s
	}
	return Style{Glyph: kind.Glyph(), Style: tcell.StyleDefault}
}

// Path returns the overlay style for route tiles.
func (r *StyleRegistry) Path() Style {
	return r.path
}

// Character returns the style for a character kind.
func (r *StyleRegistry) Character(kind entity.Kind) Style {
	if s, ok := r.characters[kind]; ok {
		return s
	}
	return Style{Glyph: kind.Symbol(), Style: tcell.StyleDefault.Bold(true)}
}
