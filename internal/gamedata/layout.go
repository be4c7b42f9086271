package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/pixelrestaurant/internal/world"
)

var (
	// ErrUnknownTileKind indicates a legend entry naming no tile kind.
	ErrUnknownTileKind = errors.New("gamedata: unknown tile kind")
	// ErrEndpointOutOfBounds indicates a start or end outside the layout rows.
	ErrEndpointOutOfBounds = errors.New("gamedata: endpoint outside layout")
)

// PosDef is a grid position as written in layout files.
type PosDef struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Pos converts the definition to a world position.
func (p PosDef) Pos() world.Pos {
	return world.Pos{Row: p.Row, Col: p.Col}
}

// Layout is a dining room loaded from YAML.
type Layout struct {
	Name     string            `yaml:"name"`
	Title    string            `yaml:"title"`
	Subtitle string            `yaml:"subtitle"`
	Legend   map[string]string `yaml:"legend"` // glyph -> tile kind name
	Rows     []string          `yaml:"rows"`
	Start    PosDef            `yaml:"start"`
	End      PosDef            `yaml:"end"`
	Styles   StylesDef         `yaml:"styles"`
}

// LoadLayout loads the named layout (without the .yaml extension).
func LoadLayout(name string) (*Layout, error) {
	layout, err := Load[Layout](name + ".yaml")
	if err != nil {
		return nil, err
	}
	return &layout, nil
}

// MustLoadLayout loads a layout, panicking on error.
func MustLoadLayout(name string) *Layout {
	layout, err := LoadLayout(name)
	if err != nil {
		panic(err)
	}
	return layout
}

// Grid builds the world grid described by the layout and checks that the
// start and end positions lie inside it.
func (l *Layout) Grid() (*world.Grid, error) {
	legend, err := l.legend()
	if err != nil {
		return nil, err
	}

	grid, err := world.ParseGrid(l.Rows, legend)
	if err != nil {
		return nil, fmt.Errorf("gamedata: layout %s: %w", l.Name, err)
	}

	for _, p := range []world.Pos{l.Start.Pos(), l.End.Pos()} {
		if !grid.InBounds(p) {
			return nil, fmt.Errorf("%w: %s %v", ErrEndpointOutOfBounds, l.Name, p)
		}
	}
	return grid, nil
}

func (l *Layout) legend() (map[rune]world.TileKind, error) {
	if len(l.Legend) == 0 {
		return nil, nil
	}
	legend := make(map[rune]world.TileKind, len(l.Legend))
	for glyph, name := range l.Legend {
		runes := []rune(glyph)
		if len(runes) != 1 {
			return nil, fmt.Errorf("gamedata: layout %s: legend key %q must be one character", l.Name, glyph)
		}
		kind, err := ParseTileKind(name)
		if err != nil {
			return nil, err
		}
		legend[runes[0]] = kind
	}
	return legend, nil
}

// ParseTileKind maps a tile kind name such as "table" to its world value.
func ParseTileKind(name string) (world.TileKind, error) {
	for _, k := range []world.TileKind{world.TileFloor, world.TileTable, world.TileObstacle, world.TileDoor, world.TileTarget} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTileKind, name)
}
