package world

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("world: grid must have at least one row and one column")
	// ErrRaggedGrid indicates text rows of differing lengths.
	ErrRaggedGrid = errors.New("world: all rows must have the same length")
	// ErrUnknownGlyph indicates a layout character with no tile kind.
	ErrUnknownGlyph = errors.New("world: unknown tile glyph")
)

// Grid is a fixed-size rectangular array of tile kinds, indexed row-major.
// A Grid is never modified after Build, so it can be shared between searches.
type Grid struct {
	rows, cols int
	tiles      []TileKind
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within [0,rows) x [0,cols).
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the tile kind at p. Out-of-bounds positions read as obstacles.
func (g *Grid) At(p Pos) TileKind {
	if !g.InBounds(p) {
		return TileObstacle
	}
	return g.tiles[p.Row*g.cols+p.Col]
}

// Walkable returns true if p is in bounds and its tile does not block movement.
func (g *Grid) Walkable(p Pos) bool {
	return g.InBounds(p) && g.At(p).IsWalkable()
}

// Builder assembles a Grid. The zero value is not usable; use NewBuilder.
type Builder struct {
	rows, cols int
	tiles      []TileKind
}

// NewBuilder creates a builder for a rows x cols grid of floor tiles.
func NewBuilder(rows, cols int) (*Builder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	return &Builder{
		rows:  rows,
		cols:  cols,
		tiles: make([]TileKind, rows*cols),
	}, nil
}

// Set changes a single tile. Out-of-bounds positions are ignored.
func (b *Builder) Set(p Pos, kind TileKind) *Builder {
	if p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols {
		b.tiles[p.Row*b.cols+p.Col] = kind
	}
	return b
}

// FillRect sets every tile inside r.
func (b *Builder) FillRect(r Rect, kind TileKind) *Builder {
	for row := r.Row; row < r.Row+r.Rows; row++ {
		for col := r.Col; col < r.Col+r.Cols; col++ {
			b.Set(Pos{Row: row, Col: col}, kind)
		}
	}
	return b
}

// Border sets the outermost ring of tiles.
func (b *Builder) Border(kind TileKind) *Builder {
	for i := 0; i < b.cols; i++ {
		b.Set(Pos{Row: 0, Col: i}, kind)
		b.Set(Pos{Row: b.rows - 1, Col: i}, kind)
	}
	for i := 0; i < b.rows; i++ {
		b.Set(Pos{Row: i, Col: 0}, kind)
		b.Set(Pos{Row: i, Col: b.cols - 1}, kind)
	}
	return b
}

// Build returns an immutable copy of the tiles set so far.
func (b *Builder) Build() *Grid {
	tiles := make([]TileKind, len(b.tiles))
	copy(tiles, b.tiles)
	return &Grid{rows: b.rows, cols: b.cols, tiles: tiles}
}

// ParseGrid builds a grid from text rows using the default tile glyphs.
// A nil legend uses TileKindFromGlyph.
func ParseGrid(lines []string, legend map[rune]TileKind) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len([]rune(lines[0]))
	b, err := NewBuilder(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedGrid, row, len(runes), cols)
		}
		for col, r := range runes {
			kind, ok := lookupGlyph(legend, r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, r, row, col)
			}
			b.Set(Pos{Row: row, Col: col}, kind)
		}
	}
	return b.Build(), nil
}

func lookupGlyph(legend map[rune]TileKind, r rune) (TileKind, bool) {
	if legend == nil {
		return TileKindFromGlyph(r)
	}
	kind, ok := legend[r]
	return kind, ok
}
