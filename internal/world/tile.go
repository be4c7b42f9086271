// Package world provides the restaurant grid and its tiles.
package world

// TileKind classifies a grid cell for walkability and rendering.
type TileKind int

const (
	// TileFloor is open floor.
	TileFloor TileKind = iota
	// TileTable is a dining table; blocks movement.
	TileTable
	// TileObstacle is a wall, spill or other server; blocks movement.
	TileObstacle
	// TileDoor is the entrance.
	TileDoor
	// TileTarget is the table the guests are seated at. It is walkable so a
	// route can end on it.
	TileTarget
)

// String returns the tile kind name.
func (k TileKind) String() string {
	switch k {
	case TileFloor:
		return "floor"
	case TileTable:
		return "table"
	case TileObstacle:
		return "obstacle"
	case TileDoor:
		return "door"
	case TileTarget:
		return "target"
	default:
		return "unknown"
	}
}

// IsWalkable returns true unless the tile is a table or an obstacle.
func (k TileKind) IsWalkable() bool {
	return k != TileTable && k != TileObstacle
}

// Glyph returns the tile's default display character.
func (k TileKind) Glyph() rune {
	switch k {
	case TileFloor:
		return '.'
	case TileTable:
		return 'T'
	case TileObstacle:
		return '#'
	case TileDoor:
		return 'D'
	case TileTarget:
		return '*'
	default:
		return '?'
	}
}

// TileKindFromGlyph maps a display character back to its tile kind.
func TileKindFromGlyph(r rune) (TileKind, bool) {
	for _, k := range []TileKind{TileFloor, TileTable, TileObstacle, TileDoor, TileTarget} {
		if k.Glyph() == r {
			return k, true
		}
	}
	return 0, false
}
