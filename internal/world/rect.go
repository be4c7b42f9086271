package world

// Rect is a rectangular block of cells, such as a 2x2 table.
type Rect struct {
	Row, Col   int // Top-left corner
	Rows, Cols int // Dimensions
}

// Contains returns true if the given position is inside the rect.
func (r Rect) Contains(p Pos) bool {
	return p.Row >= r.Row && p.Row < r.Row+r.Rows && p.Col >= r.Col && p.Col < r.Col+r.Cols
}
