package world

import "fmt"

// Pos identifies a grid cell by row and column.
type Pos struct {
	Row, Col int
}

// Add returns the position offset by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Adjacent reports whether q is one step away from p along exactly one axis.
func (p Pos) Adjacent(q Pos) bool {
	return abs(p.Row-q.Row)+abs(p.Col-q.Col) == 1
}

// Manhattan returns the number of 4-directional steps between p and q on an open grid.
func (p Pos) Manhattan(q Pos) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
