// Package pathfind computes shortest walkable routes over a restaurant grid.
//
// FindPath runs a breadth-first search over the 4-directional adjacency of the
// grid. Tables and obstacles block movement; every other tile, including the
// target table, is walkable. A missing route is reported through Result.Found,
// not as an error: errors are reserved for invalid input.
package pathfind

import (
	"errors"
	"fmt"

	"github.com/samdwyer/pixelrestaurant/internal/world"
)

var (
	// ErrEmptyGrid is returned for a nil grid or one without rows or columns.
	ErrEmptyGrid = errors.New("pathfind: grid must have at least one row and one column")
	// ErrOutOfBounds is returned when start or end lies outside the grid.
	ErrOutOfBounds = errors.New("pathfind: position out of bounds")
)

// Route is an ordered sequence of 4-adjacent positions from start to end.
type Route []world.Pos

// Steps returns the number of moves along the route.
func (r Route) Steps() int {
	if len(r) == 0 {
		return 0
	}
	return len(r) - 1
}

// Contains reports whether p is on the route.
func (r Route) Contains(p world.Pos) bool {
	for _, q := range r {
		if q == p {
			return true
		}
	}
	return false
}

// Result is the outcome of a search.
type Result struct {
	Route    Route // nil when Found is false
	Found    bool
	Expanded int // positions taken off the frontier
}

// directions is the neighbour order: up, down, left, right. It only decides
// which of several equally short routes is returned.
var directions = [4]world.Pos{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// FindPath returns the shortest walkable route from start to end.
//
// The start tile's own kind is never checked. When start equals end the route
// is the single position. FindPath does not modify or retain the grid and is
// safe to call concurrently.
func FindPath(grid *world.Grid, start, end world.Pos) (Result, error) {
	if grid == nil || grid.Rows() <= 0 || grid.Cols() <= 0 {
		return Result{}, ErrEmptyGrid
	}
	if !grid.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, grid.Rows(), grid.Cols())
	}
	if !grid.InBounds(end) {
		return Result{}, fmt.Errorf("%w: end %v in %dx%d grid", ErrOutOfBounds, end, grid.Rows(), grid.Cols())
	}

	cols := grid.Cols()
	index := func(p world.Pos) int { return p.Row*cols + p.Col }

	// parent[i] is the index the cell was discovered from; -1 means unvisited.
	parent := make([]int, grid.Rows()*cols)
	for i := range parent {
		parent[i] = -1
	}
	parent[index(start)] = index(start)

	frontier := []world.Pos{start}
	expanded := 0
	for head := 0; head < len(frontier); head++ {
		pos := frontier[head]
		expanded++

		if pos == end {
			return Result{
				Route:    backtrack(parent, cols, index(start), index(end)),
				Found:    true,
				Expanded: expanded,
			}, nil
		}

		for _, d := range directions {
			next := pos.Add(d)
			if !grid.InBounds(next) || parent[index(next)] != -1 || !grid.At(next).IsWalkable() {
				continue
			}
			parent[index(next)] = index(pos)
			frontier = append(frontier, next)
		}
	}

	return Result{Expanded: expanded}, nil
}

// backtrack follows parent links from end to start and returns the route in
// walking order.
func backtrack(parent []int, cols, start, end int) Route {
	n := 1
	for i := end; i != start; i = parent[i] {
		n++
	}
	route := make(Route, n)
	for i, k := end, n-1; k >= 0; i, k = parent[i], k-1 {
		route[k] = world.Pos{Row: i / cols, Col: i % cols}
	}
	return route
}
