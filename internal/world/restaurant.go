package world

// RestaurantSize is the side length of the default dining room.
const RestaurantSize = 15

// Default endpoints of the waiter's walk: just inside the door, and the floor
// tile next to the target table.
var (
	RestaurantStart = Pos{Row: 1, Col: 1}
	RestaurantEnd   = Pos{Row: RestaurantSize - 3, Col: RestaurantSize - 4}
)

// tableCorners are the top-left corners of the 2x2 dining tables. The slot at
// (10,10) is left free for the target table.
var tableCorners = []Pos{
	{2, 2}, {2, 6}, {2, 10},
	{6, 2}, {6, 6}, {6, 10},
	{10, 2}, {10, 6},
}

// spills are single-tile obstacles: other servers and spilled drinks.
var spills = []Pos{{5, 5}, {5, 6}, {9, 8}, {4, 12}}

// Restaurant builds the default dining room.
func Restaurant() *Grid {
	const n = RestaurantSize
	b, err := NewBuilder(n, n)
	if err != nil {
		panic(err)
	}

	b.Border(TileObstacle)
	b.Set(Pos{Row: 1, Col: 0}, TileDoor)

	// Target table sits against the bottom-right walls
	b.FillRect(Rect{Row: n - 3, Col: n - 3, Rows: 2, Cols: 2}, TileTarget)

	for _, c := range tableCorners {
		b.FillRect(Rect{Row: c.Row, Col: c.Col, Rows: 2, Cols: 2}, TileTable)
	}
	for _, p := range spills {
		b.Set(p, TileObstacle)
	}

	return b.Build()
}
