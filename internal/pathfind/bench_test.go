package pathfind_test

import (
	"testing"

	"github.com/samdwyer/pixelrestaurant/internal/pathfind"
	"github.com/samdwyer/pixelrestaurant/internal/world"
)

func BenchmarkFindPath_Restaurant(b *testing.B) {
	g := world.Restaurant()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.FindPath(g, world.RestaurantStart, world.RestaurantEnd)
	}
}

func BenchmarkFindPath_OpenGrid(b *testing.B) {
	builder, err := world.NewBuilder(200, 200)
	if err != nil {
		b.Fatal(err)
	}
	g := builder.Build()
	start, end := world.Pos{Row: 0, Col: 0}, world.Pos{Row: 199, Col: 199}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.FindPath(g, start, end)
	}
}
