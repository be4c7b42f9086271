package world

import (
	"errors"
	"testing"
)

func TestTileKindIsWalkable(t *testing.T) {
	tests := []struct {
		kind     TileKind
		walkable bool
	}{
		{TileFloor, true},
		{TileTable, false},
		{TileObstacle, false},
		{TileDoor, true},
		{TileTarget, true},
	}

	for _, tt := range tests {
		if got := tt.kind.IsWalkable(); got != tt.walkable {
			t.Errorf("%v.IsWalkable() = %v, want %v", tt.kind, got, tt.walkable)
		}
	}
}

func TestTileKindGlyphRoundTrip(t *testing.T) {
	for _, k := range []TileKind{TileFloor, TileTable, TileObstacle, TileDoor, TileTarget} {
		got, ok := TileKindFromGlyph(k.Glyph())
		if !ok || got != k {
			t.Errorf("TileKindFromGlyph(%q) = %v, %v; want %v, true", k.Glyph(), got, ok, k)
		}
	}
	if _, ok := TileKindFromGlyph('x'); ok {
		t.Error("TileKindFromGlyph('x') should not match")
	}
}

func TestNewBuilderRejectsEmpty(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		if _, err := NewBuilder(dims[0], dims[1]); !errors.Is(err, ErrEmptyGrid) {
			t.Errorf("NewBuilder(%d, %d) error = %v, want ErrEmptyGrid", dims[0], dims[1], err)
		}
	}
}

func TestBuildIsImmutable(t *testing.T) {
	b, err := NewBuilder(2, 2)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	g := b.Build()
	b.Set(Pos{0, 0}, TileObstacle)

	if g.At(Pos{0, 0}) != TileFloor {
		t.Errorf("grid changed after Build: got %v, want floor", g.At(Pos{0, 0}))
	}
}

func TestGridBounds(t *testing.T) {
	b, _ := NewBuilder(2, 3)
	g := b.Build()

	valid := []Pos{{0, 0}, {1, 2}, {0, 2}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v) = false, want true", p)
		}
	}
	invalid := []Pos{{-1, 0}, {2, 0}, {0, 3}, {1, -1}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v) = true, want false", p)
		}
		if g.Walkable(p) {
			t.Errorf("Walkable(%v) = true, want false", p)
		}
	}
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid([]string{
		"#D#",
		"#.T",
		"#*#",
	}, nil)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}

	if g.Rows() != 3 || g.Cols() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", g.Rows(), g.Cols())
	}
	checks := map[Pos]TileKind{
		{0, 1}: TileDoor,
		{1, 1}: TileFloor,
		{1, 2}: TileTable,
		{2, 1}: TileTarget,
		{2, 2}: TileObstacle,
	}
	for p, want := range checks {
		if got := g.At(p); got != want {
			t.Errorf("At(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		err   error
	}{
		{"no rows", nil, ErrEmptyGrid},
		{"empty row", []string{""}, ErrEmptyGrid},
		{"ragged", []string{"..", "."}, ErrRaggedGrid},
		{"unknown glyph", []string{".x"}, ErrUnknownGlyph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseGrid(tt.lines, nil); !errors.Is(err, tt.err) {
				t.Errorf("ParseGrid(%q) error = %v, want %v", tt.lines, err, tt.err)
			}
		})
	}
}

func TestParseGridLegend(t *testing.T) {
	legend := map[rune]TileKind{' ': TileFloor, 'X': TileObstacle}
	g, err := ParseGrid([]string{" X"}, legend)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if g.At(Pos{0, 1}) != TileObstacle {
		t.Errorf("At(0,1) = %v, want obstacle", g.At(Pos{0, 1}))
	}
}

func TestRestaurantLayout(t *testing.T) {
	g := Restaurant()

	if g.Rows() != RestaurantSize || g.Cols() != RestaurantSize {
		t.Fatalf("size = %dx%d, want %dx%d", g.Rows(), g.Cols(), RestaurantSize, RestaurantSize)
	}

	checks := map[Pos]TileKind{
		{0, 0}:   TileObstacle,
		{1, 0}:   TileDoor,
		{2, 2}:   TileTable,
		{3, 3}:   TileTable,
		{5, 5}:   TileObstacle,
		{12, 12}: TileTarget,
		{13, 13}: TileTarget,
		{14, 7}:  TileObstacle,
	}
	for p, want := range checks {
		if got := g.At(p); got != want {
			t.Errorf("At(%v) = %v, want %v", p, got, want)
		}
	}

	if !g.Walkable(RestaurantStart) {
		t.Errorf("start %v is not walkable", RestaurantStart)
	}
	if !g.Walkable(RestaurantEnd) {
		t.Errorf("end %v is not walkable", RestaurantEnd)
	}
}

func TestPosAdjacent(t *testing.T) {
	p := Pos{2, 2}
	for _, q := range []Pos{{1, 2}, {3, 2}, {2, 1}, {2, 3}} {
		if !p.Adjacent(q) {
			t.Errorf("%v.Adjacent(%v) = false, want true", p, q)
		}
	}
	for _, q := range []Pos{{2, 2}, {1, 1}, {4, 2}} {
		if p.Adjacent(q) {
			t.Errorf("%v.Adjacent(%v) = true, want false", p, q)
		}
	}
}
