package cavegrid

import (
	"errors"
	"testing"
)

func TestNewIsOpen(t *testing.T) {
	g := New(5, 3)
	if g.Width() != 5 || g.Height() != 3 {
		t.Fatalf("expected 5x3, got %dx%d", g.Width(), g.Height())
	}
	if g.WallCount() != 0 {
		t.Errorf("expected no walls, got %d", g.WallCount())
	}
}

func TestNewNegativeDimensions(t *testing.T) {
	g := New(-2, 4)
	if g.Width() != 0 || g.Height() != 4 {
		t.Errorf("expected 0x4, got %dx%d", g.Width(), g.Height())
	}
}

func TestAtOutOfBoundsIsWall(t *testing.T) {
	g := New(2, 2)
	coords := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}}
	for _, c := range coords {
		if !g.IsWall(c[0], c[1]) {
			t.Errorf("expected (%d,%d) to read as wall", c[0], c[1])
		}
	}
	if g.IsWall(0, 0) {
		t.Error("expected in-bounds cell to be open")
	}
}

func TestSetNormalizesValue(t *testing.T) {
	g := New(2, 2)
	g.Set(1, 0, 7)
	if g.At(1, 0) != Wall {
		t.Errorf("expected Wall, got %d", g.At(1, 0))
	}
	g.Set(9, 9, Wall) // ignored
	if g.WallCount() != 1 {
		t.Errorf("expected 1 wall, got %d", g.WallCount())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := New(3, 3)
	c := g.Clone()
	c.Set(1, 1, Wall)
	if g.IsWall(1, 1) {
		t.Error("clone write leaked into source")
	}
	if g.Equal(c) {
		t.Error("expected grids to differ")
	}
}

func TestEqual(t *testing.T) {
	a := MustParse("#.", ".#")
	b := MustParse("#.", ".#")
	if !a.Equal(b) {
		t.Error("expected equal grids")
	}
	if a.Equal(New(2, 3)) {
		t.Error("expected different shapes to be unequal")
	}
	if a.Equal(nil) {
		t.Error("expected nil to be unequal")
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	rows := []string{
		"####",
		"#..#",
		"#.##",
	}
	g, err := Parse(rows...)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("expected 4x3, got %dx%d", g.Width(), g.Height())
	}
	// First row is the highest y.
	if !g.IsWall(1, 2) {
		t.Error("expected (1,2) to be wall")
	}
	if g.IsWall(1, 1) || g.IsWall(1, 0) {
		t.Error("expected (1,1) and (1,0) to be open")
	}
	want := "####\n#..#\n#.##\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"ragged", []string{"###", "##"}},
		{"bad glyph", []string{"#x#"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.rows...)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	g, err := Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if g.Width() != 0 || g.Height() != 0 {
		t.Errorf("expected empty grid, got %dx%d", g.Width(), g.Height())
	}
}
