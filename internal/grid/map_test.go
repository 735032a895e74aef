package grid

import (
	"errors"
	"testing"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestParse(t *testing.T) {
	m, err := Parse(3, 2, "0 1"+" 25")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Width() != 3 || m.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d", m.Width(), m.Height())
	}

	tests := []struct {
		x, y int
		wall bool
		tex  int
	}{
		{0, 0, true, 0},
		{1, 0, false, 0},
		{2, 0, true, 1},
		{0, 1, false, 0},
		{1, 1, true, 2},
		{2, 1, true, 5},
	}
	for _, tt := range tests {
		c := m.Classify(tt.x, tt.y)
		if c.IsWall() != tt.wall {
			t.Errorf("(%d,%d): wall=%v, want %v", tt.x, tt.y, c.IsWall(), tt.wall)
			continue
		}
		if tt.wall && c.TextureID() != tt.tex {
			t.Errorf("(%d,%d): texture %d, want %d", tt.x, tt.y, c.TextureID(), tt.tex)
		}
	}
	if m.MaxTextureID() != 5 {
		t.Errorf("MaxTextureID: got %d, want 5", m.MaxTextureID())
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(4, 4, "0000"); !errors.Is(err, ErrSize) {
		t.Errorf("short cells: got %v, want ErrSize", err)
	}
	if _, err := Parse(0, 4, ""); err == nil {
		t.Error("zero width: expected error")
	}
	if _, err := Parse(2, 1, "0#"); err == nil {
		t.Error("invalid character: expected error")
	}
	if _, err := FromRows([]string{"00", "000"}); !errors.Is(err, ErrSize) {
		t.Errorf("ragged rows: got %v, want ErrSize", err)
	}
	if _, err := FromRows(nil); err == nil {
		t.Error("no rows: expected error")
	}
}

func TestEmptyMapHasNoTextures(t *testing.T) {
	m, err := FromRows([]string{"  ", "  "})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.MaxTextureID() != -1 {
		t.Errorf("MaxTextureID: got %d, want -1", m.MaxTextureID())
	}
	n := 0
	m.Walls(func(x, y int, c Cell) { n++ })
	if n != 0 {
		t.Errorf("Walls visited %d cells, want 0", n)
	}
}

func TestClassifyOutOfBoundsPanics(t *testing.T) {
	m, err := Parse(2, 2, "0  0")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	mustPanic(t, "x=-1", func() { m.Classify(-1, 0) })
	mustPanic(t, "x=w", func() { m.Classify(2, 0) })
	mustPanic(t, "y=h", func() { m.Classify(0, 2) })
}

func TestContains(t *testing.T) {
	m, _ := Parse(2, 2, "    ")
	if !m.Contains(0, 0) || !m.Contains(1.999, 1.999) {
		t.Error("Contains: inner points rejected")
	}
	if m.Contains(2, 0) || m.Contains(-0.001, 1) {
		t.Error("Contains: outer points accepted")
	}
}

func TestBorderGap(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		x, y   int
		hasGap bool
	}{
		{"closed", []string{"000", "0 0", "000"}, 0, 0, false},
		{"single wall", []string{"1"}, 0, 0, false},
		{"top gap", []string{"0 0", "0 0", "000"}, 1, 0, true},
		{"right gap", []string{"0000", "0   ", "0000"}, 3, 1, true},
		{"bottom corner", []string{"00", "0 "}, 1, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromRows(tt.rows)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			x, y, ok := m.BorderGap()
			if ok != tt.hasGap || (ok && (x != tt.x || y != tt.y)) {
				t.Errorf("got (%d, %d, %v), want (%d, %d, %v)", x, y, ok, tt.x, tt.y, tt.hasGap)
			}
		})
	}
}
