package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSize is returned when the cell string does not fill the grid exactly.
var ErrSize = errors.New("grid: cell count does not match dimensions")

// Cell is the classification of one grid cell: Empty or a wall texture id.
type Cell int

// Empty marks a passable cell.
const Empty Cell = -1

// IsWall reports whether the cell blocks rays.
func (c Cell) IsWall() bool { return c >= 0 }

// TextureID returns the wall's texture id. Only meaningful for walls.
func (c Cell) TextureID() int { return int(c) }

// Map is an immutable W×H grid of cells, row-major.
type Map struct {
	width  int
	height int
	cells  []Cell
	maxTex int
}

// Parse builds a map from its character encoding. A space is empty; any
// other character is a wall whose texture id is ch - '0'.
func Parse(width, height int, cells string) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid: invalid dimensions %dx%d", width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for %dx%d", ErrSize, len(cells), width, height)
	}

	m := &Map{
		width:  width,
		height: height,
		cells:  make([]Cell, len(cells)),
		maxTex: -1,
	}
	for i := 0; i < len(cells); i++ {
		ch := cells[i]
		if ch == ' ' {
			m.cells[i] = Empty
			continue
		}
		if ch < '0' {
			return nil, fmt.Errorf("grid: invalid cell %q at (%d, %d)", ch, i%width, i/width)
		}
		id := int(ch - '0')
		m.cells[i] = Cell(id)
		if id > m.maxTex {
			m.maxTex = id
		}
	}
	return m, nil
}

// FromRows parses a map given as equal-length rows, top row first.
func FromRows(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid: no rows")
	}
	w := len(rows[0])
	for i, r := range rows {
		if len(r) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrSize, i, len(r), w)
		}
	}
	return Parse(w, len(rows), strings.Join(rows, ""))
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// MaxTextureID returns the largest wall texture id, or -1 if the map has no walls.
func (m *Map) MaxTextureID() int { return m.maxTex }

// Classify returns the cell at (x, y). Coordinates outside the grid are a
// caller bug and panic.
func (m *Map) Classify(x, y int) Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		panic(fmt.Sprintf("grid: cell (%d, %d) outside %dx%d map", x, y, m.width, m.height))
	}
	return m.cells[x+y*m.width]
}

// Contains reports whether the continuous point (x, y) lies on the grid.
func (m *Map) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(m.width) && y < float64(m.height)
}

// BorderGap returns the first non-wall cell on the map's outer ring, or
// ok=false when the ring is solid. A ray cast from inside a solid ring
// always stops before leaving the grid.
func (m *Map) BorderGap() (x, y int, ok bool) {
	for j := 0; j < m.height; j++ {
		for i := 0; i < m.width; i++ {
			if j != 0 && j != m.height-1 && i != 0 && i != m.width-1 {
				continue
			}
			if !m.cells[i+j*m.width].IsWall() {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Walls calls fn for every wall cell in row-major order.
func (m *Map) Walls(fn func(x, y int, c Cell)) {
	for j := 0; j < m.height; j++ {
		for i := 0; i < m.width; i++ {
			c := m.cells[i+j*m.width]
			if c.IsWall() {
				fn(i, j, c)
			}
		}
	}
}
