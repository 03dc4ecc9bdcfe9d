package blocks

import "github.com/vovakirdan/grid-arcade/internal/core"

// Grid is the fixed-size playfield. Each cell holds a color index; 0 is empty.
// Rows are indexed top to bottom.
type Grid struct {
	width  int
	height int
	rows   [][]uint8
}

// NewGrid allocates an empty width x height grid.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.rows = make([][]uint8, height)
	for y := range g.rows {
		g.rows[y] = make([]uint8, width)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// At returns the color index at (x, y), or 0 outside the grid.
func (g *Grid) At(x, y int) uint8 {
	if !core.Pt(x, y).In(g.width, g.height) {
		return 0
	}
	return g.rows[y][x]
}

// Set writes a color index. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, color uint8) {
	if !core.Pt(x, y).In(g.width, g.height) {
		return
	}
	g.rows[y][x] = color
}

// Occupied reports whether the in-bounds cell (x, y) holds a block.
func (g *Grid) Occupied(x, y int) bool {
	return g.At(x, y) != 0
}

// Filled counts occupied cells.
func (g *Grid) Filled() int {
	n := 0
	for _, row := range g.rows {
		for _, c := range row {
			if c != 0 {
				n++
			}
		}
	}
	return n
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.height {
		return false
	}
	for _, c := range g.rows[y] {
		if c == 0 {
			return false
		}
	}
	return true
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for _, row := range g.rows {
		clear(row)
	}
}

// Lock writes the piece's cells into the grid with the piece's color.
// Cells above the top edge are dropped.
func (g *Grid) Lock(p Piece) {
	for _, c := range p.Cells {
		g.Set(c.X, c.Y, p.Color)
	}
}

// ClearRows removes every full row and returns how many were removed.
// Rows are scanned bottom to top; when a row is removed everything above
// shifts down by one and the same index is scanned again, so a stack of
// adjacent full rows is cleared in a single pass.
func (g *Grid) ClearRows() int {
	cleared := 0
	for y := g.height - 1; y >= 0; y-- {
		if !g.RowFull(y) {
			continue
		}
		for k := y; k > 0; k-- {
			copy(g.rows[k], g.rows[k-1])
		}
		clear(g.rows[0])
		cleared++
		y++ // rescan the row that just moved into place
	}
	return cleared
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	for y, row := range g.rows {
		copy(c.rows[y], row)
	}
	return c
}
