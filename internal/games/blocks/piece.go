package blocks

import "github.com/vovakirdan/grid-arcade/internal/core"

// Shape identifies one of the seven tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeZ
	ShapeS
	ShapeT
	ShapeL
	ShapeJ
	ShapeO
	shapeCount
)

// shapeCodes lays each tetromino out in a 2-wide, 4-tall box.
// Code n maps to column n%2 and row n/2.
var shapeCodes = [shapeCount][4]int{
	ShapeI: {1, 3, 5, 7},
	ShapeZ: {2, 4, 5, 7},
	ShapeS: {3, 5, 4, 6},
	ShapeT: {3, 5, 4, 7},
	ShapeL: {2, 3, 5, 7},
	ShapeJ: {3, 5, 7, 6},
	ShapeO: {2, 3, 4, 5},
}

// String returns the conventional letter for the shape.
func (s Shape) String() string {
	if s < 0 || s >= shapeCount {
		return "?"
	}
	return string("IZSTLJO"[s])
}

// NumColors is the number of distinct piece colors (indices 1..NumColors).
const NumColors = 7

// Piece is a falling tetromino. It is a value: moves produce new pieces.
// Cells[1] is the rotation pivot.
type Piece struct {
	Shape Shape
	Color uint8
	Cells [4]core.Point
}

// Spawn places a new piece of the given shape at the top-center of a field
// of the given width.
func Spawn(shape Shape, color uint8, fieldWidth int) Piece {
	p := Piece{Shape: shape, Color: color}
	for i, code := range shapeCodes[shape] {
		p.Cells[i] = core.Pt(code%2+fieldWidth/2-1, code/2)
	}
	return p
}

// Translate returns the piece moved by (dx, dy).
func (p Piece) Translate(dx, dy int) Piece {
	d := core.Pt(dx, dy)
	for i := range p.Cells {
		p.Cells[i] = p.Cells[i].Add(d)
	}
	return p
}

// Rotate returns the piece turned 90 degrees around its pivot cell,
// using integer swap-and-negate on the offsets from the pivot.
func (p Piece) Rotate() Piece {
	pivot := p.Cells[1]
	for i, c := range p.Cells {
		off := c.Sub(pivot)
		p.Cells[i] = core.Pt(pivot.X-off.Y, pivot.Y+off.X)
	}
	return p
}

// Valid reports whether every cell is within the horizontal bounds, above
// the bottom edge, and not on an occupied grid cell. Cells above the top
// edge are allowed so freshly spawned pieces can poke out of the field.
func Valid(p Piece, g *Grid) bool {
	for _, c := range p.Cells {
		if c.X < 0 || c.X >= g.Width() || c.Y >= g.Height() {
			return false
		}
		if c.Y >= 0 && g.Occupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// TryMove applies move to p and returns the result if it is valid on g.
// Otherwise it returns p unchanged and false.
func TryMove(p Piece, g *Grid, move func(Piece) Piece) (Piece, bool) {
	next := move(p)
	if !Valid(next, g) {
		return p, false
	}
	return next, true
}

// Moves usable with TryMove.
var (
	MoveLeft  = func(p Piece) Piece { return p.Translate(-1, 0) }
	MoveRight = func(p Piece) Piece { return p.Translate(1, 0) }
	MoveDown  = func(p Piece) Piece { return p.Translate(0, 1) }
	RotateCW  = func(p Piece) Piece { return p.Rotate() }
)

// colorFor maps a piece color index to a screen color.
func colorFor(index uint8) core.Color {
	switch index {
	case 1:
		return core.ColorCyan
	case 2:
		return core.ColorRed
	case 3:
		return core.ColorGreen
	case 4:
		return core.ColorYellow
	case 5:
		return core.ColorOrange
	case 6:
		return core.ColorBlue
	case 7:
		return core.ColorMagenta
	default:
		return core.ColorDefault
	}
}
