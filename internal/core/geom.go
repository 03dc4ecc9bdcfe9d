// Package core holds the types shared by games and frontends: grid
// coordinates, the character screen, input actions and runtime state.
// It imports nothing outside the standard library.
package core

// Point is a cell coordinate; Y grows downward.
type Point struct {
	X, Y int
}

// Pt builds a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// In reports whether p is a cell of a width x height grid with its
// origin at (0, 0).
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
}

// Rect is a screen area in cells. Right and Bottom are exclusive.
type Rect struct {
	X, Y, W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }
