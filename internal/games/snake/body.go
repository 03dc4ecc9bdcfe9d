package snake

import "github.com/vovakirdan/grid-arcade/internal/core"

// Direction is a unit movement vector.
type Direction struct {
	X, Y int
}

// The four movement directions.
var (
	DirUp    = Direction{X: 0, Y: -1}
	DirDown  = Direction{X: 0, Y: 1}
	DirLeft  = Direction{X: -1, Y: 0}
	DirRight = Direction{X: 1, Y: 0}
)

// CanTurn reports whether the snake, travelling along d, may switch to to.
// Changes along the axis already being travelled are rejected, which rules
// out reversing straight into the neck.
func (d Direction) CanTurn(to Direction) bool {
	if d.X != 0 {
		return to.X == 0
	}
	return to.Y == 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Body is the snake, head first. Its capacity is fixed at creation
// (the number of cells in the arena), so growth never reallocates.
type Body struct {
	segs []core.Point
}

// NewBody creates a body with room for capacity segments.
// Segments beyond capacity are dropped.
func NewBody(capacity int, segs ...core.Point) *Body {
	b := &Body{segs: make([]core.Point, 0, capacity)}
	for _, s := range segs {
		if len(b.segs) == cap(b.segs) {
			break
		}
		b.segs = append(b.segs, s)
	}
	return b
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segs)
}

// Cap returns the maximum number of segments.
func (b *Body) Cap() int {
	return cap(b.segs)
}

// Full reports whether the body has reached its capacity.
func (b *Body) Full() bool {
	return len(b.segs) == cap(b.segs)
}

// Head returns the first segment.
func (b *Body) Head() core.Point {
	return b.segs[0]
}

// Segment returns segment i (0 is the head).
func (b *Body) Segment(i int) core.Point {
	return b.segs[i]
}

// Segments returns a copy of all segments, head first.
func (b *Body) Segments() []core.Point {
	out := make([]core.Point, len(b.segs))
	copy(out, b.segs)
	return out
}

// Advance moves the snake one cell: every segment takes its predecessor's
// position and the head steps by dir. It returns the tail position from
// before the move, which is where a new segment goes when the snake grows.
func (b *Body) Advance(dir Direction) core.Point {
	tail := b.segs[len(b.segs)-1]
	for i := len(b.segs) - 1; i > 0; i-- {
		b.segs[i] = b.segs[i-1]
	}
	b.segs[0] = b.segs[0].Add(core.Pt(dir.X, dir.Y))
	return tail
}

// Grow appends a segment at p. It returns false when the body is full.
func (b *Body) Grow(p core.Point) bool {
	if b.Full() {
		return false
	}
	b.segs = append(b.segs, p)
	return true
}

// HitsSelf reports whether the head shares a cell with any other segment.
func (b *Body) HitsSelf() bool {
	head := b.segs[0]
	for _, s := range b.segs[1:] {
		if s == head {
			return true
		}
	}
	return false
}

// Contains reports whether any segment occupies p.
func (b *Body) Contains(p core.Point) bool {
	for _, s := range b.segs {
		if s == p {
			return true
		}
	}
	return false
}
