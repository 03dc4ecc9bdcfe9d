package window

import "github.com/vovakirdan/grid-arcade/internal/core"

type glyphKind int

const (
	glyphBlank glyphKind = iota
	glyphBlock
	glyphShade
	glyphLine
	glyphText
	glyphOther // not drawable with the default font
)

// classify decides how a screen rune is drawn in the window.
func classify(r rune) glyphKind {
	switch {
	case r == ' ' || r == 0:
		return glyphBlank
	case r == '█':
		return glyphBlock
	case r == '▓' || r == '▒' || r == '░':
		return glyphShade
	case boxArms(r) != (arms{}):
		return glyphLine
	case r > ' ' && r < 0x7f:
		return glyphText
	default:
		return glyphOther
	}
}

// arms lists which edges of a cell a box-drawing character reaches.
type arms struct {
	left, right, up, down bool
}

func boxArms(r rune) arms {
	switch r {
	case '─':
		return arms{left: true, right: true}
	case '│':
		return arms{up: true, down: true}
	case '┌':
		return arms{right: true, down: true}
	case '┐':
		return arms{left: true, down: true}
	case '└':
		return arms{right: true, up: true}
	case '┘':
		return arms{left: true, up: true}
	}
	return arms{}
}

// cellColor returns the RGB used for a cell: palette colors map directly,
// the default color draws light gray.
func cellColor(c core.Color) (r, g, b uint8) {
	if c == core.ColorDefault {
		return 200, 200, 200
	}
	return c.RGB()
}
