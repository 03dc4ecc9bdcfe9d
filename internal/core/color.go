package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ANSI returns the 256-color palette code for the color.
// ColorDefault returns an empty string (terminal default).
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorBrightRed:
		return "9"
	case ColorBrightGreen:
		return "10"
	case ColorBrightYellow:
		return "11"
	case ColorBrightBlue:
		return "12"
	case ColorBrightMagenta:
		return "13"
	case ColorBrightCyan:
		return "14"
	case ColorBrightWhite:
		return "15"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}

// RGB returns an approximate 24-bit value for non-terminal frontends.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed, ColorBrightRed:
		return 255, 0, 0
	case ColorGreen, ColorBrightGreen:
		return 0, 255, 0
	case ColorYellow, ColorBrightYellow:
		return 255, 255, 0
	case ColorBlue, ColorBrightBlue:
		return 0, 0, 255
	case ColorMagenta, ColorBrightMagenta:
		return 255, 0, 255
	case ColorCyan, ColorBrightCyan:
		return 0, 255, 255
	case ColorOrange:
		return 255, 165, 0
	case ColorGray:
		return 138, 138, 138
	default:
		return 255, 255, 255
	}
}
