package core

// Color represents a foreground color for a board cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for tile rendering.
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
	ColorBrightWhite
	ColorOrange
	ColorGray
)
