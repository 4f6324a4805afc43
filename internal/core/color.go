package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightRed
	ColorBrightCyan
	ColorOrange
	ColorGray
)
