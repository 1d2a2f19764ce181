package core

// Color is the foreground of a screen cell. Drivers own the mapping to
// real colors: ANSI 256 codes in the terminal, RGBA in the window.
type Color uint8

const (
	ColorDefault Color = iota

	// ANSI 16
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

	// Earth tones for cave rock
	ColorOrange
	ColorGray
	ColorBrown
	ColorDarkGray

	// NumColors is the number of defined colors.
	NumColors int = iota
)
