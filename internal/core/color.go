package core

// Color is the foreground of a screen cell. The platform layer picks the
// terminal color for each value.
type Color uint8

// Colors used by the game's sprites and text.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightGreen
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray

	// NumColors is the size of the palette.
	NumColors
)
