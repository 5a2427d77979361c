package core

// Color is the palette slot of a screen cell. The platform decides how each
// slot looks on the terminal.
type Color uint8

const (
	ColorDefault       Color = iota
	ColorGray                // footer and hints text
	ColorBrightGreen         // solved banner
	ColorBrightMagenta       // title
	ColorBrightWhite         // cursor outline
	ColorBrightYellow        // hint marker, paused banner
	ColorPink                // lit cell core
	ColorHotPink             // lit cell rim
	ColorLavender            // unlit cell face
	ColorPurple              // unlit cell rim
)
