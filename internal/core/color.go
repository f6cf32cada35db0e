package core

import "fmt"

// Color is an opaque 24-bit RGB value. Game logic never inspects the
// components; they only matter to the renderer.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as a "#rrggbb" string for terminal styling.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Convenience colors for HUD and overlay text.
var (
	ColorWhite  = RGB(0xee, 0xee, 0xee)
	ColorGray   = RGB(0x6c, 0x6c, 0x6c)
	ColorYellow = RGB(0xfc, 0xe0, 0x3c)
	ColorRed    = RGB(0xfc, 0x3c, 0x3c)
	ColorCyan   = RGB(0x3c, 0xd0, 0xfc)
	ColorGreen  = RGB(0x3c, 0xfc, 0x6c)
)
