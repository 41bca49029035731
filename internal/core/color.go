package core

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an RGB color with a floating-point alpha in [0, 1].
// Frontends translate it to terminal styles or window pixels.
type Color struct {
	R, G, B uint8
	A       float64
}

// ErrBadColor is returned when a color string cannot be parsed.
var ErrBadColor = errors.New("core: bad color")

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// ParseHex parses "#rrggbb" or "rrggbb" into an opaque color.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Hex returns the "#rrggbb" form, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha returns c with alpha set to a, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.A = ClampF(a, 0, 1)
	return c
}

// NRGBA converts to a non-premultiplied image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(ClampF(c.A, 0, 1)*255 + 0.5)}
}
