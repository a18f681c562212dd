// Package color provides an 8-bit RGB value type that can be interpolated.
//
// Color holds unsigned channels, so the difference of two colors is carried by
// SignedColor, which can represent the negative deltas produced while fading
// a channel down. Arithmetic never fails: unsigned channels wrap on overflow
// and scaled values are truncated into the channel width.
package color

import (
	"fmt"

	"github.com/aybabtme/rgbterm"
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/robmorgan/fade/logger"
	"github.com/robmorgan/fade/utils"
	"github.com/sirupsen/logrus"
)

// Color is an RGB value with 8-bit channels.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// New creates a Color from its red, green and blue channels.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Unpack is the inverse of Pack.
func Unpack(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// FromHex parses a "#rrggbb" string.
func FromHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.WithStackTrace(fmt.Errorf("invalid color %q: %w", s, err))
	}
	return FromColorful(c), nil
}

// FromColorful converts a colorful.Color, clamping it into the RGB gamut first.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Pack returns the color as a 24-bit word (0xRRGGBB), the format accepted by
// addressable LED drivers.
func (c Color) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Colorful converts the color for use with go-colorful.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// TermString renders the hex value in its own color for 24-bit terminals.
func (c Color) TermString() string {
	return rgbterm.FgString(c.Hex(), c.R, c.G, c.B)
}

// Debug logs the channels and the packed value.
func (c Color) Debug() {
	logger.GetProjectLogger().WithFields(logrus.Fields{
		"r":      c.R,
		"g":      c.G,
		"b":      c.B,
		"packed": fmt.Sprintf("%06x", c.Pack()),
	}).Debug("color")
}

// Add sums each channel. Channels wrap on overflow.
func (c Color) Add(o Color) Color {
	return Color{
		R: c.R + o.R,
		G: c.G + o.G,
		B: c.B + o.B,
	}
}

// Sub returns the signed per-channel difference c - o.
func (c Color) Sub(o Color) SignedColor {
	return SignedColor{
		R: int16(c.R) - int16(o.R),
		G: int16(c.G) - int16(o.G),
		B: int16(c.B) - int16(o.B),
	}
}

// Scale multiplies each channel by f, truncating the result to 8 bits.
func (c Color) Scale(f float64) Color {
	return Color{
		R: uint8(scale(int64(c.R), f)),
		G: uint8(scale(int64(c.G), f)),
		B: uint8(scale(int64(c.B), f)),
	}
}

// scale truncates toward zero, saturating at the int64 bounds. Narrowing is
// left to the caller so that out of range products wrap.
func scale(v int64, f float64) int64 {
	return utils.TruncInt64(float64(v) * f)
}
