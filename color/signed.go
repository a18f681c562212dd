package color

import "github.com/robmorgan/fade/utils"

// SignedColor carries per-channel deltas between two colors. It is only used
// as the result of Color.Sub and as an accumulator before converting back to a
// Color with Unsigned.
type SignedColor struct {
	R int16
	G int16
	B int16
}

// Unsigned converts back to a Color by taking the absolute value of every
// channel and truncating it to 8 bits.
func (s SignedColor) Unsigned() Color {
	return Color{
		R: uint8(utils.Abs(s.R)),
		G: uint8(utils.Abs(s.G)),
		B: uint8(utils.Abs(s.B)),
	}
}

func (s SignedColor) Add(o SignedColor) SignedColor {
	return SignedColor{
		R: s.R + o.R,
		G: s.G + o.G,
		B: s.B + o.B,
	}
}

// Offset adds an unsigned color to the delta.
func (s SignedColor) Offset(c Color) SignedColor {
	return SignedColor{
		R: s.R + int16(c.R),
		G: s.G + int16(c.G),
		B: s.B + int16(c.B),
	}
}

func (s SignedColor) Sub(o SignedColor) SignedColor {
	return SignedColor{
		R: s.R - o.R,
		G: s.G - o.G,
		B: s.B - o.B,
	}
}

func (s SignedColor) SubColor(c Color) SignedColor {
	return SignedColor{
		R: s.R - int16(c.R),
		G: s.G - int16(c.G),
		B: s.B - int16(c.B),
	}
}

// Scale multiplies each channel by f, truncating the result to 16 bits.
func (s SignedColor) Scale(f float64) SignedColor {
	return SignedColor{
		R: int16(scale(int64(s.R), f)),
		G: int16(scale(int64(s.G), f)),
		B: int16(scale(int64(s.B), f)),
	}
}
