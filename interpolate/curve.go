package interpolate

import (
	"fmt"
	"strings"

	"github.com/fogleman/ease"
)

// Curve selects the easing function that maps linear progress to an
// interpolation weight. Every curve maps 0 to 0 and 1 to 1.
type Curve int

const (
	// Linear uses the progress unchanged.
	Linear Curve = iota

	// Smooth is the smoothstep curve p²(3-2p).
	Smooth

	InOutQuad
	InOutCubic
	InOutSine
)

var curveNames = map[Curve]string{
	Linear:     "linear",
	Smooth:     "smooth",
	InOutQuad:  "in-out-quad",
	InOutCubic: "in-out-cubic",
	InOutSine:  "in-out-sine",
}

var curveFuncs = map[Curve]ease.Function{
	Linear:     ease.Linear,
	Smooth:     smoothstep,
	InOutQuad:  ease.InOutQuad,
	InOutCubic: ease.InOutCubic,
	InOutSine:  ease.InOutSine,
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// ParseCurve looks a curve up by name, e.g. "smooth".
func ParseCurve(name string) (Curve, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range curveNames {
		if n == name {
			return c, nil
		}
	}
	return Linear, fmt.Errorf("unknown curve %q", name)
}

func (c Curve) String() string {
	if n, ok := curveNames[c]; ok {
		return n
	}
	return fmt.Sprintf("curve(%d)", int(c))
}

// Weight maps progress p in [0,1] through the curve. Unknown curves fall back
// to Linear.
func (c Curve) Weight(p float64) float64 {
	fn, ok := curveFuncs[c]
	if !ok {
		fn = ease.Linear
	}
	return fn(p)
}

// UnmarshalText lets curves be read by name from config files.
func (c *Curve) UnmarshalText(text []byte) error {
	parsed, err := ParseCurve(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Curve) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
