package interpolate

import (
	"github.com/robmorgan/fade/color"
	"github.com/robmorgan/fade/utils"
	"golang.org/x/exp/constraints"
)

// Number adapts a plain signed integer or float so it can be interpolated.
type Number[N constraints.Signed | constraints.Float] struct {
	V N
}

// numberDelta carries the difference between two Numbers in float64 so that
// narrow integer types do not wrap, e.g. int8 -100 to 100.
type numberDelta[N constraints.Signed | constraints.Float] struct {
	V float64
}

func (n Number[N]) Add(o Number[N]) Number[N] {
	return Number[N]{V: n.V + o.V}
}

func (n Number[N]) Sub(o Number[N]) numberDelta[N] {
	return numberDelta[N]{V: float64(n.V) - float64(o.V)}
}

// Scale multiplies by f. Integer results are truncated toward zero.
func (n Number[N]) Scale(f float64) Number[N] {
	return Number[N]{V: fromFloat[N](float64(n.V) * f)}
}

func (d numberDelta[N]) Scale(f float64) numberDelta[N] {
	return numberDelta[N]{V: d.V * f}
}

func (d numberDelta[N]) Offset(base Number[N]) numberDelta[N] {
	return numberDelta[N]{V: d.V + float64(base.V)}
}

func (d numberDelta[N]) Unsigned() Number[N] {
	return Number[N]{V: fromFloat[N](d.V)}
}

// fromFloat converts x to N. Integers are truncated toward zero and wrap like
// any other integer narrowing.
func fromFloat[N constraints.Signed | constraints.Float](x float64) N {
	half := 0.5
	if N(half) != 0 {
		return N(x)
	}
	return N(utils.TruncInt64(x))
}

// NumberInterpolator interpolates a plain number.
type NumberInterpolator[N constraints.Signed | constraints.Float] struct {
	*Interpolator[Number[N], numberDelta[N]]
}

// NewNumber creates an interpolator for a plain number settled at initial.
func NewNumber[N constraints.Signed | constraints.Float](initial N, curve Curve) NumberInterpolator[N] {
	return NumberInterpolator[N]{New[Number[N], numberDelta[N]](Number[N]{V: initial}, curve)}
}

// Get returns the current number.
func (n NumberInterpolator[N]) Get() N {
	return n.GetValue().V
}

// Set starts a transition to v lasting t time units.
func (n NumberInterpolator[N]) Set(v N, t uint32) {
	n.SetValue(Number[N]{V: v}, t)
}

// ColorInterpolator fades between RGB colors.
type ColorInterpolator = Interpolator[color.Color, color.SignedColor]

// NewColor creates a ColorInterpolator settled at initial.
func NewColor(initial color.Color, curve Curve) *ColorInterpolator {
	return New[color.Color, color.SignedColor](initial, curve)
}
