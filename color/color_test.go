package color

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint32(0x123456), New(18, 52, 86).Pack())
	require.Equal(t, uint32(0xFFFFFF), New(255, 255, 255).Pack())
	require.Equal(t, uint32(0), Color{}.Pack())
	require.Equal(t, New(18, 52, 86), Unpack(0x123456))

	// bits above the 24-bit word are ignored
	require.Equal(t, New(1, 2, 3), Unpack(0xFF010203))
}

func TestAddWraps(t *testing.T) {
	t.Parallel()

	sum := New(250, 0, 128).Add(New(10, 7, 128))
	assert.Equal(t, uint8(4), sum.R)
	assert.Equal(t, uint8(7), sum.G)
	assert.Equal(t, uint8(0), sum.B)
}

func TestSubIsSigned(t *testing.T) {
	t.Parallel()

	delta := New(10, 10, 10).Sub(New(15, 5, 20))
	require.Equal(t, SignedColor{R: -5, G: 5, B: -10}, delta)
	require.Equal(t, New(5, 5, 10), delta.Unsigned())

	// full 8-bit range fits without wrapping
	require.Equal(t, SignedColor{R: -255, G: 255, B: 0}, New(0, 255, 9).Sub(New(255, 0, 9)))
}

func TestScale(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in       Color
		f        float64
		expected Color
	}{
		{New(100, 50, 3), 0.5, New(50, 25, 1)},
		{New(100, 50, 3), 1.0, New(100, 50, 3)},
		{New(100, 50, 3), 0, New(0, 0, 0)},
		// 200 * 1.5 = 300 truncates to 8 bits
		{New(200, 0, 0), 1.5, New(44, 0, 0)},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, testCase.in.Scale(testCase.f), "%v * %v", testCase.in, testCase.f)
	}
}

func TestSignedArithmetic(t *testing.T) {
	t.Parallel()

	s := SignedColor{R: -100, G: 40, B: 0}
	require.Equal(t, SignedColor{R: -50, G: 20, B: 0}, s.Scale(0.5))
	require.Equal(t, SignedColor{R: -33, G: 13, B: 0}, s.Scale(1.0/3.0))
	require.Equal(t, SignedColor{R: 0, G: 50, B: 10}, s.Offset(New(100, 10, 10)))
	require.Equal(t, SignedColor{R: -90, G: 20, B: 0}, s.Add(SignedColor{R: 10, G: -20}))
	require.Equal(t, SignedColor{R: -110, G: 60, B: 0}, s.Sub(SignedColor{R: 10, G: -20}))
	require.Equal(t, SignedColor{R: -110, G: 20, B: -5}, s.SubColor(New(10, 20, 5)))
}

func TestUnsignedTruncates(t *testing.T) {
	t.Parallel()

	// 300 does not fit in a channel and wraps to 44
	require.Equal(t, New(44, 0, 255), SignedColor{R: -300, G: 0, B: 255}.Unsigned())
}

func TestHex(t *testing.T) {
	t.Parallel()

	c, err := FromHex("#123456")
	require.NoError(t, err)
	require.Equal(t, New(0x12, 0x34, 0x56), c)
	require.Equal(t, "#123456", c.Hex())

	_, err = FromHex("not-a-color")
	require.Error(t, err)
}

func TestColorful(t *testing.T) {
	t.Parallel()

	c := New(255, 128, 0)
	require.Equal(t, c, FromColorful(c.Colorful()))

	// out of gamut values are clamped rather than wrapped
	require.Equal(t, New(255, 0, 0), FromColorful(colorful.Color{R: 1.4, G: -0.2, B: 0}))
}

func TestStrings(t *testing.T) {
	t.Parallel()

	c := New(1, 2, 3)
	assert.Equal(t, "rgb(1, 2, 3)", c.String())
	assert.Contains(t, c.TermString(), "#010203")
}

func TestDebug(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { New(1, 2, 3).Debug() })
}

func TestScaleIsTotal(t *testing.T) {
	t.Parallel()

	// non-finite factors never trap
	require.Equal(t, Color{}, New(10, 20, 30).Scale(math.NaN()))
	require.Equal(t, SignedColor{}, SignedColor{R: -4, G: 4}.Scale(math.NaN()))
	require.NotPanics(t, func() {
		New(10, 0, 30).Scale(math.Inf(1))
		New(10, 0, 30).Scale(1e300)
		SignedColor{R: -4, G: 4}.Scale(math.Inf(-1))
	})

	// zero channels stay zero whatever the factor
	require.Equal(t, uint8(0), New(10, 0, 30).Scale(1e300).G)
}
