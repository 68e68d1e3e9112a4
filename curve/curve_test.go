package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waveforge/waveforge/units"
)

func TestSawFamily(t *testing.T) {
	testCases := []struct {
		desc  string
		curve Curve
		at    []units.Val
		want  []float64
	}{
		{"saw", Saw{}, []units.Val{0, 0.25, 0.5, 1}, []float64{-1, -0.5, 0, 1}},
		{"inv saw", InvSaw{}, []units.Val{0, 0.5, 1}, []float64{1, 0, -1}},
		{"pos saw", PosSaw{}, []units.Val{0, 0.5, 1}, []float64{0, 0.5, 1}},
		{"pos inv saw", PosInvSaw{}, []units.Val{0, 0.5, 1}, []float64{1, 0.5, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			for i, x := range tc.at {
				assert.InDelta(t, tc.want[i], tc.curve.Eval(x), 1e-12)
			}
		})
	}
}

func TestSinCos(t *testing.T) {
	assert.InDelta(t, 0, Sin{}.Eval(0), 1e-12)
	assert.InDelta(t, 1, Sin{}.Eval(0.25), 1e-12)
	assert.InDelta(t, -1, Sin{}.Eval(0.75), 1e-12)

	assert.InDelta(t, 1, Cos{}.Eval(0), 1e-12)
	assert.InDelta(t, -1, Cos{}.Eval(0.5), 1e-12)
}

func TestPulse(t *testing.T) {
	sq := Sq{}
	assert.Equal(t, -1.0, sq.Eval(0))
	assert.Equal(t, -1.0, sq.Eval(0.49))
	assert.Equal(t, 1.0, sq.Eval(0.5))
	assert.Equal(t, 1.0, sq.Eval(0.99))

	thin := NewPulse(0.1)
	assert.Equal(t, -1.0, thin.Eval(0.05))
	assert.Equal(t, 1.0, thin.Eval(0.1))
}

func TestSawTri(t *testing.T) {
	testCases := []struct {
		desc  string
		shape units.Val
		at    units.Val
		want  float64
	}{
		{"triangle start", units.ValHalf, 0, -1},
		{"triangle peak", units.ValHalf, 0.5, 1},
		{"triangle rising", units.ValHalf, 0.25, 0},
		{"triangle falling", units.ValHalf, 0.75, 0},
		{"saw shape", units.ValOne, 0.5, 0},
		{"inv saw shape", units.ValZero, 0.5, 0},
		{"peak offset", 0.25, 0.25, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.InDelta(t, tc.want, NewSawTri(tc.shape).Eval(tc.at), 1e-12)
		})
	}
}

// A peak within epsilon of either edge must fall back to the plateau
// instead of dividing by a vanishing segment.
func TestSawTriPlateau(t *testing.T) {
	assert.Equal(t, 1.0, NewSawTri(units.ValOne).Eval(1))
	assert.Equal(t, 1.0, NewSawTri(1e-9).Eval(0))
	assert.Equal(t, 1.0, NewSawTri(1-1e-9).Eval(units.ValOne))
}

func TestSawTriMatchesSaws(t *testing.T) {
	for _, x := range []units.Val{0, 0.1, 0.4, 0.7, 0.95} {
		assert.InDelta(t, Saw{}.Eval(x), NewSawTri(units.ValOne).Eval(x), 1e-6)
		assert.InDelta(t, InvSaw{}.Eval(x), NewSawTri(units.ValZero).Eval(x), 1e-6)
		assert.InDelta(t, Tri{}.Eval(x), NewSawTri(units.ValHalf).Eval(x), 1e-12)
	}
}

func TestMorph(t *testing.T) {
	m := NewMorph(Saw{}, InvSaw{}, units.ValZero)
	assert.InDelta(t, Saw{}.Eval(0.3), m.Eval(0.3), 1e-12)

	m.Amount = units.ValOne
	assert.InDelta(t, InvSaw{}.Eval(0.3), m.Eval(0.3), 1e-12)

	// Saw and inverse saw cancel exactly at the halfway blend.
	m.Amount = units.ValHalf
	for _, x := range []units.Val{0, 0.25, 0.5, 0.8} {
		assert.InDelta(t, 0, m.Eval(x), 1e-12)
	}

	assert.InDelta(t, 0.5, NewMorph(PosSaw{}, PosInvSaw{}, units.ValHalf).Eval(0.2), 1e-12)
}

func TestRescale(t *testing.T) {
	assert.Equal(t, 0.5, Pos(0))
	assert.Equal(t, 1.0, Pos(1))
	assert.Equal(t, -1.0, Sgn(0))
	assert.Equal(t, 0.0, Sgn(0.5))
}
