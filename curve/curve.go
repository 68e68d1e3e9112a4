// Package curve provides the plain-curve catalogue: stateless waveform
// shapes evaluated at a phase in [0, 1].
//
// Curves output values in [-1, 1] unless noted otherwise; the positive saw
// variants output [0, 1]. A curve carries no state of its own, so a single
// value can back any number of oscillators.
package curve

import (
	"math"

	"github.com/waveforge/waveforge/units"
)

// Curve is a stateless map from a phase in [0, 1] to an amplitude.
// Oscillators in the gen package accept any Curve, so new waveforms plug in
// without touching the generator code.
type Curve interface {
	Eval(x units.Val) float64
}

// Pos rescales a value in [-1, 1] to [0, 1].
func Pos(x float64) float64 {
	return (x + 1) / 2
}

// Sgn rescales a value in [0, 1] to [-1, 1].
func Sgn(x float64) float64 {
	return 2*x - 1
}

// Saw is a left-to-right saw wave from -1 to 1.
type Saw struct{}

func (Saw) Eval(x units.Val) float64 {
	return Sgn(x.Float64())
}

// InvSaw is a right-to-left saw wave from 1 to -1.
type InvSaw struct{}

func (InvSaw) Eval(x units.Val) float64 {
	return -Sgn(x.Float64())
}

// PosSaw is a left-to-right saw wave from 0 to 1.
type PosSaw struct{}

func (PosSaw) Eval(x units.Val) float64 {
	return x.Float64()
}

// PosInvSaw is a right-to-left saw wave from 1 to 0.
type PosInvSaw struct{}

func (PosInvSaw) Eval(x units.Val) float64 {
	return 1 - x.Float64()
}

// Sin is a sine wave.
type Sin struct{}

func (Sin) Eval(x units.Val) float64 {
	return math.Sin(x.Float64() * 2 * math.Pi)
}

// Cos is a cosine wave.
type Cos struct{}

func (Cos) Eval(x units.Val) float64 {
	return math.Cos(x.Float64() * 2 * math.Pi)
}

// pulse returns -1 if x < shape and 1 otherwise.
func pulse(x, shape float64) float64 {
	if x < shape {
		return -1
	}
	return 1
}

// Sq is a square wave.
type Sq struct{}

func (Sq) Eval(x units.Val) float64 {
	return pulse(x.Float64(), 0.5)
}

// Pulse is a pulse wave whose duty cycle is set by Shape in [0, 1].
// Shape 0.5 gives a square wave.
type Pulse struct {
	Shape float64
}

// NewPulse builds a pulse wave with the given duty shape.
func NewPulse(shape float64) Pulse {
	return Pulse{Shape: shape}
}

func (p Pulse) Eval(x units.Val) float64 {
	return pulse(x.Float64(), p.Shape)
}

// sawTriEps guards the divisions in sawTri against a peak at exactly 0 or 1.
const sawTriEps = 1e-7

// sawTri interpolates linearly from -1 up to 1 as x goes from 0 to shape,
// then back down to -1 as x goes from shape to 1. A shape within sawTriEps
// of either edge collapses the rising or falling segment into a plateau at
// 1 to avoid the division blowing up.
func sawTri(x float64, shape units.Val) float64 {
	s := shape.Float64()
	if x < s {
		if s < sawTriEps {
			return 1
		}
		return Sgn(x / s)
	}
	if 1-s < sawTriEps {
		return 1
	}
	return Sgn((1 - x) / (1 - s))
}

// Tri is a symmetric triangle wave.
type Tri struct{}

func (Tri) Eval(x units.Val) float64 {
	return sawTri(x.Float64(), units.ValHalf)
}

// SawTri morphs between a saw and a triangle: Shape is the x-coordinate of
// the peak, so 1 gives a saw, 0.5 a triangle, and 0 an inverse saw.
type SawTri struct {
	Shape units.Val
}

// NewSawTri builds a saw-triangle wave peaking at the given phase.
func NewSawTri(shape units.Val) SawTri {
	return SawTri{Shape: shape}
}

func (st SawTri) Eval(x units.Val) float64 {
	return sawTri(x.Float64(), st.Shape)
}

// Morph blends two curves linearly: Amount 0 plays only Fst, 1 only Snd.
// Watch for phase cancellation when blending unrelated waveforms.
type Morph[C, D Curve] struct {
	Fst    C
	Snd    D
	Amount units.Val
}

// NewMorph blends two curves at the given amount.
func NewMorph[C, D Curve](fst C, snd D, amount units.Val) *Morph[C, D] {
	return &Morph[C, D]{Fst: fst, Snd: snd, Amount: amount}
}

func (m *Morph[C, D]) Eval(x units.Val) float64 {
	fst := m.Fst.Eval(x)
	return fst + (m.Snd.Eval(x)-fst)*m.Amount.Float64()
}
