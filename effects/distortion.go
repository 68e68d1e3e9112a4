package effects

import (
	"math"

	"github.com/waveforge/waveforge/curve"
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
)

// InfClip maps every positive value to 1 and every negative value to -1,
// turning any signal into a square-ish wave.
func InfClip(x float64) float64 {
	if math.Signbit(x) {
		return -1
	}
	return 1
}

// Clip clamps values to [-threshold, threshold] and renormalizes to
// [-1, 1].
func Clip(threshold float64) func(float64) float64 {
	return func(x float64) float64 {
		return math.Max(-threshold, math.Min(threshold, x)) / threshold
	}
}

// Atan applies tan⁻¹(shape·x) and renormalizes to [-1, 1]. Shapes above 1
// give a soft saturation.
func Atan(shape float64) func(float64) float64 {
	return func(x float64) float64 {
		return math.Atan(shape*x) / (math.Pi / 2)
	}
}

// Pow raises values to the given exponent. Even exponents fold the signal
// into [0, 1], so the result is rescaled back to [-1, 1].
func Pow(exponent int) func(float64) float64 {
	return func(x float64) float64 {
		res := math.Pow(x, float64(exponent))
		if exponent%2 == 0 {
			return curve.Sgn(res)
		}
		return res
	}
}

// NewInfClip applies infinite clipping distortion to a signal.
func NewInfClip[S sample.Sample](sgn signal.Mut[S]) *signal.MapSgn[S, S] {
	return signal.NewPointwise(sgn, InfClip)
}

// NewClip applies clipping distortion at the given threshold.
func NewClip[S sample.Sample](sgn signal.Mut[S], threshold float64) *signal.MapSgn[S, S] {
	return signal.NewPointwise(sgn, Clip(threshold))
}

// NewAtan applies arctangent distortion with the given shape.
func NewAtan[S sample.Sample](sgn signal.Mut[S], shape float64) *signal.MapSgn[S, S] {
	return signal.NewPointwise(sgn, Atan(shape))
}

// NewPow applies power distortion with the given exponent.
func NewPow[S sample.Sample](sgn signal.Mut[S], exponent int) *signal.MapSgn[S, S] {
	return signal.NewPointwise(sgn, Pow(exponent))
}

// NewCubic applies cubic distortion, a gentle symmetric saturation.
func NewCubic[S sample.Sample](sgn signal.Mut[S]) *signal.MapSgn[S, S] {
	return NewPow(sgn, 3)
}
