// Package filter implements difference-equation filters: normalized
// coefficient sets, a Direct Form 1 evaluator, a signal wrapper, and the
// usual biquadratic EQ designs.
package filter

import (
	"math"
	"math/cmplx"

	"github.com/waveforge/waveforge/units"
)

// Coefficients of a difference equation
//
//	y[n] = b[0]x[n] + b[1]x[n-1] + ... + b[p]x[n-p]
//	               - a[1]y[n-1] - ... - a[q]y[n-q]
//
// in normalized form: a[0] is implicitly 1. Input holds the feedforward
// coefficients b, Feedback holds a[1..q].
type Coefficients struct {
	// Input holds the feedforward coefficients b.
	Input []float64

	// Feedback holds the feedback coefficients a[1..], with a[0] = 1
	// implicit.
	Feedback []float64
}

// Normalized builds coefficients that are already normalized, with the
// feedback slice starting at a[1].
func Normalized(input, feedback []float64) Coefficients {
	return Coefficients{Input: input, Feedback: feedback}
}

// FIR builds coefficients with no feedback terms.
func FIR(input ...float64) Coefficients {
	return Normalized(input, nil)
}

// Zero returns the filter that outputs nothing, no matter the input.
func Zero() Coefficients {
	return FIR()
}

// Gain returns the filter that only scales the signal's volume.
func Gain(vol units.Vol) Coefficients {
	return FIR(vol.Gain())
}

// Trivial returns the filter that passes the signal through unaltered.
func Trivial() Coefficients {
	return Gain(units.VolFull)
}

// SingleZero returns a first order zero with 0 dB max gain. This is a
// low-pass filter for a ≤ 0 and a high-pass filter for a ≥ 0; only the
// high-pass variants do much below very high frequencies.
func SingleZero(a float64) Coefficients {
	norm := 1 / (1 + math.Abs(a))
	return FIR(-norm, norm*a)
}

// SinglePole returns a first order pole with 0 dB max gain. This is a
// low-pass filter for a ≤ 0 and a high-pass filter for a ≥ 0; only the
// low-pass variants do much below very high frequencies.
func SinglePole(a float64) Coefficients {
	norm := 1 - math.Abs(a)
	return Normalized([]float64{norm}, []float64{norm * a})
}

// Response evaluates the filter's transfer function
//
//	H(z) = (b[0] + b[1]z⁻¹ + ...) / (1 + a[1]z⁻¹ + ...)
//
// at z = exp(τi·f). Its magnitude is the filter gain at that frequency,
// its argument the phase shift.
func (c Coefficients) Response(freq units.Freq) complex128 {
	zInv := cmplx.Exp(complex(0, -freq.Angular()))

	num := complex(0, 0)
	zk := complex(1, 0)
	for _, b := range c.Input {
		num += complex(b, 0) * zk
		zk *= zInv
	}

	den := complex(1, 0)
	zk = zInv
	for _, a := range c.Feedback {
		den += complex(a, 0) * zk
		zk *= zInv
	}

	return num / den
}

// GainAt returns the filter's gain at a frequency.
func (c Coefficients) GainAt(freq units.Freq) float64 {
	return cmplx.Abs(c.Response(freq))
}
