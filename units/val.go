package units

import (
	"fmt"
	"math"
	"math/rand"
)

// Val is a floating-point value in the unit interval [0, 1]. It is the phase
// input to curves and the position input to interpolation.
//
// The range invariant is the caller's responsibility on the hot paths; only
// NewVal checks it.
type Val float64

const (
	// ValZero is the zero phase.
	ValZero Val = 0

	// ValHalf is the halfway phase.
	ValHalf Val = 0.5

	// ValOne is the full phase.
	ValOne Val = 1
)

// NewVal builds a Val, panicking if the value lies outside [0, 1]. Misuse is
// a programmer error, caught at construction rather than during playback.
func NewVal(x float64) Val {
	if x < 0 || x > 1 {
		panic(fmt.Sprintf("units: value %v outside [0, 1]", x))
	}
	return Val(x)
}

// ValFract converts a non-negative value into a Val by taking its fractional
// part.
func ValFract(x float64) Val {
	_, frac := math.Modf(x)
	return Val(frac)
}

// RandVal draws a uniformly random phase in [0, 1).
func RandVal() Val {
	return Val(rand.Float64())
}

// AdvanceFreq advances the phase by one sample of a wave at the given
// frequency, wrapping around into [0, 1). This is the phase accumulator at
// the heart of every periodic generator.
func (v *Val) AdvanceFreq(freq Freq) {
	*v = ValFract(float64(*v) + freq.Samples())
}

// Float64 returns the inner value.
func (v Val) Float64() float64 {
	return float64(v)
}
