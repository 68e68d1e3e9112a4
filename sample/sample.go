// Package sample defines the per-frame payload types flowing through the
// signal graph: Mono and Stereo audio frames and Env control frames, together
// with the generic arithmetic shared by all of them.
//
// Every sample type is a plain array of float64 with one entry per channel.
// This layout is load-bearing: buffers of samples may be reinterpreted as
// flat float64 slices (see the buffer package), so no sample type may carry
// any other field.
package sample

import "math/rand"

// Mono is a single-channel audio frame.
type Mono [1]float64

// Stereo is a two-channel audio frame, left then right.
type Stereo [2]float64

// Env is a single-channel control frame. It has the same shape as Mono but
// is deliberately a distinct type: control data is not audio and cannot be
// written out as such.
type Env [1]float64

// Sample is the constraint satisfied by every frame type.
type Sample interface {
	Mono | Stereo | Env
}

// Audio is the constraint satisfied by frame types that can be written out
// as audio. Env is excluded.
type Audio interface {
	Mono | Stereo
}

// Channels returns the channel count of a sample type.
func Channels[S Sample]() int {
	var z S
	return len(z)
}

// Zero returns the all-zeros sample.
func Zero[S Sample]() S {
	var z S
	return z
}

// FromVal builds a sample with every channel set to x.
func FromVal[S Sample](x float64) S {
	var s S
	for i := 0; i < len(s); i++ {
		s[i] = x
	}
	return s
}

// Add returns the channel-wise sum of two samples.
func Add[S Sample](a, b S) S {
	for i := 0; i < len(a); i++ {
		a[i] += b[i]
	}
	return a
}

// Sub returns the channel-wise difference of two samples.
func Sub[S Sample](a, b S) S {
	for i := 0; i < len(a); i++ {
		a[i] -= b[i]
	}
	return a
}

// Neg returns the channel-wise negation of a sample.
func Neg[S Sample](s S) S {
	for i := 0; i < len(s); i++ {
		s[i] = -s[i]
	}
	return s
}

// Scale multiplies every channel by a factor.
func Scale[S Sample](s S, f float64) S {
	for i := 0; i < len(s); i++ {
		s[i] *= f
	}
	return s
}

// Mul returns the channel-wise product of two samples.
func Mul[S Sample](a, b S) S {
	for i := 0; i < len(a); i++ {
		a[i] *= b[i]
	}
	return a
}

// Sum returns the sum of all channels.
func Sum[S Sample](s S) float64 {
	var total float64
	for i := 0; i < len(s); i++ {
		total += s[i]
	}
	return total
}

// Map applies a function to every channel.
func Map[S Sample](s S, f func(float64) float64) S {
	for i := 0; i < len(s); i++ {
		s[i] = f(s[i])
	}
	return s
}

// Rand draws a sample with every channel independent and uniform in [-1, 1].
func Rand[S Sample]() S {
	var s S
	for i := 0; i < len(s); i++ {
		s[i] = 2*rand.Float64() - 1
	}
	return s
}

// Duplicate copies the mono channel into both stereo channels.
func (m Mono) Duplicate() Stereo {
	return Stereo{m[0], m[0]}
}

// Env reinterprets the audio frame as a control frame.
func (m Mono) Env() Env {
	return Env(m)
}

// Flip swaps the left and right channels.
func (s Stereo) Flip() Stereo {
	return Stereo{s[1], s[0]}
}

// Mono reinterprets the control frame as an audio frame.
func (e Env) Mono() Mono {
	return Mono(e)
}
