package buffer

import (
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
	"github.com/waveforge/waveforge/units"
)

// Interp is a small window of consecutive samples paired with a
// reconstruction function that produces a sample at a fractional position t
// in [0, 1] between the window's "current" sample and the "next" one.
//
// LookAhead is how many samples beyond the current one must already be
// loaded before Eval gives correct output; Fill takes care of pre-loading
// them from a signal.
type Interp[S sample.Sample] interface {
	// Eval reconstructs a sample at position t between the current sample
	// and the next. Eval(0) is the current sample; Eval(1) is (or closely
	// approximates) the next.
	Eval(t units.Val) S

	// Push loads a new sample, phasing out the oldest one.
	Push(v S)

	// PushMany loads count samples from a signal.
	PushMany(sgn signal.Mut[S], count int)

	// LookAhead is the number of future samples Eval depends on.
	LookAhead() int

	// Clear zeroes the window.
	Clear()
}

// Fill initializes an interpolation window from a signal, advancing it once
// for the current sample plus once per look-ahead sample.
func Fill[S sample.Sample](itp Interp[S], sgn signal.Mut[S]) {
	itp.PushMany(sgn, itp.LookAhead()+1)
}

// load shifts the window down one slot and stores v at the end. Windows are
// kept in time order, oldest first.
func load[S sample.Sample](data []S, v S) {
	copy(data, data[1:])
	data[len(data)-1] = v
}

// loadMany loads count samples in bulk: once count reaches the window size,
// the signal is advanced without storing until a full window's worth remains.
func loadMany[S sample.Sample](data []S, sgn signal.Mut[S], count int) {
	n := len(data)
	if count < n {
		for range count {
			load(data, signal.Next(sgn))
		}
		return
	}
	for range count - n {
		sgn.Advance()
	}
	for i := range data {
		data[i] = signal.Next(sgn)
	}
}

// Lerp linearly interpolates two samples.
func Lerp[S sample.Sample](x0, x1 S, t units.Val) S {
	f := t.Float64()
	return sample.Add(sample.Scale(x0, 1-f), sample.Scale(x1, f))
}

// CubicInterp interpolates between x1 and x2 with the cubic Lagrange
// polynomial through all four points.
func CubicInterp[S sample.Sample](x0, x1, x2, x3 S, t units.Val) S {
	f := t.Float64()
	var out S
	for i := 0; i < len(out); i++ {
		a0 := x3[i] - x2[i] - x0[i] + x1[i]
		a1 := x0[i] - x1[i] - a0
		a2 := x2[i] - x0[i]
		out[i] = ((a0*f+a1)*f+a2)*f + x1[i]
	}
	return out
}

// HermiteInterp interpolates between x1 and x2 with a Catmull-Rom spline
// through all four points. Generally smoother than CubicInterp at the same
// cost.
func HermiteInterp[S sample.Sample](x0, x1, x2, x3 S, t units.Val) S {
	f := t.Float64()
	var out S
	for i := 0; i < len(out); i++ {
		diff := x1[i] - x2[i]
		c1 := x2[i] - x0[i]
		c3 := x3[i] - x0[i] + 3*diff
		c2 := -(2*diff + c1 + c3)
		out[i] = ((c3*f+c2)*f+c1)*f*0.5 + x1[i]
	}
	return out
}

// Drop reconstructs by holding the current sample: a zero-order hold.
// Terrible fidelity, useful for deliberate bit-crush artifacts.
type Drop[S sample.Sample] struct {
	cur S
}

// NewDrop builds a zeroed Drop window.
func NewDrop[S sample.Sample]() *Drop[S] {
	return &Drop[S]{}
}

// Eval returns the stored sample regardless of position.
func (d *Drop[S]) Eval(units.Val) S { return d.cur }

// Push replaces the stored sample.
func (d *Drop[S]) Push(v S) { d.cur = v }

// PushMany loads count samples from a signal; only the last is kept.
func (d *Drop[S]) PushMany(sgn signal.Mut[S], count int) {
	if count == 0 {
		return
	}
	for range count - 1 {
		sgn.Advance()
	}
	d.cur = signal.Next(sgn)
}

// LookAhead is zero: Drop never reads ahead.
func (d *Drop[S]) LookAhead() int { return 0 }

// Clear zeroes the window.
func (d *Drop[S]) Clear() { d.cur = sample.Zero[S]() }

// Linear reconstructs with a straight line between the current and next
// samples.
type Linear[S sample.Sample] struct {
	data []S
}

// NewLinear builds a zeroed Linear window.
func NewLinear[S sample.Sample]() *Linear[S] {
	return &Linear[S]{data: make([]S, 2)}
}

// Eval linearly interpolates between the current and next samples.
func (l *Linear[S]) Eval(t units.Val) S {
	return Lerp(l.data[0], l.data[1], t)
}

// Push loads a new sample.
func (l *Linear[S]) Push(v S) { load(l.data, v) }

// PushMany loads count samples from a signal.
func (l *Linear[S]) PushMany(sgn signal.Mut[S], count int) { loadMany(l.data, sgn, count) }

// LookAhead is one sample.
func (l *Linear[S]) LookAhead() int { return 1 }

// Clear zeroes the window.
func (l *Linear[S]) Clear() { clear(l.data) }

// Cubic reconstructs with the cubic Lagrange polynomial through the
// previous, current, next, and next-next samples.
type Cubic[S sample.Sample] struct {
	data []S
}

// NewCubic builds a zeroed Cubic window.
func NewCubic[S sample.Sample]() *Cubic[S] {
	return &Cubic[S]{data: make([]S, 4)}
}

// Eval interpolates between the current and next samples.
func (c *Cubic[S]) Eval(t units.Val) S {
	return CubicInterp(c.data[0], c.data[1], c.data[2], c.data[3], t)
}

// Push loads a new sample.
func (c *Cubic[S]) Push(v S) { load(c.data, v) }

// PushMany loads count samples from a signal.
func (c *Cubic[S]) PushMany(sgn signal.Mut[S], count int) { loadMany(c.data, sgn, count) }

// LookAhead is two samples.
func (c *Cubic[S]) LookAhead() int { return 2 }

// Clear zeroes the window.
func (c *Cubic[S]) Clear() { clear(c.data) }

// Hermite reconstructs with a Catmull-Rom spline through the previous,
// current, next, and next-next samples.
type Hermite[S sample.Sample] struct {
	data []S
}

// NewHermite builds a zeroed Hermite window.
func NewHermite[S sample.Sample]() *Hermite[S] {
	return &Hermite[S]{data: make([]S, 4)}
}

// Eval interpolates between the current and next samples.
func (h *Hermite[S]) Eval(t units.Val) S {
	return HermiteInterp(h.data[0], h.data[1], h.data[2], h.data[3], t)
}

// Push loads a new sample.
func (h *Hermite[S]) Push(v S) { load(h.data, v) }

// PushMany loads count samples from a signal.
func (h *Hermite[S]) PushMany(sgn signal.Mut[S], count int) { loadMany(h.data, sgn, count) }

// LookAhead is two samples.
func (h *Hermite[S]) LookAhead() int { return 2 }

// Clear zeroes the window.
func (h *Hermite[S]) Clear() { clear(h.data) }
