package buffer

import (
	"math"

	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
	"github.com/waveforge/waveforge/units"
)

// Stretch samples a signal through an interpolation window at a non-integer
// rate, modifying both pitch and speed. A factor of 2 plays the signal twice
// as fast; 0.5 plays it at half speed.
//
// This is the one mechanism for time-stretching signals that don't have an
// intrinsically settable frequency. Note that the wrapped signal runs a few
// samples ahead of what is currently playing, depending on the window's
// look-ahead.
type Stretch[S sample.Sample] struct {
	// Sgn is the signal being sampled.
	Sgn signal.Mut[S]

	// Factor is the time-stretching factor.
	Factor float64

	itp Interp[S]
	val units.Val
}

// NewStretch time-stretches a signal through the given interpolation window.
func NewStretch[S sample.Sample](sgn signal.Mut[S], factor float64, itp Interp[S]) *Stretch[S] {
	Fill(itp, sgn)
	return &Stretch[S]{Sgn: sgn, Factor: factor, itp: itp}
}

// NewDropStretch time-stretches with drop-sample reconstruction.
func NewDropStretch[S sample.Sample](sgn signal.Mut[S], factor float64) *Stretch[S] {
	return NewStretch(sgn, factor, NewDrop[S]())
}

// NewLinearStretch time-stretches with linear reconstruction.
func NewLinearStretch[S sample.Sample](sgn signal.Mut[S], factor float64) *Stretch[S] {
	return NewStretch(sgn, factor, NewLinear[S]())
}

// NewCubicStretch time-stretches with cubic Lagrange reconstruction.
func NewCubicStretch[S sample.Sample](sgn signal.Mut[S], factor float64) *Stretch[S] {
	return NewStretch(sgn, factor, NewCubic[S]())
}

// NewHermiteStretch time-stretches with Catmull-Rom reconstruction.
func NewHermiteStretch[S sample.Sample](sgn signal.Mut[S], factor float64) *Stretch[S] {
	return NewStretch(sgn, factor, NewHermite[S]())
}

// Val returns the fractional position between the current and next samples.
func (st *Stretch[S]) Val() units.Val {
	return st.val
}

// Get reconstructs the sample at the current fractional position.
func (st *Stretch[S]) Get() S {
	return st.itp.Eval(st.val)
}

// Advance moves the read position forward by the stretch factor, pulling as
// many new samples into the window as the integer part demands.
func (st *Stretch[S]) Advance() {
	pos := st.val.Float64() + st.Factor
	count := int(math.Floor(pos))
	st.itp.PushMany(st.Sgn, count)
	st.val = units.ValFract(pos)
}

// Retrigger retriggers the wrapped signal and refills the window from it.
func (st *Stretch[S]) Retrigger() {
	st.Sgn.Retrigger()
	st.itp.Clear()
	Fill(st.itp, st.Sgn)
	st.val = units.ValZero
}

// IsDone forwards to the wrapped signal.
func (st *Stretch[S]) IsDone() bool {
	return signal.IsDone(st.Sgn)
}

// Stop forwards to the wrapped signal.
func (st *Stretch[S]) Stop() {
	signal.Stop(st.Sgn)
}

// Base returns the wrapped signal.
func (st *Stretch[S]) Base() any {
	return st.Sgn
}
