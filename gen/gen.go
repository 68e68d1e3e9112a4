// Package gen implements leaf signal sources: curve players, noise, raw
// function generators and buffer playback.
package gen

import (
	"github.com/waveforge/waveforge/curve"
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/units"
)

// Loop plays a plain curve at a frequency, wrapping the phase around after
// every cycle. All periodic oscillators are a Loop over some curve shape.
type Loop[S sample.Sample, C curve.Curve] struct {
	Curve C

	val  units.Val
	freq units.Freq
}

// NewLoopPhase plays a curve at the given frequency, starting at the given
// phase.
func NewLoopPhase[S sample.Sample, C curve.Curve](c C, freq units.Freq, phase units.Val) *Loop[S, C] {
	return &Loop[S, C]{Curve: c, freq: freq, val: phase}
}

// NewLoop plays a curve at the given frequency.
func NewLoop[S sample.Sample, C curve.Curve](c C, freq units.Freq) *Loop[S, C] {
	return NewLoopPhase[S](c, freq, units.ValZero)
}

// NewLoopRand plays a curve at the given frequency, starting at a random
// phase. Useful to decorrelate stacked oscillators.
func NewLoopRand[S sample.Sample, C curve.Curve](c C, freq units.Freq) *Loop[S, C] {
	return NewLoopPhase[S](c, freq, units.RandVal())
}

// Val returns the current phase.
func (l *Loop[S, C]) Val() units.Val {
	return l.val
}

// SetVal sets the current phase.
func (l *Loop[S, C]) SetVal(val units.Val) {
	l.val = val
}

func (l *Loop[S, C]) Get() S {
	return sample.FromVal[S](l.Curve.Eval(l.val))
}

func (l *Loop[S, C]) Advance() {
	l.val.AdvanceFreq(l.freq)
}

func (l *Loop[S, C]) Retrigger() {
	l.val = units.ValZero
}

func (l *Loop[S, C]) Freq() units.Freq {
	return l.freq
}

func (l *Loop[S, C]) SetFreq(freq units.Freq) {
	l.freq = freq
}

// Once plays a plain curve exactly once over a fixed duration, then holds
// its final value. Used for one-shot envelope shapes and transients.
type Once[S sample.Sample, C curve.Curve] struct {
	Curve C

	elapsed units.Time
	total   units.Time
}

// NewOnce plays a curve once over the given duration.
func NewOnce[S sample.Sample, C curve.Curve](c C, total units.Time) *Once[S, C] {
	return &Once[S, C]{Curve: c, total: total}
}

// Elapsed returns how long the curve has played for.
func (o *Once[S, C]) Elapsed() units.Time {
	return o.elapsed
}

// Total returns the duration the curve plays for.
func (o *Once[S, C]) Total() units.Time {
	return o.total
}

// Val returns how far along the curve we are, from 0 to 1.
func (o *Once[S, C]) Val() units.Val {
	if o.total.IsZero() {
		return units.ValOne
	}
	return units.NewVal(o.elapsed.Quot(o.total))
}

func (o *Once[S, C]) Get() S {
	return sample.FromVal[S](o.Curve.Eval(o.Val()))
}

func (o *Once[S, C]) Advance() {
	o.elapsed.Advance()
	if o.total.Less(o.elapsed) {
		o.elapsed = o.total
	}
}

func (o *Once[S, C]) Retrigger() {
	o.elapsed = units.TimeZero
}

func (o *Once[S, C]) IsDone() bool {
	return o.elapsed == o.total
}

func (o *Once[S, C]) Stop() {
	o.elapsed = o.total
}

func (o *Once[S, C]) Panic() {
	o.Stop()
}

// Noise emits a fresh uniform random sample on every advance.
type Noise[S sample.Sample] struct {
	cur S
}

// NewNoise builds a white noise generator.
func NewNoise[S sample.Sample]() *Noise[S] {
	return &Noise[S]{cur: sample.Rand[S]()}
}

func (n *Noise[S]) Get() S {
	return n.cur
}

func (n *Noise[S]) Advance() {
	n.Retrigger()
}

func (n *Noise[S]) Retrigger() {
	n.cur = sample.Rand[S]()
}

// Func adapts a plain function into a generator. Retriggering is a no-op,
// as the function's state is opaque to us.
type Func[A sample.Audio] struct {
	f   func() A
	val A
}

// NewFunc builds a generator from a function, calling it once for the
// initial sample.
func NewFunc[A sample.Audio](f func() A) *Func[A] {
	return &Func[A]{f: f, val: f()}
}

func (fn *Func[A]) Get() A {
	return fn.val
}

func (fn *Func[A]) Advance() {
	fn.val = fn.f()
}

func (fn *Func[A]) Retrigger() {}

// TimeFunc adapts a function of elapsed time into a generator.
type TimeFunc[A sample.Audio] struct {
	f    func(units.Time) A
	val  A
	time units.Time
}

// NewTimeFunc builds a generator from a function of time, calling it at
// time zero for the initial sample.
func NewTimeFunc[A sample.Audio](f func(units.Time) A) *TimeFunc[A] {
	return &TimeFunc[A]{f: f, val: f(units.TimeZero)}
}

func (fn *TimeFunc[A]) Get() A {
	return fn.val
}

func (fn *TimeFunc[A]) Advance() {
	fn.time.Advance()
	fn.val = fn.f(fn.time)
}

func (fn *TimeFunc[A]) Retrigger() {
	fn.time = units.TimeZero
	fn.val = fn.f(fn.time)
}
