// Package effects implements audio effects built on the signal contract:
// delays with configurable feedback, panning laws, and gating.
package effects

import (
	"github.com/waveforge/waveforge/gen"
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
	"github.com/waveforge/waveforge/units"
)

// Delay plays a signal back after a fixed time, optionally feeding the
// delayed output back into itself. Mix it with the original signal for a
// dry/wet effect.
//
// The delay length is a whole number of samples, so a requested time is
// truncated to the frame.
type Delay[S sample.Audio] struct {
	// Sgn is the signal being delayed.
	Sgn signal.Mut[S]

	// Feedback determines how a delayed sample is fed back into the buffer.
	// It must map zero to zero.
	Feedback func(S) S

	loop *gen.LoopBuf[S]
}

// NewDelay builds a delay with the given feedback function. The delay time
// must be at least one sample.
func NewDelay[S sample.Audio](sgn signal.Mut[S], delay units.Time, feedback func(S) S) *Delay[S] {
	return &Delay[S]{
		Sgn:      sgn,
		Feedback: feedback,
		loop:     gen.NewLoopBuf(make([]S, int(delay.Samples.Int()))),
	}
}

// NewPureDelay builds a delay that plays the signal back once, with no
// feedback.
func NewPureDelay[S sample.Audio](sgn signal.Mut[S], delay units.Time) *Delay[S] {
	return NewDelay(sgn, delay, func(S) S { return sample.Zero[S]() })
}

// NewExpDelay builds a delay whose echoes decay exponentially by vol. A
// volume of 1 echoes forever.
func NewExpDelay[S sample.Audio](sgn signal.Mut[S], delay units.Time, vol units.Vol) *Delay[S] {
	return NewDelay(sgn, delay, func(s S) S { return sample.Scale(s, vol.Gain()) })
}

// NewFlipDelay builds an exponentially decaying ping-pong delay: each echo
// swaps the stereo channels.
func NewFlipDelay(sgn signal.Mut[sample.Stereo], delay units.Time, vol units.Vol) *Delay[sample.Stereo] {
	return NewDelay(sgn, delay, func(s sample.Stereo) sample.Stereo {
		return sample.Scale(s.Flip(), vol.Gain())
	})
}

// Buffer returns the backing delay line.
func (d *Delay[S]) Buffer() []S {
	return d.loop.Data
}

// Clear zeroes the delay line.
func (d *Delay[S]) Clear() {
	for i := range d.loop.Data {
		d.loop.Data[i] = sample.Zero[S]()
	}
}

// ReadSource reads the signal's current sample into the delay line, mixing
// in the feedback, and advances the buffer position. The signal itself is
// not advanced; use this when driving the signal by hand.
func (d *Delay[S]) ReadSource() {
	next := sample.Add(d.Sgn.Get(), d.Feedback(d.loop.Get()))

	d.loop.Data[d.loop.Index()] = next
	d.loop.Advance()
}

// Get returns the sample that entered the delay line one delay time ago.
func (d *Delay[S]) Get() S {
	return d.loop.Get()
}

func (d *Delay[S]) Advance() {
	d.ReadSource()
	d.Sgn.Advance()
}

func (d *Delay[S]) Retrigger() {
	d.Sgn.Retrigger()
	d.loop.Retrigger()
	d.Clear()
}

func (d *Delay[S]) IsDone() bool {
	return signal.IsDone(d.Sgn)
}

func (d *Delay[S]) Stop() {
	signal.Stop(d.Sgn)
}

// Panic silences the signal and drops any echoes still in the buffer.
func (d *Delay[S]) Panic() {
	signal.Panic(d.Sgn)
	d.Clear()
}

func (d *Delay[S]) Freq() units.Freq {
	return signal.FreqOf(d.Sgn)
}

func (d *Delay[S]) SetFreq(freq units.Freq) {
	signal.SetFreq(d.Sgn, freq)
}

func (d *Delay[S]) Base() any {
	return d.Sgn
}
