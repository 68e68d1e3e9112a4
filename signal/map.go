package signal

import (
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/units"
)

// MapSgn applies a function to the wrapped signal's output. The wrapped
// signal's internal state is untouched; only what comes out of Get changes.
//
// If the wrapped signal can be stopped, the function should map the zero
// sample to itself, or a DC offset will appear once the signal silences.
type MapSgn[S, Y sample.Sample] struct {
	// Sgn is the signal being mapped.
	Sgn Mut[S]

	// F is the output map.
	F func(S) Y
}

// NewMapSgn wraps a signal with an output map.
func NewMapSgn[S, Y sample.Sample](sgn Mut[S], f func(S) Y) *MapSgn[S, Y] {
	return &MapSgn[S, Y]{Sgn: sgn, F: f}
}

// NewPointwise wraps a signal with a map applied independently to every
// channel.
func NewPointwise[S sample.Sample](sgn Mut[S], f func(float64) float64) *MapSgn[S, S] {
	return NewMapSgn(sgn, func(s S) S { return sample.Map(s, f) })
}

// NewEnvPlayer plays a control signal as mono audio. For very low-frequency
// envelopes this may produce undesirable sounds.
func NewEnvPlayer(sgn Mut[sample.Env]) *MapSgn[sample.Env, sample.Mono] {
	return NewMapSgn(sgn, sample.Env.Mono)
}

// Get returns the mapped current sample.
func (m *MapSgn[S, Y]) Get() Y {
	return m.F(m.Sgn.Get())
}

// Advance advances the wrapped signal.
func (m *MapSgn[S, Y]) Advance() {
	m.Sgn.Advance()
}

// Retrigger retriggers the wrapped signal.
func (m *MapSgn[S, Y]) Retrigger() {
	m.Sgn.Retrigger()
}

// IsDone forwards to the wrapped signal.
func (m *MapSgn[S, Y]) IsDone() bool {
	return IsDone(m.Sgn)
}

// Stop forwards to the wrapped signal.
func (m *MapSgn[S, Y]) Stop() {
	Stop(m.Sgn)
}

// Panic forwards to the wrapped signal.
func (m *MapSgn[S, Y]) Panic() {
	Panic(m.Sgn)
}

// Freq forwards to the wrapped signal.
func (m *MapSgn[S, Y]) Freq() units.Freq {
	return FreqOf(m.Sgn)
}

// SetFreq forwards to the wrapped signal.
func (m *MapSgn[S, Y]) SetFreq(freq units.Freq) {
	SetFreq(m.Sgn, freq)
}

// Base returns the wrapped signal.
func (m *MapSgn[S, Y]) Base() any {
	return m.Sgn
}
