package signal

import (
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/units"
)

// MutSgn modifies the wrapped signal's parameters once per sample, driven by
// a control envelope. The modify function receives the concrete wrapped
// signal and the envelope's current frame; typical uses set a volume or a
// frequency from the envelope value.
//
// A MutSgn is done or stopped when the wrapped signal is. If the envelope's
// lifetime should govern instead, use ModSgn.
type MutSgn[S sample.Sample, T Mut[S]] struct {
	// Sgn is the signal being modified.
	Sgn T

	// Env is the control envelope.
	Env Mut[sample.Env]

	// F applies the envelope frame to the signal's parameters.
	F func(T, sample.Env)
}

// NewMutSgn wraps a signal with an envelope-driven parameter modifier. The
// signal is modified immediately with the envelope's first value.
func NewMutSgn[S sample.Sample, T Mut[S]](sgn T, env Mut[sample.Env], f func(T, sample.Env)) *MutSgn[S, T] {
	f(sgn, env.Get())
	return &MutSgn[S, T]{Sgn: sgn, Env: env, F: f}
}

// Get returns the wrapped signal's current sample.
func (m *MutSgn[S, T]) Get() S {
	return m.Sgn.Get()
}

// Advance advances the wrapped signal, then applies the envelope's next
// frame to its parameters.
func (m *MutSgn[S, T]) Advance() {
	m.Sgn.Advance()
	m.F(m.Sgn, Next(m.Env))
}

// Retrigger retriggers both the wrapped signal and the envelope.
func (m *MutSgn[S, T]) Retrigger() {
	m.Sgn.Retrigger()
	m.Env.Retrigger()
}

// IsDone forwards to the wrapped signal.
func (m *MutSgn[S, T]) IsDone() bool {
	return IsDone(m.Sgn)
}

// Stop forwards to the wrapped signal.
func (m *MutSgn[S, T]) Stop() {
	Stop(m.Sgn)
}

// Panic forwards to the wrapped signal.
func (m *MutSgn[S, T]) Panic() {
	Panic(m.Sgn)
}

// Freq forwards to the wrapped signal.
func (m *MutSgn[S, T]) Freq() units.Freq {
	return FreqOf(m.Sgn)
}

// SetFreq forwards to the wrapped signal.
func (m *MutSgn[S, T]) SetFreq(freq units.Freq) {
	SetFreq(m.Sgn, freq)
}

// Base returns the wrapped signal.
func (m *MutSgn[S, T]) Base() any {
	return m.Sgn
}

// ModSgn is a MutSgn whose note lifetime is governed by the envelope rather
// than the wrapped signal: Stop releases the envelope, IsDone reports the
// envelope's completion, and Panic silences the envelope.
//
// Use it when the envelope's release tail, not the carrier, should decide
// when a voice is finished; a struck note then keeps reporting "not done"
// throughout its release even though the carrier oscillator never ends.
type ModSgn[S sample.Sample, T Mut[S]] struct {
	inner MutSgn[S, T]
}

// NewModSgn wraps a signal with an envelope-driven parameter modifier whose
// lifetime tracks the envelope. The signal is modified immediately with the
// envelope's first value.
func NewModSgn[S sample.Sample, T Mut[S]](sgn T, env Mut[sample.Env], f func(T, sample.Env)) *ModSgn[S, T] {
	f(sgn, env.Get())
	return &ModSgn[S, T]{inner: MutSgn[S, T]{Sgn: sgn, Env: env, F: f}}
}

// Sgn returns the signal being modified.
func (m *ModSgn[S, T]) Sgn() T {
	return m.inner.Sgn
}

// Env returns the control envelope.
func (m *ModSgn[S, T]) Env() Mut[sample.Env] {
	return m.inner.Env
}

// Get returns the wrapped signal's current sample.
func (m *ModSgn[S, T]) Get() S {
	return m.inner.Get()
}

// Advance advances the wrapped signal, then applies the envelope's next
// frame to its parameters.
func (m *ModSgn[S, T]) Advance() {
	m.inner.Advance()
}

// Retrigger retriggers both the wrapped signal and the envelope.
func (m *ModSgn[S, T]) Retrigger() {
	m.inner.Retrigger()
}

// IsDone forwards to the envelope.
func (m *ModSgn[S, T]) IsDone() bool {
	return IsDone(m.inner.Env)
}

// Stop releases the envelope.
func (m *ModSgn[S, T]) Stop() {
	Stop(m.inner.Env)
}

// Panic silences the envelope.
func (m *ModSgn[S, T]) Panic() {
	Panic(m.inner.Env)
}

// Freq forwards to the wrapped signal.
func (m *ModSgn[S, T]) Freq() units.Freq {
	return m.inner.Freq()
}

// SetFreq forwards to the wrapped signal.
func (m *ModSgn[S, T]) SetFreq(freq units.Freq) {
	m.inner.SetFreq(freq)
}

// Base returns the wrapped signal.
func (m *ModSgn[S, T]) Base() any {
	return m.inner.Sgn
}
