package signal

import "github.com/waveforge/waveforge/sample"

// Mix adds two same-typed signals together. Polyphonic mixing is simple
// superposition, so Get is just the channel-wise sum.
type Mix[S sample.Sample] struct {
	A Mut[S]
	B Mut[S]
}

// NewMix mixes two signals.
func NewMix[S sample.Sample](a, b Mut[S]) *Mix[S] {
	return &Mix[S]{A: a, B: b}
}

// Get returns the sum of both signals' current samples.
func (m *Mix[S]) Get() S {
	return sample.Add(m.A.Get(), m.B.Get())
}

// Advance advances both signals.
func (m *Mix[S]) Advance() {
	m.A.Advance()
	m.B.Advance()
}

// Retrigger retriggers both signals.
func (m *Mix[S]) Retrigger() {
	m.A.Retrigger()
	m.B.Retrigger()
}

// IsDone reports whether both signals are done.
func (m *Mix[S]) IsDone() bool {
	return IsDone(m.A) && IsDone(m.B)
}

// Stop releases both signals.
func (m *Mix[S]) Stop() {
	Stop(m.A)
	Stop(m.B)
}

// Panic silences both signals.
func (m *Mix[S]) Panic() {
	Panic(m.A)
	Panic(m.B)
}

// StereoPair combines two mono signals into one stereo signal, one per
// channel.
type StereoPair struct {
	L Mut[sample.Mono]
	R Mut[sample.Mono]
}

// NewStereoPair pairs two mono signals into stereo.
func NewStereoPair(l, r Mut[sample.Mono]) *StereoPair {
	return &StereoPair{L: l, R: r}
}

// Get returns the current frame, left channel from L and right from R.
func (s *StereoPair) Get() sample.Stereo {
	return sample.Stereo{s.L.Get()[0], s.R.Get()[0]}
}

// Advance advances both channels.
func (s *StereoPair) Advance() {
	s.L.Advance()
	s.R.Advance()
}

// Retrigger retriggers both channels.
func (s *StereoPair) Retrigger() {
	s.L.Retrigger()
	s.R.Retrigger()
}

// IsDone reports whether both channels are done.
func (s *StereoPair) IsDone() bool {
	return IsDone(s.L) && IsDone(s.R)
}

// Stop releases both channels.
func (s *StereoPair) Stop() {
	Stop(s.L)
	Stop(s.R)
}

// Panic silences both channels.
func (s *StereoPair) Panic() {
	Panic(s.L)
	Panic(s.R)
}

// Dup turns a mono signal into stereo by copying its channel to both sides.
type Dup struct {
	Sgn Mut[sample.Mono]
}

// NewDup duplicates a mono signal into both stereo channels.
func NewDup(sgn Mut[sample.Mono]) *Dup {
	return &Dup{Sgn: sgn}
}

// Get returns the current mono sample duplicated into both channels.
func (d *Dup) Get() sample.Stereo {
	return d.Sgn.Get().Duplicate()
}

// Advance advances the wrapped signal.
func (d *Dup) Advance() {
	d.Sgn.Advance()
}

// Retrigger retriggers the wrapped signal.
func (d *Dup) Retrigger() {
	d.Sgn.Retrigger()
}

// IsDone forwards to the wrapped signal.
func (d *Dup) IsDone() bool {
	return IsDone(d.Sgn)
}

// Stop forwards to the wrapped signal.
func (d *Dup) Stop() {
	Stop(d.Sgn)
}

// Panic forwards to the wrapped signal.
func (d *Dup) Panic() {
	Panic(d.Sgn)
}

// Base returns the wrapped signal.
func (d *Dup) Base() any {
	return d.Sgn
}

// Ref fans one signal's output out to several readers within a single
// sample. It is read-only: the referenced signal must be advanced exactly
// once, externally, after every reader has taken its Get for the sample.
type Ref[S sample.Sample] struct {
	Sgn Signal[S]
}

// NewRef builds a read-only view of a signal.
func NewRef[S sample.Sample](sgn Signal[S]) Ref[S] {
	return Ref[S]{Sgn: sgn}
}

// Get returns the referenced signal's current sample.
func (r Ref[S]) Get() S {
	return r.Sgn.Get()
}

// IsDone forwards to the referenced signal.
func (r Ref[S]) IsDone() bool {
	return IsDone(r.Sgn)
}
