package env

import (
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
	"github.com/waveforge/waveforge/units"
)

// Volume scales a signal by a gain factor.
type Volume[S sample.Sample] struct {
	// Sgn is the signal being scaled.
	Sgn signal.Mut[S]

	// Vol is the current gain.
	Vol units.Vol
}

// NewVolume scales a signal by the given volume.
func NewVolume[S sample.Sample](sgn signal.Mut[S], vol units.Vol) *Volume[S] {
	return &Volume[S]{Sgn: sgn, Vol: vol}
}

func (v *Volume[S]) Get() S {
	return sample.Scale(v.Sgn.Get(), v.Vol.Gain())
}

func (v *Volume[S]) Advance() {
	v.Sgn.Advance()
}

func (v *Volume[S]) Retrigger() {
	v.Sgn.Retrigger()
}

func (v *Volume[S]) IsDone() bool {
	return signal.IsDone(v.Sgn)
}

func (v *Volume[S]) Stop() {
	signal.Stop(v.Sgn)
}

func (v *Volume[S]) Panic() {
	signal.Panic(v.Sgn)
}

func (v *Volume[S]) Freq() units.Freq {
	return signal.FreqOf(v.Sgn)
}

func (v *Volume[S]) SetFreq(freq units.Freq) {
	signal.SetFreq(v.Sgn, freq)
}

func (v *Volume[S]) Base() any {
	return v.Sgn
}

// trem writes the envelope frame into the volume gain.
func trem[S sample.Sample](v *Volume[S], e sample.Env) {
	v.Vol = units.Vol(e[0])
}

// Tremolo modulates a signal's volume with an envelope. The wrapper's
// lifetime is the signal's own; use this with a looping LFO envelope.
type Tremolo[S sample.Sample] = signal.MutSgn[S, *Volume[S]]

// NewTremolo modulates the signal's volume with the envelope.
func NewTremolo[S sample.Sample](sgn signal.Mut[S], e signal.Mut[sample.Env]) *Tremolo[S] {
	return signal.NewMutSgn[S](NewVolume(sgn, units.VolFull), e, trem[S])
}

// StopTremolo modulates a signal's volume with an envelope whose lifetime
// governs the voice: the note is stopped and finished through the envelope.
// This is how one-shot and ADSR envelopes attach to a carrier.
type StopTremolo[S sample.Sample] = signal.ModSgn[S, *Volume[S]]

// NewStopTremolo modulates the signal's volume with the envelope, tying the
// voice's lifetime to it.
func NewStopTremolo[S sample.Sample](sgn signal.Mut[S], e signal.Mut[sample.Env]) *StopTremolo[S] {
	return signal.NewModSgn[S](NewVolume(sgn, units.VolFull), e, trem[S])
}

// NewArEnv ties a signal to an attack-release envelope.
func NewArEnv[S sample.Sample](sgn signal.Mut[S], attack, release units.Time) *StopTremolo[S] {
	return NewStopTremolo(sgn, NewAr(attack, release))
}

// NewAdsrEnv ties a signal to an ADSR envelope.
func NewAdsrEnv[S sample.Sample](sgn signal.Mut[S], adsr *Adsr) *StopTremolo[S] {
	return NewStopTremolo(sgn, adsr)
}

// FreqMut is a signal with a controllable main frequency.
type FreqMut[S sample.Sample] interface {
	signal.Mut[S]
	signal.Frequency
}

// Vibrato modulates a signal's frequency with an envelope: the carrier
// plays at base times the envelope value, so an LFO centered on 1 bends the
// pitch around the base frequency.
type Vibrato[S sample.Sample, T FreqMut[S]] struct {
	inner *signal.MutSgn[S, T]
	base  units.Freq
}

// NewVibrato modulates the signal's frequency around base by the envelope.
func NewVibrato[S sample.Sample, T FreqMut[S]](sgn T, base units.Freq, e signal.Mut[sample.Env]) *Vibrato[S, T] {
	v := &Vibrato[S, T]{base: base}
	v.inner = signal.NewMutSgn[S](sgn, e, func(s T, bend sample.Env) {
		s.SetFreq(v.base * units.Freq(bend[0]))
	})
	return v
}

// Sgn returns the signal whose frequency is modulated.
func (v *Vibrato[S, T]) Sgn() T {
	return v.inner.Sgn
}

// Env returns the envelope controlling the bend.
func (v *Vibrato[S, T]) Env() signal.Mut[sample.Env] {
	return v.inner.Env
}

func (v *Vibrato[S, T]) Get() S {
	return v.inner.Get()
}

func (v *Vibrato[S, T]) Advance() {
	v.inner.Advance()
}

func (v *Vibrato[S, T]) Retrigger() {
	v.inner.Retrigger()
}

// Freq returns the base frequency the bend is centered on.
func (v *Vibrato[S, T]) Freq() units.Freq {
	return v.base
}

// SetFreq sets the base frequency the bend is centered on.
func (v *Vibrato[S, T]) SetFreq(freq units.Freq) {
	v.base = freq
}

func (v *Vibrato[S, T]) IsDone() bool {
	return signal.IsDone(v.inner.Sgn)
}

func (v *Vibrato[S, T]) Stop() {
	signal.Stop(v.inner.Sgn)
}

func (v *Vibrato[S, T]) Panic() {
	signal.Panic(v.inner.Sgn)
}

func (v *Vibrato[S, T]) Base() any {
	return v.inner.Sgn
}
