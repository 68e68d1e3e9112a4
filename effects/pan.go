package effects

import (
	"math"

	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
	"github.com/waveforge/waveforge/units"
)

// Law determines how channel gains correlate with the panning angle. The
// angle runs from 0 (hard left) through 0.5 (center) to 1 (hard right).
type Law interface {
	// Gain returns the left and right channel gains.
	Gain() (left, right float64)
}

// LinearGain computes the channel gains of a linear panning law.
func LinearGain(angle float64) (float64, float64) {
	return 1 - angle, angle
}

// PowerGain computes the channel gains of a constant power panning law.
func PowerGain(angle float64) (float64, float64) {
	r, l := math.Sincos(math.Pi / 2 * angle)
	return l, r
}

// MixedGain computes the channel gains of a -4.5 dB panning law, the
// geometric mean of the linear and power laws.
func MixedGain(angle float64) (float64, float64) {
	ll, lr := LinearGain(angle)
	pl, pr := PowerGain(angle)
	return math.Sqrt(ll * pl), math.Sqrt(lr * pr)
}

// Linear pans by scaling the channel gains linearly with the angle. The
// center is 6 dB quieter than the edges in total power.
type Linear struct {
	Angle float64
}

func (l Linear) Gain() (float64, float64) {
	return LinearGain(l.Angle)
}

// Power pans with constant total power: the gains are the cosine and sine
// of the angle.
type Power struct {
	Angle float64
}

func (p Power) Gain() (float64, float64) {
	return PowerGain(p.Angle)
}

// Mixed pans with the -4.5 dB law, halfway between Linear and Power.
type Mixed struct {
	Angle float64
}

func (m Mixed) Gain() (float64, float64) {
	return MixedGain(m.Angle)
}

// stereoOf widens audio to stereo, duplicating a mono channel.
func stereoOf[A sample.Audio](a A) sample.Stereo {
	switch s := any(a).(type) {
	case sample.Stereo:
		return s
	case sample.Mono:
		return s.Duplicate()
	default:
		return sample.Stereo{}
	}
}

// Panner places a signal in the stereo field according to a panning law.
type Panner[A sample.Audio, L Law] struct {
	// Sgn is the signal being panned.
	Sgn signal.Mut[A]

	// Law maps the panning angle to channel gains.
	Law L
}

// NewPanner pans a signal with the given law.
func NewPanner[A sample.Audio, L Law](sgn signal.Mut[A], law L) *Panner[A, L] {
	return &Panner[A, L]{Sgn: sgn, Law: law}
}

func (p *Panner[A, L]) Get() sample.Stereo {
	s := stereoOf(p.Sgn.Get())
	l, r := p.Law.Gain()
	return sample.Stereo{s[0] * l, s[1] * r}
}

func (p *Panner[A, L]) Advance() {
	p.Sgn.Advance()
}

func (p *Panner[A, L]) Retrigger() {
	p.Sgn.Retrigger()
}

func (p *Panner[A, L]) IsDone() bool {
	return signal.IsDone(p.Sgn)
}

func (p *Panner[A, L]) Stop() {
	signal.Stop(p.Sgn)
}

func (p *Panner[A, L]) Panic() {
	signal.Panic(p.Sgn)
}

func (p *Panner[A, L]) Freq() units.Freq {
	return signal.FreqOf(p.Sgn)
}

func (p *Panner[A, L]) SetFreq(freq units.Freq) {
	signal.SetFreq(p.Sgn, freq)
}

func (p *Panner[A, L]) Base() any {
	return p.Sgn
}
