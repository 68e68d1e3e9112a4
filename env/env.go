// Package env implements envelope generators and the wrappers that hook
// them up to audio signals: attack-release and ADSR state machines, volume
// and tremolo modulation, and vibrato.
package env

import (
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/units"
)

// Stage is a phase of an envelope's lifetime. An Ar envelope only passes
// through Attack, Release and Done.
type Stage uint8

const (
	// Attack ramps from silence to the peak.
	Attack Stage = iota
	// Decay ramps from the peak down to the sustain level.
	Decay
	// Sustain holds the sustain level until the envelope is stopped.
	Sustain
	// Release ramps from the stop level down to silence.
	Release
	// Done is permanent silence.
	Done
)

func (s Stage) String() string {
	switch s {
	case Attack:
		return "attack"
	case Decay:
		return "decay"
	case Sustain:
		return "sustain"
	case Release:
		return "release"
	case Done:
		return "done"
	default:
		return "invalid"
	}
}

// Ar is an attack-release envelope, outputting values from 0 to 1. It ramps
// up over the attack time and back down over the release time, with no hold
// in between; stopping it early restarts the release from the current
// level.
type Ar struct {
	// Attack is the time from the start to the peak.
	Attack units.Time
	// Release is the time from the stop to silence.
	Release units.Time

	stage Stage

	// Volume the release ramps down from. Differs from full volume when the
	// envelope is stopped mid-attack.
	releaseVol units.Vol

	// Time spent in the current stage.
	phase units.Time
}

// NewAr builds an attack-release envelope. Zero-length phases are skipped
// outright, so a zero attack starts at the peak.
func NewAr(attack, release units.Time) *Ar {
	ar := &Ar{Attack: attack, Release: release, stage: Attack}
	ar.setStage()
	return ar
}

// Stage returns the envelope's current stage.
func (ar *Ar) Stage() Stage {
	return ar.stage
}

// setStage moves to the correct stage for the elapsed phase time, carrying
// any excess time over so that zero-length phases are skipped cleanly.
func (ar *Ar) setStage() {
	if ar.stage == Attack && !ar.phase.Less(ar.Attack) {
		ar.stage = Release
		ar.releaseVol = units.VolFull
		ar.phase = ar.phase.Sub(ar.Attack)
	}
	if ar.stage == Release && !ar.phase.Less(ar.Release) {
		ar.stage = Done
	}
}

// Get returns the current envelope level. The stage divisions cannot hit
// zero, as zero-length phases are never entered.
func (ar *Ar) Get() sample.Env {
	switch ar.stage {
	case Attack:
		return sample.Env{ar.phase.Quot(ar.Attack)}
	case Release:
		return sample.Env{ar.releaseVol.Gain() * (1 - ar.phase.Quot(ar.Release))}
	default:
		return sample.Env{}
	}
}

func (ar *Ar) Advance() {
	ar.phase.Advance()
	ar.setStage()
}

func (ar *Ar) Retrigger() {
	ar.stage = Attack
	ar.phase = units.TimeZero
	ar.setStage()
}

func (ar *Ar) IsDone() bool {
	return ar.stage == Done
}

// Stop begins the release from the current level, wherever the envelope is.
func (ar *Ar) Stop() {
	ar.releaseVol = units.Vol(ar.Get()[0])
	ar.phase = units.TimeZero
	ar.stage = Release
	ar.setStage()
}

// Panic silences the envelope immediately.
func (ar *Ar) Panic() {
	ar.stage = Done
}

// Adsr is an attack-decay-sustain-release envelope, outputting values from
// 0 to 1. The release phase only begins once the envelope is stopped.
type Adsr struct {
	// Attack is the time from the start to the peak.
	Attack units.Time
	// Decay is the time from the peak to the sustain point.
	Decay units.Time
	// Sustain is the level held until the envelope is stopped.
	Sustain units.Vol
	// Release is the time from the stop to silence.
	Release units.Time

	stage Stage

	// Volume the release ramps down from. Differs from the sustain level
	// when the envelope is stopped before the sustain phase.
	releaseVol units.Vol

	// Time spent in the current stage.
	phase units.Time
}

// NewAdsr builds an ADSR envelope. Zero-length phases are skipped outright.
func NewAdsr(attack, decay units.Time, sustain units.Vol, release units.Time) *Adsr {
	adsr := &Adsr{
		Attack:  attack,
		Decay:   decay,
		Sustain: sustain,
		Release: release,
		stage:   Attack,
	}
	adsr.setStage()
	return adsr
}

// Stage returns the envelope's current stage.
func (ad *Adsr) Stage() Stage {
	return ad.stage
}

// setStage moves to the correct stage for the elapsed phase time, carrying
// any excess time over so that zero-length phases are skipped cleanly.
func (ad *Adsr) setStage() {
	if ad.stage == Attack && !ad.phase.Less(ad.Attack) {
		ad.stage = Decay
		ad.phase = ad.phase.Sub(ad.Attack)
	}
	if ad.stage == Decay && !ad.phase.Less(ad.Decay) {
		ad.stage = Sustain
		ad.phase = ad.phase.Sub(ad.Decay)
	}
	if ad.stage == Release && !ad.phase.Less(ad.Release) {
		ad.stage = Done
	}
}

// Get returns the current envelope level. The stage divisions cannot hit
// zero, as zero-length phases are never entered.
func (ad *Adsr) Get() sample.Env {
	switch ad.stage {
	case Attack:
		return sample.Env{ad.phase.Quot(ad.Attack)}
	case Decay:
		return sample.Env{1 + (ad.Sustain.Gain()-1)*ad.phase.Quot(ad.Decay)}
	case Sustain:
		return sample.Env{ad.Sustain.Gain()}
	case Release:
		return sample.Env{ad.releaseVol.Gain() * (1 - ad.phase.Quot(ad.Release))}
	default:
		return sample.Env{}
	}
}

func (ad *Adsr) Advance() {
	ad.phase.Advance()
	ad.setStage()
}

func (ad *Adsr) Retrigger() {
	ad.stage = Attack
	ad.phase = units.TimeZero
	ad.setStage()
}

func (ad *Adsr) IsDone() bool {
	return ad.stage == Done
}

// Stop begins the release from the current level, wherever the envelope is.
func (ad *Adsr) Stop() {
	ad.releaseVol = units.Vol(ad.Get()[0])
	ad.phase = units.TimeZero
	ad.stage = Release
	ad.setStage()
}

// Panic silences the envelope immediately.
func (ad *Adsr) Panic() {
	ad.stage = Done
}
