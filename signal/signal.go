// Package signal defines the stream contract at the heart of the engine and
// the generic combinators for composing streams.
//
// A Signal produces one sample per time step through a side-effect-free Get.
// A Mut additionally advances its internal state one sample at a time and can
// be retriggered back to its initial state. Everything in the engine, from
// oscillators to filters to whole songs, implements this contract; composition
// is by nesting, with one signal owning the signals it delegates to.
//
// Optional capabilities (Done, Stopper, Panicker, Frequency, Based) are
// separate interfaces that a signal may or may not satisfy. Wrapper
// combinators forward each capability when the wrapped signal provides it;
// the package-level helpers (IsDone, Stop, Panic, ...) perform that dynamic
// check with a sensible default when the capability is absent.
package signal

import (
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/units"
)

// Signal is a stream of samples, one per time step.
type Signal[S sample.Sample] interface {
	// Get returns the current sample. It is idempotent between calls to
	// Advance.
	Get() S
}

// Mut is a signal that owns mutable state which advances one sample at a
// time.
type Mut[S sample.Sample] interface {
	Signal[S]

	// Advance moves the internal state forward by exactly one sample. It
	// returns nothing: anything worth observing must be exposed through
	// other methods.
	Advance()

	// Retrigger resets the signal to its initial state, as if newly
	// constructed, but keeps externally set parameters. A retriggered
	// oscillator keeps its frequency but restarts its phase.
	Retrigger()
}

// Next returns the current sample and advances the signal.
func Next[S sample.Sample](sgn Mut[S]) S {
	out := sgn.Get()
	sgn.Advance()
	return out
}

// Done is the capability of knowing when a signal has decayed to permanent
// silence.
type Done interface {
	IsDone() bool
}

// Stopper is the capability of releasing a note: the signal begins winding
// down, though not necessarily silencing immediately.
type Stopper interface {
	Stop()
}

// Panicker is the capability of forcing immediate, unconditional silence.
type Panicker interface {
	Panic()
}

// Frequency is the capability of exposing a mutable main frequency.
type Frequency interface {
	Freq() units.Freq
	SetFreq(units.Freq)
}

// Based is the capability of exposing the signal a wrapper delegates to,
// so that the innermost leaf of a wrapper chain can be reached.
type Based interface {
	Base() any
}

// IsDone reports whether the signal is done. Signals that do not track
// completion never report done.
func IsDone(sgn any) bool {
	if d, ok := sgn.(Done); ok {
		return d.IsDone()
	}
	return false
}

// Stop forwards a note-off to the signal if it supports one, reporting
// whether it did.
func Stop(sgn any) bool {
	if s, ok := sgn.(Stopper); ok {
		s.Stop()
		return true
	}
	return false
}

// Panic forces the signal silent if it supports that, reporting whether it
// did.
func Panic(sgn any) bool {
	if p, ok := sgn.(Panicker); ok {
		p.Panic()
		return true
	}
	return false
}

// FreqOf returns the signal's main frequency, or zero if it has none.
func FreqOf(sgn any) units.Freq {
	if f, ok := sgn.(Frequency); ok {
		return f.Freq()
	}
	return 0
}

// SetFreq sets the signal's main frequency if it has one, reporting whether
// it did.
func SetFreq(sgn any, freq units.Freq) bool {
	if f, ok := sgn.(Frequency); ok {
		f.SetFreq(freq)
		return true
	}
	return false
}

// BaseOf walks a wrapper chain down to its innermost signal.
func BaseOf(sgn any) any {
	for {
		b, ok := sgn.(Based)
		if !ok {
			return sgn
		}
		inner := b.Base()
		if inner == sgn {
			return sgn
		}
		sgn = inner
	}
}
