// Package control implements time-based control flow: one-shot timers,
// metronomes, and the Seq/Loop event sequencers that modify a signal at
// fixed intervals.
package control

import (
	"github.com/waveforge/waveforge/units"
)

// Timer triggers an event once a target duration has elapsed. The driver
// loop keeps its own elapsed time and calls Tick with it every sample; Tick
// returns true exactly once, on the first call at or past the timer's
// length.
type Timer struct {
	length units.Time
	active bool
}

// NewTimer builds an armed timer with the given length.
func NewTimer(length units.Time) Timer {
	return Timer{length: length, active: true}
}

// Tick reports whether the timer fires at the given elapsed time. A timer
// fires at most once until Reset.
func (tm *Timer) Tick(elapsed units.Time) bool {
	if !tm.active {
		return false
	}
	if elapsed.Less(tm.length) {
		return false
	}
	tm.active = false
	return true
}

// Reset re-arms the timer.
func (tm *Timer) Reset() {
	tm.active = true
}

// Metronome triggers an event periodically, at most once per frame. It
// ticks on the very first frame; test for zero time to skip that one.
type Metronome struct {
	period units.Time
}

// NewMetronome builds a metronome with the given period.
func NewMetronome(period units.Time) Metronome {
	return Metronome{period: period}
}

// Tick reports whether the metronome fires at the given elapsed time.
func (m Metronome) Tick(elapsed units.Time) bool {
	return elapsed.Mod(m.period).Less(units.OneSample)
}
