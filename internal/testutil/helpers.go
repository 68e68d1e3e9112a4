// Package testutil provides reusable test helpers for signal and buffer
// assertions.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-12
	LooseTolerance   = 1e-6
)

// AssertFinite verifies that no channel of any frame is NaN or Inf.
func AssertFinite[S sample.Sample](t *testing.T, frames []S) bool {
	t.Helper()
	for i, frame := range frames {
		for c := 0; c < len(frame); c++ {
			v := frame[c]
			if math.IsNaN(v) {
				return assert.Fail(t, "found NaN", "frames[%d][%d] is NaN", i, c)
			}
			if math.IsInf(v, 0) {
				return assert.Fail(t, "found Inf", "frames[%d][%d] is Inf", i, c)
			}
		}
	}
	return true
}

// AssertInRange verifies that every channel of every frame lies within
// [lo, hi].
func AssertInRange[S sample.Sample](t *testing.T, frames []S, lo, hi float64) bool {
	t.Helper()
	for i, frame := range frames {
		for c := 0; c < len(frame); c++ {
			v := frame[c]
			if v < lo || v > hi {
				return assert.Fail(t, "value out of range",
					"frames[%d][%d]=%f is outside [%f, %f]", i, c, v, lo, hi)
			}
		}
	}
	return true
}

// AssertFramesClose verifies that two frame slices match channel by
// channel within the given tolerance.
func AssertFramesClose[S sample.Sample](t *testing.T, want, got []S, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, got, len(want)) {
		return false
	}
	for i := range want {
		for c := 0; c < len(want[i]); c++ {
			if !assert.InDelta(t, want[i][c], got[i][c], tolerance,
				"frames differ at frame %d channel %d", i, c) {
				return false
			}
		}
	}
	return true
}

// AssertYields advances a signal and verifies that its first channel
// produces the expected values in order.
func AssertYields[S sample.Sample](t *testing.T, sgn signal.Mut[S], want []float64, tolerance float64) bool {
	t.Helper()
	for i, w := range want {
		got := signal.Next[S](sgn)
		if !assert.InDelta(t, w, got[0], tolerance, "sample %d", i) {
			return false
		}
	}
	return true
}

// AssertSilent verifies that every frame is exactly zero on all channels.
func AssertSilent[S sample.Sample](t *testing.T, frames []S) bool {
	t.Helper()
	for i, frame := range frames {
		if frame != sample.Zero[S]() {
			return assert.Fail(t, "not silent", "frames[%d]=%v", i, frame)
		}
	}
	return true
}
