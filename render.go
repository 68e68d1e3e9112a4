package waveforge

import (
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
	"github.com/waveforge/waveforge/units"
)

// Render calls song once per whole sample of length and collects the
// resulting frames. The duration is rounded down to the sample; the time
// passed to song starts at zero and advances exactly one sample per call.
func Render[A sample.Audio](length units.Time, song func(units.Time) A) []A {
	n := int(length.Samples.Int())
	frames := make([]A, n)

	time := units.TimeZero
	for i := range n {
		frames[i] = song(time)
		time.Advance()
	}
	return frames
}

// RenderSgn renders a signal for the given duration. The signal is
// advanced, not consumed: rendering twice continues where the first render
// left off.
func RenderSgn[A sample.Audio](length units.Time, sgn signal.Mut[A]) []A {
	return Render(length, func(units.Time) A {
		return signal.Next[A](sgn)
	})
}

// RenderInto fills dst by advancing the signal once per frame. It is the
// allocation-free variant of RenderSgn for callers that reuse buffers.
func RenderInto[A sample.Audio](sgn signal.Mut[A], dst []A) {
	for i := range dst {
		dst[i] = signal.Next[A](sgn)
	}
}
