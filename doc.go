// Package waveforge is a compositional library for musical composition and
// audio synthesis in pure Go.
//
// Sounds are built by composing signals: oscillators and noise at the
// leaves, envelopes, filters, and delays wrapped around them, sequencers
// and polyphony at the branch points. A driver loop repeatedly advances
// the root signal one sample at a time and collects its output.
//
// # Quick Start
//
// The most basic piece possible, a one-second sine wave:
//
//	const rate = units.RateCD
//
//	length := units.TimeFromSec(1.0, rate)
//	pitch := units.FreqFromHz(440.0, rate)
//
//	osc := gen.NewLoop[sample.Mono](curve.Sin{}, pitch)
//	err := waveforge.ExportSgn[sample.Mono]("sine.wav", length, waveforge.Config{Rate: rate}, osc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// More elaborate pieces wrap the oscillator before rendering:
//
//	voice := env.NewArEnv[sample.Mono](osc, attack, release)
//	arp := control.NewArpeggio[sample.Mono](intervals, voice, notes)
//
// # Packages
//
// The library splits into small packages, composed freely:
//
//   - units: exact time, frequency, phase, and gain arithmetic
//   - sample: mono, stereo, and envelope frames with vector arithmetic
//   - signal: the Signal/Mut contract and generic signal combinators
//   - buffer: ring buffers, interpolation, and time stretching
//   - curve: the plain-curve catalogue backing the oscillators
//   - gen: curve, noise, and buffer-backed generators
//   - env: AR/ADSR envelopes, tremolo, and vibrato
//   - filter: biquad designs and a direct form 1 evaluator
//   - effects: delays with feedback, panning, gating
//   - control: timers, metronomes, and event sequencing
//   - poly: keyed polyphonic voice management
//
// The root package holds the driver loop ([Render], [RenderSgn]) and the
// WAV export boundary ([Export], [ExportSgn], [WriteWAV]).
//
// # Exactness
//
// Time is counted in samples with a 16-bit binary fraction rather than in
// floating-point seconds, so advancing one sample at a time accumulates no
// rounding error: events land on the exact frame they were scheduled for,
// even billions of samples into a piece.
//
// # Thread Safety
//
// Signals are single-owner values: one goroutine advances a signal graph.
// Rendering separate graphs on separate goroutines is safe.
package waveforge
