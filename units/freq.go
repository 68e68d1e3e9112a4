package units

import (
	"fmt"
	"math"
)

// Freq is a frequency measured in cycles per sample, so that the per-sample
// phase increment of an oscillator is the frequency value itself.
//
// Frequencies are assumed non-negative; this is not checked. Convert from a
// RawFreq in hertz with FreqFromRaw and an explicit SampleRate.
type Freq float64

// FreqFromRaw converts a RawFreq in hertz into a Freq, using the given
// sample rate.
func FreqFromRaw(raw RawFreq, rate SampleRate) Freq {
	return Freq(raw.Hz() / rate.Float64())
}

// FreqFromRawDefault converts a RawFreq in hertz into a Freq at DefaultRate.
func FreqFromRawDefault(raw RawFreq) Freq {
	return FreqFromRaw(raw, DefaultRate)
}

// FreqFromHz builds a Freq from a value in hertz and a sample rate.
func FreqFromHz(hz float64, rate SampleRate) Freq {
	return FreqFromRaw(RawFreq(hz), rate)
}

// Raw converts the frequency into hertz, using the given sample rate.
func (f Freq) Raw(rate SampleRate) RawFreq {
	return RawFreq(float64(f) * rate.Float64())
}

// Samples returns the frequency in cycles per sample.
func (f Freq) Samples() float64 {
	return float64(f)
}

// Period returns the duration of one cycle.
func (f Freq) Period() Time {
	return TimeFromSamples(1.0 / float64(f))
}

// Angular returns the angular frequency in radians per sample, as used by
// the biquad design formulas.
func (f Freq) Angular() float64 {
	return 2 * math.Pi * float64(f)
}

// Mul transposes the frequency by an interval.
func (f Freq) Mul(i Interval) Freq {
	return Freq(float64(f) * float64(i))
}

// Div returns the interval between two frequencies.
func (f Freq) Div(g Freq) Interval {
	return Interval(float64(f) / float64(g))
}

// Bend transposes the frequency by a (possibly fractional) number of notes in
// the given equal division of the octave.
func (f Freq) Bend(edo uint16, note float64) Freq {
	return f.Mul(EdoNote(edo, note))
}

// RawFreq is a frequency in hertz. Must be positive.
//
// Most of the engine works in the sample domain and wants a Freq instead.
type RawFreq float64

// A4 is concert pitch, 440 Hz, the tuning reference for NoteFreq.
const A4 RawFreq = 440

// a4MIDI is the MIDI note index of A4.
const a4MIDI = 69.0

// NoteFreq returns the frequency of a (possibly fractional) MIDI note,
// assuming 12-tone equal temperament tuned to A4 = 440 Hz.
func NoteFreq(note float64) RawFreq {
	return A4.Bend(12, note-a4MIDI)
}

// Hz returns the frequency in hertz.
func (r RawFreq) Hz() float64 {
	return float64(r)
}

// Period returns the duration of one cycle in seconds.
func (r RawFreq) Period() RawTime {
	return RawTime(1.0 / float64(r))
}

// Mul transposes the frequency by an interval.
func (r RawFreq) Mul(i Interval) RawFreq {
	return RawFreq(float64(r) * float64(i))
}

// Div returns the interval between two frequencies.
func (r RawFreq) Div(s RawFreq) Interval {
	return Interval(float64(r) / float64(s))
}

// Bend transposes the frequency by a (possibly fractional) number of notes in
// the given equal division of the octave.
func (r RawFreq) Bend(edo uint16, note float64) RawFreq {
	return r.Mul(EdoNote(edo, note))
}

// MIDINote rounds the frequency to the nearest fractional MIDI note,
// assuming A4 = 440 Hz tuning.
func (r RawFreq) MIDINote() float64 {
	return math.Log2(float64(r)/float64(A4))*12 + a4MIDI
}

// String formats the frequency in hertz.
func (r RawFreq) String() string {
	return fmt.Sprintf("%v Hz", float64(r))
}
