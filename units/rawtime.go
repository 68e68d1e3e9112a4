package units

import "fmt"

// RawTime is an amount of time in seconds.
//
// Most of the engine works in the sample domain and wants a Time instead; use
// TimeFromRaw with an explicit SampleRate to convert.
type RawTime float64

const (
	// RawZero is no time.
	RawZero RawTime = 0

	// RawSec is one second.
	RawSec RawTime = 1

	// RawMin is one minute.
	RawMin RawTime = 60

	// RawHour is one hour.
	RawHour RawTime = 60 * 60

	// RawDay is one day.
	RawDay RawTime = 24 * 60 * 60
)

// RawBeat returns the duration of a single beat at the given tempo in beats
// per minute.
func RawBeat(bpm float64) RawTime {
	return RawTime(60.0 / bpm)
}

// Seconds returns the time in seconds.
func (r RawTime) Seconds() float64 {
	return float64(r)
}

// Milliseconds returns the time in milliseconds.
func (r RawTime) Milliseconds() float64 {
	return 1e3 * float64(r)
}

// Freq returns the frequency in hertz whose period is this time.
func (r RawTime) Freq() RawFreq {
	return RawFreq(1.0 / float64(r))
}

// String formats the time in seconds.
func (r RawTime) String() string {
	return fmt.Sprintf("%v s", float64(r))
}
