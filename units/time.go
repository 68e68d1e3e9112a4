package units

import "fmt"

// Time is an amount of time measured in samples.
//
// The sample count is stored as a FracInt rather than a float, which removes
// all cumulative error when incrementing a time one sample at a time: a piece
// lasts exactly as long as it says it does, even after billions of samples.
// Converting to or from a RawTime in seconds requires a SampleRate.
type Time struct {
	// Samples is the number of samples, with 16 fractional bits.
	Samples FracInt
}

// TimeZero is no time at all.
var TimeZero = Time{}

// OneSample is the duration of a single sample.
var OneSample = Time{Samples: FracOne}

// MaxTime is the greatest duration supported. At 44.1 kHz this is roughly
// 136 years, well outside any practical concern.
var MaxTime = Time{Samples: FracMax}

// NewTime builds a Time from a sample count.
func NewTime(samples FracInt) Time {
	return Time{Samples: samples}
}

// TimeFromSamples builds a Time from a floating-point number of samples,
// rounded to the nearest representable value.
func TimeFromSamples(samples float64) Time {
	return NewTime(FracFromFloat(samples))
}

// TimeFromRaw converts a RawTime in seconds into a Time, using the given
// sample rate.
func TimeFromRaw(raw RawTime, rate SampleRate) Time {
	return TimeFromSamples(raw.Seconds() * rate.Float64())
}

// TimeFromSec builds a Time from a duration in seconds and a sample rate.
func TimeFromSec(seconds float64, rate SampleRate) Time {
	return TimeFromRaw(RawTime(seconds), rate)
}

// TimeFromSecDefault builds a Time from a duration in seconds at DefaultRate.
func TimeFromSecDefault(seconds float64) Time {
	return TimeFromSec(seconds, DefaultRate)
}

// Raw converts the Time into seconds, using the given sample rate.
func (t Time) Raw(rate SampleRate) RawTime {
	return RawTime(t.Samples.Float64() / rate.Float64())
}

// Advance increments the time by one sample. Thanks to the FracInt backing
// this is an exact operation.
func (t *Time) Advance() {
	t.Samples += FracOne
}

// Float64 returns the time as a floating-point number of samples.
func (t Time) Float64() float64 {
	return t.Samples.Float64()
}

// IsZero reports whether the time equals zero.
func (t Time) IsZero() bool {
	return t.Samples == 0
}

// Floor rounds down to a whole number of samples.
func (t Time) Floor() Time {
	return NewTime(t.Samples.Floor())
}

// Add returns the sum of two times.
func (t Time) Add(u Time) Time {
	return NewTime(t.Samples + u.Samples)
}

// Sub returns the difference of two times. The subtrahend must not exceed t.
func (t Time) Sub(u Time) Time {
	return NewTime(t.Samples - u.Samples)
}

// MulFloat scales the time by a non-negative factor.
func (t Time) MulFloat(f float64) Time {
	return NewTime(t.Samples.MulFloat(f))
}

// DivFloat divides the time by a positive factor.
func (t Time) DivFloat(f float64) Time {
	return NewTime(t.Samples.DivFloat(f))
}

// Quot returns the ratio of two times as a float64.
func (t Time) Quot(u Time) float64 {
	return t.Samples.Quot(u.Samples)
}

// Less reports whether t is strictly shorter than u.
func (t Time) Less(u Time) bool {
	return t.Samples < u.Samples
}

// Freq returns the frequency whose period is this time.
func (t Time) Freq() Freq {
	return Freq(1.0 / t.Samples.Float64())
}

// String formats the time as a sample count.
func (t Time) String() string {
	return fmt.Sprintf("%v samples", t.Samples)
}

// Mod returns the remainder of t divided by m, at full fractional
// precision.
func (t Time) Mod(m Time) Time {
	return Time{Samples: t.Samples % m.Samples}
}
