package units

import "math"

// Interval is a ratio between two frequencies. Multiplying a frequency by an
// interval transposes it; dividing two frequencies yields the interval
// between them. The ratio should be positive.
type Interval float64

const (
	// Unison is the trivial interval 1/1.
	Unison Interval = 1

	// Min3 is a just minor third, 6/5.
	Min3 Interval = 6.0 / 5.0

	// Maj3 is a just major third, 5/4.
	Maj3 Interval = 5.0 / 4.0

	// Fourth is a perfect fourth, 4/3.
	Fourth Interval = 4.0 / 3.0

	// Fifth is a perfect fifth, 3/2.
	Fifth Interval = 3.0 / 2.0

	// Min6 is a just minor sixth, 8/5.
	Min6 Interval = 8.0 / 5.0

	// Maj6 is a just major sixth, 5/3.
	Maj6 Interval = 5.0 / 3.0

	// Harm7 is the harmonic seventh, 7/4.
	Harm7 Interval = 7.0 / 4.0

	// Octave is the octave, 2/1.
	Octave Interval = 2

	// Tritave is the tritave, 3/1.
	Tritave Interval = 3
)

// EdoNote returns the interval corresponding to a (possibly fractional) note
// in an equal division of the octave.
func EdoNote(edo uint16, note float64) Interval {
	return Interval(math.Pow(2, note/float64(edo)))
}

// Note returns the interval corresponding to a note in 12-EDO, i.e. a number
// of semitones.
func Note(note float64) Interval {
	return EdoNote(12, note)
}

// Octaves returns an interval spanning the given number of octaves.
func Octaves(oct float64) Interval {
	return Interval(math.Pow(2, oct))
}

// Inv returns the inverse ratio.
func (i Interval) Inv() Interval {
	return 1 / i
}

// Sqrt returns the square root of the interval. A 12-EDO tritone is exactly
// the square root of an octave.
func (i Interval) Sqrt() Interval {
	return Interval(math.Sqrt(float64(i)))
}

// Pow raises the interval to a floating-point power.
func (i Interval) Pow(n float64) Interval {
	return Interval(math.Pow(float64(i), n))
}

// Ratio returns the interval as a plain ratio.
func (i Interval) Ratio() float64 {
	return float64(i)
}
