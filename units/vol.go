package units

import "math"

// Vol is a linear gain factor. Unit gain corresponds to 0 dB.
type Vol float64

const (
	// VolSilence is zero gain.
	VolSilence Vol = 0

	// VolHalf is half amplitude.
	VolHalf Vol = 0.5

	// VolFull is unit gain.
	VolFull Vol = 1

	// VolTwice is twice the amplitude.
	VolTwice Vol = 2

	// VolMDB3 is -3 dB, roughly a halving of power.
	VolMDB3 Vol = 0.7079457843841379

	// VolMDB6 is -6 dB, roughly a halving of amplitude.
	VolMDB6 Vol = 0.5011872336272722

	// VolMDB10 is -10 dB, what a listener might perceive as half as loud.
	VolMDB10 Vol = 0.31622776601683794

	// VolDB3 is +3 dB, roughly a doubling of power.
	VolDB3 Vol = 1.4125375446227544

	// VolDB6 is +6 dB, roughly a doubling of amplitude.
	VolDB6 Vol = 1.9952623149688795

	// VolDB10 is +10 dB, what a listener might perceive as twice as loud.
	VolDB10 Vol = 3.1622776601683795
)

// VolFromDB builds a gain from a value in decibels.
func VolFromDB(db float64) Vol {
	return Vol(math.Pow(10, db/20))
}

// Gain returns the gain as a plain factor.
func (v Vol) Gain() float64 {
	return float64(v)
}

// DB returns the gain in decibels.
func (v Vol) DB() float64 {
	return 20 * math.Log10(float64(v))
}
