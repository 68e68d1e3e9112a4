package units

import "math"

// QFactor is the Q factor of a resonant filter, controlling the sharpness or
// bandwidth of its response. Should be positive.
type QFactor float64

// QFromBandwidth builds a Q factor from a bandwidth interval. The bandwidth
// spans the -3 dB frequencies of band-pass and notch filters, and the
// half-gain frequencies of peaking filters.
func QFromBandwidth(bw Interval) QFactor {
	r := bw.Ratio()
	return QFactor(math.Sqrt(r) / (r - 1))
}

// QFromSlope builds a Q factor from a shelf slope and the shelf gain. A slope
// of 1, corresponding to Q = 1/√2, is the steepest for which the frequency
// response stays monotonic.
func QFromSlope(slope float64, vol Vol) QFactor {
	a := math.Sqrt(vol.Gain())
	return QFactor(1 / math.Sqrt((a+1/a)*(1/slope-1)+2))
}

// Float64 returns the Q factor as a plain value.
func (q QFactor) Float64() float64 {
	return float64(q)
}
