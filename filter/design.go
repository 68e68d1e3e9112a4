package filter

// Biquadratic filter designs adapted from Robert Bristow-Johnson's Audio EQ
// Cookbook: https://webaudio.github.io/Audio-EQ-Cookbook/audio-eq-cookbook.html

import (
	"math"

	"github.com/waveforge/waveforge/units"
)

// Biquad normalizes explicit biquadratic coefficients by a0.
func Biquad(a0, a1, a2, b0, b1, b2 float64) Coefficients {
	return Normalized(
		[]float64{b0 / a0, b1 / a0, b2 / a0},
		[]float64{a1 / a0, a2 / a0},
	)
}

// LowPass cuts frequencies above freq. Low Q factors result in a deeper
// cut, high factors create a resonant peak at the filter's frequency.
func LowPass(freq units.Freq, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())
	a := ws / (2 * q.Float64())
	b1 := 1 - wc
	b0 := b1 / 2

	return Biquad(1+a, -2*wc, 1-a, b0, b1, b0)
}

// HiPass cuts frequencies below freq. Low Q factors result in a deeper
// cut, high factors create a resonant peak at the filter's frequency.
func HiPass(freq units.Freq, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())
	a := ws / (2 * q.Float64())
	b1 := 1 + wc
	b0 := b1 / 2

	return Biquad(1+a, -2*wc, 1-a, b0, -b1, b0)
}

// BandPass passes a band around freq with 0 dB peak gain; the Q factor
// controls the bandwidth, see units.QFromBandwidth.
func BandPass(freq units.Freq, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())
	a := ws / (2 * q.Float64())

	return Biquad(1+a, -2*wc, 1-a, a, 0, -a)
}

// Notch removes a band around freq; the Q factor controls the bandwidth.
func Notch(freq units.Freq, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())
	a := ws / (2 * q.Float64())
	a1 := -2 * wc

	return Biquad(1+a, a1, 1-a, 1, a1, 1)
}

// AllPass passes all frequencies unchanged in gain, with a phase shift
// that reaches π (polarity inversion) at freq. High Q factors make the
// phase change steeper.
func AllPass(freq units.Freq, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())
	a := ws / (2 * q.Float64())
	a0 := 1 + a
	a1 := -2 * wc
	a2 := 1 - a

	return Biquad(a0, a1, a2, a2, a1, a0)
}

// Peaking boosts or cuts a band around freq by vol; the Q factor controls
// the bandwidth between half-gain frequencies.
func Peaking(freq units.Freq, vol units.Vol, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())
	a1 := -2 * wc

	amp := math.Sqrt(vol.Gain())
	a := ws / (2 * q.Float64())
	axa := a * amp
	ada := a / amp

	return Biquad(1+ada, a1, 1-ada, 1+axa, a1, 1-axa)
}

// LowShelf boosts or cuts everything below the corner frequency by vol;
// the Q factor controls the slope, see units.QFromSlope.
func LowShelf(freq units.Freq, vol units.Vol, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())

	amp := math.Sqrt(vol.Gain())
	axa := math.Sqrt(amp) * ws / q.Float64()

	ap1 := amp + 1
	am1 := amp - 1
	ap1w := ap1 * wc
	am1w := am1 * wc

	apa := ap1 + am1w
	ama := ap1 - am1w

	return Biquad(
		apa+axa, -2*(am1+ap1w), apa-axa,
		amp*(ama+axa), 2*amp*(am1-ap1w), amp*(ama-axa),
	)
}

// HiShelf boosts or cuts everything above the corner frequency by vol; the
// Q factor controls the slope, see units.QFromSlope.
func HiShelf(freq units.Freq, vol units.Vol, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())

	amp := math.Sqrt(vol.Gain())
	axa := math.Sqrt(amp) * ws / q.Float64()

	ap1 := amp + 1
	am1 := amp - 1
	ap1w := ap1 * wc
	am1w := am1 * wc

	apa := ap1 + am1w
	ama := ap1 - am1w

	return Biquad(
		ama+axa, 2*(am1-ap1w), ama-axa,
		amp*(apa+axa), -2*amp*(am1+ap1w), amp*(apa-axa),
	)
}
