package units

// SampleRate is the number of samples per second of playback or of an audio
// file, in hertz.
type SampleRate uint32

const (
	// RateTelephone is telephone quality, 8 kHz.
	RateTelephone SampleRate = 8_000

	// RateHalf is half the standard CD audio rate.
	RateHalf SampleRate = RateCD / 2

	// RateCD is the standard rate for CD audio, 44.1 kHz.
	RateCD SampleRate = 44_100

	// RateFilm is the standard rate for film, 48 kHz.
	RateFilm SampleRate = 48_000

	// DefaultRate is the rate assumed by the FromSecDefault style helpers.
	// Conversions never consult it implicitly; it is sugar only.
	DefaultRate = RateCD
)

// Float64 returns the rate as a float64.
func (sr SampleRate) Float64() float64 {
	return float64(sr)
}
