package buffer

import (
	"math"
	"unsafe"

	"github.com/tphakala/simd/f64"

	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/units"
)

// Flat reinterprets a buffer of samples as a flat float64 slice, channels
// interleaved. This is sound because every sample type is laid out as a
// plain array of float64, one entry per channel.
func Flat[S sample.Sample](data []S) []float64 {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice(&data[0][0], len(data)*sample.Channels[S]())
}

// Energy returns the sum of squares over all channels of a buffer.
func Energy[S sample.Sample](data []S) float64 {
	flat := Flat(data)
	if len(flat) == 0 {
		return 0
	}
	return f64.DotProductUnsafe(flat, flat)
}

// RMS returns the root-mean-square level over all channels of a buffer.
func RMS[S sample.Sample](data []S) float64 {
	flat := Flat(data)
	if len(flat) == 0 {
		return 0
	}
	return math.Sqrt(Energy(data) / float64(len(flat)))
}

// Mean returns the average value over all channels of a buffer, i.e. its DC
// offset.
func Mean[S sample.Sample](data []S) float64 {
	flat := Flat(data)
	if len(flat) == 0 {
		return 0
	}
	return f64.Sum(flat) / float64(len(flat))
}

// Peak returns the per-channel maximum absolute value of a buffer.
func Peak[S sample.Sample](data []S) S {
	var peak S
	for _, s := range data {
		for i := 0; i < len(s); i++ {
			if a := math.Abs(s[i]); a > peak[i] {
				peak[i] = a
			}
		}
	}
	return peak
}

// Gain scales every channel of a buffer in place.
func Gain[S sample.Sample](data []S, vol units.Vol) {
	flat := Flat(data)
	if len(flat) == 0 {
		return
	}
	f64.Scale(flat, flat, vol.Gain())
}

// Interleave combines separate left and right buffers into stereo frames.
// The buffers must have equal length.
func Interleave(l, r []sample.Mono) []sample.Stereo {
	out := make([]sample.Stereo, len(l))
	if len(l) == 0 {
		return out
	}
	f64.Interleave2(Flat(out), Flat(l), Flat(r))
	return out
}
