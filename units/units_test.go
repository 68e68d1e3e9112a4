package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFracIntParts(t *testing.T) {
	testCases := []struct {
		value float64
		whole uint64
		frac  float64
		desc  string
	}{
		{0, 0, 0, "zero"},
		{1, 1, 0, "one"},
		{0.375, 0, 0.375, "exact_fraction"},
		{2.5, 2, 0.5, "mixed"},
		{12345.25, 12345, 0.25, "large_mixed"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			x := FracFromFloat(tc.value)
			assert.Equal(t, tc.whole, x.Int())
			assert.InDelta(t, tc.frac, x.Frac(), 1e-12)
			assert.InDelta(t, tc.value, x.Float64(), 1.0/65536)
		})
	}
}

func TestFracIntFloor(t *testing.T) {
	x := FracFromFloat(3.75)
	assert.Equal(t, FracFromInt(3), x.Floor())
	assert.Equal(t, FracFromInt(7), FracFromInt(7).Floor())
}

func TestFracIntQuot(t *testing.T) {
	a := FracFromFloat(3)
	b := FracFromFloat(1.5)
	assert.InDelta(t, 2.0, a.Quot(b), 1e-12)
}

func TestFracIntString(t *testing.T) {
	assert.Equal(t, "0", FracFromInt(0).String())
	assert.Equal(t, "1", FracFromInt(1).String())
	assert.Equal(t, "0.375", FracFromFloat(0.375).String())
}

// Advancing one sample at a time must be exact: after k advances the integer
// sample count is exactly k, with no drift, even at counts where a float64
// seconds counter visibly drifts.
func TestTimeAdvanceExact(t *testing.T) {
	const k = 10_000_000

	tm := TimeZero
	for range k {
		tm.Advance()
	}
	require.Equal(t, uint64(k), tm.Samples.Int())
	require.Equal(t, uint16(0), tm.Samples.FracBits())

	// The remaining range up to 1e9 follows from linearity of the fixed
	// point representation; verify directly via arithmetic.
	rest := OneSample.MulFloat(1e9 - k)
	total := tm.Add(rest)
	assert.Equal(t, uint64(1e9), total.Samples.Int())
}

func TestTimeConversions(t *testing.T) {
	testCases := []struct {
		seconds float64
		rate    SampleRate
		samples float64
		desc    string
	}{
		{1, RateCD, 44100, "one_sec_cd"},
		{0.5, RateFilm, 24000, "half_sec_film"},
		{2, RateTelephone, 16000, "two_sec_telephone"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			tm := TimeFromSec(tc.seconds, tc.rate)
			assert.InDelta(t, tc.samples, tm.Float64(), 1.0/65536)
			assert.InDelta(t, tc.seconds, tm.Raw(tc.rate).Seconds(), 1e-9)
		})
	}
}

func TestTimeBeat(t *testing.T) {
	beat := RawBeat(120)
	assert.InDelta(t, 0.5, beat.Seconds(), 1e-12)
	tm := TimeFromRaw(beat, RateCD)
	assert.InDelta(t, 22050, tm.Float64(), 1.0/65536)
}

func TestTimeMod(t *testing.T) {
	tm := TimeFromSamples(10)
	assert.Equal(t, TimeFromSamples(1), tm.Mod(TimeFromSamples(3)))
	assert.True(t, tm.Mod(TimeFromSamples(5)).IsZero())
}

// Phase accumulation must be reassociable: N advances by f equal a single
// fract(v + N*f) within floating tolerance.
func TestValAdvanceFreqWraparound(t *testing.T) {
	testCases := []struct {
		start Val
		freq  Freq
		n     int
		desc  string
	}{
		{0, 0.01, 1000, "centi_cycle"},
		{0.25, 440.0 / 44100.0, 500, "a4_at_cd"},
		{0.9, 0.3, 77, "fast_wrap"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			v := tc.start
			for range tc.n {
				v.AdvanceFreq(tc.freq)
			}
			_, want := math.Modf(tc.start.Float64() + tc.freq.Samples()*float64(tc.n))
			assert.InDelta(t, want, v.Float64(), 1e-6)
		})
	}
}

func TestNewValPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { NewVal(1.5) })
	assert.Panics(t, func() { NewVal(-0.1) })
	assert.NotPanics(t, func() { NewVal(0) })
	assert.NotPanics(t, func() { NewVal(1) })
}

func TestFreqConversions(t *testing.T) {
	f := FreqFromRaw(A4, RateCD)
	assert.InDelta(t, 440.0/44100.0, f.Samples(), 1e-15)
	assert.InDelta(t, 440, f.Raw(RateCD).Hz(), 1e-9)
	assert.InDelta(t, 44100.0/440.0, f.Period().Float64(), 1.0/65536)
}

func TestIntervalArithmetic(t *testing.T) {
	f := A4.Mul(Fifth)
	assert.InDelta(t, 660, f.Hz(), 1e-9)
	assert.InDelta(t, 1.5, f.Div(A4).Ratio(), 1e-12)

	tritone := EdoNote(12, 6)
	assert.InDelta(t, math.Sqrt2, tritone.Ratio(), 1e-12)
	assert.InDelta(t, 2, Octaves(1).Ratio(), 1e-12)
	assert.InDelta(t, 1, Fifth.Inv().Ratio()*Fifth.Ratio(), 1e-12)
}

func TestNoteFreq(t *testing.T) {
	testCases := []struct {
		note float64
		hz   float64
		desc string
	}{
		{69, 440, "a4"},
		{60, 261.6255653005986, "c4"},
		{81, 880, "a5"},
		{57, 220, "a3"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.InDelta(t, tc.hz, NoteFreq(tc.note).Hz(), 1e-9)
			assert.InDelta(t, tc.note, NoteFreq(tc.note).MIDINote(), 1e-9)
		})
	}
}

func TestVolDecibels(t *testing.T) {
	assert.InDelta(t, 0, VolFull.DB(), 1e-12)
	assert.InDelta(t, -6, VolFromDB(-6).DB(), 1e-12)
	assert.InDelta(t, VolMDB6.Gain(), VolFromDB(-6).Gain(), 1e-12)
	assert.InDelta(t, VolDB10.Gain(), VolFromDB(10).Gain(), 1e-12)
	assert.True(t, math.IsInf(VolSilence.DB(), -1))
}

func TestQFactor(t *testing.T) {
	// One octave of bandwidth.
	q := QFromBandwidth(Octave)
	assert.InDelta(t, math.Sqrt2, q.Float64(), 1e-12)

	// Unit slope at unit gain gives 1/sqrt(2).
	q = QFromSlope(1, VolFull)
	assert.InDelta(t, 1/math.Sqrt2, q.Float64(), 1e-12)
}
