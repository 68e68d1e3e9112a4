package waveforge_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waveforge/waveforge"
	"github.com/waveforge/waveforge/curve"
	"github.com/waveforge/waveforge/gen"
	"github.com/waveforge/waveforge/internal/testutil"
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/units"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		desc    string
		cfg     waveforge.Config
		wantErr bool
	}{
		{desc: "zero config uses defaults", cfg: waveforge.Config{}},
		{desc: "explicit CD quality", cfg: waveforge.Config{Rate: units.RateCD, Format: waveforge.FormatPCM16}},
		{desc: "24-bit studio", cfg: waveforge.Config{Format: waveforge.FormatPCM24}},
		{desc: "32-bit PCM", cfg: waveforge.Config{Format: waveforge.FormatPCM32}},
		{desc: "unknown format", cfg: waveforge.Config{Format: waveforge.SampleFormat(99)}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, waveforge.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// open reads back the header of a WAV file written by the export functions.
func open(t *testing.T, path string) *wav.Decoder {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile(), "export must produce a valid WAV file")
	return dec
}

// decodePCM reads back all integer PCM samples of a WAV file.
func decodePCM(t *testing.T, path string) (*wav.Decoder, []int) {
	t.Helper()
	dec := open(t, path)
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	return dec, buf.Data
}

func TestWriteWAVFloatHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "float.wav")

	osc := gen.NewLoop[sample.Mono](curve.Sin{}, units.FreqFromHz(440, units.RateCD))
	frames := waveforge.RenderSgn[sample.Mono](units.TimeFromSamples(100), osc)
	testutil.AssertFinite(t, frames)
	testutil.AssertInRange(t, frames, -1, 1)

	require.NoError(t, waveforge.WriteWAV(path, waveforge.Config{}, frames))

	dec := open(t, path)
	dec.ReadInfo()
	assert.EqualValues(t, 3, dec.WavAudioFormat, "default export is IEEE float")
	assert.EqualValues(t, 32, dec.BitDepth)
	assert.EqualValues(t, 1, dec.NumChans)
	assert.EqualValues(t, units.DefaultRate, dec.SampleRate)
}

func TestWriteWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sine.wav")

	osc := gen.NewLoop[sample.Mono](curve.Sin{}, units.FreqFromHz(440, units.RateCD))
	frames := waveforge.RenderSgn[sample.Mono](units.TimeFromSamples(200), osc)

	cfg := waveforge.Config{Rate: units.RateCD, Format: waveforge.FormatPCM16}
	require.NoError(t, waveforge.WriteWAV(path, cfg, frames))

	dec, data := decodePCM(t, path)
	assert.EqualValues(t, 1, dec.NumChans)
	assert.EqualValues(t, units.RateCD, dec.SampleRate)
	assert.EqualValues(t, 16, dec.BitDepth)
	require.Len(t, data, 200)

	for i, want := range frames {
		assert.InDelta(t, want[0], float64(data[i])/32767.0, 1.0/32767.0,
			"sample %d survives the PCM round trip", i)
	}
}

func TestWriteWAVStereoInterleaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")

	frames := []sample.Stereo{{0.5, -0.5}, {0.25, -0.25}}
	cfg := waveforge.Config{Format: waveforge.FormatPCM16}
	require.NoError(t, waveforge.WriteWAV(path, cfg, frames))

	dec, data := decodePCM(t, path)
	assert.EqualValues(t, 2, dec.NumChans)
	require.Len(t, data, 4)

	assert.InDelta(t, 0.5, float64(data[0])/32767.0, 1e-4)
	assert.InDelta(t, -0.5, float64(data[1])/32767.0, 1e-4)
	assert.InDelta(t, 0.25, float64(data[2])/32767.0, 1e-4)
	assert.InDelta(t, -0.25, float64(data[3])/32767.0, 1e-4)
}

func TestWriteWAVClampsOverdrive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hot.wav")

	frames := []sample.Mono{{2}, {-2}}
	cfg := waveforge.Config{Format: waveforge.FormatPCM16}
	require.NoError(t, waveforge.WriteWAV(path, cfg, frames))

	_, data := decodePCM(t, path)
	require.Len(t, data, 2)
	assert.Equal(t, 32767, data[0], "values above full scale clamp")
	assert.Equal(t, -32767, data[1], "values below full scale clamp")
}

func TestWriteWAVChannels(t *testing.T) {
	left := []sample.Mono{{0.1}, {0.2}}
	right := []sample.Mono{{0.3}}
	cfg := waveforge.Config{Format: waveforge.FormatPCM16}
	err := waveforge.WriteWAVChannels("unused.wav", cfg, left, right)
	assert.ErrorIs(t, err, waveforge.ErrChannelMismatch)

	path := filepath.Join(t.TempDir(), "channels.wav")
	right = append(right, sample.Mono{0.4})
	require.NoError(t, waveforge.WriteWAVChannels(path, cfg, left, right))

	dec, data := decodePCM(t, path)
	assert.EqualValues(t, 2, dec.NumChans)
	require.Len(t, data, 4)
	assert.InDelta(t, 0.1, float64(data[0])/32767.0, 1e-4)
	assert.InDelta(t, 0.3, float64(data[1])/32767.0, 1e-4)
}

func TestExportSgn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "piece.wav")

	osc := gen.NewLoop[sample.Mono](curve.Tri{}, units.FreqFromHz(220, units.RateCD))
	cfg := waveforge.Config{Format: waveforge.FormatPCM16}
	err := waveforge.ExportSgn[sample.Mono](path, units.TimeFromSamples(50), cfg, osc)
	require.NoError(t, err)

	_, data := decodePCM(t, path)
	assert.Len(t, data, 50)
}

func TestExportRejectsBadConfig(t *testing.T) {
	err := waveforge.Export(
		filepath.Join(t.TempDir(), "bad.wav"),
		units.TimeFromSamples(10),
		waveforge.Config{Format: waveforge.SampleFormat(7)},
		func(units.Time) sample.Mono { return sample.Mono{} },
	)
	assert.ErrorIs(t, err, waveforge.ErrInvalidConfig)
}
