package waveforge

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/waveforge/waveforge/buffer"
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
	"github.com/waveforge/waveforge/units"
)

// Common errors returned by the export functions.
var (
	// ErrInvalidConfig indicates invalid export configuration parameters.
	ErrInvalidConfig = errors.New("invalid export configuration")

	// ErrChannelMismatch indicates left/right channels of unequal length.
	ErrChannelMismatch = errors.New("channel buffers have unequal lengths")
)

// SampleFormat selects the on-disk WAV sample encoding.
type SampleFormat int

const (
	// FormatFloat32 writes 32-bit IEEE float samples. Frames stay 64-bit
	// inside the library and are narrowed only at this boundary.
	FormatFloat32 SampleFormat = iota

	// FormatPCM16 writes 16-bit integer PCM (CD quality).
	FormatPCM16

	// FormatPCM24 writes 24-bit integer PCM (studio).
	FormatPCM24

	// FormatPCM32 writes 32-bit integer PCM.
	FormatPCM32
)

// WAV audio format tags.
const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// PCM full-scale values per bit depth.
const (
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// bitDepth returns the on-disk bits per sample.
func (f SampleFormat) bitDepth() int {
	switch f {
	case FormatPCM16:
		return 16
	case FormatPCM24:
		return 24
	default:
		return 32
	}
}

// pcmScale returns the integer full-scale value for a PCM format.
func (f SampleFormat) pcmScale() float64 {
	switch f {
	case FormatPCM16:
		return maxInt16
	case FormatPCM24:
		return maxInt24
	default:
		return maxInt32
	}
}

// Config describes a WAV export target.
type Config struct {
	// Rate is the output sample rate. Zero means DefaultRate.
	Rate units.SampleRate

	// Format is the on-disk sample encoding. The zero value is
	// FormatFloat32.
	Format SampleFormat
}

// withDefaults fills in the zero fields.
func (c Config) withDefaults() Config {
	if c.Rate == 0 {
		c.Rate = units.DefaultRate
	}
	return c
}

// Validate checks the configuration after defaults are applied.
func (c Config) Validate() error {
	switch c.Format {
	case FormatFloat32, FormatPCM16, FormatPCM24, FormatPCM32:
	default:
		return fmt.Errorf("%w: unknown sample format %d", ErrInvalidConfig, c.Format)
	}
	return nil
}

// clampUnit limits a sample value to the representable [-1, 1] range.
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// WriteWAV writes rendered frames to a WAV file. The channel count is
// taken from the frame type: Mono frames produce a mono file, Stereo
// frames an interleaved stereo file. PCM formats clamp values outside
// [-1, 1]; the float format writes them as-is.
func WriteWAV[A sample.Audio](path string, cfg Config, frames []A) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.withDefaults()

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	// The sample-layout guarantee makes the frame slice an interleaved
	// float64 view at no cost.
	flat := buffer.Flat(frames)
	channels := sample.Channels[A]()

	if err := writeSamples(out, cfg, channels, flat); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// writeSamples encodes the interleaved samples in the configured format.
func writeSamples(out *os.File, cfg Config, channels int, flat []float64) error {
	if cfg.Format == FormatFloat32 {
		enc := wav.NewEncoder(out, int(cfg.Rate), 32, channels, wavFormatFloat)
		for _, v := range flat {
			if err := enc.WriteFrame(float32(v)); err != nil {
				_ = enc.Close()
				return fmt.Errorf("failed to write WAV data: %w", err)
			}
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to finalize WAV file: %w", err)
		}
		return nil
	}

	enc := wav.NewEncoder(out, int(cfg.Rate), cfg.Format.bitDepth(), channels, wavFormatPCM)
	scale := cfg.Format.pcmScale()
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  int(cfg.Rate),
		},
		Data:           make([]int, len(flat)),
		SourceBitDepth: cfg.Format.bitDepth(),
	}
	for i, v := range flat {
		buf.Data[i] = int(math.Round(clampUnit(v) * scale))
	}
	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// WriteWAVChannels interleaves separate left and right mono channels and
// writes them as a stereo WAV file.
func WriteWAVChannels(path string, cfg Config, left, right []sample.Mono) error {
	if len(left) != len(right) {
		return fmt.Errorf("%w: left %d, right %d",
			ErrChannelMismatch, len(left), len(right))
	}
	return WriteWAV(path, cfg, buffer.Interleave(left, right))
}

// Export renders a song function for the given duration and writes the
// result as a WAV file. The duration is rounded down to the sample.
func Export[A sample.Audio](path string, length units.Time, cfg Config, song func(units.Time) A) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return WriteWAV(path, cfg, Render(length, song))
}

// ExportSgn renders a signal for the given duration and writes the result
// as a WAV file. The signal is advanced, not consumed.
func ExportSgn[A sample.Audio](path string, length units.Time, cfg Config, sgn signal.Mut[A]) error {
	return Export(path, length, cfg, func(units.Time) A {
		return signal.Next[A](sgn)
	})
}
