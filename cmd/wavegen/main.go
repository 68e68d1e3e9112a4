// Command wavegen renders a short generative piece to a WAV file.
//
// Usage:
//
//	wavegen -out piece.wav
//	wavegen -out piece.wav -dur 10 -rate 48000 -format pcm24
//
// The piece layers a polyphonic chord pad, an arpeggiated melody, and a
// filtered bass over a ping-pong stereo delay. It exists mostly as a
// worked example of composing the library's pieces into a full signal
// graph.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/waveforge/waveforge"
	"github.com/waveforge/waveforge/control"
	"github.com/waveforge/waveforge/curve"
	"github.com/waveforge/waveforge/effects"
	"github.com/waveforge/waveforge/env"
	"github.com/waveforge/waveforge/filter"
	"github.com/waveforge/waveforge/gen"
	"github.com/waveforge/waveforge/poly"
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
	"github.com/waveforge/waveforge/units"
)

// Mix levels for the three layers.
const (
	padLevel    = 0.16
	melodyLevel = 0.30
	bassLevel   = 0.35
)

// MIDI notes for the two pad chords (A minor, F major) and the melody.
var (
	chords = [][]float64{
		{57, 60, 64}, // A3 C4 E4
		{53, 57, 60}, // F3 A3 C4
	}
	melodyNotes = []float64{69, 72, 76, 72, 81, 76, 72, 76} // A4 C5 E5 ... A5
	bassNote    = 33.0                                      // A1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "wavegen.wav", "Output WAV file path")
	dur := flag.Float64("dur", 8.0, "Piece duration in seconds")
	rateHz := flag.Uint("rate", uint(units.RateCD), "Sample rate in Hz")
	format := flag.String("format", "float32", "Sample format: float32, pcm16, pcm24, pcm32")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *dur <= 0 {
		return fmt.Errorf("duration must be positive, got %v", *dur)
	}
	sampleFormat, err := parseFormat(*format)
	if err != nil {
		return err
	}
	rate := units.SampleRate(*rateHz)
	cfg := waveforge.Config{Rate: rate, Format: sampleFormat}
	if err := cfg.Validate(); err != nil {
		return err
	}

	length := units.TimeFromSec(*dur, rate)
	piece := buildPiece(rate)

	start := time.Now()
	if err := waveforge.ExportSgn[sample.Stereo](*out, length, cfg, piece); err != nil {
		return err
	}
	if *verbose {
		log.Printf("Rendered %.1f s at %d Hz to %s in %v",
			*dur, rate, *out, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// parseFormat maps the -format flag to a sample format.
func parseFormat(name string) (waveforge.SampleFormat, error) {
	switch name {
	case "float32":
		return waveforge.FormatFloat32, nil
	case "pcm16":
		return waveforge.FormatPCM16, nil
	case "pcm24":
		return waveforge.FormatPCM24, nil
	case "pcm32":
		return waveforge.FormatPCM32, nil
	default:
		return 0, fmt.Errorf("unknown sample format %q", name)
	}
}

// buildPiece assembles the full signal graph for the demo piece.
func buildPiece(rate units.SampleRate) signal.Mut[sample.Stereo] {
	beat := units.TimeFromSec(0.5, rate)

	pad := buildPad(rate, beat)
	melody := buildMelody(rate, beat)
	bass := buildBass(rate)

	mono := signal.NewMix[sample.Mono](signal.NewMix[sample.Mono](pad, melody), bass)
	stereo := effects.NewPanner[sample.Mono](mono, effects.Power{Angle: 0.5})

	// A quiet ping-pong echo spreads the mix across the field.
	return effects.NewFlipDelay(stereo, beat.MulFloat(0.75), units.Vol(0.3))
}

// buildPad alternates two chords on a polyphonic pad, each voice a
// triangle wave under an AR envelope.
func buildPad(rate units.SampleRate, beat units.Time) signal.Mut[sample.Mono] {
	pad := poly.New[int, sample.Mono]()
	attack := units.TimeFromSec(0.2, rate)
	release := units.TimeFromSec(0.8, rate)

	next := 0
	chord := 0
	change := func(*poly.Polyphony[int, sample.Mono]) {
		pad.StopAll()
		for _, note := range chords[chord] {
			osc := gen.NewLoop[sample.Mono](
				curve.Tri{}, units.FreqFromRaw(units.NoteFreq(note), rate))
			voice := env.NewVolume[sample.Mono](osc, units.Vol(padLevel))
			pad.Add(next, env.NewArEnv[sample.Mono](voice, attack, release))
			next++
		}
		chord++
		if chord == len(chords) {
			chord = 0
		}
	}

	// One chord per two beats; Skip sounds the first chord at time zero.
	seq := control.NewLoop[sample.Mono](
		[]units.Time{beat.MulFloat(2)}, pad, change)
	seq.Skip()
	return seq
}

// buildMelody arpeggiates a sine line in eighth notes.
func buildMelody(rate units.SampleRate, beat units.Time) signal.Mut[sample.Mono] {
	notes := make([]units.Freq, len(melodyNotes))
	for i, note := range melodyNotes {
		notes[i] = units.FreqFromRaw(units.NoteFreq(note), rate)
	}

	osc := gen.NewLoop[sample.Mono](curve.Sin{}, notes[0])
	arp := control.NewArpeggio[sample.Mono](
		[]units.Time{beat.DivFloat(2)}, osc, notes)
	arp.Skip()
	return env.NewVolume[sample.Mono](arp, units.Vol(melodyLevel))
}

// buildBass runs a sawtooth through a gentle low-pass with a slow tremolo.
func buildBass(rate units.SampleRate) signal.Mut[sample.Mono] {
	osc := gen.NewLoop[sample.Mono](
		curve.Saw{}, units.FreqFromRaw(units.NoteFreq(bassNote), rate))
	low := filter.NewFiltered[sample.Mono](
		osc, filter.LowPass(units.FreqFromHz(400, rate), units.QFactor(0.7)))

	lfo := signal.NewMapSgn[sample.Mono](
		gen.NewLoop[sample.Mono](curve.PosSaw{}, units.FreqFromHz(0.25, rate)),
		sample.Mono.Env)
	trem := env.NewTremolo[sample.Mono](low, lfo)
	return env.NewVolume[sample.Mono](trem, units.Vol(bassLevel))
}
