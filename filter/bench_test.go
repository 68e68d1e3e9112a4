package filter_test

import (
	"testing"

	"github.com/waveforge/waveforge/curve"
	"github.com/waveforge/waveforge/filter"
	"github.com/waveforge/waveforge/gen"
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
	"github.com/waveforge/waveforge/units"
)

func BenchmarkBiquadEvalMono(b *testing.B) {
	f := filter.NewFilter[sample.Mono](
		filter.LowPass(units.FreqFromHz(1000, units.RateCD), units.QFactor(0.7)))
	in := sample.Mono{0.5}
	for b.Loop() {
		f.Eval(in)
	}
}

func BenchmarkBiquadEvalStereo(b *testing.B) {
	f := filter.NewFilter[sample.Stereo](
		filter.LowPass(units.FreqFromHz(1000, units.RateCD), units.QFactor(0.7)))
	in := sample.Stereo{0.5, -0.5}
	for b.Loop() {
		f.Eval(in)
	}
}

func BenchmarkFilteredNext(b *testing.B) {
	osc := gen.NewLoop[sample.Mono](curve.Sin{}, units.FreqFromHz(440, units.RateCD))
	flt := filter.NewFiltered[sample.Mono](
		osc, filter.Peaking(units.FreqFromHz(2000, units.RateCD), units.Vol(2), units.QFactor(1)))
	for b.Loop() {
		signal.Next[sample.Mono](flt)
	}
}
