package filter

import (
	"github.com/waveforge/waveforge/buffer"
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
	"github.com/waveforge/waveforge/units"
)

// Filter evaluates the difference equation given by a set of Coefficients
// using a Direct Form 1 architecture. The shifting history buffers make
// this efficient only for low-order filters, which is what the designs in
// this package produce.
type Filter[S sample.Sample] struct {
	// Coef determines the difference equation.
	Coef Coefficients

	inputs  *buffer.Shift[S]
	outputs *buffer.Shift[S]
}

// NewFilter builds a filter with zeroed history.
func NewFilter[S sample.Sample](coef Coefficients) *Filter[S] {
	return &Filter[S]{
		Coef:    coef,
		inputs:  buffer.NewShift[S](len(coef.Input)),
		outputs: buffer.NewShift[S](len(coef.Feedback)),
	}
}

// Eval feeds one input through the difference equation and returns the new
// output.
func (f *Filter[S]) Eval(input S) S {
	f.inputs.Push(input)

	var out S
	for i, b := range f.Coef.Input {
		out = sample.Add(out, sample.Scale(f.inputs.Get(i), b))
	}
	for i, a := range f.Coef.Feedback {
		out = sample.Sub(out, sample.Scale(f.outputs.Get(i), a))
	}

	f.outputs.Push(out)
	return out
}

// Get returns the last output value.
func (f *Filter[S]) Get() S {
	if f.outputs.Capacity() == 0 {
		return sample.Zero[S]()
	}
	return f.outputs.First()
}

// Retrigger zeroes the filter's history.
func (f *Filter[S]) Retrigger() {
	f.inputs.Clear()
	f.outputs.Clear()
}

// Filtered runs a signal through a filter. Its output is the filter's
// latest output, so the very first sample, before any advance, is silence.
type Filtered[S sample.Sample, T signal.Mut[S]] struct {
	// Sgn is the signal being filtered.
	Sgn T

	// Filter processes the signal's output.
	Filter *Filter[S]
}

// NewFiltered filters a signal through the difference equation given by the
// coefficients.
func NewFiltered[S sample.Sample, T signal.Mut[S]](sgn T, coef Coefficients) *Filtered[S, T] {
	return &Filtered[S, T]{Sgn: sgn, Filter: NewFilter[S](coef)}
}

func (f *Filtered[S, T]) Get() S {
	return f.Filter.Get()
}

func (f *Filtered[S, T]) Advance() {
	f.Filter.Eval(signal.Next[S](f.Sgn))
}

func (f *Filtered[S, T]) Retrigger() {
	f.Sgn.Retrigger()
	f.Filter.Retrigger()
}

func (f *Filtered[S, T]) IsDone() bool {
	return signal.IsDone(f.Sgn)
}

func (f *Filtered[S, T]) Stop() {
	signal.Stop(f.Sgn)
}

func (f *Filtered[S, T]) Panic() {
	signal.Panic(f.Sgn)
}

func (f *Filtered[S, T]) Freq() units.Freq {
	return signal.FreqOf(f.Sgn)
}

func (f *Filtered[S, T]) SetFreq(freq units.Freq) {
	signal.SetFreq(f.Sgn, freq)
}

func (f *Filtered[S, T]) Base() any {
	return f.Sgn
}
