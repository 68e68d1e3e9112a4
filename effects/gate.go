package effects

import (
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
)

// Gate passes a signal through only while a control envelope sits at or
// above a threshold; below it, the output is silence.
type Gate[S sample.Sample] struct {
	// Sgn is the gated signal.
	Sgn signal.Mut[S]

	// Env controls the gate.
	Env signal.Mut[sample.Env]

	// Threshold is the envelope level at which the gate opens.
	Threshold float64
}

// NewGate gates a signal through an envelope.
func NewGate[S sample.Sample](sgn signal.Mut[S], env signal.Mut[sample.Env], threshold float64) *Gate[S] {
	return &Gate[S]{Sgn: sgn, Env: env, Threshold: threshold}
}

func (g *Gate[S]) Get() S {
	if g.Env.Get()[0] >= g.Threshold {
		return g.Sgn.Get()
	}
	return sample.Zero[S]()
}

func (g *Gate[S]) Advance() {
	g.Sgn.Advance()
	g.Env.Advance()
}

func (g *Gate[S]) Retrigger() {
	g.Sgn.Retrigger()
	g.Env.Retrigger()
}

func (g *Gate[S]) IsDone() bool {
	return signal.IsDone(g.Sgn)
}

func (g *Gate[S]) Stop() {
	signal.Stop(g.Sgn)
}

func (g *Gate[S]) Panic() {
	signal.Panic(g.Sgn)
}
