// Package poly sums a dynamic collection of independently-lived voices
// into one output signal.
package poly

import (
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
)

// Voice is a signal that can be played polyphonically: it advances on its
// own and eventually reports that it is done, at which point Polyphony
// reclaims it.
type Voice[S sample.Sample] interface {
	signal.Mut[S]
	signal.Done
}

// Polyphony plays multiple voices at once, keyed so that individual voices
// can be addressed later. Voices are stored as interface values, so a
// single instance can mix different kinds of voices. A voice is removed as
// soon as it reports done, which bounds memory and CPU in long-running
// pieces with many transient notes.
type Polyphony[K comparable, S sample.Sample] struct {
	voices map[K]Voice[S]
}

// New builds a polyphonic signal playing nothing.
func New[K comparable, S sample.Sample]() *Polyphony[K, S] {
	return &Polyphony[K, S]{voices: make(map[K]Voice[S])}
}

// Len returns the number of voices currently playing.
func (p *Polyphony[K, S]) Len() int {
	return len(p.voices)
}

// Add inserts a voice under the given key, overwriting any voice already
// there.
func (p *Polyphony[K, S]) Add(key K, voice Voice[S]) {
	p.voices[key] = voice
}

// Voice returns the voice under the given key, if it is still playing.
func (p *Polyphony[K, S]) Voice(key K) (Voice[S], bool) {
	v, ok := p.voices[key]
	return v, ok
}

// Modify applies f to the voice under the given key and reports whether it
// was found.
func (p *Polyphony[K, S]) Modify(key K, f func(Voice[S])) bool {
	v, ok := p.voices[key]
	if !ok {
		return false
	}
	f(v)
	return true
}

// Stop sends a note-off to the voice under the given key and reports
// whether it was found. The voice stays in the map until its release tail
// finishes and it reports done.
func (p *Polyphony[K, S]) Stop(key K) bool {
	return p.Modify(key, func(v Voice[S]) { signal.Stop(v) })
}

// StopAll sends a note-off to every voice currently playing.
func (p *Polyphony[K, S]) StopAll() {
	for _, v := range p.voices {
		signal.Stop(v)
	}
}

// Get sums the output of every live voice.
func (p *Polyphony[K, S]) Get() S {
	out := sample.Zero[S]()
	for _, v := range p.voices {
		out = sample.Add(out, v.Get())
	}
	return out
}

// Advance advances every voice and sweeps out the ones that finished.
func (p *Polyphony[K, S]) Advance() {
	for key, v := range p.voices {
		v.Advance()
		if v.IsDone() {
			delete(p.voices, key)
		}
	}
}

// Retrigger drops every voice, leaving the signal silent.
func (p *Polyphony[K, S]) Retrigger() {
	clear(p.voices)
}

// Panic silences the signal immediately by dropping every voice.
func (p *Polyphony[K, S]) Panic() {
	p.Retrigger()
}

// IsDone reports whether no voices remain. An empty polyphony outputs
// silence, but new voices may still be added, so callers decide for
// themselves whether empty means finished.
func (p *Polyphony[K, S]) IsDone() bool {
	return len(p.voices) == 0
}

// Base returns the polyphony itself; there is no single inner signal.
func (p *Polyphony[K, S]) Base() any {
	return p
}
