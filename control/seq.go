package control

import (
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
	"github.com/waveforge/waveforge/units"
)

// Seq modifies a signal with a function at specified time intervals. Each
// entry in Times is the gap between an event and the next; a zero gap
// fires events simultaneously.
//
// The signal is not modified on construction, only after the first
// interval transpires; call Skip to apply the first event immediately.
type Seq[S sample.Sample, T signal.Mut[S]] struct {
	// Times holds the intervals between consecutive events.
	Times []units.Time

	sgn   T
	f     func(T)
	since units.Time
	index int
}

// NewSeq builds a sequence applying f to the signal at the given intervals.
func NewSeq[S sample.Sample, T signal.Mut[S]](times []units.Time, sgn T, f func(T)) *Seq[S, T] {
	return &Seq[S, T]{Times: times, sgn: sgn, f: f}
}

// Since returns the time since the last event.
func (sq *Seq[S, T]) Since() units.Time {
	return sq.since
}

// Index returns the index of the next event.
func (sq *Seq[S, T]) Index() int {
	return sq.index
}

// Len returns the number of events.
func (sq *Seq[S, T]) Len() int {
	return len(sq.Times)
}

// Sgn returns the signal being modified.
func (sq *Seq[S, T]) Sgn() T {
	return sq.sgn
}

// TotalTime returns the time the sequence takes to complete.
func (sq *Seq[S, T]) TotalTime() units.Time {
	total := units.TimeZero
	for _, t := range sq.Times {
		total = total.Add(t)
	}
	return total
}

// Skip applies the next event immediately and reports whether there was
// one left.
func (sq *Seq[S, T]) Skip() bool {
	if sq.index >= sq.Len() {
		return false
	}
	sq.since = units.TimeZero
	sq.f(sq.sgn)
	sq.index++
	return true
}

// readEvent fires the next event if its time has come, carrying leftover
// time so that later events stay on the grid.
func (sq *Seq[S, T]) readEvent() bool {
	if sq.index >= sq.Len() {
		return false
	}
	eventTime := sq.Times[sq.index]
	if sq.since.Less(eventTime) {
		return false
	}
	sq.since = sq.since.Sub(eventTime)
	sq.f(sq.sgn)
	sq.index++
	return true
}

func (sq *Seq[S, T]) Get() S {
	return sq.sgn.Get()
}

// Advance advances the signal, then fires every event whose time has come.
func (sq *Seq[S, T]) Advance() {
	sq.sgn.Advance()
	sq.since.Advance()
	for sq.readEvent() {
	}
}

func (sq *Seq[S, T]) Retrigger() {
	sq.sgn.Retrigger()
	sq.index = 0
	sq.since = units.TimeZero
}

func (sq *Seq[S, T]) IsDone() bool {
	return signal.IsDone(sq.sgn)
}

func (sq *Seq[S, T]) Stop() {
	signal.Stop(sq.sgn)
}

func (sq *Seq[S, T]) Panic() {
	signal.Panic(sq.sgn)
}

func (sq *Seq[S, T]) Freq() units.Freq {
	return signal.FreqOf(sq.sgn)
}

func (sq *Seq[S, T]) SetFreq(freq units.Freq) {
	signal.SetFreq(sq.sgn, freq)
}

func (sq *Seq[S, T]) Base() any {
	return sq.sgn
}

// Loop is a Seq whose event list wraps around forever.
type Loop[S sample.Sample, T signal.Mut[S]] struct {
	seq Seq[S, T]
}

// NewLoop builds a looping sequence. Panics if the interval list is empty,
// as the loop would have nothing to fire.
func NewLoop[S sample.Sample, T signal.Mut[S]](times []units.Time, sgn T, f func(T)) *Loop[S, T] {
	if len(times) == 0 {
		panic("control: looping an empty sequence")
	}
	return &Loop[S, T]{seq: Seq[S, T]{Times: times, sgn: sgn, f: f}}
}

// Since returns the time since the last event.
func (lp *Loop[S, T]) Since() units.Time {
	return lp.seq.since
}

// Index returns the index of the next event. It is always less than the
// loop's length.
func (lp *Loop[S, T]) Index() int {
	return lp.seq.index
}

// Len returns the number of events in the loop.
func (lp *Loop[S, T]) Len() int {
	return len(lp.seq.Times)
}

// Sgn returns the signal being modified.
func (lp *Loop[S, T]) Sgn() T {
	return lp.seq.sgn
}

// TotalTime returns the time one pass over the loop takes.
func (lp *Loop[S, T]) TotalTime() units.Time {
	return lp.seq.TotalTime()
}

// Skip applies the next event immediately.
func (lp *Loop[S, T]) Skip() {
	lp.seq.since = units.TimeZero
	lp.seq.f(lp.seq.sgn)
	lp.seq.index++
	if lp.seq.index == lp.Len() {
		lp.seq.index = 0
	}
}

func (lp *Loop[S, T]) Get() S {
	return lp.seq.Get()
}

func (lp *Loop[S, T]) Advance() {
	lp.seq.Advance()
	if lp.seq.index == lp.Len() {
		lp.seq.index = 0
	}
}

func (lp *Loop[S, T]) Retrigger() {
	lp.seq.Retrigger()
}

func (lp *Loop[S, T]) IsDone() bool {
	return lp.seq.IsDone()
}

func (lp *Loop[S, T]) Stop() {
	lp.seq.Stop()
}

func (lp *Loop[S, T]) Panic() {
	lp.seq.Panic()
}

func (lp *Loop[S, T]) Freq() units.Freq {
	return lp.seq.Freq()
}

func (lp *Loop[S, T]) SetFreq(freq units.Freq) {
	lp.seq.SetFreq(freq)
}

func (lp *Loop[S, T]) Base() any {
	return lp.seq.sgn
}

// Arp cycles through a list of notes.
type Arp struct {
	// Notes holds the frequencies to play, in order.
	Notes []units.Freq

	index int
}

// NewArp builds an arpeggio over the given notes. Panics if the list is
// empty.
func NewArp(notes []units.Freq) *Arp {
	if len(notes) == 0 {
		panic("control: arpeggio with no notes")
	}
	return &Arp{Notes: notes}
}

// Current returns the note currently playing.
func (a *Arp) Current() units.Freq {
	return a.Notes[a.index]
}

// Next returns the current note and moves on to the following one.
func (a *Arp) Next() units.Freq {
	note := a.Notes[a.index]
	a.index++
	if a.index == len(a.Notes) {
		a.index = 0
	}
	return note
}

// NewArpeggio changes the signal's frequency through the note list at the
// given intervals. The signal keeps its original frequency until the first
// interval transpires; call Skip to start the arpeggio immediately.
func NewArpeggio[S sample.Sample, T signal.Mut[S]](times []units.Time, sgn T, notes []units.Freq) *Loop[S, T] {
	arp := NewArp(notes)
	return NewLoop[S](times, sgn, func(s T) {
		signal.SetFreq(s, arp.Next())
	})
}
