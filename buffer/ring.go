// Package buffer implements sample buffers and the ring-buffer and
// interpolation machinery built on them: short exact histories of a signal's
// recent output, sub-sample reconstruction between stored samples, and
// time-stretching of arbitrary signals.
package buffer

import (
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
)

// Ring is a fixed-capacity FIFO of samples. Get(i) returns the sample pushed
// i steps ago; i must be smaller than the capacity.
//
// Two implementations exist. Shift moves every stored sample on each push,
// which is only viable for very small capacities but avoids any cursor
// bookkeeping; Circ writes at a rotating cursor in O(1) and is the right
// choice for anything larger, such as delay lines.
type Ring[S sample.Sample] interface {
	// Push inserts a value, phasing out the oldest one.
	Push(v S)

	// PushMany loads count samples from a signal, phasing out old ones.
	PushMany(sgn signal.Mut[S], count int)

	// Get returns the value pushed index steps ago.
	Get(index int) S

	// First returns the most recently pushed value.
	First() S

	// Capacity is the number of pushes before a value is phased out.
	Capacity() int

	// Clear zeroes the buffer without changing its capacity.
	Clear()
}

// Shift is a ring buffer that inserts new data at index 0 and shifts all
// older data up by one. Pushing costs O(capacity); keep these very small.
type Shift[S sample.Sample] struct {
	// Data holds the stored samples, most recent first.
	Data []S
}

// NewShift builds a zeroed Shift buffer with the given capacity.
func NewShift[S sample.Sample](capacity int) *Shift[S] {
	return &Shift[S]{Data: make([]S, capacity)}
}

// ShiftFrom builds a Shift buffer over existing data, most recent first.
func ShiftFrom[S sample.Sample](data []S) *Shift[S] {
	return &Shift[S]{Data: data}
}

// Push inserts a value at index 0, shifting all older values up. Pushing
// into a zero-capacity buffer is a no-op.
func (b *Shift[S]) Push(v S) {
	if len(b.Data) == 0 {
		return
	}
	for i := len(b.Data) - 1; i > 0; i-- {
		b.Data[i] = b.Data[i-1]
	}
	b.Data[0] = v
}

// PushMany loads count samples from a signal. All shifting is done in bulk:
// when count reaches or exceeds the capacity, the signal is advanced without
// buffering until only a full buffer's worth remains.
func (b *Shift[S]) PushMany(sgn signal.Mut[S], count int) {
	n := len(b.Data)
	fresh := count
	if count >= n {
		for range count - n {
			sgn.Advance()
		}
		fresh = n
	}

	for i := n - 1; i >= fresh; i-- {
		b.Data[i] = b.Data[i-fresh]
	}
	for i := fresh - 1; i >= 0; i-- {
		b.Data[i] = signal.Next(sgn)
	}
}

// Get returns the value pushed index steps ago.
func (b *Shift[S]) Get(index int) S {
	return b.Data[index]
}

// First returns the most recently pushed value.
func (b *Shift[S]) First() S {
	return b.Data[0]
}

// Capacity returns the buffer's capacity.
func (b *Shift[S]) Capacity() int {
	return len(b.Data)
}

// Clear zeroes the buffer.
func (b *Shift[S]) Clear() {
	for i := range b.Data {
		b.Data[i] = sample.Zero[S]()
	}
}

// Circ is a ring buffer that writes at a rotating cursor, wrapping at the
// end. Pushing is O(1) regardless of capacity.
type Circ[S sample.Sample] struct {
	// Data holds the stored samples in write order.
	Data []S

	pos int
}

// NewCirc builds a zeroed Circ buffer with the given capacity.
func NewCirc[S sample.Sample](capacity int) *Circ[S] {
	return &Circ[S]{Data: make([]S, capacity)}
}

// CircFrom builds a Circ buffer over existing data; the next push overwrites
// the first entry.
func CircFrom[S sample.Sample](data []S) *Circ[S] {
	return &Circ[S]{Data: data}
}

// index maps "n pushes ago" to a position in Data.
func (b *Circ[S]) index(n int) int {
	if b.pos > n {
		return b.pos - n - 1
	}
	return b.pos + len(b.Data) - n - 1
}

// Push writes a value at the cursor and advances it.
func (b *Circ[S]) Push(v S) {
	b.Data[b.pos] = v
	b.pos++
	if b.pos == len(b.Data) {
		b.pos = 0
	}
}

// PushMany loads count samples from a signal.
func (b *Circ[S]) PushMany(sgn signal.Mut[S], count int) {
	for range count {
		b.Push(signal.Next(sgn))
	}
}

// Get returns the value pushed index steps ago.
func (b *Circ[S]) Get(index int) S {
	return b.Data[b.index(index)]
}

// First returns the most recently pushed value.
func (b *Circ[S]) First() S {
	return b.Get(0)
}

// Capacity returns the buffer's capacity.
func (b *Circ[S]) Capacity() int {
	return len(b.Data)
}

// Clear zeroes the buffer without moving the cursor.
func (b *Circ[S]) Clear() {
	for i := range b.Data {
		b.Data[i] = sample.Zero[S]()
	}
}
