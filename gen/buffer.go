package gen

import (
	"github.com/waveforge/waveforge/sample"
)

// OnceBuf reads through a buffer of audio data once, then goes silent.
type OnceBuf[S sample.Audio] struct {
	Data []S

	index int
}

// NewOnceBuf plays the buffer once.
func NewOnceBuf[S sample.Audio](data []S) *OnceBuf[S] {
	return &OnceBuf[S]{Data: data}
}

// Index returns the position of the sample being read.
func (b *OnceBuf[S]) Index() int {
	return b.index
}

func (b *OnceBuf[S]) Get() S {
	if b.index >= len(b.Data) {
		return sample.Zero[S]()
	}
	return b.Data[b.index]
}

func (b *OnceBuf[S]) Advance() {
	b.index++
}

func (b *OnceBuf[S]) Retrigger() {
	b.index = 0
}

func (b *OnceBuf[S]) IsDone() bool {
	return b.index >= len(b.Data)
}

func (b *OnceBuf[S]) Stop() {
	b.index = len(b.Data)
}

func (b *OnceBuf[S]) Panic() {
	b.Stop()
}

// LoopBuf loops a buffer of audio data. The buffer must be nonempty.
type LoopBuf[S sample.Audio] struct {
	Data []S

	index int
}

// NewLoopBuf loops the buffer. Panics if it is empty, as there would be
// nothing to play.
func NewLoopBuf[S sample.Audio](data []S) *LoopBuf[S] {
	if len(data) == 0 {
		panic("gen: looping an empty buffer")
	}
	return &LoopBuf[S]{Data: data}
}

// Index returns the position of the sample being read.
func (b *LoopBuf[S]) Index() int {
	return b.index
}

func (b *LoopBuf[S]) Get() S {
	return b.Data[b.index]
}

func (b *LoopBuf[S]) Advance() {
	b.index++
	if b.index == len(b.Data) {
		b.index = 0
	}
}

func (b *LoopBuf[S]) Retrigger() {
	b.index = 0
}
