package control_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waveforge/waveforge/control"
	"github.com/waveforge/waveforge/curve"
	"github.com/waveforge/waveforge/gen"
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/units"
)

func TestTimerFiresOnce(t *testing.T) {
	timer := control.NewTimer(units.TimeFromSamples(5))

	elapsed := units.TimeZero
	var fired []int
	for i := range 10 {
		if timer.Tick(elapsed) {
			fired = append(fired, i)
		}
		elapsed.Advance()
	}
	assert.Equal(t, []int{5}, fired, "timer should fire exactly once, at its length")

	timer.Reset()
	assert.True(t, timer.Tick(elapsed), "a reset timer past its length fires again")
	assert.False(t, timer.Tick(elapsed))
}

func TestMetronomePeriod(t *testing.T) {
	metro := control.NewMetronome(units.TimeFromSamples(4))

	elapsed := units.TimeZero
	var ticks []int
	for i := range 10 {
		if metro.Tick(elapsed) {
			ticks = append(ticks, i)
		}
		elapsed.Advance()
	}
	assert.Equal(t, []int{0, 4, 8}, ticks, "metronome ticks on frame zero and every period after")
}

func TestSeqEventTiming(t *testing.T) {
	osc := gen.NewLoop[sample.Mono](curve.Sin{}, units.Freq(440))

	var fired []int
	frame := 0
	seq := control.NewSeq[sample.Mono](
		[]units.Time{units.TimeFromSamples(3), units.TimeFromSamples(2)},
		osc,
		func(*gen.Loop[sample.Mono, curve.Sin]) { fired = append(fired, frame) },
	)

	assert.Equal(t, units.TimeFromSamples(5), seq.TotalTime())

	for frame = 1; frame <= 8; frame++ {
		seq.Advance()
	}
	assert.Equal(t, []int{3, 5}, fired, "events fire at the cumulative interval sums")
	assert.Equal(t, 2, seq.Index())
}

func TestSeqSimultaneousEvents(t *testing.T) {
	osc := gen.NewLoop[sample.Mono](curve.Sin{}, units.Freq(440))

	var fired []int
	frame := 0
	seq := control.NewSeq[sample.Mono](
		[]units.Time{
			units.TimeFromSamples(2),
			units.TimeZero,
			units.TimeZero,
			units.TimeFromSamples(1),
		},
		osc,
		func(*gen.Loop[sample.Mono, curve.Sin]) { fired = append(fired, frame) },
	)

	for frame = 1; frame <= 4; frame++ {
		seq.Advance()
	}
	assert.Equal(t, []int{2, 2, 2, 3}, fired,
		"zero-length intervals fire their events on the same frame")
}

func TestSeqSkip(t *testing.T) {
	osc := gen.NewLoop[sample.Mono](curve.Sin{}, units.Freq(440))

	count := 0
	seq := control.NewSeq[sample.Mono](
		[]units.Time{units.TimeFromSamples(3), units.TimeFromSamples(3)},
		osc,
		func(*gen.Loop[sample.Mono, curve.Sin]) { count++ },
	)

	require.True(t, seq.Skip())
	assert.Equal(t, 1, count, "skip applies the event immediately")
	assert.Equal(t, 1, seq.Index())

	require.True(t, seq.Skip())
	assert.False(t, seq.Skip(), "skipping past the end reports failure")
	assert.Equal(t, 2, count)
}

func TestSeqRetrigger(t *testing.T) {
	osc := gen.NewLoop[sample.Mono](curve.Sin{}, units.Freq(440))

	count := 0
	seq := control.NewSeq[sample.Mono](
		[]units.Time{units.TimeFromSamples(2)},
		osc,
		func(*gen.Loop[sample.Mono, curve.Sin]) { count++ },
	)

	for range 2 {
		seq.Advance()
	}
	require.Equal(t, 1, count)

	seq.Retrigger()
	assert.Equal(t, 0, seq.Index())
	assert.True(t, seq.Since().IsZero())

	for range 2 {
		seq.Advance()
	}
	assert.Equal(t, 2, count, "a retriggered sequence fires its events again")
}

func TestLoopWrapsAround(t *testing.T) {
	osc := gen.NewLoop[sample.Mono](curve.Sin{}, units.Freq(440))

	var fired []int
	frame := 0
	lp := control.NewLoop[sample.Mono](
		[]units.Time{units.TimeFromSamples(2)},
		osc,
		func(*gen.Loop[sample.Mono, curve.Sin]) { fired = append(fired, frame) },
	)

	for frame = 1; frame <= 10; frame++ {
		lp.Advance()
		assert.Less(t, lp.Index(), lp.Len())
	}
	assert.Equal(t, []int{2, 4, 6, 8, 10}, fired, "the loop keeps firing forever")
}

func TestLoopPanicsOnEmpty(t *testing.T) {
	osc := gen.NewLoop[sample.Mono](curve.Sin{}, units.Freq(440))
	assert.Panics(t, func() {
		control.NewLoop[sample.Mono](nil, osc, func(*gen.Loop[sample.Mono, curve.Sin]) {})
	})
}

func TestArpCycles(t *testing.T) {
	arp := control.NewArp([]units.Freq{440, 550, 660})

	assert.Equal(t, units.Freq(440), arp.Current())
	var notes []units.Freq
	for range 7 {
		notes = append(notes, arp.Next())
	}
	assert.Equal(t, []units.Freq{440, 550, 660, 440, 550, 660, 440}, notes)

	assert.Panics(t, func() { control.NewArp(nil) })
}

func TestArpeggio(t *testing.T) {
	osc := gen.NewLoop[sample.Mono](curve.Sin{}, units.Freq(440))
	notes := []units.Freq{220, 330, 550}
	arp := control.NewArpeggio[sample.Mono](
		[]units.Time{units.TimeFromSamples(2)}, osc, notes,
	)

	assert.Equal(t, units.Freq(440), arp.Freq(),
		"the original pitch holds until the first event")

	var heard []units.Freq
	for range 8 {
		arp.Advance()
		heard = append(heard, arp.Freq())
	}
	assert.Equal(t, []units.Freq{
		440, 220, 220, 330, 330, 550, 550, 220,
	}, heard, "the note changes every interval, cycling through the list")
}

func TestArpeggioSkipStartsImmediately(t *testing.T) {
	osc := gen.NewLoop[sample.Mono](curve.Sin{}, units.Freq(440))
	arp := control.NewArpeggio[sample.Mono](
		[]units.Time{units.TimeFromSamples(4)}, osc, []units.Freq{220, 330},
	)

	arp.Skip()
	assert.Equal(t, units.Freq(220), arp.Freq(), "skip applies the first note at once")
	assert.Equal(t, 1, arp.Index())
}
