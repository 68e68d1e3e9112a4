package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waveforge/waveforge/gen"
	"github.com/waveforge/waveforge/sample"
	"github.com/waveforge/waveforge/signal"
)

func TestDistortionMaps(t *testing.T) {
	tests := []struct {
		desc string
		f    func(float64) float64
		in   float64
		want float64
	}{
		{desc: "inf clip positive", f: InfClip, in: 0.3, want: 1},
		{desc: "inf clip negative", f: InfClip, in: -0.3, want: -1},
		{desc: "inf clip zero", f: InfClip, in: 0, want: 1},
		{desc: "clip inside threshold renormalizes", f: Clip(0.5), in: 0.25, want: 0.5},
		{desc: "clip above threshold", f: Clip(0.5), in: 0.7, want: 1},
		{desc: "clip below threshold", f: Clip(0.5), in: -0.7, want: -1},
		{desc: "atan at unit shape", f: Atan(1), in: 1, want: 0.5},
		{desc: "atan zero", f: Atan(1), in: 0, want: 0},
		{desc: "cubic", f: Pow(3), in: 0.5, want: 0.125},
		{desc: "cubic keeps sign", f: Pow(3), in: -0.5, want: -0.125},
		{desc: "even power rescales", f: Pow(2), in: 0.5, want: -0.5},
		{desc: "even power at full scale", f: Pow(2), in: -1, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.f(tt.in), 1e-12)
		})
	}
}

func TestAtanSaturates(t *testing.T) {
	hard := Atan(100)
	assert.InDelta(t, 1, hard(1), 0.01, "steep shapes approach hard clipping")
	assert.InDelta(t, -1, hard(-1), 0.01)
	assert.Less(t, hard(0.5), 1.0, "output stays inside full scale")
}

func TestInfClipSignal(t *testing.T) {
	src := gen.NewOnceBuf([]sample.Mono{{0.5}, {-0.25}, {0.75}})
	dist := NewInfClip[sample.Mono](src)

	var got []float64
	for range 3 {
		got = append(got, signal.Next[sample.Mono](dist)[0])
	}
	assert.Equal(t, []float64{1, -1, 1}, got)
}

func TestClipSignalPerChannel(t *testing.T) {
	src := gen.NewOnceBuf([]sample.Stereo{{0.8, -0.2}})
	dist := NewClip[sample.Stereo](src, 0.4)

	out := dist.Get()
	assert.InDelta(t, 1, out[0], 1e-12, "left channel clips")
	assert.InDelta(t, -0.5, out[1], 1e-12, "right channel renormalizes")
}
