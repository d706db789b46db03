package waveform

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stereo(frames int, l, r int32) *Track {
	t := &Track{Name: "stereo", Channels: 2, SampleRate: 1000, BitDepth: 16}
	for range frames {
		t.Samples = append(t.Samples, l, r)
	}
	return t
}

func TestMonoAveragesPairs(t *testing.T) {
	assert.Equal(t, []float64{150, -50}, Mono([]int32{100, 200, 0, -100}, 2))
	assert.Equal(t, []float64{1, 2, 3}, Mono([]int32{1, 2, 3}, 1))
	// trailing partial frame is dropped
	assert.Equal(t, []float64{3}, Mono([]int32{2, 4, 9}, 2))
	assert.Empty(t, Mono([]int32{1, 2}, 0))
}

func TestRMSOfChannelAverage(t *testing.T) {
	samples := []int32{1000, -1000, 3000, 1000, -2000, -4000}
	// per-frame averages: 0, 2000, -3000
	want := math.Sqrt((0 + 2000*2000 + 3000*3000) / 3.0)
	assert.InDelta(t, want, RMS(samples, 2), 1e-9)

	// not the RMS of the channels laid end to end
	var concat float64
	for _, s := range samples {
		concat += float64(s) * float64(s)
	}
	assert.NotEqual(t, math.Sqrt(concat/float64(len(samples))), RMS(samples, 2))
}

func TestRMSZeroAndEmpty(t *testing.T) {
	assert.Equal(t, 0.0, RMS(make([]int32, 64), 2))
	assert.Equal(t, 0.0, RMS(nil, 2))
	assert.Equal(t, 0.0, RMS([]int32{}, 1))
	assert.False(t, math.IsNaN(RMS(nil, 2)))
}

func TestRMSConstant(t *testing.T) {
	assert.InDelta(t, 500.0, RMS([]int32{500, -500, 500, -500}, 1), 1e-9)
}

func TestLoudnessNormalized(t *testing.T) {
	half := stereo(1000, 16384, 16384)
	assert.InDelta(t, 0.5, half.Loudness(0), 1e-9)

	full := stereo(1000, -32768, -32768)
	assert.Equal(t, 1.0, full.Loudness(0))

	// out-of-range data never pushes loudness past 1
	hot := &Track{Channels: 1, SampleRate: 1000, BitDepth: 8, Samples: []int32{100000, -100000}}
	assert.Equal(t, 1.0, hot.Loudness(0))

	for _, v := range []int32{0, 1, 1000, 20000, 32767} {
		l := stereo(200, v, -v).Loudness(0)
		assert.GreaterOrEqual(t, l, 0.0)
		assert.LessOrEqual(t, l, 1.0)
	}
}

func TestLoudnessOppositeChannelsCancel(t *testing.T) {
	assert.Equal(t, 0.0, stereo(1000, 12000, -12000).Loudness(0))
}

func TestLoudnessPastEnd(t *testing.T) {
	tr := stereo(1000, 8000, 8000) // one second at 1KHz
	assert.Equal(t, 0.0, tr.Loudness(5*time.Second))
	assert.Equal(t, 0.0, tr.Loudness(time.Second))
	assert.Greater(t, tr.Loudness(950*time.Millisecond), 0.0)
}

func TestLoudnessDeterministic(t *testing.T) {
	tr := stereo(2000, 300, 9000)
	assert.Equal(t, tr.Loudness(700*time.Millisecond), tr.Loudness(700*time.Millisecond))
}

func TestSlice(t *testing.T) {
	tr := &Track{Channels: 2, SampleRate: 1000, BitDepth: 16}
	for i := range 1000 {
		tr.Samples = append(tr.Samples, int32(i), int32(-i))
	}

	s := tr.Slice(200*time.Millisecond, Window)
	assert.Len(t, s, 200)
	assert.Equal(t, int32(200), s[0])
	assert.Equal(t, int32(-299), s[len(s)-1])

	// clipped at the end
	assert.Len(t, tr.Slice(950*time.Millisecond, Window), 100)
	assert.Empty(t, tr.Slice(2*time.Second, Window))
	// negative offsets are clipped at the start
	assert.Len(t, tr.Slice(-50*time.Millisecond, Window), 100)
	assert.Empty(t, tr.Slice(-time.Second, Window))
}

func TestTrackDuration(t *testing.T) {
	tr := stereo(44100*3/2, 0, 0)
	tr.SampleRate = 44100
	assert.Equal(t, 1500*time.Millisecond, tr.Duration())
	assert.InDelta(t, 1.5, tr.Seconds(), 1e-9)
	assert.Equal(t, 32768.0, tr.MaxAmplitude())

	assert.Equal(t, time.Duration(0), (&Track{}).Duration())
	assert.Equal(t, 0, (&Track{}).Frames())
}
