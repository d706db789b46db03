package engine

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/rabidaudio/shuffle/waveform"
	"github.com/stretchr/testify/assert"
)

func tone(frames, rate int) *waveform.Track {
	t := &waveform.Track{Channels: 2, SampleRate: rate, BitDepth: 16}
	for i := range frames {
		v := int32(i % 1000)
		t.Samples = append(t.Samples, v, -v)
	}
	return t
}

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestSessionFinishes(t *testing.T) {
	s := newSession(tone(1000, 44100), beep.SampleRate(44100))
	assert.False(t, s.playing())

	s.started.Store(true)
	assert.True(t, s.playing())

	assert.Equal(t, 1000, drain(s.streamer))
	assert.True(t, s.done.Load())
	assert.False(t, s.playing())
}

func TestSessionResamples(t *testing.T) {
	s := newSession(tone(22050, 22050), beep.SampleRate(44100))
	n := drain(s.streamer)
	// one second of audio either way, give or take the resampler's edges
	assert.InDelta(t, 44100, n, 200)
	assert.True(t, s.done.Load())
}

func TestSessionEmptyTrack(t *testing.T) {
	s := newSession(tone(0, 44100), beep.SampleRate(44100))
	assert.Equal(t, 0, drain(s.streamer))
	assert.True(t, s.done.Load())
}
