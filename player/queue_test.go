package player

import (
	"slices"
	"testing"
	"time"

	"github.com/rabidaudio/shuffle/waveform"
	"github.com/stretchr/testify/assert"
)

func TestQueueKeepsOrderWithoutShuffle(t *testing.T) {
	q := NewQueue([]string{"a", "b", "c"}, nil)
	assert.Equal(t, 3, q.Len())

	var got []string
	for {
		name, ok := q.Next()
		if !ok {
			break
		}
		got = append(got, name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, got, q.History())
	assert.Equal(t, 0, q.Len())

	_, ok := q.Next()
	assert.False(t, ok)
}

func TestQueueDoesNotTouchCallerSlice(t *testing.T) {
	names := []string{"a", "b", "c"}
	q := NewQueue(names, func(s []string) { slices.Reverse(s) })
	assert.Equal(t, []string{"a", "b", "c"}, names)

	first, _ := q.Next()
	assert.Equal(t, "c", first)
}

func TestShuffleIsAPermutation(t *testing.T) {
	names := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	shuffled := slices.Clone(names)
	Shuffle(shuffled)

	assert.ElementsMatch(t, names, shuffled)
}

func TestSessionPositionIsClamped(t *testing.T) {
	track := &waveform.Track{Name: "a", Samples: make([]int32, 44100), Channels: 1, SampleRate: 44100, BitDepth: 16}
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newSession(track, 1, start)

	assert.Equal(t, time.Duration(0), s.Elapsed(start.Add(-time.Second)))
	assert.Equal(t, time.Duration(0), s.Position(start.Add(-time.Second)))
	assert.Equal(t, 500*time.Millisecond, s.Position(start.Add(500*time.Millisecond)))
	assert.Equal(t, 3*time.Second, s.Elapsed(start.Add(3*time.Second)))
	assert.Equal(t, time.Second, s.Position(start.Add(3*time.Second)))
}

func TestSessionsGetDistinctIDs(t *testing.T) {
	track := &waveform.Track{Channels: 1, SampleRate: 44100, BitDepth: 16}
	a := newSession(track, 1, time.Now())
	b := newSession(track, 2, time.Now())
	assert.NotEqual(t, a.ID, b.ID)
}
