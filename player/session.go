package player

import (
	"time"

	"github.com/google/uuid"
	"github.com/rabidaudio/shuffle/engine"
	"github.com/rabidaudio/shuffle/waveform"
)

// Session is one playback of one track.
//
// Position comes only from the wall clock since Start. The engine's own
// clock is never consulted, so position drifts from what is actually
// heard by however long the engine took to start and any underruns since.
type Session struct {
	ID     uuid.UUID
	Track  *waveform.Track
	Handle engine.Handle
	Start  time.Time
}

func newSession(t *waveform.Track, h engine.Handle, start time.Time) *Session {
	return &Session{ID: uuid.New(), Track: t, Handle: h, Start: start}
}

// Elapsed is the wall-clock time since Start, never negative.
func (s *Session) Elapsed(now time.Time) time.Duration {
	return max(now.Sub(s.Start), 0)
}

// Position is Elapsed clamped to the track's duration.
func (s *Session) Position(now time.Time) time.Duration {
	return min(s.Elapsed(now), s.Track.Duration())
}
