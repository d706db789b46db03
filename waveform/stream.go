package waveform

import (
	"fmt"

	"github.com/faiface/beep"
)

type trackStreamer struct {
	t   *Track
	pos int
}

// Streamer plays the decoded track back through beep. Mono tracks are
// written to both output channels. Each call returns an independent
// cursor starting at the first frame.
func (t *Track) Streamer() beep.StreamSeeker {
	return &trackStreamer{t: t}
}

func (s *trackStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	frames := s.t.Frames()
	if s.pos >= frames {
		return 0, false
	}
	ch := s.t.Channels
	for n < len(samples) && s.pos < frames {
		i := s.pos * ch
		l := s.t.Float(s.t.Samples[i])
		r := l
		if ch == 2 {
			r = s.t.Float(s.t.Samples[i+1])
		}
		samples[n][0], samples[n][1] = l, r
		n++
		s.pos++
	}
	return n, true
}

func (s *trackStreamer) Err() error {
	return nil
}

func (s *trackStreamer) Len() int {
	return s.t.Frames()
}

func (s *trackStreamer) Position() int {
	return s.pos
}

func (s *trackStreamer) Seek(p int) error {
	if p < 0 || p > s.t.Frames() {
		return fmt.Errorf("waveform: seek %d out of bounds (track length %d frames)", p, s.t.Frames())
	}
	s.pos = p
	return nil
}

// ensure interface conformation
var _ beep.StreamSeeker = (*trackStreamer)(nil)
