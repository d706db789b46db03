package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/rabidaudio/shuffle/waveform"
)

// DefaultSampleRate is the output rate used when none is given.
const DefaultSampleRate = 44100

// BufferDuration is how much audio the speaker buffers ahead.
const BufferDuration = time.Second / 10

// ResampleQuality is passed to beep.Resample for tracks that don't match
// the output rate.
const ResampleQuality = 4

// Speaker is an Engine backed by the beep speaker. There is one audio
// device per process, so only one Speaker should be open at a time.
type Speaker struct {
	rate beep.SampleRate

	mu       sync.Mutex
	next     Handle
	sessions map[Handle]*session
	closed   bool
}

type session struct {
	streamer beep.Streamer
	started  atomic.Bool
	done     atomic.Bool
}

func newSession(t *waveform.Track, rate beep.SampleRate) *session {
	s := &session{}
	var st beep.Streamer = t.Streamer()
	if src := beep.SampleRate(t.SampleRate); src != rate {
		st = beep.Resample(ResampleQuality, src, rate, st)
	}
	// the callback runs on the speaker goroutine once the track drains
	s.streamer = beep.Seq(st, beep.Callback(func() {
		s.done.Store(true)
	}))
	return s
}

func (s *session) playing() bool {
	return s.started.Load() && !s.done.Load()
}

// Open initializes the audio device at the given output sample rate.
// A rate of 0 uses DefaultSampleRate. Be sure to Close() the Speaker
// after use.
func Open(rate int) (*Speaker, error) {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	sr := beep.SampleRate(rate)
	err := speaker.Init(sr, sr.N(BufferDuration))
	if err != nil {
		return nil, fmt.Errorf("engine: init speaker: %w", err)
	}
	return &Speaker{rate: sr, sessions: make(map[Handle]*session)}, nil
}

// SampleRate is the device output rate.
func (e *Speaker) SampleRate() int {
	return int(e.rate)
}

func (e *Speaker) Load(t *waveform.Track) (Handle, error) {
	if t == nil || t.SampleRate <= 0 || t.Channels <= 0 {
		return 0, fmt.Errorf("engine: track is not playable")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return 0, ErrClosed
	}

	e.next++
	e.sessions[e.next] = newSession(t, e.rate)
	return e.next, nil
}

func (e *Speaker) Play(h Handle) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}

	s, ok := e.sessions[h]
	if !ok {
		return ErrUnknownHandle
	}
	if s.started.Swap(true) {
		return nil
	}
	speaker.Play(s.streamer)
	return nil
}

func (e *Speaker) IsPlaying(h Handle) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[h]
	if !ok {
		return false
	}
	if s.done.Load() {
		delete(e.sessions, h)
	}
	return s.playing()
}

func (e *Speaker) StopAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.stopLocked()
}

func (e *Speaker) stopLocked() {
	speaker.Clear()
	for h, s := range e.sessions {
		s.done.Store(true)
		delete(e.sessions, h)
	}
}

// Close stops playback and releases the audio device. It is safe to call
// more than once.
func (e *Speaker) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.stopLocked()
	speaker.Close()
	e.closed = true
	return nil
}

// ensure interface conformation
var _ Engine = (*Speaker)(nil)
