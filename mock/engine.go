package mock

import (
	"github.com/rabidaudio/shuffle/display"
	"github.com/rabidaudio/shuffle/engine"
	"github.com/rabidaudio/shuffle/waveform"
)

// Engine plays nothing. Every started track reports playing for Polls
// calls to IsPlaying and then finishes.
type Engine struct {
	Polls     int
	OnLoad    func(t *waveform.Track) // called before each Load returns
	LoadErr   error                   // returned by Load when set
	Loaded    []string
	Played    []string
	Stopped   int
	Closed    bool
	next      engine.Handle
	tracks    map[engine.Handle]*waveform.Track
	remaining map[engine.Handle]int
}

var _ engine.Engine = (*Engine)(nil)

func (e *Engine) Load(t *waveform.Track) (engine.Handle, error) {
	if e.OnLoad != nil {
		e.OnLoad(t)
	}
	if e.LoadErr != nil {
		return 0, e.LoadErr
	}
	if e.tracks == nil {
		e.tracks = make(map[engine.Handle]*waveform.Track)
		e.remaining = make(map[engine.Handle]int)
	}
	e.next++
	e.tracks[e.next] = t
	e.Loaded = append(e.Loaded, t.Name)
	return e.next, nil
}

func (e *Engine) Play(h engine.Handle) error {
	t, ok := e.tracks[h]
	if !ok {
		return engine.ErrUnknownHandle
	}
	e.Played = append(e.Played, t.Name)
	e.remaining[h] = e.Polls
	return nil
}

func (e *Engine) IsPlaying(h engine.Handle) bool {
	n, ok := e.remaining[h]
	if !ok || n <= 0 {
		return false
	}
	e.remaining[h] = n - 1
	return true
}

func (e *Engine) StopAll() {
	e.Stopped++
	for h := range e.remaining {
		e.remaining[h] = 0
	}
}

func (e *Engine) Close() error {
	e.Closed = true
	return nil
}

// Screen records every frame drawn.
type Screen struct {
	Frames []display.Frame
	Closed bool
}

var _ display.Screen = (*Screen)(nil)

func (s *Screen) Draw(f display.Frame) error {
	f.Notices = append([]string(nil), f.Notices...)
	s.Frames = append(s.Frames, f)
	return nil
}

func (s *Screen) Close() error {
	s.Closed = true
	return nil
}

// Titles lists the distinct non-empty titles in the order drawn.
func (s *Screen) Titles() []string {
	var titles []string
	for _, f := range s.Frames {
		if f.Title != "" && (len(titles) == 0 || titles[len(titles)-1] != f.Title) {
			titles = append(titles, f.Title)
		}
	}
	return titles
}

// LED records the loudness values it is shown.
type LED struct {
	Values []float64
}

func (l *LED) Show(loudness float64) {
	l.Values = append(l.Values, loudness)
}
