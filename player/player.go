// Package player runs the shuffled queue: it loads each track, starts it
// on the engine, and redraws progress and loudness on a fixed tick until
// the engine reports the track is done.
package player

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/rabidaudio/shuffle/display"
	"github.com/rabidaudio/shuffle/engine"
	"github.com/rabidaudio/shuffle/library"
	"github.com/rabidaudio/shuffle/logger"
	"github.com/rabidaudio/shuffle/waveform"
	"go.uber.org/zap"
)

// Tick is the default interval between redraws.
const Tick = 100 * time.Millisecond

// MaxNotices is the default number of warnings kept on screen.
const MaxNotices = 5

// Indicator is anything else that follows loudness, like an LED.
type Indicator interface {
	Show(loudness float64)
}

// Player plays a queue of tracks from Source on Engine, drawing to Screen.
// Source, Engine and Screen are required. Zero values for everything else
// pick the defaults.
//
// A Player is not safe for concurrent use and runs one track at a time.
type Player struct {
	Source     library.Source
	Engine     engine.Engine
	Screen     display.Screen
	Indicators []Indicator

	Tick       time.Duration    // default Tick
	BarWidth   int              // default display.BarWidth
	MaxNotices int              // default MaxNotices
	Shuffle    func([]string)   // default Shuffle
	Now        func() time.Time // default time.Now
	Sleep      func(time.Duration)

	state   State
	notices []string
}

// Summary reports what a run played and skipped.
type Summary struct {
	Played  []string
	Skipped []*TrackError
}

func (p *Player) defaults() {
	if p.Tick <= 0 {
		p.Tick = Tick
	}
	if p.BarWidth <= 0 {
		p.BarWidth = display.BarWidth
	}
	if p.MaxNotices <= 0 {
		p.MaxNotices = MaxNotices
	}
	if p.Shuffle == nil {
		p.Shuffle = Shuffle
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	if p.Sleep == nil {
		p.Sleep = time.Sleep
	}
}

// State is the current state of the player.
func (p *Player) State() State {
	return p.state
}

func (p *Player) transition(to State) {
	if !canTransition(p.state, to) {
		logger.Error("invalid state transition", zap.Stringer("from", p.state), zap.Stringer("to", to))
	}
	logger.Debug("state", zap.Stringer("from", p.state), zap.Stringer("to", to))
	p.state = to
}

// Run shuffles names and plays each of them once. Tracks that cannot be
// played are skipped with a warning. Run returns when the queue is
// exhausted, or early with ctx's error if ctx is cancelled, in which case
// the engine is stopped.
func (p *Player) Run(ctx context.Context, names []string) (Summary, error) {
	var sum Summary
	if len(names) == 0 {
		return sum, ErrNoTracks
	}
	p.defaults()
	p.state = StateIdle

	q := NewQueue(names, p.Shuffle)
	logger.Info("queue ready", zap.Int("tracks", q.Len()))
	for {
		if err := ctx.Err(); err != nil {
			return sum, p.stop(err)
		}
		name, ok := q.Next()
		if !ok {
			p.transition(StateStopped)
			logger.Info("queue finished", zap.Int("played", len(sum.Played)), zap.Int("skipped", len(sum.Skipped)))
			return sum, nil
		}

		p.transition(StateLoading)
		err := p.play(ctx, name)
		p.transition(StateFinished)

		var te *TrackError
		switch {
		case err == nil:
			sum.Played = append(sum.Played, name)
		case errors.As(err, &te):
			sum.Skipped = append(sum.Skipped, te)
			p.warn(te)
		default:
			return sum, p.stop(err)
		}
		p.transition(StateIdle)
	}
}

func (p *Player) stop(err error) error {
	logger.Info("stopping", zap.Error(err))
	p.Engine.StopAll()
	p.transition(StateStopped)
	return err
}

func (p *Player) load(name string) (*waveform.Track, error) {
	if !p.Source.Exists(name) {
		return nil, &TrackError{Kind: MissingFileError, Path: name, Err: fs.ErrNotExist}
	}
	rc, err := p.Source.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &TrackError{Kind: MissingFileError, Path: name, Err: err}
	}
	if err != nil {
		return nil, &TrackError{Kind: DecodeError, Path: name, Err: err}
	}
	t, err := waveform.Decode(rc, name)
	if err != nil {
		return nil, &TrackError{Kind: DecodeError, Path: name, Err: err}
	}
	return t, nil
}

func (p *Player) play(ctx context.Context, name string) error {
	t, err := p.load(name)
	if err != nil {
		return err
	}
	h, err := p.Engine.Load(t)
	if err != nil {
		return &TrackError{Kind: EngineError, Path: name, Err: err}
	}
	err = p.Engine.Play(h)
	if err != nil {
		return &TrackError{Kind: EngineError, Path: name, Err: err}
	}

	sess := newSession(t, h, p.Now())
	log := logger.L().With(zap.String("session", sess.ID.String()), zap.String("track", name))
	log.Info("track started",
		zap.Duration("duration", t.Duration()),
		zap.Int("channels", t.Channels),
		zap.Int("sample_rate", t.SampleRate))
	p.transition(StatePlaying)

	for p.Engine.IsPlaying(h) {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.render(sess, name)
		p.Sleep(p.Tick)
	}
	log.Info("track finished", zap.Duration("elapsed", sess.Elapsed(p.Now())))
	return nil
}

func (p *Player) render(sess *Session, name string) {
	pos := sess.Position(p.Now())
	loudness := sess.Track.Loudness(pos)

	frame := display.Frame{
		Title:    "Now Playing: " + name,
		Progress: display.ProgressBar(pos.Seconds(), sess.Track.Seconds(), p.BarWidth),
		Volume:   display.VolumeLine(loudness),
		Notices:  p.notices,
	}
	if err := p.Screen.Draw(frame); err != nil {
		logger.Warn("draw failed", zap.Error(err))
	}
	for _, ind := range p.Indicators {
		ind.Show(loudness)
	}
}

func (p *Player) warn(te *TrackError) {
	logger.Warn("skipping track", zap.String("track", te.Path), zap.Stringer("kind", te.Kind), zap.Error(te.Err))
	p.notices = append(p.notices, te.Error())
	if len(p.notices) > p.MaxNotices {
		p.notices = p.notices[len(p.notices)-p.MaxNotices:]
	}
	if err := p.Screen.Draw(display.Frame{Notices: p.notices}); err != nil {
		logger.Warn("draw failed", zap.Error(err))
	}
}
