// Package engine plays decoded tracks on the system audio device.
//
// The engine is deliberately opaque: callers hand it a track, start it,
// and poll whether it is still playing. It reports no position. Anything
// that needs to follow along (the visualizer) keeps its own clock.
package engine

import (
	"fmt"

	"github.com/rabidaudio/shuffle/waveform"
)

// Handle identifies a loaded track. The zero Handle is never issued.
type Handle uint64

// Engine is the playback backend consumed by the player.
type Engine interface {
	// Load prepares a track for playback without starting it.
	Load(t *waveform.Track) (Handle, error)
	// Play starts a loaded track and returns immediately.
	Play(h Handle) error
	// IsPlaying reports whether h has been started and has not yet
	// finished or been stopped.
	IsPlaying(h Handle) bool
	// StopAll silences everything currently playing.
	StopAll()
	// Close releases the audio device.
	Close() error
}

// ErrUnknownHandle is returned when a Handle was never issued or has
// already been released.
var ErrUnknownHandle = fmt.Errorf("engine: unknown handle")

// ErrClosed is returned by an engine that has been closed.
var ErrClosed = fmt.Errorf("engine: closed")
