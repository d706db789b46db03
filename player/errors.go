package player

import "fmt"

// ErrNoTracks is returned by Run when there is nothing to play.
var ErrNoTracks = fmt.Errorf("player: no tracks")

// NoTracksMessage is shown to the user when the library is empty.
const NoTracksMessage = "No music files found in the current directory."

// ErrorKind classifies why a track was skipped.
type ErrorKind int

const (
	// MissingFileError: the track was listed at scan time but is gone
	// when its turn comes.
	MissingFileError ErrorKind = 1
	// DecodeError: the file is there but could not be read as audio.
	DecodeError ErrorKind = 2
	// EngineError: the audio engine refused the track.
	EngineError ErrorKind = 3
)

func (k ErrorKind) name() string {
	switch k {
	case MissingFileError:
		return "file not found"
	case DecodeError:
		return "could not decode"
	case EngineError:
		return "could not play"
	default:
		return fmt.Sprintf("unknown error kind: %d", int(k))
	}
}

func (k ErrorKind) String() string {
	return k.name()
}

// TrackError reports a track that was skipped. It never stops the rest of
// the queue.
type TrackError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *TrackError) Error() string {
	if e.Err == nil || e.Kind == MissingFileError {
		return fmt.Sprintf("%v: %v", e.Kind.name(), e.Path)
	}
	return fmt.Sprintf("%v: %v: %v", e.Kind.name(), e.Path, e.Err)
}

func (e *TrackError) Unwrap() error {
	return e.Err
}
