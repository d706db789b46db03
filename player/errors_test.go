package player

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackErrorMessages(t *testing.T) {
	missing := &TrackError{Kind: MissingFileError, Path: "b.mp3", Err: fs.ErrNotExist}
	assert.Equal(t, "file not found: b.mp3", missing.Error())
	assert.ErrorIs(t, missing, fs.ErrNotExist)

	cause := errors.New("bad header")
	bad := &TrackError{Kind: DecodeError, Path: "c.ogg", Err: cause}
	assert.Equal(t, "could not decode: c.ogg: bad header", bad.Error())
	assert.ErrorIs(t, bad, cause)

	assert.Equal(t, "could not play: d.wav", (&TrackError{Kind: EngineError, Path: "d.wav"}).Error())
	assert.Equal(t, "unknown error kind: 9", ErrorKind(9).String())
}

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from, to State
		ok       bool
	}{
		{StateIdle, StateLoading, true},
		{StateLoading, StatePlaying, true},
		{StateLoading, StateFinished, true},
		{StatePlaying, StatePlaying, true},
		{StatePlaying, StateFinished, true},
		{StateFinished, StateIdle, true},
		{StateFinished, StateStopped, true},
		{StateIdle, StateStopped, true},
		{StateIdle, StatePlaying, false},
		{StatePlaying, StateIdle, false},
		{StateStopped, StateLoading, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, canTransition(tt.from, tt.to), "%v -> %v", tt.from, tt.to)
	}
	assert.Equal(t, "state(42)", State(42).String())
}
