// Package waveform holds fully decoded audio tracks in memory and the
// loudness analysis that runs over them while they play.
package waveform

import "time"

// Track is a decoded audio file. Samples are interleaved signed integers
// at the track's bit depth, so a stereo track stores L R L R ...
//
// A Track is never modified after decoding and is safe to share between
// the visualizer and the playback engine.
type Track struct {
	Name       string  // source file name, used for display
	Samples    []int32 // interleaved samples
	Channels   int     // 1 (mono) or 2 (stereo)
	SampleRate int     // frames per second
	BitDepth   int     // bits per sample, e.g. 16
}

// Frames returns the number of sample frames (one sample per channel).
func (t *Track) Frames() int {
	if t.Channels <= 0 {
		return 0
	}
	return len(t.Samples) / t.Channels
}

// Duration is the playing time of the track.
func (t *Track) Duration() time.Duration {
	if t.SampleRate <= 0 {
		return 0
	}
	return time.Duration(int64(t.Frames()) * int64(time.Second) / int64(t.SampleRate))
}

// Seconds is Duration as fractional seconds.
func (t *Track) Seconds() float64 {
	return t.Duration().Seconds()
}

// MaxAmplitude is the largest magnitude representable at the track's bit
// depth, 32768 for 16-bit audio.
func (t *Track) MaxAmplitude() float64 {
	bits := t.BitDepth
	if bits <= 0 {
		bits = DefaultBitDepth
	}
	return float64(int64(1) << (bits - 1))
}

// frameAt converts a millisecond offset into a frame index, clamped
// to [0, Frames()].
func (t *Track) frameAt(ms int64) int {
	if ms <= 0 {
		return 0
	}
	f := ms * int64(t.SampleRate) / 1000
	if n := int64(t.Frames()); f > n {
		return int(n)
	}
	return int(f)
}

// Slice returns the interleaved samples over [offset, offset+width).
// Spans past the end of the track are cut short, so an offset beyond the
// end yields an empty slice. The result aliases Samples.
func (t *Track) Slice(offset, width time.Duration) []int32 {
	start := t.frameAt(offset.Milliseconds())
	end := t.frameAt((offset + width).Milliseconds())
	if end <= start {
		return nil
	}
	return t.Samples[start*t.Channels : end*t.Channels]
}
