package waveform

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// ErrUnsupported is returned by Decode for a file extension that has no
// decoder.
var ErrUnsupported = fmt.Errorf("waveform: unsupported format")

// IsAudio reports whether name has one of the decodable Extensions.
func IsAudio(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func open(rc io.ReadCloser, name string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp3":
		return mp3.Decode(rc)
	case ".wav":
		return wav.Decode(rc)
	case ".ogg":
		return vorbis.Decode(rc)
	default:
		return nil, beep.Format{}, ErrUnsupported
	}
}

// Decode reads a whole audio file into memory. The decoder is chosen by
// the extension of name. rc is closed before Decode returns.
func Decode(rc io.ReadCloser, name string) (*Track, error) {
	streamer, format, err := open(rc, name)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("decode %v: %w", name, err)
	}
	defer streamer.Close()

	t, err := Read(name, streamer, format)
	if err != nil {
		return nil, fmt.Errorf("decode %v: %w", name, err)
	}
	return t, nil
}

// Read drains s into a Track. Samples are quantized back to the integer
// range of format.Precision; mono sources keep a single channel.
func Read(name string, s beep.Streamer, format beep.Format) (*Track, error) {
	channels := format.NumChannels
	if channels != 1 {
		channels = 2
	}
	bits := format.Precision * 8
	if bits <= 0 {
		bits = DefaultBitDepth
	}
	t := &Track{
		Name:       name,
		Channels:   channels,
		SampleRate: int(format.SampleRate),
		BitDepth:   bits,
	}
	if n, ok := s.(beep.StreamSeeker); ok && n.Len() > 0 {
		t.Samples = make([]int32, 0, n.Len()*channels)
	}

	peak := t.MaxAmplitude()
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			t.Samples = append(t.Samples, quantize(frame[0], peak))
			if channels == 2 {
				t.Samples = append(t.Samples, quantize(frame[1], peak))
			}
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func quantize(v, peak float64) int32 {
	q := math.Round(v * peak)
	if q > peak-1 {
		q = peak - 1
	}
	if q < -peak {
		q = -peak
	}
	return int32(q)
}

// Float converts an integer sample back to the [-1, 1] range used by beep.
func (t *Track) Float(sample int32) float64 {
	return float64(sample) / t.MaxAmplitude()
}
