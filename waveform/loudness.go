package waveform

import (
	"math"
	"time"
)

// Mono collapses interleaved samples to one value per frame by averaging
// the channels of each frame. A trailing partial frame is dropped.
func Mono(samples []int32, channels int) []float64 {
	if channels <= 0 {
		return nil
	}
	frames := len(samples) / channels
	out := make([]float64, frames)
	for i := range frames {
		var sum float64
		for c := range channels {
			sum += float64(samples[i*channels+c])
		}
		out[i] = sum / float64(channels)
	}
	return out
}

// RMS is the root-mean-square of the mono mix of samples. An empty input
// has an RMS of zero.
func RMS(samples []int32, channels int) float64 {
	mono := Mono(samples, channels)
	if len(mono) == 0 {
		return 0
	}
	var sum float64
	for _, v := range mono {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(mono)))
}

// Loudness is the RMS of the Window starting at offset, scaled by the
// track's maximum amplitude and clamped to [0, 1].
func (t *Track) Loudness(offset time.Duration) float64 {
	return t.LoudnessOver(offset, Window)
}

// LoudnessOver is Loudness with an explicit window width.
func (t *Track) LoudnessOver(offset, width time.Duration) float64 {
	rms := RMS(t.Slice(offset, width), t.Channels)
	return min(rms/t.MaxAmplitude(), 1)
}
