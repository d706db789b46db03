package mock

import (
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// CDFormat is 44.1KHz stereo 16-bit, the format test fixtures use unless
// they need something else.
var CDFormat = beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}

// Square returns an endless square wave alternating between +amp and -amp
// every sample. Its RMS is amp.
func Square(amp float64) beep.Streamer {
	sign := 1.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i][0], samples[i][1] = amp*sign, amp*sign
			sign = -sign
		}
		return len(samples), true
	})
}

// WriteWAV writes frames of a square wave at amp to a new WAV file at path.
func WriteWAV(path string, format beep.Format, frames int, amp float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if c := f.Close(); err == nil {
			err = c
		}
	}()
	return wav.Encode(f, beep.Take(frames, Square(amp)), format)
}
