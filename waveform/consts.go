package waveform

import "time"

// Window is the width of the slice analyzed for each loudness reading.
// The visualizer polls at the same cadence, so consecutive readings
// cover roughly adjacent spans of audio.
const Window = 100 * time.Millisecond

// DefaultBitDepth is assumed when a decoder does not report a precision.
// Almost everything in the wild (CD audio, MP3, Vorbis through beep) is
// signed 16-bit.
const DefaultBitDepth = 16

// Extensions lists the file extensions that can be decoded, lower case
// with the leading dot.
var Extensions = []string{".mp3", ".wav", ".ogg"}
