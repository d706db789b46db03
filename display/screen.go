package display

import (
	"fmt"
	"io"
	"strings"
)

// Frame is one full redraw of the player status.
type Frame struct {
	Title    string   // e.g. "Now Playing: song.mp3"
	Progress string   // see ProgressBar
	Volume   string   // see VolumeLine
	Notices  []string // warnings shown below the status
}

// Lines lays the frame out top to bottom, skipping empty fields.
func (f Frame) Lines() []string {
	lines := make([]string, 0, 3+len(f.Notices))
	for _, l := range []string{f.Title, f.Progress, f.Volume} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	if len(f.Notices) > 0 {
		lines = append(lines, "")
		lines = append(lines, f.Notices...)
	}
	return lines
}

// Screen is a render target for frames.
type Screen interface {
	Draw(f Frame) error
	Close() error
}

// Plain redraws frames in place on any ANSI terminal by moving the cursor
// back over the previous frame and erasing line by line, rather than
// clearing the whole screen.
type Plain struct {
	w    io.Writer
	prev int
}

// NewPlain returns a Screen that writes to w.
func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

const (
	ansiUp        = "\x1b[%dA"
	ansiEraseLine = "\x1b[K"
	ansiEraseDown = "\x1b[J"
)

func (p *Plain) Draw(f Frame) error {
	var sb strings.Builder
	if p.prev > 0 {
		fmt.Fprintf(&sb, ansiUp, p.prev)
	}
	sb.WriteString("\r")
	lines := f.Lines()
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteString(ansiEraseLine)
		sb.WriteString("\n")
	}
	if len(lines) < p.prev {
		sb.WriteString(ansiEraseDown)
	}
	p.prev = len(lines)
	_, err := io.WriteString(p.w, sb.String())
	return err
}

// Close leaves the last frame on screen.
func (p *Plain) Close() error {
	return nil
}

var _ Screen = (*Plain)(nil)
