package display

import (
	"sync"

	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

// Termbox draws frames into termbox's back buffer and flushes, so only
// the cells that changed since the last frame reach the terminal.
//
// termbox puts the terminal in raw mode, which swallows Ctrl-C. Key
// presses that mean "quit" (Ctrl-C, Esc, q) are reported on Quit instead.
type Termbox struct {
	quit      chan struct{}
	quitOnce  sync.Once
	done      chan struct{}
	closeOnce sync.Once
}

// OpenTermbox takes over the terminal. Be sure to Close() it after use to
// restore the terminal.
func OpenTermbox() (*Termbox, error) {
	err := termbox.Init()
	if err != nil {
		return nil, err
	}
	termbox.HideCursor()
	t := &Termbox{quit: make(chan struct{}), done: make(chan struct{})}
	go t.pollEvents()
	return t, nil
}

// Quit is closed when the user asks to leave.
func (t *Termbox) Quit() <-chan struct{} {
	return t.quit
}

func (t *Termbox) pollEvents() {
	defer close(t.done)
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt, termbox.EventError:
			return
		case termbox.EventKey:
			if ev.Key == termbox.KeyCtrlC || ev.Key == termbox.KeyEsc || ev.Ch == 'q' {
				t.quitOnce.Do(func() { close(t.quit) })
			}
		}
	}
}

func (t *Termbox) Draw(f Frame) error {
	err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	if err != nil {
		return err
	}
	width, height := termbox.Size()
	for y, line := range f.Lines() {
		if y >= height {
			break
		}
		fg := termbox.ColorDefault
		switch {
		case y == 0 && f.Title != "":
			fg |= termbox.AttrBold
		case y > 3 || (f.Title == "" && f.Progress == "" && f.Volume == ""):
			fg = termbox.ColorYellow
		}
		drawLine(line, y, width, fg)
	}
	return termbox.Flush()
}

func drawLine(line string, y, width int, fg termbox.Attribute) {
	x := 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if x+w > width {
			return
		}
		termbox.SetCell(x, y, r, fg, termbox.ColorDefault)
		x += w
	}
}

// Close restores the terminal. It is safe to call more than once.
func (t *Termbox) Close() error {
	t.closeOnce.Do(func() {
		// Interrupt blocks until PollEvent picks it up, which never
		// happens if polling already stopped on an error
		go termbox.Interrupt()
		<-t.done
		termbox.Close()
	})
	return nil
}

var _ Screen = (*Termbox)(nil)
