// Package library finds the candidate tracks to shuffle and opens them
// for decoding.
package library

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/rabidaudio/shuffle/waveform"
)

// Source is a flat collection of audio files addressed by name.
type Source interface {
	// Scan lists the names of all audio files, sorted.
	Scan() ([]string, error)
	// Exists reports whether name is still a readable file.
	Exists(name string) bool
	// Open opens name for reading.
	Open(name string) (io.ReadCloser, error)
	Close() error
}

// Dir is a Source reading the top level of a directory on disk.
// Subdirectories are not descended into.
type Dir struct {
	Root string
}

func (d Dir) path(name string) string {
	return filepath.Join(d.Root, name)
}

func (d Dir) Scan() ([]string, error) {
	entries, err := os.ReadDir(d.Root)
	if err != nil {
		return nil, fmt.Errorf("scan %v: %w", d.Root, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !waveform.IsAudio(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (d Dir) Exists(name string) bool {
	info, err := os.Stat(d.path(name))
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func (d Dir) Open(name string) (io.ReadCloser, error) {
	return os.Open(d.path(name))
}

func (d Dir) Close() error {
	return nil
}

// ensure interface conformation
var _ Source = Dir{}
