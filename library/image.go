package library

import (
	"fmt"
	"io"
	"os"
	"path"
	"sort"

	"github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/filesystem"
	"github.com/rabidaudio/shuffle/waveform"
)

// Image is a Source reading the root directory of a FAT32 disk image,
// such as a dump of a USB stick or SD card. The image is opened read-only.
type Image struct {
	Path      string
	Partition int // 0 for an unpartitioned image, otherwise the 1-based partition number
	fs        filesystem.FileSystem
}

// OpenImage opens the filesystem on the given partition of the image at
// imgPath. Be sure to Close() the Image after use.
func OpenImage(imgPath string, partition int) (*Image, error) {
	dsk, err := diskfs.Open(imgPath, diskfs.WithOpenMode(diskfs.ReadOnly))
	if err != nil {
		return nil, fmt.Errorf("open image %v: %w", imgPath, err)
	}
	fs, err := dsk.GetFilesystem(partition)
	if err != nil {
		return nil, fmt.Errorf("open image %v partition %d: %w", imgPath, partition, err)
	}
	if fs.Type() != filesystem.TypeFat32 {
		return nil, fmt.Errorf("open image %v partition %d: not a FAT32 filesystem", imgPath, partition)
	}
	return &Image{Path: imgPath, Partition: partition, fs: fs}, nil
}

func (img *Image) entries() ([]os.FileInfo, error) {
	return img.fs.ReadDir("/")
}

func (img *Image) Scan() ([]string, error) {
	fileInfo, err := img.entries()
	if err != nil {
		return nil, fmt.Errorf("scan %v: %w", img.Path, err)
	}
	names := make([]string, 0, len(fileInfo))
	for _, fi := range fileInfo {
		if fi.IsDir() || !waveform.IsAudio(fi.Name()) {
			continue
		}
		names = append(names, fi.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (img *Image) Exists(name string) bool {
	fileInfo, err := img.entries()
	if err != nil {
		return false
	}
	for _, fi := range fileInfo {
		if !fi.IsDir() && fi.Name() == name {
			return true
		}
	}
	return false
}

func (img *Image) Open(name string) (io.ReadCloser, error) {
	f, err := img.fs.OpenFile(path.Join("/", name), os.O_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("open %v: %w", name, err)
	}
	return f, nil
}

func (img *Image) Close() error {
	return img.fs.Close()
}

// ensure interface conformation
var _ Source = (*Image)(nil)
