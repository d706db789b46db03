package library

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/disk"
	"github.com/diskfs/go-diskfs/filesystem"
	"github.com/diskfs/go-diskfs/filesystem/fat32"
	"github.com/diskfs/go-diskfs/partition/mbr"
)

const MIN_DISK_SIZE = 50 * fat32.MB
const SECTOR_SIZE = 512
const PARTITION_START = 2048

// room for the FAT tables and directory clusters on top of the file data
const diskOverhead = 16 * fat32.MB

// Packed pairs a file in the directory with its name inside the image.
type Packed struct {
	Name      string
	ShortName string
}

// sanitizeName converts a file name to the base of a DOS name by
// uppercasing, keeping only ASCII letters and digits, and trimming to
// 8 chars
func sanitizeName(name string) string {
	// https://en.wikipedia.org/wiki/8.3_filename
	newName := make([]rune, 0, 8)
	for _, r := range strings.ToUpper(name) {
		if len(newName) == 8 {
			break
		}
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			newName = append(newName, r)
		}
	}
	return string(newName)
}

// shortName picks an 8.3 name for name that is not already in used, adding
// a ~N tail on collision the way DOS does.
func shortName(name string, used map[string]bool) string {
	ext := filepath.Ext(name)
	base := sanitizeName(strings.TrimSuffix(name, ext))
	if base == "" {
		base = "TRACK"
	}
	ext = strings.ToUpper(ext)
	if len(ext) > 4 {
		ext = ext[:4]
	}

	candidate := base + ext
	for n := 1; used[candidate]; n++ {
		tail := "~" + strconv.Itoa(n)
		candidate = base[:min(len(base), 8-len(tail))] + tail + ext
	}
	used[candidate] = true
	return candidate
}

func diskSize(dataBytes int64) int64 {
	size := max(dataBytes+dataBytes/10+diskOverhead, MIN_DISK_SIZE)
	// whole sectors
	return (size + SECTOR_SIZE - 1) / SECTOR_SIZE * SECTOR_SIZE
}

// Pack copies every audio file in the directory into the root of a new
// FAT32 image at dst, under 8.3 names that any car stereo or media player
// can read. The image has one partition, so it reads back with
// OpenImage(dst, 1). dst must not exist.
func (d Dir) Pack(dst string) (packed []Packed, err error) {
	if _, err := os.Stat(dst); err == nil {
		return nil, fmt.Errorf("pack %v: %w", dst, os.ErrExist)
	}
	names, err := d.Scan()
	if err != nil {
		return nil, err
	}
	var total int64
	for _, name := range names {
		info, err := os.Stat(d.path(name))
		if err != nil {
			return nil, fmt.Errorf("pack %v: %w", name, err)
		}
		total += info.Size()
	}

	size := diskSize(total)
	dsk, err := diskfs.Create(dst, size, diskfs.SectorSizeDefault)
	if err != nil {
		return nil, fmt.Errorf("pack %v: %w", dst, err)
	}
	defer func() {
		if err != nil {
			os.Remove(dst)
		}
	}()

	// create an MBR with one partition
	table := &mbr.Table{
		LogicalSectorSize:  SECTOR_SIZE,
		PhysicalSectorSize: SECTOR_SIZE,
		Partitions: []*mbr.Partition{
			{
				Bootable: false,
				Type:     mbr.Fat32LBA,
				Start:    PARTITION_START,
				Size:     uint32(size/SECTOR_SIZE) - PARTITION_START,
			},
		},
	}
	err = dsk.Partition(table)
	if err != nil {
		return nil, err
	}
	fatfs, err := dsk.CreateFilesystem(disk.FilesystemSpec{
		Partition:   1,
		FSType:      filesystem.TypeFat32,
		VolumeLabel: "SHUFFLE",
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		cerr := fatfs.Close()
		if err == nil {
			err = cerr
		}
	}()

	used := make(map[string]bool, len(names))
	for _, name := range names {
		short := shortName(name, used)
		err = d.copyInto(fatfs, name, "/"+short)
		if err != nil {
			return nil, err
		}
		packed = append(packed, Packed{Name: name, ShortName: short})
	}
	return packed, nil
}

func (d Dir) copyInto(fs filesystem.FileSystem, name, dst string) error {
	in, err := d.Open(name)
	if err != nil {
		return fmt.Errorf("pack %v: %w", name, err)
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_RDWR)
	if err != nil {
		return fmt.Errorf("create %v: %w", dst, err)
	}
	_, err = io.Copy(out, in)
	if err != nil {
		out.Close()
		return fmt.Errorf("write %v: %w", dst, err)
	}
	return out.Close()
}
