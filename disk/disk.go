// Package disk provides the single entry point a front end needs: open
// an image, resolve an optional partition/subpartition selection, and
// decode the MINIX filesystem found there.
//
// Adapted from the donor's Disk type, which bundled an *os.File with a
// partition.Table and dispatched to a filesystem implementation by
// probing each one in turn (fat32, then iso9660). This module supports
// exactly one on-disk format, so GetFilesystem's probing collapses into
// a single minix.Open call, and Table/CreateFilesystem/Partition have no
// read-only counterpart (spec.md §1 Non-goals: no write support).
package disk

import (
	"os"

	"github.com/minixfs/minixfs/filesystem/minix"
	"github.com/minixfs/minixfs/internal/imagereader"
	"github.com/minixfs/minixfs/internal/mbr"
)

// Disk is a reference to an opened MINIX disk image, with its
// filesystem already decoded at the selected partition's offset.
type Disk struct {
	File     *os.File
	Size     int64
	FSOffset int64
	FS       *minix.Context
}

// Open opens imagePath read-only, resolves sel to an absolute byte
// offset (0 if sel is the unpartitioned selection), and decodes the
// superblock found there.
func Open(imagePath string, sel mbr.Selection) (*Disk, error) {
	f, err := imagereader.Open(imagePath)
	if err != nil {
		return nil, err
	}

	if _, err := DetermineDeviceType(f); err != nil {
		_ = f.Close()
		return nil, err
	}

	size, err := imagereader.Size(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	offset, err := mbr.Resolve(f, sel)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	fs, err := minix.Open(f, offset)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &Disk{File: f, Size: size, FSOffset: offset, FS: fs}, nil
}

// Close closes the underlying image file. The caller owns the file per
// spec.md §1 (opening/closing the image is an external collaborator);
// Close is provided as a convenience since Open did the opening.
func (d *Disk) Close() error {
	return d.File.Close()
}
