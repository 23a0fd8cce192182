// Package imagetest provides an in-memory io.ReaderAt for exercising the
// decoder packages against synthetic disk images, without touching a real
// file on disk.
//
// Adapted from the donor's testhelper.FileImpl, which stubbed out the
// donor's File interface with reader/writer closures; this version drops
// the write side (nothing under this module writes images) and backs
// reads directly with a byte slice instead of a closure, since every
// caller here wants a fixed synthetic image rather than custom behavior
// per read.
package imagetest

import "io"

// Image is a fixed-size, read-only in-memory disk image.
type Image struct {
	data []byte
}

// New wraps data as an Image. The caller builds data byte-by-byte to
// represent whatever boot sector / superblock / inode / zone layout a
// test needs.
func New(data []byte) *Image {
	return &Image{data: data}
}

// ReadAt implements io.ReaderAt.
func (img *Image) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, io.EOF
	}
	if off >= int64(len(img.data)) {
		return 0, io.EOF
	}
	n := copy(p, img.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Len reports the image size in bytes.
func (img *Image) Len() int { return len(img.data) }
