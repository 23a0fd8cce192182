// Package imagereader provides the random-access byte source the rest of
// the decoder pipeline is built on: a positioned reader over a raw disk
// image, owned and closed by the caller.
package imagereader

import (
	"fmt"
	"io"
	"os"
)

// Storage is the minimal random-access byte source the decoder pipeline
// requires. *os.File satisfies it directly.
type Storage interface {
	io.ReaderAt
}

// Open opens path for read-only, positioned access. The caller owns the
// returned file and is responsible for closing it; nothing in this module
// closes a Storage it did not open itself.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	return f, nil
}

// ReadFull reads exactly len(buf) bytes from r at off, treating a short
// read as an I/O error rather than silently returning partial data.
func ReadFull(r Storage, buf []byte, off int64) error {
	n, err := r.ReadAt(buf, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("read %d bytes at offset %d: %w", len(buf), off, err)
	}
	if n != len(buf) {
		return fmt.Errorf("read %d bytes at offset %d: short read of %d bytes", len(buf), off, n)
	}
	return nil
}
