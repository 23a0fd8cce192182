// Package mbr resolves an MBR-style partition (and optional subpartition)
// selection to the absolute byte offset at which a MINIX filesystem
// begins. It is the §4.1 "partition locator" of the decoder pipeline.
package mbr

import (
	"encoding/binary"
	"fmt"

	"github.com/minixfs/minixfs/internal/imagereader"
)

const (
	sectorSize     = 512
	bootSigOffset  = 510
	partTableStart = 0x1BE
	entrySize      = 16
	maxIndex       = 4

	minixPartitionType = 0x81
)

var bootSignature = [2]byte{0x55, 0xAA}

// Selection identifies which filesystem on the disk image to mount: the
// whole image, a primary partition, or a primary partition's subpartition.
type Selection struct {
	HasPrimary bool
	Primary    int
	HasSub     bool
	Sub        int
}

// None selects the unpartitioned image itself.
func None() Selection { return Selection{} }

// ErrInvalidIndex reports a partition or subpartition index outside 0..3.
type ErrInvalidIndex struct {
	Index int
}

func (e *ErrInvalidIndex) Error() string {
	return fmt.Sprintf("partition index %d out of range 0..3", e.Index)
}

// ErrBadBootSignature reports a boot sector whose final two bytes are not
// 0x55 0xAA.
type ErrBadBootSignature struct {
	Got [2]byte
}

func (e *ErrBadBootSignature) Error() string {
	return fmt.Sprintf("bad boot signature: got %02x %02x, want 55 aa", e.Got[0], e.Got[1])
}

// ErrWrongPartitionType reports a partition table entry whose type byte is
// not the MINIX partition type 0x81.
type ErrWrongPartitionType struct {
	Got byte
}

func (e *ErrWrongPartitionType) Error() string {
	return fmt.Sprintf("partition type 0x%02x is not a MINIX partition (want 0x81)", e.Got)
}

// entry is a decoded 16-byte MBR partition table entry.
type entry struct {
	bootIndicator byte
	partType      byte
	lFirst        uint32
	sectors       uint32
}

func decodeEntry(b []byte) entry {
	return entry{
		bootIndicator: b[0],
		partType:      b[4],
		lFirst:        binary.LittleEndian.Uint32(b[8:12]),
		sectors:       binary.LittleEndian.Uint32(b[12:16]),
	}
}

func verifyBootSignature(r imagereader.Storage, base int64) error {
	var sig [2]byte
	if err := imagereader.ReadFull(r, sig[:], base+bootSigOffset); err != nil {
		return err
	}
	if sig != bootSignature {
		return &ErrBadBootSignature{Got: sig}
	}
	return nil
}

func readEntry(r imagereader.Storage, base int64, index int) (entry, error) {
	if index < 0 || index >= maxIndex {
		return entry{}, &ErrInvalidIndex{Index: index}
	}
	buf := make([]byte, entrySize)
	off := base + partTableStart + int64(index)*entrySize
	if err := imagereader.ReadFull(r, buf, off); err != nil {
		return entry{}, err
	}
	e := decodeEntry(buf)
	if e.partType != minixPartitionType {
		return entry{}, &ErrWrongPartitionType{Got: e.partType}
	}
	return e, nil
}

// Resolve returns the absolute byte offset at which the selected
// filesystem begins.
func Resolve(r imagereader.Storage, sel Selection) (int64, error) {
	if !sel.HasPrimary {
		return 0, nil
	}

	if err := verifyBootSignature(r, 0); err != nil {
		return 0, fmt.Errorf("disk image: %w", err)
	}
	primary, err := readEntry(r, 0, sel.Primary)
	if err != nil {
		return 0, fmt.Errorf("primary partition %d: %w", sel.Primary, err)
	}
	primaryOffset := int64(primary.lFirst) * sectorSize

	if !sel.HasSub {
		return primaryOffset, nil
	}

	if err := verifyBootSignature(r, primaryOffset); err != nil {
		return 0, fmt.Errorf("primary partition %d subtable: %w", sel.Primary, err)
	}
	sub, err := readEntry(r, primaryOffset, sel.Sub)
	if err != nil {
		return 0, fmt.Errorf("primary partition %d subpartition %d: %w", sel.Primary, sel.Sub, err)
	}
	// sub.lFirst is an absolute LBA from the start of the disk, not
	// relative to primaryOffset: see SPEC_FULL.md's open-question decision.
	return int64(sub.lFirst) * sectorSize, nil
}
