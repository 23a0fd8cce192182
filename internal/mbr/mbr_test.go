package mbr

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/minixfs/minixfs/internal/imagetest"
)

const sectorSz = 512

func putEntry(buf []byte, index int, partType byte, lFirst, sectors uint32) {
	off := partTableStart + index*entrySize
	buf[off+0] = 0x80 // boot indicator, arbitrary
	buf[off+4] = partType
	binary.LittleEndian.PutUint32(buf[off+8:], lFirst)
	binary.LittleEndian.PutUint32(buf[off+12:], sectors)
}

func newBootSector() []byte {
	buf := make([]byte, sectorSz)
	buf[bootSigOffset] = 0x55
	buf[bootSigOffset+1] = 0xAA
	return buf
}

func TestResolveNoSelection(t *testing.T) {
	off, err := Resolve(imagetest.New(nil), None())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if off != 0 {
		t.Errorf("offset = %d, want 0", off)
	}
}

func TestResolvePrimaryPartition(t *testing.T) {
	boot := newBootSector()
	putEntry(boot, 1, minixPartitionType, 100, 2000)

	off, err := Resolve(imagetest.New(boot), Selection{HasPrimary: true, Primary: 1})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := int64(100) * sectorSz
	if off != want {
		t.Errorf("offset = %d, want %d", off, want)
	}
}

func TestResolveBadBootSignature(t *testing.T) {
	boot := make([]byte, sectorSz) // no 0x55 0xAA
	_, err := Resolve(imagetest.New(boot), Selection{HasPrimary: true, Primary: 0})
	if err == nil {
		t.Fatal("Resolve: expected error, got nil")
	}
	var badSig *ErrBadBootSignature
	if !errors.As(err, &badSig) {
		t.Fatalf("error = %v, want *ErrBadBootSignature", err)
	}
}

func TestResolveWrongPartitionType(t *testing.T) {
	boot := newBootSector()
	putEntry(boot, 0, 0x0B, 100, 2000) // FAT32, not MINIX

	_, err := Resolve(imagetest.New(boot), Selection{HasPrimary: true, Primary: 0})
	if err == nil {
		t.Fatal("Resolve: expected error, got nil")
	}
	var wrongType *ErrWrongPartitionType
	if !errors.As(err, &wrongType) {
		t.Fatalf("error = %v, want *ErrWrongPartitionType", err)
	}
}

func TestResolveInvalidIndex(t *testing.T) {
	boot := newBootSector()
	_, err := Resolve(imagetest.New(boot), Selection{HasPrimary: true, Primary: 7})
	if err == nil {
		t.Fatal("Resolve: expected error, got nil")
	}
	var invalid *ErrInvalidIndex
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *ErrInvalidIndex", err)
	}
}

// TestResolveSubpartitionAbsoluteOffset exercises the open-question
// decision that a subpartition's lFirst is an absolute LBA from the
// start of the disk, not relative to the primary partition's start. The
// primary partition here starts at sector 1000; the subpartition table
// (at the primary's start) records a subpartition at sector 1005. The
// absolute interpretation resolves to byte 1005*512; the (wrong)
// relative interpretation would resolve to (1000+1005)*512.
func TestResolveSubpartitionAbsoluteOffset(t *testing.T) {
	boot := newBootSector()
	putEntry(boot, 0, minixPartitionType, 1000, 500)

	primaryOffset := int64(1000) * sectorSz
	subTable := newBootSector()
	putEntry(subTable, 2, minixPartitionType, 1005, 10)

	image := make([]byte, primaryOffset+sectorSz)
	copy(image, boot)
	copy(image[primaryOffset:], subTable)

	off, err := Resolve(imagetest.New(image), Selection{HasPrimary: true, Primary: 0, HasSub: true, Sub: 2})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	absolute := int64(1005) * sectorSz
	relative := primaryOffset + absolute
	if off != absolute {
		t.Errorf("offset = %d, want absolute %d (not primary-relative %d)", off, absolute, relative)
	}
}
