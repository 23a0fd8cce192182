package minix

import (
	"encoding/binary"

	"github.com/minixfs/minixfs/internal/imagetest"
)

// imageBuilder assembles a synthetic MINIX V3 image byte-by-byte: boot
// block, superblock, inode table, and data zones placed by the caller.
// It exists purely to drive the decoder under test with hand-built
// bytes, mirroring the donor's own *_internal_test.go style of
// constructing fixed-layout structures directly rather than round-
// tripping through the package's own encoder (this package has none).
type imageBuilder struct {
	blockSize   uint16
	logZoneSize int16
	zoneSize    uint32

	header   []byte
	zones    []byte
	nextZone uint32
}

func newImageBuilder(blockSize uint16, logZoneSize int16, ninodes uint32) *imageBuilder {
	zoneSize := uint32(blockSize) << uint(logZoneSize)
	inodeTableBlocks := (int64(ninodes)*inodeSize + int64(blockSize) - 1) / int64(blockSize)
	headerBlocks := int64(2) + inodeTableBlocks
	headerBytes := headerBlocks * int64(blockSize)
	firstDataZone := uint32((headerBytes + int64(zoneSize) - 1) / int64(zoneSize))

	b := &imageBuilder{
		blockSize:   blockSize,
		logZoneSize: logZoneSize,
		zoneSize:    zoneSize,
		header:      make([]byte, int64(firstDataZone)*int64(zoneSize)),
		nextZone:    firstDataZone,
	}

	buf := b.header[superblockOffset : superblockOffset+superblockSize]
	binary.LittleEndian.PutUint32(buf[0:4], ninodes)
	binary.LittleEndian.PutUint16(buf[6:8], 0) // IBlocks
	binary.LittleEndian.PutUint16(buf[8:10], 0) // ZBlocks
	binary.LittleEndian.PutUint16(buf[10:12], 0) // FirstData (unused by the decoder)
	binary.LittleEndian.PutUint16(buf[12:14], uint16(logZoneSize))
	binary.LittleEndian.PutUint32(buf[16:20], 0) // MaxFile (unused by the decoder)
	binary.LittleEndian.PutUint32(buf[20:24], 0) // Zones (unused by the decoder)
	binary.LittleEndian.PutUint16(buf[24:26], magicValue)
	binary.LittleEndian.PutUint16(buf[28:30], blockSize)
	buf[30] = 7 // Subversion, arbitrary

	return b
}

// setInode writes inode number n (1-based) into the inode table.
func (b *imageBuilder) setInode(n uint32, in Inode) {
	off := 2*int64(b.blockSize) + int64(n-1)*inodeSize
	e := b.header[off : off+inodeSize]
	binary.LittleEndian.PutUint16(e[0:2], in.Mode)
	binary.LittleEndian.PutUint16(e[2:4], in.Links)
	binary.LittleEndian.PutUint16(e[4:6], in.UID)
	binary.LittleEndian.PutUint16(e[6:8], in.GID)
	binary.LittleEndian.PutUint32(e[8:12], in.Size)
	binary.LittleEndian.PutUint32(e[12:16], uint32(in.ATime))
	binary.LittleEndian.PutUint32(e[16:20], uint32(in.MTime))
	binary.LittleEndian.PutUint32(e[20:24], uint32(in.CTime))
	for i := 0; i < 7; i++ {
		off := 24 + i*4
		binary.LittleEndian.PutUint32(e[off:off+4], in.Zone[i])
	}
	binary.LittleEndian.PutUint32(e[52:56], in.Indirect)
	binary.LittleEndian.PutUint32(e[56:60], in.TwoIndirect)
}

// addZone appends content (padded with zeros to a full zone) and
// returns the zone number it was placed at.
func (b *imageBuilder) addZone(content []byte) uint32 {
	zn := b.nextZone
	b.nextZone++
	padded := make([]byte, b.zoneSize)
	copy(padded, content)
	b.zones = append(b.zones, padded...)
	return zn
}

// addZoneTable appends a table of little-endian uint32 zone pointers as
// a single zone (for indirect/double-indirect tables).
func (b *imageBuilder) addZoneTable(entries []uint32) uint32 {
	raw := make([]byte, len(entries)*4)
	for i, e := range entries {
		binary.LittleEndian.PutUint32(raw[i*4:i*4+4], e)
	}
	return b.addZone(raw)
}

// entriesPerZone mirrors zoneWalker's own arithmetic, for building
// tables sized correctly in tests.
func (b *imageBuilder) entriesPerZone() int {
	return int(b.zoneSize / 4)
}

func (b *imageBuilder) image() *imagetest.Image {
	buf := make([]byte, 0, len(b.header)+len(b.zones))
	buf = append(buf, b.header...)
	buf = append(buf, b.zones...)
	return imagetest.New(buf)
}

// encodeDirEntry renders one 64-byte directory entry. If name is
// exactly 60 bytes, no NUL terminator is present, matching spec.md §3's
// full-length-name edge case.
func encodeDirEntry(inum uint32, name string) []byte {
	e := make([]byte, dirEntrySize)
	binary.LittleEndian.PutUint32(e[0:4], inum)
	copy(e[4:4+dirNameSize], name)
	return e
}
