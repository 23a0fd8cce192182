package minix

import (
	"encoding/binary"

	"github.com/minixfs/minixfs/internal/imagereader"
)

const (
	superblockOffset = 1024
	superblockSize   = 32
	magicValue       = 0x4D5A
)

// Superblock is the decoded MINIX V3 superblock. All integer fields are
// the on-disk little-endian values; BlockSize and ZoneSize are bytes.
type Superblock struct {
	NInodes     uint32
	IBlocks     int16
	ZBlocks     int16
	FirstData   uint16
	LogZoneSize int16
	MaxFile     uint32
	Zones       uint32
	Magic       int16
	BlockSize   uint16
	Subversion  uint8

	ZoneSize uint32
}

// readSuperblock decodes the superblock located at fsOffset+1024, and
// rejects it unless the magic field is 0x4D5A before trusting any other
// field.
func readSuperblock(r imagereader.Storage, fsOffset int64) (Superblock, error) {
	buf := make([]byte, superblockSize)
	if err := imagereader.ReadFull(r, buf, fsOffset+superblockOffset); err != nil {
		return Superblock{}, err
	}

	magic := int16(binary.LittleEndian.Uint16(buf[24:26]))
	if magic != magicValue {
		return Superblock{}, &ErrBadMagic{Got: magic}
	}

	sb := Superblock{
		NInodes:     binary.LittleEndian.Uint32(buf[0:4]),
		IBlocks:     int16(binary.LittleEndian.Uint16(buf[6:8])),
		ZBlocks:     int16(binary.LittleEndian.Uint16(buf[8:10])),
		FirstData:   binary.LittleEndian.Uint16(buf[10:12]),
		LogZoneSize: int16(binary.LittleEndian.Uint16(buf[12:14])),
		MaxFile:     binary.LittleEndian.Uint32(buf[16:20]),
		Zones:       binary.LittleEndian.Uint32(buf[20:24]),
		Magic:       magic,
		BlockSize:   binary.LittleEndian.Uint16(buf[28:30]),
		Subversion:  buf[30],
	}
	sb.ZoneSize = uint32(sb.BlockSize) << uint(sb.LogZoneSize)
	return sb, nil
}
