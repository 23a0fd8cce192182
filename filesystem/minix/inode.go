package minix

import (
	"encoding/binary"

	"github.com/minixfs/minixfs/internal/imagereader"
)

const inodeSize = 64

// Mode bits, per Unix convention (spec.md §3).
const (
	modeTypeMask  = 0170000
	modeDirectory = 0040000
	modeRegular   = 0100000
)

// Inode is a decoded MINIX V3 inode record.
type Inode struct {
	Mode        uint16
	Links       uint16
	UID         uint16
	GID         uint16
	Size        uint32
	ATime       int32
	MTime       int32
	CTime       int32
	Zone        [7]uint32
	Indirect    uint32
	TwoIndirect uint32
}

// IsDirectory reports whether the inode's mode bits mark it a directory.
func (in Inode) IsDirectory() bool {
	return in.Mode&modeTypeMask == modeDirectory
}

// IsRegular reports whether the inode's mode bits mark it a regular file.
func (in Inode) IsRegular() bool {
	return in.Mode&modeTypeMask == modeRegular
}

func decodeInode(b []byte) Inode {
	var in Inode
	in.Mode = binary.LittleEndian.Uint16(b[0:2])
	in.Links = binary.LittleEndian.Uint16(b[2:4])
	in.UID = binary.LittleEndian.Uint16(b[4:6])
	in.GID = binary.LittleEndian.Uint16(b[6:8])
	in.Size = binary.LittleEndian.Uint32(b[8:12])
	in.ATime = int32(binary.LittleEndian.Uint32(b[12:16]))
	in.MTime = int32(binary.LittleEndian.Uint32(b[16:20]))
	in.CTime = int32(binary.LittleEndian.Uint32(b[20:24]))
	for i := 0; i < 7; i++ {
		off := 24 + i*4
		in.Zone[i] = binary.LittleEndian.Uint32(b[off : off+4])
	}
	in.Indirect = binary.LittleEndian.Uint32(b[52:56])
	in.TwoIndirect = binary.LittleEndian.Uint32(b[56:60])
	// b[60:64] is the trailing unused field.
	return in
}

// inodeTableBlock is the block index (not zone index) at which the inode
// table begins: block 0 is boot, block 1 is the superblock, then the
// inode bitmap, then the zone bitmap.
func (ctx *Context) inodeTableBlock() int64 {
	return 2 + int64(ctx.sb.IBlocks) + int64(ctx.sb.ZBlocks)
}

// Inode fetches and decodes inode number n. 1 <= n <= ninodes, per
// spec.md's invariants; the root inode is always 1.
func (ctx *Context) Inode(n uint32) (Inode, error) {
	if n < 1 || n > ctx.sb.NInodes {
		return Inode{}, &ErrInvalidInode{Inum: n, NInodes: ctx.sb.NInodes}
	}
	off := ctx.fsOffset + ctx.inodeTableBlock()*int64(ctx.blockSize) + int64(n-1)*inodeSize
	buf := make([]byte, inodeSize)
	if err := imagereader.ReadFull(ctx.r, buf, off); err != nil {
		return Inode{}, err
	}
	return decodeInode(buf), nil
}
