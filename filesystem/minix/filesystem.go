// Package minix decodes a read-only MINIX V3 filesystem: superblock,
// inode table, zone addressing (direct/single-indirect/double-indirect),
// directory entries, path resolution, and file-byte materialization.
//
// Nothing in this package mutates the image; it is handed a
// random-access byte source and an absolute byte offset, and yields
// typed views of the filesystem at that offset.
package minix

import "github.com/minixfs/minixfs/internal/imagereader"

// RootInode is the inode number of the filesystem root; it is always 1.
const RootInode uint32 = 1

// Context bundles everything the decoder pipeline needs: the image
// reader, the absolute byte offset of the filesystem within it, and the
// decoded superblock. It is constructed once and used as an immutable
// read-only handle; it acquires no persistent storage of its own beyond
// the superblock.
type Context struct {
	r         imagereader.Storage
	fsOffset  int64
	sb        Superblock
	blockSize uint32
	zoneSize  uint32
}

// Open decodes the superblock at fsOffset within r and returns a Context
// ready to serve inode, directory, and file operations.
func Open(r imagereader.Storage, fsOffset int64) (*Context, error) {
	sb, err := readSuperblock(r, fsOffset)
	if err != nil {
		return nil, err
	}
	return &Context{
		r:         r,
		fsOffset:  fsOffset,
		sb:        sb,
		blockSize: uint32(sb.BlockSize),
		zoneSize:  sb.ZoneSize,
	}, nil
}

// Superblock returns the decoded superblock.
func (ctx *Context) Superblock() Superblock { return ctx.sb }

// BlockSize returns the filesystem's block size in bytes.
func (ctx *Context) BlockSize() uint32 { return ctx.blockSize }

// ZoneSize returns the filesystem's zone size in bytes.
func (ctx *Context) ZoneSize() uint32 { return ctx.zoneSize }

// Root returns the root directory's inode.
func (ctx *Context) Root() (Inode, error) {
	return ctx.Inode(RootInode)
}
