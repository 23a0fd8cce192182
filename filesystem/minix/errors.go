package minix

import "fmt"

// ErrBadMagic reports a superblock whose magic field is not 0x4D5A.
type ErrBadMagic struct {
	Got int16
}

func (e *ErrBadMagic) Error() string {
	return fmt.Sprintf("bad superblock magic: got 0x%04x, want 0x4d5a", uint16(e.Got))
}

// ErrInvalidInode reports an inode number outside 1..ninodes.
type ErrInvalidInode struct {
	Inum    uint32
	NInodes uint32
}

func (e *ErrInvalidInode) Error() string {
	return fmt.Sprintf("invalid inode number %d (valid range is 1..%d)", e.Inum, e.NInodes)
}

// ErrNotFound reports a path component that does not exist in its parent
// directory.
type ErrNotFound struct {
	Path string
}

func (e *ErrNotFound) Error() string {
	return "File not found."
}

// ErrNotDirectory reports an attempt to traverse through a non-directory
// inode as though it were a directory.
type ErrNotDirectory struct {
	Path string
}

func (e *ErrNotDirectory) Error() string {
	return fmt.Sprintf("%s is not a directory", e.Path)
}

// ErrNotRegularFile reports an attempt to extract a non-regular-file
// inode's contents.
type ErrNotRegularFile struct{}

func (e *ErrNotRegularFile) Error() string {
	return "not a regular file"
}

// ErrUnreachableBytes reports that a file's recorded size extends beyond
// what the direct/single-indirect/double-indirect addressing scheme can
// reach.
type ErrUnreachableBytes struct {
	Unreachable int64
}

func (e *ErrUnreachableBytes) Error() string {
	return fmt.Sprintf("file larger than addressable by this filesystem: %d bytes unreachable", e.Unreachable)
}
