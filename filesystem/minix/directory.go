package minix

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/minixfs/minixfs/internal/imagereader"
)

const (
	dirEntrySize = 64
	dirNameSize  = 60
)

// DirEntry is one decoded directory entry: an inode number and its name.
type DirEntry struct {
	Inode uint32
	Name  string
}

func decodeDirName(b []byte) string {
	if idx := bytes.IndexByte(b, 0); idx >= 0 {
		return string(b[:idx])
	}
	return string(b)
}

// iterateDir walks dirInode's backing zones and invokes visit for every
// occupied (nonzero-inode) directory entry, in storage order. visit
// returns stop=true to end iteration early (used by Lookup).
//
// Holes within the directory's size range cannot contain valid entries
// and are skipped by decrementing the remaining byte count without a
// data read (spec.md §3, §4.5).
func (ctx *Context) iterateDir(dirInode Inode, visit func(inum uint32, name string) (stop bool, err error)) error {
	w := newZoneWalker(ctx, dirInode)
	remaining := int64(dirInode.Size)

	for k := uint64(0); remaining > 0; k++ {
		zone, ok, err := w.zoneForBlock(k)
		if err != nil {
			return err
		}
		if !ok {
			return &ErrUnreachableBytes{Unreachable: remaining}
		}

		chunk := int64(ctx.zoneSize)
		if remaining < chunk {
			chunk = remaining
		}

		if zone == 0 {
			remaining -= chunk
			continue
		}

		buf := make([]byte, chunk)
		off := ctx.fsOffset + int64(zone)*int64(ctx.zoneSize)
		if err := imagereader.ReadFull(ctx.r, buf, off); err != nil {
			return err
		}

		// Trailing partial bytes beyond a whole 64-byte entry are ignored.
		n := len(buf) / dirEntrySize
		for i := 0; i < n; i++ {
			e := buf[i*dirEntrySize : (i+1)*dirEntrySize]
			inum := binary.LittleEndian.Uint32(e[0:4])
			if inum == 0 {
				continue
			}
			name := decodeDirName(e[4:dirEntrySize])
			stop, err := visit(inum, name)
			if err != nil {
				return err
			}
			if stop {
				return nil
			}
		}

		remaining -= chunk
	}
	return nil
}

// Lookup resolves name within dirInode and returns its inode number, or
// ErrNotFound if no entry with that name is occupied.
func (ctx *Context) Lookup(dirInode Inode, name string) (uint32, error) {
	var found uint32
	err := ctx.iterateDir(dirInode, func(inum uint32, entryName string) (bool, error) {
		if entryName == name {
			found = inum
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return 0, err
	}
	if found == 0 {
		return 0, &ErrNotFound{Path: name}
	}
	return found, nil
}

// ReadDir enumerates every occupied entry in dirInode.
func (ctx *Context) ReadDir(dirInode Inode) ([]DirEntry, error) {
	var entries []DirEntry
	err := ctx.iterateDir(dirInode, func(inum uint32, name string) (bool, error) {
		entries = append(entries, DirEntry{Inode: inum, Name: name})
		return false, nil
	})
	return entries, err
}

// FormatPermissions renders the ten-character permission string: a
// directory/other indicator followed by three owner/group/other rwx
// triples. Execute bits show only as x/-; no setuid/setgid/sticky
// distinction is made (spec.md §4.5).
func FormatPermissions(in Inode) string {
	b := make([]byte, 10)
	if in.IsDirectory() {
		b[0] = 'd'
	} else {
		b[0] = '-'
	}
	bits := [9]struct {
		mask uint16
		ch   byte
	}{
		{0400, 'r'}, {0200, 'w'}, {0100, 'x'},
		{0040, 'r'}, {0020, 'w'}, {0010, 'x'},
		{0004, 'r'}, {0002, 'w'}, {0001, 'x'},
	}
	for i, bit := range bits {
		if in.Mode&bit.mask != 0 {
			b[i+1] = bit.ch
		} else {
			b[i+1] = '-'
		}
	}
	return string(b)
}

// FormatEntryLine renders one listing line: "<perm> <size> <name>".
func FormatEntryLine(name string, in Inode) string {
	return fmt.Sprintf("%s%10d %s", FormatPermissions(in), in.Size, name)
}
