package minix

import "strings"

// maxPathLen bounds the canonical path buffer; longer paths are
// truncated (spec.md §4.6: "the buffer is >= 1024 bytes").
const maxPathLen = 1024

// Canonicalize normalizes a slash-separated path: an empty path becomes
// "/", a leading slash is added if absent, runs of consecutive slashes
// collapse to one, and a trailing slash is stripped unless doing so
// would leave an empty string. No "." or ".." handling is performed.
func Canonicalize(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}

	var b strings.Builder
	prevSlash := false
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteByte(c)
	}

	out := b.String()
	if len(out) > 1 && strings.HasSuffix(out, "/") {
		out = out[:len(out)-1]
	}
	if len(out) > maxPathLen {
		out = out[:maxPathLen]
	}
	return out
}

// Resolve canonicalizes path and walks the directory tree from the root
// inode, returning the terminal inode and its inode number.
func (ctx *Context) Resolve(path string) (Inode, uint32, error) {
	canon := Canonicalize(path)

	inode, err := ctx.Root()
	if err != nil {
		return Inode{}, 0, err
	}
	inum := RootInode
	if canon == "/" {
		return inode, inum, nil
	}

	for _, part := range strings.Split(strings.TrimPrefix(canon, "/"), "/") {
		if part == "" {
			continue
		}
		if !inode.IsDirectory() {
			return Inode{}, 0, &ErrNotDirectory{Path: path}
		}
		childInum, err := ctx.Lookup(inode, part)
		if err != nil {
			return Inode{}, 0, err
		}
		child, err := ctx.Inode(childInum)
		if err != nil {
			return Inode{}, 0, err
		}
		inode, inum = child, childInum
	}
	return inode, inum, nil
}
