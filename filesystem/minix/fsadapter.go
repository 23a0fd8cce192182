package minix

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"time"
)

// FS adapts a Context to the standard io/fs.FS interface, so this
// read-only decoder interoperates with fs.WalkDir, fs.ReadFile, and
// other stdlib fs tooling without each caller re-deriving a path walk.
//
// Adapted from the donor's converter package, which wrapped its
// (read-write) filesystem.FileSystem in an fs.FS the same way; this
// version has no write side to bridge, since spec.md §1 excludes it.
type FS struct {
	ctx *Context
}

// NewFS wraps ctx as an io/fs.FS.
func NewFS(ctx *Context) *FS {
	return &FS{ctx: ctx}
}

// Open implements io/fs.FS.
func (f *FS) Open(name string) (fs.File, error) {
	if name == "." {
		name = "/"
	}
	inode, _, err := f.ctx.Resolve(name)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	base := path.Base(path.Clean("/" + name))
	if inode.IsDirectory() {
		entries, err := f.ctx.ReadDir(inode)
		if err != nil {
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
		return &dirFile{ctx: f.ctx, info: fileInfo{name: base, inode: inode}, entries: entries}, nil
	}
	return &regFile{ctx: f.ctx, info: fileInfo{name: base, inode: inode}}, nil
}

// fileInfo implements fs.FileInfo over a decoded inode.
type fileInfo struct {
	name  string
	inode Inode
}

func (fi fileInfo) Name() string { return fi.name }
func (fi fileInfo) Size() int64  { return int64(fi.inode.Size) }
func (fi fileInfo) Mode() fs.FileMode {
	m := fs.FileMode(fi.inode.Mode & 0o777)
	if fi.inode.IsDirectory() {
		m |= fs.ModeDir
	}
	return m
}
func (fi fileInfo) ModTime() time.Time { return time.Unix(int64(fi.inode.MTime), 0) }
func (fi fileInfo) IsDir() bool        { return fi.inode.IsDirectory() }
func (fi fileInfo) Sys() any           { return fi.inode }

// regFile is a regular file opened through FS. Contents are
// materialized into memory on first Read, since the core's file
// materializer is a streaming-to-io.Writer operation (§4.7), not a
// random-access reader.
type regFile struct {
	ctx  *Context
	info fileInfo
	r    *bytes.Reader
}

func (f *regFile) Stat() (fs.FileInfo, error) { return f.info, nil }

func (f *regFile) Read(p []byte) (int, error) {
	if f.r == nil {
		var buf bytes.Buffer
		if _, err := f.ctx.WriteFile(f.info.inode, &buf); err != nil {
			return 0, err
		}
		f.r = bytes.NewReader(buf.Bytes())
	}
	return f.r.Read(p)
}

func (f *regFile) Close() error { return nil }

// dirFile is a directory opened through FS, implementing fs.ReadDirFile.
type dirFile struct {
	ctx     *Context
	info    fileInfo
	entries []DirEntry
	pos     int
}

func (d *dirFile) Stat() (fs.FileInfo, error) { return d.info, nil }

func (d *dirFile) Read(p []byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.info.name, Err: fs.ErrInvalid}
}

func (d *dirFile) Close() error { return nil }

func (d *dirFile) ReadDir(n int) ([]fs.DirEntry, error) {
	var out []fs.DirEntry
	for d.pos < len(d.entries) && (n <= 0 || len(out) < n) {
		e := d.entries[d.pos]
		d.pos++
		if e.Name == "." || e.Name == ".." {
			continue
		}
		child, err := d.ctx.Inode(e.Inode)
		if err != nil {
			return out, err
		}
		out = append(out, direntWrap{name: e.Name, inode: child})
	}
	if n > 0 && len(out) == 0 {
		return nil, io.EOF
	}
	return out, nil
}

// direntWrap implements fs.DirEntry over a decoded child inode.
type direntWrap struct {
	name  string
	inode Inode
}

func (de direntWrap) Name() string              { return de.name }
func (de direntWrap) IsDir() bool                { return de.inode.IsDirectory() }
func (de direntWrap) Type() fs.FileMode          { return fileInfo{de.name, de.inode}.Mode().Type() }
func (de direntWrap) Info() (fs.FileInfo, error) { return fileInfo{de.name, de.inode}, nil }
