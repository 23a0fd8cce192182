// Package diag provides the -v verbose diagnostic stream shared by both
// front ends: structured superblock and inode summaries written to
// stderr via logrus, the donor library's own logging dependency.
package diag

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/minixfs/minixfs/filesystem/minix"
)

// New returns a logger for -v diagnostics. When verbose is false, the
// logger discards everything so call sites don't need to guard every
// call with an "if verbose" check.
func New(verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetOutput(io.Discard)
		l.SetLevel(logrus.PanicLevel)
	}
	return l
}

// Superblock logs a one-line structured summary of a decoded superblock,
// alongside the on-disk size of the image file it was read from.
func Superblock(l *logrus.Logger, fsOffset int64, ctx *minix.Context, imageSize int64) {
	sb := ctx.Superblock()
	l.WithFields(logrus.Fields{
		"fs_offset":     fsOffset,
		"image_size":    imageSize,
		"ninodes":       sb.NInodes,
		"i_blocks":      sb.IBlocks,
		"z_blocks":      sb.ZBlocks,
		"log_zone_size": sb.LogZoneSize,
		"max_file":      sb.MaxFile,
		"zones":         sb.Zones,
		"block_size":    ctx.BlockSize(),
		"zone_size":     ctx.ZoneSize(),
		"subversion":    sb.Subversion,
	}).Debug("superblock")
}

// Inode logs a one-line structured summary of a decoded inode, including
// a best-effort cross-check of the inode's bit in the on-disk inode
// bitmap (a diagnostic-only consultation; every non-diagnostic operation
// trusts the inode table directly, never the bitmap).
func Inode(l *logrus.Logger, ctx *minix.Context, inum uint32, in minix.Inode) {
	fields := logrus.Fields{
		"inode": inum,
		"mode":  logrus.Fields{"raw": in.Mode, "perm": minix.FormatPermissions(in)},
		"links": in.Links,
		"uid":   in.UID,
		"gid":   in.GID,
		"size":  in.Size,
	}
	if allocated, err := ctx.InodeAllocated(inum); err == nil {
		fields["bitmap_allocated"] = allocated
	}
	l.WithFields(fields).Debug("inode")
}
