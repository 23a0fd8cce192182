package minix

import (
	"fmt"
	"io"

	"github.com/minixfs/minixfs/internal/imagereader"
)

// zeroChunkSize bounds how much explicit zero-fill is written per
// io.Writer call for a hole; any convenient size works since it has no
// effect on output (spec.md §9).
const zeroChunkSize = 4096

// WriteFile drives the zone walker for a regular-file inode and writes
// its bytes to w, zero-filling holes, truncated to the inode's recorded
// size. It returns the number of bytes written.
func (ctx *Context) WriteFile(inode Inode, w io.Writer) (int64, error) {
	if !inode.IsRegular() {
		return 0, &ErrNotRegularFile{}
	}

	walker := newZoneWalker(ctx, inode)
	remaining := int64(inode.Size)
	var written int64
	var zeroBuf []byte

	for k := uint64(0); remaining > 0; k++ {
		zone, ok, err := walker.zoneForBlock(k)
		if err != nil {
			return written, err
		}
		if !ok {
			return written, &ErrUnreachableBytes{Unreachable: remaining}
		}

		chunk := int64(ctx.zoneSize)
		if remaining < chunk {
			chunk = remaining
		}

		if zone == 0 {
			if zeroBuf == nil {
				zeroBuf = make([]byte, zeroChunkSize)
			}
			if err := writeZeros(w, chunk, zeroBuf); err != nil {
				return written, err
			}
		} else {
			buf := make([]byte, chunk)
			off := ctx.fsOffset + int64(zone)*int64(ctx.zoneSize)
			if err := imagereader.ReadFull(ctx.r, buf, off); err != nil {
				return written, err
			}
			if _, err := w.Write(buf); err != nil {
				return written, fmt.Errorf("write output: %w", err)
			}
		}

		written += chunk
		remaining -= chunk
	}
	return written, nil
}

func writeZeros(w io.Writer, n int64, buf []byte) error {
	for n > 0 {
		c := int64(len(buf))
		if n < c {
			c = n
		}
		if _, err := w.Write(buf[:c]); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		n -= c
	}
	return nil
}
