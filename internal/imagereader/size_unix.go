//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package imagereader

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Size returns the size in bytes of the open image file via fstat(2).
// fstat reports a size of 0 for a block device, so the result is the
// image size only when f is a regular file.
func Size(f *os.File) (int64, error) {
	var stat unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &stat); err != nil {
		return 0, fmt.Errorf("fstat %s: %w", f.Name(), err)
	}
	return stat.Size, nil
}
