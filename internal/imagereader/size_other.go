//go:build windows

package imagereader

import "os"

// Size returns the size in bytes of the open image file.
func Size(f *os.File) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
