package reader

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
)

// TotalSize sums the on-disk size of the given files.
func TotalSize(paths []string) (uint64, error) {
	var total uint64

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return 0, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			return 0, fmt.Errorf("%s is not a regular file", path)
		}
		total += uint64(info.Size())
	}

	return total, nil
}

// CheckTotalSize errors when the combined file size exceeds max. A max of
// zero disables the guard.
func CheckTotalSize(paths []string, max uint64) error {
	if max == 0 {
		return nil
	}

	total, err := TotalSize(paths)
	if err != nil {
		return err
	}
	if total > max {
		return fmt.Errorf("total file size %s exceeds the %s limit (raise it with --max-total-size)",
			humanize.Bytes(total), humanize.Bytes(max))
	}

	return nil
}
