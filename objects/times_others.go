//go:build !linux && !darwin

package objects

import (
	"io/fs"
	"time"
)

// Access and change times are not portable beyond Linux and Darwin,
// callers get zero values and must treat them as absent.
func statTimes(info fs.FileInfo) (atime time.Time, ctime time.Time) {
	return
}
