//go:build darwin

package objects

import (
	"io/fs"
	"syscall"
	"time"
)

func statTimes(info fs.FileInfo) (atime time.Time, ctime time.Time) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	atime = time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec)
	ctime = time.Unix(st.Ctimespec.Sec, st.Ctimespec.Nsec)
	return
}
