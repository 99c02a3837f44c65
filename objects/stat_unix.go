//go:build !windows

package objects

import (
	"io/fs"
	"syscall"
)

func (e EntryExt) withStat(info fs.FileInfo) EntryExt {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return e
	}
	e.Blksize = uint64(st.Blksize)
	e.Blocks = uint64(st.Blocks)
	e.Mode = uint32(st.Mode)
	e.Nlink = uint64(st.Nlink)
	e.Uid = uint32(st.Uid)
	e.Gid = uint32(st.Gid)
	e.Ino = uint64(st.Ino)
	e.Dev = uint64(st.Dev)
	e.Rdev = uint64(st.Rdev)
	return e
}
