//go:build windows

package objects

import "io/fs"

// Windows has no Stat_t equivalent for these fields, the extended
// entry keeps its zero values apart from the permission bits.
func (e EntryExt) withStat(info fs.FileInfo) EntryExt {
	return e
}
