package objects

import (
	"io/fs"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// Result is produced once per visited filesystem node: an Entry or
// EntryExt on success, an ErrorRecord when the node could not be
// stat'ed or read.
type Result interface {
	scanResult()
}

type Entry struct {
	Path      string    `json:"Path" msgpack:"path"`
	IsSymlink bool      `json:"IsSymlink" msgpack:"isSymlink"`
	IsDir     bool      `json:"IsDir" msgpack:"isDir"`
	IsFile    bool      `json:"IsFile" msgpack:"isFile"`
	Ctime     time.Time `json:"Ctime" msgpack:"ctime"`
	Mtime     time.Time `json:"Mtime" msgpack:"mtime"`
	Atime     time.Time `json:"Atime" msgpack:"atime"`
	Size      uint64    `json:"Size" msgpack:"size"`
}

func (e Entry) scanResult() {}

// EntryExt carries the extra fields of a full stat call. Fields the
// platform cannot supply are left at their zero value, never omitted.
type EntryExt struct {
	Entry
	Blksize            uint64            `json:"Blksize" msgpack:"blksize"`
	Blocks             uint64            `json:"Blocks" msgpack:"blocks"`
	Mode               uint32            `json:"Mode" msgpack:"mode"`
	Nlink              uint64            `json:"Nlink" msgpack:"nlink"`
	Uid                uint32            `json:"Uid" msgpack:"uid"`
	Gid                uint32            `json:"Gid" msgpack:"gid"`
	Ino                uint64            `json:"Ino" msgpack:"ino"`
	Dev                uint64            `json:"Dev" msgpack:"dev"`
	Rdev               uint64            `json:"Rdev" msgpack:"rdev"`
	ExtendedAttributes map[string][]byte `json:"ExtendedAttributes" msgpack:"extendedAttributes"`
}

func (e EntryExt) scanResult() {}

type ErrorRecord struct {
	Path    string `json:"Path" msgpack:"path"`
	Message string `json:"Message" msgpack:"message"`
}

func (e ErrorRecord) scanResult() {}

func NewErrorRecord(path string, err error) ErrorRecord {
	return ErrorRecord{Path: path, Message: err.Error()}
}

func EntryFromFileInfo(path string, info fs.FileInfo) Entry {
	mode := info.Mode()
	entry := Entry{
		Path:      path,
		IsSymlink: mode&os.ModeSymlink != 0,
		IsDir:     mode.IsDir(),
		IsFile:    mode.IsRegular(),
		Mtime:     info.ModTime(),
	}
	if info.Size() > 0 {
		entry.Size = uint64(info.Size())
	}
	entry.Atime, entry.Ctime = statTimes(info)
	return entry
}

func EntryExtFromFileInfo(path string, info fs.FileInfo) EntryExt {
	return EntryExt{
		Entry: EntryFromFileInfo(path, info),
		Mode:  uint32(info.Mode().Perm()),
	}.withStat(info)
}

func (e Entry) HumanSize() string {
	return humanize.Bytes(e.Size)
}
