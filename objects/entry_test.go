package objects

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestEntryFromFileInfo(t *testing.T) {
	tmp := t.TempDir()
	pathname := filepath.Join(tmp, "file.txt")
	if err := os.WriteFile(pathname, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	info, err := os.Lstat(pathname)
	if err != nil {
		t.Fatal(err)
	}

	entry := EntryFromFileInfo(pathname, info)
	if entry.Path != pathname {
		t.Fatalf("Expected %s but got %s", pathname, entry.Path)
	}
	if !entry.IsFile || entry.IsDir || entry.IsSymlink {
		t.Fatalf("Expected a regular file but got %+v", entry)
	}
	if entry.Size != 5 {
		t.Fatalf("Expected size 5 but got %d", entry.Size)
	}
	if entry.Mtime.IsZero() {
		t.Fatalf("Expected a modification time but got zero")
	}
}

func TestEntryFromFileInfoDirectory(t *testing.T) {
	tmp := t.TempDir()

	info, err := os.Lstat(tmp)
	if err != nil {
		t.Fatal(err)
	}

	entry := EntryFromFileInfo(tmp, info)
	if !entry.IsDir || entry.IsFile || entry.IsSymlink {
		t.Fatalf("Expected a directory but got %+v", entry)
	}
}

func TestEntryFromFileInfoSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	tmp := t.TempDir()
	target := filepath.Join(tmp, "target")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmp, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}

	entry := EntryFromFileInfo(link, info)
	if !entry.IsSymlink {
		t.Fatalf("Expected a symlink but got %+v", entry)
	}
	if entry.IsDir || entry.IsFile {
		t.Fatalf("Expected symlink flags only but got %+v", entry)
	}
}

func TestEntryExtFromFileInfo(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extended stat fields are not available on windows")
	}

	tmp := t.TempDir()
	pathname := filepath.Join(tmp, "file.txt")
	if err := os.WriteFile(pathname, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	info, err := os.Lstat(pathname)
	if err != nil {
		t.Fatal(err)
	}

	entry := EntryExtFromFileInfo(pathname, info)
	if entry.Ino == 0 {
		t.Fatalf("Expected a non-zero inode but got 0")
	}
	if entry.Nlink == 0 {
		t.Fatalf("Expected a non-zero link count but got 0")
	}
	if entry.Mode&0644 != 0644 {
		t.Fatalf("Expected mode bits 0644 but got %o", entry.Mode)
	}
}

func TestResultsAppend(t *testing.T) {
	results := NewResults()
	results.Append(Entry{Path: "/a", IsFile: true, Size: 10})
	results.Append(ErrorRecord{Path: "/b", Message: "permission denied"})
	results.Append(EntryExt{Entry: Entry{Path: "/c", IsDir: true}})

	if len(results.Results) != 3 {
		t.Fatalf("Expected 3 results but got %d", len(results.Results))
	}
	if len(results.Errors) != 1 {
		t.Fatalf("Expected 1 error but got %d", len(results.Errors))
	}
	if results.Errors[0].Path != "/b" {
		t.Fatalf("Expected /b but got %s", results.Errors[0].Path)
	}
}

func TestStatistics(t *testing.T) {
	results := NewResults()
	results.Append(Entry{Path: "/a", IsFile: true, Size: 10})
	results.Append(Entry{Path: "/b", IsFile: true, Size: 20})
	results.Append(Entry{Path: "/c", IsDir: true})
	results.Append(Entry{Path: "/d", IsSymlink: true})
	results.Append(NewErrorRecord("/e", errors.New("gone")))

	stats := results.Statistics()
	if stats.Files != 2 {
		t.Fatalf("Expected 2 files but got %d", stats.Files)
	}
	if stats.Directories != 1 {
		t.Fatalf("Expected 1 directory but got %d", stats.Directories)
	}
	if stats.Symlinks != 1 {
		t.Fatalf("Expected 1 symlink but got %d", stats.Symlinks)
	}
	if stats.Errors != 1 {
		t.Fatalf("Expected 1 error but got %d", stats.Errors)
	}
	if stats.Size != 30 {
		t.Fatalf("Expected size 30 but got %d", stats.Size)
	}
}

func TestHumanSize(t *testing.T) {
	entry := Entry{Size: 2048}
	if entry.HumanSize() != "2.0 kB" {
		t.Fatalf("Expected 2.0 kB but got %s", entry.HumanSize())
	}
}
