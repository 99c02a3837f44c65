package scandir

// ReturnType selects which entry shape a scan produces.
type ReturnType int8

const (
	// ReturnTypeBase produces objects.Entry results.
	ReturnTypeBase ReturnType = 0
	// ReturnTypeExt produces objects.EntryExt results.
	ReturnTypeExt ReturnType = 1
)

// Options parametrize a walk. They are read once when the scan starts
// and never consulted again, mutating them during a walk has no effect.
type Options struct {
	// RootPath is the absolute, existence-checked starting directory.
	RootPath string

	// Sorted emits sibling entries in lexical order instead of the
	// order the operating system returns them in.
	Sorted bool

	// SkipHidden excludes dot-prefixed entries from both descent and
	// reporting.
	SkipHidden bool

	// MaxDepth is the maximum directory nesting depth below the root
	// to descend into. The root's children are at depth 0. Zero or
	// negative means unlimited.
	MaxDepth int

	// MaxFileCnt bounds the number of reported entries before the
	// walk self-terminates. Zero or negative means unlimited.
	MaxFileCnt int

	// DirInclude, DirExclude, FileInclude and FileExclude are
	// glob-style patterns ('*', '?') matched against base names only.
	// Exclude patterns win over includes, an empty include list means
	// everything not excluded is included.
	DirInclude  []string
	DirExclude  []string
	FileInclude []string
	FileExclude []string

	// CaseSensitive controls include/exclude matching.
	CaseSensitive bool

	// ReturnType selects basic or extended entries.
	ReturnType ReturnType
}

func DefaultOptions(rootPath string) *Options {
	return &Options{
		RootPath:      rootPath,
		Sorted:        false,
		SkipHidden:    false,
		MaxDepth:      0,
		MaxFileCnt:    0,
		CaseSensitive: false,
		ReturnType:    ReturnTypeBase,
	}
}
