package filter

import "testing"

func TestDecide(t *testing.T) {
	for _, test := range []struct {
		Name    string
		Config  Config
		Node    string
		IsDir   bool
		Depth   int
		Descend bool
		Report  bool
	}{
		{
			Name:    "no rules reports everything",
			Config:  Config{},
			Node:    "file.txt",
			Descend: true,
			Report:  true,
		},
		{
			Name:    "skip hidden file",
			Config:  Config{SkipHidden: true},
			Node:    ".profile",
			Descend: false,
			Report:  false,
		},
		{
			Name:    "skip hidden directory",
			Config:  Config{SkipHidden: true},
			Node:    ".git",
			IsDir:   true,
			Descend: false,
			Report:  false,
		},
		{
			Name:    "hidden allowed when policy off",
			Config:  Config{},
			Node:    ".profile",
			Descend: true,
			Report:  true,
		},
		{
			Name:    "file include match",
			Config:  Config{FileInclude: []string{"*.txt"}},
			Node:    "notes.txt",
			Descend: true,
			Report:  true,
		},
		{
			Name:    "file include miss",
			Config:  Config{FileInclude: []string{"*.txt"}},
			Node:    "notes.log",
			Descend: false,
			Report:  false,
		},
		{
			Name:    "exclude wins over include",
			Config:  Config{FileInclude: []string{"*.txt"}, FileExclude: []string{"secret*"}},
			Node:    "secret.txt",
			Descend: false,
			Report:  false,
		},
		{
			Name:    "file patterns do not apply to directories",
			Config:  Config{FileInclude: []string{"*.txt"}},
			Node:    "src",
			IsDir:   true,
			Descend: true,
			Report:  true,
		},
		{
			Name:    "directory exclude",
			Config:  Config{DirExclude: []string{"node_modules"}},
			Node:    "node_modules",
			IsDir:   true,
			Descend: false,
			Report:  false,
		},
		{
			Name:    "directory include miss",
			Config:  Config{DirInclude: []string{"src*"}},
			Node:    "vendor",
			IsDir:   true,
			Descend: false,
			Report:  false,
		},
		{
			Name:    "case insensitive by default",
			Config:  Config{FileInclude: []string{"*.TXT"}},
			Node:    "notes.txt",
			Descend: true,
			Report:  true,
		},
		{
			Name:    "case sensitive mismatch",
			Config:  Config{CaseSensitive: true, FileInclude: []string{"*.TXT"}},
			Node:    "notes.txt",
			Descend: false,
			Report:  false,
		},
		{
			Name:    "question mark wildcard",
			Config:  Config{FileInclude: []string{"?.txt"}},
			Node:    "a.txt",
			Descend: true,
			Report:  true,
		},
		{
			Name:    "directory at depth limit reported but not descended",
			Config:  Config{MaxDepth: 2},
			Node:    "sub",
			IsDir:   true,
			Depth:   2,
			Descend: false,
			Report:  true,
		},
		{
			Name:    "directory below depth limit descended",
			Config:  Config{MaxDepth: 2},
			Node:    "sub",
			IsDir:   true,
			Depth:   1,
			Descend: true,
			Report:  true,
		},
		{
			Name:    "depth limit does not apply to files",
			Config:  Config{MaxDepth: 1},
			Node:    "file.txt",
			Depth:   5,
			Descend: true,
			Report:  true,
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			f, err := New(test.Config)
			if err != nil {
				t.Fatalf("Expected no error but got %v", err)
			}
			descend, report := f.Decide(test.Node, test.IsDir, test.Depth)
			if descend != test.Descend {
				t.Fatalf("Expected descend=%v but got %v", test.Descend, descend)
			}
			if report != test.Report {
				t.Fatalf("Expected report=%v but got %v", test.Report, report)
			}
		})
	}
}

func TestNewInvalidPattern(t *testing.T) {
	_, err := New(Config{FileInclude: []string{"[unterminated"}})
	if err == nil {
		t.Fatalf("Expected an error but got nil")
	}
}
