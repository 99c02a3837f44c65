/*
 * Copyright (c) 2024 Gilles Chehade <gilles@poolp.org>
 *
 * Permission to use, copy, modify, and distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package filter decides, per filesystem node, whether a scan descends
// into it and whether it is reported. Patterns are glob-style and match
// base names only.
package filter

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

type Config struct {
	SkipHidden    bool
	MaxDepth      int // <= 0 means unlimited
	CaseSensitive bool
	DirInclude    []string
	DirExclude    []string
	FileInclude   []string
	FileExclude   []string
}

type Filter struct {
	skipHidden    bool
	maxDepth      int
	caseSensitive bool
	dirInclude    []glob.Glob
	dirExclude    []glob.Glob
	fileInclude   []glob.Glob
	fileExclude   []glob.Glob
}

func New(config Config) (*Filter, error) {
	f := &Filter{
		skipHidden:    config.SkipHidden,
		maxDepth:      config.MaxDepth,
		caseSensitive: config.CaseSensitive,
	}

	for _, set := range []struct {
		patterns []string
		globs    *[]glob.Glob
	}{
		{config.DirInclude, &f.dirInclude},
		{config.DirExclude, &f.dirExclude},
		{config.FileInclude, &f.fileInclude},
		{config.FileExclude, &f.fileExclude},
	} {
		for _, pattern := range set.patterns {
			if !config.CaseSensitive {
				pattern = strings.ToLower(pattern)
			}
			g, err := glob.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			*set.globs = append(*set.globs, g)
		}
	}

	return f, nil
}

// Decide applies the filtering rules in order: hidden policy first,
// then the depth cut for directories, then exclude patterns (which win
// over includes), then the include list. An empty include list means
// everything not excluded is included. The root itself is never passed
// through Decide, traversal always begins with the root's children at
// depth 0.
func (f *Filter) Decide(name string, isDir bool, depth int) (descend bool, report bool) {
	if f.skipHidden && strings.HasPrefix(name, ".") {
		return false, false
	}

	if !f.caseSensitive {
		name = strings.ToLower(name)
	}

	include, exclude := f.fileInclude, f.fileExclude
	if isDir {
		include, exclude = f.dirInclude, f.dirExclude
	}

	for _, g := range exclude {
		if g.Match(name) {
			return false, false
		}
	}

	if len(include) > 0 {
		matched := false
		for _, g := range include {
			if g.Match(name) {
				matched = true
				break
			}
		}
		if !matched {
			return false, false
		}
	}

	if isDir && f.maxDepth > 0 && depth >= f.maxDepth {
		// The directory itself is still reported at this depth, its
		// children would exceed the limit.
		return false, true
	}

	return true, true
}
