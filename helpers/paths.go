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

package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CheckAndExpandPath resolves a user-supplied path into the absolute,
// existence-checked form the scan engine consumes: `~` expands to the
// current user's home directory, relative paths are made absolute and
// symlinks in the path are resolved. A path that does not exist fails
// with an error satisfying errors.Is(err, os.ErrNotExist).
func CheckAndExpandPath(pathname string) (string, error) {
	if pathname == "~" || strings.HasPrefix(pathname, "~"+string(os.PathSeparator)) || strings.HasPrefix(pathname, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand %q: %w", pathname, err)
		}
		pathname = filepath.Join(homeDir, pathname[1:])
	}

	pathname, err := filepath.Abs(pathname)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(pathname)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(resolved); err != nil {
		return "", err
	}

	return resolved, nil
}
