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

package scandir

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"time"

	"github.com/PlakarLabs/go-scandir/events"
	"github.com/PlakarLabs/go-scandir/filter"
	"github.com/PlakarLabs/go-scandir/logging"
	"github.com/PlakarLabs/go-scandir/objects"
	"github.com/google/uuid"
)

// walker is the background unit of a scan: it runs in its own
// goroutine, walks the tree depth-first and pushes one result per
// visited node into the results channel. Symlinks are Lstat'ed and
// reported as symlinks, never dereferenced for descent.
type walker struct {
	options  Options
	fl       *filter.Filter
	results  chan<- objects.Result
	stop     *atomic.Bool
	duration *atomic.Int64
	receiver *events.Receiver
	log      *logging.Logger
	scanID   uuid.UUID
	reported int
}

// run drives the walk to completion or cancellation, records a
// strictly positive elapsed duration (callers use duration > 0 as the
// finished predicate, so even an instant scan must not record zero)
// and closes the results channel.
func (w *walker) run(children []fs.DirEntry) {
	t0 := time.Now()
	w.receiver.Send(events.StartEvent(w.scanID, w.options.RootPath))

	w.walk(w.options.RootPath, children, 0)

	elapsed := time.Since(t0)
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	w.duration.Store(int64(elapsed))
	w.receiver.Send(events.DoneEvent(w.scanID))
	close(w.results)
	w.log.Trace("walker", "walk of %s done: %d entries reported in %s",
		w.options.RootPath, w.reported, elapsed)
}

// walk processes one directory's children, reporting each and
// descending into subdirectories before moving to the next sibling.
// It returns false when the walk must terminate as a whole, on
// cancellation or once the reported-entry budget is exhausted.
func (w *walker) walk(dir string, children []fs.DirEntry, depth int) bool {
	if w.options.Sorted {
		sort.Slice(children, func(i, j int) bool {
			return children[i].Name() < children[j].Name()
		})
	}

	for _, child := range children {
		if w.stop.Load() {
			return false
		}

		isDir := child.IsDir()
		descend, report := w.fl.Decide(child.Name(), isDir, depth)
		if !descend && !report {
			continue
		}

		pathname := filepath.Join(dir, child.Name())
		if report {
			if !w.report(pathname) {
				return false
			}
		}

		if isDir && descend {
			sub, err := os.ReadDir(pathname)
			if err != nil {
				w.emitError(pathname, err)
				continue
			}
			if !w.walk(pathname, sub, depth+1) {
				return false
			}
		}
	}
	return true
}

// report stats a node and emits the corresponding entry, or an error
// record if the stat fails. It returns false once the reported-entry
// budget is exhausted. Stat failures do not count against the budget.
func (w *walker) report(pathname string) bool {
	info, err := os.Lstat(pathname)
	if err != nil {
		w.emitError(pathname, err)
		return true
	}

	var result objects.Result
	if w.options.ReturnType == ReturnTypeExt {
		entry := objects.EntryExtFromFileInfo(pathname, info)
		entry.ExtendedAttributes = getExtendedAttributes(pathname)
		result = entry
	} else {
		result = objects.EntryFromFileInfo(pathname, info)
	}

	w.results <- result
	w.receiver.Send(events.PathEvent(w.scanID, pathname))

	w.reported++
	if w.options.MaxFileCnt > 0 && w.reported >= w.options.MaxFileCnt {
		w.log.Trace("walker", "max file count %d reached at %s",
			w.options.MaxFileCnt, pathname)
		return false
	}
	return true
}

func (w *walker) emitError(pathname string, err error) {
	w.results <- objects.NewErrorRecord(pathname, err)
	w.receiver.Send(events.PathErrorEvent(w.scanID, pathname, err.Error()))
}
