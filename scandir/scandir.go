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

// Package scandir walks a directory tree in a background goroutine and
// hands per-entry metadata back over a channel, with cooperative
// cancellation and depth, count and glob-based name filtering.
package scandir

import (
	"fmt"
	"io/fs"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PlakarLabs/go-scandir/events"
	"github.com/PlakarLabs/go-scandir/filter"
	"github.com/PlakarLabs/go-scandir/helpers"
	"github.com/PlakarLabs/go-scandir/logging"
	"github.com/PlakarLabs/go-scandir/objects"
	"github.com/PlakarLabs/go-scandir/profiler"
	"github.com/google/uuid"
)

// Scandir is the caller-facing side of a scan: it validates the root,
// spawns the walker, exposes stop/duration/finished queries and either
// buffers results in memory (store mode) or hands the result channel
// to the caller (streaming mode). A Scandir runs one scan and is not
// reusable.
type Scandir struct {
	options  *Options
	store    bool
	scanID   uuid.UUID
	log      *logging.Logger
	receiver *events.Receiver

	entries   *objects.Results
	muEntries sync.Mutex

	duration atomic.Int64
	stop     atomic.Bool
	started  atomic.Bool

	out           chan objects.Result
	walkDone      chan struct{}
	collectorDone chan struct{}
}

// New validates and expands rootPath and prepares a scan against it.
// With store set, a collector goroutine accumulates every result in
// memory for retrieval through Collected and Errors; without it, the
// caller owns the receive side of Results and unconsumed results are
// lost.
func New(rootPath string, store bool) (*Scandir, error) {
	t0 := time.Now()
	defer func() {
		profiler.RecordEvent("scandir.New", time.Since(t0))
	}()

	resolved, err := helpers.CheckAndExpandPath(rootPath)
	if err != nil {
		return nil, err
	}

	return &Scandir{
		options:       DefaultOptions(resolved),
		store:         store,
		scanID:        uuid.New(),
		log:           logging.Discard(),
		receiver:      events.New(),
		entries:       objects.NewResults(),
		walkDone:      make(chan struct{}),
		collectorDone: make(chan struct{}),
	}, nil
}

// Options returns the scan options for tweaking before Start. The
// walker reads a copy when the scan starts.
func (s *Scandir) Options() *Options {
	return s.options
}

func (s *Scandir) SetLogger(log *logging.Logger) {
	s.log = log
}

// ID identifies this scan in progress events.
func (s *Scandir) ID() uuid.UUID {
	return s.scanID
}

// Events registers a listener for progress events. Listeners must
// consume or they stall the walker.
func (s *Scandir) Events() <-chan interface{} {
	return s.receiver.Listen()
}

// Start spawns the background walker and returns immediately. The
// only errors surfaced here are setup errors: invalid filter patterns
// and an unreadable root. Everything after this point is data on the
// result stream.
func (s *Scandir) Start() error {
	t0 := time.Now()
	defer func() {
		profiler.RecordEvent("scandir.Start", time.Since(t0))
		s.log.Trace("scandir", "%s: Start(%s): %s", s.scanID, s.options.RootPath, time.Since(t0))
	}()

	if !s.started.CompareAndSwap(false, true) {
		return fmt.Errorf("scan already started")
	}

	fl, err := filter.New(filter.Config{
		SkipHidden:    s.options.SkipHidden,
		MaxDepth:      s.options.MaxDepth,
		CaseSensitive: s.options.CaseSensitive,
		DirInclude:    s.options.DirInclude,
		DirExclude:    s.options.DirExclude,
		FileInclude:   s.options.FileInclude,
		FileExclude:   s.options.FileExclude,
	})
	if err != nil {
		s.started.Store(false)
		return err
	}

	children, err := os.ReadDir(s.options.RootPath)
	if err != nil {
		s.started.Store(false)
		return fmt.Errorf("cannot read root %s: %w", s.options.RootPath, err)
	}

	in := make(chan objects.Result, 1000)
	s.out = make(chan objects.Result, 1000)

	w := &walker{
		options:  *s.options,
		fl:       fl,
		results:  in,
		stop:     &s.stop,
		duration: &s.duration,
		receiver: s.receiver,
		log:      s.log,
		scanID:   s.scanID,
	}

	go pumpResults(in, s.out)
	go func(children []fs.DirEntry) {
		w.run(children)
		s.receiver.Close()
		close(s.walkDone)
	}(children)

	if s.store {
		go s.collect()
	} else {
		close(s.collectorDone)
	}

	return nil
}

// collect drains the result channel into the in-memory result set,
// running concurrently with the walker. It is the only writer of the
// accumulated results.
func (s *Scandir) collect() {
	defer close(s.collectorDone)

	for result := range s.out {
		s.muEntries.Lock()
		s.entries.Append(result)
		s.muEntries.Unlock()
	}
}

// Stop requests cancellation and returns without blocking, the walker
// observes the flag between node visits. Stopping is not an error:
// Finished still becomes true and the duration is still recorded.
// Stop is idempotent.
func (s *Scandir) Stop() {
	s.stop.Store(true)
	s.log.Trace("scandir", "%s: Stop()", s.scanID)
}

// Duration returns the elapsed wall-clock seconds of the walk, 0.0
// until it finished.
func (s *Scandir) Duration() float64 {
	return time.Duration(s.duration.Load()).Seconds()
}

// Finished reports whether the walk completed or was stopped.
func (s *Scandir) Finished() bool {
	return s.duration.Load() > 0
}

// Results exposes the receive side of the result channel for
// streaming consumption. In store mode the internal collector owns
// the channel and Results returns nil.
func (s *Scandir) Results() <-chan objects.Result {
	if s.store {
		return nil
	}
	return s.out
}

// Collected returns a snapshot of the accumulated results. While the
// scan is running the snapshot holds whatever arrived so far.
func (s *Scandir) Collected() *objects.Results {
	s.muEntries.Lock()
	defer s.muEntries.Unlock()

	snapshot := &objects.Results{
		Results: make([]objects.Result, len(s.entries.Results)),
		Errors:  make([]objects.ErrorRecord, len(s.entries.Errors)),
	}
	copy(snapshot.Results, s.entries.Results)
	copy(snapshot.Errors, s.entries.Errors)
	return snapshot
}

// Errors returns a snapshot of the error records accumulated so far.
func (s *Scandir) Errors() []objects.ErrorRecord {
	s.muEntries.Lock()
	defer s.muEntries.Unlock()

	errors := make([]objects.ErrorRecord, len(s.entries.Errors))
	copy(errors, s.entries.Errors)
	return errors
}

// Wait blocks until the walk finished and, in store mode, the
// collector drained every queued result.
func (s *Scandir) Wait() {
	<-s.walkDone
	<-s.collectorDone
}
