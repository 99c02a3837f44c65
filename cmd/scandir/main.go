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

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/PlakarLabs/go-scandir/logging"
	"github.com/PlakarLabs/go-scandir/objects"
	"github.com/PlakarLabs/go-scandir/scandir"
	"github.com/PlakarLabs/go-scandir/serializer"
)

func patterns(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

func main() {
	var opt_sorted bool
	var opt_skipHidden bool
	var opt_maxDepth int
	var opt_maxFileCnt int
	var opt_dirInclude string
	var opt_dirExclude string
	var opt_fileInclude string
	var opt_fileExclude string
	var opt_caseSensitive bool
	var opt_extended bool
	var opt_json bool
	var opt_trace string

	flag.BoolVar(&opt_sorted, "sorted", false, "emit sibling entries in lexical order")
	flag.BoolVar(&opt_skipHidden, "skip-hidden", false, "skip dot-prefixed entries")
	flag.IntVar(&opt_maxDepth, "max-depth", 0, "maximum nesting depth below root, 0 means unlimited")
	flag.IntVar(&opt_maxFileCnt, "max-file-cnt", 0, "stop after this many reported entries, 0 means unlimited")
	flag.StringVar(&opt_dirInclude, "dir-include", "", "comma-separated directory include patterns")
	flag.StringVar(&opt_dirExclude, "dir-exclude", "", "comma-separated directory exclude patterns")
	flag.StringVar(&opt_fileInclude, "file-include", "", "comma-separated file include patterns")
	flag.StringVar(&opt_fileExclude, "file-exclude", "", "comma-separated file exclude patterns")
	flag.BoolVar(&opt_caseSensitive, "case-sensitive", false, "case-sensitive pattern matching")
	flag.BoolVar(&opt_extended, "extended", false, "produce extended stat entries")
	flag.BoolVar(&opt_json, "json", false, "dump the full result set as JSON instead of listing")
	flag.StringVar(&opt_trace, "trace", "", "comma-separated trace subsystems (scandir, walker, all)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [options] directory\n", flag.CommandLine.Name())
		os.Exit(1)
	}

	log := logging.Default()
	if opt_trace != "" {
		log.EnableTrace(opt_trace)
	}

	os.Exit(doScan(flag.Arg(0), log, &cliOptions{
		sorted:        opt_sorted,
		skipHidden:    opt_skipHidden,
		maxDepth:      opt_maxDepth,
		maxFileCnt:    opt_maxFileCnt,
		dirInclude:    patterns(opt_dirInclude),
		dirExclude:    patterns(opt_dirExclude),
		fileInclude:   patterns(opt_fileInclude),
		fileExclude:   patterns(opt_fileExclude),
		caseSensitive: opt_caseSensitive,
		extended:      opt_extended,
		json:          opt_json,
	}))
}

type cliOptions struct {
	sorted        bool
	skipHidden    bool
	maxDepth      int
	maxFileCnt    int
	dirInclude    []string
	dirExclude    []string
	fileInclude   []string
	fileExclude   []string
	caseSensitive bool
	extended      bool
	json          bool
}

func doScan(rootPath string, log *logging.Logger, cli *cliOptions) int {
	s, err := scandir.New(rootPath, cli.json)
	if err != nil {
		log.Error("%s", err)
		return 1
	}
	s.SetLogger(log)

	opts := s.Options()
	opts.Sorted = cli.sorted
	opts.SkipHidden = cli.skipHidden
	opts.MaxDepth = cli.maxDepth
	opts.MaxFileCnt = cli.maxFileCnt
	opts.DirInclude = cli.dirInclude
	opts.DirExclude = cli.dirExclude
	opts.FileInclude = cli.fileInclude
	opts.FileExclude = cli.fileExclude
	opts.CaseSensitive = cli.caseSensitive
	if cli.extended {
		opts.ReturnType = scandir.ReturnTypeExt
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)
	go func() {
		<-signals
		s.Stop()
	}()

	if err := s.Start(); err != nil {
		log.Error("%s", err)
		return 1
	}

	if cli.json {
		s.Wait()
		data, err := serializer.ToJSON(s.Collected())
		if err != nil {
			log.Error("%s", err)
			return 1
		}
		fmt.Fprintf(os.Stdout, "%s\n", data)
		return 0
	}

	errorCount := 0
	for result := range s.Results() {
		switch result := result.(type) {
		case objects.Entry:
			printEntry(result)
		case objects.EntryExt:
			printEntry(result.Entry)
		case objects.ErrorRecord:
			errorCount++
			fmt.Fprintf(os.Stderr, "error: %s: %s\n", result.Path, result.Message)
		}
	}
	s.Wait()

	log.Info("scan of %s done in %.3fs, %d errors", rootPath, s.Duration(), errorCount)
	if errorCount != 0 {
		return 1
	}
	return 0
}

func printEntry(entry objects.Entry) {
	kind := "?"
	switch {
	case entry.IsSymlink:
		kind = "l"
	case entry.IsDir:
		kind = "d"
	case entry.IsFile:
		kind = "f"
	}
	fmt.Fprintf(os.Stdout, "%s %8s %s\n", kind, entry.HumanSize(), entry.Path)
}
