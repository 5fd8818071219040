// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package junction

import (
	"bufio"
	"context"
	"io"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

const (
	// maxLineLength bounds a single SAM line. Long reads put the whole
	// sequence and quality string on one line.
	maxLineLength = 1024 * 1024 * 300 // 300 MB
	// ctxCheckInterval is the number of lines between context checks.
	ctxCheckInterval = 1024
)

// Extract reads SAM text from r and returns the junctions found in it, along
// with a summary of what was read. The first structural error in a data line
// stops the run; the error is a *ParseError with Line set.
func Extract(ctx context.Context, r io.Reader, opts Opts) (*Counter, Stats, error) {
	var stats Stats
	if err := opts.Validate(); err != nil {
		return nil, stats, err
	}
	var (
		c       = NewCounter()
		sc      = bufio.NewScanner(r)
		alns    []Alignment
		skipped int
	)
	sc.Buffer(nil, maxLineLength)
	for sc.Scan() {
		stats.Lines++
		if stats.Lines%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, stats, err
			}
		}
		if stats.Lines%(1024*1024) == 0 {
			log.Printf("junction: %dMi lines, %d junctions", stats.Lines/(1024*1024), c.Len())
		}
		line := sc.Bytes()
		if len(line) > 0 && line[0] == '@' {
			stats.Headers++
			continue
		}
		rec, ok, err := ParseRecord(line)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Line = stats.Lines
			}
			return nil, stats, err
		}
		if !ok {
			stats.Unplaced++
			continue
		}
		stats.Records++
		tag, ok := rec.SATag()
		if !ok {
			stats.NoSA++
			continue
		}
		alns, skipped = appendSA(alns[:0], tag)
		if skipped > 0 {
			stats.SkippedSAEntries += skipped
			log.Debug.Printf("line %d: skipped %d malformed SA entries in %q", stats.Lines, skipped, tag)
		}
		stats.SAEntries += len(alns)
		primary := NewLocus(rec.Ref, rec.Pos, rec.Strand(), opts.BinWidth)
		for _, aln := range alns {
			c.Add(NewKey(primary, NewLocus(aln.Ref, aln.Pos, aln.Strand, opts.BinWidth)), rec.Name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, stats, errors.Wrapf(err, "line %d", stats.Lines+1)
	}
	return c, stats, nil
}

// ExtractPath is like Extract, but reads from the given path. Compressed input
// (.gz, .zst, ...) is decompressed based on the path suffix. The file is always
// closed before ExtractPath returns.
func ExtractPath(ctx context.Context, path string, opts Opts) (c *Counter, stats Stats, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, stats, errors.Wrapf(err, "open %s", path)
	}
	defer file.CloseAndReport(ctx, in, &err)
	var r io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(r, in.Name()); u != nil {
		r = u
	}
	c, stats, err = Extract(ctx, r, opts)
	if err != nil {
		err = errors.Wrap(err, path)
	}
	return
}
