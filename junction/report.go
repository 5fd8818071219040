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
	"context"
	"io"
	"runtime"
	"strings"

	grailerrors "github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/hts/bgzf"
	"github.com/pkg/errors"
)

// reportHeader lists the report columns.
var reportHeader = []string{"chrA", "posA", "strandA", "chrB", "posB", "strandB", "read_count"}

// WriteTSV writes the header line followed by one line per row. The header is
// written even if rows is empty.
func WriteTSV(w io.Writer, rows []Row) error {
	tsvw := tsv.NewWriter(w)
	for _, col := range reportHeader {
		tsvw.WriteString(col)
	}
	if err := tsvw.EndLine(); err != nil {
		return err
	}
	for _, r := range rows {
		writeLocus(tsvw, r.A)
		writeLocus(tsvw, r.B)
		tsvw.WriteInt64(int64(r.Reads))
		if err := tsvw.EndLine(); err != nil {
			return err
		}
	}
	return tsvw.Flush()
}

func writeLocus(tsvw *tsv.Writer, l Locus) {
	tsvw.WriteString(l.Ref)
	tsvw.WriteInt64(int64(l.Pos))
	tsvw.WriteString(l.Strand)
}

// WriteReport writes the junctions in c as TSV to path. An empty path or "-"
// means stdout, typically os.Stdout. A path ending in ".gz" is written
// bgzf-compressed.
func WriteReport(ctx context.Context, path string, stdout io.Writer, c *Counter, opts Opts) error {
	rows := c.Rows()
	if opts.Sorted {
		rows = c.SortedRows()
	}
	if path == "" || path == "-" {
		return WriteTSV(stdout, rows)
	}
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	var (
		w    = out.Writer(ctx)
		bgzw *bgzf.Writer
		once = grailerrors.Once{}
	)
	if strings.HasSuffix(path, ".gz") {
		bgzw = bgzf.NewWriter(w, runtime.NumCPU())
		w = bgzw
	}
	once.Set(WriteTSV(w, rows))
	if bgzw != nil {
		once.Set(bgzw.Close())
	}
	once.Set(out.Close(ctx))
	if err := once.Err(); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
