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
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantHeader = "chrA\tposA\tstrandA\tchrB\tposB\tstrandB\tread_count\n"

func newTestCounter() *Counter {
	c := NewCounter()
	k1 := NewKey(Locus{"chr2", 200, "-"}, Locus{"chr1", 100, "+"})
	k2 := NewKey(Locus{"chr1", 5000, "+"}, Locus{"chr1", 100, "+"})
	c.Add(k1, "read1")
	c.Add(k1, "read2")
	c.Add(k1, "read2")
	c.Add(k2, "read3")
	return c
}

const wantSortedBody = "chr1\t100\t+\tchr1\t5000\t+\t1\n" +
	"chr1\t100\t+\tchr2\t200\t-\t2\n"

func TestWriteTSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, nil))
	assert.Equal(t, wantHeader, buf.String())
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, newTestCounter().SortedRows()))
	assert.Equal(t, wantHeader+wantSortedBody, buf.String())
}

func TestWriteTSVNegativePos(t *testing.T) {
	var buf bytes.Buffer
	rows := []Row{{Key: NewKey(Locus{"chr1", -10, "+"}, Locus{"chr1", 0, "+"}), Reads: 1}}
	require.NoError(t, WriteTSV(&buf, rows))
	assert.Equal(t, wantHeader+"chr1\t-10\t+\tchr1\t0\t+\t1\n", buf.String())
}

func TestWriteReport(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	ctx := context.Background()
	opts := DefaultOpts
	opts.Sorted = true

	path := filepath.Join(tmpdir, "junctions.tsv")
	require.NoError(t, WriteReport(ctx, path, ioutil.Discard, newTestCounter(), opts))
	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, wantHeader+wantSortedBody, string(data))

	// Unsorted output has the same lines in some order.
	opts.Sorted = false
	require.NoError(t, WriteReport(ctx, path, ioutil.Discard, newTestCounter(), opts))
	data, err = ioutil.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Equal(t, 3, len(lines))
	assert.Equal(t, strings.TrimSuffix(wantHeader, "\n"), lines[0])
	body := lines[1:]
	sort.Strings(body)
	assert.Equal(t, wantSortedBody, strings.Join(body, "\n")+"\n")
}

func TestWriteReportBGZF(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	opts := DefaultOpts
	opts.Sorted = true

	path := filepath.Join(tmpdir, "junctions.tsv.gz")
	require.NoError(t, WriteReport(context.Background(), path, ioutil.Discard, newTestCounter(), opts))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := ioutil.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, wantHeader+wantSortedBody, string(data))
}

func TestWriteReportStdout(t *testing.T) {
	opts := DefaultOpts
	opts.Sorted = true
	for _, path := range []string{"", "-"} {
		var buf bytes.Buffer
		require.NoError(t, WriteReport(context.Background(), path, &buf, newTestCounter(), opts))
		assert.Equal(t, wantHeader+wantSortedBody, buf.String(), "path %q", path)
	}

	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	var buf bytes.Buffer
	require.NoError(t, WriteReport(context.Background(), filepath.Join(tmpdir, "j.tsv"), &buf, newTestCounter(), opts))
	assert.Equal(t, 0, buf.Len())
}
