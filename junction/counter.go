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
	"strings"

	"github.com/biogo/store/llrb"
)

// Row is one line of the junction report.
type Row struct {
	Key
	// Reads is the number of distinct read names that support the junction.
	Reads int
}

// Compare implements llrb.Comparable. Rows are ordered by Key.
func (r Row) Compare(c llrb.Comparable) int {
	return r.Key.Compare(c.(Row).Key)
}

// readSet is the set of names of reads supporting one junction.
type readSet map[string]struct{}

// Counter accumulates, for each junction, the set of distinct reads that
// support it. It only grows. Thread compatible.
type Counter struct {
	reads map[Key]readSet
	// strs interns read names, reference names and strands.
	strs map[string]string
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{
		reads: map[Key]readSet{},
		strs:  map[string]string{},
	}
}

func (c *Counter) intern(s string) string {
	if v, ok := c.strs[s]; ok {
		return v
	}
	v := strings.Clone(s)
	c.strs[v] = v
	return v
}

// Add records that readName supports junction k. Adding the same pair again
// is a no-op. Add copies the strings it retains, so k and readName may alias
// a reused buffer.
func (c *Counter) Add(k Key, readName string) {
	set, ok := c.reads[k]
	if !ok {
		k.A.Ref, k.A.Strand = c.intern(k.A.Ref), c.intern(k.A.Strand)
		k.B.Ref, k.B.Strand = c.intern(k.B.Ref), c.intern(k.B.Strand)
		set = readSet{}
		c.reads[k] = set
	}
	if _, ok := set[readName]; !ok {
		set[c.intern(readName)] = struct{}{}
	}
}

// Count returns the number of distinct reads supporting k.
func (c *Counter) Count(k Key) int { return len(c.reads[k]) }

// Len returns the number of distinct junctions.
func (c *Counter) Len() int { return len(c.reads) }

// Rows returns one Row per junction, in no particular order.
func (c *Counter) Rows() []Row {
	rows := make([]Row, 0, len(c.reads))
	for k, set := range c.reads {
		rows = append(rows, Row{Key: k, Reads: len(set)})
	}
	return rows
}

// SortedRows returns one Row per junction, in ascending Key order.
func (c *Counter) SortedRows() []Row {
	t := llrb.Tree{}
	for k, set := range c.reads {
		t.Insert(Row{Key: k, Reads: len(set)})
	}
	rows := make([]Row, 0, t.Len())
	t.Do(func(e llrb.Comparable) bool {
		rows = append(rows, e.(Row))
		return false
	})
	return rows
}
