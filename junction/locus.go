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
)

// Bin rounds pos down to a multiple of width. Negative positions are floored
// too, so Bin(-1, 10) == -10.
//
// REQUIRES: width >= 1, and pos-width doesn't underflow int. ParseRecord and
// ParseSA only produce 32-bit positions, and Opts.Validate limits BinWidth to
// 32 bits.
func Bin(pos, width int) int {
	q := pos / width
	if pos%width != 0 && pos < 0 {
		q--
	}
	return q * width
}

// Locus is one side of a junction: a binned position on a strand of a
// reference sequence.
type Locus struct {
	Ref    string
	Pos    int
	Strand string
}

// NewLocus creates a Locus, binning pos by width.
func NewLocus(ref string, pos int, strand string, width int) Locus {
	return Locus{Ref: ref, Pos: Bin(pos, width), Strand: strand}
}

// Compare orders loci by (Ref, Pos, Strand). Refs and strands compare
// bytewise. It returns a negative value if l < o, zero if they are equal and a
// positive value otherwise.
func (l Locus) Compare(o Locus) int {
	if c := strings.Compare(l.Ref, o.Ref); c != 0 {
		return c
	}
	if l.Pos != o.Pos {
		if l.Pos < o.Pos {
			return -1
		}
		return 1
	}
	return strings.Compare(l.Strand, o.Strand)
}

// Key identifies a junction as an unordered pair of loci.
//
// INVARIANT: A.Compare(B) <= 0. Use NewKey to build one.
type Key struct {
	A, B Locus
}

// NewKey creates the canonical Key for the junction between x and y.
// NewKey(x, y) == NewKey(y, x).
func NewKey(x, y Locus) Key {
	if y.Compare(x) < 0 {
		x, y = y, x
	}
	return Key{A: x, B: y}
}

// Compare orders keys by A, then by B.
func (k Key) Compare(o Key) int {
	if c := k.A.Compare(o.A); c != 0 {
		return c
	}
	return k.B.Compare(o.B)
}
