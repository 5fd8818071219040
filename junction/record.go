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
	"fmt"
	"strconv"
	"strings"
	"unicode"

	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/hts/sam"
)

// Column indexes of the mandatory SAM fields.
const (
	colQName = 0
	colFlag  = 1
	colRName = 2
	colPos   = 3
	// nMandatoryCols is the number of mandatory leading columns. Aux tags
	// start right after them.
	nMandatoryCols = 11
)

// saPrefix is the prefix of the aux field that lists the other canonical
// alignments of a read.
var saPrefix = sam.NewTag("SA").String() + ":Z:"

// Record is the subset of a SAM line needed to find junctions.
//
// Name, Ref and Aux alias the line passed to ParseRecord; they are only valid
// until that buffer is reused. Counter.Add copies whatever it retains.
type Record struct {
	Name  string
	Flags sam.Flags
	Ref   string
	// Pos is the 1-based leftmost mapping position.
	Pos int
	// Aux lists the raw optional fields, e.g., "NM:i:0", in file order.
	Aux []string
}

// Strand returns "-" if the record is mapped to the reverse strand, "+"
// otherwise.
func (r *Record) Strand() string {
	if r.Flags&sam.Reverse != 0 {
		return "-"
	}
	return "+"
}

// SATag returns the first aux field that starts with "SA:Z:". Additional SA
// fields are ignored.
func (r *Record) SATag() (string, bool) {
	for _, f := range r.Aux {
		if strings.HasPrefix(f, saPrefix) {
			return f, true
		}
	}
	return "", false
}

// ParseError reports a data line that doesn't have the mandatory SAM
// structure. It is fatal for the run.
type ParseError struct {
	// Line is the 1-based line number in the input. It is zero when the error
	// comes straight from ParseRecord.
	Line int
	Msg  string
	// Err is the underlying conversion error, if any.
	Err error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying conversion error.
func (e *ParseError) Unwrap() error { return e.Err }

// ParseRecord decodes one line of SAM text. It returns ok=false for header
// lines (starting with '@') and for unmapped or unplaced records (RNAME "*" or
// POS 0). A line that lacks the mandatory columns, or whose FLAG or POS isn't
// an integer, yields a *ParseError.
//
// Trailing whitespace, including a '\r' left by CRLF line endings, is ignored.
// FLAG may be any unsigned integer; only the reverse-strand bit is used. POS
// must fit in 32 bits, like the SAM POS field.
func ParseRecord(line []byte) (rec Record, ok bool, err error) {
	if len(line) > 0 && line[0] == '@' {
		return rec, false, nil
	}
	line = bytes.TrimRightFunc(line, unicode.IsSpace)
	cols := bytes.Split(line, []byte{'\t'})
	if len(cols) < nMandatoryCols {
		return rec, false, &ParseError{
			Msg: fmt.Sprintf("expected at least %d tab-separated columns, got %d", nMandatoryCols, len(cols)),
		}
	}
	flag, err := strconv.ParseUint(gunsafe.BytesToString(cols[colFlag]), 10, 64)
	if err != nil {
		return rec, false, &ParseError{Msg: fmt.Sprintf("invalid FLAG %q", cols[colFlag]), Err: err}
	}
	pos, err := parsePos(gunsafe.BytesToString(cols[colPos]))
	if err != nil {
		return rec, false, &ParseError{Msg: fmt.Sprintf("invalid POS %q", cols[colPos]), Err: err}
	}
	ref := gunsafe.BytesToString(cols[colRName])
	if ref == "*" || pos == 0 {
		return rec, false, nil
	}
	rec = Record{
		Name:  gunsafe.BytesToString(cols[colQName]),
		Flags: sam.Flags(flag), // truncated to the 16 SAM flag bits
		Ref:   ref,
		Pos:   pos,
	}
	if n := len(cols) - nMandatoryCols; n > 0 {
		rec.Aux = make([]string, n)
		for i, c := range cols[nMandatoryCols:] {
			rec.Aux[i] = gunsafe.BytesToString(c)
		}
	}
	return rec, true, nil
}

// parsePos parses a 1-based position. Positions are limited to 32 bits so that
// binning them can't overflow.
func parsePos(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int(v), err
}
