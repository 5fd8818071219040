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

// Alignment is one entry of an SA:Z: tag. Only the fields needed to locate a
// breakpoint are kept; CIGAR, mapQ and NM are dropped.
type Alignment struct {
	Ref string
	// Pos is the 1-based position as written in the tag.
	Pos int
	// Strand is copied verbatim from the tag. It is normally "+" or "-".
	Strand string
}

// ParseSA decodes an "SA:Z:rname,pos,strand,CIGAR,mapQ,NM;..." aux field. It
// returns nil if the field doesn't start with "SA:Z:" or has an empty body.
//
// Entries with fewer than three comma-separated fields, or with a position that
// isn't a 32-bit integer, are skipped; the remaining entries are still returned.
func ParseSA(tag string) []Alignment {
	alns, _ := appendSA(nil, tag)
	return alns
}

// appendSA appends the entries of the SA tag to alns. It also returns the
// number of malformed entries that were skipped.
func appendSA(alns []Alignment, tag string) ([]Alignment, int) {
	if !strings.HasPrefix(tag, saPrefix) {
		return alns, 0
	}
	body := strings.TrimRight(tag[len(saPrefix):], ";")
	if body == "" {
		return alns, 0
	}
	nSkipped := 0
	for body != "" {
		var entry string
		if i := strings.IndexByte(body, ';'); i >= 0 {
			entry, body = body[:i], body[i+1:]
		} else {
			entry, body = body, ""
		}
		// Only the first three fields matter.
		fields := strings.SplitN(entry, ",", 4)
		if len(fields) < 3 {
			nSkipped++
			continue
		}
		pos, err := parsePos(fields[1])
		if err != nil {
			nSkipped++
			continue
		}
		alns = append(alns, Alignment{Ref: fields[0], Pos: pos, Strand: fields[2]})
	}
	return alns, nSkipped
}
