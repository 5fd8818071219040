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

import "fmt"

// Stats summarizes one extraction run.
type Stats struct {
	// Lines is the number of lines read, including headers.
	Lines int
	// Headers is the number of '@' lines.
	Headers int
	// Unplaced is the # of data lines skipped because RNAME is "*" or POS is 0.
	Unplaced int
	// Records is the # of mapped data lines.
	Records int
	// NoSA is the # of mapped data lines without an SA:Z: tag.
	NoSA int
	// SAEntries is the # of well-formed SA entries decoded.
	SAEntries int
	// SkippedSAEntries is the # of malformed SA entries that were ignored.
	SkippedSAEntries int
}

func (s Stats) String() string {
	return fmt.Sprintf("lines: %d, headers: %d, unplaced: %d, records: %d, no SA: %d, SA entries: %d (skipped %d)",
		s.Lines, s.Headers, s.Unplaced, s.Records, s.NoSA, s.SAEntries, s.SkippedSAEntries)
}
