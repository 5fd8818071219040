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

/*
Package junction extracts putative structural junctions (splice or
rearrangement breakpoints) from long-read alignments.

Each mapped SAM record that carries an SA:Z: aux tag is split into one
association per supplementary alignment listed in the tag:

   primary locus  (RNAME, POS, strand from FLAG)
   SA locus       (rname, pos, strand) for each "rname,pos,strand,CIGAR,mapQ,NM;" entry

Both positions are rounded down to a multiple of Opts.BinWidth so that the
small disagreement between where the aligner places the primary and the
supplementary end of the same breakpoint does not split a junction in two.
The two loci are then put in canonical order (see NewKey), so a junction seen
from either side maps to the same Key.

A Counter collects, for every Key, the set of distinct read names that support
it. A read that produces the same junction on several lines (e.g., the primary
and the supplementary records of one long read both carry an SA tag) is counted
once.

Errors are handled asymmetrically. A data line with fewer than 11
columns, or with a FLAG or POS that is not an integer, stops the run with a
*ParseError. A malformed entry inside an SA tag is skipped and only counted in
Stats.

Typical use:

   c, stats, err := junction.ExtractPath(ctx, "sample.sam", junction.DefaultOpts)
   ...
   err = junction.WriteReport(ctx, "", os.Stdout, c, junction.DefaultOpts)
*/
package junction
