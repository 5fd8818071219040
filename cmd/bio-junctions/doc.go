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
bio-junctions reports putative structural junctions (splice sites or
rearrangement breakpoints) supported by split long-read alignments.

For every mapped SAM record with an SA:Z: aux tag, the primary alignment
location is paired with each supplementary location listed in the tag. Both
positions are rounded down to a multiple of -bin-width, and the pair is put in
a fixed order so that A/B and B/A count as the same junction. The output is a
TSV with one row per junction and the number of distinct reads supporting it:

    chrA  posA  strandA  chrB  posB  strandB  read_count

The input need not be sorted or indexed. Compressed input is detected by the
path suffix.

Sample usage:
bio-junctions \
    -bin-width 10 \
    -sorted \
    -out junctions.tsv \
    sample.sam
*/
package main
