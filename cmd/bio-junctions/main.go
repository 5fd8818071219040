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
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/bio-junctions/junction"
)

var (
	binWidth = flag.Int("bin-width", junction.DefaultOpts.BinWidth, "Round positions down to a multiple of this value before pairing them")
	outPath  = flag.String("out", "", "Output TSV path; empty or '-' means stdout. A .gz suffix produces bgzf output")
	sorted   = flag.Bool("sorted", junction.DefaultOpts.Sorted, "Sort output rows by junction instead of emitting them in arbitrary order")
)

func bioJunctionsUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [OPTIONS] sampath\n", os.Args[0])
	fmt.Fprintf(w, "Other options:\n")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
}

// extractJunctions runs the whole tool on one input. The report goes to
// stdout unless outPath names a file.
func extractJunctions(ctx context.Context, inPath, outPath string, stdout io.Writer, opts junction.Opts) error {
	c, stats, err := junction.ExtractPath(ctx, inPath, opts)
	if err != nil {
		return err
	}
	log.Printf("%s: %v", inPath, stats)
	log.Printf("%s: %d junctions", inPath, c.Len())
	return junction.WriteReport(ctx, outPath, stdout, c, opts)
}

// run executes the tool with the given positional arguments, after flags have
// been parsed, and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		bioJunctionsUsage(stderr)
		return 1
	}
	opts := junction.Opts{
		BinWidth: *binWidth,
		Sorted:   *sorted,
	}
	if err := opts.Validate(); err != nil {
		log.Error.Printf("%v", err)
		return 1
	}
	if err := extractJunctions(context.Background(), args[0], *outPath, stdout, opts); err != nil {
		log.Error.Printf("%v", err)
		return 1
	}
	return 0
}

func main() {
	flag.Usage = func() { bioJunctionsUsage(os.Stderr) }
	shutdown := grail.Init()
	status := run(flag.Args(), os.Stdout, os.Stderr)
	log.Debug.Printf("exiting")
	shutdown()
	os.Exit(status)
}
