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
	"math"

	"github.com/pkg/errors"
)

// Opts controls junction extraction and reporting.
type Opts struct {
	// BinWidth is the width of the buckets that primary and supplementary
	// positions are rounded down to. Must be in [1, math.MaxInt32].
	BinWidth int
	// Sorted causes the report rows to be emitted in ascending Key order. By
	// default rows are emitted in map iteration order.
	Sorted bool
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	BinWidth: 10,
	Sorted:   false,
}

// Validate checks that the options are usable.
func (o Opts) Validate() error {
	if o.BinWidth < 1 || o.BinWidth > math.MaxInt32 {
		return errors.Errorf("bin width must be in [1, %d], got %d", math.MaxInt32, o.BinWidth)
	}
	return nil
}
