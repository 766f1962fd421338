// Copyright 2025 go-quicksort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidRange is the cause of every panic raised by the range-bounded
// helpers when called with bounds that violate their preconditions.
var ErrInvalidRange = errors.New("invalid range")

// RangeError describes a range that violates the precondition of Op.
type RangeError struct {
	Op  string
	Lo  int
	Hi  int
	Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("sort: %s: %v [%d, %d] for length %d", e.Op, ErrInvalidRange, e.Lo, e.Hi, e.Len)
}

// Unwrap returns ErrInvalidRange.
func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}

// checkRange panics unless 0 <= lo, lo+minSpan <= hi and hi < n.
//
// minSpan is 0 for helpers that accept a single-element range and 1 for
// helpers that need at least two elements.
func checkRange(op string, n, lo, hi, minSpan int) {
	if lo < 0 || hi >= n || hi-lo < minSpan {
		panic(errors.WithStack(&RangeError{Op: op, Lo: lo, Hi: hi, Len: n}))
	}
}
