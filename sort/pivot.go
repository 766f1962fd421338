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

import "golang.org/x/exp/constraints"

// MedianOfThree orders x[lo], x[mid] and x[hi] in place, where
// mid = lo + (hi-lo)/2, and returns mid. Afterwards
// x[lo] <= x[mid] <= x[hi].
//
// It panics unless 0 <= lo <= hi < len(x). With lo == hi the three
// positions coincide and lo is returned.
func MedianOfThree[S ~[]E, E constraints.Ordered](x S, lo, hi int) int {
	checkRange("MedianOfThree", len(x), lo, hi, 0)
	return medianOfThreeOrdered(x, lo, hi)
}

// MedianOfThreeFunc is like MedianOfThree but orders elements with cmp.
func MedianOfThreeFunc[S ~[]E, E any](x S, lo, hi int, cmp func(a, b E) int) int {
	checkRange("MedianOfThreeFunc", len(x), lo, hi, 0)
	return medianOfThreeFunc(x, lo, hi, cmp)
}

// The compare-swap order (lo,mid), (lo,hi), (mid,hi) leaves all three
// positions sorted.
func medianOfThreeOrdered[E constraints.Ordered](x []E, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if x[lo] > x[mid] {
		x[lo], x[mid] = x[mid], x[lo]
	}
	if x[lo] > x[hi] {
		x[lo], x[hi] = x[hi], x[lo]
	}
	if x[mid] > x[hi] {
		x[mid], x[hi] = x[hi], x[mid]
	}
	return mid
}

func medianOfThreeFunc[E any](x []E, lo, hi int, cmp func(a, b E) int) int {
	mid := lo + (hi-lo)/2
	if cmp(x[lo], x[mid]) > 0 {
		x[lo], x[mid] = x[mid], x[lo]
	}
	if cmp(x[lo], x[hi]) > 0 {
		x[lo], x[hi] = x[hi], x[lo]
	}
	if cmp(x[mid], x[hi]) > 0 {
		x[mid], x[hi] = x[hi], x[mid]
	}
	return mid
}

func medianOfThreeIface(data Interface, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if data.Less(mid, lo) {
		data.Swap(lo, mid)
	}
	if data.Less(hi, lo) {
		data.Swap(lo, hi)
	}
	if data.Less(hi, mid) {
		data.Swap(mid, hi)
	}
	return mid
}
