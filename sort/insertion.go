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

// InsertionSort sorts x[lo..hi] (inclusive) in ascending order.
// It panics unless 0 <= lo <= hi < len(x).
func InsertionSort[S ~[]E, E constraints.Ordered](x S, lo, hi int) {
	checkRange("InsertionSort", len(x), lo, hi, 0)
	insertionSortOrdered(x, lo, hi)
}

// InsertionSortFunc is like InsertionSort but orders elements with cmp.
func InsertionSortFunc[S ~[]E, E any](x S, lo, hi int, cmp func(a, b E) int) {
	checkRange("InsertionSortFunc", len(x), lo, hi, 0)
	insertionSortFunc(x, lo, hi, cmp)
}

func insertionSortOrdered[E constraints.Ordered](x []E, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		key := x[i]
		j := i - 1
		for j >= lo && x[j] > key {
			x[j+1] = x[j]
			j--
		}
		x[j+1] = key
	}
}

func insertionSortFunc[E any](x []E, lo, hi int, cmp func(a, b E) int) {
	for i := lo + 1; i <= hi; i++ {
		key := x[i]
		j := i - 1
		for j >= lo && cmp(x[j], key) > 0 {
			x[j+1] = x[j]
			j--
		}
		x[j+1] = key
	}
}

// Interface values cannot hold an element aside, so the shift becomes a
// chain of adjacent swaps.
func insertionSortIface(data Interface, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && data.Less(j, j-1); j-- {
			data.Swap(j, j-1)
		}
	}
}
