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

// insertionThreshold: ranges with hi-lo below this are finished with
// insertion sort instead of being partitioned. A span of 9 (10 elements)
// still goes to insertion sort; a span of 10 (11 elements) is partitioned.
const insertionThreshold = 10

// Interface is an index-addressable collection. Any sort.Interface from
// the standard library satisfies it.
type Interface interface {
	// Len is the number of elements in the collection.
	Len() int
	// Less reports whether the element with index i sorts before the
	// element with index j.
	Less(i, j int) bool
	// Swap swaps the elements with indexes i and j.
	Swap(i, j int)
}

// Sort sorts x in place in ascending order and returns x.
// The sort is not stable.
func Sort[S ~[]E, E constraints.Ordered](x S) S {
	if len(x) < 2 {
		return x
	}
	quicksortOrdered(x, 0, len(x)-1, 1, nil)
	return x
}

// SortFunc sorts x in place in ascending order as determined by cmp and
// returns x. cmp(a, b) must return a negative number when a < b, a positive
// number when a > b and zero when a == b, and must describe a strict weak
// ordering. The sort is not stable.
func SortFunc[S ~[]E, E any](x S, cmp func(a, b E) int) S {
	if len(x) < 2 {
		return x
	}
	quicksortFunc(x, 0, len(x)-1, cmp, 1, nil)
	return x
}

// SortInterface sorts data in place in ascending order as determined by
// its Less method. The sort is not stable.
func SortInterface(data Interface) {
	n := data.Len()
	if n < 2 {
		return
	}
	quicksortIface(data, 0, n-1, 1, nil)
}

// quicksortOrdered sorts x[lo..hi]. Avoiding recursion on the larger
// partition keeps the stack depth at most bits.Len(hi-lo+1).
func quicksortOrdered[E constraints.Ordered](x []E, lo, hi, depth int, st *stats) {
	st.enter(depth)
	for lo < hi {
		if hi-lo < insertionThreshold {
			st.insertion()
			insertionSortOrdered(x, lo, hi)
			break
		}

		st.partition()
		p := hoarePartitionOrdered(x, lo, hi)
		if p-lo < hi-p {
			quicksortOrdered(x, lo, p-1, depth+1, st)
			lo = p + 1
		} else {
			quicksortOrdered(x, p+1, hi, depth+1, st)
			hi = p - 1
		}
	}
}

func quicksortFunc[E any](x []E, lo, hi int, cmp func(a, b E) int, depth int, st *stats) {
	st.enter(depth)
	for lo < hi {
		if hi-lo < insertionThreshold {
			st.insertion()
			insertionSortFunc(x, lo, hi, cmp)
			break
		}

		st.partition()
		p := hoarePartitionFunc(x, lo, hi, cmp)
		if p-lo < hi-p {
			quicksortFunc(x, lo, p-1, cmp, depth+1, st)
			lo = p + 1
		} else {
			quicksortFunc(x, p+1, hi, cmp, depth+1, st)
			hi = p - 1
		}
	}
}

func quicksortIface(data Interface, lo, hi, depth int, st *stats) {
	st.enter(depth)
	for lo < hi {
		if hi-lo < insertionThreshold {
			st.insertion()
			insertionSortIface(data, lo, hi)
			break
		}

		st.partition()
		p := hoarePartitionIface(data, lo, hi)
		if p-lo < hi-p {
			quicksortIface(data, lo, p-1, depth+1, st)
			lo = p + 1
		} else {
			quicksortIface(data, p+1, hi, depth+1, st)
			hi = p - 1
		}
	}
}
