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

// HoarePartition partitions x[lo..hi] (inclusive) around the median of
// x[lo], x[mid] and x[hi] and returns the pivot's final index p, so that
//   - x[lo..p-1] <= x[p]
//   - x[p+1..hi] >= x[p]
//
// Elements equal to the pivot stop both cursors and may land on either
// side, which keeps runs of duplicates from degrading into one-sided scans.
//
// It panics unless 0 <= lo < hi < len(x).
func HoarePartition[S ~[]E, E constraints.Ordered](x S, lo, hi int) int {
	checkRange("HoarePartition", len(x), lo, hi, 1)
	return hoarePartitionOrdered(x, lo, hi)
}

// HoarePartitionFunc is like HoarePartition but orders elements with cmp.
func HoarePartitionFunc[S ~[]E, E any](x S, lo, hi int, cmp func(a, b E) int) int {
	checkRange("HoarePartitionFunc", len(x), lo, hi, 1)
	return hoarePartitionFunc(x, lo, hi, cmp)
}

func hoarePartitionOrdered[E constraints.Ordered](x []E, lo, hi int) int {
	m := medianOfThreeOrdered(x, lo, hi)
	pivot := x[m]
	x[lo], x[m] = x[m], x[lo]

	i, j := lo+1, hi
	for {
		for i <= j && x[i] < pivot {
			i++
		}
		for i <= j && x[j] > pivot {
			j--
		}
		if i >= j {
			break
		}
		x[i], x[j] = x[j], x[i]
		i++
		j--
	}

	x[lo], x[j] = x[j], x[lo]
	return j
}

func hoarePartitionFunc[E any](x []E, lo, hi int, cmp func(a, b E) int) int {
	m := medianOfThreeFunc(x, lo, hi, cmp)
	pivot := x[m]
	x[lo], x[m] = x[m], x[lo]

	i, j := lo+1, hi
	for {
		for i <= j && cmp(x[i], pivot) < 0 {
			i++
		}
		for i <= j && cmp(x[j], pivot) > 0 {
			j--
		}
		if i >= j {
			break
		}
		x[i], x[j] = x[j], x[i]
		i++
		j--
	}

	x[lo], x[j] = x[j], x[lo]
	return j
}

// The pivot stays parked at lo for the whole scan, so comparisons against
// it are made by index.
func hoarePartitionIface(data Interface, lo, hi int) int {
	m := medianOfThreeIface(data, lo, hi)
	data.Swap(lo, m)

	i, j := lo+1, hi
	for {
		for i <= j && data.Less(i, lo) {
			i++
		}
		for i <= j && data.Less(lo, j) {
			j--
		}
		if i >= j {
			break
		}
		data.Swap(i, j)
		i++
		j--
	}

	data.Swap(lo, j)
	return j
}
