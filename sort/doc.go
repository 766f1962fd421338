// Package sort provides an in-place quicksort for random-access slices.
//
// The implementation combines three classical optimizations:
//   - Median-of-three pivot selection (first, middle and last element)
//   - Hoare partitioning with two cursors scanning inward
//   - Insertion sort for ranges spanning fewer than 10 positions
//
// The driver recurses only into the smaller side of each partition and
// loops on the larger side, so stack depth stays O(log n) even for sorted,
// reverse-sorted or otherwise adversarial input.
//
// The sort is not stable: equal elements may be reordered.
//
// # Comparison
//
// Three flavours are provided, one per way of expressing the order:
//   - Sort for types satisfying constraints.Ordered
//   - SortFunc for any type with a three-way comparator
//   - SortInterface for index-based collections (Len, Less, Swap)
//
// Floating-point NaN does not take part in a total order. Slices containing
// NaN are still permuted and the call terminates, but where the NaNs end up
// is unspecified.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-quicksort/sort"
//
//	func Process(data []int) {
//	    sort.Sort(data) // in-place ascending sort
//	}
//
//	func ByAgeDesc(people []Person) {
//	    sort.SortFunc(people, func(a, b Person) int { return b.Age - a.Age })
//	}
//
// # Helpers
//
// InsertionSort, MedianOfThree and HoarePartition expose the building blocks
// on explicit inclusive ranges. They check their range preconditions and
// panic with an error wrapping ErrInvalidRange when a range is invalid.
//
// The slice is borrowed for the duration of the call: it is never copied or
// retained, and callers must not access it concurrently while it is being
// sorted.
package sort
