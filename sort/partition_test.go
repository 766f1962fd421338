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
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// checkPartition verifies the partition post-conditions on x[lo..hi] and
// that nothing outside the range moved.
func checkPartition(t *testing.T, orig, got []int, lo, hi, p int) {
	t.Helper()
	if p < lo || p > hi {
		t.Fatalf("split %d outside [%d, %d]", p, lo, hi)
	}
	pivot := got[p]
	for i := lo; i < p; i++ {
		if got[i] > pivot {
			t.Errorf("x[%d]=%d left of pivot %d at %d", i, got[i], pivot, p)
		}
	}
	for i := p + 1; i <= hi; i++ {
		if got[i] < pivot {
			t.Errorf("x[%d]=%d right of pivot %d at %d", i, got[i], pivot, p)
		}
	}
	if diff := cmp.Diff(orig[:lo], got[:lo]); diff != "" {
		t.Errorf("prefix outside range changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(orig[hi+1:], got[hi+1:]); diff != "" {
		t.Errorf("suffix outside range changed (-want +got):\n%s", diff)
	}

	want := slices.Clone(orig[lo : hi+1])
	have := slices.Clone(got[lo : hi+1])
	slices.Sort(want)
	slices.Sort(have)
	if diff := cmp.Diff(want, have); diff != "" {
		t.Errorf("range is not a permutation of the input (-want +got):\n%s", diff)
	}
}

func TestHoarePartition(t *testing.T) {
	tests := []struct {
		name      string
		data      []int
		lo, hi    int
		wantPivot int
	}{
		{"pair_sorted", []int{1, 2}, 0, 1, 1},
		{"pair_reversed", []int{2, 1}, 0, 1, 1},
		{"three", []int{3, 1, 2}, 0, 2, 2},
		{"duplicates", []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}, 0, 10, 5},
		{"all_equal", []int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4}, 0, 11, 4},
		{"reverse", []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, 0, 10, 6},
		{"sub_range", []int{100, 7, 3, 9, 1, 8, 2, -100}, 1, 6, 7},
		// the median ties with x[hi], so the pivot lands on hi itself
		{"pivot_at_hi", []int{1, 2, 5, 3, 5}, 0, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := slices.Clone(tt.data)
			p := HoarePartition(tt.data, tt.lo, tt.hi)
			checkPartition(t, orig, tt.data, tt.lo, tt.hi, p)
			if tt.data[p] != tt.wantPivot {
				t.Errorf("pivot value = %d, want %d", tt.data[p], tt.wantPivot)
			}
		})
	}
}

func TestHoarePartitionRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(300)
		data := randomInts(rng, n, 0, 1+rng.Intn(50))
		lo := rng.Intn(n - 1)
		hi := lo + 1 + rng.Intn(n-lo-1)

		orig := slices.Clone(data)
		p := HoarePartition(data, lo, hi)
		checkPartition(t, orig, data, lo, hi, p)
	}
}

// TestHoarePartitionPivotAtHi pins down that the split can equal hi; the
// driver still makes progress because both sides exclude the split.
func TestHoarePartitionPivotAtHi(t *testing.T) {
	data := []int{1, 2, 5, 3, 5}
	if p := HoarePartition(data, 0, 4); p != 4 {
		t.Errorf("HoarePartition = %d, want 4 (data %v)", p, data)
	}
}

func TestHoarePartitionFunc(t *testing.T) {
	desc := func(a, b int) int { return b - a }
	data := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	p := HoarePartitionFunc(data, 0, len(data)-1, desc)
	for i := 0; i < p; i++ {
		if data[i] < data[p] {
			t.Errorf("desc: x[%d]=%d sorts after pivot %d", i, data[i], data[p])
		}
	}
	for i := p + 1; i < len(data); i++ {
		if data[i] > data[p] {
			t.Errorf("desc: x[%d]=%d sorts before pivot %d", i, data[i], data[p])
		}
	}
}

func TestHoarePartitionIfaceMatchesOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 100; trial++ {
		n := 2 + rng.Intn(100)
		a := randomInts(rng, n, -10, 10)
		b := intSlice(slices.Clone(a))

		pa := hoarePartitionOrdered(a, 0, n-1)
		pb := hoarePartitionIface(b, 0, n-1)
		if pa != pb {
			t.Fatalf("n=%d: split %d (ordered) vs %d (interface)", n, pa, pb)
		}
		if diff := cmp.Diff(a, []int(b)); diff != "" {
			t.Fatalf("n=%d: layouts differ (-ordered +interface):\n%s", n, diff)
		}
	}
}
