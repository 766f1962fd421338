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

// stats records how the driver handled a sort. A nil *stats records
// nothing; the exported entry points always pass nil.
type stats struct {
	calls      int // driver invocations, including the top-level one
	maxDepth   int // deepest driver invocation, top level is 1
	partitions int
	insertions int
}

func (s *stats) enter(depth int) {
	if s == nil {
		return
	}
	s.calls++
	s.maxDepth = max(s.maxDepth, depth)
}

func (s *stats) partition() {
	if s != nil {
		s.partitions++
	}
}

func (s *stats) insertion() {
	if s != nil {
		s.insertions++
	}
}
