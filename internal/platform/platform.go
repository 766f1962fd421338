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

// Package platform describes the host a program runs on: OS, architecture,
// CPU count and the CPU features reported by golang.org/x/sys/cpu.
//
// The example programs print it next to timing results so numbers from
// different machines can be told apart.
package platform

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Info is a snapshot of the host.
type Info struct {
	GOOS     string
	GOARCH   string
	NumCPU   int
	Features []string
}

// Detect returns the current host description. Features is empty on
// architectures without feature detection, or when BriefEnv is set.
func Detect() Info {
	info := Info{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
	}
	if !BriefEnv() {
		info.Features = cpuFeatures()
	}
	return info
}

// String renders the info on one line, e.g.
// "linux/amd64 cpus=8 features=avx2,bmi2,popcnt".
func (i Info) String() string {
	s := fmt.Sprintf("%s/%s cpus=%d", i.GOOS, i.GOARCH, i.NumCPU)
	if len(i.Features) > 0 {
		s += " features=" + strings.Join(i.Features, ",")
	}
	return s
}

// BriefEnv checks if the QSORT_PLATFORM_BRIEF environment variable is set.
// When set, Detect skips the CPU feature list.
func BriefEnv() bool {
	val := os.Getenv("QSORT_PLATFORM_BRIEF")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// featureList returns the names whose flag is set, in the given order.
func featureList(flags []feature) []string {
	var out []string
	for _, f := range flags {
		if f.has {
			out = append(out, f.name)
		}
	}
	return out
}

type feature struct {
	name string
	has  bool
}
