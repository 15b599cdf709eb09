// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package lines splits text into lines without copying.
package lines

import "strings"

// Split splits s into lines. Every line keeps its terminating newline, except for the last line
// if s doesn't end in a newline. In that case, missingNewline is the index of that line, otherwise
// it's -1.
//
// All lines are sub-strings of s.
func Split(s string) (lines []string, missingNewline int) {
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	a := make([]string, n)
	for i := range n {
		m := strings.IndexByte(s, '\n')
		if m < 0 {
			break
		}
		a[i] = s[:m+1]
		s = s[m+1:]
	}
	missingNewline = -1
	if len(s) > 0 {
		a[n-1] = s
		missingNewline = n - 1
	}
	return a, missingNewline
}

// Key returns line without its terminator ("\n" or "\r\n").
func Key(line string) string {
	if l, ok := strings.CutSuffix(line, "\n"); ok {
		return strings.TrimSuffix(l, "\r")
	}
	return line
}

// Keys returns the Key of every line.
func Keys(lines []string) []string {
	keys := make([]string, len(lines))
	for i, l := range lines {
		keys[i] = Key(l)
	}
	return keys
}
