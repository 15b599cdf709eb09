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

package rvecs

import "iter"

// Hunk describes a sequence of consecutive edits.
type Hunk struct {
	S0, S1 int // Start and end of the hunk in x.
	T0, T1 int // Start and end of the hunk in y.
	Edits  int // Number of edits in this hunk, matches included.
}

// Hunks groups the changes in rx and ry into hunks with up to context matches before and after
// every change. Changes that are separated by at most 2*context matches share a hunk.
func Hunks(rx, ry []bool, context int) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		n := len(rx) - 1

		var h Hunk // current hunk, without trailing context
		open := false
		end := 0 // end of the last block of changes in x
		for b := range blocks(rx, ry) {
			gap := b.S0 - end // number of matches since the last block
			end = b.S1
			if open && gap <= 2*context {
				h.S1, h.T1 = b.S1, b.T1
				h.Edits += gap + b.Edits
				continue
			}
			if open && !yield(trail(h, gap, context)) {
				return
			}
			lead := min(gap, context)
			h = Hunk{b.S0 - lead, b.S1, b.T0 - lead, b.T1, lead + b.Edits}
			open = true
		}
		if open {
			yield(trail(h, n-end, context))
		}
	}
}

// trail extends h by up to context of the following matches.
func trail(h Hunk, matches, context int) Hunk {
	k := min(matches, context)
	h.S1 += k
	h.T1 += k
	h.Edits += k
	return h
}

// blocks yields every maximal block of deletions and insertions without a match in between.
// Edits is the number of deletions and insertions in the block.
func blocks(rx, ry []bool) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		n, m := len(rx)-1, len(ry)-1
		s, t := 0, 0
		for s < n || t < m {
			if s < n && t < m && !rx[s] && !ry[t] {
				s++
				t++
				continue
			}
			b := Hunk{S0: s, T0: t}
			for s < n && rx[s] {
				s++
			}
			for t < m && ry[t] {
				t++
			}
			b.S1, b.T1 = s, t
			if b.S0 == b.S1 && b.T0 == b.T1 {
				panic("never reached")
			}
			b.Edits = (b.S1 - b.S0) + (b.T1 - b.T0)
			if !yield(b) {
				return
			}
		}
	}
}
