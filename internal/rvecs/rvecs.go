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

// Package rvecs contains functions to work with the result vectors, the internal representation
// that's produced by the alignment algorithms and is then translated to a user facing API.
//
// For inputs x and y, the result vectors are rx and ry with len(rx) = len(x)+1 and len(ry) =
// len(y)+1. If rx[s] is set, x[s] is only present in x, if ry[t] is set, y[t] is only present in
// y. All other elements are present in both inputs, in order. The extra element at the end is a
// border that is never set, it simplifies iteration.
package rvecs

import "iter"

// Make allocates result vectors for x and y with a single allocation.
func Make[T any](x, y []T) (rx, ry []bool) {
	r := make([]bool, (len(x) + len(y) + 2))
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]
	return
}

// Op classifies a single element of the inputs.
type Op uint8

const (
	Match  Op = iota // Element in x and y
	Delete           // Element only in x
	Insert           // Element only in y
)

// Ops returns the classification of every element in the inputs described by rx and ry.
//
// A Match classifies one element of x and one element of y. Within a block of changes, all
// deletions are reported before all insertions.
func Ops(rx, ry []bool) iter.Seq[Op] {
	return func(yield func(Op) bool) {
		n, m := len(rx)-1, len(ry)-1
		for s, t := 0, 0; s < n || t < m; {
			for s < n && rx[s] {
				if !yield(Delete) {
					return
				}
				s++
			}
			for t < m && ry[t] {
				if !yield(Insert) {
					return
				}
				t++
			}
			for s < n && t < m && !rx[s] && !ry[t] {
				if !yield(Match) {
					return
				}
				s++
				t++
			}
		}
	}
}
