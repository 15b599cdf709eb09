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

package diffable

import (
	"iter"

	"znkr.io/diffable/internal/rvecs"
)

// boundary marks a change of the side in a classification stream. s and t are the number of
// elements consumed from x and y before the change.
type boundary struct {
	s, t     int
	was, now Side
}

// Coalesce groups a per-element classification of x and y into maximal runs.
//
// The classification consumes one element from x for every Left, one element from y for every
// Right, and one element from both for every Both. Consecutive elements with the same side form a
// single run and runs that would be empty are dropped. Concatenating all Left fields reconstructs
// x, concatenating all Right fields reconstructs y.
//
// A classification that claims more elements than x or y provides is clamped to the length of the
// respective input. If tags stops early, the remaining elements are reported as part of the last
// run.
//
// All results refer to sub-slices of x and y.
func Coalesce[T any](x, y []T, tags iter.Seq[Side]) []Result[[]T] {
	last := Both
	var s, t int
	var bounds []boundary
	for tag := range tags {
		if tag != last {
			bounds = append(bounds, boundary{s, t, last, tag})
			last = tag
		}
		switch tag {
		case Left:
			s++
		case Right:
			t++
		case Both:
			s++
			t++
		default:
			panic("never reached")
		}
	}

	var out []Result[[]T]
	var lasts, lastt int
	for _, b := range bounds {
		left := clamp(x, lasts, b.s)
		right := clamp(y, lastt, b.t)
		lasts, lastt = b.s, b.t
		if len(left) == 0 && len(right) == 0 {
			continue
		}
		out = append(out, makeResult(b.was, left, right))
	}
	if lasts < len(x) || lastt < len(y) {
		out = append(out, makeResult(last, clamp(x, lasts, len(x)), clamp(y, lastt, len(y))))
	}
	return out
}

// clamp returns x[lo:hi] with both bounds limited to len(x). The capacity of the result is limited
// to its length, appending to it never modifies x.
func clamp[T any](x []T, lo, hi int) []T {
	lo, hi = min(lo, len(x)), min(hi, len(x))
	return x[lo:hi:hi]
}

func makeResult[T any](side Side, left, right []T) Result[[]T] {
	switch side {
	case Left:
		return Result[[]T]{Side: Left, Left: left}
	case Right:
		return Result[[]T]{Side: Right, Right: right}
	case Both:
		return Result[[]T]{Side: Both, Left: left, Right: right}
	default:
		panic("never reached")
	}
}

// sides translates result vectors into a classification stream.
func sides(rx, ry []bool) iter.Seq[Side] {
	return func(yield func(Side) bool) {
		for op := range rvecs.Ops(rx, ry) {
			var side Side
			switch op {
			case rvecs.Delete:
				side = Left
			case rvecs.Insert:
				side = Right
			case rvecs.Match:
				side = Both
			default:
				panic("never reached")
			}
			if !yield(side) {
				return
			}
		}
	}
}
