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
	"slices"

	"znkr.io/diffable/internal/align"
	"znkr.io/diffable/internal/config"
)

// Slice is a [Diffable] slice.
type Slice[E any] []E

// DiffItem returns s as a plain slice.
func (s Slice[E]) DiffItem() []E { return s }

// LCS finds a longest common subsequence of both inputs and reports the runs of elements in
// between. The result is a minimal diff.
//
// Time complexity is O(ND) where N = len(x) + len(y) and D is the number of differences. Space
// complexity is O(N).
type LCS[E comparable] struct{}

func (LCS[E]) Diff(x, y []E) []Result[[]E] { return diff(x, y, config.ModeMinimal) }

func (LCS[E]) Apply(x []E, d []Result[[]E]) []E { return patch(x, d, Left) }

func (LCS[E]) Revert(y []E, d []Result[[]E]) []E { return patch(y, d, Right) }

// Myers is like [LCS] but uses heuristics to limit the cost for large inputs with many
// differences. The result is usually minimal, but it's not guaranteed to be.
type Myers[E comparable] struct{}

func (Myers[E]) Diff(x, y []E) []Result[[]E] { return diff(x, y, config.ModeDefault) }

func (Myers[E]) Apply(x []E, d []Result[[]E]) []E { return patch(x, d, Left) }

func (Myers[E]) Revert(y []E, d []Result[[]E]) []E { return patch(y, d, Right) }

// Patience only aligns elements that are unique in both inputs and extends matches around them.
// This is fast and often produces readable diffs for source code, but it can report a lot more
// differences than necessary.
type Patience[E comparable] struct{}

func (Patience[E]) Diff(x, y []E) []Result[[]E] { return diff(x, y, config.ModeFast) }

func (Patience[E]) Apply(x []E, d []Result[[]E]) []E { return patch(x, d, Left) }

func (Patience[E]) Revert(y []E, d []Result[[]E]) []E { return patch(y, d, Right) }

// Default is the strategy used by [Diff]. It's currently [LCS].
type Default[E comparable] struct{}

func (Default[E]) Diff(x, y []E) []Result[[]E] { return LCS[E]{}.Diff(x, y) }

func (Default[E]) Apply(x []E, d []Result[[]E]) []E { return LCS[E]{}.Apply(x, d) }

func (Default[E]) Revert(y []E, d []Result[[]E]) []E { return LCS[E]{}.Revert(y, d) }

// Diff compares x and y using the [Default] strategy.
func Diff[E comparable](x, y []E) []Result[[]E] {
	return Default[E]{}.Diff(x, y)
}

// DiffFunc compares x and y using eq to compare elements. The result is minimal, like for [LCS].
//
// Note that this function has generally worse performance than [Diff] for inputs with many
// differences.
func DiffFunc[E any](x, y []E, eq func(a, b E) bool) []Result[[]E] {
	rx, ry := align.DiffFunc(x, y, eq)
	return Coalesce(x, y, sides(rx, ry))
}

func diff[E comparable](x, y []E, mode config.Mode) []Result[[]E] {
	rx, ry := align.Diff(x, y, mode, false)
	return Coalesce(x, y, sides(rx, ry))
}

// patch reconstructs the other input from in, which must be the from side of d.
func patch[E comparable](in []E, d []Result[[]E], from Side) []E {
	n := 0
	for _, r := range d {
		if from == Left {
			n += len(r.Right)
		} else {
			n += len(r.Left)
		}
	}
	out := make([]E, 0, n)
	for _, r := range d {
		consumed, produced := r.Left, r.Right
		if from == Right {
			consumed, produced = produced, consumed
		}
		if r.Side != from && r.Side != Both {
			// Only present on the other side.
			out = append(out, produced...)
			continue
		}
		if len(consumed) > len(in) || !slices.Equal(in[:len(consumed)], consumed) {
			panic("diffable: diff doesn't match input")
		}
		in = in[len(consumed):]
		if r.Side == Both {
			out = append(out, produced...)
		}
	}
	if len(in) != 0 {
		panic("diffable: diff doesn't match input")
	}
	return out
}
