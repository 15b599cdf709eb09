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

// Package setdiff compares unordered collections of unique elements.
package setdiff

import (
	"iter"
	"maps"

	"znkr.io/diffable"
)

// Set is an unordered collection of unique elements.
type Set[E comparable] map[E]struct{}

// New returns a set containing elems.
func New[E comparable](elems ...E) Set[E] {
	s := make(Set[E], len(elems))
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Collect returns a set containing all elements of seq.
func Collect[E comparable](seq iter.Seq[E]) Set[E] {
	s := make(Set[E])
	for e := range seq {
		s.Add(e)
	}
	return s
}

// Add adds elem to s.
func (s Set[E]) Add(elem E) {
	s[elem] = struct{}{}
}

// Has reports whether elem is in s.
func (s Set[E]) Has(elem E) bool {
	_, ok := s[elem]
	return ok
}

// All returns an iterator over the elements of s in no particular order.
func (s Set[E]) All() iter.Seq[E] {
	return maps.Keys(s)
}

// DiffItem returns s itself.
func (s Set[E]) DiffItem() Set[E] { return s }

// Membership compares sets by membership. Every element of either set is reported exactly once:
// As [diffable.Left] if it's only in the left set, as [diffable.Right] if it's only in the right
// set, and as [diffable.Both] if it's in both sets.
//
// A diff can be applied, but since sets have no order, it only records which elements are kept,
// removed, and added.
type Membership[E comparable] struct{}

func (Membership[E]) Diff(x, y Set[E]) Set[diffable.Result[E]] {
	out := make(Set[diffable.Result[E]], max(len(x), len(y)))
	for e := range x {
		out.Add(diffable.Result[E]{Side: diffable.Left, Left: e})
	}
	for e := range y {
		left := diffable.Result[E]{Side: diffable.Left, Left: e}
		if out.Has(left) {
			delete(out, left)
			out.Add(diffable.Result[E]{Side: diffable.Both, Left: e, Right: e})
		} else {
			out.Add(diffable.Result[E]{Side: diffable.Right, Right: e})
		}
	}
	return out
}

// Apply returns the union of all elements reported as Both or Right. It panics if d doesn't
// describe x.
func (Membership[E]) Apply(x Set[E], d Set[diffable.Result[E]]) Set[E] {
	return patch(x, d, diffable.Left)
}

// Revert returns the union of all elements reported as Both or Left. It panics if d doesn't
// describe y.
func (Membership[E]) Revert(y Set[E], d Set[diffable.Result[E]]) Set[E] {
	return patch(y, d, diffable.Right)
}

// Default is the strategy used by [Diff]. It's currently [Membership].
type Default[E comparable] struct{}

func (Default[E]) Diff(x, y Set[E]) Set[diffable.Result[E]] { return Membership[E]{}.Diff(x, y) }

func (Default[E]) Apply(x Set[E], d Set[diffable.Result[E]]) Set[E] {
	return Membership[E]{}.Apply(x, d)
}

func (Default[E]) Revert(y Set[E], d Set[diffable.Result[E]]) Set[E] {
	return Membership[E]{}.Revert(y, d)
}

// Diff compares x and y using the [Default] strategy.
func Diff[E comparable](x, y Set[E]) Set[diffable.Result[E]] {
	return Default[E]{}.Diff(x, y)
}

func patch[E comparable](in Set[E], d Set[diffable.Result[E]], from diffable.Side) Set[E] {
	out := make(Set[E], len(d))
	seen := 0
	for r := range d {
		consumed, produced := r.Left, r.Right
		if from == diffable.Right {
			consumed, produced = produced, consumed
		}
		if r.Side == from || r.Side == diffable.Both {
			if !in.Has(consumed) {
				panic("setdiff: diff doesn't match input")
			}
			seen++
		}
		if r.Side != from {
			out.Add(produced)
		}
	}
	if seen != len(in) {
		panic("setdiff: diff doesn't match input")
	}
	return out
}
