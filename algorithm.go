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

// Algorithm is a diff strategy that compares two values of type T and describes the differences
// as a D.
//
// Strategies are stateless. They are selected by type, not configured: LCS[int]{} and
// imgdiff.RedGreen[uint8]{} are both ready to use.
type Algorithm[T, D any] interface {
	Diff(x, y T) D
}

// PatchAlgorithm is an [Algorithm] whose diffs are lossless: Either input can be reconstructed
// from the other input and the diff.
//
// Apply and Revert panic if d was not computed for the given input.
type PatchAlgorithm[T, D any] interface {
	Algorithm[T, D]

	// Apply reconstructs y from x and d = Diff(x, y).
	Apply(x T, d D) T

	// Revert reconstructs x from y and d = Diff(x, y).
	Revert(y T, d D) T
}

// Diffable is implemented by types that can be compared with [Compare]. DiffItem returns the value
// that's handed to a strategy. This may be the value itself or a different representation of it.
type Diffable[I any] interface {
	DiffItem() I
}

// Compare compares x and y using algo.
func Compare[I, D any](x, y Diffable[I], algo Algorithm[I, D]) D {
	return algo.Diff(x.DiffItem(), y.DiffItem())
}
