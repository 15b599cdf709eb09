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

// Package diffable compares pairs of values and describes where they agree and where they
// diverge.
//
// A comparison is always performed by an [Algorithm], a stateless strategy that's selected by
// type:
//
//	runs := diffable.LCS[int]{}.Diff(x, y)
//
// Strategies for slices return a sequence of [Result] runs, see [Coalesce]. Other packages in this
// module provide strategies for text ([znkr.io/diffable/textdiff]), sets
// ([znkr.io/diffable/setdiff]), and images ([znkr.io/diffable/imgdiff]). Results can be rendered
// with [znkr.io/diffable/format].
//
// Types that know how to hand themselves to a strategy implement [Diffable] and can be compared
// with [Compare].
//
// Results of sequence strategies refer to the inputs without copying. They are only valid as long
// as the inputs are not modified.
//
// [znkr.io/diffable/textdiff]: https://pkg.go.dev/znkr.io/diffable/textdiff
// [znkr.io/diffable/setdiff]: https://pkg.go.dev/znkr.io/diffable/setdiff
// [znkr.io/diffable/imgdiff]: https://pkg.go.dev/znkr.io/diffable/imgdiff
// [znkr.io/diffable/format]: https://pkg.go.dev/znkr.io/diffable/format
package diffable
