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

// Side tells which of the two inputs a [Result] belongs to.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Side
type Side int

const (
	Left  Side = iota // Only present in the left input
	Both              // Present in both inputs
	Right             // Only present in the right input
)

// Result is a single unit of a diff.
//
//   - For Left, Left contains the content only present in the left input and Right is unset.
//   - For Right, Right contains the content only present in the right input and Left is unset.
//   - For Both, Left and Right contain the content from the respective input. They are considered
//     equal by the strategy that produced the result, but they are not necessarily identical.
type Result[T any] struct {
	Side        Side
	Left, Right T
}
