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

package setdiff_test

import (
	"fmt"
	"slices"
	"strings"

	"znkr.io/diffable"
	"znkr.io/diffable/setdiff"
)

func ExampleDiff() {
	x := setdiff.New("apple", "banana", "cherry")
	y := setdiff.New("banana", "cherry", "date")

	var lines []string
	for r := range setdiff.Diff(x, y) {
		switch r.Side {
		case diffable.Left:
			lines = append(lines, "-"+r.Left)
		case diffable.Both:
			lines = append(lines, " "+r.Left)
		case diffable.Right:
			lines = append(lines, "+"+r.Right)
		}
	}
	// Sets have no order, sort by element.
	slices.SortFunc(lines, func(a, b string) int { return strings.Compare(a[1:], b[1:]) })
	for _, l := range lines {
		fmt.Println(l)
	}
	// Output:
	// -apple
	//  banana
	//  cherry
	// +date
}
