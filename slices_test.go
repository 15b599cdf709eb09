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
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []int
		want []Result[[]int]
	}{
		{
			name: "empty",
			want: nil,
		},
		{
			name: "x-empty",
			y:    []int{1, 2},
			want: []Result[[]int]{
				{Side: Right, Right: []int{1, 2}},
			},
		},
		{
			name: "y-empty",
			x:    []int{1, 2},
			want: []Result[[]int]{
				{Side: Left, Left: []int{1, 2}},
			},
		},
		{
			name: "identical",
			x:    []int{1, 2, 3},
			y:    []int{1, 2, 3},
			want: []Result[[]int]{
				{Side: Both, Left: []int{1, 2, 3}, Right: []int{1, 2, 3}},
			},
		},
		{
			name: "disjoint",
			x:    []int{1, 2},
			y:    []int{3, 4, 5},
			want: []Result[[]int]{
				{Side: Left, Left: []int{1, 2}},
				{Side: Right, Right: []int{3, 4, 5}},
			},
		},
		{
			name: "moved-element",
			x:    []int{1, 2, 3, 4, 5, 6, 7, 8},
			y:    []int{1, 3, 4, 5, 2, 6, 7},
			want: []Result[[]int]{
				{Side: Both, Left: []int{1}, Right: []int{1}},
				{Side: Left, Left: []int{2}},
				{Side: Both, Left: []int{3, 4, 5}, Right: []int{3, 4, 5}},
				{Side: Right, Right: []int{2}},
				{Side: Both, Left: []int{6, 7}, Right: []int{6, 7}},
				{Side: Left, Left: []int{8}},
			},
		},
		{
			name: "prefix-and-suffix",
			x:    []int{1, 2, 3, 4, 5},
			y:    []int{0, 1, 2, 3, 4, 5, 6, 7, 8},
			want: []Result[[]int]{
				{Side: Right, Right: []int{0}},
				{Side: Both, Left: []int{1, 2, 3, 4, 5}, Right: []int{1, 2, 3, 4, 5}},
				{Side: Right, Right: []int{6, 7, 8}},
			},
		},
		{
			name: "replacement",
			x:    []int{1, 2, 3},
			y:    []int{1, 4, 3},
			want: []Result[[]int]{
				{Side: Both, Left: []int{1}, Right: []int{1}},
				{Side: Left, Left: []int{2}},
				{Side: Right, Right: []int{4}},
				{Side: Both, Left: []int{3}, Right: []int{3}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Run("diff", func(t *testing.T) {
				got := Diff(tt.x, tt.y)
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("Diff(...) differs [-want,+got]:\n%s", diff)
				}
			})
			t.Run("diff_func", func(t *testing.T) {
				got := DiffFunc(tt.x, tt.y, func(a, b int) bool { return a == b })
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("DiffFunc(...) differs [-want,+got]:\n%s", diff)
				}
			})
			t.Run("myers", func(t *testing.T) {
				got := Myers[int]{}.Diff(tt.x, tt.y)
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("Myers.Diff(...) differs [-want,+got]:\n%s", diff)
				}
			})
			t.Run("compare", func(t *testing.T) {
				got := Compare(Slice[int](tt.x), Slice[int](tt.y), LCS[int]{})
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("Compare(...) differs [-want,+got]:\n%s", diff)
				}
			})
		})
	}
}

func TestDiffFuncCustomEquality(t *testing.T) {
	x := []string{"Foo", "bar", "BAZ"}
	y := []string{"foo", "qux", "baz"}
	got := DiffFunc(x, y, strings.EqualFold)
	want := []Result[[]string]{
		{Side: Both, Left: []string{"Foo"}, Right: []string{"foo"}},
		{Side: Left, Left: []string{"bar"}},
		{Side: Right, Right: []string{"qux"}},
		{Side: Both, Left: []string{"BAZ"}, Right: []string{"baz"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DiffFunc(...) differs [-want,+got]:\n%s", diff)
	}
}

// strategies lists all patch-capable slice strategies.
var strategies = []struct {
	name string
	algo PatchAlgorithm[[]int, []Result[[]int]]
}{
	{"lcs", LCS[int]{}},
	{"myers", Myers[int]{}},
	{"patience", Patience[int]{}},
	{"default", Default[int]{}},
}

func TestProperties(t *testing.T) {
	for i := range 100 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		rng := rand.New(rand.NewChaCha8(seed))
		x := randomSlice(rng, rng.IntN(40), 6)
		y := randomSlice(rng, rng.IntN(40), 6)

		for _, s := range strategies {
			d := s.algo.Diff(x, y)

			var gotX, gotY []int
			for j, r := range d {
				if j > 0 && d[j-1].Side == r.Side {
					t.Errorf("%s: adjacent results with side %v for x=%v, y=%v", s.name, r.Side, x, y)
				}
				switch r.Side {
				case Left:
					if len(r.Left) == 0 || r.Right != nil {
						t.Errorf("%s: malformed result %v", s.name, r)
					}
				case Right:
					if len(r.Right) == 0 || r.Left != nil {
						t.Errorf("%s: malformed result %v", s.name, r)
					}
				case Both:
					if diff := cmp.Diff(r.Left, r.Right); diff != "" {
						t.Errorf("%s: Both result with different sides [-left,+right]:\n%s", s.name, diff)
					}
				}
				gotX = append(gotX, r.Left...)
				gotY = append(gotY, r.Right...)
			}
			if diff := cmp.Diff(x, gotX, cmpEmpty); diff != "" {
				t.Errorf("%s: left sides don't reconstruct x [-want,+got]:\n%s", s.name, diff)
			}
			if diff := cmp.Diff(y, gotY, cmpEmpty); diff != "" {
				t.Errorf("%s: right sides don't reconstruct y [-want,+got]:\n%s", s.name, diff)
			}

			if diff := cmp.Diff(y, s.algo.Apply(x, d), cmpEmpty); diff != "" {
				t.Errorf("%s: Apply(x, d) differs [-want,+got]:\n%s", s.name, diff)
			}
			if diff := cmp.Diff(x, s.algo.Revert(y, d), cmpEmpty); diff != "" {
				t.Errorf("%s: Revert(y, d) differs [-want,+got]:\n%s", s.name, diff)
			}
		}

		// LCS is minimal, the number of matched elements is the length of a longest common
		// subsequence.
		matched := 0
		for _, r := range (LCS[int]{}).Diff(x, y) {
			if r.Side == Both {
				matched += len(r.Left)
			}
		}
		if want := lcsLen(x, y); matched != want {
			t.Errorf("LCS matched %d elements for x=%v, y=%v, want %d", matched, x, y, want)
		}
	}
}

func TestApplyMismatch(t *testing.T) {
	d := Diff([]int{1, 2, 3}, []int{1, 4, 3})
	tests := []struct {
		name string
		fn   func()
	}{
		{"apply-wrong-input", func() { LCS[int]{}.Apply([]int{1, 5, 3}, d) }},
		{"apply-short-input", func() { LCS[int]{}.Apply([]int{1, 2}, d) }},
		{"apply-long-input", func() { LCS[int]{}.Apply([]int{1, 2, 3, 4}, d) }},
		{"revert-wrong-input", func() { LCS[int]{}.Revert([]int{1, 2, 3}, d) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected a panic")
				}
			}()
			tt.fn()
		})
	}
}

func BenchmarkDiff(b *testing.B) {
	params := []struct {
		N, D int // Length of the inputs and number of changes
	}{
		{100, 10},
		{1000, 10},
		{1000, 100},
		{10000, 100},
	}
	for _, p := range params {
		name := fmt.Sprintf("N=%d_D=%d", p.N, p.D)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
			x := randomSlice(rng, p.N, 100)
			y := make([]int, len(x))
			copy(y, x)
			for range p.D {
				y[rng.IntN(len(y))] = -1
			}
			for b.Loop() {
				_ = Diff(x, y)
			}
		})
	}
}

// cmpEmpty treats nil and empty slices as equal.
var cmpEmpty = cmp.FilterValues(func(x, y []int) bool { return len(x) == 0 && len(y) == 0 }, cmp.Ignore())

func randomSlice(rng *rand.Rand, n, alphabet int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(alphabet)
	}
	return out
}

func lcsLen(x, y []int) int {
	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)
	for s := range x {
		for t := range y {
			if x[s] == y[t] {
				cur[t+1] = prev[t] + 1
			} else {
				cur[t+1] = max(prev[t+1], cur[t])
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(y)]
}
