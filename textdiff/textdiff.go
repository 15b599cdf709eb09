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

// Package textdiff compares text line by line.
//
// Lines keep their line terminator in all results. For [LCS] and its relatives, lines are
// considered equal if they only differ in the terminator ("\n" or "\r\n") or in a missing newline
// at the end of the input. [Unified] compares lines exactly, its output is valid input for
// patch(1).
package textdiff

import (
	"strings"

	"znkr.io/diffable"
	"znkr.io/diffable/internal/align"
	"znkr.io/diffable/internal/config"
	"znkr.io/diffable/internal/lines"
	"znkr.io/diffable/internal/rvecs"
)

// Text is a [diffable.Diffable] string that's compared line by line.
type Text string

// DiffItem returns t as a plain string.
func (t Text) DiffItem() string { return string(t) }

// LCS compares text line by line and reports one result per line. The result is a minimal line
// diff.
//
// For a Both result, Left and Right can differ in their line terminators.
type LCS struct{}

func (LCS) Diff(x, y string) []diffable.Result[string] {
	xlines, _ := lines.Split(x)
	ylines, _ := lines.Split(y)
	return perLine(xlines, ylines)
}

func (LCS) Apply(x string, d []diffable.Result[string]) string { return patch(x, d, diffable.Left) }

func (LCS) Revert(y string, d []diffable.Result[string]) string { return patch(y, d, diffable.Right) }

// Default is the strategy used by [Lines]. It's currently [LCS].
type Default struct{}

func (Default) Diff(x, y string) []diffable.Result[string] { return LCS{}.Diff(x, y) }

func (Default) Apply(x string, d []diffable.Result[string]) string { return LCS{}.Apply(x, d) }

func (Default) Revert(y string, d []diffable.Result[string]) string { return LCS{}.Revert(y, d) }

// Lines compares x and y line by line using the [Default] strategy.
func Lines(x, y string) []diffable.Result[string] {
	return Default{}.Diff(x, y)
}

// Runs compares x and y line by line like [Lines], but groups consecutive lines with the same
// [diffable.Side] into a single result.
//
// All results refer to sub-strings of x and y.
func Runs(x, y string) []diffable.Result[[]string] {
	xlines, _ := lines.Split(x)
	ylines, _ := lines.Split(y)
	d := perLine(xlines, ylines)
	return diffable.Coalesce(xlines, ylines, func(yield func(diffable.Side) bool) {
		for _, r := range d {
			if !yield(r.Side) {
				return
			}
		}
	})
}

func perLine(xlines, ylines []string) []diffable.Result[string] {
	rx, ry := align.Diff(lines.Keys(xlines), lines.Keys(ylines), config.ModeMinimal, false)
	out := make([]diffable.Result[string], 0, max(len(xlines), len(ylines)))
	s, t := 0, 0
	for op := range rvecs.Ops(rx, ry) {
		switch op {
		case rvecs.Delete:
			out = append(out, diffable.Result[string]{Side: diffable.Left, Left: xlines[s]})
			s++
		case rvecs.Insert:
			out = append(out, diffable.Result[string]{Side: diffable.Right, Right: ylines[t]})
			t++
		case rvecs.Match:
			out = append(out, diffable.Result[string]{Side: diffable.Both, Left: xlines[s], Right: ylines[t]})
			s++
			t++
		default:
			panic("never reached")
		}
	}
	return out
}

// patch reconstructs the other input from in, which must be the from side of d.
func patch(in string, d []diffable.Result[string], from diffable.Side) string {
	var sb strings.Builder
	sb.Grow(len(in))
	for _, r := range d {
		consumed, produced := r.Left, r.Right
		if from == diffable.Right {
			consumed, produced = produced, consumed
		}
		if r.Side != from && r.Side != diffable.Both {
			sb.WriteString(produced)
			continue
		}
		rest, ok := strings.CutPrefix(in, consumed)
		if !ok {
			panic("textdiff: diff doesn't match input")
		}
		in = rest
		if r.Side == diffable.Both {
			sb.WriteString(produced)
		}
	}
	if in != "" {
		panic("textdiff: diff doesn't match input")
	}
	return sb.String()
}
