// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// The segments function is derived from Go's src/internal/diff/diff.go
// which has the following copyright and license:
//
// Copyright 2022 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google LLC nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

// Package align aligns two sequences and records which elements are only present in one of them.
//
// The result is returned as result vectors (see package rvecs). Every element that's not marked
// in the result vectors is part of a common subsequence of both inputs. With [config.ModeMinimal]
// that common subsequence is a longest common subsequence.
package align

import (
	"fmt"
	"sort"

	"znkr.io/diffable/internal/config"
	"znkr.io/diffable/internal/rvecs"
)

// Diff aligns x and y using the given mode.
func Diff[T comparable](x, y []T, mode config.Mode, forceAnchoring bool) (rx, ry []bool) {
	rx, ry = rvecs.Make(x, y)

	smin, smax, tmin, tmax := changeBounds(x, y, func(a, b T) bool { return a == b })
	if handleTrivialBounds(rx, ry, smin, smax, tmin, tmax) {
		return rx, ry
	}

	// Work on dense integer IDs instead of T from here on. Elements that only appear in one of the
	// inputs are marked right away and are not part of x0 and y0.
	p := preprocess(rx, ry, smin, smax, tmin, tmax, x, y)

	switch mode {
	case config.ModeMinimal:
		var m myers[int]
		m.xidx, m.yidx = p.xidx, p.yidx
		m.rx, m.ry = rx, ry
		m.init(p.x0, p.y0, intEq)
		m.compare(0, len(p.x0), 0, len(p.y0), true)

	case config.ModeDefault:
		alignDefault(rx, ry, p, forceAnchoring)

	case config.ModeFast:
		alignFast(rx, ry, p)

	default:
		panic(fmt.Sprintf("unknown mode: %v", mode))
	}

	return rx, ry
}

// DiffFunc aligns x and y using eq to compare elements. The alignment is always minimal.
//
// Note that this function has generally worse performance than [Diff] for inputs with many
// differences.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool) (rx, ry []bool) {
	rx, ry = rvecs.Make(x, y)

	smin, smax, tmin, tmax := changeBounds(x, y, eq)
	if handleTrivialBounds(rx, ry, smin, smax, tmin, tmax) {
		return rx, ry
	}

	var m myers[T]
	m.rx, m.ry = rx, ry
	m.init(x, y, eq)
	m.compare(smin, smax, tmin, tmax, true)
	return rx, ry
}

func intEq(a, b int) bool { return a == b }

// changeBounds returns the upper and lower bounds for the changed portion of the inputs.
func changeBounds[T any](x, y []T, eq func(a, b T) bool) (smin, smax, tmin, tmax int) {
	smax, tmax = len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}

	return
}

// handleTrivialBounds handles the cases where at least one side has no changes left. It returns
// true if nothing is left to do.
func handleTrivialBounds(rx, ry []bool, smin, smax, tmin, tmax int) bool {
	switch {
	case smin != smax && tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return true
	case smin == smax && tmin != tmax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return true
	case smin == smax && tmin == tmax:
		return true
	default:
		return false
	}
}

// reduced is the reduced problem created by preprocess.
type reduced struct {
	x0, y0     []int // IDs of the elements that appear in both x[smin:smax] and y[tmin:tmax]
	xidx, yidx []int // x0[s] corresponds to x[xidx[s]], y0[t] to y[yidx[t]]
	counts     []int // occurrences per ID: 0, 1, 2 (many) in x plus 0, 4, 8 (many) in y
	nanchors   int   // number of IDs that appear exactly once in x and once in y
}

// preprocess reduces the problem size:
//
//   - Every element in x[smin:smax] and y[tmin:tmax] gets a dense integer ID, comparisons are
//     cheaper on integers and the IDs can index a slice instead of a map.
//   - Elements that only appear in x (or y) are always deletions (or insertions). They are marked
//     immediately and dropped. In practice, large diffs mostly consist of such elements.
//   - Occurrences are counted per ID to find anchors, IDs that appear exactly once in both
//     inputs. x counts as 1 or 2 (many), y as 4 or 8 (many), so an anchor has a count of 1+4.
func preprocess[T comparable](rx, ry []bool, smin, smax, tmin, tmax int, x, y []T) reduced {
	var p reduced
	ids := make(map[T]int, smax-smin)
	buf := make([]int, 2*(smax-smin)+2*(tmax-tmin))
	p.x0, buf = buf[:0:smax-smin], buf[smax-smin:]
	p.xidx, buf = buf[:0:smax-smin], buf[smax-smin:]
	p.y0, buf = buf[:0:tmax-tmin], buf[tmax-tmin:]
	p.yidx = buf[:0:tmax-tmin]
	p.counts = make([]int, smax-smin)

	for _, e := range x[smin:smax] {
		id, ok := ids[e]
		if !ok {
			id = len(ids)
			ids[e] = id
		}
		if c := p.counts[id]; c < 2 {
			p.counts[id] = c + 1
		}
		p.x0 = append(p.x0, id)
	}
	for i, e := range y[tmin:tmax] {
		id, ok := ids[e]
		if !ok {
			ry[i+tmin] = true
			continue
		}
		if c := p.counts[id]; c < 8 {
			p.counts[id] = c + 4
		}
		p.yidx = append(p.yidx, i+tmin)
		p.y0 = append(p.y0, id)
	}

	// x0 is filtered in place, it's only ever shrinking.
	n := 0
	for j, id := range p.x0 {
		c := p.counts[id]
		if c <= 4 {
			rx[j+smin] = true
			continue
		}
		if c == 1+4 {
			p.nanchors++
		}
		p.xidx = append(p.xidx, j+smin)
		p.x0[n] = id
		n++
	}
	p.x0 = p.x0[:n]
	return p
}

func alignDefault(rx, ry []bool, p reduced, forceAnchoring bool) {
	var m myers[int]
	m.xidx, m.yidx = p.xidx, p.yidx
	m.rx, m.ry = rx, ry
	m.init(p.x0, p.y0, intEq)

	smin, smax, tmin, tmax := changeBounds(p.x0, p.y0, intEq)

	// Heuristic (ANCHORING): For large inputs, split the problem at a longest common subsequence
	// of the anchors and only run Myers' algorithm between them. This is a lot faster and produces
	// better diffs than the other heuristics.
	anchoring := p.nanchors > 0 && (smax-smin)+(tmax-tmin) > anchoringHeuristicMinInputLen
	if !anchoring && !forceAnchoring {
		m.compare(smin, smax, tmin, tmax, false)
		return
	}
	forEachGap(p, smin, smax, tmin, tmax, func(s0, s1, t0, t1 int) {
		m.compare(s0, s1, t0, t1, false)
	})
}

func alignFast(rx, ry []bool, p reduced) {
	smin, smax, tmin, tmax := changeBounds(p.x0, p.y0, intEq)
	forEachGap(p, smin, smax, tmin, tmax, func(s0, s1, t0, t1 int) {
		for s := s0; s < s1; s++ {
			rx[p.xidx[s]] = true
		}
		for t := t0; t < t1; t++ {
			ry[p.yidx[t]] = true
		}
	})
	// Everything before smin and after smax is a common prefix or suffix of x0 and y0.
}

// forEachGap calls fn for every gap between runs of matches around the anchors of p. Matches are
// extended from every anchor as far as possible in both directions.
func forEachGap(p reduced, smin, smax, tmin, tmax int, fn func(s0, s1, t0, t1 int)) {
	x0, y0 := p.x0, p.y0
	segs := segments(smin, smax, tmin, tmax, p.nanchors, p.counts, x0, y0)
	done := segs[0]
	for _, anchor := range segs[1:] {
		if anchor.s < done.s {
			// Already handled scanning forward from an earlier anchor.
			continue
		}

		start := anchor
		for start.s > done.s && start.t > done.t && x0[start.s-1] == y0[start.t-1] {
			start.s--
			start.t--
		}
		end := anchor
		for end.s < smax && end.t < tmax && x0[end.s] == y0[end.t] {
			end.s++
			end.t++
		}

		fn(done.s, start.s, done.t, start.t)

		if end.s >= smax && end.t >= tmax {
			break
		}
		done = end
	}
}

type pair struct{ s, t int }

// segments returns the pairs of indexes of the longest common subsequence of anchors in x and y
// with sentinels for the start and the end.
//
// The longest common subsequence algorithm is as described in Thomas G. Szymanski, “A Special Case
// of the Maximal Common Subsequence Problem,” Princeton TR #170 (January 1975), available at
// https://research.swtch.com/tgs170.pdf.
func segments(smin, smax, tmin, tmax int, nanchors int, counts []int, x, y []int) []pair {
	idx := make(map[int]int, nanchors)
	buf := make([]int, 3*nanchors)
	var xi, yi, inv []int
	xi, buf = buf[:0:nanchors], buf[nanchors:]
	yi, buf = buf[:0:nanchors], buf[nanchors:]
	inv = buf[:0:nanchors]

	// Gather the indices of anchors in x and y:
	//	xi[i] = increasing indexes of anchors in x.
	//	yi[i] = increasing indexes of anchors in y.
	//	inv[i] = index j such that x[xi[i]] = y[yi[j]].
	for i, e := range y[tmin:tmax] {
		if counts[e] == 1+4 {
			idx[e] = len(yi)
			yi = append(yi, tmin+i)
		}
	}
	for i, e := range x[smin:smax] {
		if counts[e] == 1+4 {
			xi = append(xi, smin+i)
			inv = append(inv, idx[e])
		}
	}

	// Apply Algorithm A from Szymanski's paper. In those terms, A = J = inv and B = [0, n).
	J := inv
	n := len(xi)
	T := make([]int, n)
	L := make([]int, n)
	for i := range T {
		T[i] = n + 1
	}
	for i := range n {
		k := sort.Search(n, func(k int) bool {
			return T[k] >= J[i]
		})
		T[k] = J[i]
		L[i] = k + 1
	}
	k := 0
	for _, v := range L {
		k = max(k, v)
	}
	anchors := make([]pair, 2+k)
	anchors[1+k] = pair{smax, tmax} // sentinel at end
	lastj := n
	for i := n - 1; i >= 0; i-- {
		if L[i] == k && J[i] < lastj {
			anchors[k] = pair{xi[i], yi[J[i]]}
			k--
			lastj = J[i]
		}
	}
	anchors[0] = pair{smin, tmin} // sentinel at start
	return anchors
}
