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

package align

import "math"

// myers implements the linear space variant of Myers' algorithm from "An O(ND) Difference
// Algorithm and Its Variations" (section 4b) together with the TOO_EXPENSIVE heuristic by Paul
// Eggert and a GOOD_DIAGONAL heuristic similar to the one used in GNU diff.
//
// The algorithm searches for a shortest path through the edit graph of x and y. A horizontal
// step deletes an element of x, a vertical step inserts an element of y, and a diagonal step is a
// match. Diagonals are numbered k = s - t. Instead of searching the whole graph, the search runs
// forwards from the top left corner and backwards from the bottom right corner at the same time
// until both searches meet on a diagonal, the middle snake. The problem is then split at the
// middle snake and both halves are solved recursively.
type myers[T any] struct {
	x, y []T
	eq   func(a, b T) bool

	// v-arrays for forwards and backwards iteration respectively. The furthest reaching endpoint of
	// a path on diagonal k is stored as its s-coordinate in v[v0+k] (t = s - k).
	vf, vb []int
	v0     int

	// Cost above which the TOO_EXPENSIVE heuristic accepts a non-optimal split.
	costLimit int

	// Mapping from positions in x and y to positions in the result vectors.
	xidx, yidx []int

	// Result vectors.
	rx, ry []bool
}

func (m *myers[T]) init(x, y []T, eq func(a, b T) bool) {
	// k ranges from -len(y) to len(x), plus one border element on each side.
	vlen := len(x) + len(y) + 3
	buf := make([]int, 2*vlen)

	m.x, m.y = x, y
	m.eq = eq
	m.vf = buf[:vlen]
	m.vb = buf[vlen:]
	m.v0 = len(y) + 1

	// The cost limit is approximately the square root of the number of diagonals.
	costLimit := 1
	for i := len(x) + len(y); i != 0; i >>= 2 {
		costLimit <<= 1
	}
	m.costLimit = max(minCostLimit, costLimit)

	if m.xidx == nil || m.yidx == nil {
		idx := make([]int, max(len(x), len(y)))
		for i := range idx {
			idx[i] = i
		}
		m.xidx = idx[:len(x)]
		m.yidx = idx[:len(y)]
	}
}

// compare finds a path from (smin, tmin) to (smax, tmax) and marks all deletions and insertions on
// that path in the result vectors. The path is a shortest path if optimal is set.
func (m *myers[T]) compare(smin, smax, tmin, tmax int, optimal bool) {
	// split requires inputs without a common prefix or suffix.
	for smin < smax && tmin < tmax && m.eq(m.x[smin], m.y[tmin]) {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && m.eq(m.x[smax-1], m.y[tmax-1]) {
		smax--
		tmax--
	}

	switch {
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			m.ry[m.yidx[t]] = true
		}
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			m.rx[m.xidx[s]] = true
		}
	default:
		// The middle snake (s0, t0) to (s1, t1) divides the problem into two smaller rectangles
		// that are solved independently.
		s0, s1, t0, t1, opt0, opt1 := m.split(smin, smax, tmin, tmax, optimal)
		m.compare(smin, s0, tmin, t0, opt0)
		m.compare(s1, smax, t1, tmax, opt1)
	}
}

// split returns the endpoints of a, possibly empty, sequence of matches in the middle of a path
// from (smin, tmin) to (smax, tmax). The two flags tell whether the rectangles before and after
// the snake need to be solved optimally.
//
// x[smin:smax] and y[tmin:tmax] must be non-empty and must not have a common prefix or suffix.
func (m *myers[T]) split(smin, smax, tmin, tmax int, optimal bool) (s0, s1, t0, t1 int, opt0, opt1 bool) {
	N, M := smax-smin, tmax-tmin
	x, y, eq := m.x, m.y, m.eq
	vf, vb := m.vf, m.vb
	v0 := m.v0

	kmin, kmax := smin-tmax, smax-tmin

	// The forward search starts on diagonal fmid, the backward search on bmid. All diagonals use
	// the same numbering, that way there's no conversion necessary when checking for overlaps.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// The length of a shortest edit script is odd iff N-M is odd (Corollary 1). The forward search
	// checks for overlaps if it's odd, the backward search if it's even.
	odd := (N-M)%2 != 0

	// Without a common prefix or suffix, there's no 0-path and the 0-snakes are empty.
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax

	// A path with d = ⌈(N+M)/2⌉ is guaranteed to exist (Lemma 3), the loop always terminates.
	for d := 1; ; d++ {
		longestDiag := 0

		// Restrict k to diagonals inside of the edit graph. The border elements are initialized so
		// that the k-loop below doesn't need special handling for them.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0

			// Extend the furthest reaching (d-1)-path on diagonal k+1 with an insertion or the one
			// on diagonal k-1 with a deletion, whichever gets further. Deletions win ties.
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			s0, t0 := s, t
			for s < smax && t < tmax && eq(x[s], y[t]) {
				s++
				t++
			}
			longestDiag = max(longestDiag, s-s0)
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return s0, s, t0, t, true, true
			}
		}

		// Backward search, mirroring the forward search.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			s0, t0 := s, t
			for s > smin && t > tmin && eq(x[s-1], y[t-1]) {
				s--
				t--
			}
			longestDiag = max(longestDiag, s0-s)
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[k0] {
				return s, s0, t, t0, true, true
			}
		}

		if optimal {
			continue
		}

		// Heuristic (GOOD_DIAGONAL): Once the search got expensive, accept a long enough snake that
		// made good progress towards one of the corners.
		if longestDiag >= goodDiagMinLen && d >= goodDiagCostLimit {
			if s0, s1, t0, t1, opt0, opt1, ok := m.goodDiagonal(d, smin, smax, tmin, tmax, fmin, fmax, bmin, bmax, fmid, bmid); ok {
				return s0, s1, t0, t1, opt0, opt1
			}
		}

		// Heuristic (TOO_EXPENSIVE): Stop searching for an optimal path and use the snake of the
		// path that made the most progress.
		if d >= m.costLimit {
			return m.tooExpensive(smin, smax, tmin, tmax, fmin, fmax, bmin, bmax)
		}
	}
}

// forwardSnake returns the snake that ends in the furthest reaching point (s, t) on diagonal k of
// the forward search. The snake is the sequence of matches after the last deletion or insertion.
func (m *myers[T]) forwardSnake(k int) (s0, t0, s, t int) {
	k0 := k + m.v0
	s = m.vf[k0]
	t = s - k
	var pk int
	if m.vf[k0-1] < m.vf[k0+1] {
		pk = k + 1
	} else {
		pk = k - 1
	}
	ps := m.vf[pk+m.v0]
	pt := ps - pk
	n := min(s-ps, t-pt)
	return s - n, t - n, s, t
}

// backwardSnake is the mirror image of forwardSnake for the backward search.
func (m *myers[T]) backwardSnake(k int) (s, t, s1, t1 int) {
	k0 := k + m.v0
	s = m.vb[k0]
	t = s - k
	var pk int
	if m.vb[k0-1] < m.vb[k0+1] {
		pk = k - 1
	} else {
		pk = k + 1
	}
	ps := m.vb[pk+m.v0]
	pt := ps - pk
	n := min(ps-s, pt-t)
	return s, t, s + n, t + n
}

func (m *myers[T]) goodDiagonal(d, smin, smax, tmin, tmax, fmin, fmax, bmin, bmax, fmid, bmid int) (s0, s1, t0, t1 int, opt0, opt1, ok bool) {
	best := 0
	for k := fmin; k <= fmax; k += 2 {
		ss0, tt0, s, t := m.forwardSnake(k)
		if s < smin || smax <= s || t < tmin || tmax <= t {
			continue
		}
		v := (s - smin) + (t - tmin) - max(fmid-d, d-fmid)
		if v <= goodDiagMagic*d || v < best {
			continue
		}
		if s-ss0 >= goodDiagMinLen {
			best = v
			s0, s1, t0, t1 = ss0, s, tt0, t
			opt0, opt1, ok = true, false, true
		}
	}
	for k := bmin; k <= bmax; k += 2 {
		s, t, ss1, tt1 := m.backwardSnake(k)
		if s < smin || smax <= s || t < tmin || tmax <= t {
			continue
		}
		v := (smax - s) + (tmax - t) - max(bmid-d, d-bmid)
		if v <= goodDiagMagic*d || v < best {
			continue
		}
		if ss1-s >= goodDiagMinLen {
			best = v
			s0, s1, t0, t1 = s, ss1, t, tt1
			opt0, opt1, ok = false, true, true
		}
	}
	return
}

func (m *myers[T]) tooExpensive(smin, smax, tmin, tmax, fmin, fmax, bmin, bmax int) (s0, s1, t0, t1 int, opt0, opt1 bool) {
	vf, vb, v0 := m.vf, m.vb, m.v0

	// Furthest reaching forward path that maximizes s+t.
	fbest, fbestk := math.MinInt, 0
	for k := fmin; k <= fmax; k += 2 {
		s := vf[k+v0]
		t := s - k
		if smin <= s && s < smax && tmin <= t && t < tmax && fbest < s+t {
			fbest = s + t
			fbestk = k
		}
	}

	// Furthest reaching backward path that minimizes s+t.
	bbest, bbestk := math.MaxInt, 0
	for k := bmin; k <= bmax; k += 2 {
		s := vb[k+v0]
		t := s - k
		if smin <= s && s < smax && tmin <= t && t < tmax && s+t < bbest {
			bbest = s + t
			bbestk = k
		}
	}

	switch {
	case fbest != math.MinInt && (smax+tmax)-bbest < fbest-(smin+tmin):
		s0, t0, s1, t1 := m.forwardSnake(fbestk)
		return s0, s1, t0, t1, true, false
	case bbest != math.MaxInt:
		s0, t0, s1, t1 := m.backwardSnake(bbestk)
		return s0, s1, t0, t1, false, true
	default:
		panic("no best path found")
	}
}
