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

package imgdiff

import "slices"

// Diff compares x and y using [Default].
func Diff[S Subpixel](x, y *Buffer[S]) *Buffer[S] {
	return Default[S]{}.Diff(x, y)
}

// ColorSub computes the absolute difference of every color channel. The alpha channel of the
// result is the larger of both input alphas, any visible pixel stays visible.
//
// Integer channels saturate, the difference never wraps around.
type ColorSub[S Subpixel] struct{}

// Diff returns the per channel difference of x and y.
func (ColorSub[S]) Diff(x, y *Buffer[S]) *Buffer[S] {
	c := channelOf[S]()
	l := x.Layout
	ncolors := l.colors()
	return mapPixels(x, y, func(dst, px, py []S, ax, ay S) {
		for i := range ncolors {
			dst[i] = c.absDiff(px[i], py[i])
		}
		if l.HasAlpha() {
			dst[ncolors] = max(ax, ay)
		}
	})
}

// Heatmap marks every changed pixel. Pixels with equal colors and pixels that are fully
// transparent in both inputs are copied from x.
//
// A changed pixel is set to the maximum value in its first channel and to zero in all other
// color channels. The result only tells whether a pixel changed, not by how much.
type Heatmap[S Subpixel] struct{}

// Diff returns x with all changed pixels marked.
func (Heatmap[S]) Diff(x, y *Buffer[S]) *Buffer[S] {
	c := channelOf[S]()
	l := x.Layout
	ncolors := l.colors()
	return mapPixels(x, y, func(dst, px, py []S, ax, ay S) {
		if slices.Equal(px[:ncolors], py[:ncolors]) || (ax == 0 && ay == 0) {
			copy(dst, px)
			return
		}
		clear(dst[:ncolors])
		dst[0] = c.hi
		if l.HasAlpha() {
			dst[ncolors] = max(ax, ay)
		}
	})
}

// RedGreen compares alpha channels first and colors second:
//
//   - A pixel that gained opacity in y is marked green.
//   - A pixel that lost opacity in y is marked red.
//   - A visible pixel that changed its color is marked blue.
//
// All other pixels are copied from x. A marked pixel is fully opaque and has its marker channel
// set to the maximum value and all other color channels set to zero. Images without color
// channels use the maximum luma value as marker.
type RedGreen[S Subpixel] struct{}

// Diff returns x with all changed pixels marked.
func (RedGreen[S]) Diff(x, y *Buffer[S]) *Buffer[S] {
	const (
		red = iota
		green
		blue
	)
	c := channelOf[S]()
	l := x.Layout
	ncolors := l.colors()
	mark := func(dst []S, ch int) {
		clear(dst)
		dst[min(ch, ncolors-1)] = c.hi
		if l.HasAlpha() {
			dst[ncolors] = c.hi
		}
	}
	return mapPixels(x, y, func(dst, px, py []S, ax, ay S) {
		switch {
		case ax < ay:
			mark(dst, green)
		case ax > ay:
			mark(dst, red)
		case ax == 0 || slices.Equal(px[:ncolors], py[:ncolors]):
			copy(dst, px)
		default:
			mark(dst, blue)
		}
	})
}

// Default is the default image strategy. It currently uses [RedGreen].
type Default[S Subpixel] struct{}

// Diff forwards to [RedGreen].
func (Default[S]) Diff(x, y *Buffer[S]) *Buffer[S] {
	return RedGreen[S]{}.Diff(x, y)
}
