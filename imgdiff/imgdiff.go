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

// Package imgdiff compares images pixel by pixel.
//
// Images are represented as a [Buffer], a grid of pixels stored row by row. Every pixel consists
// of a fixed number of subpixels, determined by the buffer's [Layout]. Images of different sizes
// can be compared, the result always has the size of the larger input in each dimension. Pixels
// outside of one input are treated as if all their subpixels, including alpha, are zero.
//
// For layouts without an alpha channel, all pixels inside of an input are treated as fully opaque.
//
// Both inputs must have the same layout. Comparing buffers with different layouts panics.
package imgdiff

import "fmt"

// Subpixel is the numeric type of a single channel value.
type Subpixel interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Layout describes the channels of a pixel. The alpha channel, if present, is always the last
// channel.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Layout
type Layout int

const (
	Luma  Layout = iota // Single gray channel
	LumaA               // Gray and alpha
	RGB                 // Red, green, and blue
	RGBA                // Red, green, blue, and alpha
)

// Channels returns the number of subpixels per pixel.
func (l Layout) Channels() int {
	switch l {
	case Luma:
		return 1
	case LumaA:
		return 2
	case RGB:
		return 3
	case RGBA:
		return 4
	default:
		panic(fmt.Sprintf("imgdiff: invalid layout %v", l))
	}
}

// HasAlpha reports whether the layout has an alpha channel.
func (l Layout) HasAlpha() bool {
	return l == LumaA || l == RGBA
}

// colors returns the number of non-alpha channels.
func (l Layout) colors() int {
	if l.HasAlpha() {
		return l.Channels() - 1
	}
	return l.Channels()
}

// Buffer is an image stored as subpixels. The pixel at (x, y) starts at index
// (y*Width + x) * Layout.Channels() in Pix.
type Buffer[S Subpixel] struct {
	Layout        Layout
	Width, Height int
	Pix           []S
}

// NewBuffer returns a buffer of the given size with all subpixels set to zero.
func NewBuffer[S Subpixel](layout Layout, width, height int) *Buffer[S] {
	return &Buffer[S]{
		Layout: layout,
		Width:  width,
		Height: height,
		Pix:    make([]S, width*height*layout.Channels()),
	}
}

// At returns the subpixels of the pixel at (x, y). The result refers to the buffer, modifying it
// modifies the buffer. At returns nil if (x, y) is outside of the buffer.
func (b *Buffer[S]) At(x, y int) []S {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return nil
	}
	n := b.Layout.Channels()
	i := (y*b.Width + x) * n
	return b.Pix[i : i+n : i+n]
}

// DiffItem returns b itself.
func (b *Buffer[S]) DiffItem() *Buffer[S] { return b }

func (b *Buffer[S]) validate() {
	if b.Width < 0 || b.Height < 0 || len(b.Pix) != b.Width*b.Height*b.Layout.Channels() {
		panic(fmt.Sprintf("imgdiff: invalid %dx%d %v buffer with %d subpixels", b.Width, b.Height, b.Layout, len(b.Pix)))
	}
}

func checkLayouts[S Subpixel](x, y *Buffer[S]) {
	x.validate()
	y.validate()
	if x.Layout != y.Layout {
		panic(fmt.Sprintf("imgdiff: layouts differ: %v != %v", x.Layout, y.Layout))
	}
}
