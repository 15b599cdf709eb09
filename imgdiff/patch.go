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

import (
	"fmt"
	"reflect"
)

// Delta is the numeric type of a per channel difference stored in a [Patch].
type Delta interface {
	~int16 | ~int32 | ~int64 | ~float64
}

// Patch is the result of [PixelPatch]. It stores the difference right - left for every channel
// of every pixel in the union of both input sizes.
type Patch[D Delta] struct {
	Layout Layout

	// Size of the union of both inputs. Delta is stored row by row with this size.
	Width, Height int

	// Sizes of the inputs, used to restore the original size when applying the patch.
	LeftWidth, LeftHeight   int
	RightWidth, RightHeight int

	Delta []D
}

// At returns the channel differences of the pixel at (x, y) or nil if (x, y) is outside of the
// patch.
func (p *Patch[D]) At(x, y int) []D {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return nil
	}
	n := p.Layout.Channels()
	i := (y*p.Width + x) * n
	return p.Delta[i : i+n : i+n]
}

// PixelPatch is a reversible diff. It computes the difference right - left of every channel as a
// value of the wider type D. The patch can be applied to the left image to obtain the right one
// and reverted on the right image to obtain the left one.
//
// D must be wide enough to hold the difference of any two values of S:
//
//	uint8, int8     int16 or wider
//	uint16, int16   int32 or wider
//	uint32, int32   int64
//	uint64, int64   int64, differences wrap around and are reversible modulo 2^64
//	float32         float64, exact unless the values differ in magnitude by more than 2^29
//	float64         float64, exact only if the difference is representable as a float64
//
// Integer patches are lossless. Float patches are rounded like any float64 subtraction: for
// float64 channels of very different magnitude, e.g. 1 and 1e-300, Apply returns left + delta as
// computed in float64, which may differ from right.
//
// Using a narrower delta type panics. The aliases [PatchU8] to [PatchF64] name the narrowest
// valid choice for every subpixel type.
type PixelPatch[S Subpixel, D Delta] struct{}

// Narrowest valid [PixelPatch] per subpixel type.
type (
	PatchU8  = PixelPatch[uint8, int16]
	PatchU16 = PixelPatch[uint16, int32]
	PatchU32 = PixelPatch[uint32, int64]
	PatchU64 = PixelPatch[uint64, int64]
	PatchI8  = PixelPatch[int8, int16]
	PatchI16 = PixelPatch[int16, int32]
	PatchI32 = PixelPatch[int32, int64]
	PatchI64 = PixelPatch[int64, int64]
	PatchF32 = PixelPatch[float32, float64]
	PatchF64 = PixelPatch[float64, float64]
)

// Diff returns the patch that turns x into y.
func (PixelPatch[S, D]) Diff(x, y *Buffer[S]) *Patch[D] {
	checkDelta[S, D]()
	checkLayouts(x, y)

	p := &Patch[D]{
		Layout:      x.Layout,
		Width:       max(x.Width, y.Width),
		Height:      max(x.Height, y.Height),
		LeftWidth:   x.Width,
		LeftHeight:  x.Height,
		RightWidth:  y.Width,
		RightHeight: y.Height,
	}
	p.Delta = make([]D, p.Width*p.Height*p.Layout.Channels())

	float := channelOf[S]().float
	forEachBand(p.Width, p.Height, func(y0, y1 int) {
		zero := make([]S, p.Layout.Channels())
		for row := y0; row < y1; row++ {
			for col := range p.Width {
				px, py := x.At(col, row), y.At(col, row)
				if px == nil {
					px = zero
				}
				if py == nil {
					py = zero
				}
				dst := p.At(col, row)
				for i := range dst {
					if float {
						dst[i] = D(float64(py[i]) - float64(px[i]))
					} else {
						dst[i] = D(int64(py[i]) - int64(px[i]))
					}
				}
			}
		}
	})
	return p
}

// Apply returns the right image of the diff p given its left image x.
func (PixelPatch[S, D]) Apply(x *Buffer[S], p *Patch[D]) *Buffer[S] {
	return patch(x, p, fromLeft)
}

// Revert returns the left image of the diff p given its right image y.
func (PixelPatch[S, D]) Revert(y *Buffer[S], p *Patch[D]) *Buffer[S] {
	return patch(y, p, fromRight)
}

type side int

const (
	fromLeft side = iota
	fromRight
)

func patch[S Subpixel, D Delta](in *Buffer[S], p *Patch[D], from side) *Buffer[S] {
	checkDelta[S, D]()
	in.validate()

	inw, inh, outw, outh, sign := p.LeftWidth, p.LeftHeight, p.RightWidth, p.RightHeight, int64(1)
	if from == fromRight {
		inw, inh, outw, outh, sign = outw, outh, inw, inh, -1
	}
	if in.Layout != p.Layout || in.Width != inw || in.Height != inh || len(p.Delta) != p.Width*p.Height*p.Layout.Channels() {
		panic("imgdiff: patch doesn't match input")
	}

	out := NewBuffer[S](p.Layout, outw, outh)
	float := channelOf[S]().float
	forEachBand(outw, outh, func(y0, y1 int) {
		zero := make([]S, p.Layout.Channels())
		for row := y0; row < y1; row++ {
			for col := range outw {
				pin := in.At(col, row)
				if pin == nil {
					pin = zero
				}
				delta := p.At(col, row)
				dst := out.At(col, row)
				for i := range dst {
					if float {
						dst[i] = S(float64(pin[i]) + float64(sign)*float64(delta[i]))
					} else {
						dst[i] = S(int64(pin[i]) + sign*int64(delta[i]))
					}
				}
			}
		}
	})
	return out
}

// deltaBits returns the minimal width of an integer delta for a subpixel kind, or 0 if the
// delta must be a float64.
func deltaBits(k reflect.Kind) int {
	switch k {
	case reflect.Uint8, reflect.Int8:
		return 16
	case reflect.Uint16, reflect.Int16:
		return 32
	case reflect.Uint32, reflect.Int32, reflect.Uint64, reflect.Int64:
		return 64
	case reflect.Float32, reflect.Float64:
		return 0
	default:
		panic("never reached")
	}
}

func checkDelta[S Subpixel, D Delta]() {
	st, dt := reflect.TypeFor[S](), reflect.TypeFor[D]()
	bits := deltaBits(st.Kind())
	var ok bool
	if bits == 0 {
		ok = dt.Kind() == reflect.Float64
	} else {
		ok = dt.Kind() != reflect.Float64 && dt.Bits() >= bits
	}
	if !ok {
		panic(fmt.Sprintf("imgdiff: delta type %v can't hold differences of %v", dt, st))
	}
}
