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
	"math"
	"reflect"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Minimum number of pixels before rows are processed in parallel.
var parallelThreshold = 1 << 16

// channel describes the value range of a subpixel type.
type channel[S Subpixel] struct {
	lo, hi S // lowest and highest value of an integer type, 0 and 1 for floats
	float  bool
}

func channelOf[S Subpixel]() channel[S] {
	var c channel[S]
	switch reflect.TypeFor[S]().Kind() {
	case reflect.Uint8:
		c.hi = fromUint[S](math.MaxUint8)
	case reflect.Uint16:
		c.hi = fromUint[S](math.MaxUint16)
	case reflect.Uint32:
		c.hi = fromUint[S](math.MaxUint32)
	case reflect.Uint64:
		c.hi = fromUint[S](math.MaxUint64)
	case reflect.Int8:
		c.lo, c.hi = fromInt[S](math.MinInt8), fromInt[S](math.MaxInt8)
	case reflect.Int16:
		c.lo, c.hi = fromInt[S](math.MinInt16), fromInt[S](math.MaxInt16)
	case reflect.Int32:
		c.lo, c.hi = fromInt[S](math.MinInt32), fromInt[S](math.MaxInt32)
	case reflect.Int64:
		c.lo, c.hi = fromInt[S](math.MinInt64), fromInt[S](math.MaxInt64)
	case reflect.Float32, reflect.Float64:
		one := 1.0
		c.hi = S(one)
		c.float = true
	default:
		panic("never reached")
	}
	return c
}

// fromUint and fromInt convert through a variable, constant conversions to a type parameter
// require the constant to be representable by every type in its type set.
func fromUint[S Subpixel](v uint64) S { return S(v) }

func fromInt[S Subpixel](v int64) S { return S(v) }

// satSub returns a-b clamped to the range of S.
func (c channel[S]) satSub(a, b S) S {
	d := a - b
	switch {
	case c.float:
		return d
	case b > 0 && d > a:
		return c.lo
	case b < 0 && d < a:
		return c.hi
	default:
		return d
	}
}

// absDiff returns |a-b|, saturated to the range of S.
func (c channel[S]) absDiff(a, b S) S {
	return max(c.satSub(a, b), c.satSub(b, a))
}

// alpha returns the alpha value of p. Pixels without an alpha channel are opaque, missing pixels
// (nil) are fully transparent.
func (c channel[S]) alpha(l Layout, p []S) S {
	switch {
	case p == nil:
		return 0
	case !l.HasAlpha():
		return c.hi
	default:
		return p[len(p)-1]
	}
}

// pixelFunc computes the pixel dst from the pixels px and py of the left and right input and
// their alpha values ax and ay.
type pixelFunc[S Subpixel] func(dst, px, py []S, ax, ay S)

// mapPixels calls fn for every pixel of the union of x and y and returns the resulting buffer.
// A pixel outside of one of the inputs is passed as all zero, including its alpha value.
func mapPixels[S Subpixel](x, y *Buffer[S], fn pixelFunc[S]) *Buffer[S] {
	checkLayouts(x, y)
	c := channelOf[S]()
	l := x.Layout
	out := NewBuffer[S](l, max(x.Width, y.Width), max(x.Height, y.Height))
	forEachBand(out.Width, out.Height, func(y0, y1 int) {
		zero := make([]S, l.Channels())
		for row := y0; row < y1; row++ {
			for col := range out.Width {
				px, py := x.At(col, row), y.At(col, row)
				ax, ay := c.alpha(l, px), c.alpha(l, py)
				if px == nil {
					px = zero
				}
				if py == nil {
					py = zero
				}
				fn(out.At(col, row), px, py, ax, ay)
			}
		}
	})
	return out
}

// forEachBand splits the rows [0, height) into bands and calls fn for each band. Large images
// are processed in parallel, one band per CPU. All calls have returned when forEachBand returns.
func forEachBand(width, height int, fn func(y0, y1 int)) {
	if width*height < parallelThreshold || height < 2 {
		fn(0, height)
		return
	}

	n := min(runtime.GOMAXPROCS(0), height)
	band := (height + n - 1) / n

	var g errgroup.Group
	g.SetLimit(n)
	for y0 := 0; y0 < height; y0 += band {
		g.Go(func() error {
			fn(y0, min(y0+band, height))
			return nil
		})
	}
	g.Wait() // never fails
}
