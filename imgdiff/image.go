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
	"image"
	"image/color"
	"image/draw"
)

// FromImage converts img to an [RGBA] buffer with non-premultiplied alpha. The buffer's origin is
// the minimum point of img's bounds. If img is an [*image.NRGBA], the buffer may share memory with
// it.
func FromImage(img image.Image) *Buffer[uint8] {
	r := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != 4*r.Dx() {
		nrgba = image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, r.Min, draw.Src)
	}
	return &Buffer[uint8]{
		Layout: RGBA,
		Width:  r.Dx(),
		Height: r.Dy(),
		Pix:    nrgba.Pix[:4*r.Dx()*r.Dy()],
	}
}

// ToImage converts b to an image. The result shares no memory with b.
func ToImage(b *Buffer[uint8]) image.Image {
	b.validate()
	r := image.Rect(0, 0, b.Width, b.Height)
	switch b.Layout {
	case Luma:
		img := image.NewGray(r)
		copy(img.Pix, b.Pix)
		return img
	case RGBA:
		img := image.NewNRGBA(r)
		copy(img.Pix, b.Pix)
		return img
	case LumaA, RGB:
		img := image.NewNRGBA(r)
		for y := range b.Height {
			for x := range b.Width {
				img.SetNRGBA(x, y, nrgba(b.Layout, b.At(x, y)))
			}
		}
		return img
	default:
		panic(fmt.Sprintf("imgdiff: invalid layout %v", b.Layout))
	}
}

func nrgba(l Layout, p []uint8) color.NRGBA {
	switch l {
	case LumaA:
		return color.NRGBA{p[0], p[0], p[0], p[1]}
	case RGB:
		return color.NRGBA{p[0], p[1], p[2], 0xff}
	default:
		panic("never reached")
	}
}
