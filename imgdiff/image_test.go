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
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromImage(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	nrgba.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 40})
	nrgba.SetNRGBA(1, 0, color.NRGBA{50, 60, 70, 255})

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 1))
	rgba.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	rgba.Set(1, 0, color.NRGBA{0, 0, 0, 0})

	gray := image.NewGray(image.Rect(3, 3, 4, 5))
	gray.SetGray(3, 3, color.Gray{7})
	gray.SetGray(3, 4, color.Gray{200})

	tests := []struct {
		name string
		img  image.Image
		want *Buffer[uint8]
	}{
		{
			name: "nrgba",
			img:  nrgba,
			want: buf[uint8](RGBA, 2, 1, 10, 20, 30, 40, 50, 60, 70, 255),
		},
		{
			name: "sub-image",
			img:  nrgba.SubImage(image.Rect(1, 0, 2, 1)),
			want: buf[uint8](RGBA, 1, 1, 50, 60, 70, 255),
		},
		{
			name: "rgba",
			img:  rgba,
			want: buf[uint8](RGBA, 2, 1, 255, 0, 0, 255, 0, 0, 0, 0),
		},
		{
			name: "gray-with-offset",
			img:  gray,
			want: buf[uint8](RGBA, 1, 2, 7, 7, 7, 255, 200, 200, 200, 255),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromImage(tt.img)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromImage(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestToImage(t *testing.T) {
	tests := []struct {
		name string
		in   *Buffer[uint8]
		want []color.NRGBA
	}{
		{
			name: "luma",
			in:   buf[uint8](Luma, 2, 1, 0, 128),
			want: []color.NRGBA{{0, 0, 0, 255}, {128, 128, 128, 255}},
		},
		{
			name: "luma-alpha",
			in:   buf[uint8](LumaA, 2, 1, 0, 0, 128, 255),
			want: []color.NRGBA{{0, 0, 0, 0}, {128, 128, 128, 255}},
		},
		{
			name: "rgb",
			in:   buf[uint8](RGB, 1, 2, 1, 2, 3, 4, 5, 6),
			want: []color.NRGBA{{1, 2, 3, 255}, {4, 5, 6, 255}},
		},
		{
			name: "rgba",
			in:   buf[uint8](RGBA, 2, 1, 1, 2, 3, 4, 5, 6, 7, 8),
			want: []color.NRGBA{{1, 2, 3, 4}, {5, 6, 7, 8}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := ToImage(tt.in)
			if got, want := img.Bounds(), image.Rect(0, 0, tt.in.Width, tt.in.Height); got != want {
				t.Fatalf("ToImage(...).Bounds() = %v, want %v", got, want)
			}
			var got []color.NRGBA
			for y := range tt.in.Height {
				for x := range tt.in.Width {
					got = append(got, color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA))
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToImage(...) pixels differ [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestImageRoundTrip(t *testing.T) {
	b := buf[uint8](RGBA, 2, 2, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 255)
	got := FromImage(ToImage(b))
	if diff := cmp.Diff(b, got); diff != "" {
		t.Errorf("FromImage(ToImage(b)) differs [-want,+got]:\n%s", diff)
	}
}
