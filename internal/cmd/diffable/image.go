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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"znkr.io/diffable"
	"znkr.io/diffable/imgdiff"
)

type imageAlgorithm = diffable.Algorithm[*imgdiff.Buffer[uint8], *imgdiff.Buffer[uint8]]

func (a *app) imageCmd() *cobra.Command {
	algo := newChoice("redgreen", map[string]imageAlgorithm{
		"redgreen": imgdiff.RedGreen[uint8]{},
		"colorsub": imgdiff.ColorSub[uint8]{},
		"heatmap":  imgdiff.Heatmap[uint8]{},
	})
	var output string
	cmd := &cobra.Command{
		Use:   "image OLD NEW",
		Short: "Compare two images pixel by pixel and write the result as PNG",
		Long: `Compare two images pixel by pixel and write the result as PNG.

Inputs can be PNG, GIF, or JPEG images. Use "-" as output to write to stdout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.decode(cmd, args[0])
			if err != nil {
				return err
			}
			y, err := a.decode(cmd, args[1])
			if err != nil {
				return err
			}

			d := diffable.Compare(x, y, algo.Value())
			a.log.Debug("compared images", zap.Stringer("algo", algo), zap.Int("width", d.Width), zap.Int("height", d.Height))

			if output == "-" {
				return encode(cmd.OutOrStdout(), d)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			err = encode(f, d)
			return errors.Join(err, f.Close())
		},
	}
	cmd.Flags().Var(algo, "algo", "diff strategy")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.MarkFlagRequired("output")
	return cmd
}

func (a *app) decode(cmd *cobra.Command, name string) (*imgdiff.Buffer[uint8], error) {
	b, err := readInput(cmd, name)
	if err != nil {
		return nil, err
	}
	img, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	a.log.Debug("decoded image", zap.String("name", name), zap.String("format", format), zap.Stringer("bounds", img.Bounds()))
	return imgdiff.FromImage(img), nil
}

func encode(w io.Writer, b *imgdiff.Buffer[uint8]) error {
	if err := png.Encode(w, imgdiff.ToImage(b)); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
