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
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"znkr.io/diffable"
	"znkr.io/diffable/format"
)

type byteAlgorithm = diffable.Algorithm[[]byte, []diffable.Result[[]byte]]

func (a *app) bytesCmd() *cobra.Command {
	algo := newChoice("lcs", map[string]byteAlgorithm{
		"lcs":      diffable.LCS[byte]{},
		"myers":    diffable.Myers[byte]{},
		"patience": diffable.Patience[byte]{},
	})
	color := newColorFlag()
	cmd := &cobra.Command{
		Use:   "bytes OLD NEW",
		Short: "Compare two files byte by byte",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			y, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}

			d := diffable.Compare(diffable.Slice[byte](x), diffable.Slice[byte](y), algo.Value())
			a.log.Debug("compared bytes", zap.Stringer("algo", algo), zap.Int("runs", len(d)))

			out := cmd.OutOrStdout()
			var opts []format.Option
			if useColors(color.Value(), out) {
				opts = append(opts, format.TerminalColors())
			}
			if err := format.Bytes(out, d, opts...); err != nil {
				return fmt.Errorf("writing diff: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().Var(algo, "algo", "diff strategy")
	cmd.Flags().Var(color, "color", "use terminal colors")
	return cmd
}
