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
	"errors"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"znkr.io/diffable/format"
	"znkr.io/diffable/internal/unixpatch"
	"znkr.io/diffable/textdiff"
)

var errValidation = errors.New("unified diff doesn't reproduce the new file")

func (a *app) textCmd() *cobra.Command {
	var (
		unified  bool
		context  int
		validate bool
		color    = newColorFlag()
	)
	cmd := &cobra.Command{
		Use:   "text OLD NEW",
		Short: "Compare two files line by line",
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
			a.log.Debug("comparing text", zap.String("old", args[0]), zap.String("new", args[1]), zap.Int("old_bytes", len(x)), zap.Int("new_bytes", len(y)))

			if validate {
				if err := a.validate(cmd, string(x), string(y), context); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			var opts []format.Option
			if useColors(color.Value(), out) {
				opts = append(opts, format.TerminalColors())
			}
			if !unified {
				if err := format.Text(out, textdiff.Lines(string(x), string(y)), opts...); err != nil {
					return fmt.Errorf("writing diff: %w", err)
				}
				return nil
			}

			d := textdiff.Unified(string(x), string(y), append(opts, textdiff.Context(context))...)
			if d == "" {
				a.log.Debug("inputs are identical")
				return nil
			}
			return writeUnified(out, args[0], args[1], d)
		},
	}
	cmd.Flags().BoolVarP(&unified, "unified", "u", false, "write a unified diff")
	cmd.Flags().IntVarP(&context, "context", "U", 3, "number of context lines in a unified diff")
	cmd.Flags().BoolVar(&validate, "validate", false, "check that the unified diff applies with patch(1)")
	cmd.Flags().Var(color, "color", "use terminal colors")
	return cmd
}

// validate checks that the unified diff of x and y turns x into y when applied with patch(1).
func (a *app) validate(cmd *cobra.Command, x, y string, context int) error {
	d := textdiff.Unified(x, y, textdiff.Context(context))
	got, err := unixpatch.Apply(cmd.Context(), x, d)
	if err != nil {
		return fmt.Errorf("validating diff: %w", err)
	}
	if diff := cmp.Diff(y, got); diff != "" {
		a.log.Debug("validation failed", zap.String("diff", diff))
		return errValidation
	}
	a.log.Debug("validation succeeded")
	return nil
}

func writeUnified(w io.Writer, oldName, newName, d string) error {
	if _, err := fmt.Fprintf(w, "--- %s\n+++ %s\n%s", oldName, newName, d); err != nil {
		return fmt.Errorf("writing diff: %w", err)
	}
	return nil
}
