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
	"znkr.io/diffable/textdiff"
)

func (a *app) gitCmd() *cobra.Command {
	var context int
	cmd := &cobra.Command{
		Use:   "git PATH OLD-FILE OLD-HEX OLD-MODE NEW-FILE NEW-HEX NEW-MODE",
		Short: "Write a unified diff in the format of git diff",
		Long: `Write a unified diff in the format of git diff.

This command implements the GIT_EXTERNAL_DIFF protocol and is meant to be called by git:

	GIT_EXTERNAL_DIFF="diffable git" git diff`,
		Args: cobra.MinimumNArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, oldFile, oldHex, newFile, newHex, newMode := args[0], args[1], args[2], args[4], args[5], args[6]
			a.log.Debug("git diff", zap.String("path", path), zap.String("old", oldFile), zap.String("new", newFile))

			x, err := readInput(cmd, oldFile)
			if err != nil {
				return err
			}
			y, err := readInput(cmd, newFile)
			if err != nil {
				return err
			}

			d := textdiff.Unified(string(x), string(y), textdiff.Context(context))
			if d == "" {
				return nil
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "diff --git a/%s b/%s\nindex %s..%s %s\n", path, path, abbrev(oldHex), abbrev(newHex), newMode); err != nil {
				return fmt.Errorf("writing diff: %w", err)
			}
			return writeUnified(out, "a/"+path, "b/"+path, d)
		},
	}
	cmd.Flags().IntVarP(&context, "context", "U", 3, "number of context lines")
	return cmd
}

// abbrev shortens an object name the way git does by default.
func abbrev(hex string) string {
	return hex[:min(len(hex), 7)]
}
