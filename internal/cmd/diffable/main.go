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

// diffable compares files from the command line. It's a development tool to look at the results
// of the diff strategies on real inputs.
//
// Usage:
//
//	diffable text [--unified] [--context N] [--color auto|always|never] OLD NEW
//	diffable bytes [--algo lcs|myers|patience] OLD NEW
//	diffable image [--algo redgreen|colorsub|heatmap] -o OUT.png OLD NEW
//	diffable git PATH OLD-FILE OLD-HEX OLD-MODE NEW-FILE NEW-HEX NEW-MODE
//
// The git command implements the GIT_EXTERNAL_DIFF protocol:
//
//	GIT_EXTERNAL_DIFF="diffable git" git diff
package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(newLogger).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

type app struct {
	verbose   bool
	newLogger func(verbose bool) (*zap.Logger, error)
	log       *zap.Logger
}

func newRootCmd(newLogger func(verbose bool) (*zap.Logger, error)) *cobra.Command {
	a := &app{
		newLogger: newLogger,
		log:       zap.NewNop(),
	}
	root := &cobra.Command{
		Use:          "diffable",
		Short:        "Compare files with the diffable strategies",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(a.textCmd(), a.bytesCmd(), a.imageCmd(), a.gitCmd())
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// readInput reads the named file, "-" reads from stdin.
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return b, nil
}

// choice is a flag that accepts one of a fixed set of values.
type choice[T any] struct {
	name    string
	choices map[string]T
}

var _ pflag.Value = (*choice[int])(nil)

func newChoice[T any](def string, choices map[string]T) *choice[T] {
	if _, ok := choices[def]; !ok {
		panic("never reached")
	}
	return &choice[T]{name: def, choices: choices}
}

func (c *choice[T]) String() string { return c.name }

func (c *choice[T]) Set(s string) error {
	if _, ok := c.choices[s]; !ok {
		return fmt.Errorf("must be one of %s", strings.Join(c.names(), ", "))
	}
	c.name = s
	return nil
}

func (c *choice[T]) Type() string { return strings.Join(c.names(), "|") }

func (c *choice[T]) Value() T { return c.choices[c.name] }

func (c *choice[T]) names() []string { return slices.Sorted(maps.Keys(c.choices)) }

type colorMode int

const (
	colorAuto colorMode = iota
	colorAlways
	colorNever
)

func newColorFlag() *choice[colorMode] {
	return newChoice("auto", map[string]colorMode{
		"auto":   colorAuto,
		"always": colorAlways,
		"never":  colorNever,
	})
}

// useColors reports whether output written to w should use terminal colors.
func useColors(mode colorMode, w io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	case colorAuto:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	default:
		panic("never reached")
	}
}
