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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// textdiff.Option and format.Option. Diff strategies themselves are never configured, they are
// selected by type.
package config

// Mode describes the mode of the alignment algorithm.
type Mode int

const (
	// Find a minimal diff irrespective of the cost. A minimal diff is equivalent to a longest
	// common subsequence of both inputs.
	ModeMinimal Mode = iota

	// Limit the cost for large inputs with many differences by applying heuristics that reduce the
	// time complexity at the cost of non-minimal diffs.
	ModeDefault

	// Only align elements that appear exactly once in both inputs.
	ModeFast
)

// ColorConfig contains the SGR escape sequences used for rendering. An empty sequence disables
// coloring for that kind of line.
type ColorConfig struct {
	HunkHeader string
	Match      string
	Delete     string
	Insert     string
}

// Config collects all configurable parameters for rendering functions in this module.
type Config struct {
	// Context is the number of matches to include as a prefix and postfix for hunks.
	Context int

	// Colors is nil unless terminal colors have been requested.
	Colors *ColorConfig
}

// Default is the default configuration.
var Default = Config{
	Context: 3,
}

// DefaultColors is the color configuration used if terminal colors are requested without
// overrides.
var DefaultColors = ColorConfig{
	HunkHeader: "\033[36m",
	Delete:     "\033[31m",
	Insert:     "\033[32m",
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Context Flag = 1 << iota
	TerminalColors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "textdiff.Context"
	case TerminalColors:
		return "format.TerminalColors"
	default:
		panic("never reached")
	}
}
