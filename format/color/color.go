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

// Package color configures the colors used by [format.TerminalColors].
//
// Colors are SGR parameters, see https://en.wikipedia.org/wiki/ANSI_escape_code#SGR for the list
// of supported values. Calling an option without parameters disables coloring for that kind of
// line.
//
// [format.TerminalColors]: https://pkg.go.dev/znkr.io/diffable/format#TerminalColors
package color

import (
	"strconv"
	"strings"

	"znkr.io/diffable/internal/config"
)

// A Option makes it possible to configure custom colors in [format.TerminalColors].
//
// [format.TerminalColors]: https://pkg.go.dev/znkr.io/diffable/format#TerminalColors
type Option func(*config.ColorConfig)

// HunkHeaders colors hunk headers, the "@@ ... @@" part of a unified diff.
func HunkHeaders(params ...int) Option {
	code := sgr(params)
	return func(cc *config.ColorConfig) {
		cc.HunkHeader = code
	}
}

// Matches colors lines present in both inputs.
func Matches(params ...int) Option {
	code := sgr(params)
	return func(cc *config.ColorConfig) {
		cc.Match = code
	}
}

// Deletes colors lines only present in the left input.
func Deletes(params ...int) Option {
	code := sgr(params)
	return func(cc *config.ColorConfig) {
		cc.Delete = code
	}
}

// Inserts colors lines only present in the right input.
func Inserts(params ...int) Option {
	code := sgr(params)
	return func(cc *config.ColorConfig) {
		cc.Insert = code
	}
}

func sgr(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('m')
	return sb.String()
}
