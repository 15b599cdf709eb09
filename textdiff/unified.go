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

package textdiff

import (
	"strings"

	"znkr.io/diffable/internal/align"
	"znkr.io/diffable/internal/config"
	"znkr.io/diffable/internal/lines"
	"znkr.io/diffable/internal/render"
	"znkr.io/diffable/internal/rvecs"
)

const missingNewline = "\n\\ No newline at end of file\n"

// Unified compares the lines in x and y and returns the changes necessary to convert from one to
// the other in unified format.
//
// Lines are compared exactly, including their terminator. If x and y are identical, the output is
// empty.
//
// The following options are supported: [Context], [format.TerminalColors]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
//
// [format.TerminalColors]: https://pkg.go.dev/znkr.io/diffable/format#TerminalColors
func Unified(x, y string, opts ...Option) string {
	cfg := config.FromOptions(opts, config.Context|config.TerminalColors)

	xlines := splitMarked(x)
	ylines := splitMarked(y)
	rx, ry := align.Diff(xlines, ylines, config.ModeDefault, false)

	p := render.Printer{Colors: cfg.Colors}
	for h := range rvecs.Hunks(rx, ry, cfg.Context) {
		p.Hunk(h.S0, h.S1, h.T0, h.T1)
		for s, t := h.S0, h.T0; s < h.S1 || t < h.T1; {
			for s < h.S1 && rx[s] {
				line(&p, render.Delete, xlines[s])
				s++
			}
			for t < h.T1 && ry[t] {
				line(&p, render.Insert, ylines[t])
				t++
			}
			for s < h.S1 && t < h.T1 && !rx[s] && !ry[t] {
				line(&p, render.Match, xlines[s])
				s++
				t++
			}
		}
	}
	return p.String()
}

// splitMarked splits s into lines. A last line without a newline gets the missing newline marker
// appended, that way it's never equal to the same line with a newline.
func splitMarked(s string) []string {
	out, mn := lines.Split(s)
	if mn >= 0 {
		out[mn] += missingNewline
	}
	return out
}

func line(p *render.Printer, kind render.Kind, text string) {
	if text, ok := strings.CutSuffix(text, missingNewline); ok {
		p.Line(kind, text)
		p.MissingNewline()
		return
	}
	p.Line(kind, text)
}
