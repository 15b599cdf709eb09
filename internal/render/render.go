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

// Package render writes diff lines with optional terminal colors.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"znkr.io/diffable/internal/config"
)

// Kind is the kind of a rendered line.
type Kind int

const (
	Match Kind = iota
	Delete
	Insert
	HunkHeader
)

const reset = "\033[0m"

const missingNewline = "\\ No newline at end of file\n"

// Printer collects rendered lines.
type Printer struct {
	bytes.Buffer

	// Colors is nil if no colors are requested.
	Colors *config.ColorConfig
}

// Line writes a single line with the prefix for kind. A trailing newline in text is optional, it's
// added if it's missing.
func (p *Printer) Line(kind Kind, text string) {
	text = strings.TrimSuffix(text, "\n")
	code := p.code(kind)
	if code != "" {
		p.WriteString(code)
	}
	switch kind {
	case Match:
		p.WriteByte(' ')
	case Delete:
		p.WriteByte('-')
	case Insert:
		p.WriteByte('+')
	case HunkHeader:
		// no prefix
	default:
		panic("never reached")
	}
	p.WriteString(text)
	if code != "" {
		p.WriteString(reset)
	}
	p.WriteByte('\n')
}

// Hunk writes a unified diff hunk header. Positions are 0-based.
func (p *Printer) Hunk(s0, s1, t0, t1 int) {
	p.Line(HunkHeader, fmt.Sprintf("@@ -%d,%d +%d,%d @@", s0+1, s1-s0, t0+1, t1-t0))
}

// MissingNewline writes the marker for a last line without a newline.
func (p *Printer) MissingNewline() {
	p.WriteString(missingNewline)
}

func (p *Printer) code(kind Kind) string {
	if p.Colors == nil {
		return ""
	}
	switch kind {
	case Match:
		return p.Colors.Match
	case Delete:
		return p.Colors.Delete
	case Insert:
		return p.Colors.Insert
	case HunkHeader:
		return p.Colors.HunkHeader
	default:
		panic("never reached")
	}
}
