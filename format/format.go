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

// Package format renders diff results as text.
//
// Every result is rendered as a line with a prefix that tells which input it belongs to: "-" for
// [diffable.Left], " " for [diffable.Both], and "+" for [diffable.Right]. For [diffable.Both], the
// left side is rendered.
package format

import (
	"fmt"
	"io"
	"strings"

	"znkr.io/diffable"
	"znkr.io/diffable/format/color"
	"znkr.io/diffable/internal/config"
	"znkr.io/diffable/internal/render"
)

// Option configures rendering.
type Option = config.Option

// TerminalColors enables colored output with ANSI escape sequences. By default, deleted lines are
// red, inserted lines green, and hunk headers cyan. Use the options in package color to change
// the colors.
func TerminalColors(opts ...color.Option) Option {
	return func(cfg *config.Config) config.Flag {
		cc := config.DefaultColors
		for _, opt := range opts {
			opt(&cc)
		}
		cfg.Colors = &cc
		return config.TerminalColors
	}
}

// Text writes one line per result. A missing newline at the end of a line is added.
//
// The following options are supported: [TerminalColors]
func Text(w io.Writer, d []diffable.Result[string], opts ...Option) error {
	return write(w, d, opts, func(s string) string { return s })
}

// Slice writes one line per result with all elements separated by a single space. Elements are
// formatted with %v.
//
// The following options are supported: [TerminalColors]
func Slice[E any](w io.Writer, d []diffable.Result[[]E], opts ...Option) error {
	return write(w, d, opts, func(s []E) string { return join(s, "%v") })
}

// Bytes writes one line per result with all bytes in hexadecimal notation separated by a single
// space.
//
// The following options are supported: [TerminalColors]
func Bytes(w io.Writer, d []diffable.Result[[]byte], opts ...Option) error {
	return write(w, d, opts, func(s []byte) string { return join(s, "%02X") })
}

func write[T any](w io.Writer, d []diffable.Result[T], opts []Option, str func(T) string) error {
	cfg := config.FromOptions(opts, config.TerminalColors)
	p := render.Printer{Colors: cfg.Colors}
	for _, r := range d {
		switch r.Side {
		case diffable.Left:
			p.Line(render.Delete, str(r.Left))
		case diffable.Both:
			p.Line(render.Match, str(r.Left))
		case diffable.Right:
			p.Line(render.Insert, str(r.Right))
		default:
			panic(fmt.Sprintf("format: invalid side %v", r.Side))
		}
	}
	_, err := p.WriteTo(w)
	return err
}

func join[E any](s []E, verb string) string {
	var sb strings.Builder
	for i, e := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, verb, e)
	}
	return sb.String()
}
