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

// Package unixpatch applies unified diffs with the patch(1) command line tool. It is used to check
// that unified diffs are understood by other tools.
package unixpatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrNotFound is returned if patch(1) can't be found in PATH.
var ErrNotFound = errors.New("patch command not found")

// Apply applies the unified diff d to orig and returns the result. The diff must not contain
// file headers.
func Apply(ctx context.Context, orig, d string) (string, error) {
	// patch doesn't create an output file for an empty diff.
	if d == "" {
		return orig, nil
	}

	bin, err := exec.LookPath("patch")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	dir, err := os.MkdirTemp("", "unixpatch-*")
	if err != nil {
		return "", fmt.Errorf("creating temporary directory: %w", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "orig")
	out := filepath.Join(dir, "out")
	if err := os.WriteFile(in, []byte(orig), 0o644); err != nil {
		return "", fmt.Errorf("writing input: %w", err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--unified", "--silent", "--force", "--output", out, in)
	cmd.Stdin = bytes.NewBufferString(d)
	cmd.Stdout = &stderr
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %v: %w\n%s", cmd.Args, err, stderr.Bytes())
	}

	b, err := os.ReadFile(out)
	if err != nil {
		return "", fmt.Errorf("reading output: %w", err)
	}
	return string(b), nil
}
