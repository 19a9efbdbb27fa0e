// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/davetashner/riskpulse/internal/testable"
)

// cmdFS is the file system implementation used by CLI commands.
// Override in tests with a testable.MockFileSystem.
var cmdFS testable.FileSystem = testable.DefaultFS

// nopClose is the close func for stdout.
func nopClose() error { return nil }

// openOutput returns the command's stdout when path is empty, otherwise a
// newly created file at path. Callers must call the returned close func.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), nopClose, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := cmdFS.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, exitError(ExitRenderFailure, "riskpulse: cannot create output directory %q (%v)", dir, err)
		}
	}
	f, err := cmdFS.Create(path)
	if err != nil {
		return nil, nil, exitError(ExitRenderFailure, "riskpulse: cannot create output file %q (%v)", path, err)
	}
	return f, f.Close, nil
}
