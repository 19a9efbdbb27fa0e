// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/riskpulse/internal/testable"
)

// testNow pins the default end date for every command test.
var testNow = time.Date(2025, 6, 30, 15, 4, 5, 0, time.UTC)

// resetFlags restores every command's flags and flag variables to their
// defaults so tests sharing rootCmd do not contaminate each other.
func resetFlags() {
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, c := range []*cobra.Command{
		reportCmd, generateCmd, sweepCmd, serveCmd, mcpServeCmd,
		configGetCmd, configSetCmd, configListCmd,
	} {
		reset(c.Flags())
	}
}

// setupCmdTest isolates a command test: a fresh working directory, an empty
// global config directory, a pinned clock and default flags.
func setupCmdTest(t *testing.T) string {
	t.Helper()
	resetFlags()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	origNow := nowFunc
	nowFunc = func() time.Time { return testNow }
	origFS := cmdFS
	t.Cleanup(func() {
		nowFunc = origNow
		cmdFS = origFS
	})
	return dir
}

// newTestCmd redirects rootCmd's output and sets args. rootCmd is reused
// because subcommands are wired to it in init.
func newTestCmd(args ...string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(append([]string{"--quiet", "--no-color"}, args...))
	return rootCmd, stdout, stderr
}

// runCmd executes args and returns stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd, stdout, _ := newTestCmd(args...)
	err := cmd.Execute()
	return stdout.String(), err
}

// requireExitCode asserts err carries the given exit code.
func requireExitCode(t *testing.T, err error, code int) *exitCodeError {
	t.Helper()
	require.Error(t, err)
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece), "expected exitCodeError, got %T: %v", err, err)
	assert.Equal(t, code, ece.ExitCode())
	return ece
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// failingCreateFS returns a file system whose Create always fails.
func failingCreateFS() *testable.MockFileSystem {
	return &testable.MockFileSystem{
		CreateFn: func(string) (*os.File, error) {
			return nil, errors.New("disk full")
		},
	}
}
