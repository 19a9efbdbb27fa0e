// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// versionCmd prints the riskpulse version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version of the riskpulse binary.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "riskpulse %s\n", resolveVersion(Version, readBuildVersion()))
	},
}

// resolveVersion prefers the ldflags version, then the module version from
// build info. Non-semver values are reported as development builds.
func resolveVersion(ldflags, build string) string {
	for _, v := range []string{ldflags, build} {
		if semver.IsValid(v) {
			// Canonical drops build metadata; keep it.
			return semver.Canonical(v) + semver.Build(v)
		}
	}
	if ldflags == "" {
		ldflags = "dev"
	}
	return ldflags + " (development build)"
}

func readBuildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return info.Main.Version
}
