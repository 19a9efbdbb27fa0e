// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the riskpulse CLI.
const (
	ExitOK            = 0 // Success.
	ExitInvalidArgs   = 1 // Invalid flags, config or filter values.
	ExitRenderFailure = 2 // Rendering or writing output failed.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitRenderFailure:
			msg = "riskpulse: failed to write output"
		default:
			msg = "riskpulse: invalid arguments"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
