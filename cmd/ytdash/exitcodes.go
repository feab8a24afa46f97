// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the ytdash CLI.
const (
	ExitOK            = 0 // Command succeeded.
	ExitInvalidArgs   = 1 // Invalid arguments, flags or config.
	ExitAssetFailure  = 2 // The data directory is unusable or has bad files.
	ExitServerFailure = 3 // The HTTP or MCP server stopped with an error.
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
		case ExitAssetFailure:
			msg = "ytdash: data directory has problems"
		case ExitServerFailure:
			msg = "ytdash: server failed"
		default:
			msg = "ytdash: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
