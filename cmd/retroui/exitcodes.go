package main

import "fmt"

// Exit codes for the retroui CLI.
const (
	ExitOK          = 0 // Simplified document written.
	ExitInvalidArgs = 1 // Invalid arguments, missing or unreadable input file.
	ExitConfig      = 2 // Missing credential or invalid configuration.
	ExitProvider    = 3 // Completion call failed.
	ExitWrite       = 4 // Output could not be written.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError with a formatted message.
func exitError(code int, format string, args ...any) *exitCodeError {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}
