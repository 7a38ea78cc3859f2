// Package cli provides error types and exit codes for commands.
package cli

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCheckFailed is returned in --strict mode when a pair or palette falls
// below its minimum.
var ErrCheckFailed = errors.New("contrast check failed")

// Exit codes.
const (
	ExitOK     = 0
	ExitError  = 1
	ExitFailed = 2
)

// InputError describes bad arguments with a hint on how to fix them.
type InputError struct {
	Message string
	Hint    string
	Err     error
}

func (e *InputError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, "\nhint: %s", e.Hint)
	}
	return b.String()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ExitCode maps a command error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrCheckFailed):
		return ExitFailed
	default:
		return ExitError
	}
}
