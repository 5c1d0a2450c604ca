package model

import (
	"errors"
	"fmt"
	"syscall"
)

// ExitStatus is the integer a lockpipe invocation hands back to the OS.
//
// The domain is deliberately small:
//
//	0       success
//	1       the pipe does not exist (only produced by "exists")
//	other   the raw errno captured when the operation failed
//
// Because errno values pass straight through, any positive status other than
// 1 may collide with a code another tool uses for something else. Scripts
// should only rely on 0 and 1 having fixed meanings.
type ExitStatus int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitStatus = 0

	// ExitNotExist is the answer of the exists command when nothing is
	// present at the path. It is a valid result, not a failure.
	ExitNotExist ExitStatus = 1

	// ExitUsage indicates the command line or the configuration could not be
	// understood, so no pipe operation was attempted.
	ExitUsage ExitStatus = 2

	// ExitUnknownError is used when a failure carries no errno at all
	// (e.g. an unsupported platform). The value matches EIO on Linux.
	ExitUnknownError ExitStatus = 5
)

// Int returns the status as a plain int, suitable for os.Exit.
func (s ExitStatus) Int() int {
	return int(s)
}

// IsSuccess reports whether the status is ExitSuccess.
func (s ExitStatus) IsSuccess() bool {
	return s == ExitSuccess
}

// StatusFromError translates an error into an exit status.
//
// A nil error is success. An error that wraps a syscall.Errno (directly, via
// *fs.PathError, or via fmt.Errorf's %w) yields that errno unchanged. Any
// other error yields ExitUnknownError.
//
// This is the only function that converts between errno and exit codes.
func StatusFromError(err error) ExitStatus {
	if err == nil {
		return ExitSuccess
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return ExitStatus(errno)
	}

	return ExitUnknownError
}

// CLIError is a custom error type that carries an exit status.
// This allows the CLI layer to translate command outcomes into
// process exit codes without calling os.Exit from deep inside cobra.
type CLIError struct {
	// Code is the exit status to return to the OS.
	Code ExitStatus

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error

	// Silent marks errors that have already been reported (for example by
	// the controller's log output) and must not be printed again.
	Silent bool
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit status and message.
func NewCLIError(code ExitStatus, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitStatus, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// StatusError returns nil for a successful status, and otherwise a silent
// CLIError carrying the status. Commands use it to hand a status that has
// already been logged back to the entry point.
func StatusError(status ExitStatus) error {
	if status.IsSuccess() {
		return nil
	}
	return &CLIError{Code: status, Silent: true}
}
