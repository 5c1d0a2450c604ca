// Package model defines the exit-status domain and the error type shared by
// the lockpipe CLI layers.
//
// This package contains no I/O. It owns the single translation point between
// operating-system error numbers (errno) and process exit codes, so that the
// overlap between those two numeric domains is visible in one place.
//
// It also defines CLIError, which carries an exit status through cobra's
// error return path up to the process entry point.
package model
