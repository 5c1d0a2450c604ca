//go:build !unix

package pipe

import (
	"context"
	"errors"
	"io/fs"
)

func (h *Handle) unsupported(op string) error {
	return &fs.PathError{Op: op, Path: h.path, Err: errors.ErrUnsupported}
}

// Create is not supported on this platform.
func (h *Handle) Create() error { return h.unsupported("mkfifo") }

// Delete is not supported on this platform.
func (h *Handle) Delete() error { return h.unsupported("unlink") }

// Exists is not supported on this platform.
func (h *Handle) Exists() error { return h.unsupported("stat") }

// Read is not supported on this platform.
func (h *Handle) Read(context.Context) error { return h.unsupported("read") }

// Write is not supported on this platform.
func (h *Handle) Write(context.Context) error { return h.unsupported("write") }
