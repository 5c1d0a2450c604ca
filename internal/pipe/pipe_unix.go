//go:build unix

package pipe

import (
	"context"
	"io"
	"io/fs"

	"github.com/containerd/fifo"
	"golang.org/x/sys/unix"
)

// Create makes a FIFO node at the Handle's path with Mode permissions.
// If anything already exists at the path the error wraps EEXIST; callers
// tell that case apart by error value, not by checking first.
func (h *Handle) Create() error {
	if err := unix.Mkfifo(h.path, Mode); err != nil {
		return &fs.PathError{Op: "mkfifo", Path: h.path, Err: err}
	}
	return nil
}

// Delete removes whatever entry exists at the path. It does not verify the
// entry is a FIFO. Directories are not removed (EISDIR on Linux).
func (h *Handle) Delete() error {
	if err := unix.Unlink(h.path); err != nil {
		return &fs.PathError{Op: "unlink", Path: h.path, Err: err}
	}
	return nil
}

// Exists succeeds when any filesystem entry, not necessarily a FIFO, is
// present at the path. Symlinks are followed.
func (h *Handle) Exists() error {
	var st unix.Stat_t
	if err := unix.Stat(h.path, &st); err != nil {
		return &fs.PathError{Op: "stat", Path: h.path, Err: err}
	}
	return nil
}

// Read opens the pipe for reading and discards everything until end of
// stream. The open blocks until a writer opens the same path, and the read
// returns once every writer has closed it. Any number of readers blocked on
// the same pipe are released together.
func (h *Handle) Read(ctx context.Context) error {
	r, err := fifo.OpenFifo(ctx, h.path, unix.O_RDONLY, Mode)
	if err != nil {
		return err
	}

	_, err = io.Copy(io.Discard, r)
	if cerr := r.Close(); err == nil {
		err = cerr
	}
	return err
}

// Write opens the pipe for writing, writes an empty payload and closes it.
// The open blocks until a reader opens the same path. If a regular file sits
// at the path instead, it is truncated to zero length.
func (h *Handle) Write(ctx context.Context) error {
	w, err := fifo.OpenFifo(ctx, h.path, unix.O_WRONLY|unix.O_TRUNC, Mode)
	if err != nil {
		return err
	}

	_, err = w.Write(nil)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}
