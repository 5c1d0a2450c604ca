// Package pipe provides the low-level named pipe (FIFO) handle used by
// lockpipe.
//
// A Handle maps five named-pipe concepts onto filesystem system calls:
// create (mkfifo), delete (unlink), exists (stat), read and write. It does no
// logging and no recovery. Every failure is returned to the caller exactly as
// the operating system reported it, wrapped in *fs.PathError so that the path
// and the failing operation travel with the errno.
//
// Reads and writes rely on the kernel's FIFO open-pair semantics: opening for
// read blocks until a writer opens, and opening for write blocks until a
// reader opens. The blocking opens are performed through
// github.com/containerd/fifo.
//
// Only unix platforms are supported. Elsewhere every operation fails with
// errors.ErrUnsupported.
package pipe
