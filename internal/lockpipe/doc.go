// Package lockpipe implements the policy layer of the lockpipe CLI.
//
// A Controller wraps a Pipe (normally a *pipe.Handle) and turns each pipe
// operation into a user-facing command. It decides which failures are
// expected and absorbed (create on an existing path, delete on an absent
// one), which are answers rather than failures (exists on an absent path),
// and which are real errors whose errno becomes the exit status. Every
// command logs a debug event before the operation and an info, warn or error
// event after it.
//
// Read and Write first make sure the pipe exists, creating it when it is
// absent. If that existence check fails for any other reason the process is
// terminated immediately with the errno, because there is nothing useful the
// caller could do next.
package lockpipe
