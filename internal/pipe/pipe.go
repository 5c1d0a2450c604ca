package pipe

// Mode is the permission mode given to newly created pipes: read, write and
// execute for the owning user only (S_IRWXU).
const Mode = 0o700

// Handle is a named pipe at a single filesystem path.
//
// A Handle caches nothing about the pipe. Every method resolves the path
// against the filesystem at call time, so several processes (or several
// Handles) may refer to the same path at once.
type Handle struct {
	path string
}

// New returns a Handle for path. The path is not checked for existence or
// type.
func New(path string) *Handle {
	return &Handle{path: path}
}

// Path returns the filesystem path the Handle operates on.
func (h *Handle) Path() string {
	return h.path
}
