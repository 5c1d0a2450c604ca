package lockpipe

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/mmr-tortoise/lockpipe/internal/model"
)

// Pipe is the set of primitive operations the Controller sequences.
// *pipe.Handle is the production implementation.
type Pipe interface {
	Path() string
	Create() error
	Delete() error
	Exists() error
	Read(ctx context.Context) error
	Write(ctx context.Context) error
}

// Controller applies lockpipe's error-handling and logging policy on top of
// a Pipe. It holds no state of its own; the filesystem is the only source of
// truth between calls.
type Controller struct {
	pipe   Pipe
	logger *zap.Logger
	exit   func(int)
}

// Option configures a Controller.
type Option func(*Controller)

// WithExit replaces the function used to terminate the process when the
// pipe's existence cannot be determined. The default is os.Exit.
func WithExit(exit func(int)) Option {
	return func(c *Controller) {
		c.exit = exit
	}
}

// New returns a Controller for p. A nil logger disables logging.
func New(p Pipe, logger *zap.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		pipe:   p,
		logger: logger.With(zap.String("path", p.Path())),
		exit:   os.Exit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create makes the pipe. If something already exists at the path it is
// assumed to be the pipe; no attempt is made to confirm its type.
func (c *Controller) Create() model.ExitStatus {
	c.logger.Debug("creating pipe")

	err := c.pipe.Create()
	switch {
	case err == nil:
		c.logger.Info("created pipe")
		return model.ExitSuccess
	case errors.Is(err, fs.ErrExist):
		c.logger.Warn("pipe already exists")
		return model.ExitSuccess
	default:
		c.logger.Error("failed to create pipe", zap.Error(err))
		return model.StatusFromError(err)
	}
}

// Exists reports whether anything is present at the path: ExitSuccess when
// it is, ExitNotExist when it is not, and the errno when the check itself
// fails.
func (c *Controller) Exists() model.ExitStatus {
	c.logger.Debug("checking if pipe exists")

	err := c.pipe.Exists()
	switch {
	case err == nil:
		c.logger.Info("pipe exists")
		return model.ExitSuccess
	case errors.Is(err, fs.ErrNotExist):
		c.logger.Info("pipe does not exist")
		return model.ExitNotExist
	default:
		c.logger.Error("failed checking if pipe exists", zap.Error(err))
		return model.StatusFromError(err)
	}
}

// Delete removes the pipe. An absent pipe counts as success, since the path
// not existing is exactly what was asked for.
func (c *Controller) Delete() model.ExitStatus {
	c.logger.Debug("deleting pipe")

	err := c.pipe.Delete()
	switch {
	case err == nil:
		c.logger.Info("deleted pipe")
		return model.ExitSuccess
	case errors.Is(err, fs.ErrNotExist):
		c.logger.Warn("pipe does not exist")
		return model.ExitSuccess
	default:
		c.logger.Error("failed to delete pipe", zap.Error(err))
		return model.StatusFromError(err)
	}
}

// Read waits for a writer on the pipe, creating the pipe first if needed.
func (c *Controller) Read(ctx context.Context) model.ExitStatus {
	if status, ok := c.ensureExists(); !ok {
		return status
	}

	c.logger.Debug("reading from pipe")

	if err := c.pipe.Read(ctx); err != nil {
		c.logger.Error("failed reading from pipe", zap.Error(err))
		return model.StatusFromError(err)
	}

	c.logger.Info("read from pipe")
	return model.ExitSuccess
}

// Write waits for a reader on the pipe, creating the pipe first if needed.
func (c *Controller) Write(ctx context.Context) model.ExitStatus {
	if status, ok := c.ensureExists(); !ok {
		return status
	}

	c.logger.Debug("writing to pipe")

	if err := c.pipe.Write(ctx); err != nil {
		c.logger.Error("failed writing to pipe", zap.Error(err))
		return model.StatusFromError(err)
	}

	c.logger.Info("wrote to pipe")
	return model.ExitSuccess
}

// ensureExists creates the pipe when nothing is at the path. If the check
// fails for another reason the process exits with the errno. ok is false
// only when the exit function returned instead of terminating.
func (c *Controller) ensureExists() (status model.ExitStatus, ok bool) {
	c.logger.Debug("ensuring pipe exists")

	err := c.pipe.Exists()
	switch {
	case err == nil:
		c.logger.Info("pipe exists")
	case errors.Is(err, fs.ErrNotExist):
		c.logger.Warn("pipe does not exist")
		// A failed create surfaces again when the pipe is opened.
		c.Create()
	default:
		c.logger.Error("failed checking if pipe exists", zap.Error(err))
		status = model.StatusFromError(err)
		c.exit(status.Int())
		return status, false
	}
	return model.ExitSuccess, true
}
