// Package lock serialises draws that write into the same output directory.
package lock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileName is the lock file created inside the output directory.
const FileName = ".hpvdraw.lock"

// ErrAlreadyLocked is returned when another draw holds the directory.
var ErrAlreadyLocked = errors.New("another draw is already writing to this directory")

// Flocker abstracts the subset of flock.Flock used for advisory locking.
type Flocker interface {
	TryLock() (bool, error)
	Unlock() error
}

// Lock wraps a Flocker to provide fail-fast advisory locking.
type Lock struct {
	flocker Flocker
	dir     string
}

// New creates a Lock from the given Flocker.
func New(f Flocker) *Lock {
	return &Lock{flocker: f}
}

// ForDir creates a Lock backed by FileName inside dir. The directory is
// created on the first acquisition, not here.
func ForDir(dir string) *Lock {
	l := New(flock.New(filepath.Join(dir, FileName)))
	l.dir = dir
	return l
}

// TryLock attempts a non-blocking acquisition.
func (l *Lock) TryLock(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if l.dir != "" {
		if err := os.MkdirAll(l.dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", l.dir, err)
		}
	}

	ok, err := l.flocker.TryLock()
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	if !ok {
		return ErrAlreadyLocked
	}
	return nil
}

// Unlock releases the advisory lock.
func (l *Lock) Unlock() error {
	if err := l.flocker.Unlock(); err != nil {
		return fmt.Errorf("releasing lock: %w", err)
	}
	return nil
}

// With runs fn while holding the lock and releases it on every return path.
// An unlock failure is reported only when fn succeeded.
func (l *Lock) With(ctx context.Context, fn func(context.Context) error) (err error) {
	if err := l.TryLock(ctx); err != nil {
		return err
	}
	defer func() {
		if uerr := l.Unlock(); uerr != nil && err == nil {
			err = uerr
		}
	}()
	return fn(ctx)
}
