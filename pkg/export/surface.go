package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Surface is where finished artifacts land. Create failing maps to
// ErrSurfaceUnavailable so callers can distinguish "nowhere to write" from
// render failures.
type Surface interface {
	Create(ctx context.Context, name string) (io.WriteCloser, error)
}

// DirSurface writes artifacts into a directory, creating it on first use.
type DirSurface struct {
	Dir string
}

func NewDirSurface(dir string) DirSurface {
	return DirSurface{Dir: dir}
}

func (s DirSurface) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("export: create %q: %w", name, err)
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}
	return f, nil
}
