package adapter

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// PathResolver turns a path into its canonical absolute form.
type PathResolver interface {
	// Realpath returns path made absolute, with ".." resolved and symlinks
	// followed.
	Realpath(path string) (string, error)
}

// LocalPathResolver resolves paths against the local filesystem.
type LocalPathResolver struct{}

// NewLocalPathResolver constructs a LocalPathResolver.
func NewLocalPathResolver() *LocalPathResolver {
	return &LocalPathResolver{}
}

// Realpath resolves path. Paths that do not exist are returned absolute and
// lexically cleaned.
func (r *LocalPathResolver) Realpath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "absolute path of %s", path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return abs, nil
		}

		return "", errors.Wrapf(err, "resolve %s", path)
	}

	return resolved, nil
}
