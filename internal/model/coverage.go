// Package model defines the data structures for collected coverage.
package model

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrDuplicateFile is returned by AddFile when the path is already present.
	ErrDuplicateFile = errors.New("source file already exists")
	// ErrFileNotFound is returned by File when the path is unknown.
	ErrFileNotFound = errors.New("source file not found")
)

// Coverage accumulates source files across one or more collection passes.
// It is not safe for concurrent use.
type Coverage struct {
	runAt string
	order []Path
	files map[Path]*SourceFile
}

// NewCoverage creates an empty Coverage.
func NewCoverage() *Coverage {
	return &Coverage{files: make(map[Path]*SourceFile)}
}

// SetRunAt replaces the run timestamp.
func (c *Coverage) SetRunAt(runAt string) {
	c.runAt = runAt
}

// RunAt returns the formatted timestamp of the last collected run.
func (c *Coverage) RunAt() string {
	return c.runAt
}

// HasFile reports whether a record exists for path.
func (c *Coverage) HasFile(path Path) bool {
	_, ok := c.files[path]
	return ok
}

// File returns the record for path.
func (c *Coverage) File(path Path) (*SourceFile, error) {
	file, ok := c.files[path]
	if !ok {
		return nil, errors.Wrapf(ErrFileNotFound, "%s", path)
	}

	return file, nil
}

// AddFile inserts a new record. Callers check HasFile first.
func (c *Coverage) AddFile(file *SourceFile) error {
	if c.HasFile(file.Path) {
		return errors.Wrapf(ErrDuplicateFile, "%s", file.Path)
	}

	c.files[file.Path] = file
	c.order = append(c.order, file.Path)

	return nil
}

// Files returns the records in first-seen order.
func (c *Coverage) Files() []*SourceFile {
	files := make([]*SourceFile, 0, len(c.order))
	for _, path := range c.order {
		files = append(files, c.files[path])
	}

	return files
}

// Len returns the number of records.
func (c *Coverage) Len() int {
	return len(c.order)
}
