// Package adapter contains infrastructure adapters for the clovercov CLI.
package adapter

import (
	"log/slog"

	m "clovercov.dev/pkg/clovercov/internal/model"
	"github.com/beevik/etree"
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// ReportReader loads a coverage report and parses it into an XML document.
type ReportReader interface {
	Read(path m.Path) (*etree.Document, error)
}

// FSReportReader reads reports from an afero filesystem.
type FSReportReader struct {
	fs afero.Fs
}

// NewLocalReportReader returns a reader backed by the OS filesystem.
func NewLocalReportReader() *FSReportReader {
	return NewFSReportReader(afero.NewOsFs())
}

// NewFSReportReader returns a reader backed by fs.
func NewFSReportReader(fs afero.Fs) *FSReportReader {
	return &FSReportReader{fs: fs}
}

// Read loads and parses the report at path.
func (r *FSReportReader) Read(path m.Path) (*etree.Document, error) {
	data, err := afero.ReadFile(r.fs, string(path))
	if err != nil {
		return nil, errors.Wrapf(err, "read report %s", path)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrapf(err, "parse report %s", path)
	}

	if doc.Root() == nil {
		return nil, errors.Newf("parse report %s: empty document", path)
	}

	slog.Debug("parsed report", "path", path, "bytes", len(data))

	return doc, nil
}
