// Package domain implements coverage collection from clover XML reports.
package domain

import (
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"clovercov.dev/pkg/clovercov/internal/adapter"
	m "clovercov.dev/pkg/clovercov/internal/model"
	"github.com/beevik/etree"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// RunAtLayout is the format of Coverage.RunAt.
const RunAtLayout = "2006-01-02 15:04:05 -0700"

// StatementLine is the clover line type carrying statement hit counts.
const StatementLine = "stmt"

var separator = string(filepath.Separator)

// File entries may sit directly under the project or inside a package.
var fileElementPaths = []string{
	"./coverage/project/file",
	"./coverage/project/package/file",
}

// ErrMalformedInput reports a missing or unparsable report attribute.
var ErrMalformedInput = errors.New("malformed coverage report")

// Collector folds clover documents into a Coverage.
type Collector struct {
	resolver adapter.PathResolver
}

// NewCollector creates a Collector resolving root directories with resolver.
func NewCollector(resolver adapter.PathResolver) *Collector {
	return &Collector{resolver: resolver}
}

// Collect adds the files of doc that live under one of rootDirs to into and
// returns it. A nil into starts a new Coverage. Records already present are
// updated in place; statement counts overwrite earlier values.
func (c *Collector) Collect(doc *etree.Document, rootDirs []string, into *m.Coverage) (*m.Coverage, error) {
	if into == nil {
		into = m.NewCoverage()
	}

	roots := lo.Map(rootDirs, func(dir string, _ int) string {
		return dir + separator
	})

	runAt, err := collectRunAt(doc)
	if err != nil {
		return into, err
	}

	into.SetRunAt(runAt)

	for _, xpath := range fileElementPaths {
		for _, file := range doc.FindElements(xpath) {
			if err := c.collectFile(file, roots, into); err != nil {
				return into, err
			}
		}
	}

	return into, nil
}

func collectRunAt(doc *etree.Document) (string, error) {
	project := doc.FindElement("./coverage/project")
	if project == nil {
		return "", errors.Wrap(ErrMalformedInput, "missing coverage/project element")
	}

	attr := project.SelectAttr("timestamp")
	if attr == nil {
		return "", errors.Wrap(ErrMalformedInput, "missing project timestamp")
	}

	seconds, err := strconv.ParseInt(strings.TrimSpace(attr.Value), 10, 64)
	if err != nil {
		return "", errors.Wrapf(ErrMalformedInput, "project timestamp %q: %v", attr.Value, err)
	}

	return time.Unix(seconds, 0).UTC().Format(RunAtLayout), nil
}

func (c *Collector) collectFile(file *etree.Element, roots []string, into *m.Coverage) error {
	nameAttr := file.SelectAttr("name")
	if nameAttr == nil {
		return errors.Wrap(ErrMalformedInput, "file element without name")
	}

	absolutePath := nameAttr.Value

	root, ok := matchRoot(absolutePath, roots)
	if !ok {
		slog.Debug("skipping file outside root directories", "path", absolutePath)
		return nil
	}

	name, err := c.relativeName(absolutePath, root)
	if err != nil {
		return err
	}

	src, err := lookupOrAdd(into, m.Path(absolutePath), name)
	if err != nil {
		return err
	}

	for _, line := range file.SelectElements("line") {
		if err := collectLine(line, src); err != nil {
			return errors.Wrapf(err, "file %s", absolutePath)
		}
	}

	return nil
}

// matchRoot returns the first root contained anywhere in path. The match is
// a plain substring search, not an anchored prefix.
func matchRoot(path string, roots []string) (string, bool) {
	return lo.Find(roots, func(root string) bool {
		return strings.Contains(path, root)
	})
}

// relativeName strips the canonical parent of root from path, so the root's
// own directory name stays as the leading component.
func (c *Collector) relativeName(path, root string) (string, error) {
	if root == separator {
		return strings.TrimPrefix(path, separator), nil
	}

	parent, err := c.resolver.Realpath(root + "..")
	if err != nil {
		return "", errors.Wrapf(err, "resolve parent of root %s", root)
	}

	if !strings.HasSuffix(parent, separator) {
		parent += separator
	}

	return strings.Replace(path, parent, "", 1), nil
}

func lookupOrAdd(into *m.Coverage, path m.Path, name string) (*m.SourceFile, error) {
	if into.HasFile(path) {
		return into.File(path)
	}

	src := m.NewSourceFile(path, name)
	if err := into.AddFile(src); err != nil {
		return nil, err
	}

	return src, nil
}

func collectLine(line *etree.Element, src *m.SourceFile) error {
	lineType, err := requireAttr(line, "type")
	if err != nil {
		return err
	}

	numValue, err := requireAttr(line, "num")
	if err != nil {
		return err
	}

	num, err := strconv.Atoi(strings.TrimSpace(numValue))
	if err != nil {
		return errors.Wrapf(ErrMalformedInput, "line num %q: %v", numValue, err)
	}

	if lineType != StatementLine || num <= 0 {
		return nil
	}

	countValue, err := requireAttr(line, "count")
	if err != nil {
		return err
	}

	count, err := strconv.Atoi(strings.TrimSpace(countValue))
	if err != nil {
		return errors.Wrapf(ErrMalformedInput, "line %d count %q: %v", num, countValue, err)
	}

	src.AddCoverage(num-1, count)

	return nil
}

func requireAttr(el *etree.Element, key string) (string, error) {
	attr := el.SelectAttr(key)
	if attr == nil {
		return "", errors.Wrapf(ErrMalformedInput, "<%s> missing %s attribute", el.Tag, key)
	}

	return attr.Value, nil
}
