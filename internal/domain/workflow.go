package domain

import (
	"context"
	"log/slog"

	"clovercov.dev/pkg/clovercov/internal/adapter"
	"clovercov.dev/pkg/clovercov/internal/controller"
	m "clovercov.dev/pkg/clovercov/internal/model"
	"github.com/beevik/etree"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoReports is returned when Collect is called without report paths.
	ErrNoReports = errors.New("no coverage reports given")
	// ErrNoRootDirs is returned when Collect is called without root directories.
	ErrNoRootDirs = errors.New("no root directories given")
)

// CollectArgs contains the arguments for collecting coverage.
type CollectArgs struct {
	Reports  []m.Path
	RootDirs []string
	Parallel int
}

// Workflow reads clover reports and merges them into one Coverage.
type Workflow interface {
	Collect(ctx context.Context, args CollectArgs) (*m.Coverage, error)
}

type workflow struct {
	adapter.ReportReader
	controller.UI
	collector *Collector
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reader adapter.ReportReader,
	resolver adapter.PathResolver,
	ui controller.UI,
) Workflow {
	return &workflow{
		ReportReader: reader,
		UI:           ui,
		collector:    NewCollector(resolver),
	}
}

// Collect parses every report concurrently, then folds the documents into a
// single Coverage in argument order so the last report's timestamp wins.
func (w *workflow) Collect(ctx context.Context, args CollectArgs) (*m.Coverage, error) {
	if len(args.Reports) == 0 {
		return nil, ErrNoReports
	}

	if len(args.RootDirs) == 0 {
		return nil, ErrNoRootDirs
	}

	docs, err := w.readReports(ctx, args.Reports, args.Parallel)
	if err != nil {
		slog.Error("Failed to read reports", "error", err)
		return nil, err
	}

	coverage := m.NewCoverage()

	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := w.collector.Collect(doc, args.RootDirs, coverage); err != nil {
			slog.Error("Failed to collect report", "path", args.Reports[i], "error", err)
			return nil, errors.Wrapf(err, "collect %s", args.Reports[i])
		}

		slog.Info("collected report", "path", args.Reports[i], "files", coverage.Len())
	}

	if err := w.DisplayCoverage(ctx, coverage); err != nil {
		return nil, errors.Wrap(err, "display")
	}

	return coverage, nil
}

func (w *workflow) readReports(ctx context.Context, reports []m.Path, parallel int) ([]*etree.Document, error) {
	docs := make([]*etree.Document, len(reports))

	group, groupCtx := errgroup.WithContext(ctx)
	if parallel > 0 {
		group.SetLimit(parallel)
	}

	for i, report := range reports {
		i, report := i, report
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			doc, err := w.Read(report)
			if err != nil {
				return err
			}

			docs[i] = doc

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}
