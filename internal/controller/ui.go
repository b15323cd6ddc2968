// Package controller provides output adapters for displaying collected coverage.
package controller

import (
	"context"

	m "clovercov.dev/pkg/clovercov/internal/model"
)

// UI defines how collected coverage is presented.
type UI interface {
	DisplayCoverage(ctx context.Context, coverage *m.Coverage) error
}
