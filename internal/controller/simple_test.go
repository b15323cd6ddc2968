package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	m "clovercov.dev/pkg/clovercov/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUI() (*SimpleUI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return NewSimpleUI(cmd), out
}

func TestSimpleUI_DisplayCoverage(t *testing.T) {
	ui, out := newTestUI()

	coverage := m.NewCoverage()
	coverage.SetRunAt("2001-09-09 01:46:40 +0000")

	foo := m.NewSourceFile("/src/app/Foo.php", "src/app/Foo.php")
	foo.AddCoverage(4, 3)
	foo.AddCoverage(9, 0)
	require.NoError(t, coverage.AddFile(foo))
	require.NoError(t, coverage.AddFile(m.NewSourceFile("/src/app/Bar.php", "src/app/Bar.php")))

	require.NoError(t, ui.DisplayCoverage(context.Background(), coverage))

	output := out.String()
	assert.Contains(t, output, "2001-09-09 01:46:40 +0000")
	assert.Contains(t, output, "src/app/Foo.php")
	assert.Contains(t, output, "/src/app/Bar.php")
	assert.Contains(t, output, "Total Files 2")
	assert.Less(t, strings.Index(output, "Foo.php"), strings.Index(output, "Bar.php"), "rows follow insertion order")
}

func TestSimpleUI_DisplayCoverageCanceled(t *testing.T) {
	ui, out := newTestUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ui.DisplayCoverage(ctx, m.NewCoverage())
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
