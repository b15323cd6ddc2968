package domain

import (
	"bytes"
	"context"
	"testing"

	"clovercov.dev/pkg/clovercov/internal/adapter"
	"clovercov.dev/pkg/clovercov/internal/controller"
	m "clovercov.dev/pkg/clovercov/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflow_Collect_Fixtures(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	wf := NewWorkflow(
		adapter.NewLocalReportReader(),
		adapter.NewLocalPathResolver(),
		controller.NewSimpleUI(cmd),
	)

	coverage, err := wf.Collect(context.Background(), CollectArgs{
		Reports:  []m.Path{"testdata/clover_shard_0.xml", "testdata/clover_shard_1.xml"},
		RootDirs: []string{"/opt/fixture/project/src"},
		Parallel: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "2009-02-13 23:31:30 +0000", coverage.RunAt())

	files := coverage.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "src/Cart.php", files[0].Name)
	assert.Equal(t, "src/Shop/Order.php", files[1].Name)

	cart := files[0]
	assert.Len(t, cart.Coverage(), 16)
	assert.Equal(t, 4, cart.Statements())
	assertNoSlot(t, cart, 6)
	assertHits(t, cart, 8, 2)
	assertHits(t, cart, 14, 3)
	assertHits(t, cart, 15, 1)

	order := files[1]
	assertHits(t, order, 3, 1)
	assertNoSlot(t, order, 4)

	assert.Contains(t, out.String(), "src/Shop/Order.php")
	assert.NotContains(t, out.String(), "Helper.php")
}
