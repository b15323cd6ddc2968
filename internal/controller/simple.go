package controller

import (
	"bytes"
	"context"
	"fmt"

	m "clovercov.dev/pkg/clovercov/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// SimpleUI implements UI using the cobra command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayCoverage prints the run timestamp and one row per collected file.
func (s *SimpleUI) DisplayCoverage(ctx context.Context, coverage *m.Coverage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s %s\n", headerStyle.Render("Run at:"), coverage.RunAt())
	s.printf("\n%s", renderCoverageTable(coverage.Files()))

	return nil
}

func renderCoverageTable(files []*m.SourceFile) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Name", "Path", "Statements"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, file := range files {
		table.Append([]string{file.Name, string(file.Path), fmt.Sprintf("%d", file.Statements())})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(files)), "", ""})
	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
