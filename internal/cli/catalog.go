package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/casseroll/internal/catalog"
	"github.com/hammamikhairi/casseroll/internal/domain"
)

// CoverageCell is the JSON shape of one category × cuisine combination.
type CoverageCell struct {
	Category domain.Category `json:"category"`
	Profile  domain.Profile  `json:"profile"`
	Tagged   int             `json:"tagged"`
	Total    int             `json:"total"`
	Fallback bool            `json:"fallback"`
}

// CatalogReport is the JSON shape of the catalog command.
type CatalogReport struct {
	Size     int            `json:"size"`
	Unknown  []string       `json:"unknown_categories,omitempty"`
	Coverage []CoverageCell `json:"coverage"`
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Report how well each cuisine is covered",
		Long: `Print, for every category and cuisine, how many ingredients carry the
cuisine tag. Cells marked with * have none, so rolls there fall back to the
whole category.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(rootOpts, cmd)
		},
	}
}

func runCatalog(rootOpts *RootOptions, cmd *cobra.Command) error {
	rt, err := rootOpts.newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	out := cmd.OutOrStdout()
	if rootOpts.Format == "json" {
		return writeJSON(out, buildReport(rt.catalog))
	}

	fmt.Fprintln(out, renderCoverage(rt.catalog))
	gaps := rt.catalog.Gaps()
	fmt.Fprintf(out, "%d ingredients, %d fallback cells\n", rt.catalog.Size(), len(gaps))
	for _, name := range rt.catalog.Unknown() {
		fmt.Fprintf(out, "ignored unknown category %q\n", name)
	}
	return nil
}

func buildReport(c *catalog.Catalog) CatalogReport {
	r := CatalogReport{Size: c.Size(), Unknown: c.Unknown()}
	for _, row := range c.Coverage() {
		for _, cell := range row {
			r.Coverage = append(r.Coverage, CoverageCell{
				Category: cell.Category,
				Profile:  cell.Profile,
				Tagged:   cell.Tagged,
				Total:    cell.Total,
				Fallback: cell.Fallback,
			})
		}
	}
	return r
}

func renderCoverage(c *catalog.Catalog) string {
	headers := []string{"category", "total"}
	for _, p := range domain.ProfileKeys() {
		headers = append(headers, string(p))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, row := range c.Coverage() {
		if len(row) == 0 {
			continue
		}
		cells := []string{string(row[0].Category), strconv.Itoa(row[0].Total)}
		for _, cell := range row {
			v := strconv.Itoa(cell.Tagged)
			if cell.Fallback {
				v += "*"
			}
			cells = append(cells, v)
		}
		t.Row(cells...)
	}
	return t.Render()
}
