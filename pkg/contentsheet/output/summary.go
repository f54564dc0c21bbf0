package output

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
)

// RenderSummary prints the export counters as a table.
func RenderSummary(w io.Writer, stats models.ExportStats) error {
	table := tablewriter.NewWriter(w)
	rows := [][]string{
		{"Turn Numbers", strconv.Itoa(stats.Destinations)},
		{"Languages", strconv.Itoa(stats.Languages)},
		{"Sheets", strconv.Itoa(stats.Sheets)},
		{"Content", strconv.Itoa(stats.Content)},
		{"Automators", strconv.Itoa(stats.Automators)},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
