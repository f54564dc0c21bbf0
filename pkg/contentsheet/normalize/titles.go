package normalize

import (
	"regexp"
	"strings"

	"github.com/ukaji3/contentsheet-go/pkg/contentsheet"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
)

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// NormalizeTitle trims the title and collapses every run of non-word characters to "_".
func NormalizeTitle(title string) string {
	return nonWord.ReplaceAllString(strings.TrimSpace(title), "_")
}

// CleanTitles normalizes every content title.
func CleanTitles(wb *models.Workbook, opts contentsheet.Options, _ *Report) error {
	for _, sheet := range wb.Sheets {
		if opts.IsMetadata(sheet.Name) {
			continue
		}

		for _, row := range sheet.Rows {
			cell, err := sheet.Cell(row, models.FieldTitle)
			if err != nil {
				return contentsheet.NewSheetError(sheet.Name, "clean_content_title", err)
			}
			if cell.Value != "" {
				cell.Set(NormalizeTitle(cell.Value))
			}
		}
	}
	return nil
}
