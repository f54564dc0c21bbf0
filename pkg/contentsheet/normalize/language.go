package normalize

import (
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
)

// CleanLanguage fills empty language cells of titled rows with the last language
// seen above them in the same sheet. Set values are never overwritten.
func CleanLanguage(wb *models.Workbook, opts contentsheet.Options, _ *Report) error {
	for _, sheet := range wb.Sheets {
		if opts.IsMetadata(sheet.Name) {
			continue
		}

		var lang string
		for _, row := range sheet.Rows {
			title, err := sheet.Value(row, models.FieldTitle)
			if err != nil {
				return contentsheet.NewSheetError(sheet.Name, "clean_language", err)
			}
			cell, err := sheet.Cell(row, models.FieldLanguage)
			if err != nil {
				return contentsheet.NewSheetError(sheet.Name, "clean_language", err)
			}
			if title == "" {
				continue
			}

			if cell.Value != "" {
				lang = cell.Value
			} else if lang != "" {
				cell.Set(lang)
			}
		}
	}
	return nil
}
