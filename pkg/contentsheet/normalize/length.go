package normalize

import (
	"unicode/utf8"

	"github.com/ukaji3/contentsheet-go/pkg/contentsheet"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
)

// CheckContentLength reports content longer than the platform allows.
func CheckContentLength(wb *models.Workbook, opts contentsheet.Options, report *Report) error {
	limit := opts.MaxContentLength
	if limit <= 0 {
		limit = contentsheet.MaxContentLength
	}

	for _, sheet := range wb.Sheets {
		if opts.IsMetadata(sheet.Name) {
			continue
		}

		for _, row := range sheet.Rows {
			content, err := sheet.Value(row, models.FieldContent)
			if err != nil {
				return contentsheet.NewSheetError(sheet.Name, "check_content_length", err)
			}
			if utf8.RuneCountInString(content) <= limit {
				continue
			}
			title, err := sheet.Value(row, models.FieldTitle)
			if err != nil {
				return contentsheet.NewSheetError(sheet.Name, "check_content_length", err)
			}
			report.Add(Issue{Kind: IssueContentTooLong, Sheet: sheet.Name, Row: row.R, Subject: title})
		}
	}
	return nil
}
