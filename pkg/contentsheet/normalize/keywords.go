package normalize

import (
	"slices"
	"strings"

	"github.com/ukaji3/contentsheet-go/pkg/contentsheet"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/emoji"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/parser"
)

// ParseKeywords splits an automation cell into trimmed, non-empty tokens.
// Numeric cells are read as truncated integers.
func ParseKeywords(cell *models.Cell) []string {
	value := cell.Value
	if cell.Numeric {
		value, _ = parser.IntegerString(value)
	}
	return SplitKeywords(value)
}

// SplitKeywords splits a comma separated list into trimmed, non-empty tokens.
func SplitKeywords(s string) []string {
	var keywords []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// Dedupe removes repeated keywords, keeping the first occurrence of each.
func Dedupe(keywords []string) []string {
	var out []string
	for _, k := range keywords {
		if !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	return out
}

// CleanKeywords normalizes the automation cell of every content row:
// whitespace, empty and repeated keywords are removed and emoji lose their skin tone.
// Keywords that mix an emoji with other characters, and keywords already used by
// an earlier row of the same sheet, are reported. Rows whose title contains the
// myths marker may repeat keywords.
func CleanKeywords(wb *models.Workbook, opts contentsheet.Options, report *Report) error {
	for _, sheet := range wb.Sheets {
		if opts.IsMetadata(sheet.Name) {
			continue
		}

		seen := make(map[string]struct{})
		for _, row := range sheet.Rows {
			cell, err := sheet.Cell(row, models.FieldAutomation)
			if err != nil {
				return contentsheet.NewSheetError(sheet.Name, "clean_keywords", err)
			}
			title, err := sheet.Value(row, models.FieldTitle)
			if err != nil {
				return contentsheet.NewSheetError(sheet.Name, "clean_keywords", err)
			}

			keywords := ParseKeywords(cell)
			for i, k := range keywords {
				keywords[i] = emoji.Base(k)
			}
			for _, k := range keywords {
				if emoji.IsComposite(k) {
					report.Add(Issue{Kind: IssueInvalidKeyword, Sheet: sheet.Name, Row: row.R, Subject: k})
				}
			}
			keywords = Dedupe(keywords)

			if !isMyths(title, opts.MythsMarker) {
				for _, k := range keywords {
					if _, dup := seen[k]; dup {
						report.Add(Issue{Kind: IssueDuplicateKeyword, Sheet: sheet.Name, Row: row.R, Subject: k})
					}
					seen[k] = struct{}{}
				}
			}

			cell.Set(strings.Join(keywords, ","))
		}
	}
	return nil
}

func isMyths(title, marker string) bool {
	return marker != "" && strings.Contains(title, marker)
}
