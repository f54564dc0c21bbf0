package normalize

import (
	"slices"
	"strings"

	"github.com/ukaji3/contentsheet-go/pkg/contentsheet"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
)

// MergeKeywords appends the English keywords missing from own, keeping own's order first.
// Empty keywords are dropped.
func MergeKeywords(own, english []string) []string {
	merged := slices.Clone(own)
	for _, k := range english {
		if !slices.Contains(merged, k) {
			merged = append(merged, k)
		}
	}
	return slices.DeleteFunc(merged, func(k string) bool { return k == "" })
}

// AddEnglishKeywords adds the English master's keywords to the matching rows of every other
// content sheet. Rows are matched on the title without its language prefix. A row with
// no English match is reported and merged with the English row at the same position.
func AddEnglishKeywords(wb *models.Workbook, opts contentsheet.Options, report *Report) error {
	english, err := contentsheet.RequireSheet(wb, opts.EnglishMaster)
	if err != nil {
		return err
	}
	reference, err := englishKeywords(english)
	if err != nil {
		return contentsheet.NewSheetError(english.Name, "add_english_keywords", err)
	}

	for _, sheet := range wb.Sheets {
		if !opts.InheritsEnglish(sheet.Name) {
			continue
		}

		for _, row := range sheet.Rows {
			cell, err := sheet.Cell(row, models.FieldAutomation)
			if err != nil {
				return contentsheet.NewSheetError(sheet.Name, "add_english_keywords", err)
			}
			key, titled, err := strippedTitle(sheet, row)
			if err != nil {
				return contentsheet.NewSheetError(sheet.Name, "add_english_keywords", err)
			}
			if !titled {
				continue
			}

			keywords, ok := reference[key]
			if !ok {
				subject := key
				if subject == "" {
					title, _ := sheet.Value(row, models.FieldTitle)
					subject = strings.TrimSpace(title)
				}
				report.Add(Issue{Kind: IssueMissingEnglish, Sheet: sheet.Name, Row: row.R, Subject: subject})
				keywords = positionalKeywords(english, row.R, reference)
			}

			merged := MergeKeywords(ParseKeywords(cell), keywords)
			cell.Set(strings.Join(merged, ","))
		}
	}
	return nil
}

// AddMissingContent fills blank content in every other content sheet with the English
// master's content for the same title.
func AddMissingContent(wb *models.Workbook, opts contentsheet.Options, _ *Report) error {
	english, err := contentsheet.RequireSheet(wb, opts.EnglishMaster)
	if err != nil {
		return err
	}
	reference, err := englishContent(english)
	if err != nil {
		return contentsheet.NewSheetError(english.Name, "add_missing_content", err)
	}

	for _, sheet := range wb.Sheets {
		if !opts.InheritsEnglish(sheet.Name) {
			continue
		}

		for _, row := range sheet.Rows {
			cell, err := sheet.Cell(row, models.FieldContent)
			if err != nil {
				return contentsheet.NewSheetError(sheet.Name, "add_missing_content", err)
			}
			key, titled, err := strippedTitle(sheet, row)
			if err != nil {
				return contentsheet.NewSheetError(sheet.Name, "add_missing_content", err)
			}
			if !titled || !cell.IsBlank() {
				continue
			}
			// A missing English title was already reported by AddEnglishKeywords.
			if content, ok := reference[key]; ok {
				cell.Set(content)
			}
		}
	}
	return nil
}

func englishKeywords(english *models.Sheet) (map[string][]string, error) {
	reference := make(map[string][]string)
	for _, row := range english.Rows {
		key, _, err := strippedTitle(english, row)
		if err != nil {
			return nil, err
		}
		if key == "" {
			continue
		}
		cell, err := english.Cell(row, models.FieldAutomation)
		if err != nil {
			return nil, err
		}
		reference[key] = ParseKeywords(cell)
	}
	return reference, nil
}

func englishContent(english *models.Sheet) (map[string]string, error) {
	reference := make(map[string]string)
	for _, row := range english.Rows {
		key, _, err := strippedTitle(english, row)
		if err != nil {
			return nil, err
		}
		content, err := english.Value(row, models.FieldContent)
		if err != nil {
			return nil, err
		}
		if key != "" && content != "" {
			reference[key] = content
		}
	}
	return reference, nil
}

// positionalKeywords returns the keywords of the English row at row number r.
func positionalKeywords(english *models.Sheet, r int, reference map[string][]string) []string {
	row := english.RowAt(r)
	if row == nil || row == english.Header {
		return nil
	}
	key, _, err := strippedTitle(english, row)
	if err != nil {
		return nil
	}
	return reference[key]
}

// strippedTitle returns the row's trimmed title without its language prefix.
// titled is false for rows without a title. A title made of the prefix alone strips to "".
func strippedTitle(sheet *models.Sheet, row *models.Row) (key string, titled bool, err error) {
	title, err := sheet.Value(row, models.FieldTitle)
	if err != nil {
		return "", false, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return "", false, nil
	}

	// Sheets without a language column keep their titles as-is.
	if !sheet.Has(models.FieldLanguage) {
		return title, true, nil
	}
	lang, err := sheet.Value(row, models.FieldLanguage)
	if err != nil {
		return "", false, err
	}
	return stripLanguagePrefix(title, strings.TrimSpace(lang)), true, nil
}

// stripLanguagePrefix turns "por_test" into "test" for language "por".
func stripLanguagePrefix(title, lang string) string {
	if lang == "" || !strings.HasPrefix(title, lang) {
		return title
	}
	if len(title) <= len(lang)+1 {
		return ""
	}
	return title[len(lang)+1:]
}
