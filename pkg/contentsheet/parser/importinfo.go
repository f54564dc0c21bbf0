package parser

import (
	"slices"
	"strings"

	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
)

// ImportInfo columns.
const (
	colSheetName = iota
	colNumberType
	colCountry
	colNumber
)

// ParseImportInfo reads destination mappings from the ImportInfo sheet.
// Rows without a number type and the "Sheet" header row are skipped.
// Each country in replaceCountries is replaced by the destination country (and its upper-cased form),
// and placeholderNumber by the destination number.
func ParseImportInfo(sheet *models.Sheet, replaceCountries []string, placeholderNumber string) models.ImportInfo {
	info := models.ImportInfo{CountryLanguages: make(map[string][]string)}
	index := make(map[string]int)

	rows := sheet.Rows
	if sheet.Header != nil {
		rows = append([]*models.Row{sheet.Header}, rows...)
	}

	for _, row := range rows {
		sheetName := strings.TrimSpace(row.Value(colSheetName))
		numberType := strings.TrimSpace(row.Value(colNumberType))
		if numberType == "" || strings.EqualFold(sheetName, "sheet") {
			continue
		}

		dest := models.Destination{
			SheetName:  sheetName,
			NumberType: numberType,
			Country:    strings.TrimSpace(row.Value(colCountry)),
			Number:     strings.ReplaceAll(strings.TrimSpace(row.Value(colNumber)), "=", ""),
		}
		dest.Language, _, _ = strings.Cut(sheetName, " (")
		for _, country := range replaceCountries {
			dest.Replacements = append(dest.Replacements,
				models.Replacement{From: country, To: dest.Country},
				models.Replacement{From: strings.ToUpper(country), To: strings.ToUpper(dest.Country)},
			)
		}
		if placeholderNumber != "" {
			dest.Replacements = append(dest.Replacements, models.Replacement{From: placeholderNumber, To: dest.Number})
		}

		if i, ok := index[dest.Key()]; ok {
			info.Destinations[i] = dest
		} else {
			index[dest.Key()] = len(info.Destinations)
			info.Destinations = append(info.Destinations, dest)
		}

		if !slices.Contains(info.CountryLanguages[dest.Country], dest.Language) {
			info.CountryLanguages[dest.Country] = append(info.CountryLanguages[dest.Country], dest.Language)
		}
		if !slices.Contains(info.Languages, dest.Language) {
			info.Languages = append(info.Languages, dest.Language)
		}
	}

	return info
}
