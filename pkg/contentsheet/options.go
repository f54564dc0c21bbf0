// Package contentsheet loads and saves multilingual chat content workbooks.
package contentsheet

import (
	"slices"

	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
)

// MaxContentLength is the messaging platform's payload limit, in characters.
const MaxContentLength = 4096

// Options configures which sheets play which role and how content is rewritten.
type Options struct {
	// EnglishMaster is the sheet holding the reference English content.
	EnglishMaster string
	// ImportInfoSheet maps content sheets to destination numbers.
	ImportInfoSheet string
	// MetadataSheets are skipped by every content pass. ImportInfoSheet is always included.
	MetadataSheets []string
	// ExemptSheets do not inherit English keywords or content.
	ExemptSheets []string
	// MythsMarker marks titles whose keywords may repeat across rows.
	MythsMarker string
	// MaxContentLength is the longest allowed content, in characters.
	MaxContentLength int
	// LanguageListTitle is the content item that gets the country's language list spliced in.
	LanguageListTitle string
	// ReplaceCountries are the country names in the content replaced by each destination's country.
	ReplaceCountries []string
	// PlaceholderNumber is the phone number in the content replaced by each destination's number.
	PlaceholderNumber string
}

// DefaultOptions returns the options matching the standard content workbook layout.
func DefaultOptions() Options {
	return Options{
		EnglishMaster:     "English master",
		ImportInfoSheet:   "ImportInfo",
		MetadataSheets:    []string{"Language codes"},
		ExemptSheets:      []string{"Sepedi (SA)"},
		MythsMarker:       "myths",
		MaxContentLength:  MaxContentLength,
		LanguageListTitle: "eng_language",
		ReplaceCountries:  []string{"South Africa", "Mozambique"},
		PlaceholderNumber: "27600109000",
	}
}

// IsMetadata reports whether the sheet holds metadata rather than content.
func (o Options) IsMetadata(name string) bool {
	key := models.SheetKey(name)
	if key == models.SheetKey(o.ImportInfoSheet) {
		return true
	}
	return slices.ContainsFunc(o.MetadataSheets, func(s string) bool {
		return models.SheetKey(s) == key
	})
}

// InheritsEnglish reports whether the sheet takes missing keywords and content from the English master.
func (o Options) InheritsEnglish(name string) bool {
	if o.IsMetadata(name) {
		return false
	}
	key := models.SheetKey(name)
	if key == models.SheetKey(o.EnglishMaster) {
		return false
	}
	return !slices.ContainsFunc(o.ExemptSheets, func(s string) bool {
		return models.SheetKey(s) == key
	})
}
