package models

import (
	"fmt"
	"strings"
)

// Replacement is a literal find/replace rule applied to exported content.
type Replacement struct {
	From string
	To   string
}

// Destination maps a content sheet to a destination number, as listed in the ImportInfo sheet.
type Destination struct {
	// SheetName is the content sheet exported for this destination.
	SheetName string
	// NumberType is the number kind, e.g. "prod" or "sandbox".
	NumberType string
	// Country is the destination country name.
	Country string
	// Number is the destination phone number.
	Number string
	// Language is the language name derived from the sheet name, e.g. "Bemba" for "Bemba (Zambia)".
	Language string
	// Replacements are applied in order to every exported content string.
	Replacements []Replacement
}

// Key identifies the destination among the ImportInfo rows.
func (d Destination) Key() string {
	name := strings.NewReplacer(" ", "_", "(", "", ")", "").Replace(d.SheetName)
	return fmt.Sprintf("%s_%s_%s", d.Country, name, d.NumberType)
}

// Filename returns the bundle file the destination is written to.
func (d Destination) Filename() string {
	return strings.ReplaceAll(fmt.Sprintf("content_%s_%s.json", d.Country, d.NumberType), " ", "_")
}

// ImportInfo holds the parsed ImportInfo sheet.
type ImportInfo struct {
	// Destinations are in sheet order, deduplicated by Key (later rows win).
	Destinations []Destination
	// CountryLanguages lists the languages available per country, in first-seen order.
	CountryLanguages map[string][]string
	// Languages lists every distinct language, in first-seen order.
	Languages []string
}
