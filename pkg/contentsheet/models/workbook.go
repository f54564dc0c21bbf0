// Package models defines data structures for content workbooks and import bundles.
package models

import "strings"

// Workbook represents an ordered collection of sheets.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Sheets holds the sheets in workbook order.
	Sheets []*Sheet
}

// Sheet returns the sheet with the given name, compared trimmed and case-insensitively.
func (w *Workbook) Sheet(name string) *Sheet {
	want := SheetKey(name)
	for _, s := range w.Sheets {
		if SheetKey(s.Name) == want {
			return s
		}
	}
	return nil
}

// SheetKey normalizes a sheet name for comparison.
func SheetKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
