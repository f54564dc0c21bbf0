package models

import "strings"

// Cell holds a single cell value as read from a sheet.
type Cell struct {
	// Value is the raw cell value.
	Value string
	// Numeric reports whether the workbook stored the cell as a number.
	Numeric bool

	dirty bool
}

// Set replaces the cell value and marks the cell for writing.
// Setting the current value is a no-op.
func (c *Cell) Set(value string) {
	if c.Value == value {
		return
	}
	c.Value = value
	c.Numeric = false
	c.dirty = true
}

// Dirty reports whether the cell was changed since it was loaded.
func (c *Cell) Dirty() bool {
	return c.dirty
}

// IsBlank reports whether the cell holds only whitespace.
func (c *Cell) IsBlank() bool {
	return strings.TrimSpace(c.Value) == ""
}

// Row represents a single sheet row.
type Row struct {
	// R is the row index (1-based).
	R int
	// Cells holds the row's cells by zero-based column index.
	Cells []Cell
}

// Cell returns the cell at the zero-based column index, growing the row if needed.
func (r *Row) Cell(col int) *Cell {
	if col >= len(r.Cells) {
		grown := make([]Cell, col+1)
		copy(grown, r.Cells)
		r.Cells = grown
	}
	return &r.Cells[col]
}

// Value returns the value at the zero-based column index, or "" when out of range.
func (r *Row) Value(col int) string {
	if col < 0 || col >= len(r.Cells) {
		return ""
	}
	return r.Cells[col].Value
}
