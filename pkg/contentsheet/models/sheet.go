package models

import "fmt"

// Sheet represents a loaded sheet with its header resolved against the field schema.
type Sheet struct {
	// Name is the sheet name.
	Name string
	// Header is the first row of the sheet.
	Header *Row
	// Columns holds the fields found in the header.
	Columns Columns
	// Rows contains the data rows, starting at row 2.
	Rows []*Row
}

// Column returns the column index of the field.
func (s *Sheet) Column(f Field) (int, error) {
	idx, ok := s.Columns[f]
	if !ok {
		var header []string
		if s.Header != nil {
			for _, c := range s.Header.Cells {
				header = append(header, c.Value)
			}
		}
		return -1, fmt.Errorf("sheet %q: none of %q found in header %q: %w", s.Name, f.Aliases(), header, ErrMissingHeader)
	}
	return idx, nil
}

// Has reports whether the field was found in the header.
func (s *Sheet) Has(f Field) bool {
	_, ok := s.Columns[f]
	return ok
}

// Cell returns the row's cell for the field.
func (s *Sheet) Cell(row *Row, f Field) (*Cell, error) {
	idx, err := s.Column(f)
	if err != nil {
		return nil, err
	}
	return row.Cell(idx), nil
}

// Value returns the row's value for the field.
func (s *Sheet) Value(row *Row, f Field) (string, error) {
	idx, err := s.Column(f)
	if err != nil {
		return "", err
	}
	return row.Value(idx), nil
}

// RowAt returns the row with the 1-based index r, or nil.
func (s *Sheet) RowAt(r int) *Row {
	if s.Header != nil && s.Header.R == r {
		return s.Header
	}
	for _, row := range s.Rows {
		if row.R == r {
			return row
		}
	}
	return nil
}
