package contentsheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/parser"
	"github.com/xuri/excelize/v2"
)

// Document is an open workbook file together with its parsed sheets.
type Document struct {
	// Path is the file the document was opened from.
	Path string
	// Workbook holds the parsed sheets. Cell changes are written back by SaveAs.
	Workbook *models.Workbook

	file *excelize.File
}

// Open reads every sheet of the workbook at path.
func Open(path string) (*Document, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	wb := &models.Workbook{BookName: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		sheet, err := parser.ReadSheet(f, sheetName)
		if err != nil {
			f.Close()
			return nil, NewSheetError(sheetName, "read", err)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return &Document{Path: path, Workbook: wb, file: f}, nil
}

// Close releases the underlying file.
func (d *Document) Close() error {
	return d.file.Close()
}

// SaveAs writes every changed cell and saves the workbook to path.
// Unchanged cells keep their original value and type.
func (d *Document) SaveAs(path string) error {
	for _, sheet := range d.Workbook.Sheets {
		rows := sheet.Rows
		if sheet.Header != nil {
			rows = append([]*models.Row{sheet.Header}, rows...)
		}
		for _, row := range rows {
			for colIdx := range row.Cells {
				cell := &row.Cells[colIdx]
				if !cell.Dirty() {
					continue
				}
				cellName, err := excelize.CoordinatesToCellName(colIdx+1, row.R)
				if err != nil {
					return NewSheetError(sheet.Name, "write", err)
				}
				if err := d.file.SetCellValue(sheet.Name, cellName, cell.Value); err != nil {
					return NewSheetError(sheet.Name, "write", err)
				}
			}
		}
	}

	return d.file.SaveAs(path)
}

// PrefixedPath returns the sibling of path whose file name carries prefix,
// e.g. "data/who_content.xlsx" -> "data/2who_content.xlsx".
func PrefixedPath(path, prefix string) string {
	dir, name := filepath.Split(path)
	return filepath.Join(dir, prefix+name)
}

// RequireSheet returns the named sheet or ErrMissingSheet.
func RequireSheet(wb *models.Workbook, name string) (*models.Sheet, error) {
	sheet := wb.Sheet(name)
	if sheet == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSheet, name)
	}
	return sheet, nil
}
