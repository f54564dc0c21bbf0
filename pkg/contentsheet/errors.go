package contentsheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrMissingSheet indicates a required sheet is absent from the workbook.
var ErrMissingSheet = errors.New("missing sheet")

// ErrMissingHeader indicates a sheet lacks a required column.
var ErrMissingHeader = models.ErrMissingHeader

// SheetError represents an error while processing a sheet.
type SheetError struct {
	SheetName string
	Stage     string // "read", "write", or a pass name such as "clean_keywords"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, stage string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
