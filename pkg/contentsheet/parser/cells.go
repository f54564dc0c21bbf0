package parser

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads a sheet and resolves its header against the field schema.
// Cell values are raw (unformatted); number cells are flagged as numeric.
func ReadSheet(f *excelize.File, sheetName string) (*models.Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make([][]models.Cell, len(rows))
	for rowIdx, row := range rows {
		cells := make([]models.Cell, len(row))
		for colIdx, cellValue := range row {
			cells[colIdx].Value = cellValue
			if cellValue == "" {
				continue
			}

			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			cells[colIdx].Numeric = isNumericCell(typ, cellValue)
		}
		grid[rowIdx] = cells
	}

	return sheetFromCells(sheetName, grid), nil
}

// NewSheet builds a sheet from string values. grid[0] is the header row.
func NewSheet(name string, grid [][]string) *models.Sheet {
	cells := make([][]models.Cell, len(grid))
	for i, row := range grid {
		cells[i] = make([]models.Cell, len(row))
		for j, v := range row {
			cells[i][j].Value = v
		}
	}
	return sheetFromCells(name, cells)
}

func sheetFromCells(name string, grid [][]models.Cell) *models.Sheet {
	sheet := &models.Sheet{
		Name:   name,
		Header: &models.Row{R: 1},
	}
	if len(grid) == 0 {
		sheet.Columns = models.Columns{}
		return sheet
	}

	sheet.Header.Cells = grid[0]
	header := make([]string, len(grid[0]))
	for i, c := range grid[0] {
		header[i] = c.Value
	}
	sheet.Columns = ResolveColumns(header)

	// Rows are padded to the header width so cell pointers stay valid.
	width := len(header)
	for rowIdx := 1; rowIdx < len(grid); rowIdx++ {
		cells := grid[rowIdx]
		if len(cells) < width {
			padded := make([]models.Cell, width)
			copy(padded, cells)
			cells = padded
		}
		sheet.Rows = append(sheet.Rows, &models.Row{R: rowIdx + 1, Cells: cells})
	}

	return sheet
}

func isNumericCell(typ excelize.CellType, value string) bool {
	switch typ {
	case excelize.CellTypeNumber:
		return true
	case excelize.CellTypeUnset:
		_, isString := parseValue(value).(string)
		return !isString
	default:
		return false
	}
}

// IntegerString renders a numeric value as a truncated integer ("6.2" -> "6").
// It returns false when s is not a number.
func IntegerString(s string) (string, bool) {
	switch v := parseValue(strings.TrimSpace(s)).(type) {
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		if v >= math.MinInt64 && v < math.MaxInt64 {
			return strconv.FormatInt(int64(v), 10), true
		}
		i, _ := big.NewFloat(v).Int(nil)
		return i.String(), true
	default:
		return s, false
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if !isDecimal(s) {
		return s
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	// Return as string
	return s
}

// isDecimal rejects the hex, infinity and NaN spellings ParseFloat accepts.
func isDecimal(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return !(r >= '0' && r <= '9') && r != '.' && r != 'e' && r != 'E' && r != '+' && r != '-'
	}) < 0
}
