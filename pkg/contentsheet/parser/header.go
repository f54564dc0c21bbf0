package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
	"golang.org/x/text/cases"
)

// ResolveHeader returns the zero-based index of the first name found in the header.
// Matching ignores leading and trailing whitespace and case.
func ResolveHeader(header []string, names ...string) (int, error) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalizeHeader(h)
	}

	for _, name := range names {
		name = normalizeHeader(name)
		if name == "" {
			continue
		}
		for i, h := range normalized {
			if h == name {
				return i, nil
			}
		}
	}

	return -1, fmt.Errorf("none of %q found in header %q: %w", names, normalized, models.ErrMissingHeader)
}

// ResolveColumns resolves every schema field present in the header.
func ResolveColumns(header []string) models.Columns {
	columns := make(models.Columns, len(models.Fields))
	for _, f := range models.Fields {
		if idx, err := ResolveHeader(header, f.Aliases()...); err == nil {
			columns[f] = idx
		}
	}
	return columns
}

func normalizeHeader(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
