// Package normalize validates and cleans content workbooks before export.
//
// Passes run in a fixed order over every content sheet. Content problems are collected in a
// Report instead of stopping the run, so a single sweep surfaces every problem; operational
// failures such as a missing column abort immediately.
package normalize

import (
	"fmt"

	"github.com/ukaji3/contentsheet-go/pkg/contentsheet"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
	"go.uber.org/zap"
)

// Pass is a single cleaning or validation step.
type Pass func(wb *models.Workbook, opts contentsheet.Options, report *Report) error

type namedPass struct {
	name string
	run  Pass
}

var passes = []namedPass{
	{"clean_language", CleanLanguage},
	{"clean_content_title", CleanTitles},
	{"clean_keywords", CleanKeywords},
	{"add_english_keywords", AddEnglishKeywords},
	{"check_content_length", CheckContentLength},
	{"add_missing_content", AddMissingContent},
}

// Run applies every pass to the workbook in place and returns the collected issues.
// The workbook must not be saved when the report has issues.
func Run(wb *models.Workbook, opts contentsheet.Options, log *zap.Logger) (*Report, error) {
	report := &Report{}
	for _, p := range passes {
		before := report.Len()
		if err := p.run(wb, opts, report); err != nil {
			return report, fmt.Errorf("%s: %w", p.name, err)
		}
		log.Debug("pass complete",
			zap.String("pass", p.name),
			zap.Int("issues", report.Len()-before),
		)
	}

	log.Info("normalization complete",
		zap.String("workbook", wb.BookName),
		zap.Int("sheets", len(wb.Sheets)),
		zap.Int("issues", report.Len()),
	)
	return report, nil
}
