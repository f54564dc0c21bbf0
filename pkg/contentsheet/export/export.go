// Package export turns content workbooks into platform import bundles.
package export

import (
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/parser"
	"go.uber.org/zap"
)

// Output is a bundle and the file it is written to.
type Output struct {
	Filename string
	Bundle   models.Bundle
}

// Result holds the bundles of an export run in first-seen destination order.
type Result struct {
	Outputs []*Output
	Stats   models.ExportStats
}

// Exporter builds import bundles from a workbook.
type Exporter struct {
	opts  contentsheet.Options
	media models.MediaCatalog
	log   *zap.Logger
}

// New creates an Exporter. media may be nil.
func New(opts contentsheet.Options, media models.MediaCatalog, log *zap.Logger) *Exporter {
	return &Exporter{opts: opts, media: media, log: log}
}

// Export builds one bundle per destination file listed in the ImportInfo sheet.
func (e *Exporter) Export(wb *models.Workbook) (*Result, error) {
	infoSheet, err := contentsheet.RequireSheet(wb, e.opts.ImportInfoSheet)
	if err != nil {
		return nil, err
	}
	info := parser.ParseImportInfo(infoSheet, e.opts.ReplaceCountries, e.opts.PlaceholderNumber)

	result := &Result{}
	outputs := make(map[string]*Output)
	for _, dest := range info.Destinations {
		out, ok := outputs[dest.Filename()]
		if !ok {
			out = &Output{
				Filename: dest.Filename(),
				Bundle:   models.Bundle{Data: []models.ContentRecord{}, SchemaVersion: models.SchemaVersion},
			}
			outputs[dest.Filename()] = out
			result.Outputs = append(result.Outputs, out)
		}

		e.log.Info("processing destination",
			zap.String("destination", dest.Key()),
			zap.String("sheet", dest.SheetName),
			zap.String("file", out.Filename),
		)

		sheet, err := contentsheet.RequireSheet(wb, dest.SheetName)
		if err != nil {
			return nil, err
		}
		records, err := e.sheetRecords(sheet, dest, info.CountryLanguages[dest.Country])
		if err != nil {
			return nil, contentsheet.NewSheetError(sheet.Name, "export", err)
		}

		out.Bundle.Data = append(out.Bundle.Data, records...)
		result.Stats.Content += len(records)
		for _, r := range records {
			result.Stats.Automators += len(r.Automators)
		}
	}

	result.Stats.Destinations = len(result.Outputs)
	result.Stats.Languages = len(info.Languages)
	result.Stats.Sheets = len(info.Destinations)
	return result, nil
}

func (e *Exporter) sheetRecords(sheet *models.Sheet, dest models.Destination, languages []string) ([]models.ContentRecord, error) {
	var records []models.ContentRecord
	for _, row := range sheet.Rows {
		content, err := sheet.Value(row, models.FieldContent)
		if err != nil {
			return nil, err
		}
		if content == "" {
			continue
		}

		question, err := sheet.Value(row, models.FieldTitle)
		if err != nil {
			return nil, err
		}
		code, err := sheet.Value(row, models.FieldLanguage)
		if err != nil {
			return nil, err
		}
		automation, err := sheet.Value(row, models.FieldAutomation)
		if err != nil {
			return nil, err
		}
		var languageSwitch string
		if sheet.Has(models.FieldLanguageSwitch) {
			languageSwitch, _ = sheet.Value(row, models.FieldLanguageSwitch)
		}

		content = ReplaceValues(content, dest.Replacements)
		content = ReplaceLanguages(question, content, e.opts.LanguageListTitle, languages)

		media := e.media[models.StripLanguage(question)]
		records = append(records, models.ContentRecord{
			Answer:                content,
			AttachmentMediaObject: media.AttachmentMediaObject,
			AttachmentMediaType:   media.AttachmentMediaType,
			AttachmentMimeType:    media.AttachmentMimeType,
			AttachmentURI:         media.AttachmentURI,
			Automators:            RowAutomators(question, automation, languageSwitch, models.LanguageCode(code)),
			IsDeleted:             false,
			Language:              code,
			Question:              question,
		})
	}
	return records, nil
}
