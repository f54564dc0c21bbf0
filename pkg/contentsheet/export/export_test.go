package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/parser"
	"go.uber.org/zap"
)

func testWorkbook() *models.Workbook {
	importInfo := parser.NewSheet("ImportInfo", [][]string{
		{"Sheet", "Number type", "Country", "Number"},
		{"English master", "prod", "Zambia", "=260971234567"},
		{"Bemba (Zambia)", "prod", "Zambia", "260971234567"},
		{"English master", "sandbox", "South Africa", "27600109000"},
	})
	english := parser.NewSheet("English master", [][]string{
		{"Content title", "Content", "Language", "Automation", "Language switch"},
		{"eng_welcome", "Welcome to South Africa! Call 27600109000.", "eng", "hi,hello", "english"},
		{"eng_language", "Pick one\n\nReply with a number\n\nlist\n\nThanks", "eng", "6.0", ""},
		{"eng_empty", "", "eng", "empty", ""},
	})
	bemba := parser.NewSheet("Bemba (Zambia)", [][]string{
		{"content title", "content", "language", "automation"},
		{"bem_welcome", "Mwaiseni", "bem", "muli shani", ""},
	})
	return &models.Workbook{BookName: "who_content.xlsx", Sheets: []*models.Sheet{importInfo, english, bemba}}
}

func TestExport(t *testing.T) {
	media := models.MediaCatalog{
		"welcome": {
			Question:              "eng_welcome",
			AttachmentMediaObject: map[string]any{"id": "abc"},
			AttachmentMediaType:   strPtr("image"),
			AttachmentMimeType:    strPtr("image/png"),
			AttachmentURI:         strPtr("https://example.com/welcome.png"),
		},
	}

	result, err := New(contentsheet.DefaultOptions(), media, zap.NewNop()).Export(testWorkbook())
	require.NoError(t, err)

	require.Len(t, result.Outputs, 2)
	zambia := result.Outputs[0]
	assert.Equal(t, "content_Zambia_prod.json", zambia.Filename)
	assert.Equal(t, "content_South_Africa_sandbox.json", result.Outputs[1].Filename)
	assert.Equal(t, models.SchemaVersion, zambia.Bundle.SchemaVersion)

	// English rows with content, then the Bemba sheet
	require.Len(t, zambia.Bundle.Data, 3)
	welcome := zambia.Bundle.Data[0]
	assert.Equal(t, "eng_welcome", welcome.Question)
	assert.Equal(t, "eng", welcome.Language)
	assert.Equal(t, "Welcome to Zambia! Call 260971234567.", welcome.Answer)
	assert.Equal(t, map[string]any{"id": "abc"}, welcome.AttachmentMediaObject)
	assert.Equal(t, "image/png", *welcome.AttachmentMimeType)
	require.Len(t, welcome.Automators, 3)
	assert.Equal(t, "eng-welcome", welcome.Automators[0].Name)
	assert.Equal(t, "null-language-welcome", welcome.Automators[1].Name)
	assert.Equal(t, "eng-language-switch", welcome.Automators[2].Name)

	language := zambia.Bundle.Data[1]
	assert.Equal(t, "Pick one\n\nReply with a number\n\nEnglish master\nBemba\n\nThanks", language.Answer)
	assert.Nil(t, language.AttachmentMediaObject)
	assert.Nil(t, language.AttachmentURI)
	assert.Equal(t, models.ExactMatch{ExactMatch: "6"}, language.Automators[0].Config.Data.Triggers[1].TriggerParams)

	bemba := zambia.Bundle.Data[2]
	assert.Equal(t, "bem_welcome", bemba.Question)
	require.Len(t, bemba.Automators, 1)
	assert.Equal(t, "bem-welcome", bemba.Automators[0].Name)

	sandbox := result.Outputs[1].Bundle.Data
	require.Len(t, sandbox, 2)
	assert.Equal(t, "Welcome to South Africa! Call 27600109000.", sandbox[0].Answer)

	assert.Equal(t, models.ExportStats{
		Destinations: 2,
		Languages:    2,
		Sheets:       3,
		Content:      5,
		Automators:   3 + 2 + 1 + 3 + 2,
	}, result.Stats)
}

func TestExportMissingImportInfo(t *testing.T) {
	wb := testWorkbook()
	wb.Sheets = wb.Sheets[1:]

	_, err := New(contentsheet.DefaultOptions(), nil, zap.NewNop()).Export(wb)
	assert.ErrorIs(t, err, contentsheet.ErrMissingSheet)
}

func TestExportMissingHeader(t *testing.T) {
	wb := testWorkbook()
	wb.Sheets[2] = parser.NewSheet("Bemba (Zambia)", [][]string{
		{"content title", "content", "automation"},
		{"bem_welcome", "Mwaiseni", "muli shani"},
	})

	_, err := New(contentsheet.DefaultOptions(), nil, zap.NewNop()).Export(wb)
	assert.ErrorIs(t, err, contentsheet.ErrMissingHeader)

	var sheetErr *contentsheet.SheetError
	require.ErrorAs(t, err, &sheetErr)
	assert.Equal(t, "Bemba (Zambia)", sheetErr.SheetName)
}
