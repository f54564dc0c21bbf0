package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
)

func TestReplaceValues(t *testing.T) {
	rules := []models.Replacement{
		{From: "South Africa", To: "Zambia"},
		{From: "SOUTH AFRICA", To: "ZAMBIA"},
		{From: "", To: "ignored"},
		{From: "27600109000", To: "260971234567"},
	}

	got := ReplaceValues("Welcome to SOUTH AFRICA! Call 27600109000 anywhere in South Africa.", rules)
	assert.Equal(t, "Welcome to ZAMBIA! Call 260971234567 anywhere in Zambia.", got)
	assert.Equal(t, "unchanged", ReplaceValues("unchanged", nil))
}

func TestReplaceLanguages(t *testing.T) {
	languages := []string{"Bemba", "Nyanja"}
	content := "Choose a language\n\nReply with the number\n\n1. English\n2. isiZulu\n\nThanks\n\nextra"

	tests := []struct {
		name     string
		title    string
		content  string
		expected string
	}{
		{
			name:     "language list",
			title:    "eng_language",
			content:  content,
			expected: "Choose a language\n\nReply with the number\n\nBemba\nNyanja\n\nThanks",
		},
		{
			name:     "other title",
			title:    "eng_welcome",
			content:  content,
			expected: content,
		},
		{
			name:     "too few paragraphs",
			title:    "eng_language",
			content:  "Choose\n\nReply\n\nlist",
			expected: "Choose\n\nReply\n\nlist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReplaceLanguages(tt.title, tt.content, "eng_language", languages))
		})
	}
}
