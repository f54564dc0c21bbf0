package export

import (
	"strings"

	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/models"
)

const paragraphSep = "\n\n"

// ReplaceValues applies the literal replacements in order.
func ReplaceValues(content string, rules []models.Replacement) string {
	for _, r := range rules {
		if r.From == "" {
			continue
		}
		content = strings.ReplaceAll(content, r.From, r.To)
	}
	return content
}

// ReplaceLanguages rewrites the language list item: its third paragraph is replaced by
// the languages, one per line, and paragraphs after the fourth are dropped.
// Other titles and content with fewer than four paragraphs are returned unchanged.
func ReplaceLanguages(title, content, listTitle string, languages []string) string {
	if title != listTitle {
		return content
	}
	parts := strings.Split(content, paragraphSep)
	if len(parts) < 4 {
		return content
	}
	return strings.Join([]string{parts[0], parts[1], strings.Join(languages, "\n"), parts[3]}, paragraphSep)
}
