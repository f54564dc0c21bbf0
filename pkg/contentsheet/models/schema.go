package models

import (
	"errors"
	"fmt"
)

// ErrMissingHeader indicates none of a field's header aliases were found.
var ErrMissingHeader = errors.New("missing header")

// Field is a logical content sheet column.
type Field int

const (
	// FieldTitle is the content (automation) title, e.g. "eng_welcome".
	FieldTitle Field = iota
	// FieldContent is the reply text.
	FieldContent
	// FieldLanguage is the language code.
	FieldLanguage
	// FieldAutomation is the comma separated keyword list.
	FieldAutomation
	// FieldLanguageSwitch is the optional list of keywords that switch the contact's language.
	FieldLanguageSwitch
)

// Fields lists every logical field in column resolution order.
var Fields = []Field{FieldTitle, FieldContent, FieldLanguage, FieldAutomation, FieldLanguageSwitch}

var fieldAliases = map[Field][]string{
	FieldTitle:          {"content_title", "content title", "automation title"},
	FieldContent:        {"content"},
	FieldLanguage:       {"language"},
	FieldAutomation:     {"automation"},
	FieldLanguageSwitch: {"language automation", "language switch", "language keywords"},
}

// Aliases returns the accepted header names for the field, most preferred first.
func (f Field) Aliases() []string {
	return fieldAliases[f]
}

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "content title"
	case FieldContent:
		return "content"
	case FieldLanguage:
		return "language"
	case FieldAutomation:
		return "automation"
	case FieldLanguageSwitch:
		return "language switch"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Columns maps resolved fields to zero-based column indexes.
type Columns map[Field]int
