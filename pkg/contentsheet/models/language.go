package models

import "strings"

// Language is an optional language code. The zero value is NoLanguage.
type Language struct {
	code string
}

// NoLanguage matches contacts that have not chosen a language yet.
var NoLanguage = Language{}

// LanguageCode returns the language for a code. A blank code yields NoLanguage.
func LanguageCode(code string) Language {
	return Language{code: strings.TrimSpace(code)}
}

// IsSet reports whether the language carries a code.
func (l Language) IsSet() bool {
	return l.code != ""
}

// Code returns the language code, or "" for NoLanguage.
func (l Language) Code() string {
	return l.code
}

// ContactValue returns the upper-cased code stored on contacts, or nil for NoLanguage.
func (l Language) ContactValue() *string {
	if !l.IsSet() {
		return nil
	}
	v := strings.ToUpper(l.code)
	return &v
}

func (l Language) String() string {
	if !l.IsSet() {
		return "no-lang"
	}
	return l.code
}

// StripLanguage removes the language prefix from a question id, e.g. "eng_welcome" -> "welcome".
// Ids without an underscore are returned unchanged.
func StripLanguage(question string) string {
	if _, rest, ok := strings.Cut(question, "_"); ok {
		return rest
	}
	return question
}
