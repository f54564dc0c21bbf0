// Package emoji canonicalizes emoji keywords.
package emoji

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
)

// Skin tone modifiers are stripped from emoji keywords. Variation selectors and gender
// modifiers are matched as distinct keywords by the platform, so they are kept.
var skinTones = strings.NewReplacer(
	"\U0001F3FB", "", // skin type 1-2
	"\U0001F3FC", "", // skin type 3
	"\U0001F3FD", "", // skin type 4
	"\U0001F3FE", "", // skin type 5
	"\U0001F3FF", "", // skin type 6
)

var variationSelectors = strings.NewReplacer("\uFE0F", "", "\uFE0E", "")

// pictographic covers symbol blocks that are rendered as emoji but may be
// missing from the emoji table in their unqualified form.
var pictographic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00a9, Hi: 0x00a9, Stride: 1},
		{Lo: 0x00ae, Hi: 0x00ae, Stride: 1},
		{Lo: 0x203c, Hi: 0x203c, Stride: 1},
		{Lo: 0x2049, Hi: 0x2049, Stride: 1},
		{Lo: 0x2122, Hi: 0x2122, Stride: 1},
		{Lo: 0x2139, Hi: 0x2139, Stride: 1},
		{Lo: 0x2190, Hi: 0x21ff, Stride: 1},
		{Lo: 0x231a, Hi: 0x231b, Stride: 1},
		{Lo: 0x2328, Hi: 0x2328, Stride: 1},
		{Lo: 0x23cf, Hi: 0x23cf, Stride: 1},
		{Lo: 0x23e9, Hi: 0x23f3, Stride: 1},
		{Lo: 0x23f8, Hi: 0x23fa, Stride: 1},
		{Lo: 0x24c2, Hi: 0x24c2, Stride: 1},
		{Lo: 0x25aa, Hi: 0x25ab, Stride: 1},
		{Lo: 0x25b6, Hi: 0x25b6, Stride: 1},
		{Lo: 0x25c0, Hi: 0x25c0, Stride: 1},
		{Lo: 0x25fb, Hi: 0x25fe, Stride: 1},
		{Lo: 0x2600, Hi: 0x27bf, Stride: 1},
		{Lo: 0x2934, Hi: 0x2935, Stride: 1},
		{Lo: 0x2b05, Hi: 0x2b07, Stride: 1},
		{Lo: 0x2b1b, Hi: 0x2b1c, Stride: 1},
		{Lo: 0x2b50, Hi: 0x2b50, Stride: 1},
		{Lo: 0x2b55, Hi: 0x2b55, Stride: 1},
		{Lo: 0x3030, Hi: 0x3030, Stride: 1},
		{Lo: 0x303d, Hi: 0x303d, Stride: 1},
		{Lo: 0x3297, Hi: 0x3297, Stride: 1},
		{Lo: 0x3299, Hi: 0x3299, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1f000, Hi: 0x1faff, Stride: 1},
	},
}

// Base strips skin tone modifiers from a keyword that starts with an emoji.
// Other keywords are returned unchanged.
func Base(keyword string) string {
	if _, ok := leading(keyword); ok {
		return skinTones.Replace(keyword)
	}
	return keyword
}

// IsComposite reports whether the keyword is an emoji followed by further characters.
// Variation selectors are ignored for the check.
func IsComposite(keyword string) bool {
	keyword = variationSelectors.Replace(keyword)
	cluster, ok := leading(keyword)
	return ok && len(cluster) < len(keyword)
}

// leading returns the first grapheme cluster of s and whether it is an emoji.
func leading(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return cluster, isEmoji(cluster)
}

func isEmoji(cluster string) bool {
	// Digits and '#' are plain keywords; keycaps carry U+20E3 and are not pure ASCII.
	if isASCII(cluster) {
		return false
	}
	if gomoji.ContainsEmoji(cluster) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.Is(pictographic, r)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
