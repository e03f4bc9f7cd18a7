// Package kana implements pure, stateless Japanese character-width and
// kana-script conversions: half-width katakana <-> full-width katakana
// (with combining voiced/semi-voiced marks), full-width alphanumeric and
// katakana -> half-width, and hiragana <-> katakana.
package kana

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Han2Zen converts half-width forms (katakana, ASCII, space) to their
// full-width equivalent. Half-width kana followed by a combining
// dakuten/handakuten mark is folded into the single precomposed
// full-width kana, matching how a human types/reads it.
func Han2Zen(s string) string {
	widened := width.Widen.String(s)
	return norm.NFC.String(widened)
}

// Zen2Han converts full-width forms (katakana, ASCII, space) to their
// half-width equivalent. Voiced/semi-voiced full-width kana decompose
// into a half-width base kana followed by a combining mark.
func Zen2Han(s string) string {
	decomposed := norm.NFD.String(s)
	return width.Narrow.String(decomposed)
}

const (
	hiraganaStart = 0x3041
	hiraganaEnd   = 0x3094
	katakanaStart = 0x30A1
	katakanaEnd   = 0x30F4
)

// Hira2Kata converts hiragana (U+3041-U+3094) to katakana (U+30A1-U+30F4);
// other runes pass through unchanged.
func Hira2Kata(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= hiraganaStart && r <= hiraganaEnd {
			b.WriteRune(r - hiraganaStart + katakanaStart)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Kata2Hira converts katakana (U+30A1-U+30F4) to hiragana (U+3041-U+3094);
// other runes pass through unchanged.
func Kata2Hira(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= katakanaStart && r <= katakanaEnd {
			b.WriteRune(r - katakanaStart + hiraganaStart)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
