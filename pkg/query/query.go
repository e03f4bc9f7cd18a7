// Package query orchestrates the full romaji-to-regex pipeline: it
// tokenizes input, expands each token through the dictionary, romaji
// converter, and kana folding, and hands every candidate to a
// per-token RegexGenerator.
package query

import (
	"strings"

	"github.com/xflash-panda/migemo/pkg/dictionary"
	"github.com/xflash-panda/migemo/pkg/kana"
	"github.com/xflash-panda/migemo/pkg/regexgen"
	"github.com/xflash-panda/migemo/pkg/romaji"
)

// Query expands input into a single regex string in the given operator's
// syntax, concatenating each token's expansion in input order with no
// separator. Empty input yields an empty string.
func Query(input string, dict *dictionary.Dictionary, conv *romaji.Converter, op regexgen.Operator) string {
	return QueryWithOptions(input, dict, conv, op, true)
}

// QueryWithOptions is Query with the dictionary-predictive-search step
// (queryWord steps 2 and 4b) made optional, trading recall for speed.
func QueryWithOptions(input string, dict *dictionary.Dictionary, conv *romaji.Converter, op regexgen.Operator, predictiveDictionarySearch bool) string {
	var sb strings.Builder
	for _, tok := range Tokenize(input) {
		sb.WriteString(queryWord(tok, dict, conv, op, predictiveDictionarySearch))
	}
	return sb.String()
}

// queryWord implements the per-token candidate expansion described by
// the core spec's Query Orchestrator: the token itself, its dictionary
// predictive matches, its half/full-width variants, and every romaji
// predictive continuation (hiragana, dictionary matches on that
// hiragana, and its katakana/half-width-katakana forms).
func queryWord(w string, dict *dictionary.Dictionary, conv *romaji.Converter, op regexgen.Operator, predictiveDictionarySearch bool) string {
	gen := regexgen.New()
	gen.AddString(w)

	lower := strings.ToLower(w)

	if predictiveDictionarySearch && dict != nil {
		dict.PredictiveSearch(toUTF16(lower), func(value []uint16) {
			gen.AddString(fromUTF16(value))
		})
	}

	gen.AddString(kana.Han2Zen(w))
	gen.AddString(kana.Zen2Han(w))

	if conv != nil {
		result := conv.ToHiraganaPredictively(lower)
		for _, suffix := range result.Suffixes {
			hira := result.Prefix + suffix
			if hira == "" {
				continue
			}
			gen.AddString(hira)

			if predictiveDictionarySearch && dict != nil {
				dict.PredictiveSearch(toUTF16(hira), func(value []uint16) {
					gen.AddString(fromUTF16(value))
				})
			}

			kata := kana.Hira2Kata(hira)
			gen.AddString(kata)
			gen.AddString(kana.Zen2Han(kata))
		}
	}

	return gen.Generate(op)
}

func toUTF16(s string) []uint16 {
	return regexgen.StringToUTF16(s)
}

func fromUTF16(units []uint16) string {
	return regexgen.UTF16ToString(units)
}
