package query

import "unicode"

// Tokenize splits input into left-to-right tokens using the boundary
// rules: a case transition (lower->upper, or upper->lower after an
// all-uppercase run of length >= 2), a script-class transition (ASCII
// alphanumeric vs everything else), or a run of whitespace, which is
// discarded rather than kept as its own token.
func Tokenize(input string) []string {
	var tokens []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = nil
		}
	}

	havePrev := false
	var prev rune
	for _, r := range input {
		if unicode.IsSpace(r) {
			flush()
			havePrev = false
			continue
		}
		if havePrev && isBoundary(prev, cur, r) {
			flush()
		}
		cur = append(cur, r)
		prev = r
		havePrev = true
	}
	flush()
	return tokens
}

func isBoundary(prev rune, token []rune, cur rune) bool {
	if unicode.IsLower(prev) && unicode.IsUpper(cur) {
		return true
	}
	if unicode.IsUpper(prev) && unicode.IsLower(cur) && len(token) >= 2 && isAllUpper(token) {
		return true
	}
	if isASCIIAlnum(prev) != isASCIIAlnum(cur) {
		return true
	}
	return false
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isAllUpper(token []rune) bool {
	for _, r := range token {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
