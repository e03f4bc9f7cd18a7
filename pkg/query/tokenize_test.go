package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"camel_and_upper_run", "toukyouOosaka nagoyaFUKUOKAhokkaido ", []string{"toukyou", "Oosaka", "nagoya", "FUKUOKA", "hokkaido"}},
		{"lower_upper", "aaA", []string{"aa", "A"}},
		{"script_transition", "東京Tower", []string{"東京", "Tower"}},
		{"empty", "", nil},
		{"single_char", "a", []string{"a"}},
		{"single_kanji", "東", []string{"東"}},
		{"all_whitespace", "   ", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Tokenize(tc.input))
		})
	}
}
