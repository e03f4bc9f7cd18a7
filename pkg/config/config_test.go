package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xflash-panda/migemo/pkg/regexgen"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
	assert.Equal(t, "default", cfg.Operator)
	assert.True(t, cfg.PredictiveDictionarySearch)

	op, err := cfg.ResolveOperator()
	require.NoError(t, err)
	assert.Equal(t, regexgen.Default, op)
}

func TestLoadOverridesDefaults(t *testing.T) {
	yamlDoc := `
cache_size: 64
operator: vim
predictive_dictionary_search: false
`
	cfg, err := Load(strings.NewReader(yamlDoc))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.CacheSize)
	assert.False(t, cfg.PredictiveDictionarySearch)

	op, err := cfg.ResolveOperator()
	require.NoError(t, err)
	assert.Equal(t, regexgen.Vim, op)
}

func TestLoadEmptyDocumentYieldsDefaults(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsNegativeCacheSize(t *testing.T) {
	_, err := Load(strings.NewReader("cache_size: -1\n"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownOperator(t *testing.T) {
	_, err := Load(strings.NewReader("operator: notarealoperator\n"))
	assert.Error(t, err)
}

func TestResolveOperatorAllNames(t *testing.T) {
	cases := map[string]regexgen.Operator{
		"":                  regexgen.Default,
		"default":           regexgen.Default,
		"vim":               regexgen.Vim,
		"emacs":             regexgen.Emacs,
		"vim_non_newline":   regexgen.VimNonNewline,
		"emacs_non_newline": regexgen.EmacsNonNewline,
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Config{Operator: name}
			got, err := cfg.ResolveOperator()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}
