// Package config loads the query-time tunables that sit above the core
// matching pipeline: cache size, default regex operator, and whether
// predictive dictionary search runs for every token.
package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/xflash-panda/migemo/pkg/regexgen"
)

// DefaultCacheSize is the default bound for the query-result LRU cache.
const DefaultCacheSize = 1024

// Config is the set of tunables a host loads once at startup and passes
// into pkg/query. The zero value is not valid; use Default() or Load().
type Config struct {
	// CacheSize bounds the query-result LRU cache. Zero makes
	// query.NewCache use DefaultCacheSize; Load rejects negative values.
	CacheSize int `yaml:"cache_size"`
	// Operator names one of the built-in regexgen profiles: "default",
	// "vim", "emacs", "vim_non_newline", "emacs_non_newline".
	Operator string `yaml:"operator"`
	// PredictiveDictionarySearch toggles step 2/4b of queryWord
	// (CompactDictionary.PredictiveSearch); disabling it trades recall
	// for speed on large dictionaries.
	PredictiveDictionarySearch bool `yaml:"predictive_dictionary_search"`
}

// Default returns the out-of-the-box tunables.
func Default() Config {
	return Config{
		CacheSize:                  DefaultCacheSize,
		Operator:                   "default",
		PredictiveDictionarySearch: true,
	}
}

// Load reads YAML tunables from r, filling in Default() for any field
// the document omits.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.CacheSize < 0 {
		return Config{}, fmt.Errorf("cache_size must be >= 0, got %d", cfg.CacheSize)
	}
	if _, err := cfg.resolveOperator(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolveOperator maps Operator's name to the concrete regexgen.Operator.
func (c Config) ResolveOperator() (regexgen.Operator, error) {
	return c.resolveOperator()
}

func (c Config) resolveOperator() (regexgen.Operator, error) {
	switch c.Operator {
	case "", "default":
		return regexgen.Default, nil
	case "vim":
		return regexgen.Vim, nil
	case "emacs":
		return regexgen.Emacs, nil
	case "vim_non_newline":
		return regexgen.VimNonNewline, nil
	case "emacs_non_newline":
		return regexgen.EmacsNonNewline, nil
	default:
		return regexgen.Operator{}, fmt.Errorf("unknown operator %q", c.Operator)
	}
}
