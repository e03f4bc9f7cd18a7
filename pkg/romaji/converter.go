// Package romaji converts ASCII romanized input into hiragana, both
// deterministically (longest match, left to right) and predictively
// (returning every hiragana continuation an ambiguous trailing
// fragment could still complete to).
package romaji

import (
	"sort"
	"strings"
	"sync"

	"github.com/xflash-panda/migemo/pkg/bitvector"
	"github.com/xflash-panda/migemo/pkg/louds"
)

type mapping struct {
	valueNodeID int
	remain      int
}

// Converter bundles the trie-shaped static romaji data described by the
// core spec: a sorted romaji key trie, its terminal bitmap, a hiragana
// value trie, and per-terminal (valueNodeID, remain) mappings.
type Converter struct {
	keyTrie     *louds.Trie
	keyTerminal *bitvector.BitVector
	valueTrie   *louds.Trie
	mappings    map[int]mapping // keyed by key-trie terminal node id
}

var (
	once    sync.Once
	shared  *Converter
)

// Shared returns a process-wide memoized Converter built from the
// built-in romaji table. Construction cost is non-trivial, so callers
// should prefer this over New for repeated queries.
func Shared() *Converter {
	once.Do(func() { shared = New() })
	return shared
}

// New builds a fresh Converter from the built-in romaji table.
func New() *Converter {
	type kv struct {
		roman    []uint16
		hiragana []uint16
		remain   int
	}

	dedup := make(map[string]kv, len(romanEntries))
	for _, e := range romanEntries {
		dedup[e.roman] = kv{roman: stringToUTF16(e.roman), hiragana: stringToUTF16(e.hiragana), remain: e.remain}
	}

	romanKeys := make([][]uint16, 0, len(dedup))
	for _, v := range dedup {
		romanKeys = append(romanKeys, v.roman)
	}
	sort.Slice(romanKeys, func(i, j int) bool { return lessUTF16(romanKeys[i], romanKeys[j]) })

	keyTrie, keyIDs := louds.Build(romanKeys)

	hiraganaSet := map[string][]uint16{}
	for _, v := range dedup {
		hiraganaSet[utf16ToString(v.hiragana)] = v.hiragana
	}
	hiraganaKeys := make([][]uint16, 0, len(hiraganaSet))
	for _, v := range hiraganaSet {
		hiraganaKeys = append(hiraganaKeys, v)
	}
	sort.Slice(hiraganaKeys, func(i, j int) bool { return lessUTF16(hiraganaKeys[i], hiraganaKeys[j]) })
	valueTrie, _ := louds.Build(hiraganaKeys)

	terminalBits := make([]bool, keyTrie.NumNodes())
	mappings := make(map[int]mapping, len(romanKeys))
	for i, key := range romanKeys {
		v := dedup[utf16ToString(key)]
		nodeID := keyIDs[i]
		terminalBits[nodeID] = true
		valID, ok := valueTrie.Get(v.hiragana)
		if !ok {
			continue
		}
		mappings[nodeID] = mapping{valueNodeID: valID, remain: v.remain}
	}

	words := make([]uint64, (len(terminalBits)+63)/64)
	for i, b := range terminalBits {
		if b {
			words[i/64] |= 1 << uint(i%64)
		}
	}
	keyTerminal := bitvector.New(words, len(terminalBits))

	return &Converter{keyTrie: keyTrie, keyTerminal: keyTerminal, valueTrie: valueTrie, mappings: mappings}
}

// ToHiragana deterministically converts romaji to hiragana using
// longest-match, left-to-right matching. Unmatched input characters are
// carried through verbatim.
func (c *Converter) ToHiragana(romaji string) string {
	units := stringToUTF16(strings.ToLower(romaji))
	var out []uint16
	start := 0
	for start < len(units) {
		bestNode, bestLen := c.longestTerminalMatch(units, start)
		if bestNode >= 0 {
			m := c.mappings[bestNode]
			out = append(out, c.valueTrie.GetKey(m.valueNodeID)...)
			start += bestLen - m.remain
		} else {
			out = append(out, units[start])
			start++
		}
	}
	return utf16ToString(out)
}

// longestTerminalMatch walks the key trie from start, returning the
// terminal node id and match length of the longest terminal reached, or
// bestNode -1 when no terminal is reached.
func (c *Converter) longestTerminalMatch(units []uint16, start int) (bestNode, bestLen int) {
	bestNode = -1
	node := 1
	for i := start; i < len(units); i++ {
		n, ok := c.keyTrie.Traverse(node, units[i])
		if !ok {
			break
		}
		node = n
		length := i - start + 1
		if c.keyTerminal.Get(node) {
			bestNode, bestLen = node, length
		}
	}
	return bestNode, bestLen
}

// PredictiveResult is the output of ToHiraganaPredictively: prefix is the
// unambiguous hiragana converted so far, and suffixes is the set of
// hiragana continuations the remaining (ambiguous) romaji tail could
// still resolve to. A fully unambiguous conversion has exactly one
// suffix, the empty string.
type PredictiveResult struct {
	Prefix   string
	Suffixes []string
}

// ToHiraganaPredictively converts romaji to hiragana the same way
// ToHiragana does, except when the remaining input is an ambiguous
// prefix of multiple romaji keys (e.g. "ky" matching kya/kyi/kyu/kye/kyo)
// at the tail of input, in which case it stops and reports every
// possible hiragana continuation instead of guessing.
func (c *Converter) ToHiraganaPredictively(romaji string) PredictiveResult {
	units := stringToUTF16(strings.ToLower(romaji))
	var prefix []uint16
	start := 0
	for start < len(units) {
		node := 1
		bestNode, bestLen := -1, 0
		reachedEnd := false
		for i := start; i < len(units); i++ {
			n, ok := c.keyTrie.Traverse(node, units[i])
			if !ok {
				break
			}
			node = n
			length := i - start + 1
			if c.keyTerminal.Get(node) {
				bestNode, bestLen = node, length
			}
			if i == len(units)-1 {
				reachedEnd = true
			}
		}
		if reachedEnd {
			var descendants []int
			c.keyTrie.PredictiveSearch(node, func(id int) {
				if c.keyTerminal.Get(id) {
					descendants = append(descendants, id)
				}
			})
			if len(descendants) > 1 || (len(descendants) == 1 && bestNode != node) {
				suffixSet := map[string][]uint16{}
				for _, d := range descendants {
					m := c.mappings[d]
					if m.remain > 0 {
						tailStart := len(units) - m.remain
						if tailStart < start {
							continue
						}
						subNode, ok := c.keyTrie.Get(units[tailStart:])
						if !ok {
							continue
						}
						var subDescendants []int
						c.keyTrie.PredictiveSearch(subNode, func(id int) {
							if c.keyTerminal.Get(id) {
								subDescendants = append(subDescendants, id)
							}
						})
						for _, sd := range subDescendants {
							sm := c.mappings[sd]
							if sm.remain != 0 {
								continue
							}
							combined := append(append([]uint16{}, c.valueTrie.GetKey(m.valueNodeID)...), c.valueTrie.GetKey(sm.valueNodeID)...)
							suffixSet[string(utf16ToString(combined))] = combined
						}
					} else {
						v := c.valueTrie.GetKey(m.valueNodeID)
						suffixSet[string(utf16ToString(v))] = v
					}
				}
				suffixes := make([]string, 0, len(suffixSet))
				for _, v := range suffixSet {
					suffixes = append(suffixes, utf16ToString(v))
				}
				sort.Strings(suffixes)
				if len(suffixes) == 0 {
					suffixes = []string{""}
				}
				return PredictiveResult{Prefix: utf16ToString(prefix), Suffixes: suffixes}
			}
		}
		if bestNode >= 0 {
			m := c.mappings[bestNode]
			prefix = append(prefix, c.valueTrie.GetKey(m.valueNodeID)...)
			start += bestLen - m.remain
		} else {
			prefix = append(prefix, units[start])
			start++
		}
	}
	return PredictiveResult{Prefix: utf16ToString(prefix), Suffixes: []string{""}}
}

func stringToUTF16(s string) []uint16 {
	out := make([]uint16, 0, len(s))
	for _, r := range s {
		if r <= 0xffff {
			out = append(out, uint16(r))
			continue
		}
		r -= 0x10000
		out = append(out, uint16(0xd800+(r>>10)), uint16(0xdc00+(r&0x3ff)))
	}
	return out
}

func utf16ToString(units []uint16) string {
	runes := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		if u >= 0xd800 && u <= 0xdbff && i+1 < len(units) {
			lo := units[i+1]
			if lo >= 0xdc00 && lo <= 0xdfff {
				r := (rune(u-0xd800)<<10 | rune(lo-0xdc00)) + 0x10000
				runes = append(runes, r)
				i++
				continue
			}
		}
		runes = append(runes, rune(u))
	}
	return string(runes)
}

func lessUTF16(a, b []uint16) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
