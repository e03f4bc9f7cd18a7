package louds

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toUTF16(s string) []uint16 {
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

func buildFrom(words []string) (*Trie, []int) {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	keys := make([][]uint16, len(sorted))
	for i, w := range sorted {
		keys[i] = toUTF16(w)
	}
	return Build(keys)
}

func TestBuildRoundTrip(t *testing.T) {
	words := []string{"baby", "bad", "bank", "box", "dad", "dance"}
	trie, ids := buildFrom(words)

	for i, w := range words {
		id := ids[i]
		require.NotZero(t, id)
		got := trie.GetKey(id)
		assert.Equal(t, toUTF16(w), got)
	}
}

func TestGetMiss(t *testing.T) {
	trie, _ := buildFrom([]string{"bad", "bank"})
	// "ba" is an inner node shared by "bad" and "bank", so it resolves;
	// "bat" leaves the trie at its last code unit.
	_, ok := trie.Get(toUTF16("bat"))
	assert.False(t, ok)
	_, ok = trie.Get(toUTF16("zzz"))
	assert.False(t, ok)
}

func TestCommonPrefixSearch(t *testing.T) {
	trie, _ := buildFrom([]string{"a", "ab", "abc"})

	var visited []int
	trie.CommonPrefixSearch(toUTF16("abc"), func(id int) { visited = append(visited, id) })
	require.Len(t, visited, 3)
	assert.Equal(t, []uint16{'a'}, trie.GetKey(visited[0]))
	assert.Equal(t, []uint16{'a', 'b'}, trie.GetKey(visited[1]))
	assert.Equal(t, []uint16{'a', 'b', 'c'}, trie.GetKey(visited[2]))
}

func TestPredictiveSearch(t *testing.T) {
	words := []string{"bad", "bank", "bay", "box", "cat"}
	trie, ids := buildFrom(words)

	prefixNode, ok := trie.Get(toUTF16("ba"))
	require.True(t, ok)

	got := map[string]bool{}
	trie.PredictiveSearch(prefixNode, func(id int) {
		for i, w := range []string{"bad", "bank", "bay", "box", "cat"} {
			if ids[i] == id {
				got[w] = true
			}
		}
	})
	assert.True(t, got["bad"])
	assert.True(t, got["bank"])
	assert.True(t, got["bay"])
	assert.False(t, got["box"])
	assert.False(t, got["cat"])
}
