// Package louds implements a LOUDS-encoded trie over 16-bit code units
// with exact, common-prefix, and predictive search.
package louds

import (
	"sort"

	"github.com/xflash-panda/migemo/pkg/bitvector"
)

// Trie is a LOUDS-encoded trie. Node ids are 1-based; id 1 is the
// super-root. Edges[0] and Edges[1] are reserved/synthetic.
type Trie struct {
	Bits  *bitvector.BitVector
	Edges []uint16
}

// New wraps a pre-built bit vector and edge array (used when reading a
// trie out of a serialized dictionary).
func New(bits *bitvector.BitVector, edges []uint16) *Trie {
	return &Trie{Bits: bits, Edges: edges}
}

// NumNodes returns the total number of entries in the edge array,
// including the two reserved/synthetic entries at indices 0 and 1.
func (t *Trie) NumNodes() int { return len(t.Edges) }

// Parent returns the parent node id of x.
func (t *Trie) Parent(x int) int {
	return t.Bits.Rank(t.Bits.Select(x, true), false)
}

// FirstChild returns the first child node id of x, or 0 if x is a leaf.
func (t *Trie) FirstChild(x int) (int, bool) {
	y := t.Bits.Select(x, false) + 1
	if y >= t.Bits.Size() || !t.Bits.Get(y) {
		return 0, false
	}
	return t.Bits.Rank(y, true) + 1, true
}

// Traverse follows the edge labeled c from node x, returning the child id.
func (t *Trie) Traverse(x int, c uint16) (int, bool) {
	first, ok := t.FirstChild(x)
	if !ok {
		return 0, false
	}
	childStartBit := t.Bits.Select(first, true)
	childEndBit := t.Bits.NextClearBit(childStartBit)
	childSize := childEndBit - childStartBit

	edges := t.Edges[first : first+childSize]
	idx := sort.Search(len(edges), func(i int) bool { return edges[i] >= c })
	if idx >= len(edges) || edges[idx] != c {
		return 0, false
	}
	return first + idx, true
}

// Get resolves a full key to its node id.
func (t *Trie) Get(key []uint16) (int, bool) {
	node := 1
	for _, c := range key {
		n, ok := t.Traverse(node, c)
		if !ok {
			return 0, false
		}
		node = n
	}
	return node, true
}

// GetKey reconstructs the key stored at node id, most significant code
// unit first.
func (t *Trie) GetKey(id int) []uint16 {
	var rev []uint16
	for id > 1 {
		rev = append(rev, t.Edges[id])
		id = t.Parent(id)
	}
	key := make([]uint16, len(rev))
	for i, c := range rev {
		key[len(rev)-1-i] = c
	}
	return key
}

// GetKeyInto appends the key stored at node id onto dst and returns the
// extended slice, avoiding the extra allocation GetKey performs when the
// caller already owns a reusable buffer (e.g. across repeated calls in a
// predictive-search visit loop).
func (t *Trie) GetKeyInto(id int, dst []uint16) []uint16 {
	start := len(dst)
	for id > 1 {
		dst = append(dst, t.Edges[id])
		id = t.Parent(id)
	}
	for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}
	return dst
}

// CommonPrefixSearch walks key code unit by code unit from the root,
// invoking visit(nodeID) after every successful step and stopping at the
// first miss or when key is exhausted.
func (t *Trie) CommonPrefixSearch(key []uint16, visit func(nodeID int)) {
	node := 1
	for _, c := range key {
		n, ok := t.Traverse(node, c)
		if !ok {
			return
		}
		node = n
		visit(node)
	}
}

// PredictiveSearch enumerates node itself and every descendant in LOUDS
// level order, invoking visit for each.
func (t *Trie) PredictiveSearch(node int, visit func(nodeID int)) {
	visit(node)
	lower, upper := node, node+1
	for lower < upper {
		nextLower := t.rangeChildStart(lower)
		nextUpper := t.rangeChildStart(upper)
		for i := nextLower; i < nextUpper; i++ {
			visit(i)
		}
		lower, upper = nextLower, nextUpper
	}
}

// rangeChildStart computes the node id at which x's children begin,
// regardless of whether x actually has children (an empty child run
// yields rangeChildStart(x) == rangeChildStart(x+1)).
func (t *Trie) rangeChildStart(x int) int {
	y := t.Bits.Select(x, false) + 1
	return t.Bits.Rank(y, true) + 1
}

// Build constructs a LOUDS trie from a sorted, distinct set of non-empty
// keys. It returns the trie and, for each input key (in input order),
// the node id where its last code unit was placed.
func Build(keys [][]uint16) (*Trie, []int) {
	type pending struct {
		keyIdx int
		offset int
	}

	edges := []uint16{0, 0} // reserved/synthetic E[0], E[1]
	var bitBuf []bool
	bitBuf = append(bitBuf, true, false) // super-root's own LOUDS bits

	ids := make([]int, len(keys))
	nextNode := 2 // node 1 is the super-root

	// frontier holds, for each currently-open parent, the indices (into
	// keys) of keys sharing that parent, plus their consumed offset.
	type parentGroup struct {
		parentNode int
		items      []pending
	}

	root := parentGroup{parentNode: 1}
	for i := range keys {
		root.items = append(root.items, pending{keyIdx: i, offset: 0})
	}
	frontier := []parentGroup{root}

	for len(frontier) > 0 {
		var nextFrontier []parentGroup
		for _, pg := range frontier {
			// group pg.items by the code unit at their current offset;
			// items whose offset == len(key) terminate at pg.parentNode.
			var withChar []pending
			for _, it := range pg.items {
				if it.offset < len(keys[it.keyIdx]) {
					withChar = append(withChar, it)
				} else {
					ids[it.keyIdx] = pg.parentNode
				}
			}
			sort.SliceStable(withChar, func(a, b int) bool {
				return keys[withChar[a].keyIdx][withChar[a].offset] < keys[withChar[b].keyIdx][withChar[b].offset]
			})

			childCount := 0
			i := 0
			for i < len(withChar) {
				c := keys[withChar[i].keyIdx][withChar[i].offset]
				j := i
				var group []pending
				for j < len(withChar) && keys[withChar[j].keyIdx][withChar[j].offset] == c {
					group = append(group, pending{keyIdx: withChar[j].keyIdx, offset: withChar[j].offset + 1})
					j++
				}
				childNode := nextNode
				nextNode++
				edges = append(edges, c)
				bitBuf = append(bitBuf, true)
				nextFrontier = append(nextFrontier, parentGroup{parentNode: childNode, items: group})
				childCount++
				i = j
			}
			bitBuf = append(bitBuf, false)
		}
		frontier = nextFrontier
	}

	words := make([]uint64, (len(bitBuf)+63)/64)
	for i, b := range bitBuf {
		if b {
			words[i/64] |= 1 << uint(i%64)
		}
	}
	bv := bitvector.New(words, len(bitBuf))
	return &Trie{Bits: bv, Edges: edges}, ids
}
