// Package dictionary implements the succinct two-trie reading/word
// dictionary (CompactDictionary): a key trie over compact-hiragana code
// units, a value trie over full 16-bit code units, a mapping bit-vector
// tying key nodes to runs of value-trie node ids, and predictive lookup.
package dictionary

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/xflash-panda/migemo/pkg/bitvector"
	"github.com/xflash-panda/migemo/pkg/louds"
)

// Dictionary is an immutable, concurrency-safe key->values lookup
// structure loaded from the binary format described in the core spec.
type Dictionary struct {
	keyTrie     *louds.Trie
	valueTrie   *louds.Trie
	mappingBits *bitvector.BitVector
	mapping     []uint32
	hasMapping  []bool
}

// decodeCompactHiragana maps a compact-hiragana byte to its code unit:
// 0x20-0x7e is ASCII verbatim, 0xa1-0xf6 is hiragana U+3041-U+3096,
// anything else is the sentinel U+0000.
func decodeCompactHiragana(c byte) uint16 {
	if c >= 0x20 && c <= 0x7e {
		return uint16(c)
	}
	if c >= 0xa1 && c <= 0xf6 {
		return uint16(c) + 0x3040 - 0xa0
	}
	return 0
}

func readTrie(r io.Reader, compactHiragana bool) (*louds.Trie, error) {
	var edgeCount uint32
	if err := binary.Read(r, binary.BigEndian, &edgeCount); err != nil {
		return nil, fmt.Errorf("read edge count: %w", err)
	}
	edges := make([]uint16, edgeCount)
	for i := range edges {
		if compactHiragana {
			var b [1]byte
			if _, err := io.ReadFull(r, b[:]); err != nil {
				return nil, fmt.Errorf("read compact-hiragana edge %d: %w", i, err)
			}
			edges[i] = decodeCompactHiragana(b[0])
		} else {
			var c uint16
			if err := binary.Read(r, binary.BigEndian, &c); err != nil {
				return nil, fmt.Errorf("read edge %d: %w", i, err)
			}
			edges[i] = c
		}
	}

	var bitSize uint32
	if err := binary.Read(r, binary.BigEndian, &bitSize); err != nil {
		return nil, fmt.Errorf("read bit size: %w", err)
	}
	words, err := readWords(r, int(bitSize))
	if err != nil {
		return nil, fmt.Errorf("read bit words: %w", err)
	}
	return louds.New(bitvector.New(words, int(bitSize)), edges), nil
}

func readWords(r io.Reader, bitSize int) ([]uint64, error) {
	n := (bitSize + 63) / 64
	words := make([]uint64, n)
	for i := range words {
		if err := binary.Read(r, binary.BigEndian, &words[i]); err != nil {
			return nil, err
		}
	}
	return words, nil
}

// Load reads a serialized dictionary from r per the binary format in
// the core spec (big-endian, byte-exact). It performs no filesystem
// access; the caller supplies the reader.
func Load(r io.Reader) (*Dictionary, error) {
	keyTrie, err := readTrie(r, true)
	if err != nil {
		return nil, fmt.Errorf("read key trie: %w", err)
	}
	valueTrie, err := readTrie(r, false)
	if err != nil {
		return nil, fmt.Errorf("read value trie: %w", err)
	}

	var mappingBitSize uint32
	if err := binary.Read(r, binary.BigEndian, &mappingBitSize); err != nil {
		return nil, fmt.Errorf("read mapping bit size: %w", err)
	}
	mappingWords, err := readWords(r, int(mappingBitSize))
	if err != nil {
		return nil, fmt.Errorf("read mapping bit words: %w", err)
	}
	mappingBits := bitvector.New(mappingWords, int(mappingBitSize))

	var mappingCount uint32
	if err := binary.Read(r, binary.BigEndian, &mappingCount); err != nil {
		return nil, fmt.Errorf("read mapping count: %w", err)
	}
	mapping := make([]uint32, mappingCount)
	for i := range mapping {
		if err := binary.Read(r, binary.BigEndian, &mapping[i]); err != nil {
			return nil, fmt.Errorf("read mapping entry %d: %w", i, err)
		}
	}

	return &Dictionary{
		keyTrie:     keyTrie,
		valueTrie:   valueTrie,
		mappingBits: mappingBits,
		mapping:     mapping,
		hasMapping:  buildHasMapping(mappingBits),
	}, nil
}

// buildHasMapping derives the per-key-node "has a value run" bitmap.
// mappingBits is laid out as one run per real key-trie node (ids 2..N,
// since id 1 is the key trie's reserved super-root), in node-id order:
// a run of size value-ids followed by a single terminating clear bit.
// mappingBits.Rank(size, false) counts one clear bit per run; adding one
// for the trailing sentinel gives the real node count plus one; the loop
// walks each run exactly once, testing whether it opens with a set bit
// (resolves the node vs node+1 ambiguity flagged for this algorithm, and
// aligns run indices with this package's node-id convention where real
// nodes start at 2, not 1).
func buildHasMapping(mappingBits *bitvector.BitVector) []bool {
	numNodes := mappingBits.Rank(mappingBits.Size(), false) + 1
	has := make([]bool, numNodes+1)
	bitPosition := 0
	for node := 2; node <= numNodes; node++ {
		has[node] = mappingBits.Get(bitPosition)
		bitPosition = mappingBits.NextClearBit(bitPosition) + 1
	}
	return has
}

// Search yields every value (full UTF-16 key from the value trie)
// mapped to the exact key.
func (d *Dictionary) Search(key []uint16, visit func(value []uint16)) {
	keyIndex, ok := d.keyTrie.Get(key)
	if !ok {
		return
	}
	d.emitRun(keyIndex, visit)
}

// PredictiveSearch yields every value mapped to keyPrefix or to any key
// extending keyPrefix.
func (d *Dictionary) PredictiveSearch(keyPrefix []uint16, visit func(value []uint16)) {
	keyIndex, ok := d.keyTrie.Get(keyPrefix)
	if !ok || keyIndex <= 1 {
		return
	}
	d.keyTrie.PredictiveSearch(keyIndex, func(id int) {
		if id < len(d.hasMapping) && d.hasMapping[id] {
			d.emitRun(id, visit)
		}
	})
}

// emitRun visits every value in keyIndex's run. Runs are laid out in
// node-id order (id 2 first), so the run for keyIndex starts right after
// the terminator of node keyIndex-1's run (the (keyIndex-2)-th clear bit)
// and ends at its own terminator (the (keyIndex-1)-th clear bit); the
// mapping array offset is the number of set bits preceding the run.
func (d *Dictionary) emitRun(keyIndex int, visit func(value []uint16)) {
	runStart := 0
	if keyIndex > 2 {
		runStart = d.mappingBits.Select(keyIndex-2, false) + 1
	}
	runEnd := d.mappingBits.Select(keyIndex-1, false)
	size := runEnd - runStart
	if size <= 0 {
		return
	}
	offset := d.mappingBits.Rank(runStart, true)
	var buf []uint16
	for i := 0; i < size; i++ {
		buf = d.valueTrie.GetKeyInto(int(d.mapping[offset+i]), buf[:0])
		visit(buf)
	}
}
