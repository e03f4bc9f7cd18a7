package bitvector

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBits(n int, seed int64) []bool {
	r := rand.New(rand.NewSource(seed))
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = r.Intn(2) == 1
	}
	return bits
}

func buildFromBits(bits []bool) *BitVector {
	words := make([]uint64, (len(bits)+63)/64)
	for i, b := range bits {
		if b {
			words[i/64] |= 1 << uint(i%64)
		}
	}
	return New(words, len(bits))
}

func naiveRank(bits []bool, pos int, b bool) int {
	count := 0
	for i := 0; i < pos; i++ {
		if bits[i] == b {
			count++
		}
	}
	return count
}

func naiveSelect(bits []bool, k int, b bool) int {
	count := 0
	for i, v := range bits {
		if v == b {
			count++
			if count == k {
				return i
			}
		}
	}
	return -1
}

func TestRankInvariants(t *testing.T) {
	const n = 10000
	bits := randomBits(n, 1)
	bv := buildFromBits(bits)

	for _, p := range []int{0, 1, 63, 64, 65, 511, 512, 513, 4096, n} {
		t.Run("", func(t *testing.T) {
			r1 := bv.Rank(p, true)
			r0 := bv.Rank(p, false)
			assert.Equal(t, p, r1+r0)
			assert.Equal(t, naiveRank(bits, p, true), r1)
			assert.Equal(t, naiveRank(bits, p, false), r0)
		})
	}
}

func TestSelectMatchesNaive(t *testing.T) {
	const n = 5000
	bits := randomBits(n, 2)
	bv := buildFromBits(bits)

	ones := 0
	for _, b := range bits {
		if b {
			ones++
		}
	}
	for k := 1; k <= ones; k += 7 {
		want := naiveSelect(bits, k, true)
		require.GreaterOrEqual(t, want, 0)
		assert.Equal(t, want, bv.Select(k, true))
	}
}

func TestRankSelectRoundTrip(t *testing.T) {
	const n = 2000
	bits := randomBits(n, 3)
	bv := buildFromBits(bits)

	for k := 1; k <= bv.Rank(n, true); k += 3 {
		pos := bv.Select(k, true)
		assert.Equal(t, k, bv.Rank(pos+1, true))
	}
}

func TestNextClearBit(t *testing.T) {
	const n = 3000
	bits := randomBits(n, 4)
	bv := buildFromBits(bits)

	for _, from := range []int{0, 1, 63, 64, 512, 1000, 2999} {
		want := -1
		for i := from; i < n; i++ {
			if !bits[i] {
				want = i
				break
			}
		}
		got := bv.NextClearBit(from)
		if want == -1 {
			assert.GreaterOrEqual(t, got, n)
		} else {
			assert.Equal(t, want, got)
		}
	}
}

func TestGet(t *testing.T) {
	bits := []bool{true, false, true, true, false}
	bv := buildFromBits(bits)
	for i, want := range bits {
		assert.Equal(t, want, bv.Get(i))
	}
}
