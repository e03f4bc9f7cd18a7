package regexgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadDad(t *testing.T) {
	g := New()
	g.AddString("bad")
	g.AddString("dad")
	assert.Equal(t, "(bad|dad)", g.Generate(Default))
}

func TestBadBat(t *testing.T) {
	g := New()
	g.AddString("bad")
	g.AddString("bat")
	assert.Equal(t, "ba[dt]", g.Generate(Default))
}

func TestABA(t *testing.T) {
	g := New()
	g.AddString("a")
	g.AddString("b")
	g.AddString("a")
	assert.Equal(t, "[ab]", g.Generate(Default))
}

func TestEscape(t *testing.T) {
	g := New()
	g.AddString("a.b")
	assert.Equal(t, `a\.b`, g.Generate(Default))
}

func TestSurrogatePair(t *testing.T) {
	g := New()
	g.AddString("\U00020B9F") // 𠮟
	g.AddString("\U00020BB7") // 𠮷
	got := g.Generate(Default)
	assert.Equal(t, "[\U00020B9F\U00020BB7]", got)
}

func TestCarCatCanBarBat(t *testing.T) {
	g := New()
	for _, w := range []string{"car", "cat", "can", "bar", "bat"} {
		g.AddString(w)
	}
	assert.Equal(t, "(ba[rt]|ca[nrt])", g.Generate(Default))
}

func TestPrefixSubsumption(t *testing.T) {
	g := New()
	g.AddString("a")
	g.AddString("ab")
	g.AddString("abc")
	assert.Equal(t, "a", g.Generate(Default))
}

func TestPrefixSubsumptionReverseOrder(t *testing.T) {
	g := New()
	g.AddString("abc")
	g.AddString("ab")
	g.AddString("a")
	assert.Equal(t, "a", g.Generate(Default))
}

func TestVimOperatorNewline(t *testing.T) {
	g := New()
	g.AddString("bad")
	g.AddString("dad")
	got := g.Generate(Vim)
	assert.Contains(t, got, `\%(`)
	assert.Contains(t, got, `\)`)
	assert.Contains(t, got, `\_s*`)
}

func TestEmacsNonNewlineHasNoNewline(t *testing.T) {
	g := New()
	g.AddString("bad")
	g.AddString("dad")
	got := g.Generate(EmacsNonNewline)
	assert.NotContains(t, got, `\_s-*`)
}

func TestEmptyGenerator(t *testing.T) {
	g := New()
	assert.Equal(t, "", g.Generate(Default))
}
