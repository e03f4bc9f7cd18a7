// Package regexgen builds a minimized alternation/character-class regex
// from a set of strings using a ternary, AA-tree-balanced trie.
package regexgen

// node is one code unit in the ternary tree. Left/right form a BST over
// sibling code units (AA-tree balanced via Level); Child continues the
// word one code unit deeper.
type node struct {
	code  uint16
	child *node
	left  *node
	right *node
	level int
}

// Generator accumulates words and emits a single minimized regex for
// them. It is built fresh per query and discarded.
type Generator struct {
	root *node
}

// New returns an empty Generator.
func New() *Generator {
	return &Generator{}
}

func skew(t *node) *node {
	if t == nil || t.left == nil || t.left.level != t.level {
		return t
	}
	l := t.left
	t.left = l.right
	l.right = t
	return l
}

func split(t *node) *node {
	if t == nil || t.right == nil || t.right.right == nil {
		return t
	}
	if t.level != t.right.right.level {
		return t
	}
	r := t.right
	t.right = r.left
	r.left = t
	r.level++
	return r
}

func insert(word []uint16, offset int, t *node) *node {
	if offset >= len(word) {
		// word is exhausted: this node is terminal, so any previously
		// inserted longer continuation through it is subsumed.
		return nil
	}
	if t == nil {
		n := &node{code: word[offset], level: 1}
		n.child = insert(word, offset+1, nil)
		return n
	}
	x := word[offset]
	switch {
	case x < t.code:
		t.left = insert(word, offset, t.left)
	case x > t.code:
		t.right = insert(word, offset, t.right)
	default:
		if t.child != nil {
			t.child = insert(word, offset+1, t.child)
		}
		return t
	}
	return split(skew(t))
}

// traverseSiblings returns all siblings of the subtree rooted at n in
// increasing code order (in-order BST traversal).
func traverseSiblings(n *node) []*node {
	if n == nil {
		return nil
	}
	out := traverseSiblings(n.left)
	out = append(out, n)
	out = append(out, traverseSiblings(n.right)...)
	return out
}

// escapeSet holds the fixed set of code units that must be backslash
// escaped in emitted output: \ . [ ] { } ( ) * + - ? ^ $ |
var escapeSet = map[uint16]bool{}

func init() {
	for _, c := range []byte(`\.[]{}()*+-?^$|`) {
		escapeSet[uint16(c)] = true
	}
}

func isCharToEscape(c uint16) bool {
	return c < 128 && escapeSet[c]
}

func generate(n *node, buf *[]uint16, op Operator) {
	siblings := traverseSiblings(n)
	brother := len(siblings)
	haschild := 0
	for _, s := range siblings {
		if s.child != nil {
			haschild++
		}
	}
	nochild := brother - haschild

	if brother > 1 && haschild > 0 {
		appendString(buf, op.BeginGroup)
	}
	if nochild > 0 {
		if nochild > 1 {
			appendString(buf, op.BeginClass)
		}
		for _, s := range siblings {
			if s.child != nil {
				continue
			}
			if isCharToEscape(s.code) {
				*buf = append(*buf, '\\')
			}
			*buf = append(*buf, s.code)
		}
		if nochild > 1 {
			appendString(buf, op.EndClass)
		}
	}
	if haschild > 0 {
		if nochild > 0 {
			appendString(buf, op.Or)
		}
		count := 0
		for _, s := range siblings {
			if s.child == nil {
				continue
			}
			if s.code >= 0xd800 && s.code <= 0xdbff {
				// A high surrogate is written in front of every low surrogate
				// its subtree emits, so each non-BMP character stays one pair.
				var sub []uint16
				generate(s.child, &sub, op)
				for i, u := range sub {
					if u >= 0xdc00 && u <= 0xdfff && (i == 0 || sub[i-1] < 0xd800 || sub[i-1] > 0xdbff) {
						*buf = append(*buf, s.code)
					}
					*buf = append(*buf, u)
				}
				if count++; count < haschild {
					appendString(buf, op.Or)
				}
				continue
			}
			if isCharToEscape(s.code) {
				*buf = append(*buf, '\\')
			}
			*buf = append(*buf, s.code)
			appendString(buf, op.Newline)
			generate(s.child, buf, op)
			count++
			if count < haschild {
				appendString(buf, op.Or)
			}
		}
	}
	if brother > 1 && haschild > 0 {
		appendString(buf, op.EndGroup)
	}
}

func appendString(buf *[]uint16, s string) {
	for _, r := range s {
		*buf = append(*buf, uint16(r))
	}
}

// Add inserts word into the generator. Words sharing a prefix with an
// already-inserted shorter word are subsumed by it (the shorter word's
// node keeps no child, marking it terminal).
func (g *Generator) Add(word []uint16) {
	if len(word) == 0 {
		return
	}
	g.root = insert(word, 0, g.root)
}

// AddString is a convenience wrapper converting a Go string (UTF-16 code
// units, surrogate-pair aware) before inserting.
func (g *Generator) AddString(s string) {
	g.Add(StringToUTF16(s))
}

// Generate emits the minimized regex for all words added so far, using
// the given operator profile.
func (g *Generator) Generate(op Operator) string {
	if g.root == nil {
		return ""
	}
	var buf []uint16
	generate(g.root, &buf, op)
	return UTF16ToString(buf)
}

// StringToUTF16 converts a Go string into UTF-16 code units, encoding
// non-BMP runes as surrogate pairs so that the alphabet operated on is
// always 16-bit code units, matching the original algorithm.
func StringToUTF16(s string) []uint16 {
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

// UTF16ToString decodes a UTF-16 code unit sequence back to a Go string,
// recombining surrogate pairs.
func UTF16ToString(units []uint16) string {
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
