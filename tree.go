package fgk

import (
	"errors"
	"fmt"
	"io"
)

// Tree is an adaptive Huffman code tree over a fixed Alphabet.
//
// Encoder and decoder each own a Tree built from the same Alphabet. Fed the
// same symbol sequence, both evolve identically, so no code table is ever
// transmitted. A Tree is not safe for concurrent use.
type Tree struct {
	alphabet *Alphabet
	nodes    arena
	table    symbolTable
	root     int32
	nyt      int32 // placeholder for symbols not yet seen
	seen     int
}

// NewTree returns a Tree whose only node is the placeholder.
func NewTree(a *Alphabet) *Tree {
	t := &Tree{
		alphabet: a,
		nodes:    make(arena, 0, 2*a.Len()+1),
		table:    newSymbolTable(a),
	}
	t.Reset()
	return t
}

// Reset discards everything learned so far.
func (t *Tree) Reset() {
	t.nodes = t.nodes[:0]
	t.table.reset()
	t.nyt = t.nodes.alloc(node{
		parent: nilNode, left: nilNode, right: nilNode,
		prev: nilNode, next: nilNode,
		sym: noSymbol,
	})
	t.root = t.nyt
	t.seen = 0
}

// Alphabet returns the alphabet the tree codes.
func (t *Tree) Alphabet() *Alphabet { return t.alphabet }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Total returns the number of symbols processed since the last Reset.
func (t *Tree) Total() uint64 { return t.nodes[t.root].weight }

// Seen returns the number of distinct symbols processed since the last Reset.
func (t *Tree) Seen() int { return t.seen }

// Depth returns the current code length of sym, or false if sym has not
// occurred yet.
func (t *Tree) Depth(sym byte) (int, bool) {
	leaf, ok, err := t.table.resolve(sym)
	if err != nil || !ok {
		return 0, false
	}
	return t.depth(leaf), true
}

func (t *Tree) depth(n int32) int {
	d := 0
	for p := t.nodes[n].parent; p != nilNode; p = t.nodes[p].parent {
		d++
	}
	return d
}

// EncodeSymbol appends the code of sym to dst as ASCII '0' and '1' and updates
// the tree. A first occurrence is coded as the path to the placeholder
// followed by the 8-bit literal; later occurrences as the path to sym's leaf.
// On error dst is returned unchanged and the tree is not modified.
func (t *Tree) EncodeSymbol(dst []byte, sym byte) ([]byte, error) {
	leaf, ok, err := t.table.resolve(sym)
	if err != nil {
		return dst, err
	}
	if ok {
		dst = t.appendPath(dst, leaf)
	} else {
		dst = t.appendPath(dst, t.nyt)
		dst = appendLiteral(dst, sym)
		leaf = t.grow(sym)
	}
	t.update(leaf)
	return dst, nil
}

// DecodeNext reads one symbol's code from br and updates the tree. It returns
// io.EOF if br is exhausted before the first bit of a code.
func (t *Tree) DecodeNext(br *BitReader) (byte, error) {
	n := t.root
	for first := true; !t.nodes[n].isLeaf(); first = false {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, truncated(err, first, br.Offset())
		}
		if bit == 0 {
			n = t.nodes[n].left
		} else {
			n = t.nodes[n].right
		}
	}
	if n != t.nyt {
		t.update(n)
		return byte(t.nodes[n].sym), nil
	}

	var sym byte
	for i := 0; i < literalBits; i++ {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, truncated(err, i == 0 && n == t.root, br.Offset())
		}
		sym = sym<<1 | bit
	}
	_, ok, err := t.table.resolve(sym)
	if err != nil {
		return 0, err
	}
	if ok {
		return 0, fmt.Errorf("%w: literal %q at bit %d was already coded", ErrCorruptStream, sym, br.Offset())
	}
	t.update(t.grow(sym))
	return sym, nil
}

// truncated maps a read error inside a code to ErrTruncatedStream. A clean
// io.EOF at the start of a code is passed through.
func truncated(err error, atStart bool, offset int) error {
	if !errors.Is(err, io.EOF) {
		return err
	}
	if atStart {
		return io.EOF
	}
	return fmt.Errorf("%w at bit %d", ErrTruncatedStream, offset)
}

// appendPath appends the root-to-n path of n, 0 for left and 1 for right.
// The edges are collected walking up from n and reversed in place.
func (t *Tree) appendPath(dst []byte, n int32) []byte {
	start := len(dst)
	for p := t.nodes[n].parent; p != nilNode; n, p = p, t.nodes[p].parent {
		if t.nodes[p].right == n {
			dst = append(dst, '1')
		} else {
			dst = append(dst, '0')
		}
	}
	path := dst[start:]
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return dst
}

// grow splits the placeholder into an internal node whose left child is the
// placeholder and whose right child is a new weight-0 leaf for sym. The
// internal node takes the placeholder's place in the tree; in the order list
// the sequence becomes placeholder, leaf, internal node.
func (t *Tree) grow(sym byte) int32 {
	old := t.nyt
	parent, after := t.nodes[old].parent, t.nodes[old].next

	inner := t.nodes.alloc(node{
		parent: parent, left: old, right: nilNode,
		prev: nilNode, next: after,
		sym: noSymbol,
	})
	leaf := t.nodes.alloc(node{
		parent: inner, left: nilNode, right: nilNode,
		prev: old, next: inner,
		sym: int16(sym),
	})

	n := t.nodes
	n[inner].right = leaf
	n[inner].prev = leaf
	n[old].parent = inner
	n[old].next = leaf
	if after != nilNode {
		n[after].prev = inner
	}
	if parent == nilNode {
		t.root = inner
	} else {
		n.replaceChild(parent, old, inner)
	}

	t.table.bind(sym, leaf)
	t.seen++
	return leaf
}

// update adds one to the weight of q and of each of its ancestors, moving
// nodes so that the order list stays sorted and every ancestor stays after its
// descendants.
//
// Before q is incremented it is moved to the last position among nodes of its
// weight (the leader's). The only ancestor that can share q's weight is its
// parent, and only when q's sibling is the placeholder; then q is first moved
// out from under the parent, after which the parent is an ordinary leader.
func (t *Tree) update(q int32) {
	n := t.nodes
	for q != t.root {
		l := n.leader(q)
		switch p := n[q].parent; {
		case l == p:
			if prev := n[p].prev; prev != q {
				n.exchange(q, prev)
				n.exchange(q, p)
			}
		case l != q:
			n.exchange(q, l)
		}
		n[q].weight++
		q = n[q].parent
	}
	n[t.root].weight++
}
