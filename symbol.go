package fgk

// Core constants for the adaptive code
const (
	literalBits = 8  // width of the raw code sent on a symbol's first occurrence
	noSymbol    = -1 // node.sym for internal nodes and the placeholder
	nilNode     = -1 // absent arena index
)

// symbolTable maps every byte to its leaf in the tree.
//
//	member[b]: b belongs to the alphabet
//	leaf[b]:   arena index of b's leaf, or nilNode before b first occurs
type symbolTable struct {
	member [256]bool
	leaf   [256]int32
}

func newSymbolTable(a *Alphabet) symbolTable {
	st := symbolTable{member: a.member}
	st.reset()
	return st
}

// resolve returns the leaf bound to sym and whether sym has been seen.
func (st *symbolTable) resolve(sym byte) (int32, bool, error) {
	if !st.member[sym] {
		return nilNode, false, &UnknownSymbolError{Symbol: sym}
	}
	leaf := st.leaf[sym]
	return leaf, leaf != nilNode, nil
}

// bind records the leaf created for sym on its first occurrence.
func (st *symbolTable) bind(sym byte, leaf int32) {
	st.leaf[sym] = leaf
}

// reset unbinds every symbol.
func (st *symbolTable) reset() {
	for i := range st.leaf {
		st.leaf[i] = nilNode
	}
}

// appendLiteral appends the literalBits-wide code of sym, most significant bit first.
func appendLiteral(dst []byte, sym byte) []byte {
	for shift := literalBits - 1; shift >= 0; shift-- {
		dst = append(dst, '0'+(sym>>shift)&1)
	}
	return dst
}
