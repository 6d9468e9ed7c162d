// Package fgk provides one-pass adaptive Huffman coding (the FGK algorithm).
//
// # Overview
//
// An adaptive Huffman coder builds its code tree from the data stream itself.
// There is no statistics pass and no transmitted code table: the encoder and
// the decoder start from the same single-node tree and apply the same update
// after every symbol, so both always agree on the current code. A symbol's
// code gets shorter as it becomes more frequent.
//
// The first occurrence of a symbol is sent as the code of a placeholder node
// followed by the symbol's 8-bit literal. The placeholder then splits into an
// internal node holding the placeholder and a new leaf for the symbol. Every
// later occurrence is sent as the path to its leaf.
//
// After each symbol the tree keeps the sibling property: all nodes, linked in
// a list ordered by weight, appear in non-decreasing weight and the two
// children of every internal node are neighbours. A tree with the sibling
// property is a Huffman tree for its current weights. The update touches only
// the nodes on the path from the coded leaf to the root.
//
// # Basic Usage
//
//	a, err := fgk.ParseAlphabet(`abcdefghijklmnopqrstuvwxyz \n`)
//	if err != nil {
//	    return err
//	}
//	c := fgk.NewCoding(a)
//
//	bits, err := c.EncodeString("hello world") // "0110100001100101..."
//	msg, err := c.DecodeString(bits)           // "hello world"
//
//	// Or stream between readers and writers
//	err = c.Encode(os.Stdout, os.Stdin)
//
// For symbol-level control, drive a Tree directly:
//
//	enc := fgk.NewTree(a)
//	buf, err := enc.EncodeSymbol(nil, 'h')
//
//	dec := fgk.NewTree(a)
//	sym, err := dec.DecodeNext(fgk.NewBitReader(bytes.NewReader(buf)))
//
// # Format
//
// Codes are written as ASCII '0' and '1' characters with no separators and no
// header. Literals are 8 bits, most significant bit first. Decoding needs the
// same Alphabet that was used to encode; using another one is not detected.
//
// # Performance Characteristics
//
// Encoding and decoding are O(d) per symbol, where d is the depth of the coded
// leaf, plus a scan over nodes of equal weight while rebalancing. A Tree over
// an alphabet of n symbols holds at most 2n+1 nodes.
package fgk
