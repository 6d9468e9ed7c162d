package fgk

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultBufferSize is the size of the buffers used by BitReader, BitWriter
// and Coding unless a size is given.
const DefaultBufferSize = 16 * 1024

// BitReader reads a stream of ASCII '0' and '1' characters one bit at a time.
type BitReader struct {
	in     io.ByteReader
	offset int
}

// NewBitReader returns a BitReader over r. r is buffered unless it already
// implements io.ByteReader.
func NewBitReader(r io.Reader) *BitReader {
	return NewBitReaderSize(r, DefaultBufferSize)
}

// NewBitReaderSize is like NewBitReader but allows setting the buffer size.
func NewBitReaderSize(r io.Reader, size int) *BitReader {
	if br, ok := r.(io.ByteReader); ok {
		return &BitReader{in: br}
	}
	return &BitReader{in: bufio.NewReaderSize(r, size)}
}

// ReadBit returns the next bit as 0 or 1. It returns io.EOF at the end of the
// stream and an error wrapping ErrInvalidBit for any other character.
func (br *BitReader) ReadBit() (byte, error) {
	c, err := br.in.ReadByte()
	if err != nil {
		return 0, err
	}
	switch c {
	case '0':
		br.offset++
		return 0, nil
	case '1':
		br.offset++
		return 1, nil
	}
	return 0, fmt.Errorf("%w %q at bit %d", ErrInvalidBit, c, br.offset)
}

// Offset returns the number of bits consumed so far.
func (br *BitReader) Offset() int { return br.offset }

// BitWriter buffers ASCII bits on their way to an io.Writer.
type BitWriter struct {
	out *bufio.Writer
	n   int64
}

// NewBitWriter returns a BitWriter that writes to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return NewBitWriterSize(w, DefaultBufferSize)
}

// NewBitWriterSize is like NewBitWriter but allows setting the buffer size.
func NewBitWriterSize(w io.Writer, size int) *BitWriter {
	return &BitWriter{out: bufio.NewWriterSize(w, size)}
}

// Write writes bits, which must consist of '0' and '1' characters, as
// produced by Tree.EncodeSymbol.
func (bw *BitWriter) Write(bits []byte) error {
	n, err := bw.out.Write(bits)
	bw.n += int64(n)
	return err
}

// Count returns the number of bits written so far.
func (bw *BitWriter) Count() int64 { return bw.n }

// Flush writes any buffered bits to the underlying io.Writer.
func (bw *BitWriter) Flush() error { return bw.out.Flush() }
