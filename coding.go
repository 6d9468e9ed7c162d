package fgk

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

// Coding encodes and decodes whole messages over one Alphabet. Every call
// starts from a fresh Tree, so a Coding can be shared between goroutines as
// long as SetBufferSize is not called concurrently.
type Coding struct {
	alphabet *Alphabet
	bufSize  int
}

// NewCoding returns a Coding for the alphabet a.
//
// For example,
//
//	a, _ := ParseAlphabet(`abcdefghijklmnopqrstuvwxyz \n`)
//	c := NewCoding(a)
//	bits, _ := c.EncodeString("hello world")
//	msg, _ := c.DecodeString(bits)
func NewCoding(a *Alphabet) *Coding {
	return &Coding{alphabet: a, bufSize: DefaultBufferSize}
}

// SetBufferSize sets internal buffer sizes.
func (c *Coding) SetBufferSize(size int) {
	if size > 0 {
		c.bufSize = size
	}
}

// Alphabet returns the alphabet c codes.
func (c *Coding) Alphabet() *Alphabet { return c.alphabet }

// Encode reads symbols from src and writes their codes to dst. If Encode
// returns an error, whatever was already written to dst is not a valid
// encoding and must be discarded.
func (c *Coding) Encode(dst io.Writer, src io.Reader) error {
	var (
		tree = NewTree(c.alphabet)
		in   = bufio.NewReaderSize(src, c.bufSize)
		bw   = NewBitWriterSize(dst, c.bufSize)
		code = make([]byte, 0, 64)
	)
	for {
		sym, err := in.ReadByte()
		if err != nil {
			if err == io.EOF {
				return bw.Flush()
			}
			return err
		}
		code, err = tree.EncodeSymbol(code[:0], sym)
		if err != nil {
			return err
		}
		if err = bw.Write(code); err != nil {
			return err
		}
	}
}

// Decode reads codes from src and writes the decoded symbols to dst. If
// Decode returns an error, whatever was already written to dst must be
// discarded.
func (c *Coding) Decode(dst io.Writer, src io.Reader) error {
	var (
		tree = NewTree(c.alphabet)
		br   = NewBitReaderSize(src, c.bufSize)
		out  = bufio.NewWriterSize(dst, c.bufSize)
	)
	for {
		sym, err := tree.DecodeNext(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out.Flush()
			}
			return err
		}
		if err = out.WriteByte(sym); err != nil {
			return err
		}
	}
}

// EncodeString returns the code of msg. On error it returns "" and no
// partial result.
func (c *Coding) EncodeString(msg string) (string, error) {
	var buf bytes.Buffer
	buf.Grow(2 * len(msg))
	if err := c.Encode(&buf, strings.NewReader(msg)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DecodeString returns the message coded by bits. On error it returns "" and
// no partial result.
func (c *Coding) DecodeString(bits string) (string, error) {
	var buf bytes.Buffer
	buf.Grow(len(bits) / 4)
	if err := c.Decode(&buf, strings.NewReader(bits)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
