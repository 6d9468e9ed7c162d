package fgk

import (
	"fmt"
	"strings"
)

// escapes maps the character following a backslash to the byte it denotes.
var escapes = [256]int16{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'v':  '\v',
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'?':  '?',
}

// Alphabet is an ordered set of distinct byte symbols. A Tree can only code
// symbols that belong to its Alphabet.
type Alphabet struct {
	symbols []byte
	member  [256]bool
}

// NewAlphabet returns an Alphabet holding symbols in the given order.
// It fails with *MalformedAlphabetError if symbols is empty or has duplicates.
func NewAlphabet(symbols []byte) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, &MalformedAlphabetError{Offset: -1, Reason: "empty alphabet"}
	}
	a := &Alphabet{symbols: make([]byte, 0, len(symbols))}
	for i, b := range symbols {
		if a.member[b] {
			return nil, &MalformedAlphabetError{Offset: i, Reason: fmt.Sprintf("duplicate symbol %q", b)}
		}
		a.member[b] = true
		a.symbols = append(a.symbols, b)
	}
	return a, nil
}

// ParseAlphabet decodes an alphabet specification. Every byte is a symbol,
// except that a backslash followed by one of a, b, f, v, n, t, r, \, ', " or ?
// denotes the single control or special character of the same C escape.
//
// For example,
//
//	ParseAlphabet(`abc\n\t`)
//
// yields the five symbols 'a', 'b', 'c', '\n' and '\t'.
func ParseAlphabet(spec string) (*Alphabet, error) {
	if len(spec) == 0 {
		return nil, &MalformedAlphabetError{Offset: -1, Reason: "empty alphabet"}
	}
	a := &Alphabet{symbols: make([]byte, 0, len(spec))}
	for i := 0; i < len(spec); i++ {
		start := i
		b := spec[i]
		if b == '\\' {
			if i+1 == len(spec) {
				return nil, &MalformedAlphabetError{Offset: i, Reason: "dangling escape"}
			}
			i++
			e := escapes[spec[i]]
			if e == 0 {
				return nil, &MalformedAlphabetError{Offset: start, Reason: fmt.Sprintf("unknown escape \\%c", spec[i])}
			}
			b = byte(e)
		}
		if a.member[b] {
			return nil, &MalformedAlphabetError{Offset: start, Reason: fmt.Sprintf("duplicate symbol %q", b)}
		}
		a.member[b] = true
		a.symbols = append(a.symbols, b)
	}
	return a, nil
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Contains reports whether b is a symbol of a.
func (a *Alphabet) Contains(b byte) bool { return a.member[b] }

// Symbols returns a copy of the symbols in declaration order.
func (a *Alphabet) Symbols() []byte {
	out := make([]byte, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// String returns the alphabet in the escaped form accepted by ParseAlphabet.
func (a *Alphabet) String() string {
	var sb strings.Builder
	sb.Grow(len(a.symbols))
	for _, b := range a.symbols {
		switch b {
		case '\a':
			sb.WriteString(`\a`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\v':
			sb.WriteString(`\v`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteByte(b)
		}
	}
	return sb.String()
}
