package fgk

import (
	"errors"
	"fmt"
)

// Symbol errors
var (
	// ErrUnknownSymbol indicates a byte that is not part of the configured alphabet.
	// Use errors.As with *UnknownSymbolError to recover the offending byte.
	ErrUnknownSymbol = errors.New("fgk: symbol not in alphabet")

	// ErrMalformedAlphabet indicates an alphabet specification that cannot be used.
	ErrMalformedAlphabet = errors.New("fgk: malformed alphabet")
)

// Stream errors
var (
	// ErrTruncatedStream indicates the bit stream ended in the middle of a code.
	ErrTruncatedStream = errors.New("fgk: truncated bit stream")

	// ErrInvalidBit indicates a character other than '0' or '1' in the bit stream.
	ErrInvalidBit = errors.New("fgk: invalid bit")

	// ErrCorruptStream indicates a literal for a symbol the decoder has already seen.
	ErrCorruptStream = errors.New("fgk: corrupt bit stream")
)

// UnknownSymbolError reports a symbol outside the alphabet.
type UnknownSymbolError struct {
	Symbol byte
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("fgk: symbol %q not in alphabet", e.Symbol)
}

func (e *UnknownSymbolError) Is(target error) bool { return target == ErrUnknownSymbol }

// MalformedAlphabetError reports why an alphabet specification was rejected.
// Offset is the byte position in the specification, or -1 when it does not apply.
type MalformedAlphabetError struct {
	Offset int
	Reason string
}

func (e *MalformedAlphabetError) Error() string {
	if e.Offset < 0 {
		return "fgk: malformed alphabet: " + e.Reason
	}
	return fmt.Sprintf("fgk: malformed alphabet at offset %d: %s", e.Offset, e.Reason)
}

func (e *MalformedAlphabetError) Is(target error) bool { return target == ErrMalformedAlphabet }
