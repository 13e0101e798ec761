package huffman

import "fmt"

// InitializeErrorKind classifies why Initialize rejected a symbol table.
type InitializeErrorKind int

const (
	NonSequentialSymbolID InitializeErrorKind = iota
	LengthOutOfRange
	NonZeroPadBitsInCode
	NonCanonicalCode
	KraftOverflow
	NoLength8Symbol
)

// InitializeError reports the first offending symbol_id encountered while
// validating a canonical Huffman table. Once returned, the Codec that
// produced it remains uninitialized until Initialize is called again.
type InitializeError struct {
	Kind     InitializeErrorKind
	SymbolID uint16
}

func (e *InitializeError) Error() string {
	switch e.Kind {
	case NonSequentialSymbolID:
		return fmt.Sprintf("huffman: symbol id %d is out of order or repeated", e.SymbolID)
	case LengthOutOfRange:
		return fmt.Sprintf("huffman: symbol id %d has a code length outside [1,32]", e.SymbolID)
	case NonZeroPadBitsInCode:
		return fmt.Sprintf("huffman: symbol id %d has nonzero bits below its code length", e.SymbolID)
	case NonCanonicalCode:
		return fmt.Sprintf("huffman: symbol id %d breaks canonical code progression", e.SymbolID)
	case KraftOverflow:
		return fmt.Sprintf("huffman: symbol id %d overflows the available code space", e.SymbolID)
	case NoLength8Symbol:
		return "huffman: table has no length-8 codeword, cannot pad encoded output"
	default:
		return "huffman: table failed validation"
	}
}

// DecodeErrorKind classifies why DecodeString rejected an input stream.
type DecodeErrorKind int

const (
	InvalidPrefix DecodeErrorKind = iota
	OutputOverflow
	TrailingGarbage
)

// DecodeError reports why decoding a bit stream failed.
type DecodeError struct {
	Kind DecodeErrorKind
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case InvalidPrefix:
		return "huffman: invalid code prefix"
	case OutputOverflow:
		return "huffman: decoded output exceeds requested capacity"
	case TrailingGarbage:
		return "huffman: trailing bits do not form a valid pad"
	default:
		return "huffman: decode failed"
	}
}

// errNotInitialized is returned by operations attempted on a Codec that
// has never completed a successful Initialize call.
var errNotInitialized = fmt.Errorf("huffman: codec is not initialized")
