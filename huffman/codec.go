package huffman

import (
	"sort"
	"sync"

	"github.com/yourusername/shockwave/internal/bufpool"
)

// Codec is a validated canonical Huffman code together with the decode
// tables derived from it. The zero value is not initialized; call
// Initialize before using it, or use Static for the process-wide HPACK
// table.
type Codec struct {
	codeByID   []uint32
	lengthByID []uint8
	padBits    byte

	decodeTables  []decodeTable
	decodeEntries []decodeEntry

	initialized    bool
	failedSymbolID uint16
}

// NewCodec returns an uninitialized Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// IsInitialized reports whether the codec holds a validated table and is
// safe to use for encoding and decoding.
func (c *Codec) IsInitialized() bool {
	return c.initialized
}

// FailedSymbolID returns the symbol_id that caused the most recent failed
// Initialize call. A successful Initialize resets it to 0, and it is 0 if
// Initialize has never failed.
func (c *Codec) FailedSymbolID() uint16 {
	return c.failedSymbolID
}

// Initialize validates symbols as a complete canonical Huffman code and
// builds the multi-level decode tables for it. symbols must be given in
// natural symbol_id order (symbols[i].SymbolID == i); Initialize sorts an
// internal copy by (length, symbol_id) to check canonical progression.
//
// On failure, the codec is left uninitialized and FailedSymbolID reports
// the offending id.
func (c *Codec) Initialize(symbols []HuffmanSymbol) error {
	c.initialized = false
	n := len(symbols)

	for i, sym := range symbols {
		if int(sym.SymbolID) != i {
			c.failedSymbolID = uint16(i)
			return &InitializeError{Kind: NonSequentialSymbolID, SymbolID: uint16(i)}
		}
	}

	sorted := make([]HuffmanSymbol, n)
	copy(sorted, symbols)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Length != sorted[j].Length {
			return sorted[i].Length < sorted[j].Length
		}
		return sorted[i].SymbolID < sorted[j].SymbolID
	})

	var prevLeft uint32
	var prevLength uint8
	haveLength8 := false
	var maxLength uint8

	for i, sym := range sorted {
		if sym.Length < 1 || sym.Length > 32 {
			c.failedSymbolID = sym.SymbolID
			return &InitializeError{Kind: LengthOutOfRange, SymbolID: sym.SymbolID}
		}
		if sym.Length < 32 {
			mask := uint32(1)<<(32-sym.Length) - 1
			if sym.Code&mask != 0 {
				c.failedSymbolID = sym.SymbolID
				return &InitializeError{Kind: NonZeroPadBitsInCode, SymbolID: sym.SymbolID}
			}
		}
		if sym.Length == 8 {
			haveLength8 = true
		}
		if sym.Length > maxLength {
			maxLength = sym.Length
		}

		if i == 0 {
			if sym.Code != 0 {
				c.failedSymbolID = sym.SymbolID
				return &InitializeError{Kind: NonCanonicalCode, SymbolID: sym.SymbolID}
			}
		} else {
			if sym.Length < prevLength {
				c.failedSymbolID = sym.SymbolID
				return &InitializeError{Kind: NonCanonicalCode, SymbolID: sym.SymbolID}
			}
			next := (prevLeft >> (32 - prevLength)) + 1
			if next>>prevLength != 0 {
				c.failedSymbolID = sym.SymbolID
				return &InitializeError{Kind: KraftOverflow, SymbolID: sym.SymbolID}
			}
			expected := next << (32 - prevLength)
			if sym.Code != expected {
				c.failedSymbolID = sym.SymbolID
				return &InitializeError{Kind: NonCanonicalCode, SymbolID: sym.SymbolID}
			}
		}
		prevLeft = sym.Code
		prevLength = sym.Length
	}

	if !haveLength8 {
		c.failedSymbolID = uint16(n - 1)
		return &InitializeError{Kind: NoLength8Symbol, SymbolID: uint16(n - 1)}
	}

	codeByID := make([]uint32, n)
	lengthByID := make([]uint8, n)
	for _, sym := range symbols {
		codeByID[sym.SymbolID] = sym.Code
		lengthByID[sym.SymbolID] = sym.Length
	}

	last := sorted[n-1]
	tables, entries := buildDecodeTables(symbols, maxLength)

	c.codeByID = codeByID
	c.lengthByID = lengthByID
	c.padBits = byte(last.Code >> 24)
	c.decodeTables = tables
	c.decodeEntries = entries
	c.initialized = true
	c.failedSymbolID = 0
	return nil
}

// EncodedSize returns the byte length that EncodeString will produce for
// input, without doing any encoding.
func (c *Codec) EncodedSize(input []byte) uint64 {
	var bits uint64
	for _, b := range input {
		bits += uint64(c.lengthByID[b])
	}
	return (bits + 7) / 8
}

// EncodeString appends the canonical Huffman encoding of input to out,
// padding the final partial byte with the high bits of pad_bits.
func (c *Codec) EncodeString(input []byte, out *BitOutputStream) {
	for _, b := range input {
		out.AppendBits(c.codeByID[b], c.lengthByID[b])
	}
	if r := out.BitOffset(); r != 0 {
		out.AppendBits(uint32(c.padBits)<<24, 8-r)
	}
}

// EncodeToBytes is a convenience wrapper that encodes input into a freshly
// borrowed pooled buffer and returns the completed byte slice. Callers
// that want to reuse the buffer should return it to bufpool.Default when
// done.
func (c *Codec) EncodeToBytes(input []byte) []byte {
	out := NewBitOutputStream(bufpool.Default.Get())
	c.EncodeString(input, out)
	return out.TakeBytes()
}

// DecodeString decodes bits from in, stopping at end of stream, and
// returns the decoded bytes. It fails with InvalidPrefix if a table
// lookup hits an empty entry or the complete EOS codeword, OutputOverflow
// if the output would exceed
// maxOutputLen (in which case the returned slice holds exactly
// maxOutputLen decoded bytes), or TrailingGarbage if the stream does not
// end in a valid pad.
func (c *Codec) DecodeString(in *BitInputStream, maxOutputLen uint64) ([]byte, error) {
	if !c.initialized {
		return nil, errNotInitialized
	}

	out := make([]byte, 0, maxOutputLen)
	tableIdx := 0

	for {
		t := c.decodeTables[tableIdx]
		window := t.prefixLength + t.indexedLength

		if !in.HaveNMoreBits(t.prefixLength) {
			return out, c.checkTrailingPad(in)
		}

		peeked := in.PeekBits(window)
		index := int((peeked >> (32 - uint32(window))) & (uint32(1)<<uint32(t.indexedLength) - 1))
		entry := c.decodeEntries[int(t.entriesOffset)+index]

		if entry.length == 0 {
			return out, &DecodeError{Kind: InvalidPrefix}
		}

		if entry.length <= window {
			if !in.HaveNMoreBits(entry.length) {
				return out, c.checkTrailingPad(in)
			}
			if entry.symbolID == EOSSymbolID {
				return out, &DecodeError{Kind: InvalidPrefix}
			}
			out = append(out, byte(entry.symbolID))
			if uint64(len(out)) > maxOutputLen {
				return out[:maxOutputLen], &DecodeError{Kind: OutputOverflow}
			}
			in.ConsumeBits(entry.length)
			tableIdx = 0
			continue
		}

		tableIdx = int(entry.nextTableIndex)
	}
}

var (
	staticOnce  sync.Once
	staticCodec *Codec
)

// Static returns the process-wide Codec for the RFC 7541 Appendix B table,
// built once on first use. Callers must not call Initialize on the
// returned Codec.
func Static() *Codec {
	staticOnce.Do(func() {
		c := NewCodec()
		if err := c.Initialize(hpackSymbols[:]); err != nil {
			panic("huffman: built-in table failed validation: " + err.Error())
		}
		staticCodec = c
	})
	return staticCodec
}

// checkTrailingPad validates the end-of-stream rule: fewer than 8
// unconsumed bits remain, and every one of them matches the corresponding
// leading bit of pad_bits.
func (c *Codec) checkTrailingPad(in *BitInputStream) error {
	remaining := in.BitsRemaining()
	if remaining >= 8 {
		return &DecodeError{Kind: TrailingGarbage}
	}
	if remaining == 0 {
		return nil
	}
	got := in.PeekBits(uint8(remaining))
	want := uint32(c.padBits) << 24
	mask := ^uint32(0) << (32 - uint32(remaining))
	if got&mask != want&mask {
		return &DecodeError{Kind: TrailingGarbage}
	}
	return nil
}
