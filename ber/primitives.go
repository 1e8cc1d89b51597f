package ber

import "strings"

// EncodeBoolean appends a BOOLEAN element: one content byte, 0x00 or 0xFF.
func (w *Writer) EncodeBoolean(id Identifier, value bool) {
	v := byte(0x00)
	if value {
		v = 0xFF
	}
	w.WriteTLV(id, []byte{v})
}

// DecodeBoolean reads the one content byte of a BOOLEAN: nonzero is true.
func DecodeBoolean(content []byte) (bool, error) {
	if len(content) != 1 {
		return false, ErrValueOutOfRange
	}
	return content[0] != 0, nil
}

// compressInt produces the minimal two's-complement big-endian encoding of
// a signed value, mirroring the teacher's CompressInteger: strip leading
// 0x00 bytes that aren't needed to keep the sign bit clear, or leading
// 0xFF bytes that aren't needed to keep it set.
func compressInt(full []byte) []byte {
	i := 0
	for i < len(full)-1 {
		if full[i] == 0x00 && full[i+1]&0x80 == 0 {
			i++
			continue
		}
		if full[i] == 0xFF && full[i+1]&0x80 != 0 {
			i++
			continue
		}
		break
	}
	return full[i:]
}

// EncodeInt64 appends an INTEGER/ENUMERATED element holding value, using
// the minimal number of content octets.
func (w *Writer) EncodeInt64(id Identifier, value int64) {
	full := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		full[i] = byte(value)
		value >>= 8
	}
	w.WriteTLV(id, compressInt(full))
}

// DecodeInt64 sign-extends a two's-complement big-endian content field of
// 1..8 bytes (spec.md §4.1 bounds payload values to 32 bits and invoke IDs
// to 16 bits; callers range-check after this generic decode).
func DecodeInt64(content []byte) (int64, error) {
	if len(content) == 0 || len(content) > 8 {
		return 0, ErrValueOutOfRange
	}
	var v int64
	if content[0]&0x80 != 0 {
		v = -1
	}
	for _, b := range content {
		v = (v << 8) | int64(b)
	}
	return v, nil
}

// EncodeNull appends a zero-length NULL element.
func (w *Writer) EncodeNull(id Identifier) {
	w.WriteTLV(id, nil)
}

// EncodeOctetString appends an OCTET STRING/NumericString/IA5String/
// VisibleString element, which all share the raw-bytes encoding.
func (w *Writer) EncodeOctetString(id Identifier, content []byte) {
	w.WriteTLV(id, content)
}

// DecodeOctetString copies content into a destination of bounded capacity,
// failing (rather than truncating) on overflow, per spec.md §4.1.
func DecodeOctetString(content []byte, maxLen int) ([]byte, error) {
	if len(content) > maxLen {
		return nil, ErrValueOutOfRange
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

// EncodeBitString appends a BIT STRING element: one octet giving the
// number of unused bits in the final content octet, then the bits
// themselves, matching the teacher's EncodeBitString padding-mask logic.
func (w *Writer) EncodeBitString(id Identifier, bits []byte, bitCount int) {
	byteLen := (bitCount + 7) / 8
	padding := byteLen*8 - bitCount
	content := make([]byte, 1+byteLen)
	content[0] = byte(padding)
	copy(content[1:], bits[:byteLen])
	if padding > 0 {
		mask := byte(0xFF << uint(padding))
		content[len(content)-1] &= mask
	}
	w.WriteTLV(id, content)
}

// DecodeBitString splits content into (unused-bit count, octets).
func DecodeBitString(content []byte) (bits []byte, bitCount int, err error) {
	if len(content) == 0 {
		return nil, 0, ErrValueOutOfRange
	}
	padding := int(content[0])
	if padding > 7 {
		return nil, 0, ErrValueOutOfRange
	}
	octets := content[1:]
	return octets, len(octets)*8 - padding, nil
}

// EncodeOID appends an OBJECT IDENTIFIER built from its arcs (e.g.
// {1, 3, 12, 9, 52}, the Q.SIG CallingName operation value), using the
// 40*a+b packing of the first two arcs and base-128 continuation
// encoding for the rest, following the teacher's EncodeOIDToBuffer.
func (w *Writer) EncodeOID(id Identifier, arcs []uint32) error {
	if len(arcs) < 2 {
		return ErrValueOutOfRange
	}
	content := NewWriter()
	content.WriteByte(byte(arcs[0]*40 + arcs[1]))
	for _, arc := range arcs[2:] {
		content.WriteBytes(encodeBase128(arc))
	}
	w.WriteTLV(id, content.Bytes())
	return nil
}

func encodeBase128(v uint32) []byte {
	if v == 0 {
		return []byte{0}
	}
	var rev []byte
	for v > 0 {
		rev = append(rev, byte(v&0x7F))
		v >>= 7
	}
	out := make([]byte, len(rev))
	for i, b := range rev {
		o := len(rev) - 1 - i
		if o != len(rev)-1 {
			b |= 0x80
		}
		out[i] = b
	}
	return out
}

// DecodeOID decodes the content of an OBJECT IDENTIFIER into its arcs.
func DecodeOID(content []byte) ([]uint32, error) {
	if len(content) == 0 {
		return nil, ErrValueOutOfRange
	}
	arcs := []uint32{uint32(content[0] / 40), uint32(content[0] % 40)}
	var cur uint32
	for _, b := range content[1:] {
		cur = (cur << 7) | uint32(b&0x7F)
		if b&0x80 == 0 {
			arcs = append(arcs, cur)
			cur = 0
		}
	}
	return arcs, nil
}

// OIDString renders arcs as a dot-separated string, for table lookups and
// diagnostics.
func OIDString(arcs []uint32) string {
	var b strings.Builder
	for i, a := range arcs {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(uitoa(a))
	}
	return b.String()
}

func uitoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
