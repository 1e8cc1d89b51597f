package ber

import (
	"bytes"
	"testing"
)

func TestReaderReadLength(t *testing.T) {
	tests := []struct {
		name       string
		buffer     []byte
		wantPos    int
		wantLen    int
		wantIndef  bool
		wantErr    error
	}{
		{
			name:    "short form length < 128",
			buffer:  []byte{0x05, 0x00, 0x00, 0x00, 0x00, 0x00},
			wantPos: 1,
			wantLen: 5,
		},
		{
			name:    "long form 1 byte",
			buffer:  append([]byte{0x81, 0xFF}, make([]byte, 0xFF)...),
			wantPos: 2,
			wantLen: 0xFF,
		},
		{
			name:    "long form 2 bytes",
			buffer:  append([]byte{0x82, 0x01, 0x00}, make([]byte, 0x0100)...),
			wantPos: 3,
			wantLen: 0x0100,
		},
		{
			name:    "long form 3 bytes",
			buffer:  append([]byte{0x83, 0x00, 0x01, 0x00}, make([]byte, 0x000100)...),
			wantPos: 4,
			wantLen: 0x000100,
		},
		{
			name:    "buffer underrun in long form",
			buffer:  []byte{0x81},
			wantErr: ErrBufferUnderrun,
		},
		{
			name:    "zero length",
			buffer:  []byte{0x00},
			wantPos: 1,
			wantLen: 0,
		},
		{
			name:      "indefinite length marker",
			buffer:    []byte{0x80},
			wantPos:   1,
			wantIndef: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.buffer)
			gotLen, gotIndef, err := r.ReadLength()
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Pos() != tt.wantPos || gotLen != tt.wantLen || gotIndef != tt.wantIndef {
				t.Fatalf("got (pos=%d,len=%d,indef=%v), want (pos=%d,len=%d,indef=%v)",
					r.Pos(), gotLen, gotIndef, tt.wantPos, tt.wantLen, tt.wantIndef)
			}
		})
	}
}

func TestWriterLengthRoundTrip(t *testing.T) {
	lengths := []int{0, 1, 0x7F, 0x80, 0xFF, 0x100, 0xFFFF, 0x10000}
	for _, length := range lengths {
		w := NewWriter()
		w.WriteLength(length)
		r := NewReader(append(w.Bytes(), make([]byte, length)...))
		gotLen, indef, err := r.ReadLength()
		if err != nil {
			t.Fatalf("length %d: %v", length, err)
		}
		if indef || gotLen != length {
			t.Fatalf("length %d: got %d indef=%v", length, gotLen, indef)
		}
	}
}

func TestTagLengthRoundTripDefinite(t *testing.T) {
	w := NewWriter()
	id := ContextTag(3, true)
	w.Nested(id, func(inner *Writer) {
		inner.EncodeInt64(UniversalTag(TagInteger, false), 42)
	})

	r := NewReader(w.Bytes())
	gotID, sub, err := r.ReadTagLength()
	if err != nil {
		t.Fatalf("ReadTagLength: %v", err)
	}
	if gotID != id {
		t.Fatalf("id = %+v, want %+v", gotID, id)
	}
	intID, intSub, err := sub.ReadTagLength()
	if err != nil {
		t.Fatalf("inner ReadTagLength: %v", err)
	}
	if !intID.Universal(TagInteger) {
		t.Fatalf("inner id = %+v", intID)
	}
	v, err := DecodeInt64(intSub.Content())
	if err != nil || v != 42 {
		t.Fatalf("v=%d err=%v", v, err)
	}
}

func TestTagLengthIndefinite(t *testing.T) {
	// [constructed context 0] { INTEGER 5 } EOC EOC, indefinite outer length.
	inner := NewWriter()
	inner.EncodeInt64(UniversalTag(TagInteger, false), 5)
	buf := []byte{}
	buf = append(buf, ContextTag(0, true).Byte(), 0x80)
	buf = append(buf, inner.Bytes()...)
	buf = append(buf, 0x00, 0x00)

	r := NewReader(buf)
	id, sub, err := r.ReadTagLength()
	if err != nil {
		t.Fatalf("ReadTagLength: %v", err)
	}
	if !id.ContextSpecific(0) {
		t.Fatalf("id = %+v", id)
	}
	if sub.End()-sub.Pos() != len(inner.Bytes()) {
		t.Fatalf("sub length = %d, want %d", sub.End()-sub.Pos(), len(inner.Bytes()))
	}
	if r.Pos() != len(buf) {
		t.Fatalf("outer cursor = %d, want %d (EOC not consumed)", r.Pos(), len(buf))
	}
}

func TestIntegerSignExtension(t *testing.T) {
	tests := []int64{0, 1, -1, 127, -128, 128, -129, 32767, -32768, 1 << 20, -(1 << 20)}
	for _, v := range tests {
		w := NewWriter()
		id := UniversalTag(TagInteger, false)
		w.EncodeInt64(id, v)
		r := NewReader(w.Bytes())
		_, sub, err := r.ReadTagLength()
		if err != nil {
			t.Fatalf("value %d: %v", v, err)
		}
		got, err := DecodeInt64(sub.Content())
		if err != nil {
			t.Fatalf("value %d: decode: %v", v, err)
		}
		if got != v {
			t.Fatalf("value %d round-tripped as %d", v, got)
		}
	}
}

func TestOIDRoundTrip(t *testing.T) {
	arcs := []uint32{1, 3, 12, 9, 0}
	w := NewWriter()
	if err := w.EncodeOID(UniversalTag(TagObjectIdentifier, false), arcs); err != nil {
		t.Fatalf("EncodeOID: %v", err)
	}
	r := NewReader(w.Bytes())
	_, sub, err := r.ReadTagLength()
	if err != nil {
		t.Fatalf("ReadTagLength: %v", err)
	}
	got, err := DecodeOID(sub.Content())
	if err != nil {
		t.Fatalf("DecodeOID: %v", err)
	}
	if len(got) != len(arcs) {
		t.Fatalf("got %v, want %v", got, arcs)
	}
	for i := range arcs {
		if got[i] != arcs[i] {
			t.Fatalf("got %v, want %v", got, arcs)
		}
	}
	if OIDString(arcs) != "1.3.12.9.0" {
		t.Fatalf("OIDString = %q", OIDString(arcs))
	}
}

func TestOctetStringOverflow(t *testing.T) {
	_, err := DecodeOctetString(make([]byte, 5), 4)
	if err != ErrValueOutOfRange {
		t.Fatalf("err = %v, want ErrValueOutOfRange", err)
	}
}

func TestBitStringRoundTrip(t *testing.T) {
	w := NewWriter()
	w.EncodeBitString(UniversalTag(TagBitString, false), []byte{0xF1, 0x00}, 13)
	r := NewReader(w.Bytes())
	_, sub, err := r.ReadTagLength()
	if err != nil {
		t.Fatalf("ReadTagLength: %v", err)
	}
	bits, count, err := DecodeBitString(sub.Content())
	if err != nil {
		t.Fatalf("DecodeBitString: %v", err)
	}
	if count != 13 || !bytes.Equal(bits, []byte{0xF1, 0x00}) {
		t.Fatalf("got bits=%x count=%d", bits, count)
	}
}

func TestBooleanRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		w := NewWriter()
		w.EncodeBoolean(UniversalTag(TagBoolean, false), v)
		r := NewReader(w.Bytes())
		_, sub, err := r.ReadTagLength()
		if err != nil {
			t.Fatalf("ReadTagLength: %v", err)
		}
		got, err := DecodeBoolean(sub.Content())
		if err != nil || got != v {
			t.Fatalf("got %v err %v, want %v", got, err, v)
		}
	}
}
