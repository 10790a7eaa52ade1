package wire

import (
	"errors"
	"math"
	"testing"
)

func TestVarint_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16383, 16384, math.MaxUint32, math.MaxUint64}
	for _, v := range values {
		e := NewEncoder()
		e.EncodeVarint(v)
		if e.Len() != VarintSize(v) {
			t.Errorf("VarintSize(%d) = %d, encoded %d bytes", v, VarintSize(v), e.Len())
		}
		d := NewDecoder(e.Bytes())
		got, err := d.DecodeVarint()
		if err != nil {
			t.Fatalf("decode %d: %v", v, err)
		}
		if got != v {
			t.Errorf("got %d, want %d", got, v)
		}
		if d.Remaining() != 0 {
			t.Errorf("decoder left %d bytes", d.Remaining())
		}
	}
}

func TestVarint_KnownEncodings(t *testing.T) {
	tests := []struct {
		value uint64
		want  []byte
	}{
		{1, []byte{0x01}},
		{150, []byte{0x96, 0x01}},
		{300, []byte{0xac, 0x02}},
	}
	for _, tt := range tests {
		e := NewEncoder()
		e.EncodeVarint(tt.value)
		if string(e.Bytes()) != string(tt.want) {
			t.Errorf("EncodeVarint(%d) = %x, want %x", tt.value, e.Bytes(), tt.want)
		}
	}

	// negative int32 is sign-extended to ten bytes
	e := NewEncoder()
	NewVarintEncoder(e).EncodeInt32(-1)
	if e.Len() != 10 {
		t.Errorf("EncodeInt32(-1) produced %d bytes", e.Len())
	}
	got, err := NewVarintDecoder(NewDecoder(e.Bytes())).DecodeInt32()
	if err != nil || got != -1 {
		t.Errorf("DecodeInt32 = %d, %v", got, err)
	}
}

func TestVarint_Errors(t *testing.T) {
	t.Run("truncated", func(t *testing.T) {
		d := NewDecoder([]byte{0x96})
		if _, err := d.DecodeVarint(); !errors.Is(err, ErrUnexpectedEOF) {
			t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
		}
		if d.Offset() != 0 {
			t.Errorf("position moved to %d on error", d.Offset())
		}
	})

	t.Run("overflow", func(t *testing.T) {
		data := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}
		if _, err := NewDecoder(data).DecodeVarint(); !errors.Is(err, ErrVarintOverflow) {
			t.Fatalf("expected ErrVarintOverflow, got %v", err)
		}
	})

	t.Run("eleven bytes", func(t *testing.T) {
		data := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x81, 0x01}
		if _, err := NewDecoder(data).DecodeVarint(); !errors.Is(err, ErrVarintOverflow) {
			t.Fatalf("expected ErrVarintOverflow, got %v", err)
		}
	})
}

func TestZigZag(t *testing.T) {
	tests32 := []struct {
		v    int32
		want uint64
	}{
		{0, 0}, {-1, 1}, {1, 2}, {-2, 3}, {math.MaxInt32, 4294967294}, {math.MinInt32, 4294967295},
	}
	for _, tt := range tests32 {
		if got := EncodeZigZag32(tt.v); got != tt.want {
			t.Errorf("EncodeZigZag32(%d) = %d, want %d", tt.v, got, tt.want)
		}
		if got := DecodeZigZag32(tt.want); got != tt.v {
			t.Errorf("DecodeZigZag32(%d) = %d, want %d", tt.want, got, tt.v)
		}
	}

	for _, v := range []int64{0, -1, 1, math.MaxInt64, math.MinInt64} {
		if got := DecodeZigZag64(EncodeZigZag64(v)); got != v {
			t.Errorf("zigzag64 round trip of %d gave %d", v, got)
		}
	}
}

func TestFixedAndBytes(t *testing.T) {
	e := NewEncoder()
	fe := NewFixedEncoder(e)
	fe.EncodeFloat32(1.5)
	fe.EncodeFloat64(-2.25)
	e.EncodeFixed32(0xdeadbeef)
	e.EncodeString("vt")

	d := NewDecoder(e.Bytes())
	fd := NewFixedDecoder(d)
	if f, err := fd.DecodeFloat32(); err != nil || f != 1.5 {
		t.Fatalf("DecodeFloat32 = %v, %v", f, err)
	}
	if f, err := fd.DecodeFloat64(); err != nil || f != -2.25 {
		t.Fatalf("DecodeFloat64 = %v, %v", f, err)
	}
	if v, err := d.DecodeFixed32(); err != nil || v != 0xdeadbeef {
		t.Fatalf("DecodeFixed32 = %x, %v", v, err)
	}
	if b, err := d.DecodeBytes(); err != nil || string(b) != "vt" {
		t.Fatalf("DecodeBytes = %q, %v", b, err)
	}

	if _, err := NewDecoder([]byte{0x01, 0x02}).DecodeFixed32(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF for short fixed32, got %v", err)
	}

	short := NewDecoder([]byte{0x05, 'a', 'b'})
	if _, err := short.DecodeBytes(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF for short bytes, got %v", err)
	}
	if short.Offset() != 0 {
		t.Errorf("position moved to %d on error", short.Offset())
	}
}

func TestParseTag(t *testing.T) {
	n, wt := ParseTag(MakeTag(5, WireBytes))
	if n != 5 || wt != WireBytes {
		t.Errorf("ParseTag = %d, %v", n, wt)
	}
	n, _ = ParseTag(Tag(uint64(1) << 40))
	if n != -1 {
		t.Errorf("oversized field number should parse as -1, got %d", n)
	}
}
