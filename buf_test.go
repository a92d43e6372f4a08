package pgwire

import (
	"bytes"
	"testing"
)

func TestReaderPrimitives(t *testing.T) {
	body := []byte{0x01, 0x00, 0x2a, 0xff, 0xff, 0xff, 0xfe, 'h', 'i', 0}
	r := NewReader(body)

	if got := r.Byte(); got != 0x01 {
		t.Fatalf("Byte() = %#x, want 0x01", got)
	}
	if got := r.Int16(); got != 42 {
		t.Fatalf("Int16() = %d, want 42", got)
	}
	if got := r.Int32(); got != -2 {
		t.Fatalf("Int32() = %d, want -2", got)
	}
	if got := r.CString(); got != "hi" {
		t.Fatalf("CString() = %q, want %q", got, "hi")
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", r.Len())
	}
}

func TestReaderTruncated(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic reading past end of buffer")
		}
	}()
	r := NewReader([]byte{0x01})
	r.Int32()
}

func TestReaderCStringNoTerminator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on missing cstring terminator")
		}
	}()
	r := NewReader([]byte{'a', 'b', 'c'})
	r.CString()
}

func TestReaderCStringInvalidUTF8(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on invalid utf-8 in cstring")
		}
	}()
	r := NewReader([]byte{0xff, 0xfe, 0})
	r.CString()
}

func TestReaderTakeCopiesBytes(t *testing.T) {
	body := []byte{1, 2, 3, 4}
	r := NewReader(body)
	v := r.Take(4)
	v[0] = 0xff
	if !bytes.Equal(body, []byte{1, 2, 3, 4}) {
		t.Fatal("Take must return a copy, not alias the packet body")
	}
}

func TestReaderRest(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	r.Byte()
	rest := r.Rest()
	if !bytes.Equal(rest, []byte{2, 3}) {
		t.Fatalf("Rest() = %v, want [2 3]", rest)
	}
	if r.Len() != 0 {
		t.Fatalf("Len() after Rest() = %d, want 0", r.Len())
	}
}
